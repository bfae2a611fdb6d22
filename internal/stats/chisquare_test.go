package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChiSquareSurvival(t *testing.T) {
	t.Run("two degrees of freedom is exponential", func(t *testing.T) {
		// for df=2 the survival function is exactly exp(-x/2)
		for _, x := range []float64{0.5, 1, 2, 5, 10} {
			assert.InDelta(t, math.Exp(-x/2), ChiSquareSurvival(x, 2), 1e-10)
		}
	})

	t.Run("textbook critical value", func(t *testing.T) {
		// chi2(1) critical value for alpha=0.05
		assert.InDelta(t, 0.05, ChiSquareSurvival(3.841, 1), 1e-3)
	})

	t.Run("large statistic yields a vanishing p-value", func(t *testing.T) {
		assert.Less(t, ChiSquareSurvival(300, 3), 1e-10)
	})

	t.Run("non-positive statistic", func(t *testing.T) {
		assert.Equal(t, 1.0, ChiSquareSurvival(0, 4))
		assert.Equal(t, 1.0, ChiSquareSurvival(-3, 4))
	})

	t.Run("invalid inputs", func(t *testing.T) {
		assert.True(t, math.IsNaN(ChiSquareSurvival(1, 0)))
		assert.True(t, math.IsNaN(ChiSquareSurvival(math.NaN(), 2)))
	})
}
