package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	assert.InDelta(t, 2.5, Mean([]float64{1, 2, 3, 4}), 1e-9)
	assert.Zero(t, Mean(nil))
}

func TestVariance(t *testing.T) {
	assert.InDelta(t, 2.5, Variance([]float64{2, 4, 4, 4, 5, 5, 7, 9}), 1e-9)
	assert.Zero(t, Variance([]float64{3}))
	assert.Zero(t, Variance(nil))
}
