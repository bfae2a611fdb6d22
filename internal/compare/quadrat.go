package compare

import (
	"log"
	"math"
	"math/rand"

	"github.com/velotrace/zoneval/internal/models"
	"github.com/velotrace/zoneval/internal/stats"
)

// QuadratResult is the outcome of the chi-squared quadrat test for complete
// spatial randomness. Inconclusive is set instead of failing on degenerate
// inputs (no points, single quadrat).
type QuadratResult struct {
	Statistic    float64 `json:"statistic"`
	DF           int     `json:"df"`
	PValue       float64 `json:"p_value"`
	Quadrats     int     `json:"quadrats"`
	Points       int     `json:"points"`
	Inconclusive bool    `json:"inconclusive"`
}

// QuadratTest partitions the focus bounding box into nx by ny quadrats,
// counts the (jittered) interaction locations per quadrat and runs a
// chi-squared goodness-of-fit test against the uniform expectation of
// complete spatial randomness. The jitter is a seeded sub-unit perturbation
// that breaks exact point coincidences which would otherwise make the test
// degenerate; the same seed always produces the same result.
func QuadratTest(events []models.InteractionEvent, focus models.FocusArea, nx, ny int, seed int64) QuadratResult {
	res := QuadratResult{
		Quadrats: nx * ny,
		Points:   len(events),
		PValue:   math.NaN(),
	}
	if len(events) == 0 || nx < 1 || ny < 1 || nx*ny < 2 {
		res.Inconclusive = true
		log.Printf("[QuadratTest] degenerate input (%d points, %dx%d quadrats), test inconclusive",
			len(events), nx, ny)
		return res
	}

	rect := focus.Polygon.BoundingRect()
	width := rect.X.Hi - rect.X.Lo
	height := rect.Y.Hi - rect.Y.Lo
	if width <= 0 || height <= 0 {
		res.Inconclusive = true
		return res
	}

	rng := rand.New(rand.NewSource(seed))
	counts := make([]float64, nx*ny)
	kept := 0
	for _, e := range events {
		x := e.Location.X + rng.Float64() - 0.5
		y := e.Location.Y + rng.Float64() - 0.5

		col := int(float64(nx) * (x - rect.X.Lo) / width)
		row := int(float64(ny) * (y - rect.Y.Lo) / height)
		if col < 0 || col >= nx || row < 0 || row >= ny {
			continue
		}
		counts[row*nx+col]++
		kept++
	}

	if kept == 0 {
		res.Inconclusive = true
		return res
	}

	expected := float64(kept) / float64(nx*ny)
	var statistic float64
	for _, obs := range counts {
		diff := obs - expected
		statistic += diff * diff / expected
	}

	res.Statistic = statistic
	res.DF = nx*ny - 1
	res.PValue = stats.ChiSquareSurvival(statistic, res.DF)

	log.Printf("[QuadratTest] %d points in %dx%d quadrats: chi2=%.3f df=%d p=%.4f",
		kept, nx, ny, statistic, res.DF, res.PValue)
	return res
}
