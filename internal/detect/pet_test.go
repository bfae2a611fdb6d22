package detect

import (
	"testing"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velotrace/zoneval/internal/geom"
	"github.com/velotrace/zoneval/internal/models"
)

var defaultPET = PETConfig{ThresholdS: 2}

func trajectory(t *testing.T, id string, coords [][2]float64, times []int64) *models.Trajectory {
	t.Helper()
	points := make([]models.TrajectoryPoint, len(coords))
	for i, c := range coords {
		points[i] = models.TrajectoryPoint{
			TrackID:  id,
			Time:     times[i],
			Location: r2.Point{X: c[0], Y: c[1]},
		}
	}
	traj, err := models.NewTrajectory(id, points)
	require.NoError(t, err)
	return traj
}

// crossingPair builds a bike going north through (0,0) and a car going east
// through (0,0), with the car's segment midpoint time offset against the
// bike's by offsetMs milliseconds.
func crossingPair(t *testing.T, offsetMs int64) (bike, car *models.Trajectory) {
	t.Helper()
	bike = trajectory(t, "bike-1", [][2]float64{{0, -1}, {0, 1}}, []int64{0, 2000})
	car = trajectory(t, "car-1", [][2]float64{{-1, 0}, {1, 0}}, []int64{offsetMs, offsetMs + 2000})
	return bike, car
}

func runPET(t *testing.T, bike, car *models.Trajectory, cfg PETConfig) []models.InteractionEvent {
	t.Helper()
	boundary := BoundaryPoints([]*models.Trajectory{bike, car})
	return PET(SegmentsOf([]*models.Trajectory{bike}), SegmentsOf([]*models.Trajectory{car}), cfg, testFocus, boundary)
}

func TestPETUsesSegmentMidpointTimes(t *testing.T) {
	// bike segment midpoint time 1.0s, car segment midpoint time 2.0s
	bike, car := crossingPair(t, 1000)
	events := runPET(t, bike, car, defaultPET)

	require.Len(t, events, 1)
	assert.Equal(t, models.AlgorithmPET, events[0].Algorithm)
	assert.Equal(t, r2.Point{X: 0, Y: 0}, events[0].Location)
	require.NotNil(t, events[0].PET)
	assert.InDelta(t, 1.0, *events[0].PET, 1e-9)
}

func TestPETThresholdInclusive(t *testing.T) {
	t.Run("PET of exactly the threshold is an interaction", func(t *testing.T) {
		bike, car := crossingPair(t, 2000)
		events := runPET(t, bike, car, defaultPET)
		require.Len(t, events, 1)
		assert.InDelta(t, 2.0, *events[0].PET, 1e-9)
	})

	t.Run("PET just above the threshold is not", func(t *testing.T) {
		bike, car := crossingPair(t, 2001)
		assert.Empty(t, runPET(t, bike, car, defaultPET))
	})
}

func TestPETExcludesBoundaryCoincidentCrossings(t *testing.T) {
	bike, car := crossingPair(t, 0)

	// a third trajectory starting exactly at the crossing point makes the
	// crossing a boundary touch
	other := trajectory(t, "car-2", [][2]float64{{0, 0}, {30, 30}}, []int64{0, 2000})
	boundary := BoundaryPoints([]*models.Trajectory{bike, car, other})

	events := PET(SegmentsOf([]*models.Trajectory{bike}), SegmentsOf([]*models.Trajectory{car}),
		defaultPET, testFocus, boundary)
	assert.Empty(t, events)
}

func TestPETFocusAreaRestriction(t *testing.T) {
	bike, car := crossingPair(t, 0)
	smallFocus := models.FocusArea{Polygon: geom.Polygon{Ring: []r2.Point{
		{X: 10, Y: 10}, {X: 20, Y: 10}, {X: 20, Y: 20}, {X: 10, Y: 20},
	}}}

	boundary := BoundaryPoints([]*models.Trajectory{bike, car})
	events := PET(SegmentsOf([]*models.Trajectory{bike}), SegmentsOf([]*models.Trajectory{car}),
		defaultPET, smallFocus, boundary)
	assert.Empty(t, events)
}

func TestPETSharedEndpointIsNotACrossing(t *testing.T) {
	// bike ends exactly where the car segment starts
	bike := trajectory(t, "bike-1", [][2]float64{{0, -1}, {0, 0}}, []int64{0, 2000})
	car := trajectory(t, "car-1", [][2]float64{{0, 0}, {1, 0}}, []int64{0, 2000})

	assert.Empty(t, runPET(t, bike, car, defaultPET))
}

func TestPETRepeatableWithDifferentThresholds(t *testing.T) {
	bike, car := crossingPair(t, 1500)
	bikeSegs := SegmentsOf([]*models.Trajectory{bike})
	carSegs := SegmentsOf([]*models.Trajectory{car})
	boundary := BoundaryPoints([]*models.Trajectory{bike, car})

	// same derived segments, different thresholds
	assert.Len(t, PET(bikeSegs, carSegs, PETConfig{ThresholdS: 2}, testFocus, boundary), 1)
	assert.Empty(t, PET(bikeSegs, carSegs, PETConfig{ThresholdS: 1}, testFocus, boundary))
	assert.Len(t, PET(bikeSegs, carSegs, PETConfig{ThresholdS: 2}, testFocus, boundary), 1)
}
