package detect

import (
	"log"
	"math"

	"github.com/google/uuid"

	"github.com/velotrace/zoneval/internal/geom"
	"github.com/velotrace/zoneval/internal/models"
)

// PETConfig holds the post-encroachment-time threshold.
type PETConfig struct {
	ThresholdS float64 // maximum PET in seconds, inclusive
}

// BoundaryPoints collects the first and last coordinate of every trajectory.
// Crossing points coinciding with any of these are endpoint touches and must
// be excluded; the set therefore has to cover the complete input, not a
// shard of it.
func BoundaryPoints(trajectories []*models.Trajectory) geom.PointSet {
	set := make(geom.PointSet, 2*len(trajectories))
	for _, t := range trajectories {
		first, last, err := t.Line.Boundaries()
		if err != nil {
			continue
		}
		set.Add(first)
		set.Add(last)
	}
	return set
}

// SegmentsOf decomposes every trajectory into its segments, preserving
// trajectory order.
func SegmentsOf(trajectories []*models.Trajectory) []models.Segment {
	var segs []models.Segment
	for _, t := range trajectories {
		segs = append(segs, t.Segments()...)
	}
	return segs
}

// PET finds every proper crossing between a bike segment and a car segment
// and computes the post-encroachment time as the absolute difference of the
// two segments' midpoint times. The midpoint time (t0+t1)/2 is used
// regardless of where along the segment the crossing falls; there is no
// position-weighted interpolation. A crossing
// is an interaction iff PET <= ThresholdS. Results are restricted to the
// focus area.
func PET(bikeSegs, carSegs []models.Segment, cfg PETConfig, focus models.FocusArea, boundary geom.PointSet) []models.InteractionEvent {
	if len(bikeSegs) == 0 || len(carSegs) == 0 {
		return nil
	}

	bikeGeoms := make([]geom.SegmentGeom, len(bikeSegs))
	for i, s := range bikeSegs {
		bikeGeoms[i] = s.Geom()
	}
	carGeoms := make([]geom.SegmentGeom, len(carSegs))
	for i, s := range carSegs {
		carGeoms[i] = s.Geom()
	}

	crossings := geom.Crossings(bikeGeoms, carGeoms, boundary)

	var events []models.InteractionEvent
	for _, c := range crossings {
		tBike := bikeSegs[c.AIndex].MidTime()
		tCar := carSegs[c.BIndex].MidTime()
		pet := math.Abs(tCar-tBike) / 1000

		if pet > cfg.ThresholdS {
			continue
		}
		if !focus.Polygon.Contains(c.Point) {
			continue
		}

		petCopy := pet
		events = append(events, models.InteractionEvent{
			ID:        uuid.NewString(),
			Location:  c.Point,
			Algorithm: models.AlgorithmPET,
			PET:       &petCopy,
		})
	}

	log.Printf("[PETDetector] %d bike segments, %d car segments, %d crossings -> %d interaction points",
		len(bikeSegs), len(carSegs), len(crossings), len(events))
	return events
}
