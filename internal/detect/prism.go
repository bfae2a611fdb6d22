// Package detect turns bike and car trajectory data into discrete
// interaction events using two independent algorithms: space-time-prism
// neighbor matching over raw points, and post-encroachment-time computation
// over segment crossings.
package detect

import (
	"log"

	"github.com/golang/geo/r2"
	"github.com/google/uuid"

	"github.com/velotrace/zoneval/internal/geom"
	"github.com/velotrace/zoneval/internal/models"
)

// PrismConfig holds the space-time prism thresholds.
type PrismConfig struct {
	RadiusM float64 // spatial buffer radius, strict containment
	WindowS float64 // temporal half-window in seconds, strict
}

// Prism flags every bike point that has at least one car point both strictly
// within RadiusM of it and with a timestamp strictly within WindowS seconds
// of it. The same car point must satisfy both conditions; a car that is near
// in space at one time and near in time somewhere else does not count.
// Results are restricted to the focus area.
func Prism(bikes, cars []models.TrajectoryPoint, cfg PrismConfig, focus models.FocusArea) []models.InteractionEvent {
	if len(bikes) == 0 || len(cars) == 0 {
		return nil
	}

	carLocations := make([]r2.Point, len(cars))
	for i, c := range cars {
		carLocations[i] = c.Location
	}
	idx := geom.NewPointIndex(cfg.RadiusM, carLocations)

	windowMs := cfg.WindowS * 1000

	var events []models.InteractionEvent
	for _, b := range bikes {
		if !matchesCarPrism(b, cars, idx, cfg.RadiusM, windowMs) {
			continue
		}
		if !focus.Polygon.Contains(b.Location) {
			continue
		}
		events = append(events, models.InteractionEvent{
			ID:        uuid.NewString(),
			Location:  b.Location,
			Algorithm: models.AlgorithmPrism,
		})
	}

	log.Printf("[PrismDetector] %d bike points, %d car points -> %d interaction points",
		len(bikes), len(cars), len(events))
	return events
}

// matchesCarPrism reports whether any single car point is inside both the
// spatial buffer and the temporal window of the bike point.
func matchesCarPrism(b models.TrajectoryPoint, cars []models.TrajectoryPoint, idx *geom.PointIndex, radius, windowMs float64) bool {
	for _, i := range idx.Within(b.Location, radius) {
		dt := float64(cars[i].Time - b.Time)
		if dt < 0 {
			dt = -dt
		}
		if dt < windowMs {
			return true
		}
	}
	return false
}
