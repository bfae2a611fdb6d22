package models

import (
	"github.com/golang/geo/r2"

	"github.com/velotrace/zoneval/internal/geom"
)

// Mode is the resolved transport mode of a trajectory.
type Mode string

// Transport modes. Unclear means the type tags were ambiguous below the
// dominance threshold; Unknown means no mapping rule matched.
const (
	ModeCar        Mode = "car"
	ModeBike       Mode = "bike"
	ModePedestrian Mode = "pedestrian"
	ModeMotorcycle Mode = "motorcycle"
	ModeBus        Mode = "bus"
	ModeTruck      Mode = "truck"
	ModeUnclear    Mode = "unclear"
	ModeUnknown    Mode = "unknown"
)

// TrajectoryPoint is a single timestamped observation of a tracked object.
// ObjectType and VehicleType are raw tags from the tracking system; an empty
// string means missing, "unclear" is a tag the upstream annotator uses for
// objects it could not identify.
type TrajectoryPoint struct {
	TrackID     string   `json:"track_id"`
	Time        int64    `json:"t"` // epoch milliseconds
	Location    r2.Point `json:"location"`
	ObjectType  string   `json:"object_type,omitempty"`
	VehicleType string   `json:"vehicle_type,omitempty"`
}

// Trajectory is one tracked object's ordered point sequence plus derived
// geometry and classification. Points are ordered by Time. Only Mode is
// attached after construction; everything else is derived once.
type Trajectory struct {
	ID           string          `json:"id"`
	Points       []TrajectoryPoint `json:"points"`
	Line         geom.LineString `json:"-"`
	Length       float64         `json:"length"`
	Displacement float64         `json:"displacement"`
	Mode         Mode            `json:"mode,omitempty"`
}

// NewTrajectory derives a trajectory from an ordered point sequence. Returns
// geom.ErrDegenerateLine wrapped for tracks with fewer than 2 points.
func NewTrajectory(id string, points []TrajectoryPoint) (*Trajectory, error) {
	line := make(geom.LineString, len(points))
	for i, p := range points {
		line[i] = p.Location
	}
	if _, _, err := line.Boundaries(); err != nil {
		return nil, err
	}
	return &Trajectory{
		ID:           id,
		Points:       points,
		Line:         line,
		Length:       line.Length(),
		Displacement: line.Displacement(),
	}, nil
}

// Circuity returns path length over displacement; NaN when the trajectory
// starts and ends at the same location.
func (t *Trajectory) Circuity() float64 {
	return t.Line.Circuity()
}

// IntersectsPolygon reports whether any point of the trajectory lies inside
// the polygon.
func (t *Trajectory) IntersectsPolygon(pg geom.Polygon) bool {
	for _, p := range t.Points {
		if pg.Contains(p.Location) {
			return true
		}
	}
	return false
}
