package models

import (
	"github.com/golang/geo/r2"

	"github.com/velotrace/zoneval/internal/geom"
)

// Segment is one straight edge of a trajectory between two consecutive
// points. Index is 1-based and follows the temporal ordering of the parent
// trajectory.
type Segment struct {
	LineID    string   `json:"line_id"`
	Index     int      `json:"segment_id"`
	Start     r2.Point `json:"start"`
	End       r2.Point `json:"end"`
	StartTime int64    `json:"start_time"` // epoch milliseconds
	EndTime   int64    `json:"end_time"`   // epoch milliseconds
}

// Geom returns the geometric edge of the segment.
func (s Segment) Geom() geom.SegmentGeom {
	return geom.SegmentGeom{A: s.Start, B: s.End}
}

// MidTime returns the segment's midpoint time in epoch milliseconds.
func (s Segment) MidTime() float64 {
	return (float64(s.StartTime) + float64(s.EndTime)) / 2
}

// Segments decomposes the trajectory into its consecutive point pairs:
// exactly N-1 segments for N points, segment i spanning points i and i+1.
func (t *Trajectory) Segments() []Segment {
	if len(t.Points) < 2 {
		return nil
	}
	segs := make([]Segment, 0, len(t.Points)-1)
	for i := 1; i < len(t.Points); i++ {
		prev, cur := t.Points[i-1], t.Points[i]
		segs = append(segs, Segment{
			LineID:    t.ID,
			Index:     i,
			Start:     prev.Location,
			End:       cur.Location,
			StartTime: prev.Time,
			EndTime:   cur.Time,
		})
	}
	return segs
}
