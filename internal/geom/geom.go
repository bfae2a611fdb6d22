package geom

import (
	"errors"
	"math"

	"github.com/golang/geo/r2"
)

// ErrDegenerateLine is returned when a line has fewer than 2 points and
// therefore has no boundary.
var ErrDegenerateLine = errors.New("line has fewer than 2 points")

// LineString is an ordered sequence of planar points in a shared projected CRS.
type LineString []r2.Point

// Boundaries returns the first and last coordinate of the line.
func (ls LineString) Boundaries() (r2.Point, r2.Point, error) {
	if len(ls) < 2 {
		return r2.Point{}, r2.Point{}, ErrDegenerateLine
	}
	return ls[0], ls[len(ls)-1], nil
}

// Length returns the total path length of the line in CRS units.
func (ls LineString) Length() float64 {
	var total float64
	for i := 1; i < len(ls); i++ {
		total += ls[i].Sub(ls[i-1]).Norm()
	}
	return total
}

// Displacement returns the straight-line distance between the first and last
// point. Zero iff start equals end.
func (ls LineString) Displacement() float64 {
	first, last, err := ls.Boundaries()
	if err != nil {
		return 0
	}
	return last.Sub(first).Norm()
}

// Circuity returns length divided by displacement. NaN when displacement is
// zero (closed or stationary line), never an error.
func (ls LineString) Circuity() float64 {
	d := ls.Displacement()
	if d == 0 {
		return math.NaN()
	}
	return ls.Length() / d
}

// BoundingRect returns the bounding rectangle of the line.
func (ls LineString) BoundingRect() r2.Rect {
	return r2.RectFromPoints(ls...)
}

// Polygon is a simple (non-self-intersecting) ring of planar points. The ring
// may be open or closed; containment treats it as implicitly closed.
type Polygon struct {
	Ring []r2.Point
}

// Contains reports whether p lies inside the polygon using ray casting.
// Points exactly on an edge are not guaranteed to be inside.
func (pg Polygon) Contains(p r2.Point) bool {
	ring := pg.Ring
	if len(ring) < 3 {
		return false
	}
	inside := false
	j := len(ring) - 1
	for i := 0; i < len(ring); i++ {
		if ((ring[i].Y > p.Y) != (ring[j].Y > p.Y)) &&
			(p.X < (ring[j].X-ring[i].X)*(p.Y-ring[i].Y)/(ring[j].Y-ring[i].Y)+ring[i].X) {
			inside = !inside
		}
		j = i
	}
	return inside
}

// BoundingRect returns the bounding rectangle of the polygon ring.
func (pg Polygon) BoundingRect() r2.Rect {
	return r2.RectFromPoints(pg.Ring...)
}

// Area returns the planar area of the polygon via the shoelace formula.
func (pg Polygon) Area() float64 {
	ring := pg.Ring
	if len(ring) < 3 {
		return 0
	}
	var sum float64
	for i := 0; i < len(ring); i++ {
		j := (i + 1) % len(ring)
		sum += ring[i].X*ring[j].Y - ring[j].X*ring[i].Y
	}
	return math.Abs(sum) / 2
}
