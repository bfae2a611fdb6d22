package geom

import "github.com/golang/geo/r2"

// SegmentGeom is the geometric part of a trajectory segment: a directed
// straight edge between two consecutive trajectory points.
type SegmentGeom struct {
	A, B r2.Point
}

// Rect returns the bounding rectangle of the segment.
func (s SegmentGeom) Rect() r2.Rect {
	return r2.RectFromPoints(s.A, s.B)
}

// PointSet is a set of exact planar coordinates, used to hold the boundary
// (first/last) points of a line collection.
type PointSet map[r2.Point]struct{}

// NewPointSet builds a set from the given points.
func NewPointSet(points ...r2.Point) PointSet {
	s := make(PointSet, len(points))
	for _, p := range points {
		s[p] = struct{}{}
	}
	return s
}

// Add inserts a point into the set.
func (s PointSet) Add(p r2.Point) { s[p] = struct{}{} }

// Has reports whether p is in the set.
func (s PointSet) Has(p r2.Point) bool {
	_, ok := s[p]
	return ok
}

// Crossing is a proper intersection between a segment of collection A and a
// segment of collection B. AIndex/BIndex refer to the input slices.
type Crossing struct {
	Point  r2.Point
	AIndex int
	BIndex int
}

// orient returns the signed area of the triangle (a, b, c): positive for a
// counter-clockwise turn, negative for clockwise, zero for collinear.
func orient(a, b, c r2.Point) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}

// ProperlyCross reports whether two segments cross in their interiors.
// Touching at an endpoint or collinear overlap does not count as a crossing.
func ProperlyCross(s, t SegmentGeom) bool {
	d1 := orient(t.A, t.B, s.A)
	d2 := orient(t.A, t.B, s.B)
	d3 := orient(s.A, s.B, t.A)
	d4 := orient(s.A, s.B, t.B)
	return d1*d2 < 0 && d3*d4 < 0
}

// IntersectionPoint returns the intersection of the supporting lines of two
// properly crossing segments. Only valid when ProperlyCross is true.
func IntersectionPoint(s, t SegmentGeom) r2.Point {
	d := s.B.Sub(s.A)
	e := t.B.Sub(t.A)
	denom := d.Cross(e)
	u := t.A.Sub(s.A).Cross(e) / denom
	return s.A.Add(d.Mul(u))
}

// Crossings finds every proper crossing between segments of a and segments of
// b, excluding any intersection point that coincides with a point in
// boundary (the first/last points of the parent lines). Such coincidences
// are touches, not crossings. Candidate pairs come from a rectangle index
// over b, so only segments whose bounding rectangles overlap are tested.
func Crossings(a, b []SegmentGeom, boundary PointSet) []Crossing {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}

	idx := NewRectIndex(indexCellSize(b))
	for i, seg := range b {
		idx.Insert(i, seg.Rect())
	}

	var crossings []Crossing
	for i, sa := range a {
		for _, j := range idx.Search(sa.Rect()) {
			sb := b[j]
			if !ProperlyCross(sa, sb) {
				continue
			}
			p := IntersectionPoint(sa, sb)
			if boundary.Has(p) {
				continue
			}
			crossings = append(crossings, Crossing{Point: p, AIndex: i, BIndex: j})
		}
	}
	return crossings
}

// indexCellSize picks a bucket size close to the mean segment extent so that
// a segment maps to a handful of cells.
func indexCellSize(segs []SegmentGeom) float64 {
	var total float64
	for _, s := range segs {
		total += s.B.Sub(s.A).Norm()
	}
	mean := total / float64(len(segs))
	if mean <= 0 {
		return 1
	}
	return mean
}
