package geom

import (
	"testing"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProperlyCross(t *testing.T) {
	vertical := SegmentGeom{A: r2.Point{X: 0, Y: -1}, B: r2.Point{X: 0, Y: 1}}
	horizontal := SegmentGeom{A: r2.Point{X: -1, Y: 0}, B: r2.Point{X: 1, Y: 0}}

	t.Run("interior crossing", func(t *testing.T) {
		assert.True(t, ProperlyCross(vertical, horizontal))
	})

	t.Run("shared endpoint is a touch", func(t *testing.T) {
		touching := SegmentGeom{A: r2.Point{X: 0, Y: 1}, B: r2.Point{X: 5, Y: 5}}
		assert.False(t, ProperlyCross(vertical, touching))
	})

	t.Run("endpoint on interior is a touch", func(t *testing.T) {
		tee := SegmentGeom{A: r2.Point{X: 0, Y: 0}, B: r2.Point{X: 5, Y: 0}}
		assert.False(t, ProperlyCross(vertical, tee))
	})

	t.Run("collinear overlap is not a crossing", func(t *testing.T) {
		overlap := SegmentGeom{A: r2.Point{X: 0, Y: -2}, B: r2.Point{X: 0, Y: 0}}
		assert.False(t, ProperlyCross(vertical, overlap))
	})

	t.Run("disjoint", func(t *testing.T) {
		far := SegmentGeom{A: r2.Point{X: 10, Y: 10}, B: r2.Point{X: 11, Y: 11}}
		assert.False(t, ProperlyCross(vertical, far))
	})
}

func TestIntersectionPoint(t *testing.T) {
	vertical := SegmentGeom{A: r2.Point{X: 0, Y: -1}, B: r2.Point{X: 0, Y: 1}}
	horizontal := SegmentGeom{A: r2.Point{X: -1, Y: 0}, B: r2.Point{X: 1, Y: 0}}
	assert.Equal(t, r2.Point{X: 0, Y: 0}, IntersectionPoint(vertical, horizontal))
}

func TestCrossings(t *testing.T) {
	a := []SegmentGeom{{A: r2.Point{X: 0, Y: -1}, B: r2.Point{X: 0, Y: 1}}}
	b := []SegmentGeom{{A: r2.Point{X: -1, Y: 0}, B: r2.Point{X: 1, Y: 0}}}

	t.Run("finds the crossing", func(t *testing.T) {
		crossings := Crossings(a, b, NewPointSet())
		require.Len(t, crossings, 1)
		assert.Equal(t, r2.Point{X: 0, Y: 0}, crossings[0].Point)
		assert.Equal(t, 0, crossings[0].AIndex)
		assert.Equal(t, 0, crossings[0].BIndex)
	})

	t.Run("excludes crossings coincident with boundary points", func(t *testing.T) {
		boundary := NewPointSet(r2.Point{X: 0, Y: 0})
		assert.Empty(t, Crossings(a, b, boundary))
	})

	t.Run("empty inputs", func(t *testing.T) {
		assert.Empty(t, Crossings(nil, b, NewPointSet()))
		assert.Empty(t, Crossings(a, nil, NewPointSet()))
	})

	t.Run("distant pairs are not intersected", func(t *testing.T) {
		farB := []SegmentGeom{
			{A: r2.Point{X: -1, Y: 0}, B: r2.Point{X: 1, Y: 0}},
			{A: r2.Point{X: 100, Y: 100}, B: r2.Point{X: 101, Y: 100}},
		}
		crossings := Crossings(a, farB, NewPointSet())
		require.Len(t, crossings, 1)
		assert.Equal(t, 0, crossings[0].BIndex)
	})
}
