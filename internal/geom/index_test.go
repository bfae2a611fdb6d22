package geom

import (
	"testing"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/assert"
)

func TestPointIndexWithin(t *testing.T) {
	points := []r2.Point{
		{X: 0, Y: 0},
		{X: 1.9, Y: 0},
		{X: 2.0, Y: 0}, // exactly at the radius: excluded by strict containment
		{X: 5, Y: 5},
	}
	idx := NewPointIndex(2, points)

	got := idx.Within(r2.Point{X: 0, Y: 0}, 2)
	assert.ElementsMatch(t, []int{0, 1}, got)
}

func TestPointIndexEmpty(t *testing.T) {
	idx := NewPointIndex(2, nil)
	assert.Empty(t, idx.Within(r2.Point{X: 0, Y: 0}, 2))
}

func TestRectIndexSearch(t *testing.T) {
	idx := NewRectIndex(1)
	idx.Insert(0, r2.RectFromPoints(r2.Point{X: 0, Y: 0}, r2.Point{X: 2, Y: 2}))
	idx.Insert(1, r2.RectFromPoints(r2.Point{X: 10, Y: 10}, r2.Point{X: 11, Y: 11}))

	got := idx.Search(r2.RectFromPoints(r2.Point{X: 1, Y: 1}, r2.Point{X: 3, Y: 3}))
	assert.Equal(t, []int{0}, got)

	// A candidate may share only a bucket, exactness is the caller's job
	got = idx.Search(r2.RectFromPoints(r2.Point{X: 9, Y: 9}, r2.Point{X: 12, Y: 12}))
	assert.Equal(t, []int{1}, got)
}
