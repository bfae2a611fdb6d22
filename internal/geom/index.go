package geom

import (
	"math"

	"github.com/golang/geo/r2"
)

// cellKey addresses one bucket of a uniform grid index.
type cellKey struct {
	X, Y int
}

// PointIndex is a uniform grid-bucket index over planar points. It answers
// radius queries with a candidate set; callers apply the exact distance
// predicate themselves.
type PointIndex struct {
	cellSize float64
	cells    map[cellKey][]int
	points   []r2.Point
}

// NewPointIndex creates an index with the given bucket size. The bucket size
// should be on the order of the query radius.
func NewPointIndex(cellSize float64, points []r2.Point) *PointIndex {
	if cellSize <= 0 {
		cellSize = 1
	}
	idx := &PointIndex{
		cellSize: cellSize,
		cells:    make(map[cellKey][]int),
		points:   points,
	}
	for i, p := range points {
		k := idx.key(p)
		idx.cells[k] = append(idx.cells[k], i)
	}
	return idx
}

func (idx *PointIndex) key(p r2.Point) cellKey {
	return cellKey{
		X: int(math.Floor(p.X / idx.cellSize)),
		Y: int(math.Floor(p.Y / idx.cellSize)),
	}
}

// Within returns the indices of all points with distance strictly less than
// radius from center.
func (idx *PointIndex) Within(center r2.Point, radius float64) []int {
	reach := int(math.Ceil(radius/idx.cellSize)) + 1
	ck := idx.key(center)

	var result []int
	for dx := -reach; dx <= reach; dx++ {
		for dy := -reach; dy <= reach; dy++ {
			for _, i := range idx.cells[cellKey{ck.X + dx, ck.Y + dy}] {
				if idx.points[i].Sub(center).Norm() < radius {
					result = append(result, i)
				}
			}
		}
	}
	return result
}

// RectIndex is a uniform grid-bucket index over rectangles, keyed by the grid
// cells each rectangle covers. Search returns candidate ids; callers apply
// exact geometry afterwards.
type RectIndex struct {
	cellSize float64
	cells    map[cellKey][]int
}

// NewRectIndex creates a rectangle index with the given bucket size.
func NewRectIndex(cellSize float64) *RectIndex {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &RectIndex{
		cellSize: cellSize,
		cells:    make(map[cellKey][]int),
	}
}

func (idx *RectIndex) cover(rect r2.Rect) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(rect.X.Lo / idx.cellSize))
	y0 = int(math.Floor(rect.Y.Lo / idx.cellSize))
	x1 = int(math.Floor(rect.X.Hi / idx.cellSize))
	y1 = int(math.Floor(rect.Y.Hi / idx.cellSize))
	return
}

// Insert registers a rectangle under the given id.
func (idx *RectIndex) Insert(id int, rect r2.Rect) {
	x0, y0, x1, y1 := idx.cover(rect)
	for x := x0; x <= x1; x++ {
		for y := y0; y <= y1; y++ {
			k := cellKey{x, y}
			idx.cells[k] = append(idx.cells[k], id)
		}
	}
}

// Search returns the ids of all rectangles sharing at least one grid cell
// with rect, deduplicated.
func (idx *RectIndex) Search(rect r2.Rect) []int {
	x0, y0, x1, y1 := idx.cover(rect)
	seen := make(map[int]struct{})
	var result []int
	for x := x0; x <= x1; x++ {
		for y := y0; y <= y1; y++ {
			for _, id := range idx.cells[cellKey{x, y}] {
				if _, ok := seen[id]; ok {
					continue
				}
				seen[id] = struct{}{}
				result = append(result, id)
			}
		}
	}
	return result
}
