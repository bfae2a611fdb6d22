package compare

import (
	"log"
	"math"

	"github.com/velotrace/zoneval/internal/models"
)

// Raster is a row-major grid of density values over the focus bounding box.
// Cell (row, col) covers [MinX+col*CellSize, MinX+(col+1)*CellSize) x
// [MinY+row*CellSize, MinY+(row+1)*CellSize).
type Raster struct {
	MinX     float64   `json:"min_x"`
	MinY     float64   `json:"min_y"`
	CellSize float64   `json:"cell_size"`
	Cols     int       `json:"cols"`
	Rows     int       `json:"rows"`
	Values   []float64 `json:"values"`
}

// At returns the value of cell (row, col).
func (r *Raster) At(row, col int) float64 {
	return r.Values[row*r.Cols+col]
}

// KernelDensity computes a 2D Gaussian kernel density surface of the
// interaction locations over the focus bounding box, with fixed bandwidth
// sigma and raster resolution cellSize. Kernel contributions beyond three
// bandwidths are cut off. An empty event set yields an all-zero raster.
func KernelDensity(events []models.InteractionEvent, focus models.FocusArea, sigma, cellSize float64) *Raster {
	rect := focus.Polygon.BoundingRect()
	width := rect.X.Hi - rect.X.Lo
	height := rect.Y.Hi - rect.Y.Lo
	if width <= 0 || height <= 0 || sigma <= 0 || cellSize <= 0 {
		return &Raster{CellSize: cellSize}
	}

	cols := int(math.Ceil(width / cellSize))
	rows := int(math.Ceil(height / cellSize))

	raster := &Raster{
		MinX:     rect.X.Lo,
		MinY:     rect.Y.Lo,
		CellSize: cellSize,
		Cols:     cols,
		Rows:     rows,
		Values:   make([]float64, rows*cols),
	}

	cutoff := 3 * sigma
	reach := int(math.Ceil(cutoff / cellSize))
	norm := 1 / (2 * math.Pi * sigma * sigma)
	twoSigmaSq := 2 * sigma * sigma

	for _, e := range events {
		ecol := int(math.Floor((e.Location.X - rect.X.Lo) / cellSize))
		erow := int(math.Floor((e.Location.Y - rect.Y.Lo) / cellSize))

		for row := erow - reach; row <= erow+reach; row++ {
			if row < 0 || row >= rows {
				continue
			}
			cy := rect.Y.Lo + (float64(row)+0.5)*cellSize
			for col := ecol - reach; col <= ecol+reach; col++ {
				if col < 0 || col >= cols {
					continue
				}
				cx := rect.X.Lo + (float64(col)+0.5)*cellSize
				dx := cx - e.Location.X
				dy := cy - e.Location.Y
				d2 := dx*dx + dy*dy
				if d2 > cutoff*cutoff {
					continue
				}
				raster.Values[row*cols+col] += norm * math.Exp(-d2/twoSigmaSq)
			}
		}
	}

	log.Printf("[KernelDensity] %d events rasterized to %dx%d at bandwidth %.2f",
		len(events), rows, cols, sigma)
	return raster
}
