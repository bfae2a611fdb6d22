package compare

import (
	"log"
	"math"

	"github.com/golang/geo/r2"

	"github.com/velotrace/zoneval/internal/models"
	"github.com/velotrace/zoneval/internal/stats"
)

// GridDensity tiles the focus area's bounding box into square cells of
// cellSize and counts the interaction events falling into each cell. Cells
// whose centroid lies outside the focus area are dropped; remaining cell
// centroids are joined to the zone polygons like events are.
func GridDensity(events []models.InteractionEvent, focus models.FocusArea, zones []models.Zone, cellSize float64) []models.GridCell {
	rect := focus.Polygon.BoundingRect()
	width := rect.X.Hi - rect.X.Lo
	height := rect.Y.Hi - rect.Y.Lo
	if width <= 0 || height <= 0 || cellSize <= 0 {
		return nil
	}

	cols := int(math.Ceil(width / cellSize))
	rows := int(math.Ceil(height / cellSize))

	counts := make(map[[2]int]int)
	for _, e := range events {
		col := int(math.Floor((e.Location.X - rect.X.Lo) / cellSize))
		row := int(math.Floor((e.Location.Y - rect.Y.Lo) / cellSize))
		if col < 0 || col >= cols || row < 0 || row >= rows {
			continue
		}
		counts[[2]int{row, col}]++
	}

	var cells []models.GridCell
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			minX := rect.X.Lo + float64(col)*cellSize
			minY := rect.Y.Lo + float64(row)*cellSize
			centroid := r2.Point{X: minX + cellSize/2, Y: minY + cellSize/2}

			if !focus.Polygon.Contains(centroid) {
				continue
			}

			cell := models.GridCell{
				Row:            row,
				Col:            col,
				MinX:           minX,
				MinY:           minY,
				MaxX:           minX + cellSize,
				MaxY:           minY + cellSize,
				Centroid:       centroid,
				Density:        counts[[2]int{row, col}],
				Classification: models.ClassificationOut,
			}
			for _, z := range zones {
				if z.Polygon.Contains(centroid) {
					cell.Classification = models.ClassificationIn
					cell.ZoneID = z.ID
					break
				}
			}
			cells = append(cells, cell)
		}
	}

	log.Printf("[GridDensity] %dx%d grid over focus area, %d cells kept", rows, cols, len(cells))
	return cells
}

// DensitySummary aggregates grid cells by zone classification. CellCount
// times the cell area approximates the covered area.
type DensitySummary struct {
	Classification models.Classification `json:"classification"`
	MeanDensity    float64               `json:"mean_density"`
	CellCount      int                   `json:"cell_count"`
	TotalEvents    int                   `json:"total_events"`
}

// SummarizeDensity computes mean density and cell count grouped by {in, out}.
// Empty input yields zero-valued summaries for both groups.
func SummarizeDensity(cells []models.GridCell) []DensitySummary {
	groups := map[models.Classification][]float64{
		models.ClassificationIn:  nil,
		models.ClassificationOut: nil,
	}
	totals := make(map[models.Classification]int)
	for _, c := range cells {
		groups[c.Classification] = append(groups[c.Classification], float64(c.Density))
		totals[c.Classification] += c.Density
	}

	summaries := make([]DensitySummary, 0, 2)
	for _, class := range []models.Classification{models.ClassificationIn, models.ClassificationOut} {
		summaries = append(summaries, DensitySummary{
			Classification: class,
			MeanDensity:    stats.Mean(groups[class]),
			CellCount:      len(groups[class]),
			TotalEvents:    totals[class],
		})
	}
	return summaries
}
