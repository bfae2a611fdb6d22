package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/golang/geo/r2"

	"github.com/velotrace/zoneval/internal/database"
	"github.com/velotrace/zoneval/internal/models"
)

// GridRepository handles database operations for grid cells
type GridRepository struct {
	db *sql.DB
}

// NewGridRepository creates a new grid repository
func NewGridRepository(db *sql.DB) *GridRepository {
	return &GridRepository{db: db}
}

// InsertCells bulk-inserts the grid cells of one run in a single transaction.
func (r *GridRepository) InsertCells(runID int64, cells []models.GridCell) error {
	if len(cells) == 0 {
		return nil
	}

	return database.Transaction(r.db, func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`
			INSERT INTO grid_cells (run_id, row, col, min_x, min_y, max_x, max_y, density, zone_id, classification)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare insert: %w", err)
		}
		defer stmt.Close()

		for _, c := range cells {
			var zoneID sql.NullString
			if c.ZoneID != "" {
				zoneID = sql.NullString{String: c.ZoneID, Valid: true}
			}
			if _, err := stmt.Exec(runID, c.Row, c.Col, c.MinX, c.MinY, c.MaxX, c.MaxY,
				c.Density, zoneID, string(c.Classification)); err != nil {
				return fmt.Errorf("failed to insert grid cell: %w", err)
			}
		}
		return nil
	})
}

// GetGridCells retrieves grid cells with filtering
func (r *GridRepository) GetGridCells(filter models.GridFilter) ([]models.GridCell, error) {
	query := `SELECT row, col, min_x, min_y, max_x, max_y, density, zone_id, classification
		FROM grid_cells`

	var conditions []string
	var args []interface{}

	if filter.Classification != "" {
		conditions = append(conditions, "classification = ?")
		args = append(args, filter.Classification)
	}
	if filter.MinX != 0 || filter.MaxX != 0 {
		if filter.MinX != 0 {
			conditions = append(conditions, "max_x >= ?")
			args = append(args, filter.MinX)
		}
		if filter.MaxX != 0 {
			conditions = append(conditions, "min_x <= ?")
			args = append(args, filter.MaxX)
		}
	}
	if filter.MinY != 0 || filter.MaxY != 0 {
		if filter.MinY != 0 {
			conditions = append(conditions, "max_y >= ?")
			args = append(args, filter.MinY)
		}
		if filter.MaxY != 0 {
			conditions = append(conditions, "min_y <= ?")
			args = append(args, filter.MaxY)
		}
	}
	if filter.MinDensity > 0 {
		conditions = append(conditions, "density >= ?")
		args = append(args, filter.MinDensity)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	// Densest cells first
	query += " ORDER BY density DESC LIMIT 10000"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query grid cells: %w", err)
	}
	defer rows.Close()

	var cells []models.GridCell
	for rows.Next() {
		var c models.GridCell
		var zoneID sql.NullString
		var classification string
		if err := rows.Scan(&c.Row, &c.Col, &c.MinX, &c.MinY, &c.MaxX, &c.MaxY,
			&c.Density, &zoneID, &classification); err != nil {
			return nil, fmt.Errorf("failed to scan grid cell: %w", err)
		}
		if zoneID.Valid {
			c.ZoneID = zoneID.String
		}
		c.Classification = models.Classification(classification)
		c.Centroid = r2.Point{X: (c.MinX + c.MaxX) / 2, Y: (c.MinY + c.MaxY) / 2}
		cells = append(cells, c)
	}

	return cells, rows.Err()
}
