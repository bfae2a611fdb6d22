package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/golang/geo/r2"

	"github.com/velotrace/zoneval/internal/database"
	"github.com/velotrace/zoneval/internal/models"
)

// InteractionRepository handles database operations for interaction events
type InteractionRepository struct {
	db *sql.DB
}

// NewInteractionRepository creates a new interaction repository
func NewInteractionRepository(db *sql.DB) *InteractionRepository {
	return &InteractionRepository{db: db}
}

// InsertEvents bulk-inserts the events of one run in a single transaction.
func (r *InteractionRepository) InsertEvents(runID int64, events []models.InteractionEvent) error {
	if len(events) == 0 {
		return nil
	}

	return database.Transaction(r.db, func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`
			INSERT INTO interaction_events (id, run_id, x, y, algorithm, pet, zone_id, classification)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare insert: %w", err)
		}
		defer stmt.Close()

		for _, e := range events {
			var pet sql.NullFloat64
			if e.PET != nil {
				pet = sql.NullFloat64{Float64: *e.PET, Valid: true}
			}
			var zoneID sql.NullString
			if e.ZoneID != "" {
				zoneID = sql.NullString{String: e.ZoneID, Valid: true}
			}
			if _, err := stmt.Exec(e.ID, runID, e.Location.X, e.Location.Y,
				string(e.Algorithm), pet, zoneID, string(e.Classification)); err != nil {
				return fmt.Errorf("failed to insert interaction event: %w", err)
			}
		}
		return nil
	})
}

// GetInteractions retrieves interaction events with filtering
func (r *InteractionRepository) GetInteractions(filter models.InteractionFilter) ([]models.InteractionEvent, error) {
	query := `SELECT id, x, y, algorithm, pet, zone_id, classification FROM interaction_events`

	var conditions []string
	var args []interface{}

	if filter.Algorithm != "" {
		conditions = append(conditions, "algorithm = ?")
		args = append(args, filter.Algorithm)
	}
	if filter.Classification != "" {
		conditions = append(conditions, "classification = ?")
		args = append(args, filter.Classification)
	}
	if filter.ZoneID != "" {
		conditions = append(conditions, "zone_id = ?")
		args = append(args, filter.ZoneID)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	query += " ORDER BY id"

	if filter.PageSize > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		query += " LIMIT ? OFFSET ?"
		args = append(args, filter.PageSize, (page-1)*filter.PageSize)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query interaction events: %w", err)
	}
	defer rows.Close()

	var events []models.InteractionEvent
	for rows.Next() {
		var e models.InteractionEvent
		var x, y float64
		var pet sql.NullFloat64
		var zoneID sql.NullString
		var algorithm, classification string

		if err := rows.Scan(&e.ID, &x, &y, &algorithm, &pet, &zoneID, &classification); err != nil {
			return nil, fmt.Errorf("failed to scan interaction event: %w", err)
		}
		e.Location = r2.Point{X: x, Y: y}
		e.Algorithm = models.Algorithm(algorithm)
		e.Classification = models.Classification(classification)
		if pet.Valid {
			v := pet.Float64
			e.PET = &v
		}
		if zoneID.Valid {
			e.ZoneID = zoneID.String
		}
		events = append(events, e)
	}

	return events, rows.Err()
}

// CountByClassification returns event counts grouped by classification.
func (r *InteractionRepository) CountByClassification() (map[string]int, error) {
	rows, err := r.db.Query(`SELECT classification, COUNT(*) FROM interaction_events GROUP BY classification`)
	if err != nil {
		return nil, fmt.Errorf("failed to count interaction events: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var class string
		var count int
		if err := rows.Scan(&class, &count); err != nil {
			return nil, fmt.Errorf("failed to scan count: %w", err)
		}
		counts[class] = count
	}
	return counts, rows.Err()
}
