package database

import (
	"database/sql"
	"fmt"
)

// schema is the results schema. It is small and versioned with the binary;
// every statement is idempotent.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS analysis_runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		status TEXT NOT NULL DEFAULT 'pending',
		start_time INTEGER,
		end_time INTEGER,
		point_count INTEGER NOT NULL DEFAULT 0,
		trajectory_count INTEGER NOT NULL DEFAULT 0,
		skipped_trajectories INTEGER NOT NULL DEFAULT 0,
		event_count INTEGER NOT NULL DEFAULT 0,
		result_summary TEXT,
		error_message TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS interaction_events (
		id TEXT PRIMARY KEY,
		run_id INTEGER NOT NULL REFERENCES analysis_runs(id),
		x REAL NOT NULL,
		y REAL NOT NULL,
		algorithm TEXT NOT NULL,
		pet REAL,
		zone_id TEXT,
		classification TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_interaction_events_run ON interaction_events(run_id)`,
	`CREATE TABLE IF NOT EXISTS grid_cells (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id INTEGER NOT NULL REFERENCES analysis_runs(id),
		row INTEGER NOT NULL,
		col INTEGER NOT NULL,
		min_x REAL NOT NULL,
		min_y REAL NOT NULL,
		max_x REAL NOT NULL,
		max_y REAL NOT NULL,
		density INTEGER NOT NULL,
		zone_id TEXT,
		classification TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_grid_cells_run ON grid_cells(run_id)`,
}

// InitSchema creates the results tables if they do not exist yet.
func InitSchema(db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
