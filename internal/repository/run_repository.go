package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/velotrace/zoneval/internal/models"
)

// RunRepository handles database operations for analysis runs
type RunRepository struct {
	db *sql.DB
}

// NewRunRepository creates a new run repository
func NewRunRepository(db *sql.DB) *RunRepository {
	return &RunRepository{db: db}
}

// CreateRun inserts a pending run and returns its id.
func (r *RunRepository) CreateRun() (int64, error) {
	res, err := r.db.Exec(`INSERT INTO analysis_runs (status, start_time) VALUES (?, ?)`,
		models.RunStatusRunning, time.Now().Unix())
	if err != nil {
		return 0, fmt.Errorf("failed to create run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read run id: %w", err)
	}
	return id, nil
}

// MarkCompleted records counters and the JSON result summary of a run.
func (r *RunRepository) MarkCompleted(id int64, run models.AnalysisRun) error {
	_, err := r.db.Exec(`
		UPDATE analysis_runs
		SET status = ?, end_time = ?, point_count = ?, trajectory_count = ?,
			skipped_trajectories = ?, event_count = ?, result_summary = ?
		WHERE id = ?`,
		models.RunStatusCompleted, time.Now().Unix(), run.PointCount, run.TrajectoryCount,
		run.SkippedTrajectories, run.EventCount, run.ResultSummary, id)
	if err != nil {
		return fmt.Errorf("failed to mark run completed: %w", err)
	}
	return nil
}

// MarkFailed records the failure message of a run.
func (r *RunRepository) MarkFailed(id int64, msg string) error {
	_, err := r.db.Exec(`UPDATE analysis_runs SET status = ?, end_time = ?, error_message = ? WHERE id = ?`,
		models.RunStatusFailed, time.Now().Unix(), msg, id)
	if err != nil {
		return fmt.Errorf("failed to mark run failed: %w", err)
	}
	return nil
}

// GetRuns returns all runs, newest first.
func (r *RunRepository) GetRuns() ([]models.AnalysisRun, error) {
	rows, err := r.db.Query(`
		SELECT id, status, start_time, end_time, point_count, trajectory_count,
			skipped_trajectories, event_count, result_summary, error_message, created_at
		FROM analysis_runs ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []models.AnalysisRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// GetRunByID returns a single run, or nil if it does not exist.
func (r *RunRepository) GetRunByID(id int64) (*models.AnalysisRun, error) {
	rows, err := r.db.Query(`
		SELECT id, status, start_time, end_time, point_count, trajectory_count,
			skipped_trajectories, event_count, result_summary, error_message, created_at
		FROM analysis_runs WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query run: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	run, err := scanRun(rows)
	if err != nil {
		return nil, err
	}
	return &run, nil
}

func scanRun(rows *sql.Rows) (models.AnalysisRun, error) {
	var run models.AnalysisRun
	var startTime, endTime sql.NullInt64
	var summary, errMsg sql.NullString
	if err := rows.Scan(&run.ID, &run.Status, &startTime, &endTime, &run.PointCount,
		&run.TrajectoryCount, &run.SkippedTrajectories, &run.EventCount,
		&summary, &errMsg, &run.CreatedAt); err != nil {
		return run, fmt.Errorf("failed to scan run: %w", err)
	}
	if startTime.Valid {
		run.StartTime = startTime.Int64
	}
	if endTime.Valid {
		run.EndTime = endTime.Int64
	}
	if summary.Valid {
		run.ResultSummary = summary.String
	}
	if errMsg.Valid {
		run.ErrorMessage = errMsg.String
	}
	return run, nil
}
