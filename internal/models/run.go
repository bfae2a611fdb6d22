package models

import "time"

// Run status constants.
const (
	RunStatusPending   = "pending"
	RunStatusRunning   = "running"
	RunStatusCompleted = "completed"
	RunStatusFailed    = "failed"
)

// AnalysisRun is one execution of the evaluation pipeline, persisted for the
// results API.
type AnalysisRun struct {
	ID int64 `json:"id" db:"id"`

	Status string `json:"status" db:"status"`

	// Execution info
	StartTime int64 `json:"start_time,omitempty" db:"start_time"` // Unix timestamp
	EndTime   int64 `json:"end_time,omitempty" db:"end_time"`     // Unix timestamp

	// Input/output counters
	PointCount          int `json:"point_count" db:"point_count"`
	TrajectoryCount     int `json:"trajectory_count" db:"trajectory_count"`
	SkippedTrajectories int `json:"skipped_trajectories" db:"skipped_trajectories"`
	EventCount          int `json:"event_count" db:"event_count"`

	// Results
	ResultSummary string `json:"result_summary,omitempty" db:"result_summary"` // JSON
	ErrorMessage  string `json:"error_message,omitempty" db:"error_message"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
