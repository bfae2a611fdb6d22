package service

import (
	"github.com/velotrace/zoneval/internal/models"
	"github.com/velotrace/zoneval/internal/repository"
)

// RunService handles business logic for analysis runs
type RunService struct {
	repo *repository.RunRepository
}

// NewRunService creates a new run service
func NewRunService(repo *repository.RunRepository) *RunService {
	return &RunService{repo: repo}
}

// GetRuns returns all analysis runs, newest first
func (s *RunService) GetRuns() ([]models.AnalysisRun, error) {
	return s.repo.GetRuns()
}

// GetRunByID returns a single analysis run
func (s *RunService) GetRunByID(id int64) (*models.AnalysisRun, error) {
	return s.repo.GetRunByID(id)
}
