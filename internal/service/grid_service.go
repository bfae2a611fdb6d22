package service

import (
	"github.com/velotrace/zoneval/internal/models"
	"github.com/velotrace/zoneval/internal/repository"
)

// GridService handles business logic for grid cells
type GridService struct {
	repo *repository.GridRepository
}

// NewGridService creates a new grid service
func NewGridService(repo *repository.GridRepository) *GridService {
	return &GridService{repo: repo}
}

// GetGridCells retrieves grid cells with filtering
func (s *GridService) GetGridCells(filter models.GridFilter) ([]models.GridCell, error) {
	return s.repo.GetGridCells(filter)
}
