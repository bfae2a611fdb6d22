package service

import (
	"github.com/velotrace/zoneval/internal/models"
	"github.com/velotrace/zoneval/internal/repository"
)

// InteractionService handles business logic for interaction events
type InteractionService struct {
	repo *repository.InteractionRepository
}

// NewInteractionService creates a new interaction service
func NewInteractionService(repo *repository.InteractionRepository) *InteractionService {
	return &InteractionService{repo: repo}
}

// GetInteractions retrieves interaction events with filtering
func (s *InteractionService) GetInteractions(filter models.InteractionFilter) ([]models.InteractionEvent, error) {
	return s.repo.GetInteractions(filter)
}

// Summary holds event counts grouped by zone classification.
type Summary struct {
	Total      int     `json:"total"`
	In         int     `json:"in"`
	Out        int     `json:"out"`
	PercentIn  float64 `json:"percent_in"`
	PercentOut float64 `json:"percent_out"`
}

// GetSummary returns event counts and percentages by {in, out}.
func (s *InteractionService) GetSummary() (Summary, error) {
	counts, err := s.repo.CountByClassification()
	if err != nil {
		return Summary{}, err
	}
	sum := Summary{
		In:  counts[string(models.ClassificationIn)],
		Out: counts[string(models.ClassificationOut)],
	}
	sum.Total = sum.In + sum.Out
	if sum.Total > 0 {
		sum.PercentIn = 100 * float64(sum.In) / float64(sum.Total)
		sum.PercentOut = 100 * float64(sum.Out) / float64(sum.Total)
	}
	return sum, nil
}
