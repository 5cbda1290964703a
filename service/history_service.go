package service

import (
	"context"
	"fmt"

	"hvac-estimator/domain"
	"hvac-estimator/repository"
)

// HistoryService reads back the estimate log.
type HistoryService struct {
	repo repository.EstimateRepository
}

func NewHistoryService(repo repository.EstimateRepository) *HistoryService {
	return &HistoryService{repo: repo}
}

func (s *HistoryService) Recent(ctx context.Context, limit int) ([]domain.EstimateRecord, error) {
	if limit < 0 {
		return nil, domain.NewValidationError("limit", "must not be negative")
	}
	if limit == 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		return nil, domain.NewValidationError("limit", fmt.Sprintf("must be at most %d", MaxHistoryLimit))
	}
	return s.repo.List(ctx, limit)
}
