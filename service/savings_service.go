package service

import (
	"context"

	"hvac-estimator/domain"
	"hvac-estimator/estimator"
	"hvac-estimator/logger"
	"hvac-estimator/observability"
	"hvac-estimator/repository"
)

type SavingsService struct {
	rec *estimateRecorder
}

func NewSavingsService(
	repo repository.EstimateRepository,
	metrics observability.Recorder,
	log logger.Logger,
) *SavingsService {
	return &SavingsService{rec: newEstimateRecorder(repo, metrics, log)}
}

func (s *SavingsService) ProjectSavings(
	ctx context.Context,
	input domain.SavingsInput,
) (domain.SavingsResult, error) {
	return runEstimate(ctx, s.rec, domain.KindSavings, input, estimator.ProjectSavings)
}
