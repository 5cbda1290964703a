package service

import (
	"context"

	"hvac-estimator/domain"
	"hvac-estimator/estimator"
	"hvac-estimator/logger"
	"hvac-estimator/observability"
	"hvac-estimator/repository"
)

type CostService struct {
	rec *estimateRecorder
}

func NewCostService(
	repo repository.EstimateRepository,
	metrics observability.Recorder,
	log logger.Logger,
) *CostService {
	return &CostService{rec: newEstimateRecorder(repo, metrics, log)}
}

// EstimateCost quotes a replacement price range.
func (s *CostService) EstimateCost(
	ctx context.Context,
	input domain.CostInput,
) (domain.CostResult, error) {
	return runEstimate(ctx, s.rec, domain.KindCost, input, estimator.EstimateCost)
}
