package service

import (
	"context"

	"hvac-estimator/domain"
	"hvac-estimator/estimator"
	"hvac-estimator/logger"
	"hvac-estimator/observability"
	"hvac-estimator/repository"
)

type LoadService struct {
	rec *estimateRecorder
}

func NewLoadService(
	repo repository.EstimateRepository,
	metrics observability.Recorder,
	log logger.Logger,
) *LoadService {
	return &LoadService{rec: newEstimateRecorder(repo, metrics, log)}
}

// EstimateLoad sizes heating and cooling equipment for a building.
func (s *LoadService) EstimateLoad(
	ctx context.Context,
	profile domain.BuildingProfile,
) (domain.LoadResult, error) {
	return runEstimate(ctx, s.rec, domain.KindLoad, profile, estimator.EstimateLoad)
}
