package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"hvac-estimator/domain"
	"hvac-estimator/logger"
	"hvac-estimator/observability"
	"hvac-estimator/repository"
)

// estimateRecorder is shared by the calculator services: it times each
// call, reports the outcome and appends successful estimates to the log.
type estimateRecorder struct {
	repo    repository.EstimateRepository
	metrics observability.Recorder
	log     logger.Logger
	now     func() time.Time
	newID   func() string
}

func newEstimateRecorder(
	repo repository.EstimateRepository,
	metrics observability.Recorder,
	log logger.Logger,
) *estimateRecorder {
	return &estimateRecorder{
		repo:    repo,
		metrics: metrics,
		log:     log,
		now:     time.Now,
		newID:   func() string { return uuid.New().String() },
	}
}

func classify(err error) string {
	switch {
	case err == nil:
		return outcomeOK
	case errors.Is(err, domain.ErrInvalidInput):
		return outcomeInvalidInput
	case errors.Is(err, domain.ErrTableIntegrity):
		return outcomeTableIntegrity
	default:
		return outcomeError
	}
}

func runEstimate[I, R any](
	ctx context.Context,
	rec *estimateRecorder,
	kind domain.EstimateKind,
	input I,
	calc func(I) (R, error),
) (R, error) {
	start := rec.now()
	result, err := calc(input)
	outcome := classify(err)
	rec.metrics.RecordEstimate(ctx, string(kind), outcome, rec.now().Sub(start))

	log := rec.log.WithFields(map[string]interface{}{"kind": string(kind)})
	if err != nil {
		if outcome == outcomeTableIntegrity {
			log.WithError(err).Error("reference table lookup failed", nil)
		} else {
			log.Debug("estimate rejected", map[string]interface{}{"error": err.Error()})
		}
		var zero R
		return zero, err
	}

	// the estimate log is not critical: a failed save never fails the estimate
	if err := rec.save(ctx, kind, input, result); err != nil {
		log.WithError(err).Warn("failed to save estimate", nil)
	}
	return result, nil
}

func (r *estimateRecorder) save(ctx context.Context, kind domain.EstimateKind, input, result any) error {
	in, err := json.Marshal(input)
	if err != nil {
		return err
	}
	out, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return r.repo.Save(ctx, domain.EstimateRecord{
		ID:        r.newID(),
		Kind:      kind,
		Input:     in,
		Result:    out,
		CreatedAt: r.now(),
	})
}
