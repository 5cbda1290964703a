package repository

import (
	"context"

	"hvac-estimator/domain"
)

// EstimateRepository keeps the history of quotes given to customers.
type EstimateRepository interface {
	Save(ctx context.Context, record domain.EstimateRecord) error
	// List returns up to limit records, newest first.
	List(ctx context.Context, limit int) ([]domain.EstimateRecord, error)
}
