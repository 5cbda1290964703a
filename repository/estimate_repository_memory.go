package repository

import (
	"context"
	"sync"

	"hvac-estimator/domain"
)

// EstimateRepositoryMemory is an in-memory implementation of EstimateRepository.
// It keeps the newest capacity records in a ring and drops the oldest.
type EstimateRepositoryMemory struct {
	mu   sync.RWMutex
	data []domain.EstimateRecord
	next int
	full bool
}

func NewEstimateRepositoryMemory(capacity int) *EstimateRepositoryMemory {
	if capacity <= 0 {
		capacity = 1
	}
	return &EstimateRepositoryMemory{
		data: make([]domain.EstimateRecord, capacity),
	}
}

func (r *EstimateRepositoryMemory) Save(_ context.Context, record domain.EstimateRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[r.next] = record
	r.next = (r.next + 1) % len(r.data)
	if r.next == 0 {
		r.full = true
	}
	return nil
}

func (r *EstimateRepositoryMemory) List(_ context.Context, limit int) ([]domain.EstimateRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	size := r.next
	if r.full {
		size = len(r.data)
	}
	if limit <= 0 || limit > size {
		limit = size
	}
	out := make([]domain.EstimateRecord, 0, limit)
	for i := 1; i <= limit; i++ {
		out = append(out, r.data[(r.next-i+len(r.data))%len(r.data)])
	}
	return out, nil
}
