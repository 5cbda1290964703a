package http

import (
	"context"
	"time"

	"hvac-estimator/repository"
)

// WindowLimiter is a fixed-window limiter over a shared counter store, so
// several site instances enforce one budget per client.
type WindowLimiter struct {
	counters repository.CounterRepository
	capacity int64
	window   time.Duration
	prefix   string
}

func NewWindowLimiter(counters repository.CounterRepository, capacity int, window time.Duration) *WindowLimiter {
	return &WindowLimiter{
		counters: counters,
		capacity: int64(capacity),
		window:   window,
		prefix:   "ratelimit:",
	}
}

func (l *WindowLimiter) Allow(ctx context.Context, clientKey string) (bool, error) {
	n, err := l.counters.Incr(ctx, l.prefix+clientKey, l.window)
	if err != nil {
		return false, err
	}
	return n <= l.capacity, nil
}
