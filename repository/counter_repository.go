package repository

import (
	"context"
	"time"
)

// CounterRepository backs fixed-window rate limiting. Incr bumps key and
// returns the new count; the first increment of a key starts its window.
type CounterRepository interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}
