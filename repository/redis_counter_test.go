package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hvac-estimator/config"
)

func newTestRedisCounter(t *testing.T) (*RedisCounter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := NewRedisClient(config.RedisConfig{Address: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisCounter(client), mr
}

func TestRedisCounter_IncrWithinWindow(t *testing.T) {
	counter, mr := newTestRedisCounter(t)
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		got, err := counter.Incr(ctx, "rl:10.0.0.1", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.Equal(t, time.Minute, mr.TTL("rl:10.0.0.1"))
}

func TestRedisCounter_WindowExpires(t *testing.T) {
	counter, mr := newTestRedisCounter(t)
	ctx := context.Background()

	_, err := counter.Incr(ctx, "rl:k", time.Minute)
	require.NoError(t, err)
	_, err = counter.Incr(ctx, "rl:k", time.Minute)
	require.NoError(t, err)

	mr.FastForward(61 * time.Second)

	got, err := counter.Incr(ctx, "rl:k", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got)
}

func TestRedisCounter_Ping(t *testing.T) {
	counter, mr := newTestRedisCounter(t)
	require.NoError(t, counter.Ping(context.Background()))

	mr.Close()
	assert.Error(t, counter.Ping(context.Background()))
}

func TestRedisCounter_ServerDown(t *testing.T) {
	counter, mr := newTestRedisCounter(t)
	mr.Close()

	_, err := counter.Incr(context.Background(), "rl:k", time.Minute)
	assert.Error(t, err)
}

var errExpireDropped = errors.New("expire dropped")

// dropFirstExpire lets the INCR of the first pipeline through and fails its
// EXPIRE, leaving the key without a TTL.
type dropFirstExpire struct {
	dropped bool
}

func (h *dropFirstExpire) DialHook(next redis.DialHook) redis.DialHook { return next }

func (h *dropFirstExpire) ProcessHook(next redis.ProcessHook) redis.ProcessHook { return next }

func (h *dropFirstExpire) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		if h.dropped {
			return next(ctx, cmds)
		}

		var sent []redis.Cmder
		for _, cmd := range cmds {
			if cmd.Name() == "expire" {
				cmd.SetErr(errExpireDropped)
				h.dropped = true
				continue
			}
			sent = append(sent, cmd)
		}
		if err := next(ctx, sent); err != nil {
			return err
		}
		if h.dropped {
			return errExpireDropped
		}
		return nil
	}
}

func TestRedisCounter_RecoversFromLostExpire(t *testing.T) {
	mr := miniredis.RunT(t)
	client := NewRedisClient(config.RedisConfig{Address: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	client.AddHook(&dropFirstExpire{})
	counter := NewRedisCounter(client)
	ctx := context.Background()

	_, err := counter.Incr(ctx, "rl:k", time.Minute)
	require.ErrorIs(t, err, errExpireDropped)
	assert.Equal(t, time.Duration(0), mr.TTL("rl:k"))

	got, err := counter.Incr(ctx, "rl:k", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got)
	assert.Equal(t, time.Minute, mr.TTL("rl:k"))

	mr.FastForward(61 * time.Second)
	got, err = counter.Incr(ctx, "rl:k", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got)
}

func TestRedisCounter_LaterIncrKeepsWindow(t *testing.T) {
	counter, mr := newTestRedisCounter(t)
	ctx := context.Background()

	_, err := counter.Incr(ctx, "rl:k", time.Minute)
	require.NoError(t, err)
	mr.FastForward(40 * time.Second)

	_, err = counter.Incr(ctx, "rl:k", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 20*time.Second, mr.TTL("rl:k"))
}
