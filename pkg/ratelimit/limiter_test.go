package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(t *testing.T, maxAttempts int, window time.Duration) (*LoginLimiter, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewLoginLimiter(client, maxAttempts, window), mr
}

func TestCheckAllowsBelowThreshold(t *testing.T) {
	limiter, _ := newTestLimiter(t, 5, 15*time.Minute)
	ctx := context.Background()

	require.NoError(t, limiter.Check(ctx, "a@x.com"))

	for i := 0; i < 4; i++ {
		require.NoError(t, limiter.RecordFailure(ctx, "a@x.com"))
	}

	assert.NoError(t, limiter.Check(ctx, "a@x.com"))
}

func TestCheckBlocksAtThreshold(t *testing.T) {
	limiter, _ := newTestLimiter(t, 5, 15*time.Minute)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, limiter.RecordFailure(ctx, "a@x.com"))
	}

	assert.ErrorIs(t, limiter.Check(ctx, "a@x.com"), ErrTooManyAttempts)

	// other accounts are unaffected
	assert.NoError(t, limiter.Check(ctx, "b@x.com"))
}

func TestCounterDecaysAfterWindow(t *testing.T) {
	limiter, mr := newTestLimiter(t, 2, time.Minute)
	ctx := context.Background()

	require.NoError(t, limiter.RecordFailure(ctx, "a@x.com"))
	require.NoError(t, limiter.RecordFailure(ctx, "a@x.com"))
	require.ErrorIs(t, limiter.Check(ctx, "a@x.com"), ErrTooManyAttempts)

	mr.FastForward(2 * time.Minute)

	assert.NoError(t, limiter.Check(ctx, "a@x.com"))
}

func TestKeyIsCaseInsensitive(t *testing.T) {
	limiter, _ := newTestLimiter(t, 1, time.Minute)
	ctx := context.Background()

	require.NoError(t, limiter.RecordFailure(ctx, "A@X.com"))
	assert.ErrorIs(t, limiter.Check(ctx, "a@x.com"), ErrTooManyAttempts)
}

func TestRedisDownSurfacesUnavailable(t *testing.T) {
	limiter, mr := newTestLimiter(t, 5, time.Minute)
	ctx := context.Background()

	mr.Close()

	assert.ErrorIs(t, limiter.Check(ctx, "a@x.com"), ErrRedisUnavailable)
	assert.ErrorIs(t, limiter.RecordFailure(ctx, "a@x.com"), ErrRedisUnavailable)
}
