package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	ErrTooManyAttempts  = errors.New("too many failed attempts")
	ErrRedisUnavailable = errors.New("rate limiter unavailable")
)

// LoginLimiter counts failed login attempts per email in Redis. The counter
// decays on its own window TTL; a successful login does not reset it early.
type LoginLimiter struct {
	redis       *redis.Client
	maxAttempts int
	window      time.Duration
}

func NewLoginLimiter(redisClient *redis.Client, maxAttempts int, window time.Duration) *LoginLimiter {
	return &LoginLimiter{
		redis:       redisClient,
		maxAttempts: maxAttempts,
		window:      window,
	}
}

// Check returns ErrTooManyAttempts once the failure count for email has
// reached the threshold within the current window.
func (l *LoginLimiter) Check(ctx context.Context, email string) error {
	count, err := l.redis.Get(ctx, attemptKey(email)).Int()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}

	if count >= l.maxAttempts {
		return ErrTooManyAttempts
	}

	return nil
}

// RecordFailure increments the failure counter for email, starting the decay
// window on the first failure.
func (l *LoginLimiter) RecordFailure(ctx context.Context, email string) error {
	key := attemptKey(email)

	count, err := l.redis.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}

	if count == 1 {
		if err := l.redis.Expire(ctx, key, l.window).Err(); err != nil {
			return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
		}
	}

	return nil
}

func attemptKey(email string) string {
	return fmt.Sprintf("login:failed:%s", strings.ToLower(email))
}
