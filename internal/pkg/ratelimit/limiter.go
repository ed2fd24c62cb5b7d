// internal/pkg/ratelimit/limiter.go
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limiter is a fixed-window counter over Redis, shared across instances.
type Limiter struct {
	client *redis.Client
	max    int64
	window time.Duration
}

func NewLimiter(client *redis.Client, max int64, window time.Duration) *Limiter {
	return &Limiter{
		client: client,
		max:    max,
		window: window,
	}
}

// Allow reports whether another request is allowed for key within the
// current window.
func (l *Limiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := fmt.Sprintf("ratelimit:auth:%s", key)

	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, fmt.Errorf("failed to increment rate limit counter: %w", err)
	}

	// Set expiration on first hit
	if count == 1 {
		l.client.Expire(ctx, redisKey, l.window)
	}

	return count <= l.max, nil
}
