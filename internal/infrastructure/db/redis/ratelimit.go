package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// RateLimiter implements a fixed-window counter per key backed by Redis.
// Key format: ratelimit:<scope>:<key>
type RateLimiter struct {
	client *redis.Client
	log    zerolog.Logger
}

// NewRateLimiter creates a RateLimiter wrapping the given Redis client.
func NewRateLimiter(client *redis.Client, log zerolog.Logger) *RateLimiter {
	return &RateLimiter{client: client, log: log}
}

// Allow increments the window counter for key and reports whether the caller
// is still under limit. Redis failures fail open: throttling is protection,
// not a correctness invariant, so an unavailable Redis must not take the
// auth endpoints down with it.
func (rl *RateLimiter) Allow(ctx context.Context, scope, key string, limit int, window time.Duration) bool {
	if limit <= 0 {
		return true
	}
	if window <= 0 {
		window = time.Minute
	}

	redisKey := fmt.Sprintf("ratelimit:%s:%s", scope, key)
	count, err := rl.client.Incr(ctx, redisKey).Result()
	if err != nil {
		rl.log.Warn().Err(err).Str("scope", scope).Msg("rate limit check failed, allowing")
		return true
	}
	if count == 1 {
		if err := rl.client.Expire(ctx, redisKey, window).Err(); err != nil {
			rl.log.Warn().Err(err).Str("scope", scope).Msg("failed to set rate limit window")
		}
	}
	return count <= int64(limit)
}
