package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimitStore counts requests per caller in fixed windows backed by Redis.
// Key format: ratelimit:<key>; the counter expires with the window, so a new
// window starts automatically on the next hit.
type RateLimitStore struct {
	client *redis.Client
	window time.Duration
}

// NewRateLimitStore creates a store with the given window length.
func NewRateLimitStore(client *redis.Client, window time.Duration) *RateLimitStore {
	if window <= 0 {
		window = 15 * time.Minute
	}
	return &RateLimitStore{client: client, window: window}
}

// Hit registers one request for key and returns the count seen in the
// current window, including this one.
func (s *RateLimitStore) Hit(ctx context.Context, key string) (int64, error) {
	k := "ratelimit:" + key

	count, err := s.client.Incr(ctx, k).Result()
	if err != nil {
		return 0, fmt.Errorf("ratelimit incr: %w", err)
	}
	if count == 1 {
		if err := s.client.Expire(ctx, k, s.window).Err(); err != nil {
			return count, fmt.Errorf("ratelimit expire: %w", err)
		}
	}
	return count, nil
}
