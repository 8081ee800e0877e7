package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore is a fixed-window counter backed by Redis, for deployments that
// run more than one instance and want a shared quota. The counter key carries
// the window TTL, so expiry doubles as the window reset.
type RedisStore struct {
	rdb      *redis.Client
	limit    int
	interval time.Duration
}

func NewRedisStore(rdb *redis.Client, limit int, interval time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, limit: limit, interval: interval}
}

func (s *RedisStore) key(clientID string) string {
	return fmt.Sprintf("ratelimit:%s", clientID)
}

// Allow implements Store. On a Redis error the store fails open: losing rate
// limiting briefly is preferable to taking chat down with the cache.
func (s *RedisStore) Allow(ctx context.Context, clientID string) (bool, error) {
	key := s.key(clientID)

	count, err := s.rdb.Incr(ctx, key).Result()
	if err != nil {
		slog.Warn("Rate limit store unavailable, failing open", "error", err)
		return true, nil
	}
	if count == 1 {
		if err := s.rdb.PExpire(ctx, key, s.interval).Err(); err != nil {
			slog.Warn("Failed to set rate limit window TTL", "error", err)
		}
	}

	return count <= int64(s.limit), nil
}
