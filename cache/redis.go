package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is a Store backed by a shared redis instance so multiple replicas
// can share one cache. A broken redis degrades to cache misses rather than
// failing lookups.
type Redis struct {
	rdb *redis.Client
}

func NewRedis(addr, password string, db int) *Redis {
	return &Redis{
		rdb: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}
}

func (s *Redis) Get(ctx context.Context, key string) (string, bool) {
	value, err := s.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		slog.Warn("Failed to read from redis",
			slog.String("error", err.Error()),
			slog.String("key", key),
		)
		return "", false
	}
	return value, true
}

func (s *Redis) Set(ctx context.Context, key string, value string, ttl time.Duration) {
	if err := s.rdb.Set(ctx, key, value, ttl).Err(); err != nil {
		slog.Warn("Failed to write to redis",
			slog.String("error", err.Error()),
			slog.String("key", key),
		)
	}
}
