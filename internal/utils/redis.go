package utils

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient returns a client for the configured Redis host, or nil when
// no host is configured.
func NewRedisClient(cfg Config) *redis.Client {
	if cfg.Cache.RedisHost == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:        cfg.Cache.RedisHost,
		DB:          cfg.Cache.RateLimitDB,
		DialTimeout: 2 * time.Second,
	})
}

// RedisReady reports whether rdb answers PING within one second.
// A nil client counts as ready since Redis is optional.
func RedisReady(ctx context.Context, rdb *redis.Client) bool {
	if rdb == nil {
		return true
	}
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		Warn("Redis ping failed", "error", err)
		return false
	}
	return true
}
