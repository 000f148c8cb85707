// api/db/redis.go
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	logger "github.com/dev-mohitbeniwal/folio/api/logging"
)

// RedisCache wraps the Redis client used for the page cache, the entity
// cache and the rate limiter. It is constructed once in main and injected
// wherever caching is needed.
//
// Redis being down is a degraded mode, not a fatal condition: the cache
// tracks availability and callers fall back to live behavior.
type RedisCache struct {
	client    *redis.Client
	available bool
}

// NewRedisCache connects to Redis. A failed ping does not return an
// error: the cache comes back unavailable and every request runs as if
// no cache existed.
func NewRedisCache(addr string) *RedisCache {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	c := &RedisCache{client: client}
	if _, err := client.Ping(ctx).Result(); err != nil {
		logger.Warn("Failed to connect to Redis, caching disabled", zap.Error(err))
		return c
	}

	c.available = true
	logger.Info("Successfully connected to Redis")
	return c
}

// Available reports whether the Redis connection was established.
func (c *RedisCache) Available() bool {
	return c.available
}

// Get returns the raw value stored under key. A missing key is reported
// as ("", nil) so callers only see real transport errors.
func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	} else if err != nil {
		return "", fmt.Errorf("failed to get key %s: %w", key, err)
	}
	return val, nil
}

// Set stores value under key with the given TTL.
func (c *RedisCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set key %s: %w", key, err)
	}
	return nil
}

// Delete removes a key. Used by the entity cache on writes.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}

// RateLimit implements a sliding-window counter per key.
func (c *RedisCache) RateLimit(ctx context.Context, key string, limit int, per time.Duration) (bool, error) {
	pipe := c.client.Pipeline()
	now := time.Now().UnixNano()
	key = fmt.Sprintf("ratelimit:%s", key)

	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", now-(per.Nanoseconds())))
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now), Member: now})
	pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, per)

	cmds, err := pipe.Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to execute rate limit commands: %w", err)
	}

	count := cmds[2].(*redis.IntCmd).Val()
	allowed := count <= int64(limit)
	logger.Debug("Rate limit check",
		zap.String("key", key),
		zap.Int64("count", count),
		zap.Int("limit", limit),
		zap.Bool("allowed", allowed))
	return allowed, nil
}

// Close closes the Redis connection.
func (c *RedisCache) Close() {
	if err := c.client.Close(); err != nil {
		logger.Error("Error closing Redis connection", zap.Error(err))
	}
}
