package utils

import (
	"context"       // Context for Redis operations
	"encoding/json" // JSON encoding/decoding
	"errors"        // redis.Nil detection
	"time"          // Time durations

	"github.com/redis/go-redis/v9" // Redis client
)

// Cache keeps JSON-encoded values of one type in Redis. A nil client turns
// every read into a miss and every write into a no-op.
type Cache[T any] struct {
	rdb *redis.Client // Redis client, nil when caching is disabled
	ttl time.Duration // Lifetime of each entry
}

// NewCache returns a Cache writing entries with the given TTL
func NewCache[T any](rdb *redis.Client, ttl time.Duration) *Cache[T] {
	return &Cache[T]{rdb: rdb, ttl: ttl}
}

// Enabled reports whether a Redis client is configured
func (c *Cache[T]) Enabled() bool { return c.rdb != nil }

// Get returns the value under key and whether it was present
func (c *Cache[T]) Get(ctx context.Context, key string) (T, bool, error) {
	var v T
	if !c.Enabled() {
		return v, false, nil
	}
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return v, false, nil // Key does not exist
	}
	if err != nil {
		return v, false, err
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, false, err // Corrupt entry counts as a miss
	}
	return v, true, nil
}

// Set stores v under key
func (c *Cache[T]) Set(ctx context.Context, key string, v T) error {
	if !c.Enabled() {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, b, c.ttl).Err()
}

// Delete drops keys
func (c *Cache[T]) Delete(ctx context.Context, keys ...string) error {
	if !c.Enabled() || len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}
