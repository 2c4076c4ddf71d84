// Copyright (c) 2026 Demirhan Çelik Konstrüksiyon. All rights reserved.
// Author: yazilim@demirhancelik.com

/*
Package cache provides a thin JSON cache on top of Redis for public reads.

The public site is read-heavy and its content changes rarely (an admin edit
every few days), so every public listing is served from Redis when possible.

Policy:

  - Reads: Get on cache hit, fall through to PostgreSQL on miss.
  - Writes: the owning service invalidates its keys eagerly after every mutation.
  - TTL: a short backstop expiry bounds staleness if an invalidation is missed.

A cache failure is never fatal — callers fall back to the database.
*/
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache wraps a Redis client with JSON marshalling and fail-open semantics.
type Cache struct {
	client *redis.Client
	logger *slog.Logger
}

// New constructs a Cache around an existing Redis client.
func New(client *redis.Client, logger *slog.Logger) *Cache {
	return &Cache{client: client, logger: logger}
}

/*
Get loads the cached JSON value for key into target.

Returns:
  - bool: true on a cache hit with a successfully decoded value
*/
func (cache *Cache) Get(ctx context.Context, key string, target interface{}) bool {
	payload, err := cache.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			cache.logger.Warn("cache_get_failed", slog.String("key", key), slog.Any("error", err))
		}
		return false
	}

	// A corrupt cache entry is treated as a miss and dropped.
	if err := json.Unmarshal(payload, target); err != nil {
		cache.logger.Warn("cache_decode_failed", slog.String("key", key), slog.Any("error", err))
		_ = cache.client.Del(ctx, key).Err()
		return false
	}

	return true
}

// Set stores value under key as JSON with the given TTL. Failures are logged
// and swallowed: caching is an optimization, never a requirement.
func (cache *Cache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	payload, err := json.Marshal(value)
	if err != nil {
		cache.logger.Warn("cache_encode_failed", slog.String("key", key), slog.Any("error", err))
		return
	}

	if err := cache.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		cache.logger.Warn("cache_set_failed", slog.String("key", key), slog.Any("error", err))
	}
}

// Invalidate removes the given keys. Missing keys are not an error.
func (cache *Cache) Invalidate(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	if err := cache.client.Del(ctx, keys...).Err(); err != nil {
		cache.logger.Warn("cache_invalidate_failed", slog.Any("error", err))
	}
}
