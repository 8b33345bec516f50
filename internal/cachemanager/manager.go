// Package cachemanager provides a typed in-memory cache and a read-through
// wrapper used to avoid repeating registry lookups for the same identifier.
package cachemanager

import (
	"context"
	"time"
)

// CacheManager is a typed key/value cache. Each entry carries its own TTL.
type CacheManager[K comparable, V any] interface {
	// Get reports false for missing or expired keys.
	Get(ctx context.Context, key K) (V, bool)
	Set(ctx context.Context, key K, value V, ttl time.Duration)
}
