package cachemanager

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/zjrosen/leifetch/internal/log"
)

// LoadFunc fetches the value for key on a cache miss.
type LoadFunc[K comparable, V any] func(ctx context.Context, key K) (V, error)

// Stats counts cache hits and misses.
type Stats struct {
	Hits   uint64
	Misses uint64
}

// ReadThroughCache serves values from cache and calls load on a miss.
// Errors from load are returned as-is and never cached.
type ReadThroughCache[K comparable, V any] struct {
	cache  CacheManager[K, V]
	load   LoadFunc[K, V]
	ttl    time.Duration
	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewReadThroughCache stores loaded values in cache for ttl.
func NewReadThroughCache[K comparable, V any](cache CacheManager[K, V], load LoadFunc[K, V], ttl time.Duration) *ReadThroughCache[K, V] {
	return &ReadThroughCache[K, V]{
		cache: cache,
		load:  load,
		ttl:   ttl,
	}
}

// Get returns the cached value for key, loading and storing it on a miss.
func (r *ReadThroughCache[K, V]) Get(ctx context.Context, key K) (V, error) {
	if value, ok := r.cache.Get(ctx, key); ok {
		r.hits.Add(1)
		return value, nil
	}
	r.misses.Add(1)

	value, err := r.load(ctx, key)
	if err != nil {
		return value, err
	}

	r.cache.Set(ctx, key, value, r.ttl)
	log.Debug(log.CatCache, "cache fill", "key", key, "ttl", r.ttl)
	return value, nil
}

// Stats returns the hit and miss counts so far.
func (r *ReadThroughCache[K, V]) Stats() Stats {
	return Stats{Hits: r.hits.Load(), Misses: r.misses.Load()}
}
