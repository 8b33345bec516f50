package lookup

import (
	"context"
	"time"

	"github.com/zjrosen/leifetch/internal/cachemanager"
	"github.com/zjrosen/leifetch/internal/entity"
)

// CachedClient serves repeat lookups of the same identifier from memory.
// Failures are never cached.
type CachedClient struct {
	rtc *cachemanager.ReadThroughCache[string, entity.Record]
}

// NewCachedClient wraps next with a read-through cache keyed by the
// identifier exactly as typed. A ttl <= 0 uses cachemanager.DefaultExpiration.
func NewCachedClient(next Client, cache cachemanager.CacheManager[string, entity.Record], ttl time.Duration) *CachedClient {
	if ttl <= 0 {
		ttl = cachemanager.DefaultExpiration
	}
	return &CachedClient{
		rtc: cachemanager.NewReadThroughCache[string, entity.Record](cache, next.Lookup, ttl),
	}
}

// Lookup implements Client.
func (c *CachedClient) Lookup(ctx context.Context, lei string) (entity.Record, error) {
	return c.rtc.Get(ctx, lei)
}

// Stats returns cache hit and miss counts.
func (c *CachedClient) Stats() cachemanager.Stats {
	return c.rtc.Stats()
}
