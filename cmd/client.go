package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/zjrosen/leifetch/internal/cachemanager"
	"github.com/zjrosen/leifetch/internal/config"
	"github.com/zjrosen/leifetch/internal/entity"
	"github.com/zjrosen/leifetch/internal/fetcher"
	"github.com/zjrosen/leifetch/internal/log"
	"github.com/zjrosen/leifetch/internal/lookup"
	"github.com/zjrosen/leifetch/internal/tracing"
)

const tracingShutdownTimeout = 5 * time.Second

// newFetcher builds the lookup chain described by c: the registry client,
// the optional cache, then tracing. The returned func flushes pending spans.
func newFetcher(c config.Config) (*fetcher.Fetcher, func(), error) {
	loc, err := c.Display.Location()
	if err != nil {
		return nil, nil, err
	}
	policy, err := fetcher.ParsePolicy(c.Search.Overlap)
	if err != nil {
		return nil, nil, err
	}

	userAgent := c.Registry.UserAgent
	if userAgent == "" {
		userAgent = "leifetch/" + version
	}

	var client lookup.Client = lookup.NewGLEIFClient(
		c.Registry.BaseURL,
		lookup.WithTimeout(c.Registry.Timeout),
		lookup.WithUserAgent(userAgent),
	)

	var cached *lookup.CachedClient
	if c.Cache.Enabled {
		cache := cachemanager.NewInMemoryCacheManager[string, entity.Record](
			"lei-records", c.Cache.TTL, cachemanager.DefaultCleanupInterval)
		cached = lookup.NewCachedClient(client, cache, c.Cache.TTL)
		client = cached
		log.Debug(log.CatCache, "lookup cache enabled", "ttl", c.Cache.TTL)
	}

	provider, err := tracing.NewProvider(c.Tracing.ProviderConfig())
	if err != nil {
		return nil, nil, fmt.Errorf("initializing tracing: %w", err)
	}
	if provider.Enabled() {
		client = lookup.NewTracedClient(client, provider.Tracer())
	}

	shutdown := func() {
		if cached != nil {
			stats := cached.Stats()
			log.Info(log.CatCache, "lookup cache stats", "hits", stats.Hits, "misses", stats.Misses)
		}
		ctx, cancel := context.WithTimeout(context.Background(), tracingShutdownTimeout)
		defer cancel()
		if err := provider.Shutdown(ctx); err != nil {
			log.ErrorErr(log.CatTrace, "tracing shutdown", err)
		}
	}

	f := fetcher.New(client, c.Labels.FetcherLabels(),
		fetcher.WithLocation(loc),
		fetcher.WithPolicy(policy),
	)
	return f, shutdown, nil
}
