package services

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
	log "github.com/sirupsen/logrus"

	"github.com/sdr-labs/signalsdr/internal/metrics"
	"github.com/sdr-labs/signalsdr/internal/scraper"
)

type pageFetcher interface {
	Fetch(ctx context.Context, pageURL string) (*scraper.Page, error)
}

// CachedFetcher memoizes fetched pages by URL. Wrap the fetcher once and
// share the wrapped instance across all page consumers, so a company whose
// careers and news URLs coincide is only downloaded once per run window.
type CachedFetcher struct {
	fetcher pageFetcher
	cache   *gocache.Cache
}

func NewCachedFetcher(fetcher pageFetcher) *CachedFetcher {
	return &CachedFetcher{
		fetcher: fetcher,
		cache:   gocache.New(10*time.Minute, 20*time.Minute),
	}
}

func (c *CachedFetcher) Fetch(ctx context.Context, pageURL string) (*scraper.Page, error) {

	if cached, found := c.cache.Get(pageURL); found {
		page := cached.(scraper.Page)
		return &page, nil
	}

	start := time.Now()
	page, err := c.fetcher.Fetch(ctx, pageURL)
	metrics.StepDuration.WithLabelValues("fetch").Observe(time.Since(start).Seconds())

	if err != nil {
		return nil, err
	}

	if cacheErr := c.cache.Add(pageURL, *page, gocache.DefaultExpiration); cacheErr != nil {
		log.Errorf("failed to add page to cache: %v", cacheErr)
	}
	return page, nil
}
