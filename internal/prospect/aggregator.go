package prospect

import (
	"context"
	"fmt"
	"strings"

	"github.com/sdr-labs/signalsdr/internal/clients/brave"
	"github.com/sdr-labs/signalsdr/internal/domain/models"
	"github.com/sdr-labs/signalsdr/internal/scraper"
)

type searchProvider interface {
	Search(ctx context.Context, query string, freshness string, count int) ([]brave.Result, error)
}

type pageFetcher interface {
	Fetch(ctx context.Context, pageURL string) (*scraper.Page, error)
}

// Aggregator merges prospect signals from web search and from direct
// news-page scraping into one candidate pool per company. A source that
// cannot produce results contributes zero signals and a recorded reason;
// the remaining sources still run.
type Aggregator struct {
	cfg     Config
	search  searchProvider
	fetcher pageFetcher
}

// NewAggregator builds an aggregator. search may be nil when no search
// credential is configured; the search source is then skipped entirely.
func NewAggregator(cfg Config, search searchProvider, fetcher pageFetcher) *Aggregator {
	return &Aggregator{cfg: cfg, search: search, fetcher: fetcher}
}

// Aggregate collects prospect signals for one company from every configured
// source. newsURL may be empty, which disables the page-scrape source.
func (a *Aggregator) Aggregate(ctx context.Context, company, domain, newsURL string) models.ProspectResult {

	result := models.ProspectResult{Company: company, Domain: domain}

	if a.search == nil && newsURL == "" {
		result.SourceErrors = append(result.SourceErrors, "no prospect sources available")
		return result
	}

	if a.search != nil {
		signals := a.searchSignals(ctx, company, domain, &result)
		result.Signals = append(result.Signals, signals...)
	}

	if newsURL != "" {
		signals, err := a.newsPageSignals(ctx, newsURL)
		if err != nil {
			result.SourceErrors = append(result.SourceErrors,
				fmt.Sprintf("failed to fetch news page: %v", err))
		} else {
			result.Signals = append(result.Signals, signals...)
		}
	}

	return result
}

// searchSignals queries the provider once per category, in the fixed
// declared order. Results pointing back at the company's own domain are
// dropped as self-promotional.
func (a *Aggregator) searchSignals(ctx context.Context, company, domain string,
	result *models.ProspectResult) []models.ProspectSignal {

	var signals []models.ProspectSignal

	for _, category := range a.cfg.Categories {

		query := strings.ReplaceAll(category.Query, "{company}", company)

		results, err := a.search.Search(ctx, query, a.cfg.Freshness, a.cfg.MaxResults)
		if err != nil {
			result.SourceErrors = append(result.SourceErrors,
				fmt.Sprintf("search failed for %v: %v", category.Name, err))
			continue
		}

		for _, item := range results {
			if strings.Contains(item.URL, domain) {
				continue
			}
			signals = append(signals, models.ProspectSignal{
				Category:  category.Name,
				Headline:  item.Title,
				Snippet:   truncate(item.Description, maxSnippetLen),
				SourceURL: item.URL,
			})
		}
	}

	return signals
}

func (a *Aggregator) newsPageSignals(ctx context.Context, newsURL string) ([]models.ProspectSignal, error) {

	page, err := a.fetcher.Fetch(ctx, newsURL)
	if err != nil {
		return nil, err
	}

	return a.scanPageText(page.Text, newsURL), nil
}
