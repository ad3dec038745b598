package news

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"nba-live-service/internal/domain"
	"nba-live-service/internal/metrics"
	"nba-live-service/internal/providers"
)

// Aggregator runs the news fallback chain: each configured RSS feed in
// order, then each news landing page. The first source yielding at least one
// item wins.
type Aggregator struct {
	sources []providers.Source[domain.NewsItem]
	timeout time.Duration
	logger  *slog.Logger
}

// Config wires an aggregator.
type Config struct {
	Feeds      []string
	Pages      []string
	HTTPClient *http.Client
	Timeout    time.Duration
	Logger     *slog.Logger
	Metrics    *metrics.Recorder
}

// NewAggregator builds the chain from the configured feed and page URLs.
func NewAggregator(cfg Config) *Aggregator {
	feedClient := NewFeedClient(cfg.HTTPClient)
	pageClient := NewPageClient(cfg.HTTPClient)

	chain := make([]providers.NewsProvider, 0, len(cfg.Feeds)+len(cfg.Pages))
	for _, feed := range cfg.Feeds {
		chain = append(chain, feedSource{url: feed, client: feedClient})
	}
	for _, page := range cfg.Pages {
		chain = append(chain, pageSource{url: page, client: pageClient})
	}

	sources := make([]providers.Source[domain.NewsItem], 0, len(chain))
	for _, p := range chain {
		sources = append(sources, providers.Source[domain.NewsItem]{
			Name:  p.Name(),
			Fetch: instrumented(cfg.Metrics, p.Name(), p.FetchNews),
		})
	}

	return &Aggregator{sources: sources, timeout: cfg.Timeout, logger: cfg.Logger}
}

// feedSource and pageSource bind one URL to its client, giving every chain
// entry the provider shape.
type feedSource struct {
	url    string
	client *FeedClient
}

func (s feedSource) Name() string { return s.url }

func (s feedSource) FetchNews(ctx context.Context) ([]domain.NewsItem, error) {
	return s.client.FetchFeed(ctx, s.url)
}

type pageSource struct {
	url    string
	client *PageClient
}

func (s pageSource) Name() string { return s.url }

func (s pageSource) FetchNews(ctx context.Context) ([]domain.NewsItem, error) {
	return s.client.FetchPage(ctx, s.url)
}

var (
	_ providers.NewsProvider = feedSource{}
	_ providers.NewsProvider = pageSource{}
)

func instrumented(rec *metrics.Recorder, name string, fetch func(ctx context.Context) ([]domain.NewsItem, error)) func(ctx context.Context) ([]domain.NewsItem, error) {
	return func(ctx context.Context) ([]domain.NewsItem, error) {
		start := time.Now()
		items, err := fetch(ctx)
		rec.RecordSourceAttempt(name, time.Since(start), err != nil)
		return items, err
	}
}

// Fetch runs the chain. Exhaustion yields an empty result with the attempt
// trail, never an error.
func (a *Aggregator) Fetch(ctx context.Context) providers.ChainResult[domain.NewsItem] {
	return providers.FirstSuccess(ctx, a.timeout, a.logger, a.sources)
}
