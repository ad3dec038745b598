package providers

import (
	"context"

	"nba-live-service/internal/domain"
)

// MatchProvider defines how one upstream schedule source is fetched and
// normalized. The date parameter is a YYYY-MM-DD string in the source
// timezone indicating which day's games to fetch.
type MatchProvider interface {
	Name() string
	FetchMatches(ctx context.Context, date string) ([]domain.Match, error)
}

// NewsProvider fetches normalized news items from one upstream source.
type NewsProvider interface {
	Name() string
	FetchNews(ctx context.Context) ([]domain.NewsItem, error)
}
