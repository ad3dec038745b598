package scoreboard

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"nba-live-service/internal/domain"
	"nba-live-service/internal/logging"
	"nba-live-service/internal/metrics"
	"nba-live-service/internal/news"
	"nba-live-service/internal/providers"
	"nba-live-service/internal/timeutil"
)

// noMatchesMessage explains an empty schedule without claiming to know
// whether the window is simply empty or every source was down.
const noMatchesMessage = "No game data available. There may be no games in the current date window, or the upstream sources may be temporarily unavailable. Try again later."

// Request selects which sides of the scoreboard a fetch cycle covers.
type Request struct {
	IncludeMatches bool
	IncludeNews    bool
	Debug          bool
}

// Config wires an orchestrator.
type Config struct {
	// Schedule is the fallback chain for match data, in priority order.
	Schedule []providers.MatchProvider
	// News is the news fallback chain; nil disables the news side.
	News *news.Aggregator

	SourceTimeout   time.Duration
	SourceTimezone  string
	DisplayTimezone string
	// PastDays/FutureDays bound the date window fetched around today.
	PastDays   int
	FutureDays int

	Logger  *slog.Logger
	Metrics *metrics.Recorder
}

// Orchestrator runs one fetch-and-normalize cycle: the schedule window and
// the news chain concurrently, joined into a single response. Each cycle
// builds its result from scratch; nothing is cached here.
type Orchestrator struct {
	schedule []providers.MatchProvider
	news     *news.Aggregator

	timeout    time.Duration
	sourceLoc  *time.Location
	displayLoc *time.Location
	pastDays   int
	futureDays int

	logger  *slog.Logger
	metrics *metrics.Recorder
	now     func() time.Time
}

// New constructs an orchestrator from the configuration.
func New(cfg Config) *Orchestrator {
	return &Orchestrator{
		schedule:   cfg.Schedule,
		news:       cfg.News,
		timeout:    cfg.SourceTimeout,
		sourceLoc:  providers.ResolveTimezone(cfg.SourceTimezone),
		displayLoc: providers.ResolveTimezone(cfg.DisplayTimezone),
		pastDays:   cfg.PastDays,
		futureDays: cfg.FutureDays,
		logger:     cfg.Logger,
		metrics:    cfg.Metrics,
		now:        time.Now,
	}
}

// Fetch runs the requested sides concurrently and merges the results.
// Failure of one side never fails the other: the failed side comes back as
// an empty slice, and Error stays false.
func (o *Orchestrator) Fetch(ctx context.Context, req Request) domain.ScoreboardResponse {
	var (
		wg            sync.WaitGroup
		matches       []domain.Match
		newsItems     []domain.NewsItem
		matchAttempts []domain.SourceAttempt
		newsAttempts  []domain.SourceAttempt
	)

	if req.IncludeMatches {
		wg.Add(1)
		go func() {
			defer wg.Done()
			matches, matchAttempts = o.fetchMatches(ctx)
		}()
	}
	if req.IncludeNews && o.news != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			newsItems, newsAttempts = o.fetchNews(ctx)
		}()
	}
	wg.Wait()

	resp := domain.ScoreboardResponse{
		Matches: matches,
		News:    newsItems,
	}
	if resp.Matches == nil {
		resp.Matches = []domain.Match{}
	}
	if resp.News == nil {
		resp.News = []domain.NewsItem{}
	}
	if req.IncludeMatches && len(resp.Matches) == 0 {
		resp.Message = noMatchesMessage
	}
	if req.Debug {
		resp.SourceDebug = append(matchAttempts, newsAttempts...)
	}

	return resp
}

// fetchMatches walks the date window day by day, running the full fallback
// chain per day. Days are independent: one day exhausting its chain does
// not stop the rest of the window.
func (o *Orchestrator) fetchMatches(ctx context.Context) ([]domain.Match, []domain.SourceAttempt) {
	today := o.now().In(o.sourceLoc)

	var (
		matches  []domain.Match
		attempts []domain.SourceAttempt
	)
	seen := make(map[string]struct{})

	for offset := -o.pastDays; offset <= o.futureDays; offset++ {
		date := today.AddDate(0, 0, offset).Format(timeutil.DateLayout)
		result := providers.FirstSuccess(ctx, o.timeout, o.logger, o.daySources(date))

		attempts = append(attempts, result.Attempts...)
		o.metrics.RecordChainOutcome(metrics.ChainSchedule, len(result.Attempts), result.Winner == "")

		for _, m := range result.Items {
			if _, dup := seen[m.ID]; dup {
				continue
			}
			seen[m.ID] = struct{}{}
			m.Date = timeutil.ProjectDate(m.Date, o.sourceLoc, o.displayLoc)
			matches = append(matches, m)
		}
	}

	logging.Info(o.logger, "schedule window fetched", logging.FieldCount, len(matches))
	return matches, attempts
}

func (o *Orchestrator) daySources(date string) []providers.Source[domain.Match] {
	sources := make([]providers.Source[domain.Match], 0, len(o.schedule))
	for _, p := range o.schedule {
		p := p
		sources = append(sources, providers.Source[domain.Match]{
			Name: fmt.Sprintf("%s %s", p.Name(), date),
			Fetch: func(ctx context.Context) ([]domain.Match, error) {
				start := time.Now()
				items, err := p.FetchMatches(ctx, date)
				o.metrics.RecordSourceAttempt(p.Name(), time.Since(start), err != nil)
				if statusErr, ok := providers.AsUpstreamStatusError(err); ok && statusErr.StatusCode == http.StatusTooManyRequests {
					o.metrics.RecordRateLimit(p.Name())
				}
				return items, err
			},
		})
	}
	return sources
}

func (o *Orchestrator) fetchNews(ctx context.Context) ([]domain.NewsItem, []domain.SourceAttempt) {
	result := o.news.Fetch(ctx)
	o.metrics.RecordChainOutcome(metrics.ChainNews, len(result.Attempts), result.Winner == "")
	logging.Info(o.logger, "news fetched", logging.FieldSource, result.Winner, logging.FieldCount, len(result.Items))
	return result.Items, result.Attempts
}
