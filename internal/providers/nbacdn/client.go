package nbacdn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"nba-live-service/internal/domain"
	"nba-live-service/internal/logging"
	"nba-live-service/internal/providers"
	"nba-live-service/internal/timeutil"
)

// Config controls how the client reaches the NBA CDN.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timezone   string
	Logger     *slog.Logger
}

// Client fetches the daily scoreboard from cdn.nba.com and maps games to
// domain matches. For live and finished games it additionally pulls the
// per-game boxscore, which carries linescores and player statistics the
// scoreboard omits.
type Client struct {
	baseURL    string
	httpClient httpDoer
	now        func() time.Time
	loc        *time.Location
	logger     *slog.Logger
}

// NewClient constructs a CDN client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		now:        time.Now,
		loc:        resolveLocation(cfg.Timezone),
		logger:     cfg.Logger,
	}
}

// Name identifies this source in fallback diagnostics.
func (c *Client) Name() string { return providerName }

// FetchMatches retrieves games for the given YYYY-MM-DD date (interpreted in
// the source timezone). Boxscore failures degrade the affected game to
// scoreboard-level detail instead of failing the whole fetch.
func (c *Client) FetchMatches(ctx context.Context, date string) ([]domain.Match, error) {
	compact, err := compactDate(date, c.loc, c.now)
	if err != nil {
		return nil, err
	}

	var payload scoreboardResponse
	url := fmt.Sprintf("%s/scoreboard/scoreboard_%s.json", c.baseURL, compact)
	if err := c.getJSON(ctx, url, &payload); err != nil {
		return nil, err
	}

	matches := make([]domain.Match, 0, len(payload.Scoreboard.Games))
	for _, g := range payload.Scoreboard.Games {
		if strings.TrimSpace(g.GameID) == "" {
			continue
		}

		var box *boxscoreGame
		if g.GameStatus == statusCodeLive || g.GameStatus == statusCodeFinished {
			box = c.fetchBoxscore(ctx, g.GameID)
		}

		matches = append(matches, mapGame(g, box, date, c.loc, c.now()))
	}

	return matches, nil
}

func (c *Client) fetchBoxscore(ctx context.Context, gameID string) *boxscoreGame {
	var payload boxscoreResponse
	url := fmt.Sprintf("%s/boxscore/boxscore_%s.json", c.baseURL, gameID)
	if err := c.getJSON(ctx, url, &payload); err != nil {
		logging.Warn(c.logger, "boxscore fetch failed", logging.FieldSource, providerName, "game_id", gameID, "error", err)
		return nil
	}
	if payload.Game.GameID == "" && payload.Game.HomeTeam.TeamID == 0 {
		return nil
	}
	return &payload.Game
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	providers.ApplyBrowserHeaders(req, upstreamOrigin, upstreamReferer)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &providers.UpstreamStatusError{
			Source:     providerName,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func compactDate(date string, loc *time.Location, now func() time.Time) (string, error) {
	if date == "" {
		return now().In(loc).Format(timeutil.CompactDateLayout), nil
	}
	parsed, err := timeutil.ParseDate(date)
	if err != nil {
		return "", fmt.Errorf("%s: invalid date %q: %w", providerName, date, err)
	}
	return parsed.Format(timeutil.CompactDateLayout), nil
}
