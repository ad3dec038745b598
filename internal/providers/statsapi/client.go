package statsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"nba-live-service/internal/domain"
	"nba-live-service/internal/providers"
	"nba-live-service/internal/timeutil"
)

// Config controls how the client reaches stats.nba.com.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timezone   string
}

// Client fetches the scoreboardV2 endpoint on stats.nba.com. It is the last
// resort in the schedule chain: the endpoint is frequently rate limited and
// carries no player statistics, but it answers for historical dates the CDN
// sometimes drops.
type Client struct {
	baseURL    string
	httpClient httpDoer
	now        func() time.Time
	loc        *time.Location
}

// NewClient constructs a stats API client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		now:        time.Now,
		loc:        resolveLocation(cfg.Timezone),
	}
}

// Name identifies this source in fallback diagnostics.
func (c *Client) Name() string { return providerName }

// FetchMatches retrieves games for the given YYYY-MM-DD date.
func (c *Client) FetchMatches(ctx context.Context, date string) ([]domain.Match, error) {
	gameDate, err := c.gameDate(date)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/scoreboardV2?DayOffset=0&LeagueID=00&gameDate=%s", c.baseURL, url.QueryEscape(gameDate))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	providers.ApplyBrowserHeaders(req, upstreamOrigin, upstreamReferer)
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &providers.UpstreamStatusError{
			Source:     providerName,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	var payload statsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	return mapResponse(payload, c.now()), nil
}

func (c *Client) gameDate(date string) (string, error) {
	if date == "" {
		return c.now().In(c.loc).Format(gameDateLayout), nil
	}
	parsed, err := timeutil.ParseDate(date)
	if err != nil {
		return "", fmt.Errorf("%s: invalid date %q: %w", providerName, date, err)
	}
	return parsed.Format(gameDateLayout), nil
}
