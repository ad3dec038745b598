package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"nba-live-service/internal/domain"
	"nba-live-service/internal/providers"
	"nba-live-service/internal/timeutil"
)

// Config controls how the client reaches the ESPN site API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timezone   string
}

// Client fetches the daily scoreboard from the ESPN site API. ESPN is the
// secondary schedule source: slightly less detailed than the NBA CDN, but it
// carries leader categories and headshot URLs in a single response.
type Client struct {
	baseURL    string
	httpClient httpDoer
	now        func() time.Time
	loc        *time.Location
}

// NewClient constructs an ESPN client with the provided configuration.
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
	compact, err := c.compactDate(date)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/scoreboard?dates=%s", c.baseURL, compact)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	providers.ApplyBrowserHeaders(req, "", "")

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

	var payload scoreboardResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	matches := make([]domain.Match, 0, len(payload.Events))
	for _, e := range payload.Events {
		if m, ok := mapEvent(e, c.loc, c.now()); ok {
			matches = append(matches, m)
		}
	}

	return matches, nil
}

func (c *Client) compactDate(date string) (string, error) {
	if date == "" {
		return c.now().In(c.loc).Format(timeutil.CompactDateLayout), nil
	}
	parsed, err := timeutil.ParseDate(date)
	if err != nil {
		return "", fmt.Errorf("%s: invalid date %q: %w", providerName, date, err)
	}
	return parsed.Format(timeutil.CompactDateLayout), nil
}
