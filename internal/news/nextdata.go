package news

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"

	"nba-live-service/internal/domain"
	"nba-live-service/internal/providers"
)

// PageClient extracts news from the embedded __NEXT_DATA__ JSON blob of a
// news landing page. It is the fallback when every RSS feed is dead: the
// blob's schema is undocumented and shifts between deployments, so
// extraction is a heuristic walk rather than a typed decode.
type PageClient struct {
	httpClient httpDoer
	now        func() time.Time
}

// NewPageClient constructs a page client. A nil http client gets a default.
func NewPageClient(client *http.Client) *PageClient {
	return &PageClient{
		httpClient: resolveHTTPClient(client),
		now:        time.Now,
	}
}

// FetchPage downloads one news page and walks its __NEXT_DATA__ payload.
func (c *PageClient) FetchPage(ctx context.Context, pageURL string) ([]domain.NewsItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}
	providers.ApplyBrowserHeaders(req, "", "")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &providers.UpstreamStatusError{Source: pageURL, StatusCode: resp.StatusCode}
	}

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return nil, err
	}

	raw := doc.Find("script#__NEXT_DATA__").First().Text()
	if raw == "" {
		return nil, fmt.Errorf("no __NEXT_DATA__ script in %s: page structure changed", pageURL)
	}

	var payload any
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("decoding __NEXT_DATA__ from %s: %w", pageURL, err)
	}

	return collectNews(payload, c.now()), nil
}
