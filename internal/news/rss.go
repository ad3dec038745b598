package news

import (
	"context"
	"fmt"
	"html"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"nba-live-service/internal/domain"
	"nba-live-service/internal/providers"
)

const (
	defaultAuthor = "NBA"
	maxItems      = 12
)

var (
	itemOpen     = regexp.MustCompile(`(?i)<item[^>]*>`)
	itemClose    = regexp.MustCompile(`(?i)</item>`)
	mediaURL     = regexp.MustCompile(`(?i)<media:content[^>]+url="([^"]+)"`)
	enclosureURL = regexp.MustCompile(`(?i)<enclosure[^>]+url="([^"]+)"`)
	imgSrcURL    = regexp.MustCompile(`(?i)<img[^>]+src="([^"]+)"`)
)

// FeedClient fetches one RSS feed and parses its items. Feeds in the wild
// are frequently malformed or silently replaced by HTML error pages, so
// parsing is tolerant: items are cut out by tag boundaries rather than run
// through a strict XML decoder, and broken items are skipped.
type FeedClient struct {
	httpClient httpDoer
	now        func() time.Time
}

// NewFeedClient constructs a feed client. A nil http client gets a default.
func NewFeedClient(client *http.Client) *FeedClient {
	return &FeedClient{
		httpClient: resolveHTTPClient(client),
		now:        time.Now,
	}
}

// FetchFeed downloads and parses one feed URL.
func (c *FeedClient) FetchFeed(ctx context.Context, feedURL string) ([]domain.NewsItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, err
	}
	providers.ApplyBrowserHeaders(req, "", "")
	req.Header.Set("Accept", "application/rss+xml, application/xml;q=0.9, */*;q=0.8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &providers.UpstreamStatusError{Source: feedURL, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedBytes))
	if err != nil {
		return nil, err
	}

	xml := string(body)
	if !strings.Contains(strings.ToLower(xml), "<item") {
		// Request succeeded but the payload is not a feed: redirected to
		// HTML, blocked, or the feed was retired.
		return nil, fmt.Errorf("no <item> elements in response from %s", feedURL)
	}

	return parseItems(xml, c.now()), nil
}

func parseItems(xml string, now time.Time) []domain.NewsItem {
	blocks := itemOpen.Split(xml, -1)
	if len(blocks) < 2 {
		return nil
	}

	items := make([]domain.NewsItem, 0, len(blocks)-1)
	for _, raw := range blocks[1:] {
		block := itemClose.Split(raw, 2)[0]

		title := cleanText(tagContent(block, "title"))
		link := html.UnescapeString(stripCDATA(tagContent(block, "link")))
		guid := stripCDATA(tagContent(block, "guid"))
		if link == "" {
			link = html.UnescapeString(guid)
		}
		if title == "" || link == "" {
			continue
		}

		id := guid
		if id == "" {
			id = link
		}

		item := domain.NewsItem{
			ID:          id,
			Title:       title,
			Content:     cleanText(tagContent(block, "description")),
			Image:       findImage(block),
			PublishedAt: parsePublishedAt(stripCDATA(tagContent(block, "pubDate")), now),
			Author:      authorOrDefault(cleanText(tagContent(block, "dc:creator"))),
			URL:         link,
		}
		items = append(items, item)

		if len(items) >= maxItems {
			break
		}
	}

	return items
}

// tagContent pulls the inner text of the first occurrence of tag in block.
func tagContent(block, tag string) string {
	re := regexp.MustCompile(`(?is)<` + regexp.QuoteMeta(tag) + `[^>]*>(.*?)</` + regexp.QuoteMeta(tag) + `>`)
	if m := re.FindStringSubmatch(block); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// findImage looks for an item image in the usual places, in order of
// reliability: media:content, enclosure, then any embedded img tag.
// Candidates pass through the same absolutize-and-reject filter as the
// landing-page walk, so data-URIs and logo assets never leak through.
func findImage(block string) string {
	for _, re := range []*regexp.Regexp{mediaURL, enclosureURL, imgSrcURL} {
		for _, m := range re.FindAllStringSubmatch(block, -1) {
			u := normalizeImageURL(html.UnescapeString(m[1]))
			if !likelyImageURL(u) {
				continue
			}
			if strings.HasSuffix(strings.ToLower(u), ".svg") || strings.Contains(strings.ToLower(u), "/logos/") {
				continue
			}
			return u
		}
	}
	return ""
}

func authorOrDefault(author string) string {
	if author != "" {
		return author
	}
	return defaultAuthor
}
