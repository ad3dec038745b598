package news

import (
	"regexp"
	"strings"
	"time"

	"nba-live-service/internal/domain"
)

const siteRoot = "https://www.nba.com"

var (
	titleKeys    = []string{"title", "headline", "name"}
	urlKeys      = []string{"url", "link", "permalink", "slug"}
	idKeys       = []string{"id", "guid"}
	excerptKeys  = []string{"description", "excerpt", "dek", "summary", "subheadline"}
	dateKeys     = []string{"publishedAt", "publishDate", "date", "pubDate"}
	authorKeys   = []string{"author", "byline", "creator"}
	imageKeys    = []string{"image", "img", "thumbnail", "imageUrl", "thumbnailUrl", "heroImageUrl"}
	nestedImages = []string{"image", "thumbnail", "heroImage", "featuredImage", "promoImage"}
)

// Article lists sit several levels below the blob root
// (props.pageProps.<section>.articles[]); anything deeper is framework
// plumbing, not content.
const maxNewsDepth = 10

// collectNews walks an arbitrary JSON document and returns every object that
// looks like an article: a title plus a link under the news section. Items
// are deduplicated by id, capped, and the walk is depth-bounded.
func collectNews(root any, now time.Time) []domain.NewsItem {
	items := make([]domain.NewsItem, 0, maxItems)
	seen := make(map[string]struct{})

	var walk func(node any, depth int)
	walk = func(node any, depth int) {
		if len(items) >= maxItems || depth > maxNewsDepth {
			return
		}
		switch n := node.(type) {
		case []any:
			for _, v := range n {
				walk(v, depth+1)
			}
		case map[string]any:
			if item, ok := newsItemFrom(n, now); ok {
				if _, dup := seen[item.ID]; !dup {
					seen[item.ID] = struct{}{}
					items = append(items, item)
				}
			}
			for _, v := range n {
				walk(v, depth+1)
			}
		}
	}
	walk(root, 0)

	if len(items) == 0 {
		return nil
	}
	return items
}

func newsItemFrom(node map[string]any, now time.Time) (domain.NewsItem, bool) {
	title := cleanText(firstString(node, titleKeys))
	url := normalizeArticleURL(firstString(node, urlKeys))
	if title == "" || url == "" {
		return domain.NewsItem{}, false
	}
	// Everything under the news section qualifies; team pages, video hubs
	// and schedule links do not.
	if !strings.Contains(url, "/news") {
		return domain.NewsItem{}, false
	}

	id := firstString(node, idKeys)
	if id == "" {
		id = url
	}

	return domain.NewsItem{
		ID:          id,
		Title:       title,
		Content:     cleanText(firstString(node, excerptKeys)),
		Image:       imageFrom(node),
		PublishedAt: parsePublishedAt(firstString(node, dateKeys), now),
		Author:      authorOrDefault(cleanText(firstString(node, authorKeys))),
		URL:         url,
	}, true
}

func firstString(node map[string]any, keys []string) string {
	for _, k := range keys {
		if s, ok := node[k].(string); ok {
			if trimmed := strings.TrimSpace(s); trimmed != "" {
				return trimmed
			}
		}
	}
	return ""
}

func normalizeArticleURL(raw string) string {
	raw = strings.TrimSpace(raw)
	switch {
	case raw == "":
		return ""
	case strings.HasPrefix(raw, "http://"), strings.HasPrefix(raw, "https://"):
		return raw
	case strings.HasPrefix(raw, "/"):
		return siteRoot + raw
	default:
		return siteRoot + "/" + raw
	}
}

// Image resolution. The blob hides article images at wildly varying depths,
// so resolution runs in three passes of increasing cost: direct string
// fields, well-known nested shapes, then a bounded scoring walk.

const (
	maxImageDepth = 5
	// Arrays near the root are worth scanning broadly; deep ones rarely are.
	wideArrayLimit   = 50
	narrowArrayLimit = 10
	// A candidate at or above this score is good enough to stop the walk.
	imageScoreTarget = 10
)

var (
	imageExtPattern = regexp.MustCompile(`(?i)\.(jpg|jpeg|png|webp|gif)([?#]|$)`)
	heroKeyPattern  = regexp.MustCompile(`(?i)hero|featured|promo|cover`)
	imageKeyPattern = regexp.MustCompile(`(?i)image|thumbnail|thumb|photo|picture|media`)
	deepKeyPattern  = regexp.MustCompile(`(?i)image|photo|picture|media|hero|featured|promo|cover|thumbnail`)
)

func imageFrom(node map[string]any) string {
	if direct := normalizeImageURL(firstString(node, imageKeys)); likelyImageURL(direct) {
		return direct
	}

	for _, key := range nestedImages {
		nested, ok := node[key].(map[string]any)
		if !ok {
			continue
		}
		for _, field := range []string{"url", "src", "uri", "path"} {
			if s, ok := nested[field].(string); ok {
				if u := normalizeImageURL(s); likelyImageURL(u) {
					return u
				}
			}
		}
	}
	if media, ok := node["media"].(map[string]any); ok {
		if img, ok := media["image"].(map[string]any); ok {
			for _, field := range []string{"url", "src"} {
				if s, ok := img[field].(string); ok {
					if u := normalizeImageURL(s); likelyImageURL(u) {
						return u
					}
				}
			}
		}
	}

	return bestImageByWalk(node)
}

type imageCandidate struct {
	url   string
	score int
}

func bestImageByWalk(root map[string]any) string {
	var best imageCandidate

	var walk func(node any, depth int, parentKey string) bool
	walk = func(node any, depth int, parentKey string) (done bool) {
		if depth > maxImageDepth {
			return false
		}
		switch n := node.(type) {
		case []any:
			limit := wideArrayLimit
			if depth > 2 {
				limit = narrowArrayLimit
			}
			for i, v := range n {
				if i >= limit {
					break
				}
				if walk(v, depth+1, parentKey) {
					return true
				}
			}
		case map[string]any:
			for k, v := range n {
				if depth > 2 && !deepKeyPattern.MatchString(k) {
					continue
				}
				switch value := v.(type) {
				case string:
					u := normalizeImageURL(value)
					if !likelyImageURL(u) {
						continue
					}
					score := scoreImage(keyOr(k, parentKey), u)
					if score > best.score || best.url == "" {
						best = imageCandidate{url: u, score: score}
					}
					if score >= imageScoreTarget {
						return true
					}
				case map[string]any:
					if u := urlishField(value); likelyImageURL(u) {
						score := scoreImage(keyOr(k, parentKey), u) + 2
						if score > best.score || best.url == "" {
							best = imageCandidate{url: u, score: score}
						}
						if score >= imageScoreTarget {
							return true
						}
					}
					if walk(value, depth+1, k) {
						return true
					}
				case []any:
					if walk(value, depth+1, k) {
						return true
					}
				}
			}
		}
		return false
	}

	walk(root, 0, "")
	return best.url
}

func urlishField(node map[string]any) string {
	for _, field := range []string{"url", "src"} {
		if s, ok := node[field].(string); ok {
			if u := normalizeImageURL(s); u != "" {
				return u
			}
		}
	}
	return ""
}

func keyOr(key, fallback string) string {
	if key != "" {
		return key
	}
	return fallback
}

func scoreImage(key, url string) int {
	u := strings.ToLower(url)
	score := 0
	if heroKeyPattern.MatchString(key) {
		score += 6
	}
	if imageKeyPattern.MatchString(key) {
		score += 4
	}
	if strings.Contains(u, "cdn.nba.com") {
		score += 4
	}
	if strings.Contains(u, "ak-static.cms.nba.com") {
		score += 3
	}
	if imageExtPattern.MatchString(u) {
		score += 2
	}
	// Logos and vector art are never article images.
	if strings.HasSuffix(u, ".svg") || strings.Contains(u, "/logos/") {
		score -= 10
	}
	return score
}

func normalizeImageURL(raw string) string {
	raw = strings.TrimSpace(raw)
	switch {
	case raw == "", strings.HasPrefix(raw, "data:"):
		return ""
	case strings.HasPrefix(raw, "http://"), strings.HasPrefix(raw, "https://"):
		return raw
	case strings.HasPrefix(raw, "//"):
		return "https:" + raw
	case strings.HasPrefix(raw, "/"):
		return siteRoot + raw
	default:
		return raw
	}
}

func likelyImageURL(u string) bool {
	if u == "" {
		return false
	}
	s := strings.ToLower(u)
	if !strings.HasPrefix(s, "http") {
		return false
	}
	if imageExtPattern.MatchString(s) {
		return true
	}
	if strings.Contains(s, "cdn.nba.com") && (strings.Contains(s, "/manage/") || strings.Contains(s, "/images/")) {
		return true
	}
	return strings.Contains(s, "ak-static.cms.nba.com")
}
