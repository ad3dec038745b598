package news

import (
	"encoding/json"
	"testing"
	"time"
)

func TestCollectNewsFindsArticlesAtDepth(t *testing.T) {
	raw := `{
		"props": {
			"pageProps": {
				"articles": [
					{
						"id": "a1",
						"title": "Deep article",
						"url": "/news/deep-article",
						"excerpt": "Buried in the blob",
						"publishedAt": "2024-03-08T10:00:00Z",
						"author": "Beat Writer",
						"image": "https://cdn.nba.com/manage/2024/deep.jpg"
					},
					{
						"id": "a1",
						"title": "Duplicate id",
						"url": "/news/deep-article"
					},
					{
						"title": "Not news",
						"url": "/teams/celtics"
					},
					{
						"title": "No link at all"
					}
				]
			}
		}
	}`
	var root any
	if err := json.Unmarshal([]byte(raw), &root); err != nil {
		t.Fatalf("bad fixture: %v", err)
	}

	items := collectNews(root, time.Now())
	if len(items) != 1 {
		t.Fatalf("expected 1 article (dedupe + filters), got %d", len(items))
	}

	item := items[0]
	if item.URL != "https://www.nba.com/news/deep-article" {
		t.Fatalf("expected relative url absolutized, got %q", item.URL)
	}
	if item.Title != "Deep article" || item.Content != "Buried in the blob" {
		t.Fatalf("unexpected item %+v", item)
	}
	if item.Image != "https://cdn.nba.com/manage/2024/deep.jpg" {
		t.Fatalf("unexpected image %q", item.Image)
	}
	if item.Author != "Beat Writer" {
		t.Fatalf("unexpected author %q", item.Author)
	}
}

func TestCollectNewsStopsAtDepthBound(t *testing.T) {
	article := map[string]any{"title": "Too deep", "url": "/news/too-deep"}
	var node any = article
	for i := 0; i < maxNewsDepth+2; i++ {
		node = map[string]any{"wrap": node}
	}
	if items := collectNews(node, time.Now()); items != nil {
		t.Fatalf("expected nothing beyond depth bound, got %+v", items)
	}

	node = map[string]any{"props": map[string]any{"pageProps": map[string]any{"articles": []any{article}}}}
	items := collectNews(node, time.Now())
	if len(items) != 1 {
		t.Fatalf("expected shallow article collected, got %d", len(items))
	}
}

func TestCollectNewsEmptyDocument(t *testing.T) {
	var root any
	if err := json.Unmarshal([]byte(`{"props": {"buildId": "xyz"}}`), &root); err != nil {
		t.Fatalf("bad fixture: %v", err)
	}
	if items := collectNews(root, time.Now()); items != nil {
		t.Fatalf("expected nil for document without articles, got %+v", items)
	}
}

func TestImageFromPrefersDirectField(t *testing.T) {
	node := map[string]any{
		"image": "https://cdn.nba.com/manage/2024/hero.jpg",
		"media": map[string]any{
			"image": map[string]any{"url": "https://cdn.nba.com/manage/2024/nested.jpg"},
		},
	}
	if got := imageFrom(node); got != "https://cdn.nba.com/manage/2024/hero.jpg" {
		t.Fatalf("expected direct field to win, got %q", got)
	}
}

func TestImageFromNestedShape(t *testing.T) {
	node := map[string]any{
		"heroImage": map[string]any{"src": "//cdn.nba.com/manage/2024/proto.jpg"},
	}
	if got := imageFrom(node); got != "https://cdn.nba.com/manage/2024/proto.jpg" {
		t.Fatalf("expected protocol-relative url normalized, got %q", got)
	}
}

func TestImageWalkPenalizesLogos(t *testing.T) {
	node := map[string]any{
		"content": map[string]any{
			"teamLogo":  "https://cdn.nba.com/logos/nba/celtics.svg",
			"heroPhoto": "https://cdn.nba.com/manage/2024/action.jpg",
		},
	}
	if got := imageFrom(node); got != "https://cdn.nba.com/manage/2024/action.jpg" {
		t.Fatalf("expected logo penalized below photo, got %q", got)
	}
}

func TestScoreImage(t *testing.T) {
	if got := scoreImage("heroImage", "https://cdn.nba.com/manage/2024/a.jpg"); got < imageScoreTarget {
		t.Fatalf("expected hero cdn jpg at or above target, got %d", got)
	}
	if got := scoreImage("teamLogo", "https://cdn.nba.com/logos/nba/a.svg"); got >= 0 {
		t.Fatalf("expected logo svg scored negative, got %d", got)
	}
}

func TestNormalizeImageURL(t *testing.T) {
	cases := map[string]string{
		"https://cdn.nba.com/a.jpg": "https://cdn.nba.com/a.jpg",
		"//cdn.nba.com/a.jpg":       "https://cdn.nba.com/a.jpg",
		"/manage/a.jpg":             "https://www.nba.com/manage/a.jpg",
		"data:image/png;base64,xx":  "",
		"  ":                        "",
	}
	for in, want := range cases {
		if got := normalizeImageURL(in); got != want {
			t.Fatalf("normalizeImageURL(%q) = %q, want %q", in, got, want)
		}
	}
}
