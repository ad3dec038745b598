package news

import (
	"html"
	"regexp"
	"strings"
	"time"
)

var (
	cdataOpen  = regexp.MustCompile(`(?i)^<!\[CDATA\[`)
	cdataClose = regexp.MustCompile(`\]\]>$`)
	htmlTags   = regexp.MustCompile(`<[^>]+>`)
	whitespace = regexp.MustCompile(`\s+`)
)

func stripCDATA(s string) string {
	s = strings.TrimSpace(s)
	s = cdataOpen.ReplaceAllString(s, "")
	s = cdataClose.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

func stripHTML(s string) string {
	s = htmlTags.ReplaceAllString(s, " ")
	return strings.TrimSpace(whitespace.ReplaceAllString(s, " "))
}

// cleanText is the full sanitization applied to feed-sourced text: CDATA
// wrapper off, markup out, entities decoded.
func cleanText(s string) string {
	return html.UnescapeString(stripHTML(stripCDATA(s)))
}

// pubDateLayouts covers the timestamp shapes seen in feeds and page data.
var pubDateLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	time.RFC3339,
	"2006-01-02T15:04:05.000Z",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parsePublishedAt normalizes a raw timestamp to RFC3339 UTC, falling back
// to now for unparsable input so items always sort.
func parsePublishedAt(raw string, now time.Time) string {
	raw = strings.TrimSpace(raw)
	if raw != "" {
		for _, layout := range pubDateLayouts {
			if t, err := time.Parse(layout, raw); err == nil {
				return t.UTC().Format(time.RFC3339)
			}
		}
	}
	return now.UTC().Format(time.RFC3339)
}
