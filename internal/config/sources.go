package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SourcesConfig lists the upstream endpoints for both fallback chains.
// Order matters: chains try entries in the order given here.
type SourcesConfig struct {
	NBACDNBaseURL string   `yaml:"nbacdn_base_url"`
	ESPNBaseURL   string   `yaml:"espn_base_url"`
	StatsBaseURL  string   `yaml:"stats_base_url"`
	NewsFeeds     []string `yaml:"news_feeds"`
	NewsPages     []string `yaml:"news_pages"`
}

func defaultSources() SourcesConfig {
	return SourcesConfig{
		NBACDNBaseURL: "https://cdn.nba.com/static/json/liveData",
		ESPNBaseURL:   "https://site.web.api.espn.com/apis/site/v2/sports/basketball/nba",
		StatsBaseURL:  "https://stats.nba.com/stats",
		NewsFeeds: []string{
			"https://www.nba.com/rss/nba_rss.xml",
			"https://www.nba.com/news/rss.xml",
			"https://www.nba.com/news/rss",
			"https://www.nba.com/rss/nba_rss.xml?category=top-stories",
		},
		NewsPages: []string{
			"https://www.nba.com/news",
			"https://www.nba.com/news/",
		},
	}
}

// LoadSourcesFile reads endpoint overrides from a YAML file.
func LoadSourcesFile(path string) (SourcesConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return SourcesConfig{}, fmt.Errorf("read sources file: %w", err)
	}

	var parsed SourcesConfig
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return SourcesConfig{}, fmt.Errorf("parse sources file: %w", err)
	}
	return parsed, nil
}

// merge overlays non-empty override fields onto the receiver.
func (s SourcesConfig) merge(overrides SourcesConfig) SourcesConfig {
	if overrides.NBACDNBaseURL != "" {
		s.NBACDNBaseURL = overrides.NBACDNBaseURL
	}
	if overrides.ESPNBaseURL != "" {
		s.ESPNBaseURL = overrides.ESPNBaseURL
	}
	if overrides.StatsBaseURL != "" {
		s.StatsBaseURL = overrides.StatsBaseURL
	}
	if len(overrides.NewsFeeds) > 0 {
		s.NewsFeeds = overrides.NewsFeeds
	}
	if len(overrides.NewsPages) > 0 {
		s.NewsPages = overrides.NewsPages
	}
	return s
}
