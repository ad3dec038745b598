package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{envPort, envPollInterval, envSourceTimeout, envSourcesFile} {
		os.Unsetenv(key)
	}

	cfg := Load()
	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.PollInterval != 30*time.Second {
		t.Fatalf("expected 30s poll interval, got %s", cfg.PollInterval)
	}
	if cfg.SourceTimezone != "America/New_York" {
		t.Fatalf("unexpected source timezone %s", cfg.SourceTimezone)
	}
	if len(cfg.Sources.NewsFeeds) == 0 {
		t.Fatalf("expected default news feeds")
	}
}

func TestDurationEnvRejectsInvalid(t *testing.T) {
	t.Setenv(envPollInterval, "not-a-duration")
	if got := durationEnvOrDefault(envPollInterval, time.Minute); got != time.Minute {
		t.Fatalf("expected fallback duration, got %s", got)
	}

	t.Setenv(envPollInterval, "-5s")
	if got := durationEnvOrDefault(envPollInterval, time.Minute); got != time.Minute {
		t.Fatalf("expected fallback for negative duration, got %s", got)
	}
}

func TestLoadSourcesFileOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sources.yaml")
	body := "espn_base_url: https://example.test/espn\nnews_feeds:\n  - https://example.test/rss\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}

	overrides, err := LoadSourcesFile(path)
	if err != nil {
		t.Fatalf("load sources file: %v", err)
	}

	merged := defaultSources().merge(overrides)
	if merged.ESPNBaseURL != "https://example.test/espn" {
		t.Fatalf("expected override base url, got %s", merged.ESPNBaseURL)
	}
	if len(merged.NewsFeeds) != 1 || merged.NewsFeeds[0] != "https://example.test/rss" {
		t.Fatalf("expected overridden feeds, got %v", merged.NewsFeeds)
	}
	// Fields absent from the file keep their defaults.
	if merged.NBACDNBaseURL != defaultSources().NBACDNBaseURL {
		t.Fatalf("expected default cdn base url, got %s", merged.NBACDNBaseURL)
	}
}

func TestLoadSourcesFileMissing(t *testing.T) {
	if _, err := LoadSourcesFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestBoolEnvVariants(t *testing.T) {
	cases := map[string]bool{"1": true, "true": true, "YES": true, "0": false, "false": false, "no": false, "weird": true}
	for raw, want := range cases {
		t.Setenv(envMetricsOn, raw)
		if got := boolEnvOrDefault(envMetricsOn, true); got != want {
			t.Fatalf("raw %q expected %v, got %v", raw, want, got)
		}
	}
}
