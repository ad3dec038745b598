package config

import "time"

const (
	envPort            = "PORT"
	envPollInterval    = "POLL_INTERVAL"
	envSourceTimeout   = "SOURCE_TIMEOUT"
	envSourceTimezone  = "SOURCE_TIMEZONE"
	envDisplayTimezone = "DISPLAY_TIMEZONE"
	envPastDays        = "SCHEDULE_PAST_DAYS"
	envFutureDays      = "SCHEDULE_FUTURE_DAYS"
	envSnapshotDir     = "SNAPSHOT_DIR"
	envSourcesFile     = "SOURCES_FILE"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort = "4000"
	// Matches the refresh cadence of a live-scores view; each cycle is a
	// fresh fetch, so the interval is also the data staleness bound.
	defaultPollInterval = 30 * Duration(time.Second)
	// Per-source attempt budget inside a fallback chain.
	defaultSourceTimeout = 20 * Duration(time.Second)
	// Schedule dates are grouped by the league's home timezone.
	defaultSourceTimezone  = "America/New_York"
	defaultDisplayTimezone = "Asia/Shanghai"
	defaultPastDays        = 3
	defaultFutureDays      = 3
	defaultSnapshotDir     = "data/snapshots"
	defaultMetricsPort     = "9090"
)
