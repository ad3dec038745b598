package config

// Config holds runtime configuration for the server.
type Config struct {
	Port            string
	PollInterval    Duration
	SourceTimeout   Duration
	SourceTimezone  string
	DisplayTimezone string
	PastDays        int
	FutureDays      int
	SnapshotDir     string
	Sources         SourcesConfig
	Metrics         MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults,
// then applies the optional YAML sources file on top.
func Load() Config {
	cfg := Config{
		Port:            envOrDefault(envPort, defaultPort),
		PollInterval:    durationEnvOrDefault(envPollInterval, defaultPollInterval),
		SourceTimeout:   durationEnvOrDefault(envSourceTimeout, defaultSourceTimeout),
		SourceTimezone:  envOrDefault(envSourceTimezone, defaultSourceTimezone),
		DisplayTimezone: envOrDefault(envDisplayTimezone, defaultDisplayTimezone),
		PastDays:        intEnvOrDefault(envPastDays, defaultPastDays),
		FutureDays:      intEnvOrDefault(envFutureDays, defaultFutureDays),
		SnapshotDir:     envOrDefault(envSnapshotDir, defaultSnapshotDir),
		Sources:         defaultSources(),
		Metrics:         loadMetrics(),
	}

	if path := envOrDefault(envSourcesFile, ""); path != "" {
		if overrides, err := LoadSourcesFile(path); err == nil {
			cfg.Sources = cfg.Sources.merge(overrides)
		}
	}
	return cfg
}
