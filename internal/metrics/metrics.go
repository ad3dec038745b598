package metrics

import (
	"sync"
	"time"
)

type sourceStats struct {
	attempts        int
	errors          int
	rateLimitHits   int
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about source calls and
// fallback chains. All methods are nil-safe so call sites never need to
// guard against a disabled recorder.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*sourceStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*sourceStats),
		otel:  otel,
	}
}

// RecordSourceAttempt increments counters for one upstream call and stores
// the last observed latency.
func (r *Recorder) RecordSourceAttempt(source string, duration time.Duration, failed bool) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStatsLocked(source)
	stats.attempts++
	stats.lastCallLatency = duration
	if failed {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordSourceAttempt(source, duration, failed)
	}
}

// RecordRateLimit tracks that an upstream answered with a rate limit.
func (r *Recorder) RecordRateLimit(source string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.ensureStatsLocked(source).rateLimitHits++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRateLimit(source)
	}
}

// RecordChainOutcome tracks how deep a fallback chain had to go before a
// source answered, and whether the chain was exhausted.
func (r *Recorder) RecordChainOutcome(chain string, depth int, exhausted bool) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordChainOutcome(chain, depth, exhausted)
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordPollerCycle tracks poller cycles and errors.
func (r *Recorder) RecordPollerCycle(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordPoller(duration, err)
}

// Snapshot is a copy of the current stats for one source.
type Snapshot struct {
	Attempts        int
	Errors          int
	RateLimitHits   int
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(source string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	stats := r.snapshot(source)
	return Snapshot{
		Attempts:        stats.attempts,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		LastCallLatency: stats.lastCallLatency,
	}
}

// SourceAttempts returns the total attempts recorded for a source.
func (r *Recorder) SourceAttempts(source string) int {
	return r.Snapshot(source).Attempts
}

// SourceErrors returns the total failed attempts recorded for a source.
func (r *Recorder) SourceErrors(source string) int {
	return r.Snapshot(source).Errors
}

// ensureStatsLocked returns the stats entry for source, creating it if
// needed. Callers must hold r.mu.
func (r *Recorder) ensureStatsLocked(source string) *sourceStats {
	stats, ok := r.stats[source]
	if !ok {
		stats = &sourceStats{}
		r.stats[source] = stats
	}
	return stats
}

func (r *Recorder) snapshot(source string) sourceStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.stats[source]; ok && stats != nil {
		return *stats
	}
	return sourceStats{}
}
