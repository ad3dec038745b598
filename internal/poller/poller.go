package poller

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"nba-live-service/internal/domain"
	"nba-live-service/internal/logging"
	"nba-live-service/internal/metrics"
	"nba-live-service/internal/scoreboard"
	"nba-live-service/internal/timeutil"
)

const defaultInterval = 30 * time.Second

// errEmptyCycle marks a refresh where every source in both chains came back
// empty. A single empty side is normal; both at once means the upstreams are
// unreachable.
var errEmptyCycle = errors.New("all sources returned no data")

// Fetcher produces one full scoreboard snapshot per call.
type Fetcher interface {
	Fetch(ctx context.Context, req scoreboard.Request) domain.ScoreboardResponse
}

// Sink receives the refreshed snapshot.
type Sink interface {
	Replace(resp domain.ScoreboardResponse)
}

// SnapshotWriter persists scoreboard snapshots to disk.
type SnapshotWriter interface {
	WriteScoreboardSnapshot(date string, snapshot domain.ScoreboardResponse) error
}

// Poller refreshes the scoreboard on an interval and writes today's snapshot
// to disk.
type Poller struct {
	fetcher  Fetcher
	sink     Sink
	writer   SnapshotWriter
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration
	now      func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the poller loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the poller has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Poller with sane defaults.
func New(fetcher Fetcher, sink Sink, writer SnapshotWriter, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		fetcher:  fetcher,
		sink:     sink,
		writer:   writer,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		now:      time.Now,
		done:     make(chan struct{}),
	}
}

// Start begins polling until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.ticker = time.NewTicker(p.interval)

	go func() {
		p.logInfo("poller started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))
		// Initial fetch to warm data on boot.
		p.fetchOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				p.logInfo("poller stopped")
				return
			case <-p.done:
				p.stopTicker()
				p.logInfo("poller stopped")
				return
			case <-p.ticker.C:
				p.fetchOnce(ctx)
			}
		}
	}()
}

// Stop halts the polling loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

func (p *Poller) fetchOnce(ctx context.Context) {
	start := time.Now()
	p.recordAttempt(start)

	resp := p.fetcher.Fetch(ctx, scoreboard.Request{IncludeMatches: true, IncludeNews: true})

	var cycleErr error
	if len(resp.Matches) == 0 && len(resp.News) == 0 {
		cycleErr = errEmptyCycle
	}
	if p.metrics != nil {
		p.metrics.RecordPollerCycle(time.Since(start), cycleErr)
	}
	if cycleErr != nil {
		p.logError("poller refresh came back empty", cycleErr, slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()))
		p.recordFailure(cycleErr, start)
		return
	}

	if p.sink != nil {
		p.sink.Replace(resp)
	}
	if p.writer != nil {
		today := timeutil.FormatDate(p.now().UTC())
		if writeErr := p.writer.WriteScoreboardSnapshot(today, resp); writeErr != nil {
			p.logError("poller snapshot write failed", writeErr)
		}
	}
	p.recordSuccess(start)
	p.logInfo("poller refreshed scoreboard",
		logging.FieldCount, len(resp.Matches),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
}

func (p *Poller) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) logInfo(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}

func (p *Poller) logError(msg string, err error, attrs ...any) {
	if p.logger != nil {
		p.logger.Error(msg, append(attrs, "error", err)...)
	}
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}
