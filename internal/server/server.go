package server

import (
	"context"
	"log/slog"
	"net/http"

	appscoreboard "nba-live-service/internal/app/scoreboard"
	"nba-live-service/internal/config"
	httpserver "nba-live-service/internal/http"
	"nba-live-service/internal/http/handlers"
	"nba-live-service/internal/http/middleware"
	"nba-live-service/internal/logging"
	"nba-live-service/internal/metrics"
	"nba-live-service/internal/news"
	"nba-live-service/internal/poller"
	"nba-live-service/internal/providers"
	"nba-live-service/internal/providers/espn"
	"nba-live-service/internal/providers/nbacdn"
	"nba-live-service/internal/providers/statsapi"
	"nba-live-service/internal/scoreboard"
	"nba-live-service/internal/snapshots"
	"nba-live-service/internal/store"
)

var metricsSetup = metrics.Setup

// pollerControl is the slice of the poller the server drives.
type pollerControl interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() poller.Status
}

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         *store.MemoryStore
	service       *appscoreboard.Service
	orchestrator  *scoreboard.Orchestrator
	httpServer    httpServer
	metricsServer httpServer
	poller        pollerControl
	metricsStop   func(context.Context) error
}

// New constructs a server with the default schedule chain and news wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithMetrics(cfg, logger, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	orch := buildOrchestrator(cfg, logger, recorder)
	memoryStore := store.NewMemoryStore()
	service := appscoreboard.NewService(memoryStore)

	writer := snapshots.NewWriter(cfg.SnapshotDir, cfg.PastDays+cfg.FutureDays+1)
	plr := poller.New(orch, service, writer, logger, recorder, cfg.PollInterval)
	httpSrv := buildHTTPServer(cfg, service, orch, logger, recorder, plr)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		store:         memoryStore,
		service:       service,
		orchestrator:  orch,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		poller:        plr,
		metricsStop:   metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, service *appscoreboard.Service, httpSrv httpServer, plr pollerControl) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		service:    service,
		httpServer: httpSrv,
		poller:     plr,
	}
}

// buildOrchestrator wires the schedule fallback chain and the news chain.
// Chain order is fixed: the NBA CDN is richest, ESPN covers most outages,
// stats.nba.com answers for dates the others drop.
func buildOrchestrator(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) *scoreboard.Orchestrator {
	schedule := []providers.MatchProvider{
		nbacdn.NewClient(nbacdn.Config{
			BaseURL:  cfg.Sources.NBACDNBaseURL,
			Timezone: cfg.SourceTimezone,
			Logger:   logger,
		}),
		espn.NewClient(espn.Config{
			BaseURL:  cfg.Sources.ESPNBaseURL,
			Timezone: cfg.SourceTimezone,
		}),
		statsapi.NewClient(statsapi.Config{
			BaseURL:  cfg.Sources.StatsBaseURL,
			Timezone: cfg.SourceTimezone,
		}),
	}

	aggregator := news.NewAggregator(news.Config{
		Feeds:   cfg.Sources.NewsFeeds,
		Pages:   cfg.Sources.NewsPages,
		Timeout: cfg.SourceTimeout,
		Logger:  logger,
		Metrics: recorder,
	})

	return scoreboard.New(scoreboard.Config{
		Schedule:        schedule,
		News:            aggregator,
		SourceTimeout:   cfg.SourceTimeout,
		SourceTimezone:  cfg.SourceTimezone,
		DisplayTimezone: cfg.DisplayTimezone,
		PastDays:        cfg.PastDays,
		FutureDays:      cfg.FutureDays,
		Logger:          logger,
		Metrics:         recorder,
	})
}

func buildHTTPServer(cfg config.Config, service *appscoreboard.Service, orch *scoreboard.Orchestrator, logger *slog.Logger, recorder *metrics.Recorder, plr pollerControl) httpServer {
	var statusFn func() poller.Status
	if plr != nil {
		statusFn = plr.Status
	}

	snaps := snapshots.NewFSStore(cfg.SnapshotDir)
	handler := handlers.NewHandler(service, orch, snaps, logger, statusFn)
	router := httpserver.NewRouter(handler)
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the poller and HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.poller.Start(ctx)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.poller.Stop(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("failed to stop poller", "error", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
