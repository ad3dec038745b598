package handlers

import (
	"context"
	"errors"
	"log/slog"
	nethttp "net/http"
	"net/url"
	"strings"
	"time"

	appscoreboard "nba-live-service/internal/app/scoreboard"
	"nba-live-service/internal/domain"
	"nba-live-service/internal/logging"
	"nba-live-service/internal/poller"
	"nba-live-service/internal/scoreboard"
	"nba-live-service/internal/snapshots"
	"nba-live-service/internal/timeutil"
)

// Fetcher runs a live fetch-and-normalize cycle against the upstreams.
type Fetcher interface {
	Fetch(ctx context.Context, req scoreboard.Request) domain.ScoreboardResponse
}

// Handler wires HTTP routes to the scoreboard service.
type Handler struct {
	svc      *appscoreboard.Service
	fetcher  Fetcher
	snaps    snapshots.Store
	logger   *slog.Logger
	statusFn func() poller.Status
}

// NewHandler constructs a Handler.
func NewHandler(svc *appscoreboard.Service, fetcher Fetcher, snaps snapshots.Store, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		svc:      svc,
		fetcher:  fetcher,
		snaps:    snaps,
		logger:   logger,
		statusFn: statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	if h.statusFn().IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := h.statusFn().LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// Scoreboard returns the combined schedule and news payload.
// Query parameters: type=schedule|news|all (default all), debug=1 for the
// source attempt trail, date=YYYY-MM-DD to serve a stored snapshot.
func (h *Handler) Scoreboard(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	includeMatches, includeNews, ok := parseTypeParam(r.URL.Query().Get("type"))
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "invalid type (expected schedule, news, or all)", h.logger)
		return
	}
	debug := r.URL.Query().Get("debug") == "1"
	logger := loggerFromContext(r, h.logger)

	if dateParam := r.URL.Query().Get("date"); dateParam != "" {
		if _, err := time.Parse(timeutil.DateLayout, dateParam); err != nil {
			writeError(w, r, nethttp.StatusBadRequest, "invalid date format (expected YYYY-MM-DD)", h.logger)
			return
		}
		snap, err := h.loadSnapshot(dateParam)
		if err != nil {
			writeError(w, r, nethttp.StatusBadGateway, "snapshot unavailable", h.logger)
			return
		}
		logging.Info(logger, "served snapshot scoreboard", logging.FieldDate, dateParam, logging.FieldCount, len(snap.Matches))
		writeJSON(w, nethttp.StatusOK, filterResponse(snap, includeMatches, includeNews), h.logger)
		return
	}

	// The scoreboard route runs a fresh fetch-and-normalize cycle; the
	// cached side lives on /matches and /news.
	if h.fetcher != nil {
		resp := h.fetcher.Fetch(r.Context(), scoreboard.Request{
			IncludeMatches: includeMatches,
			IncludeNews:    includeNews,
			Debug:          debug,
		})
		logging.Info(logger, "served live scoreboard", logging.FieldCount, len(resp.Matches))
		writeJSON(w, nethttp.StatusOK, resp, h.logger)
		return
	}

	resp := filterResponse(h.svc.Scoreboard(), includeMatches, includeNews)
	logging.Info(logger, "served cached scoreboard", logging.FieldCount, len(resp.Matches))
	writeJSON(w, nethttp.StatusOK, resp, h.logger)
}

// Matches returns the current cached matches.
func (h *Handler) Matches(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	matches := h.svc.Matches()
	if matches == nil {
		matches = []domain.Match{}
	}
	writeJSON(w, nethttp.StatusOK, matches, h.logger)
}

// MatchByID returns a specific match if present.
func (h *Handler) MatchByID(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	// Expect path: /matches/{id}
	path := strings.TrimPrefix(r.URL.Path, "/matches")
	if path == "" || path == "/" {
		writeError(w, r, nethttp.StatusBadRequest, "invalid match id", h.logger)
		return
	}

	idRaw := strings.TrimPrefix(path, "/")
	id, err := url.PathUnescape(idRaw)
	if err != nil || id == "" || strings.ContainsAny(id, " \t/") {
		writeError(w, r, nethttp.StatusBadRequest, "invalid match id", h.logger)
		return
	}

	match, ok := h.svc.MatchByID(id)
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "match not found", h.logger)
		return
	}

	writeJSON(w, nethttp.StatusOK, match, h.logger)
}

// News returns the current cached news items.
func (h *Handler) News(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	news := h.svc.News()
	if news == nil {
		news = []domain.NewsItem{}
	}
	writeJSON(w, nethttp.StatusOK, news, h.logger)
}

func parseTypeParam(raw string) (includeMatches, includeNews, ok bool) {
	switch raw {
	case "", "all":
		return true, true, true
	case "schedule":
		return true, false, true
	case "news":
		return false, true, true
	default:
		return false, false, false
	}
}

// filterResponse narrows a full snapshot to the requested sides, keeping
// slices non-nil so clients always see arrays.
func filterResponse(resp domain.ScoreboardResponse, includeMatches, includeNews bool) domain.ScoreboardResponse {
	if !includeMatches {
		resp.Matches = nil
		resp.Message = ""
	}
	if !includeNews {
		resp.News = nil
	}
	if resp.Matches == nil {
		resp.Matches = []domain.Match{}
	}
	if resp.News == nil {
		resp.News = []domain.NewsItem{}
	}
	return resp
}

func (h *Handler) loadSnapshot(date string) (domain.ScoreboardResponse, error) {
	if h.snaps == nil {
		return domain.ScoreboardResponse{}, errors.New("snapshot store not configured")
	}
	return h.snaps.LoadScoreboard(date)
}
