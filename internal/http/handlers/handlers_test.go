package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	appscoreboard "nba-live-service/internal/app/scoreboard"
	"nba-live-service/internal/domain"
	"nba-live-service/internal/poller"
	"nba-live-service/internal/scoreboard"
	"nba-live-service/internal/snapshots"
	"nba-live-service/internal/store"
)

type stubFetcher struct {
	lastReq scoreboard.Request
	resp    domain.ScoreboardResponse
}

func (f *stubFetcher) Fetch(ctx context.Context, req scoreboard.Request) domain.ScoreboardResponse {
	_ = ctx
	f.lastReq = req
	return f.resp
}

func newService(resp domain.ScoreboardResponse) *appscoreboard.Service {
	s := store.NewMemoryStore()
	s.SetScoreboard(resp)
	return appscoreboard.NewService(s)
}

func decodeScoreboard(t *testing.T, rec *httptest.ResponseRecorder) domain.ScoreboardResponse {
	t.Helper()
	var resp domain.ScoreboardResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response json: %v", err)
	}
	return resp
}

func TestScoreboardRunsLiveCycle(t *testing.T) {
	fetcher := &stubFetcher{resp: domain.ScoreboardResponse{
		Matches: []domain.Match{{ID: "g1", HomeTeam: "Lakers"}},
		News:    []domain.NewsItem{{ID: "n1"}},
	}}
	h := NewHandler(newService(domain.ScoreboardResponse{}), fetcher, nil, nil, nil)

	rec := httptest.NewRecorder()
	h.Scoreboard(rec, httptest.NewRequest(http.MethodGet, "/scoreboard", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !fetcher.lastReq.IncludeMatches || !fetcher.lastReq.IncludeNews || fetcher.lastReq.Debug {
		t.Fatalf("unexpected fetch request: %+v", fetcher.lastReq)
	}
	resp := decodeScoreboard(t, rec)
	if len(resp.Matches) != 1 || len(resp.News) != 1 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Error {
		t.Fatalf("expected error=false")
	}
}

func TestScoreboardFallsBackToCacheWithoutFetcher(t *testing.T) {
	svc := newService(domain.ScoreboardResponse{
		Matches: []domain.Match{{ID: "g1", HomeTeam: "Lakers"}},
		News:    []domain.NewsItem{{ID: "n1"}},
	})
	h := NewHandler(svc, nil, nil, nil, nil)

	rec := httptest.NewRecorder()
	h.Scoreboard(rec, httptest.NewRequest(http.MethodGet, "/scoreboard", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	resp := decodeScoreboard(t, rec)
	if len(resp.Matches) != 1 || len(resp.News) != 1 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestScoreboardTypeScheduleOmitsNews(t *testing.T) {
	svc := newService(domain.ScoreboardResponse{
		Matches: []domain.Match{{ID: "g1"}},
		News:    []domain.NewsItem{{ID: "n1"}},
	})
	h := NewHandler(svc, nil, nil, nil, nil)

	rec := httptest.NewRecorder()
	h.Scoreboard(rec, httptest.NewRequest(http.MethodGet, "/scoreboard?type=schedule", nil))

	resp := decodeScoreboard(t, rec)
	if len(resp.Matches) != 1 {
		t.Fatalf("expected matches, got %+v", resp)
	}
	if len(resp.News) != 0 {
		t.Fatalf("expected news omitted, got %+v", resp.News)
	}
}

func TestScoreboardTypeNewsOmitsMatches(t *testing.T) {
	svc := newService(domain.ScoreboardResponse{
		Matches: []domain.Match{{ID: "g1"}},
		News:    []domain.NewsItem{{ID: "n1"}},
		Message: "schedule message",
	})
	h := NewHandler(svc, nil, nil, nil, nil)

	rec := httptest.NewRecorder()
	h.Scoreboard(rec, httptest.NewRequest(http.MethodGet, "/scoreboard?type=news", nil))

	resp := decodeScoreboard(t, rec)
	if len(resp.News) != 1 || len(resp.Matches) != 0 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Message != "" {
		t.Fatalf("expected schedule message dropped for news-only response")
	}
}

func TestScoreboardRejectsInvalidType(t *testing.T) {
	h := NewHandler(newService(domain.ScoreboardResponse{}), nil, nil, nil, nil)

	rec := httptest.NewRecorder()
	h.Scoreboard(rec, httptest.NewRequest(http.MethodGet, "/scoreboard?type=everything", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestScoreboardDebugRunsLiveFetch(t *testing.T) {
	fetcher := &stubFetcher{resp: domain.ScoreboardResponse{
		Matches:     []domain.Match{{ID: "live"}},
		News:        []domain.NewsItem{},
		SourceDebug: []domain.SourceAttempt{{Source: "nbacdn 2024-03-08", OK: true, Items: 1}},
	}}
	h := NewHandler(newService(domain.ScoreboardResponse{}), fetcher, nil, nil, nil)

	rec := httptest.NewRecorder()
	h.Scoreboard(rec, httptest.NewRequest(http.MethodGet, "/scoreboard?debug=1", nil))

	if !fetcher.lastReq.Debug || !fetcher.lastReq.IncludeMatches || !fetcher.lastReq.IncludeNews {
		t.Fatalf("unexpected fetch request: %+v", fetcher.lastReq)
	}
	resp := decodeScoreboard(t, rec)
	if len(resp.SourceDebug) != 1 {
		t.Fatalf("expected attempt trail, got %+v", resp)
	}
}

func TestScoreboardServesSnapshotForDate(t *testing.T) {
	dir := t.TempDir()
	w := snapshots.NewWriter(dir, 14)
	if err := w.WriteScoreboardSnapshot("2024-03-08", domain.ScoreboardResponse{
		Matches: []domain.Match{{ID: "stored"}},
	}); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	h := NewHandler(newService(domain.ScoreboardResponse{}), nil, snapshots.NewFSStore(dir), nil, nil)

	rec := httptest.NewRecorder()
	h.Scoreboard(rec, httptest.NewRequest(http.MethodGet, "/scoreboard?date=2024-03-08", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	resp := decodeScoreboard(t, rec)
	if len(resp.Matches) != 1 || resp.Matches[0].ID != "stored" {
		t.Fatalf("unexpected snapshot response: %+v", resp)
	}
}

func TestScoreboardRejectsBadDate(t *testing.T) {
	h := NewHandler(newService(domain.ScoreboardResponse{}), nil, nil, nil, nil)

	rec := httptest.NewRecorder()
	h.Scoreboard(rec, httptest.NewRequest(http.MethodGet, "/scoreboard?date=03-08-2024", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestScoreboardMissingSnapshotIsBadGateway(t *testing.T) {
	h := NewHandler(newService(domain.ScoreboardResponse{}), nil, snapshots.NewFSStore(t.TempDir()), nil, nil)

	rec := httptest.NewRecorder()
	h.Scoreboard(rec, httptest.NewRequest(http.MethodGet, "/scoreboard?date=2024-03-08", nil))

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
}

func TestMatchByID(t *testing.T) {
	svc := newService(domain.ScoreboardResponse{
		Matches: []domain.Match{{ID: "g1", HomeTeam: "Lakers"}},
	})
	h := NewHandler(svc, nil, nil, nil, nil)

	rec := httptest.NewRecorder()
	h.MatchByID(rec, httptest.NewRequest(http.MethodGet, "/matches/g1", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var m domain.Match
	if err := json.Unmarshal(rec.Body.Bytes(), &m); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if m.HomeTeam != "Lakers" {
		t.Fatalf("unexpected match: %+v", m)
	}
}

func TestMatchByIDNotFound(t *testing.T) {
	h := NewHandler(newService(domain.ScoreboardResponse{}), nil, nil, nil, nil)

	rec := httptest.NewRecorder()
	h.MatchByID(rec, httptest.NewRequest(http.MethodGet, "/matches/missing", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestMatchByIDInvalid(t *testing.T) {
	h := NewHandler(newService(domain.ScoreboardResponse{}), nil, nil, nil, nil)

	rec := httptest.NewRecorder()
	h.MatchByID(rec, httptest.NewRequest(http.MethodGet, "/matches/", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestNewsReturnsCachedItems(t *testing.T) {
	svc := newService(domain.ScoreboardResponse{
		News: []domain.NewsItem{{ID: "n1"}, {ID: "n2"}},
	})
	h := NewHandler(svc, nil, nil, nil, nil)

	rec := httptest.NewRecorder()
	h.News(rec, httptest.NewRequest(http.MethodGet, "/news", nil))

	var items []domain.NewsItem
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
}

func TestHealth(t *testing.T) {
	h := NewHandler(newService(domain.ScoreboardResponse{}), nil, nil, nil, nil)

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestReadyWithoutStatusFn(t *testing.T) {
	h := NewHandler(newService(domain.ScoreboardResponse{}), nil, nil, nil, nil)

	rec := httptest.NewRecorder()
	h.Ready(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestReadyReflectsPollerStatus(t *testing.T) {
	status := poller.Status{}
	h := NewHandler(newService(domain.ScoreboardResponse{}), nil, nil, nil, func() poller.Status { return status })

	rec := httptest.NewRecorder()
	h.Ready(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 before first success, got %d", rec.Code)
	}

	status = poller.Status{LastSuccess: time.Now()}
	rec = httptest.NewRecorder()
	h.Ready(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 after success, got %d", rec.Code)
	}
}

func TestScoreboardMethodNotAllowed(t *testing.T) {
	h := NewHandler(newService(domain.ScoreboardResponse{}), nil, nil, nil, nil)

	rec := httptest.NewRecorder()
	h.Scoreboard(rec, httptest.NewRequest(http.MethodPost, "/scoreboard", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}
