package snapshots

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"nba-live-service/internal/domain"
)

// testWriter pins the writer clock so retention math does not depend on
// the machine date.
func testWriter(dir string, retentionDays int) *Writer {
	w := NewWriter(dir, retentionDays)
	w.now = func() time.Time { return time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC) }
	return w
}

func TestWriteScoreboardSnapshot(t *testing.T) {
	dir := t.TempDir()
	w := testWriter(dir, 14)

	snap := domain.ScoreboardResponse{
		Matches: []domain.Match{
			{ID: "b", Source: "nbacdn"},
			{ID: "a", Source: "espn"},
		},
		News:        []domain.NewsItem{{ID: "n1"}},
		SourceDebug: []domain.SourceAttempt{{Source: "nbacdn", OK: true}},
	}
	if err := w.WriteScoreboardSnapshot("2024-03-08", snap); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	raw, err := os.ReadFile(ScoreboardSnapshotPath(dir, "2024-03-08"))
	if err != nil {
		t.Fatalf("snapshot file missing: %v", err)
	}
	var loaded domain.ScoreboardResponse
	if err := json.Unmarshal(raw, &loaded); err != nil {
		t.Fatalf("invalid snapshot json: %v", err)
	}
	if len(loaded.Matches) != 2 || loaded.Matches[0].ID != "a" {
		t.Fatalf("expected matches sorted by id, got %+v", loaded.Matches)
	}
	if loaded.SourceDebug != nil {
		t.Fatalf("expected attempt trail stripped from snapshot")
	}
}

func TestWriteScoreboardSnapshotUpdatesManifest(t *testing.T) {
	dir := t.TempDir()
	w := testWriter(dir, 7)

	if err := w.WriteScoreboardSnapshot("2024-03-08", domain.ScoreboardResponse{}); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "manifest.json"))
	if err != nil {
		t.Fatalf("manifest missing: %v", err)
	}
	var m Manifest
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("invalid manifest json: %v", err)
	}
	if len(m.Scoreboard.Dates) != 1 || m.Scoreboard.Dates[0] != "2024-03-08" {
		t.Fatalf("unexpected manifest dates: %+v", m.Scoreboard.Dates)
	}
	if m.Retention.ScoreboardDays != 7 {
		t.Fatalf("expected retention recorded, got %d", m.Retention.ScoreboardDays)
	}
	if m.Scoreboard.LastRefreshed.IsZero() {
		t.Fatalf("expected lastRefreshed set")
	}
}

func TestWriteScoreboardSnapshotPrunesOldDates(t *testing.T) {
	dir := t.TempDir()
	// Clock pinned at 2024-03-10; 14-day retention cuts off at 2024-02-25.
	w := testWriter(dir, 14)

	if err := w.WriteScoreboardSnapshot("2024-02-01", domain.ScoreboardResponse{}); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if err := w.WriteScoreboardSnapshot("2024-03-08", domain.ScoreboardResponse{}); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	if _, err := os.Stat(ScoreboardSnapshotPath(dir, "2024-02-01")); !os.IsNotExist(err) {
		t.Fatalf("expected stale snapshot pruned, stat err: %v", err)
	}
	if _, err := os.Stat(ScoreboardSnapshotPath(dir, "2024-03-08")); err != nil {
		t.Fatalf("expected in-window snapshot kept: %v", err)
	}
}

func TestWriteScoreboardSnapshotRejectsEmptyDate(t *testing.T) {
	w := NewWriter(t.TempDir(), 14)
	if err := w.WriteScoreboardSnapshot("", domain.ScoreboardResponse{}); err == nil {
		t.Fatalf("expected error for empty date")
	}
}
