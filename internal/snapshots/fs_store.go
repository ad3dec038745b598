package snapshots

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"nba-live-service/internal/domain"
)

// Store defines how snapshots are loaded.
type Store interface {
	LoadScoreboard(date string) (domain.ScoreboardResponse, error)
}

// FSStore loads snapshots from the filesystem.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed snapshot store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// LoadScoreboard reads a snapshot for the given date (YYYY-MM-DD) from disk.
// Files are expected at {basePath}/scoreboard/{date}.json with a
// ScoreboardResponse payload.
func (s *FSStore) LoadScoreboard(date string) (domain.ScoreboardResponse, error) {
	var payload domain.ScoreboardResponse
	if err := s.load(kindScoreboard, date, &payload); err != nil {
		return domain.ScoreboardResponse{}, err
	}
	if payload.Matches == nil {
		payload.Matches = []domain.Match{}
	}
	if payload.News == nil {
		payload.News = []domain.NewsItem{}
	}
	return payload, nil
}

func (s *FSStore) load(kind snapshotKind, date string, payload any) error {
	if s == nil {
		return errors.New("snapshot store not configured")
	}
	if date == "" {
		return errors.New("snapshot date required")
	}
	path := filepath.Join(s.basePath, string(kind), fmt.Sprintf("%s.json", date))
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return json.NewDecoder(f).Decode(payload)
}
