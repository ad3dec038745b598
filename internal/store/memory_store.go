package store

import (
	"sync"

	"nba-live-service/internal/domain"
)

// MemoryStore keeps the latest scoreboard snapshot in memory. Each poll
// cycle replaces the whole snapshot; readers always see a consistent one.
type MemoryStore struct {
	mu      sync.RWMutex
	matches map[string]domain.Match
	order   []string
	news    []domain.NewsItem
	message string
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		matches: make(map[string]domain.Match),
	}
}

// ListMatches returns a copy of the current matches in insertion order.
func (s *MemoryStore) ListMatches() []domain.Match {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Match, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.matches[id])
	}
	return result
}

// GetMatch retrieves a match by ID.
func (s *MemoryStore) GetMatch(id string) (domain.Match, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.matches[id]
	return m, ok
}

// ListNews returns a copy of the current news items.
func (s *MemoryStore) ListNews() []domain.NewsItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.NewsItem, len(s.news))
	copy(result, s.news)
	return result
}

// Message returns the explanatory message from the last snapshot, if any.
func (s *MemoryStore) Message() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.message
}

// SetScoreboard replaces the existing snapshot with a new one.
func (s *MemoryStore) SetScoreboard(resp domain.ScoreboardResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.matches = make(map[string]domain.Match, len(resp.Matches))
	s.order = make([]string, 0, len(resp.Matches))
	for _, m := range resp.Matches {
		if _, dup := s.matches[m.ID]; dup {
			continue
		}
		s.matches[m.ID] = m
		s.order = append(s.order, m.ID)
	}

	s.news = make([]domain.NewsItem, len(resp.News))
	copy(s.news, resp.News)
	s.message = resp.Message
}
