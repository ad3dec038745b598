package scoreboard

import "nba-live-service/internal/domain"

// Store defines the contract for persisting and retrieving the scoreboard.
type Store interface {
	ListMatches() []domain.Match
	GetMatch(id string) (domain.Match, bool)
	ListNews() []domain.NewsItem
	Message() string
	SetScoreboard(resp domain.ScoreboardResponse)
}

// Service coordinates scoreboard reads and snapshot replacement using a Store.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Matches returns the current set of matches.
func (s *Service) Matches() []domain.Match {
	return s.store.ListMatches()
}

// MatchByID returns a single match if present.
func (s *Service) MatchByID(id string) (domain.Match, bool) {
	return s.store.GetMatch(id)
}

// News returns the current news items.
func (s *Service) News() []domain.NewsItem {
	return s.store.ListNews()
}

// Scoreboard assembles the full cached snapshot in response shape.
func (s *Service) Scoreboard() domain.ScoreboardResponse {
	return domain.ScoreboardResponse{
		Matches: s.store.ListMatches(),
		News:    s.store.ListNews(),
		Message: s.store.Message(),
	}
}

// Replace swaps the cached snapshot with a new one.
func (s *Service) Replace(resp domain.ScoreboardResponse) {
	s.store.SetScoreboard(resp)
}
