package domain

// MatchStatus mirrors the shared contract for match lifecycle states.
type MatchStatus string

const (
	StatusUpcoming MatchStatus = "upcoming"
	StatusLive     MatchStatus = "live"
	StatusFinished MatchStatus = "finished"
)

// PlayerLeader is the top performer for one stat category on one team.
type PlayerLeader struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
	Value  int    `json:"value"`
}

// LinescorePeriod is one team's points in one period. Periods 1-4 are
// quarters; anything above 4 is overtime.
type LinescorePeriod struct {
	Period int `json:"period"`
	Value  int `json:"value"`
}

// Match is the canonical game shape exposed by the service. Scores are
// pointers because they are absent before tip-off.
type Match struct {
	ID             string            `json:"id"`
	Source         string            `json:"source"`
	HomeTeam       string            `json:"homeTeam"`
	AwayTeam       string            `json:"awayTeam"`
	HomeTeamID     int               `json:"homeTeamId,omitempty"`
	AwayTeamID     int               `json:"awayTeamId,omitempty"`
	HomeScore      *int              `json:"homeScore"`
	AwayScore      *int              `json:"awayScore"`
	Status         MatchStatus       `json:"status"`
	Date           string            `json:"date"`
	Time           string            `json:"time"`
	League         string            `json:"league"`
	Venue          string            `json:"venue"`
	HomeLinescores []LinescorePeriod `json:"homeLinescores,omitempty"`
	AwayLinescores []LinescorePeriod `json:"awayLinescores,omitempty"`

	HomeTopScorer    *PlayerLeader `json:"homeTopScorer,omitempty"`
	HomeTopRebounder *PlayerLeader `json:"homeTopRebounder,omitempty"`
	HomeTopAssister  *PlayerLeader `json:"homeTopAssister,omitempty"`
	AwayTopScorer    *PlayerLeader `json:"awayTopScorer,omitempty"`
	AwayTopRebounder *PlayerLeader `json:"awayTopRebounder,omitempty"`
	AwayTopAssister  *PlayerLeader `json:"awayTopAssister,omitempty"`
}

// NewsItem is one normalized article.
type NewsItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	Image       string `json:"image,omitempty"`
	PublishedAt string `json:"publishedAt"`
	Author      string `json:"author"`
	URL         string `json:"url"`
}

// SourceAttempt records the outcome of one source in a fallback chain.
// Purely diagnostic; only populated when the caller asks for debug output.
type SourceAttempt struct {
	Source string `json:"source"`
	OK     bool   `json:"ok"`
	Items  int    `json:"items"`
	Error  string `json:"error,omitempty"`
}

// ScoreboardResponse is the payload returned by one fetch-and-normalize cycle.
// An empty Matches or News slice is a valid, non-exceptional outcome.
type ScoreboardResponse struct {
	Matches     []Match         `json:"matches"`
	News        []NewsItem      `json:"news"`
	Error       bool            `json:"error"`
	Message     string          `json:"message,omitempty"`
	SourceDebug []SourceAttempt `json:"sourceDebug,omitempty"`
}

// IntPtr returns a pointer to v, for optional score fields.
func IntPtr(v int) *int {
	return &v
}
