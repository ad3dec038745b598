package nbacdn

const providerName = "nbacdn"

type scoreboardResponse struct {
	Scoreboard scoreboardPayload `json:"scoreboard"`
}

type scoreboardPayload struct {
	GameDate string        `json:"gameDate"`
	Games    []gamePayload `json:"games"`
}

type gamePayload struct {
	GameID         string         `json:"gameId"`
	GameStatus     int            `json:"gameStatus"`
	GameStatusText string         `json:"gameStatusText"`
	Period         int            `json:"period"`
	GameClock      string         `json:"gameClock"`
	GameTimeUTC    string         `json:"gameTimeUTC"`
	HomeTeam       teamPayload    `json:"homeTeam"`
	AwayTeam       teamPayload    `json:"awayTeam"`
	Arena          arenaPayload   `json:"arena"`
	GameLeaders    leadersPayload `json:"gameLeaders"`
}

// teamPayload doubles as the scoreboard team shape and the richer boxscore
// team shape; the boxscore adds periods and per-player statistics.
type teamPayload struct {
	TeamID      int             `json:"teamId"`
	TeamCity    string          `json:"teamCity"`
	TeamName    string          `json:"teamName"`
	TeamTricode string          `json:"teamTricode"`
	Score       any             `json:"score"`
	Periods     []periodPayload `json:"periods"`
	Players     []playerPayload `json:"players"`
}

type periodPayload struct {
	Period int `json:"period"`
	Score  any `json:"score"`
}

type playerPayload struct {
	FirstName  string       `json:"firstName"`
	FamilyName string       `json:"familyName"`
	Statistics statsPayload `json:"statistics"`
}

type statsPayload struct {
	Points        any `json:"points"`
	ReboundsTotal any `json:"reboundsTotal"`
	Assists       any `json:"assists"`
}

type arenaPayload struct {
	ArenaName string `json:"arenaName"`
}

type leadersPayload struct {
	HomeLeaders leaderPayload `json:"homeLeaders"`
	AwayLeaders leaderPayload `json:"awayLeaders"`
}

type leaderPayload struct {
	PersonID int    `json:"personId"`
	Name     string `json:"name"`
	Points   any    `json:"points"`
}

type boxscoreResponse struct {
	Game boxscoreGame `json:"game"`
}

type boxscoreGame struct {
	GameID   string      `json:"gameId"`
	HomeTeam teamPayload `json:"homeTeam"`
	AwayTeam teamPayload `json:"awayTeam"`
}
