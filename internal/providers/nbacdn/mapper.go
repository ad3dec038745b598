package nbacdn

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"nba-live-service/internal/domain"
	"nba-live-service/internal/providers"
	"nba-live-service/internal/teams"
	"nba-live-service/internal/timeutil"
)

func mapGame(g gamePayload, box *boxscoreGame, requestedDate string, loc *time.Location, now time.Time) domain.Match {
	home := g.HomeTeam
	away := g.AwayTeam
	if box != nil {
		// The boxscore team objects are a superset of the scoreboard ones.
		home = mergeTeam(home, box.HomeTeam)
		away = mergeTeam(away, box.AwayTeam)
	}

	homeScore := providers.ToIntPtr(home.Score)
	awayScore := providers.ToIntPtr(away.Score)
	if homeScore == nil {
		homeScore = providers.ToIntPtr(g.GameLeaders.HomeLeaders.Points)
	}
	if awayScore == nil {
		awayScore = providers.ToIntPtr(g.GameLeaders.AwayLeaders.Points)
	}

	start := parseStart(g.GameTimeUTC)
	status := providers.ResolveStatus(providers.StatusSignal{
		State:         mapStatusCode(g.GameStatus),
		Completed:     g.GameStatus == statusCodeFinished,
		HasBothScores: homeScore != nil && awayScore != nil,
		StartTime:     start,
	}, now)

	date := requestedDate
	if !start.IsZero() {
		date = start.In(loc).Format(timeutil.DateLayout)
	}

	match := domain.Match{
		ID:             g.GameID,
		Source:         providerName,
		HomeTeam:       teams.Resolve(home.TeamID, teamFullName(home)).Name,
		AwayTeam:       teams.Resolve(away.TeamID, teamFullName(away)).Name,
		HomeTeamID:     home.TeamID,
		AwayTeamID:     away.TeamID,
		HomeScore:      homeScore,
		AwayScore:      awayScore,
		Status:         status,
		Date:           date,
		Time:           providers.DisplayTime(status, g.GameStatusText, g.Period, formatGameClock(g.GameClock), start, loc),
		League:         "NBA",
		Venue:          providers.VenueOrDefault(g.Arena.ArenaName),
		HomeLinescores: mapLinescores(home.Periods),
		AwayLinescores: mapLinescores(away.Periods),
	}

	match.HomeTopScorer = topByStat(home.Players, func(s statsPayload) any { return s.Points })
	match.HomeTopRebounder = topByStat(home.Players, func(s statsPayload) any { return s.ReboundsTotal })
	match.HomeTopAssister = topByStat(home.Players, func(s statsPayload) any { return s.Assists })
	match.AwayTopScorer = topByStat(away.Players, func(s statsPayload) any { return s.Points })
	match.AwayTopRebounder = topByStat(away.Players, func(s statsPayload) any { return s.ReboundsTotal })
	match.AwayTopAssister = topByStat(away.Players, func(s statsPayload) any { return s.Assists })

	// The scoreboard leader block only carries the scoring leader; use it
	// when the boxscore had no player rows.
	if match.HomeTopScorer == nil {
		match.HomeTopScorer = mapLeader(g.GameLeaders.HomeLeaders)
	}
	if match.AwayTopScorer == nil {
		match.AwayTopScorer = mapLeader(g.GameLeaders.AwayLeaders)
	}

	return match
}

func mergeTeam(base, detail teamPayload) teamPayload {
	if detail.TeamID != 0 {
		base.TeamID = detail.TeamID
	}
	if base.Score == nil {
		base.Score = detail.Score
	}
	if len(detail.Periods) > 0 {
		base.Periods = detail.Periods
	}
	if len(detail.Players) > 0 {
		base.Players = detail.Players
	}
	return base
}

func mapStatusCode(code int) domain.MatchStatus {
	switch code {
	case statusCodeLive:
		return domain.StatusLive
	case statusCodeFinished:
		return domain.StatusFinished
	default:
		return domain.StatusUpcoming
	}
}

func parseStart(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}
	return t
}

func teamFullName(t teamPayload) string {
	return strings.TrimSpace(strings.TrimSpace(t.TeamCity) + " " + strings.TrimSpace(t.TeamName))
}

func mapLinescores(periods []periodPayload) []domain.LinescorePeriod {
	if len(periods) == 0 {
		return nil
	}
	out := make([]domain.LinescorePeriod, 0, len(periods))
	for _, p := range periods {
		if p.Period <= 0 {
			continue
		}
		value, ok := providers.ToInt(p.Score)
		if !ok {
			continue
		}
		out = append(out, domain.LinescorePeriod{Period: p.Period, Value: value})
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func topByStat(players []playerPayload, stat func(statsPayload) any) *domain.PlayerLeader {
	if len(players) == 0 {
		return nil
	}
	best := players[0]
	bestValue, _ := providers.ToInt(stat(best.Statistics))
	for _, p := range players[1:] {
		if v, ok := providers.ToInt(stat(p.Statistics)); ok && v > bestValue {
			best, bestValue = p, v
		}
	}
	name := strings.TrimSpace(best.FirstName + " " + best.FamilyName)
	if name == "" {
		return nil
	}
	return &domain.PlayerLeader{Name: name, Value: bestValue}
}

func mapLeader(l leaderPayload) *domain.PlayerLeader {
	name := strings.TrimSpace(l.Name)
	if name == "" && l.PersonID != 0 {
		name = fmt.Sprintf("Player %d", l.PersonID)
	}
	if name == "" {
		return nil
	}
	value, _ := providers.ToInt(l.Points)
	return &domain.PlayerLeader{Name: name, Value: value}
}

var isoClockPattern = regexp.MustCompile(`^PT(\d+)M(\d+)(?:\.\d+)?S$`)

// formatGameClock converts the CDN's ISO-8601 duration clock ("PT05M31.00S")
// to the familiar "5:31" form. Clocks already in minute:second form pass
// through unchanged.
func formatGameClock(raw string) string {
	raw = strings.TrimSpace(raw)
	m := isoClockPattern.FindStringSubmatch(raw)
	if m == nil {
		return raw
	}
	minutes, _ := strconv.Atoi(m[1])
	seconds, _ := strconv.Atoi(m[2])
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}
