package espn

import (
	"fmt"
	"strings"
	"time"

	"nba-live-service/internal/domain"
	"nba-live-service/internal/providers"
	"nba-live-service/internal/teams"
	"nba-live-service/internal/timeutil"
)

const (
	headshotCDNRoot     = "https://a.espncdn.com"
	headshotURLTemplate = "https://a.espncdn.com/i/headshots/nba/players/full/%d.png"
)

func mapEvent(e eventPayload, loc *time.Location, now time.Time) (domain.Match, bool) {
	if len(e.Competitions) == 0 {
		return domain.Match{}, false
	}
	comp := e.Competitions[0]

	home, ok := findCompetitor(comp.Competitors, "home")
	if !ok {
		return domain.Match{}, false
	}
	away, ok := findCompetitor(comp.Competitors, "away")
	if !ok {
		return domain.Match{}, false
	}

	id := eventID(e)
	if id == "" {
		return domain.Match{}, false
	}

	homeScore := providers.ToIntPtr(home.Score)
	awayScore := providers.ToIntPtr(away.Score)
	start := parseStart(e.Date, comp.Date)

	status := providers.ResolveStatus(providers.StatusSignal{
		State:         mapState(e.Status.Type.State),
		Completed:     e.Status.Type.Completed,
		HasBothScores: homeScore != nil && awayScore != nil,
		StartTime:     start,
	}, now)

	date := ""
	if !start.IsZero() {
		date = start.In(loc).Format(timeutil.DateLayout)
	}

	homeTeamID, _ := providers.ToInt(home.Team.ID)
	awayTeamID, _ := providers.ToInt(away.Team.ID)

	statusText := e.Status.Type.ShortDetail
	if statusText == "" {
		statusText = e.Status.Type.Description
	}

	return domain.Match{
		ID:             id,
		Source:         providerName,
		HomeTeam:       teams.Resolve(homeTeamID, home.Team.DisplayName).Name,
		AwayTeam:       teams.Resolve(awayTeamID, away.Team.DisplayName).Name,
		HomeTeamID:     homeTeamID,
		AwayTeamID:     awayTeamID,
		HomeScore:      homeScore,
		AwayScore:      awayScore,
		Status:         status,
		Date:           date,
		Time:           providers.DisplayTime(status, statusText, e.Status.Period, e.Status.DisplayClock, start, loc),
		League:         "NBA",
		Venue:          venueName(comp.Venue),
		HomeLinescores: mapLinescores(home.Linescores),
		AwayLinescores: mapLinescores(away.Linescores),

		HomeTopScorer:    ExtractLeader(home.Leaders, CategoryPoints),
		HomeTopRebounder: ExtractLeader(home.Leaders, CategoryRebounds),
		HomeTopAssister:  ExtractLeader(home.Leaders, CategoryAssists),
		AwayTopScorer:    ExtractLeader(away.Leaders, CategoryPoints),
		AwayTopRebounder: ExtractLeader(away.Leaders, CategoryRebounds),
		AwayTopAssister:  ExtractLeader(away.Leaders, CategoryAssists),
	}, true
}

func findCompetitor(competitors []competitorPayload, side string) (competitorPayload, bool) {
	for _, c := range competitors {
		if c.HomeAway == side {
			return c, true
		}
	}
	return competitorPayload{}, false
}

// eventID prefers the event id and falls back to the "e:" segment of the UID
// ("s:40~l:46~e:401585183").
func eventID(e eventPayload) string {
	if id := strings.TrimSpace(e.ID); id != "" {
		return id
	}
	for _, part := range strings.Split(e.UID, "~") {
		if rest, found := strings.CutPrefix(part, "e:"); found {
			return strings.TrimSpace(rest)
		}
	}
	return ""
}

func mapState(state string) domain.MatchStatus {
	switch strings.ToLower(strings.TrimSpace(state)) {
	case "in":
		return domain.StatusLive
	case "post":
		return domain.StatusFinished
	default:
		return domain.StatusUpcoming
	}
}

// startLayouts covers the timestamp shapes ESPN emits: minute precision
// ("2024-03-09T00:30Z") and full RFC3339.
var startLayouts = []string{"2006-01-02T15:04Z07:00", time.RFC3339}

func parseStart(candidates ...string) time.Time {
	for _, raw := range candidates {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		for _, layout := range startLayouts {
			if t, err := time.Parse(layout, raw); err == nil {
				return t
			}
		}
	}
	return time.Time{}
}

func venueName(v venuePayload) string {
	if name := strings.TrimSpace(v.FullName); name != "" {
		return name
	}
	return providers.VenueOrDefault(v.Address.City)
}

func mapLinescores(linescores []linescorePayload) []domain.LinescorePeriod {
	if len(linescores) == 0 {
		return nil
	}
	out := make([]domain.LinescorePeriod, 0, len(linescores))
	for _, ls := range linescores {
		if ls.Period <= 0 {
			continue
		}
		value, ok := providers.ToInt(ls.Value)
		if !ok {
			continue
		}
		out = append(out, domain.LinescorePeriod{Period: ls.Period, Value: value})
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Leader categories with the alias sets upstreams use for them. Category
// names vary between payload generations ("rebounds", "REB",
// "totalRebounds"), so matching is case-insensitive containment.
var (
	CategoryPoints   = LeaderCategory{Canonical: "points", Aliases: []string{"points", "pts"}}
	CategoryRebounds = LeaderCategory{Canonical: "rebounds", Aliases: []string{"rebounds", "reb"}}
	CategoryAssists  = LeaderCategory{Canonical: "assists", Aliases: []string{"assists", "ast"}}
)

// LeaderCategory names one stat category and the key aliases that select it.
type LeaderCategory struct {
	Canonical string
	Aliases   []string
}

func (c LeaderCategory) matches(key string) bool {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		return false
	}
	for _, alias := range c.Aliases {
		if key == alias || strings.Contains(key, alias) {
			return true
		}
	}
	return false
}

// ExtractLeader finds the top performer for one stat category in a team's
// leaders block. Entries without a player name are dropped.
func ExtractLeader(categories []leaderCategory, category LeaderCategory) *domain.PlayerLeader {
	for _, c := range categories {
		if !category.matches(c.Name) {
			continue
		}
		if len(c.Leaders) == 0 {
			return nil
		}
		first := c.Leaders[0]
		name := strings.TrimSpace(first.Athlete.DisplayName)
		if name == "" {
			return nil
		}
		value, _ := providers.ToInt(first.Value)
		return &domain.PlayerLeader{
			Name:   name,
			Avatar: resolveAvatar(first.Athlete),
			Value:  value,
		}
	}
	return nil
}

func resolveAvatar(athlete athletePayload) string {
	if href := headshotHref(athlete.Headshot); href != "" {
		if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
			return href
		}
		return headshotCDNRoot + "/" + strings.TrimPrefix(href, "/")
	}
	if id, ok := providers.ToInt(athlete.ID); ok && id > 0 {
		return fmt.Sprintf(headshotURLTemplate, id)
	}
	return ""
}

func headshotHref(raw any) string {
	switch v := raw.(type) {
	case string:
		return strings.TrimSpace(v)
	case map[string]any:
		if s, ok := v["href"].(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}
