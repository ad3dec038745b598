package statsapi

import (
	"fmt"
	"strings"
	"time"

	"nba-live-service/internal/domain"
	"nba-live-service/internal/providers"
	"nba-live-service/internal/teams"
)

func mapResponse(payload statsResponse, now time.Time) []domain.Match {
	var header, lines table
	var haveHeader, haveLines bool
	for _, rs := range payload.ResultSets {
		switch rs.Name {
		case setGameHeader:
			header = newTable(rs)
			haveHeader = true
		case setLineScore:
			lines = newTable(rs)
			haveLines = true
		}
	}
	if !haveHeader || !header.has(colGameID) {
		return nil
	}

	matches := make([]domain.Match, 0, len(header.rows))
	for _, row := range header.rows {
		gameID := stringCell(header.cell(row, colGameID))
		if gameID == "" {
			continue
		}

		homeTeamID, _ := providers.ToInt(header.cell(row, colHomeTeamID))
		awayTeamID, _ := providers.ToInt(header.cell(row, colVisitorTeamID))
		statusText := stringCell(header.cell(row, colGameStatus))
		statusID, hasStatusID := providers.ToInt(header.cell(row, colGameStatusID))

		state := statusFromText(statusText)
		if hasStatusID {
			state = statusFromCode(statusID)
		}

		var homeScore, awayScore *int
		var homeLines, awayLines []domain.LinescorePeriod
		if haveLines {
			if homeRow, ok := findTeamRow(lines, gameID, homeTeamID); ok {
				homeScore = providers.ToIntPtr(lines.cell(homeRow, colPoints))
				homeLines = mapLinescores(lines, homeRow)
			}
			if awayRow, ok := findTeamRow(lines, gameID, awayTeamID); ok {
				awayScore = providers.ToIntPtr(lines.cell(awayRow, colPoints))
				awayLines = mapLinescores(lines, awayRow)
			}
		}

		status := providers.ResolveStatus(providers.StatusSignal{
			State:         state,
			Completed:     (hasStatusID && statusID == statusCodeFinished) || containsFinal(statusText),
			HasBothScores: homeScore != nil && awayScore != nil,
		}, now)

		matches = append(matches, domain.Match{
			ID:             gameID,
			Source:         providerName,
			HomeTeam:       teams.Resolve(homeTeamID, "").Name,
			AwayTeam:       teams.Resolve(awayTeamID, "").Name,
			HomeTeamID:     homeTeamID,
			AwayTeamID:     awayTeamID,
			HomeScore:      homeScore,
			AwayScore:      awayScore,
			Status:         status,
			Date:           gameDate(stringCell(header.cell(row, colGameDateEST))),
			Time:           displayTime(status, statusText),
			League:         "NBA",
			Venue:          providers.VenueOrDefault(stringCell(header.cell(row, colArenaName))),
			HomeLinescores: homeLines,
			AwayLinescores: awayLines,
		})
	}

	return matches
}

func findTeamRow(t table, gameID string, teamID int) ([]any, bool) {
	for _, row := range t.rows {
		if stringCell(t.cell(row, colGameID)) != gameID {
			continue
		}
		if id, ok := providers.ToInt(t.cell(row, colTeamID)); ok && id == teamID {
			return row, true
		}
	}
	return nil, false
}

// linescoreColumns in quarter order, overtimes last. scoreboardV2 caps
// overtime columns at ten.
var linescoreColumns = buildLinescoreColumns()

func buildLinescoreColumns() []string {
	cols := make([]string, 0, 14)
	for q := 1; q <= 4; q++ {
		cols = append(cols, fmt.Sprintf("PTS_QTR%d", q))
	}
	for ot := 1; ot <= 10; ot++ {
		cols = append(cols, fmt.Sprintf("PTS_OT%d", ot))
	}
	return cols
}

func mapLinescores(t table, row []any) []domain.LinescorePeriod {
	out := make([]domain.LinescorePeriod, 0, 4)
	for i, col := range linescoreColumns {
		value, ok := providers.ToInt(t.cell(row, col))
		if !ok {
			continue
		}
		// Untouched overtime columns come back as zeros; quarters keep them.
		if i >= 4 && value == 0 {
			continue
		}
		out = append(out, domain.LinescorePeriod{Period: i + 1, Value: value})
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func statusFromCode(code int) domain.MatchStatus {
	switch code {
	case statusCodeLive:
		return domain.StatusLive
	case statusCodeFinished:
		return domain.StatusFinished
	default:
		return domain.StatusUpcoming
	}
}

// statusFromText is the fallback for rows missing GAME_STATUS_ID. Start
// times ("7:00 pm ET") mean the game has not tipped off.
func statusFromText(text string) domain.MatchStatus {
	upper := strings.ToUpper(strings.TrimSpace(text))
	switch {
	case strings.Contains(upper, "FINAL"):
		return domain.StatusFinished
	case upper == "", strings.Contains(upper, "ET"), strings.Contains(upper, "AM"), strings.Contains(upper, "PM"):
		return domain.StatusUpcoming
	default:
		return domain.StatusLive
	}
}

func containsFinal(text string) bool {
	return strings.Contains(strings.ToUpper(text), "FINAL")
}

// displayTime follows the shared conventions, except that upcoming games
// keep the upstream start-time text verbatim: this source has no start
// timestamp to format, only strings like "7:00 pm ET".
func displayTime(status domain.MatchStatus, statusText string) string {
	switch status {
	case domain.StatusFinished:
		return providers.FinalLabel
	case domain.StatusLive:
		return providers.LiveClock(statusText, 0, "")
	default:
		if text := strings.TrimSpace(statusText); text != "" {
			return text
		}
		return "TBD"
	}
}

func gameDate(raw string) string {
	raw = strings.TrimSpace(raw)
	if i := strings.IndexAny(raw, "T "); i > 0 {
		return raw[:i]
	}
	return raw
}

func stringCell(v any) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}
