package providers

import (
	"fmt"
	"strings"
	"time"

	"nba-live-service/internal/domain"
)

// StatusSignal is the raw lifecycle evidence one source reports for a game,
// plus the derived facts normalization needs. Sources map their own schema
// into this shape before resolution.
type StatusSignal struct {
	// State is the source's own lifecycle claim, already normalized to
	// upcoming/live/finished by the source mapper.
	State domain.MatchStatus
	// Completed is the source's explicit "this game ended" flag, when the
	// source carries one separately from State.
	Completed bool
	// HasBothScores reports whether the payload included both team scores.
	HasBothScores bool
	// StartTime is the scheduled tip-off instant; zero when unknown.
	StartTime time.Time
}

// startGraceWindow guards against sources that never flip a stale
// "scheduled" flag: a scheduled game with both scores and a start this far
// in the past is promoted to finished. A delayed tip-off can be mislabeled
// for one cycle; the next refresh corrects it.
const startGraceWindow = time.Minute

// ResolveStatus applies the status transition rules in priority order.
// A live claim from the source is never overridden downward.
func ResolveStatus(sig StatusSignal, now time.Time) domain.MatchStatus {
	if sig.State == domain.StatusLive {
		return domain.StatusLive
	}
	if sig.State == domain.StatusUpcoming && sig.HasBothScores {
		if sig.Completed {
			return domain.StatusFinished
		}
		if !sig.StartTime.IsZero() && now.Sub(sig.StartTime) > startGraceWindow {
			return domain.StatusFinished
		}
	}
	return sig.State
}

var halftimeLabels = []string{"halftime", "half-time", "half time"}

// LiveClock formats the display time for an in-progress game. Halftime
// labels win over generic period+clock formatting.
func LiveClock(statusText string, period int, clock string) string {
	for _, probe := range []string{statusText, clock} {
		lower := strings.ToLower(strings.TrimSpace(probe))
		for _, label := range halftimeLabels {
			if lower == label || strings.Contains(lower, label) {
				return "Halftime"
			}
		}
	}
	clock = strings.TrimSpace(clock)
	if period > 0 && clock != "" {
		return fmt.Sprintf("Q%d %s", period, clock)
	}
	if statusText = strings.TrimSpace(statusText); statusText != "" {
		return statusText
	}
	return "Live"
}

// ScheduledClock renders a pre-game start time as HH:MM in loc, or TBD when
// the timestamp is unknown.
func ScheduledClock(start time.Time, loc *time.Location) string {
	if start.IsZero() {
		return "TBD"
	}
	if loc == nil {
		loc = time.UTC
	}
	return start.In(loc).Format("15:04")
}

// FinalLabel is the display time for completed games.
const FinalLabel = "FINAL"

// DisplayTime derives the canonical time string for a match.
func DisplayTime(status domain.MatchStatus, statusText string, period int, clock string, start time.Time, loc *time.Location) string {
	switch status {
	case domain.StatusLive:
		return LiveClock(statusText, period, clock)
	case domain.StatusFinished:
		return FinalLabel
	default:
		return ScheduledClock(start, loc)
	}
}

// UnknownVenue is the placeholder for events missing location data.
const UnknownVenue = "Unknown venue"

// VenueOrDefault trims the raw venue, falling back to the placeholder.
func VenueOrDefault(raw string) string {
	if trimmed := strings.TrimSpace(raw); trimmed != "" {
		return trimmed
	}
	return UnknownVenue
}
