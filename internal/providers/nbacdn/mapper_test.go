package nbacdn

import (
	"testing"
	"time"

	"nba-live-service/internal/domain"
)

func TestFormatGameClock(t *testing.T) {
	cases := map[string]string{
		"PT05M31.00S": "5:31",
		"PT00M09.40S": "0:09",
		"PT12M00S":    "12:00",
		"5:31":        "5:31",
		"":            "",
	}
	for in, want := range cases {
		if got := formatGameClock(in); got != want {
			t.Fatalf("formatGameClock(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMapLinescoresFiltersNonPositivePeriods(t *testing.T) {
	got := mapLinescores([]periodPayload{
		{Period: 0, Score: 0},
		{Period: 1, Score: 25},
		{Period: 2, Score: "30"},
		{Period: 3, Score: nil},
	})
	if len(got) != 2 {
		t.Fatalf("expected 2 usable periods, got %d", len(got))
	}
	if got[0].Period != 1 || got[0].Value != 25 || got[1].Period != 2 || got[1].Value != 30 {
		t.Fatalf("unexpected linescores %+v", got)
	}
}

func TestTopByStatPicksMaximum(t *testing.T) {
	players := []playerPayload{
		{FirstName: "A", FamilyName: "One", Statistics: statsPayload{Points: 12}},
		{FirstName: "B", FamilyName: "Two", Statistics: statsPayload{Points: 30.0}},
		{FirstName: "C", FamilyName: "Three", Statistics: statsPayload{Points: "19"}},
	}
	leader := topByStat(players, func(s statsPayload) any { return s.Points })
	if leader == nil || leader.Name != "B Two" || leader.Value != 30 {
		t.Fatalf("unexpected leader %+v", leader)
	}

	if got := topByStat(nil, func(s statsPayload) any { return s.Points }); got != nil {
		t.Fatalf("expected nil for empty roster, got %+v", got)
	}
}

func TestMapLeaderFallsBackToPersonID(t *testing.T) {
	leader := mapLeader(leaderPayload{PersonID: 2544, Points: 27})
	if leader == nil || leader.Name != "Player 2544" || leader.Value != 27 {
		t.Fatalf("unexpected leader %+v", leader)
	}
	if got := mapLeader(leaderPayload{}); got != nil {
		t.Fatalf("expected nil for empty leader, got %+v", got)
	}
}

func TestMapGameStaleScheduledPromotion(t *testing.T) {
	now := time.Now()
	g := gamePayload{
		GameID:      "0022300009",
		GameStatus:  statusCodeUpcoming,
		GameTimeUTC: now.Add(-2 * time.Hour).UTC().Format(time.RFC3339),
		HomeTeam:    teamPayload{TeamID: 1610612738, Score: 101},
		AwayTeam:    teamPayload{TeamID: 1610612747, Score: 99},
	}
	m := mapGame(g, nil, "2024-03-08", time.UTC, now)
	if m.Status != domain.StatusFinished {
		t.Fatalf("expected stale scheduled game promoted to finished, got %s", m.Status)
	}
	if m.Time != "FINAL" {
		t.Fatalf("expected FINAL display time, got %q", m.Time)
	}
}
