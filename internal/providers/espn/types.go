package espn

const providerName = "espn"

type scoreboardResponse struct {
	Events []eventPayload `json:"events"`
}

type eventPayload struct {
	ID           string               `json:"id"`
	UID          string               `json:"uid"`
	Date         string               `json:"date"`
	Status       statusPayload        `json:"status"`
	Competitions []competitionPayload `json:"competitions"`
}

type statusPayload struct {
	Period       int        `json:"period"`
	DisplayClock string     `json:"displayClock"`
	Type         statusType `json:"type"`
}

type statusType struct {
	State       string `json:"state"`
	Completed   bool   `json:"completed"`
	Description string `json:"description"`
	ShortDetail string `json:"shortDetail"`
}

type competitionPayload struct {
	Date        string              `json:"date"`
	Venue       venuePayload        `json:"venue"`
	Competitors []competitorPayload `json:"competitors"`
}

type venuePayload struct {
	FullName string       `json:"fullName"`
	Address  venueAddress `json:"address"`
}

type venueAddress struct {
	City string `json:"city"`
}

type competitorPayload struct {
	HomeAway   string             `json:"homeAway"`
	Score      any                `json:"score"`
	Team       teamPayload        `json:"team"`
	Linescores []linescorePayload `json:"linescores"`
	Leaders    []leaderCategory   `json:"leaders"`
}

type teamPayload struct {
	ID          any    `json:"id"`
	DisplayName string `json:"displayName"`
	ShortName   string `json:"shortDisplayName"`
}

type linescorePayload struct {
	Period int `json:"period"`
	Value  any `json:"value"`
}

type leaderCategory struct {
	Name    string        `json:"name"`
	Leaders []leaderEntry `json:"leaders"`
}

type leaderEntry struct {
	Value   any            `json:"value"`
	Athlete athletePayload `json:"athlete"`
}

type athletePayload struct {
	ID          any    `json:"id"`
	DisplayName string `json:"displayName"`
	// Either a bare URL string or an object carrying an href field,
	// depending on payload generation.
	Headshot any `json:"headshot"`
}
