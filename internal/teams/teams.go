// Package teams holds the static team-identity tables. The tables are
// read-only process-wide configuration; numeric franchise ids are preferred
// over names because upstream sources localize and abbreviate names
// inconsistently.
package teams

import (
	"sort"
	"strings"
)

// Identity is the canonical label pair for one franchise.
type Identity struct {
	Name         string
	Abbreviation string
}

var byID = map[int]Identity{
	1610612737: {Name: "Atlanta Hawks", Abbreviation: "ATL"},
	1610612738: {Name: "Boston Celtics", Abbreviation: "BOS"},
	1610612739: {Name: "Cleveland Cavaliers", Abbreviation: "CLE"},
	1610612740: {Name: "New Orleans Pelicans", Abbreviation: "NOP"},
	1610612741: {Name: "Chicago Bulls", Abbreviation: "CHI"},
	1610612742: {Name: "Dallas Mavericks", Abbreviation: "DAL"},
	1610612743: {Name: "Denver Nuggets", Abbreviation: "DEN"},
	1610612744: {Name: "Golden State Warriors", Abbreviation: "GSW"},
	1610612745: {Name: "Houston Rockets", Abbreviation: "HOU"},
	1610612746: {Name: "LA Clippers", Abbreviation: "LAC"},
	1610612747: {Name: "Los Angeles Lakers", Abbreviation: "LAL"},
	1610612748: {Name: "Miami Heat", Abbreviation: "MIA"},
	1610612749: {Name: "Milwaukee Bucks", Abbreviation: "MIL"},
	1610612750: {Name: "Minnesota Timberwolves", Abbreviation: "MIN"},
	1610612751: {Name: "Brooklyn Nets", Abbreviation: "BKN"},
	1610612752: {Name: "New York Knicks", Abbreviation: "NYK"},
	1610612753: {Name: "Orlando Magic", Abbreviation: "ORL"},
	1610612754: {Name: "Indiana Pacers", Abbreviation: "IND"},
	1610612755: {Name: "Philadelphia 76ers", Abbreviation: "PHI"},
	1610612756: {Name: "Phoenix Suns", Abbreviation: "PHX"},
	1610612757: {Name: "Portland Trail Blazers", Abbreviation: "POR"},
	1610612758: {Name: "Sacramento Kings", Abbreviation: "SAC"},
	1610612759: {Name: "San Antonio Spurs", Abbreviation: "SAS"},
	1610612760: {Name: "Oklahoma City Thunder", Abbreviation: "OKC"},
	1610612761: {Name: "Toronto Raptors", Abbreviation: "TOR"},
	1610612762: {Name: "Utah Jazz", Abbreviation: "UTA"},
	1610612763: {Name: "Memphis Grizzlies", Abbreviation: "MEM"},
	1610612764: {Name: "Washington Wizards", Abbreviation: "WAS"},
	1610612765: {Name: "Detroit Pistons", Abbreviation: "DET"},
	1610612766: {Name: "Charlotte Hornets", Abbreviation: "CHA"},
}

var byName, nameKeys = buildNameIndex()

// buildNameIndex also returns the sorted key list so partial matching scans
// in a fixed order.
func buildNameIndex() (map[string]Identity, []string) {
	idx := make(map[string]Identity, len(byID)+1)
	for _, id := range byID {
		idx[strings.ToLower(id.Name)] = id
	}
	// Alternate spelling used by some sources.
	idx["los angeles clippers"] = Identity{Name: "LA Clippers", Abbreviation: "LAC"}

	keys := make([]string, 0, len(idx))
	for k := range idx {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return idx, keys
}

const unknownTeam = "Unknown team"

// Resolve maps an upstream team reference to its canonical identity.
// Lookup order: numeric id, exact name, partial name, derived abbreviation.
func Resolve(teamID int, name string) Identity {
	if id, ok := byID[teamID]; ok {
		return id
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return Identity{Name: unknownTeam, Abbreviation: "UNK"}
	}
	if id, ok := byName[strings.ToLower(trimmed)]; ok {
		return id
	}
	if id, ok := partialMatch(trimmed); ok {
		return id
	}
	return Identity{Name: trimmed, Abbreviation: deriveAbbreviation(trimmed)}
}

// Known reports whether the identity resolved to a real franchise rather
// than a passthrough of upstream text.
func Known(id Identity) bool {
	return id.Name != unknownTeam
}

func partialMatch(name string) (Identity, bool) {
	lower := strings.ToLower(name)
	// Two franchises share the Los Angeles prefix; the nickname decides.
	if strings.Contains(lower, "los angeles") || strings.HasPrefix(lower, "la ") {
		if strings.Contains(lower, "clippers") {
			return byID[1610612746], true
		}
		if strings.Contains(lower, "lakers") {
			return byID[1610612747], true
		}
	}
	for _, canonical := range nameKeys {
		if strings.Contains(lower, canonical) || strings.Contains(canonical, lower) {
			return byName[canonical], true
		}
	}
	return Identity{}, false
}

func deriveAbbreviation(name string) string {
	cleaned := strings.TrimSpace(name)
	if len(cleaned) >= 3 {
		return strings.ToUpper(cleaned[:3])
	}
	return strings.ToUpper(cleaned)
}
