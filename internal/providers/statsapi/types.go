package statsapi

const providerName = "statsapi"

// scoreboardV2 responses are tabular: each result set names its columns once
// and ships rows as positional arrays.
type statsResponse struct {
	ResultSets []resultSet `json:"resultSets"`
}

type resultSet struct {
	Name    string   `json:"name"`
	Headers []string `json:"headers"`
	RowSet  [][]any  `json:"rowSet"`
}

const (
	setGameHeader = "GameHeader"
	setLineScore  = "LineScore"
)

// GameHeader columns.
const (
	colGameID        = "GAME_ID"
	colGameStatusID  = "GAME_STATUS_ID"
	colGameStatus    = "GAME_STATUS_TEXT"
	colGameDateEST   = "GAME_DATE_EST"
	colHomeTeamID    = "HOME_TEAM_ID"
	colVisitorTeamID = "VISITOR_TEAM_ID"
	colArenaName     = "ARENA_NAME"
)

// LineScore columns.
const (
	colTeamID = "TEAM_ID"
	colPoints = "PTS"
)

// table wraps a result set with column-name lookup, tolerating rows whose
// columns moved between payload generations.
type table struct {
	index map[string]int
	rows  [][]any
}

func newTable(rs resultSet) table {
	index := make(map[string]int, len(rs.Headers))
	for i, name := range rs.Headers {
		index[name] = i
	}
	return table{index: index, rows: rs.RowSet}
}

func (t table) cell(row []any, column string) any {
	i, ok := t.index[column]
	if !ok || i >= len(row) {
		return nil
	}
	return row[i]
}

func (t table) has(column string) bool {
	_, ok := t.index[column]
	return ok
}
