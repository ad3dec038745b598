package snapshots

import (
	"fmt"
	"path/filepath"
)

// ScoreboardSnapshotPath builds the path to a scoreboard snapshot for a given date.
func ScoreboardSnapshotPath(basePath, date string) string {
	return filepath.Join(basePath, "scoreboard", fmt.Sprintf("%s.json", date))
}
