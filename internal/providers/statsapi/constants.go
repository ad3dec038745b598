package statsapi

import "time"

const (
	defaultBaseURL     = "https://stats.nba.com/stats"
	defaultHTTPTimeout = 20 * time.Second
	defaultTimezone    = "America/New_York"

	upstreamOrigin  = "https://www.nba.com"
	upstreamReferer = "https://www.nba.com/"

	gameDateLayout = "01/02/2006"
)

// GAME_STATUS_ID codes in scoreboardV2.
const (
	statusCodeUpcoming = 1
	statusCodeLive     = 2
	statusCodeFinished = 3
)
