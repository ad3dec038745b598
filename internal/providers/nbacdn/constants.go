package nbacdn

import "time"

const (
	defaultBaseURL     = "https://cdn.nba.com/static/json/liveData"
	defaultHTTPTimeout = 15 * time.Second
	defaultTimezone    = "America/New_York"

	upstreamOrigin  = "https://www.nba.com"
	upstreamReferer = "https://www.nba.com/games"
)

// gameStatus codes in the CDN payloads.
const (
	statusCodeUpcoming = 1
	statusCodeLive     = 2
	statusCodeFinished = 3
)
