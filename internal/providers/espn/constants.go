package espn

import "time"

const (
	defaultBaseURL     = "https://site.web.api.espn.com/apis/site/v2/sports/basketball/nba"
	defaultHTTPTimeout = 15 * time.Second
	defaultTimezone    = "America/New_York"
)
