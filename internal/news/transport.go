package news

import (
	"net/http"
	"time"
)

const (
	defaultHTTPTimeout = 20 * time.Second

	// maxFeedBytes and maxPageBytes bound how much of an upstream response
	// gets buffered; feeds and news pages beyond these sizes are truncated.
	maxFeedBytes = 4 << 20
	maxPageBytes = 8 << 20
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

func resolveHTTPClient(client *http.Client) httpDoer {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: defaultHTTPTimeout}
}
