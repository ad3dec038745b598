package providers

import (
	"errors"
	"fmt"
)

// UpstreamStatusError captures a non-2xx response from an upstream source.
type UpstreamStatusError struct {
	Source     string
	StatusCode int
	Body       string
}

func (e *UpstreamStatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("%s: unexpected status %d: %s", e.Source, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s: unexpected status %d", e.Source, e.StatusCode)
}

// AsUpstreamStatusError attempts to unwrap an error into an UpstreamStatusError.
func AsUpstreamStatusError(err error) (*UpstreamStatusError, bool) {
	var statusErr *UpstreamStatusError
	if errors.As(err, &statusErr) {
		return statusErr, true
	}
	return nil, false
}

// ErrEmptyPayload marks a source that responded but yielded nothing usable.
// The fallback chain treats it like any other attempt failure.
var ErrEmptyPayload = errors.New("source returned no usable items")
