package providers

import (
	"context"
	"log/slog"
	"time"

	"nba-live-service/internal/domain"
	"nba-live-service/internal/logging"
)

const defaultAttemptTimeout = 20 * time.Second

// Source is one entry in a fallback chain: an attempt plus a validator that
// decides whether the attempt's payload counts as success. A nil Validate
// accepts any non-empty result.
type Source[T any] struct {
	Name     string
	Fetch    func(ctx context.Context) ([]T, error)
	Validate func(items []T) bool
}

// ChainResult carries the winning payload and per-source diagnostics.
type ChainResult[T any] struct {
	Items    []T
	Winner   string
	Attempts []domain.SourceAttempt
}

// FirstSuccess tries each source in order and short-circuits on the first
// whose call completes within the attempt timeout and whose validator accepts
// the payload. Sources are tried sequentially: a fallback is only consulted
// once its predecessor has definitively failed. Exhaustion returns an empty
// result, never an error.
func FirstSuccess[T any](ctx context.Context, timeout time.Duration, logger *slog.Logger, sources []Source[T]) ChainResult[T] {
	if timeout <= 0 {
		timeout = defaultAttemptTimeout
	}

	result := ChainResult[T]{Attempts: make([]domain.SourceAttempt, 0, len(sources))}
	for _, src := range sources {
		if ctx.Err() != nil {
			result.Attempts = append(result.Attempts, domain.SourceAttempt{Source: src.Name, Error: ctx.Err().Error()})
			return result
		}

		attemptCtx, cancel := context.WithTimeout(ctx, timeout)
		items, err := src.Fetch(attemptCtx)
		cancel()

		if err != nil {
			logging.Warn(logger, "source attempt failed", logging.FieldSource, src.Name, "error", err)
			result.Attempts = append(result.Attempts, domain.SourceAttempt{Source: src.Name, Error: err.Error()})
			continue
		}

		if !accepts(src, items) {
			logging.Warn(logger, "source payload rejected", logging.FieldSource, src.Name, logging.FieldCount, len(items))
			result.Attempts = append(result.Attempts, domain.SourceAttempt{Source: src.Name, OK: true, Items: len(items), Error: ErrEmptyPayload.Error()})
			continue
		}

		result.Attempts = append(result.Attempts, domain.SourceAttempt{Source: src.Name, OK: true, Items: len(items)})
		result.Items = items
		result.Winner = src.Name
		return result
	}

	return result
}

func accepts[T any](src Source[T], items []T) bool {
	if src.Validate != nil {
		return src.Validate(items)
	}
	return len(items) > 0
}
