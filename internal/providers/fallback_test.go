package providers

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestFirstSuccessUsesFirstHealthySource(t *testing.T) {
	sources := []Source[string]{
		{Name: "primary", Fetch: func(ctx context.Context) ([]string, error) {
			return []string{"a", "b"}, nil
		}},
		{Name: "secondary", Fetch: func(ctx context.Context) ([]string, error) {
			t.Fatal("secondary should not be tried")
			return nil, nil
		}},
	}

	res := FirstSuccess(context.Background(), time.Second, nil, sources)
	if res.Winner != "primary" {
		t.Fatalf("expected primary to win, got %q", res.Winner)
	}
	if len(res.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(res.Items))
	}
	if len(res.Attempts) != 1 {
		t.Fatalf("expected 1 attempt recorded, got %d", len(res.Attempts))
	}
	if !res.Attempts[0].OK {
		t.Fatal("expected winning attempt marked ok")
	}
}

func TestFirstSuccessFallsThroughOnError(t *testing.T) {
	sources := []Source[int]{
		{Name: "primary", Fetch: func(ctx context.Context) ([]int, error) {
			return nil, errors.New("boom")
		}},
		{Name: "secondary", Fetch: func(ctx context.Context) ([]int, error) {
			return []int{7}, nil
		}},
	}

	res := FirstSuccess(context.Background(), time.Second, nil, sources)
	if res.Winner != "secondary" {
		t.Fatalf("expected secondary to win, got %q", res.Winner)
	}
	if len(res.Attempts) != 2 {
		t.Fatalf("expected 2 attempts, got %d", len(res.Attempts))
	}
	if res.Attempts[0].OK || res.Attempts[0].Error == "" {
		t.Fatalf("expected failed first attempt with error, got %+v", res.Attempts[0])
	}
}

func TestFirstSuccessTreatsEmptyAsFailure(t *testing.T) {
	sources := []Source[int]{
		{Name: "primary", Fetch: func(ctx context.Context) ([]int, error) {
			return []int{}, nil
		}},
		{Name: "secondary", Fetch: func(ctx context.Context) ([]int, error) {
			return []int{1}, nil
		}},
	}

	res := FirstSuccess(context.Background(), time.Second, nil, sources)
	if res.Winner != "secondary" {
		t.Fatalf("expected empty primary result to fall through, winner=%q", res.Winner)
	}
}

func TestFirstSuccessAllFail(t *testing.T) {
	sources := []Source[int]{
		{Name: "only", Fetch: func(ctx context.Context) ([]int, error) {
			return nil, errors.New("down")
		}},
	}

	res := FirstSuccess(context.Background(), time.Second, nil, sources)
	if res.Winner != "" {
		t.Fatalf("expected no winner, got %q", res.Winner)
	}
	if res.Items != nil {
		t.Fatalf("expected nil items, got %v", res.Items)
	}
}

func TestFirstSuccessCustomValidation(t *testing.T) {
	sources := []Source[int]{
		{
			Name: "primary",
			Fetch: func(ctx context.Context) ([]int, error) {
				return []int{1, 2}, nil
			},
			Validate: func(items []int) bool { return len(items) >= 3 },
		},
		{Name: "secondary", Fetch: func(ctx context.Context) ([]int, error) {
			return []int{1, 2, 3}, nil
		}},
	}

	res := FirstSuccess(context.Background(), time.Second, nil, sources)
	if res.Winner != "secondary" {
		t.Fatalf("expected validation to reject primary, winner=%q", res.Winner)
	}
}

func TestFirstSuccessHonorsPerAttemptTimeout(t *testing.T) {
	sources := []Source[int]{
		{Name: "slow", Fetch: func(ctx context.Context) ([]int, error) {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(5 * time.Second):
				return []int{1}, nil
			}
		}},
		{Name: "fast", Fetch: func(ctx context.Context) ([]int, error) {
			return []int{2}, nil
		}},
	}

	res := FirstSuccess(context.Background(), 20*time.Millisecond, nil, sources)
	if res.Winner != "fast" {
		t.Fatalf("expected slow source to time out, winner=%q", res.Winner)
	}
}
