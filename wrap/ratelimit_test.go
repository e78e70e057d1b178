package wrap

import (
	"context"
	"testing"
	"time"

	"golang.org/x/time/rate"
)

func TestRateLimited(t *testing.T) {
	limiter := rate.NewLimiter(rate.Every(time.Hour), 1)

	identity := func(ctx context.Context, in string) (string, error) {
		return in, nil
	}

	limited := RateLimited[string, string](limiter)(identity)

	if _, err := limited(context.Background(), "first"); err != nil {
		t.Fatalf("unexpected error on first call: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if _, err := limited(ctx, "second"); err == nil {
		t.Error("expected second call to fail while the bucket is empty")
	}
}
