package wrap

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func TestMemoize_CachesResults(t *testing.T) {
	invocations := 0

	upper := func(ctx context.Context, in string) (string, error) {
		invocations++
		return in + "!", nil
	}

	memoized := Memoize[string, string](16, time.Minute)(upper)

	for i := 0; i < 3; i++ {
		out, err := memoized(context.Background(), "hello")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out != "hello!" {
			t.Errorf("expected %q, got %q", "hello!", out)
		}
	}

	if invocations != 1 {
		t.Errorf("expected 1 invocation, got %d", invocations)
	}

	if _, err := memoized(context.Background(), "other"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if invocations != 2 {
		t.Errorf("expected 2 invocations, got %d", invocations)
	}
}

func TestMemoize_DoesNotCacheErrors(t *testing.T) {
	errBoom := errors.New("boom")
	invocations := 0

	failing := func(ctx context.Context, in string) (string, error) {
		invocations++
		return "", errBoom
	}

	memoized := Memoize[string, string](16, time.Minute)(failing)

	for i := 0; i < 2; i++ {
		if _, err := memoized(context.Background(), "hello"); !errors.Is(err, errBoom) {
			t.Errorf("expected boom error, got %v", err)
		}
	}

	if invocations != 2 {
		t.Errorf("expected 2 invocations, got %d", invocations)
	}
}
