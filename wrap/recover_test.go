package wrap

import (
	"context"
	"strings"
	"testing"
)

func TestRecovered_ConvertsPanic(t *testing.T) {
	panicking := func(ctx context.Context, in string) (string, error) {
		panic("boom")
	}

	_, err := Recovered[string, string]()(panicking)(context.Background(), "x")
	if err == nil {
		t.Fatal("expected an error")
	}

	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("expected error to mention the panic value, got %v", err)
	}
}

func TestRecovered_PassesThrough(t *testing.T) {
	identity := func(ctx context.Context, in string) (string, error) {
		return in, nil
	}

	out, err := Recovered[string, string]()(identity)(context.Background(), "x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out != "x" {
		t.Errorf("expected %q, got %q", "x", out)
	}
}
