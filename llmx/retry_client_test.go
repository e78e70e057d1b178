package llmx

import (
	"context"
	"testing"
	"time"

	"github.com/bornholm/genai/llm"
	"github.com/pkg/errors"
)

type fakeCompleter struct {
	invocations int
	failures    int
	err         error
}

// ChatCompletion implements ChatCompleter. It fails with err for the first
// failures invocations, then succeeds with a nil response.
func (f *fakeCompleter) ChatCompletion(ctx context.Context, funcs ...llm.ChatCompletionOptionFunc) (llm.ChatCompletionResponse, error) {
	f.invocations++
	if f.invocations <= f.failures {
		return nil, f.err
	}

	return nil, nil
}

func TestRetryClient_RetriesRateLimit(t *testing.T) {
	fake := &fakeCompleter{failures: 2, err: errors.WithStack(llm.ErrRateLimit)}

	client := NewRetryClient(fake, time.Millisecond, 3)

	if _, err := client.ChatCompletion(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if fake.invocations != 3 {
		t.Errorf("expected 3 invocations, got %d", fake.invocations)
	}
}

func TestRetryClient_Exhausted(t *testing.T) {
	fake := &fakeCompleter{failures: 10, err: errors.WithStack(llm.ErrRateLimit)}

	client := NewRetryClient(fake, time.Millisecond, 2)

	if _, err := client.ChatCompletion(context.Background()); !errors.Is(err, llm.ErrRateLimit) {
		t.Errorf("expected rate limit error, got %v", err)
	}

	if fake.invocations != 3 {
		t.Errorf("expected 3 invocations, got %d", fake.invocations)
	}
}

func TestRetryClient_NonTransient(t *testing.T) {
	errBoom := errors.New("boom")

	fake := &fakeCompleter{failures: 10, err: errBoom}

	client := NewRetryClient(fake, time.Millisecond, 3)

	if _, err := client.ChatCompletion(context.Background()); !errors.Is(err, errBoom) {
		t.Errorf("expected boom error, got %v", err)
	}

	if fake.invocations != 1 {
		t.Errorf("expected 1 invocation, got %d", fake.invocations)
	}
}

func TestLoggerClient_PassesThrough(t *testing.T) {
	fake := &fakeCompleter{}

	client := NewLoggerClient(fake)

	if _, err := client.ChatCompletion(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if fake.invocations != 1 {
		t.Errorf("expected 1 invocation, got %d", fake.invocations)
	}
}
