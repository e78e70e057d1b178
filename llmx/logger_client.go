package llmx

import (
	"context"
	"log/slog"
	"time"

	"github.com/bornholm/genai/llm"
	"github.com/bornholm/go-x/slogx"
)

type LoggerClient struct {
	client ChatCompleter
}

// ChatCompletion implements ChatCompleter.
func (c *LoggerClient) ChatCompletion(ctx context.Context, funcs ...llm.ChatCompletionOptionFunc) (llm.ChatCompletionResponse, error) {
	ctx = slogx.WithAttrs(ctx, slog.String("llm_request", "chat_completion"))

	before := time.Now()
	defer func() {
		slog.DebugContext(ctx, "llm request completed", slog.Duration("duration", time.Since(before)))
	}()

	slog.DebugContext(ctx, "llm request started")

	return c.client.ChatCompletion(ctx, funcs...)
}

func NewLoggerClient(client ChatCompleter) *LoggerClient {
	return &LoggerClient{
		client: client,
	}
}

var _ ChatCompleter = &LoggerClient{}
