package llmx

import (
	"context"
	"log/slog"
	"time"

	"github.com/bornholm/genai/llm"
	"github.com/pkg/errors"
)

type RetryClient struct {
	baseDelay  time.Duration
	maxRetries int
	client     ChatCompleter
}

// ChatCompletion implements ChatCompleter. Rate-limit errors are retried with
// exponential backoff, up to maxRetries additional attempts; any other error
// propagates immediately.
func (c *RetryClient) ChatCompletion(ctx context.Context, funcs ...llm.ChatCompletionOptionFunc) (llm.ChatCompletionResponse, error) {
	backoff := c.baseDelay
	retries := 0

	for {
		res, err := c.client.ChatCompletion(ctx, funcs...)
		if err != nil {
			if retries >= c.maxRetries {
				return nil, errors.WithStack(err)
			}

			if errors.Is(err, llm.ErrRateLimit) {
				slog.DebugContext(ctx, "llm request failed, will retry", slog.Int("retries", retries), slog.Duration("backoff", backoff), slog.Any("error", errors.WithStack(err)))

				retries++

				select {
				case <-ctx.Done():
					return nil, errors.WithStack(ctx.Err())
				case <-time.After(backoff):
				}

				backoff *= 2

				continue
			}

			return nil, errors.WithStack(err)
		}

		return res, nil
	}
}

func NewRetryClient(client ChatCompleter, baseDelay time.Duration, maxRetries int) *RetryClient {
	return &RetryClient{
		baseDelay:  baseDelay,
		maxRetries: maxRetries,
		client:     client,
	}
}

var _ ChatCompleter = &RetryClient{}
