package llmx

import (
	"context"
	"time"

	"github.com/bornholm/genai/llm"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

type RateLimitedClient struct {
	limiter *rate.Limiter
	client  ChatCompleter
}

// ChatCompletion implements ChatCompleter.
func (c *RateLimitedClient) ChatCompletion(ctx context.Context, funcs ...llm.ChatCompletionOptionFunc) (llm.ChatCompletionResponse, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, errors.WithStack(err)
	}

	return c.client.ChatCompletion(ctx, funcs...)
}

func NewRateLimitedClient(client ChatCompleter, minDelay time.Duration) *RateLimitedClient {
	return &RateLimitedClient{
		limiter: rate.NewLimiter(rate.Every(minDelay), 1),
		client:  client,
	}
}

var _ ChatCompleter = &RateLimitedClient{}
