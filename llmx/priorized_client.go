package llmx

import (
	"context"
	"time"

	"github.com/bornholm/genai/llm"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

type contextKey int

const contextKeyHighPriority contextKey = iota

func WithHighPriority(ctx context.Context) context.Context {
	return context.WithValue(ctx, contextKeyHighPriority, true)
}

func WithoutHighPriority(ctx context.Context) context.Context {
	return context.WithValue(ctx, contextKeyHighPriority, false)
}

func isHighPriority(ctx context.Context) bool {
	highPriority, ok := ctx.Value(contextKeyHighPriority).(bool)
	if !ok {
		return false
	}

	return highPriority
}

// PriorizedClient sheds low-priority requests while the underlying token
// bucket is under pressure. Priority is carried by the context.
type PriorizedClient struct {
	limiter *PriorityLimiter
	client  ChatCompleter
}

// ChatCompletion implements ChatCompleter.
func (c *PriorizedClient) ChatCompletion(ctx context.Context, funcs ...llm.ChatCompletionOptionFunc) (llm.ChatCompletionResponse, error) {
	if !c.limiter.Allow(isHighPriority(ctx)) {
		return nil, errors.WithStack(llm.ErrRateLimit)
	}

	return c.client.ChatCompletion(ctx, funcs...)
}

func NewPriorizedClient(client ChatCompleter, minInterval time.Duration, maxBurst int, threshold float64) *PriorizedClient {
	return &PriorizedClient{
		limiter: NewPriorityLimiter(rate.Every(minInterval), maxBurst, threshold),
		client:  client,
	}
}

var _ ChatCompleter = &PriorizedClient{}
