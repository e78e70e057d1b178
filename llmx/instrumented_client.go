package llmx

import (
	"context"

	"github.com/bornholm/aspect/internal/metrics"
	"github.com/bornholm/genai/llm"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

type InstrumentedClient struct {
	client ChatCompleter
	model  string
}

// ChatCompletion implements ChatCompleter.
func (c *InstrumentedClient) ChatCompletion(ctx context.Context, funcs ...llm.ChatCompletionOptionFunc) (llm.ChatCompletionResponse, error) {
	res, err := c.client.ChatCompletion(ctx, funcs...)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if usage := res.Usage(); usage != nil {
		metrics.CompletionTokens.With(prometheus.Labels{
			metrics.LabelModel: c.model,
			metrics.LabelType:  "chat_completion",
		}).Add(float64(usage.CompletionTokens()))

		metrics.TotalTokens.With(prometheus.Labels{
			metrics.LabelModel: c.model,
			metrics.LabelType:  "chat_completion",
		}).Add(float64(usage.TotalTokens()))

		metrics.PromptTokens.With(prometheus.Labels{
			metrics.LabelModel: c.model,
			metrics.LabelType:  "chat_completion",
		}).Add(float64(usage.PromptTokens()))
	}

	return res, nil
}

func NewInstrumentedClient(client ChatCompleter, model string) *InstrumentedClient {
	return &InstrumentedClient{
		client: client,
		model:  model,
	}
}

var _ ChatCompleter = &InstrumentedClient{}
