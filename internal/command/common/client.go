package common

import (
	"context"

	"github.com/bornholm/aspect/internal/config"
	"github.com/bornholm/aspect/llmx"
	"github.com/pkg/errors"

	"github.com/bornholm/genai/llm/provider"
	_ "github.com/bornholm/genai/llm/provider/openai"
)

// NewChatCompleterFromConfig assembles the decorated client stack, from the
// outside in: logging, instrumentation, retry, rate limiting, provider. When
// a burst is configured the rate limiting layer is priority-aware: requests
// marked with llmx.WithHighPriority keep going while low-priority traffic is
// shed once the bucket drops below the configured threshold.
func NewChatCompleterFromConfig(ctx context.Context, conf *config.Config) (llmx.ChatCompleter, error) {
	client, err := provider.Create(ctx, provider.WithConfig(&provider.Config{
		Provider:            provider.Name(conf.LLM.Provider.Name),
		BaseURL:             conf.LLM.Provider.BaseURL,
		Key:                 conf.LLM.Provider.Key,
		ChatCompletionModel: conf.LLM.Provider.ChatCompletionModel,
	}))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var completer llmx.ChatCompleter = client
	if conf.LLM.Provider.RateLimitMaxBurst > 0 {
		completer = llmx.NewPriorizedClient(completer, conf.LLM.Provider.RateLimitMinInterval, conf.LLM.Provider.RateLimitMaxBurst, conf.LLM.Provider.RateLimitLowPriorityThreshold)
	} else {
		completer = llmx.NewRateLimitedClient(completer, conf.LLM.Provider.RateLimitMinInterval)
	}
	completer = llmx.NewRetryClient(completer, conf.LLM.Provider.BaseBackoff, conf.LLM.Provider.MaxRetries)
	completer = llmx.NewInstrumentedClient(completer, conf.LLM.Provider.ChatCompletionModel)
	completer = llmx.NewLoggerClient(completer)

	return completer, nil
}
