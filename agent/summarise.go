package agent

import (
	"context"
	"strings"

	"github.com/bornholm/aspect/llmx"
	"github.com/bornholm/aspect/wrap"
	"github.com/bornholm/genai/llm"
	"github.com/pkg/errors"
)

const summariseSystemPrompt = "You are a summarisation assistant. Condense the user message into a short summary keeping only the essential points."

// Summary is the result type of SummarisationAgent.
type Summary struct {
	Condensed string
}

// SummarisationAgent has cost tracking but no conversation memory.
type SummarisationAgent struct {
	ObservabilityMixin

	client               llmx.ChatCompleter
	maxValidationRetries int
}

func NewSummarisationAgent(client llmx.ChatCompleter, model string, maxValidationRetries int) *SummarisationAgent {
	return &SummarisationAgent{
		ObservabilityMixin:   ObservabilityMixin{Model: model},
		client:               client,
		maxValidationRetries: maxValidationRetries,
	}
}

// MaxValidationRetries implements Validating.
func (a *SummarisationAgent) MaxValidationRetries() int {
	return a.maxValidationRetries
}

// IsValid implements Validating.
func (a *SummarisationAgent) IsValid(result Summary) bool {
	return strings.TrimSpace(result.Condensed) != ""
}

func (a *SummarisationAgent) summarise(ctx context.Context, prompt string) (Summary, error) {
	completion, err := a.client.ChatCompletion(ctx,
		llm.WithMessages(
			llm.NewMessage(llm.RoleSystem, summariseSystemPrompt),
			llm.NewMessage(llm.RoleUser, prompt),
		),
		llm.WithTemperature(0.2),
	)
	if err != nil {
		return Summary{}, errors.WithStack(err)
	}

	return Summary{Condensed: completion.Message().Content()}, nil
}

var runSummarise = wrap.ChainMethod(
	(*SummarisationAgent).summarise,
	TrackCost[*SummarisationAgent, string, Summary],
	ValidateOutput[*SummarisationAgent, string, Summary],
)

// Run executes the decorated summarisation method.
func (a *SummarisationAgent) Run(ctx context.Context, prompt string) (Summary, error) {
	return runSummarise(a, ctx, prompt)
}

var _ Observable = &SummarisationAgent{}
var _ Validating[Summary] = &SummarisationAgent{}
