package agent

import (
	"context"
	"strings"

	"github.com/bornholm/aspect/llmx"
	"github.com/bornholm/aspect/wrap"
	"github.com/bornholm/genai/llm"
	"github.com/pkg/errors"
)

const chatSystemPrompt = "You are a helpful conversational assistant. Answer the user message directly."

// ChatResponse is the result type of ChatAgent.
type ChatResponse struct {
	Reply string
}

// ChatAgent has both cost tracking and conversation memory.
type ChatAgent struct {
	ObservabilityMixin
	MemoryMixin

	client               llmx.ChatCompleter
	maxValidationRetries int
}

func NewChatAgent(client llmx.ChatCompleter, model string, maxValidationRetries int) *ChatAgent {
	return &ChatAgent{
		ObservabilityMixin:   ObservabilityMixin{Model: model},
		client:               client,
		maxValidationRetries: maxValidationRetries,
	}
}

// MaxValidationRetries implements Validating.
func (a *ChatAgent) MaxValidationRetries() int {
	return a.maxValidationRetries
}

// IsValid implements Validating.
func (a *ChatAgent) IsValid(result ChatResponse) bool {
	return strings.TrimSpace(result.Reply) != ""
}

func (a *ChatAgent) chat(ctx context.Context, prompt string) (ChatResponse, error) {
	completion, err := a.client.ChatCompletion(ctx,
		llm.WithMessages(
			llm.NewMessage(llm.RoleSystem, chatSystemPrompt),
			llm.NewMessage(llm.RoleUser, prompt),
		),
	)
	if err != nil {
		return ChatResponse{}, errors.WithStack(err)
	}

	return ChatResponse{Reply: completion.Message().Content()}, nil
}

var runChat = wrap.ChainMethod(
	(*ChatAgent).chat,
	TrackCost[*ChatAgent, string, ChatResponse],
	InjectHistory[*ChatAgent, string, ChatResponse],
	ValidateOutput[*ChatAgent, string, ChatResponse],
)

// Run executes the decorated chat method and records the exchange in the
// conversation history.
func (a *ChatAgent) Run(ctx context.Context, prompt string) (ChatResponse, error) {
	response, err := runChat(a, ctx, prompt)
	if err != nil {
		return ChatResponse{}, errors.WithStack(err)
	}

	a.Remember(
		Message{Role: "user", Content: prompt},
		Message{Role: "assistant", Content: response.Reply},
	)

	return response, nil
}

var _ Observable = &ChatAgent{}
var _ MemoryAware = &ChatAgent{}
var _ Validating[ChatResponse] = &ChatAgent{}
