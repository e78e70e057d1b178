// Package llmx provides decorators over a chat-completion client: the same
// wrapping contract as package wrap, expressed at interface level.
package llmx

import (
	"context"

	"github.com/bornholm/genai/llm"
)

// ChatCompleter is the narrow view of [llm.Client] used by this package's
// decorators.
type ChatCompleter interface {
	ChatCompletion(ctx context.Context, funcs ...llm.ChatCompletionOptionFunc) (llm.ChatCompletionResponse, error)
}
