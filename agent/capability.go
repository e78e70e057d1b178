package agent

// Message is a single conversation entry.
type Message struct {
	Role    string
	Content string
}

// Observable is the minimal capability required by cost-tracking decorators:
// a receiver able to record token usage.
type Observable interface {
	RecordCost(tokens int)
}

// MemoryAware is the minimal capability required by history-aware decorators:
// a receiver exposing its conversation history.
type MemoryAware interface {
	History() []Message
}

// Validating exposes the receiver-side validation policy used by
// ValidateOutput: a retry budget and a validity predicate on the result.
type Validating[T any] interface {
	MaxValidationRetries() int
	IsValid(result T) bool
}
