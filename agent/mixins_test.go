package agent

import "testing"

func TestMemoryMixin(t *testing.T) {
	var m MemoryMixin

	if len(m.History()) != 0 {
		t.Errorf("expected empty history, got %v", m.History())
	}

	m.Remember(
		Message{Role: "user", Content: "hi"},
		Message{Role: "assistant", Content: "hello"},
	)

	history := m.History()

	if len(history) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(history))
	}

	// The returned slice is a copy: mutating it must not touch the mixin.
	history[0].Content = "changed"

	if m.History()[0].Content != "hi" {
		t.Errorf("history was mutated through the returned slice")
	}
}
