package agent

import (
	"sync"

	"github.com/bornholm/aspect/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// ObservabilityMixin grants the Observable capability to any type embedding
// it. Recorded costs are published as prometheus counters, labeled by model.
type ObservabilityMixin struct {
	Model string
}

// RecordCost implements Observable.
func (m *ObservabilityMixin) RecordCost(tokens int) {
	metrics.AgentCostTokens.With(prometheus.Labels{metrics.LabelModel: m.Model}).Add(float64(tokens))
}

// MemoryMixin grants the MemoryAware capability to any type embedding it.
type MemoryMixin struct {
	mu      sync.RWMutex
	history []Message
}

// History implements MemoryAware. The returned slice is a copy.
func (m *MemoryMixin) History() []Message {
	m.mu.RLock()
	defer m.mu.RUnlock()

	history := make([]Message, len(m.history))
	copy(history, m.history)

	return history
}

// Remember appends messages to the conversation history.
func (m *MemoryMixin) Remember(messages ...Message) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.history = append(m.history, messages...)
}

var _ Observable = &ObservabilityMixin{}
var _ MemoryAware = &MemoryMixin{}
