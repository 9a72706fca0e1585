// Package agents holds the six specialized agents. Each one composes a
// prompt builder, a single generative call, and a structured decode into one
// Handle operation.
package agents

import (
	"fmt"
	"sync"

	contractx "github.com/skillradar/agentcore/agent/contract"
)

// base carries the registry descriptor shared by every agent. Status is
// flipped to processing for the duration of a handled request and back to
// idle after; only the owning agent touches it.
type base struct {
	mu   sync.Mutex
	desc contractx.AgentDescriptor
}

func newDescriptor(id contractx.AgentID, name string, priority int, capabilities ...string) contractx.AgentDescriptor {
	return contractx.AgentDescriptor{
		ID:           id,
		Name:         name,
		Capabilities: capabilities,
		Priority:     priority,
		Status:       contractx.StatusIdle,
	}
}

func (b *base) Descriptor() contractx.AgentDescriptor {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.desc
}

// track marks the agent processing and returns the restore func.
func (b *base) track() func() {
	b.setStatus(contractx.StatusProcessing)
	return func() { b.setStatus(contractx.StatusIdle) }
}

func (b *base) setStatus(s contractx.AgentStatus) {
	b.mu.Lock()
	b.desc.Status = s
	b.mu.Unlock()
}

func execErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", contractx.ErrAgentExecution, op, err)
}

func payloadErr(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{contractx.ErrResponsePayload}, args...)...)
}
