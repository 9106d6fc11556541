package testfixtures

import (
	"context"
	"sync"

	"github.com/mark3labs/atelier/internal/hooks"
)

// HookCall records one MockHooks.Run invocation.
type HookCall struct {
	Name string
	Vars hooks.Variables
}

// MockHooks is a thread-safe hook runner that records calls instead of
// executing commands.
type MockHooks struct {
	mu     sync.Mutex
	calls  []HookCall
	Output map[string]string // Output returned per hook name
	Err    error             // Error returned by every call
}

// NewMockHooks creates an empty recorder.
func NewMockHooks() *MockHooks {
	return &MockHooks{Output: make(map[string]string)}
}

// Run records the call and returns the configured output.
func (m *MockHooks) Run(ctx context.Context, name, workDir string, vars hooks.Variables) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, HookCall{Name: name, Vars: vars})
	if m.Err != nil {
		return "", m.Err
	}
	return m.Output[name], nil
}

// Calls returns a copy of the recorded calls.
func (m *MockHooks) Calls() []HookCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]HookCall, len(m.calls))
	copy(out, m.calls)
	return out
}

// Names returns the recorded hook names in call order.
func (m *MockHooks) Names() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	names := make([]string, len(m.calls))
	for i, c := range m.calls {
		names[i] = c.Name
	}
	return names
}

// Reset clears recorded calls.
func (m *MockHooks) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = nil
}
