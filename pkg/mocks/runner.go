package mocks

import (
	"context"
	"sync"

	"github.com/user/dreamframes/pkg/ports"
)

// CommandRunner is a mock implementation of ports.CommandRunner.
type CommandRunner struct {
	RunFunc    func(ctx context.Context, cmd ports.Command) error
	OutputFunc func(ctx context.Context, cmd ports.Command) ([]byte, error)

	// Outputs maps tool names to canned stdout for Output calls.
	Outputs map[string][]byte

	mu          sync.Mutex
	RunCalls    []ports.Command
	OutputCalls []ports.Command
}

func (m *CommandRunner) Run(ctx context.Context, cmd ports.Command) error {
	m.mu.Lock()
	m.RunCalls = append(m.RunCalls, cmd)
	m.mu.Unlock()
	if m.RunFunc != nil {
		return m.RunFunc(ctx, cmd)
	}
	return nil
}

func (m *CommandRunner) Output(ctx context.Context, cmd ports.Command) ([]byte, error) {
	m.mu.Lock()
	m.OutputCalls = append(m.OutputCalls, cmd)
	m.mu.Unlock()
	if m.OutputFunc != nil {
		return m.OutputFunc(ctx, cmd)
	}
	return m.Outputs[cmd.Name], nil
}

// Calls returns every invocation, Run and Output alike, in call order per kind.
func (m *CommandRunner) Calls() []ports.Command {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := append([]ports.Command{}, m.OutputCalls...)
	return append(all, m.RunCalls...)
}

var _ ports.CommandRunner = (*CommandRunner)(nil)
