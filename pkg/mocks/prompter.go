package mocks

import (
	"context"

	"github.com/user/dreamframes/pkg/ports"
)

// Prompter is a mock implementation of ports.Prompter.
type Prompter struct {
	Answer    bool
	Err       error
	Questions []string
}

func (m *Prompter) Confirm(ctx context.Context, question string) (bool, error) {
	m.Questions = append(m.Questions, question)
	return m.Answer, m.Err
}

var _ ports.Prompter = (*Prompter)(nil)
