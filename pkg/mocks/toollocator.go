package mocks

import (
	"fmt"

	"github.com/user/dreamframes/pkg/ports"
)

// ToolLocator is a mock implementation of ports.ToolLocator backed by a
// fixed table of installed tools.
type ToolLocator struct {
	Installed map[string]string
	Lookups   []string
}

// NewToolLocator creates a locator where each name resolves to /usr/bin/<name>.
func NewToolLocator(names ...string) *ToolLocator {
	l := &ToolLocator{Installed: map[string]string{}}
	for _, name := range names {
		l.Installed[name] = "/usr/bin/" + name
	}
	return l
}

func (m *ToolLocator) Find(name string) (string, error) {
	m.Lookups = append(m.Lookups, name)
	if path, ok := m.Installed[name]; ok {
		return path, nil
	}
	return "", fmt.Errorf("%w: %s", ports.ErrToolNotFound, name)
}

var _ ports.ToolLocator = (*ToolLocator)(nil)
