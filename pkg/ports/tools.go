package ports

import "errors"

// ErrToolNotFound is returned when an external executable cannot be located.
var ErrToolNotFound = errors.New("tool not found")

// ToolLocator resolves external tool names to executable paths.
type ToolLocator interface {
	// Find returns the executable path for name, or an error wrapping
	// ErrToolNotFound.
	Find(name string) (string, error)
}
