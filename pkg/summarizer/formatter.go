package summarizer

import (
	"path/filepath"
	"strings"
)

// Formatter defines the interface for formatting a Summary.
type Formatter interface {
	// Format converts a Summary to a formatted document.
	Format(summary *Summary) (string, error)
}

// FormatFunc is a function adapter for the Formatter interface.
type FormatFunc func(summary *Summary) (string, error)

// Format implements the Formatter interface.
func (f FormatFunc) Format(summary *Summary) (string, error) {
	return f(summary)
}

// ForPath picks the formatter matching the extension of path:
// YAML for .yaml and .yml, Markdown otherwise.
func ForPath(path string) Formatter {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return NewYAMLFormatter()
	default:
		return NewMarkdownFormatter()
	}
}
