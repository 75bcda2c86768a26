package mocks

import (
	"fmt"
	"strings"
	"sync"

	"github.com/user/dreamframes/pkg/ports"
)

// LogEntry is one recorded log call.
type LogEntry struct {
	Level   ports.LogLevel
	Message string // formatted, untranslated
}

// Logger is a ports.Logger that records messages for assertions.
type Logger struct {
	mu      sync.Mutex
	entries []LogEntry
}

// NewLogger creates a recording logger.
func NewLogger() *Logger {
	return &Logger{}
}

func (m *Logger) record(level ports.LogLevel, msg string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, LogEntry{Level: level, Message: fmt.Sprintf(msg, args...)})
}

func (m *Logger) Debug(msg string, args ...interface{}) { m.record(ports.LevelDebug, msg, args...) }
func (m *Logger) Info(msg string, args ...interface{})  { m.record(ports.LevelInfo, msg, args...) }
func (m *Logger) Warn(msg string, args ...interface{})  { m.record(ports.LevelWarn, msg, args...) }
func (m *Logger) Error(msg string, args ...interface{}) { m.record(ports.LevelError, msg, args...) }

// WithComponent returns the same recorder.
func (m *Logger) WithComponent(component string) ports.Logger {
	return m
}

// Entries returns recorded entries at the given level.
func (m *Logger) Entries(level ports.LogLevel) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []string
	for _, e := range m.entries {
		if e.Level == level {
			out = append(out, e.Message)
		}
	}
	return out
}

// Contains reports whether any entry at level contains substr.
func (m *Logger) Contains(level ports.LogLevel, substr string) bool {
	for _, msg := range m.Entries(level) {
		if strings.Contains(msg, substr) {
			return true
		}
	}
	return false
}

var _ ports.Logger = (*Logger)(nil)
