// Package logger provides logging implementations.
package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/ideamans/go-l10n"
	"github.com/mattn/go-isatty"
	"github.com/user/dreamframes/pkg/ports"
)

// ConsoleLogger logs messages to the console with color support.
type ConsoleLogger struct {
	level     ports.LogLevel
	component string
	stdout    io.Writer
	stderr    io.Writer
	colors    map[ports.LogLevel]*color.Color
	prefix    *color.Color
}

// NewConsoleWriter creates a console logger writing info and debug messages
// to stdout and warnings and errors to stderr. Color output is enabled only
// when stdout is a terminal.
func NewConsoleWriter(level ports.LogLevel, stdout, stderr io.Writer) *ConsoleLogger {
	l := &ConsoleLogger{
		level:  level,
		stdout: stdout,
		stderr: stderr,
		colors: map[ports.LogLevel]*color.Color{
			ports.LevelDebug: color.New(color.FgHiBlack),
			ports.LevelWarn:  color.New(color.FgYellow),
			ports.LevelError: color.New(color.FgRed),
		},
		prefix: color.New(color.FgCyan),
	}

	enabled := isTerminal(stdout)
	for _, c := range l.colors {
		setColor(c, enabled)
	}
	setColor(l.prefix, enabled)
	return l
}

func setColor(c *color.Color, enabled bool) {
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Debug logs a debug message.
func (l *ConsoleLogger) Debug(msg string, args ...interface{}) {
	l.log(ports.LevelDebug, msg, args...)
}

// Info logs an informational message.
func (l *ConsoleLogger) Info(msg string, args ...interface{}) {
	l.log(ports.LevelInfo, msg, args...)
}

// Warn logs a warning message.
func (l *ConsoleLogger) Warn(msg string, args ...interface{}) {
	l.log(ports.LevelWarn, msg, args...)
}

// Error logs an error message.
func (l *ConsoleLogger) Error(msg string, args ...interface{}) {
	l.log(ports.LevelError, msg, args...)
}

// WithComponent returns a new logger with the specified component name.
func (l *ConsoleLogger) WithComponent(component string) ports.Logger {
	clone := *l
	clone.component = component
	return &clone
}

func (l *ConsoleLogger) log(level ports.LogLevel, msg string, args ...interface{}) {
	if level < l.level {
		return
	}

	output := l10n.F(msg, args...)
	if l.component != "" {
		output = fmt.Sprintf("%s %s", l.prefix.Sprintf("[%s]", l.component), output)
	}
	if c, ok := l.colors[level]; ok {
		output = c.Sprint(output)
	}

	if level >= ports.LevelWarn {
		fmt.Fprintln(l.stderr, output)
	} else {
		fmt.Fprintln(l.stdout, output)
	}
}

var _ ports.Logger = (*ConsoleLogger)(nil)
