package ports

import (
	"context"
	"strings"
)

// Command is a single external tool invocation.
type Command struct {
	// Name is the logical tool name (ffmpeg, ffprobe, mencoder, ...).
	Name string
	// Path is the resolved executable.
	Path string
	// Args excludes the executable itself.
	Args []string
	// Quiet discards the tool's stdout and stderr.
	Quiet bool
}

// String returns the command line as it would be typed in a shell (without quoting).
func (c Command) String() string {
	exe := c.Path
	if exe == "" {
		exe = c.Name
	}
	return strings.Join(append([]string{exe}, c.Args...), " ")
}

// CommandRunner executes external tools synchronously.
type CommandRunner interface {
	// Run executes the command, streaming its output to the terminal unless
	// the command is quiet. A non-zero exit status is returned as an error.
	Run(ctx context.Context, cmd Command) error

	// Output executes the command and returns its stdout. Stderr is discarded.
	Output(ctx context.Context, cmd Command) ([]byte, error)
}
