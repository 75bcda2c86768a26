// Package execrunner runs external tools with os/exec.
package execrunner

import (
	"context"
	"fmt"
	"io"
	"os/exec"

	"github.com/user/dreamframes/pkg/ports"
)

// Runner implements ports.CommandRunner.
type Runner struct {
	stdout io.Writer
	stderr io.Writer
	logger ports.Logger
}

// New creates a Runner that forwards tool output to stdout and stderr.
func New(stdout, stderr io.Writer, logger ports.Logger) *Runner {
	return &Runner{
		stdout: stdout,
		stderr: stderr,
		logger: logger.WithComponent("exec"),
	}
}

// Run executes cmd and waits for it to exit.
func (r *Runner) Run(ctx context.Context, cmd ports.Command) error {
	c := exec.CommandContext(ctx, executable(cmd), cmd.Args...)
	if cmd.Quiet {
		c.Stdout = io.Discard
		c.Stderr = io.Discard
	} else {
		c.Stdout = r.stdout
		c.Stderr = r.stderr
	}

	r.logger.Debug("Running %s", cmd.String())
	if err := c.Run(); err != nil {
		return fmt.Errorf("%s: %w", cmd.Name, err)
	}
	return nil
}

// Output executes cmd and returns what it wrote to stdout.
func (r *Runner) Output(ctx context.Context, cmd ports.Command) ([]byte, error) {
	c := exec.CommandContext(ctx, executable(cmd), cmd.Args...)
	c.Stderr = io.Discard

	r.logger.Debug("Running %s", cmd.String())
	out, err := c.Output()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cmd.Name, err)
	}
	return out, nil
}

func executable(cmd ports.Command) string {
	if cmd.Path != "" {
		return cmd.Path
	}
	return cmd.Name
}

var _ ports.CommandRunner = (*Runner)(nil)
