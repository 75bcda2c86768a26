// Package dreamframes wires configuration, logging and adapters into the
// orchestrators used by the movie2frames and frames2movie programs.
package dreamframes

import (
	"io"

	"github.com/user/dreamframes/pkg/adapters/execrunner"
	"github.com/user/dreamframes/pkg/adapters/logger"
	"github.com/user/dreamframes/pkg/adapters/osfilesystem"
	"github.com/user/dreamframes/pkg/adapters/progressbar"
	"github.com/user/dreamframes/pkg/adapters/stdinprompt"
	"github.com/user/dreamframes/pkg/adapters/toollocator"
	"github.com/user/dreamframes/pkg/config"
	"github.com/user/dreamframes/pkg/orchestrator"
	"github.com/user/dreamframes/pkg/ports"
)

// Options are the process-level settings shared by both programs.
type Options struct {
	ConfigPath string // empty selects config.DefaultPath
	LogLevel   string // overrides the configured level when set
	Quiet      bool
	AssumeYes  bool

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Session holds the resolved configuration and the adapters built from it.
type Session struct {
	Config config.Config
	Logger ports.Logger
	Deps   orchestrator.Deps
}

// NewSession loads configuration and builds the production adapters.
func NewSession(opts Options) (*Session, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	log := NewLogger(cfg.LogLevel, opts.Quiet, opts.Stdout, opts.Stderr)

	var prompter ports.Prompter = stdinprompt.New(opts.Stdin, opts.Stdout)
	if opts.AssumeYes {
		prompter = stdinprompt.AssumeYes{}
	}

	return &Session{
		Config: cfg,
		Logger: log,
		Deps: orchestrator.Deps{
			FS:       osfilesystem.New(),
			Runner:   execrunner.New(opts.Stdout, opts.Stderr, log),
			Locator:  toollocator.New(cfg.Tools.Overrides()),
			Prompter: prompter,
			Progress: progressbar.New(opts.Stderr),
			Logger:   log,
		},
	}, nil
}

// NewLogger creates the console logger, or a silent one in quiet mode.
func NewLogger(level string, quiet bool, stdout, stderr io.Writer) ports.Logger {
	if quiet {
		return logger.NewNoop()
	}
	return logger.NewConsoleWriter(ports.ParseLogLevel(level), stdout, stderr)
}
