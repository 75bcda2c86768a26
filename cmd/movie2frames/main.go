// Package main provides the CLI entry point for movie2frames.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/dreamframes/pkg/dreamframes"
	"github.com/user/dreamframes/pkg/encoder"
	"github.com/user/dreamframes/pkg/frameseq"
	"github.com/user/dreamframes/pkg/orchestrator"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	// After the first signal, restore default handling so a second one kills
	// the process outright.
	go func() {
		<-ctx.Done()
		stop()
	}()
	code := run(ctx, os.Args, os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	app := newApp(stdin, stdout, stderr)
	if err := app.RunContext(ctx, args); err != nil {
		if exitErr, ok := err.(cli.ExitCoder); ok {
			return exitErr.ExitCode()
		}
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "movie2frames",
		Usage:     l10n.T("Extract the frames of a video into a numbered image sequence"),
		UsageText: "movie2frames [options] <source>...",
		Version:   version,
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		// Exit codes are returned from run instead of terminating the process.
		ExitErrHandler:  func(*cli.Context, error) {},
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "directory",
				Aliases:     []string{"d"},
				Usage:       l10n.T("root working directory to use (default: current directory)"),
				Category:    l10n.T("Output"),
				DefaultText: ".",
			},
			&cli.StringFlag{
				Name:     "encoder",
				Aliases:  []string{"e"},
				Value:    encoder.FFmpeg.String(),
				Usage:    l10n.T("select which encoder to use (ffmpeg, mplayer)"),
				Category: l10n.T("Encoding"),
			},
			&cli.StringFlag{
				Name:     "type",
				Aliases:  []string{"t"},
				Value:    string(frameseq.JPG),
				Usage:    l10n.T("image type to output (jpg, png)"),
				Category: l10n.T("Output"),
			},
			&cli.IntFlag{
				Name:     "pngcrush-method",
				Usage:    l10n.T("pngcrush -m method used for png output (default: from config, 115)"),
				Category: l10n.T("Encoding"),
			},
			&cli.BoolFlag{
				Name:    "yes",
				Aliases: []string{"y"},
				Usage:   l10n.T("overwrite an existing source_frames directory without asking"),
			},
			&cli.StringFlag{
				Name:  "summary",
				Usage: l10n.T("write a run report to this file (.md or .yaml)"),
			},
			&cli.StringFlag{
				Name:     "config",
				Usage:    l10n.T("configuration file (default: ~/.config/dreamframes/config.yaml)"),
				Category: l10n.T("Logging"),
			},
			&cli.StringFlag{
				Name:     "log-level",
				Aliases:  []string{"l"},
				Usage:    l10n.T("log level (debug, info, warn, error)"),
				Category: l10n.T("Logging"),
			},
			&cli.BoolFlag{
				Name:     "quiet",
				Aliases:  []string{"q"},
				Usage:    l10n.T("suppress all log output"),
				Category: l10n.T("Logging"),
			},
		},
		Action: extractAction,
	}
}

func extractAction(c *cli.Context) error {
	session, err := dreamframes.NewSession(dreamframes.Options{
		ConfigPath: c.String("config"),
		LogLevel:   c.String("log-level"),
		Quiet:      c.Bool("quiet"),
		AssumeYes:  c.Bool("yes"),
		Stdin:      c.App.Reader,
		Stdout:     c.App.Writer,
		Stderr:     c.App.ErrWriter,
	})
	if err != nil {
		fmt.Fprintln(c.App.ErrWriter, err)
		return cli.Exit("", 1)
	}
	log := session.Logger

	config, err := buildConfig(c, session)
	if err != nil {
		return fail(c, session, err)
	}

	result, err := orchestrator.NewExtractor(session.Deps).Run(c.Context, config)
	if err != nil {
		return fail(c, session, err)
	}

	if path := c.String("summary"); path != "" {
		if err := dreamframes.WriteSummary(path, dreamframes.ExtractSummary(config, result)); err != nil {
			log.Warn("Failed to write summary: %v", err)
		} else {
			log.Info("Summary saved to %s", path)
		}
	}
	return nil
}

func buildConfig(c *cli.Context, session *dreamframes.Session) (orchestrator.ExtractConfig, error) {
	config := orchestrator.ExtractConfig{
		Source:         c.Args().First(),
		Directory:      c.String("directory"),
		PngcrushMethod: session.Config.PngcrushMethod,
	}
	if c.IsSet("pngcrush-method") {
		config.PngcrushMethod = c.Int("pngcrush-method")
	}
	if config.Directory == "" {
		wd, err := os.Getwd()
		if err != nil {
			return config, err
		}
		config.Directory = wd
	}

	var err error
	if config.Encoder, err = encoder.Parse(c.String("encoder")); err != nil {
		return config, err
	}
	if config.ImageType, err = frameseq.ParseImageType(c.String("type")); err != nil {
		return config, err
	}
	return config, nil
}

// fail reports err and returns the exit error for it.
func fail(c *cli.Context, session *dreamframes.Session, err error) error {
	f := dreamframes.Describe(err)
	f.Report(session.Logger)
	session.Logger.Debug("%+v", err)
	if f.ShowUsage {
		fmt.Fprintln(c.App.Writer)
		cli.ShowAppHelp(c)
	}
	return cli.Exit("", 1)
}
