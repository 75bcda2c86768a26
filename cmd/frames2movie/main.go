// Package main provides the CLI entry point for frames2movie.
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
		Name:      "frames2movie",
		Usage:     l10n.T("Reassemble processed frames into a video with the original audio"),
		UsageText: "frames2movie [options] <imagedir> <source>",
		Version:   version,
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		// Exit codes are returned from run instead of terminating the process.
		ExitErrHandler:  func(*cli.Context, error) {},
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "outfile",
				Aliases:  []string{"o"},
				Usage:    l10n.T("name of final video file (default: deepdream-<source>-<timestamp>.<ext>)"),
				Category: l10n.T("Output"),
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
				Usage:    l10n.T("image type of the frames (jpg, png)"),
				Category: l10n.T("Encoding"),
			},
			&cli.StringFlag{
				Name:     "codec",
				Aliases:  []string{"c"},
				Usage:    l10n.T("codec to encode video with, ffmpeg only (default: from config, libx264)"),
				Category: l10n.T("Encoding"),
			},
			&cli.BoolFlag{
				Name:     "keep-temp",
				Usage:    l10n.T("keep intermediate audio and video files"),
				Category: l10n.T("Output"),
			},
			&cli.StringFlag{
				Name:     "summary",
				Usage:    l10n.T("write a run report to this file (.md or .yaml)"),
				Category: l10n.T("Output"),
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
		Action: reassembleAction,
	}
}

func reassembleAction(c *cli.Context) error {
	session, err := dreamframes.NewSession(dreamframes.Options{
		ConfigPath: c.String("config"),
		LogLevel:   c.String("log-level"),
		Quiet:      c.Bool("quiet"),
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

	result, err := orchestrator.NewReassembler(session.Deps).Run(c.Context, config)
	if err != nil {
		return fail(c, session, err)
	}

	if path := c.String("summary"); path != "" {
		if err := dreamframes.WriteSummary(path, dreamframes.ReassembleSummary(config, result)); err != nil {
			log.Warn("Failed to write summary: %v", err)
		} else {
			log.Info("Summary saved to %s", path)
		}
	}
	return nil
}

// buildConfig reads the positional arguments as <imagedir> ... <source>:
// the first is the image directory and the last is the source video.
func buildConfig(c *cli.Context, session *dreamframes.Session) (orchestrator.ReassembleConfig, error) {
	config := orchestrator.ReassembleConfig{
		Output:   c.String("outfile"),
		Codec:    session.Config.Codec,
		KeepTemp: c.Bool("keep-temp"),
	}
	if c.IsSet("codec") {
		config.Codec = c.String("codec")
	}

	if c.NArg() < 2 {
		return config, &orchestrator.InputError{Err: orchestrator.ErrInputsNotFound, Path: c.Args().First()}
	}
	config.ImageDir = c.Args().First()
	config.Source = c.Args().Get(c.NArg() - 1)

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
