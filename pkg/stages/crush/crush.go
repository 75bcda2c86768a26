// Package crush implements the lossless PNG recompression stage.
package crush

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/user/dreamframes/pkg/adapters/pngcrushcmd"
	"github.com/user/dreamframes/pkg/pipeline"
	"github.com/user/dreamframes/pkg/ports"
)

// Stage runs pngcrush over every file below a directory, one file at a
// time, reporting progress per directory.
type Stage struct {
	fs       ports.FileSystem
	runner   ports.CommandRunner
	progress ports.ProgressFactory
	logger   ports.Logger
}

// NewStage creates a new crush stage.
func NewStage(fs ports.FileSystem, runner ports.CommandRunner, progress ports.ProgressFactory, logger ports.Logger) *Stage {
	return &Stage{
		fs:       fs,
		runner:   runner,
		progress: progress,
		logger:   logger.WithComponent("pngcrush"),
	}
}

// Execute recompresses all files in input.Dir and its subdirectories.
// A file that pngcrush fails on is counted and skipped.
func (s *Stage) Execute(ctx context.Context, input pipeline.CrushInput) (pipeline.CrushResult, error) {
	result := pipeline.CrushResult{}

	method := input.Method
	if method <= 0 {
		method = pngcrushcmd.DefaultMethod
	}

	listings, err := s.fs.ListTree(input.Dir)
	if err != nil {
		return result, fmt.Errorf("list %s: %w", input.Dir, err)
	}

	for _, listing := range listings {
		s.logger.Info("Running pngcrush on files in \"%s\"", listing.Dir)
		bar := s.progress.New(len(listing.Files), filepath.Base(listing.Dir))

		for _, name := range listing.Files {
			select {
			case <-ctx.Done():
				bar.Finish()
				return result, ctx.Err()
			default:
			}

			file := filepath.Join(listing.Dir, name)
			cmd := pngcrushcmd.Overwrite(input.ToolPath, method, file)
			if err := s.runner.Run(ctx, cmd); err != nil {
				if ctx.Err() != nil {
					bar.Finish()
					return result, ctx.Err()
				}
				s.logger.Warn("pngcrush failed on %s: %v", file, err)
				result.Failed++
			} else {
				result.Processed++
			}
			bar.Add(1)
		}
		bar.Finish()
	}

	s.logger.Debug("Recompressed %d files (%d failed)", result.Processed, result.Failed)
	return result, nil
}

var _ pipeline.Stage[pipeline.CrushInput, pipeline.CrushResult] = (*Stage)(nil)
