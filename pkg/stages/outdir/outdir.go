// Package outdir implements the frame directory preparation stage.
package outdir

import (
	"context"
	"errors"
	"fmt"

	"github.com/user/dreamframes/pkg/pipeline"
	"github.com/user/dreamframes/pkg/ports"
)

// ErrOverwriteDeclined is returned when the operator refuses to replace an
// existing directory. Nothing on disk has been changed.
var ErrOverwriteDeclined = errors.New("directory exists, overwrite declined")

// Stage creates a fresh, empty frame directory. An existing directory is
// only removed after the operator confirms.
type Stage struct {
	fs       ports.FileSystem
	prompter ports.Prompter
	logger   ports.Logger
}

// NewStage creates a new output directory stage.
func NewStage(fs ports.FileSystem, prompter ports.Prompter, logger ports.Logger) *Stage {
	return &Stage{
		fs:       fs,
		prompter: prompter,
		logger:   logger.WithComponent("outdir"),
	}
}

// Execute prepares input.Path.
func (s *Stage) Execute(ctx context.Context, input pipeline.OutdirInput) (pipeline.OutdirResult, error) {
	result := pipeline.OutdirResult{Path: input.Path}

	isDir, err := s.fs.IsDir(input.Path)
	if err != nil {
		return result, fmt.Errorf("stat %s: %w", input.Path, err)
	}

	if isDir {
		ok, err := s.prompter.Confirm(ctx, fmt.Sprintf("Overwrite existing directory %s? [y/N] ", input.Path))
		if err != nil {
			return result, fmt.Errorf("read confirmation: %w", err)
		}
		if !ok {
			return result, ErrOverwriteDeclined
		}
		if err := ctx.Err(); err != nil {
			return result, err
		}
		s.logger.Debug("Removing %s", input.Path)
		if err := s.fs.RemoveAll(input.Path); err != nil {
			return result, fmt.Errorf("remove %s: %w", input.Path, err)
		}
		result.Replaced = true
	}

	if err := s.fs.Mkdir(input.Path); err != nil {
		return result, fmt.Errorf("create %s: %w", input.Path, err)
	}
	s.logger.Debug("Created %s", input.Path)
	return result, nil
}

var _ pipeline.Stage[pipeline.OutdirInput, pipeline.OutdirResult] = (*Stage)(nil)
