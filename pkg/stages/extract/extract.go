// Package extract implements the frame extraction stage.
package extract

import (
	"context"
	"errors"
	"fmt"

	"github.com/user/dreamframes/pkg/adapters/ffmpegcmd"
	"github.com/user/dreamframes/pkg/encoder"
	"github.com/user/dreamframes/pkg/frameseq"
	"github.com/user/dreamframes/pkg/pipeline"
	"github.com/user/dreamframes/pkg/ports"
)

// ErrEncoderDisabled is returned for encoders that have no extraction backend.
var ErrEncoderDisabled = errors.New("encoder disabled for extraction")

// Backend builds the extraction command for one encoder toolchain.
type Backend struct {
	// Tool is the executable that must be installed.
	Tool string
	// Build returns the invocation writing frames of source to pattern.
	Build func(toolPath, source, pattern string) ports.Command
}

var backends = map[encoder.Kind]Backend{
	encoder.FFmpeg: {Tool: ffmpegcmd.FFmpeg, Build: ffmpegcmd.ExtractFrames},
}

// Lookup returns the extraction backend for kind.
func Lookup(kind encoder.Kind) (Backend, error) {
	b, ok := backends[kind]
	if !ok {
		return Backend{}, fmt.Errorf("%w: %s", ErrEncoderDisabled, kind)
	}
	return b, nil
}

// Stage runs the encoder to split the source into numbered frames.
type Stage struct {
	runner ports.CommandRunner
	logger ports.Logger
}

// NewStage creates a new extract stage.
func NewStage(runner ports.CommandRunner, logger ports.Logger) *Stage {
	return &Stage{
		runner: runner,
		logger: logger.WithComponent("extract"),
	}
}

// Execute extracts every frame of input.Source into input.OutDir.
func (s *Stage) Execute(ctx context.Context, input pipeline.ExtractInput) (pipeline.ExtractResult, error) {
	result := pipeline.ExtractResult{}

	backend, err := Lookup(input.Encoder)
	if err != nil {
		return result, err
	}

	result.Pattern = frameseq.Pattern(input.OutDir, input.ImageType)
	result.Command = backend.Build(input.ToolPath, input.Source, result.Pattern)

	s.logger.Debug("Running %s", result.Command)
	if err := s.runner.Run(ctx, result.Command); err != nil {
		return result, fmt.Errorf("extract frames: %w", err)
	}
	return result, nil
}

var _ pipeline.Stage[pipeline.ExtractInput, pipeline.ExtractResult] = (*Stage)(nil)
