// Package probe implements the source metadata stage of reassembly.
package probe

import (
	"context"
	"fmt"

	"github.com/user/dreamframes/pkg/adapters/ffmpegcmd"
	"github.com/user/dreamframes/pkg/adapters/mplayercmd"
	"github.com/user/dreamframes/pkg/encoder"
	"github.com/user/dreamframes/pkg/metadata"
	"github.com/user/dreamframes/pkg/pipeline"
	"github.com/user/dreamframes/pkg/ports"
)

// Stage reads the frame rate (and, for mplayer, the bitrate) of the
// source video from the probing tool's text output.
type Stage struct {
	runner ports.CommandRunner
	logger ports.Logger
}

// NewStage creates a new probe stage.
func NewStage(runner ports.CommandRunner, logger ports.Logger) *Stage {
	return &Stage{
		runner: runner,
		logger: logger.WithComponent("probe"),
	}
}

// Execute probes input.Source.
func (s *Stage) Execute(ctx context.Context, input pipeline.ProbeInput) (pipeline.ProbeResult, error) {
	result := pipeline.ProbeResult{}

	switch input.Encoder {
	case encoder.FFmpeg:
		out, err := s.output(ctx, ffmpegcmd.ProbeStreams(input.ToolPath, input.Source))
		if err != nil {
			return result, err
		}
		if result.FrameRate, err = metadata.FFprobeFrameRate(out); err != nil {
			return result, fmt.Errorf("probe %s: %w", input.Source, err)
		}

	case encoder.MPlayer:
		out, err := s.output(ctx, mplayercmd.Identify(input.ToolPath, input.Source))
		if err != nil {
			return result, err
		}
		if result.FrameRate, err = metadata.MPlayerFPS(out); err != nil {
			return result, fmt.Errorf("probe %s: %w", input.Source, err)
		}
		if result.BitrateKbps, err = metadata.MPlayerBitrateKbps(out); err != nil {
			return result, fmt.Errorf("probe %s: %w", input.Source, err)
		}

	default:
		return result, fmt.Errorf("probe: %w: %s", encoder.ErrUnknown, input.Encoder)
	}

	s.logger.Debug("Source frame rate %s", result.FrameRate)
	return result, nil
}

func (s *Stage) output(ctx context.Context, cmd ports.Command) ([]byte, error) {
	s.logger.Debug("Running %s", cmd)
	out, err := s.runner.Output(ctx, cmd)
	if err != nil {
		return nil, fmt.Errorf("probe: %w", err)
	}
	return out, nil
}

var _ pipeline.Stage[pipeline.ProbeInput, pipeline.ProbeResult] = (*Stage)(nil)
