// Package assemble implements the video reassembly stage.
//
// Reassembly is a short plan of external invocations run strictly in order.
// Intermediate files live in the caller-provided work directory; the stage
// never removes them.
package assemble

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/user/dreamframes/pkg/adapters/ffmpegcmd"
	"github.com/user/dreamframes/pkg/adapters/mplayercmd"
	"github.com/user/dreamframes/pkg/encoder"
	"github.com/user/dreamframes/pkg/frameseq"
	"github.com/user/dreamframes/pkg/pipeline"
	"github.com/user/dreamframes/pkg/ports"
)

// DefaultCodec is the ffmpeg video codec used when none is given.
const DefaultCodec = "libx264"

// Intermediate file names inside the work directory.
const (
	videoFile     = "video.mp4"
	audioFile     = "audio.aac"
	rawAudioFile  = "audio.mp3"
	labelEncode   = "encode video"
	labelAudio    = "extract audio"
	labelMux      = "mux"
	labelMEncoder = "encode video with audio"
)

// Stage executes a reassembly plan.
type Stage struct {
	runner ports.CommandRunner
	logger ports.Logger
}

// NewStage creates a new assemble stage.
func NewStage(runner ports.CommandRunner, logger ports.Logger) *Stage {
	return &Stage{
		runner: runner,
		logger: logger.WithComponent("assemble"),
	}
}

// BuildPlan returns the ordered invocations for input and the intermediate
// files they write.
func BuildPlan(input pipeline.AssembleInput) ([]pipeline.Step, []string, error) {
	if input.FrameRate == "" {
		return nil, nil, fmt.Errorf("assemble: frame rate is required")
	}
	pattern := frameseq.Pattern(input.ImageDir, input.ImageType)

	switch input.Encoder {
	case encoder.FFmpeg:
		video := filepath.Join(input.WorkDir, videoFile)
		audio := filepath.Join(input.WorkDir, audioFile)
		codec := input.Codec
		if codec == "" {
			codec = DefaultCodec
		}
		steps := []pipeline.Step{
			{Label: labelEncode, Command: ffmpegcmd.EncodeSequence(input.ToolPath, ffmpegcmd.EncodeOptions{
				Pattern:   pattern,
				FrameRate: input.FrameRate,
				Codec:     codec,
				Output:    video,
			})},
			{Label: labelAudio, Command: ffmpegcmd.ExtractAudio(input.ToolPath, input.Source, audio)},
			{Label: labelMux, Command: ffmpegcmd.Mux(input.ToolPath, audio, video, input.Output)},
		}
		return steps, []string{video, audio}, nil

	case encoder.MPlayer:
		audio := filepath.Join(input.WorkDir, rawAudioFile)
		steps := []pipeline.Step{
			{Label: labelAudio, Command: mplayercmd.ExtractAudio(input.ToolPath, input.Source, audio)},
			{Label: labelMEncoder, Command: mplayercmd.EncodeWithAudio(input.ToolPath, mplayercmd.EncodeOptions{
				Pattern:     pattern,
				ImageType:   input.ImageType.Ext(),
				FrameRate:   input.FrameRate,
				BitrateKbps: input.BitrateKbps,
				Audio:       audio,
				Output:      input.Output,
			})},
		}
		return steps, []string{audio}, nil

	default:
		return nil, nil, fmt.Errorf("assemble: %w: %s", encoder.ErrUnknown, input.Encoder)
	}
}

// Execute runs the plan for input. The first failing step stops the run.
func (s *Stage) Execute(ctx context.Context, input pipeline.AssembleInput) (pipeline.AssembleResult, error) {
	result := pipeline.AssembleResult{}

	steps, intermediate, err := BuildPlan(input)
	if err != nil {
		return result, err
	}
	result.Intermediate = intermediate

	for _, step := range steps {
		s.logger.Debug("Running %s", step.Command)
		result.Steps = append(result.Steps, step)
		if err := s.runner.Run(ctx, step.Command); err != nil {
			return result, fmt.Errorf("%s: %w", step.Label, err)
		}
	}
	return result, nil
}

var _ pipeline.Stage[pipeline.AssembleInput, pipeline.AssembleResult] = (*Stage)(nil)
