package orchestrator

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/user/dreamframes/pkg/adapters/mp4inspect"
	"github.com/user/dreamframes/pkg/encoder"
	"github.com/user/dreamframes/pkg/frameseq"
	"github.com/user/dreamframes/pkg/pipeline"
	"github.com/user/dreamframes/pkg/ports"
	"github.com/user/dreamframes/pkg/stages/assemble"
	"github.com/user/dreamframes/pkg/stages/probe"
)

// ReassembleConfig contains the settings of one frames2movie run.
type ReassembleConfig struct {
	ImageDir  string
	Source    string
	Output    string // derived from Source when empty
	Encoder   encoder.Kind
	ImageType frameseq.ImageType
	Codec     string
	KeepTemp  bool
	TempRoot  string // parent of the work directory, os.TempDir when empty
}

// ReassembleResult contains the results of a reassembly run for summary generation.
type ReassembleResult struct {
	RunID    string
	ImageDir string
	Source   string
	Output   string
	Frames   frameseq.Sequence
	Probe    pipeline.ProbeResult
	Commands []ports.Command
	Timing   Timing

	// TempDir is set when intermediates were kept.
	TempDir string
	// Report is nil when the output container was not inspected.
	Report *mp4inspect.Report
}

// Reassembler runs the video reassembly pipeline.
type Reassembler struct {
	probeStage    pipeline.Stage[pipeline.ProbeInput, pipeline.ProbeResult]
	assembleStage pipeline.Stage[pipeline.AssembleInput, pipeline.AssembleResult]
	deps          Deps
	logger        ports.Logger
}

// NewReassembler creates a Reassembler with the default stages.
func NewReassembler(deps Deps) *Reassembler {
	deps = deps.withDefaults()
	return &Reassembler{
		probeStage:    probe.NewStage(deps.Runner, deps.Logger),
		assembleStage: assemble.NewStage(deps.Runner, deps.Logger),
		deps:          deps,
		logger:        deps.Logger,
	}
}

// Run encodes the frames of config.ImageDir at the frame rate of
// config.Source and muxes in the source's audio.
func (r *Reassembler) Run(ctx context.Context, config ReassembleConfig) (ReassembleResult, error) {
	result := ReassembleResult{RunID: r.deps.NewID()}

	if err := r.resolveInputs(config, &result); err != nil {
		return result, err
	}

	result.Timing.Start = r.deps.Now()
	reportStart(r.logger, result.Timing.Start)

	tools := config.Encoder.Tools()
	if len(tools) != 2 {
		return result, fmt.Errorf("%w: %s", encoder.ErrUnknown, config.Encoder)
	}
	probeTool, err := find(r.deps.Locator, tools[0])
	if err != nil {
		return result, err
	}
	encodeTool, err := find(r.deps.Locator, tools[1])
	if err != nil {
		return result, err
	}

	if result.Frames, err = r.checkFrames(result.ImageDir, config.ImageType); err != nil {
		return result, err
	}

	probeOut, err := r.probeStage.Execute(ctx, pipeline.ProbeInput{
		Encoder:  config.Encoder,
		ToolPath: probeTool,
		Source:   result.Source,
	})
	if err != nil {
		return result, err
	}
	result.Probe = probeOut
	r.logger.Info("Encoding %d frames at %s fps", result.Frames.Count, probeOut.FrameRate)

	workDir, err := r.deps.FS.MkdirTemp(config.TempRoot, "dreamframes-*")
	if err != nil {
		return result, fmt.Errorf("create work directory: %w", err)
	}
	if config.KeepTemp {
		result.TempDir = workDir
	} else {
		defer r.cleanup(workDir)
	}

	assembled, err := r.assembleStage.Execute(ctx, pipeline.AssembleInput{
		Encoder:     config.Encoder,
		ToolPath:    encodeTool,
		ImageDir:    result.ImageDir,
		ImageType:   config.ImageType,
		Source:      result.Source,
		Output:      result.Output,
		Codec:       config.Codec,
		FrameRate:   probeOut.FrameRate,
		BitrateKbps: probeOut.BitrateKbps,
		WorkDir:     workDir,
	})
	for _, step := range assembled.Steps {
		result.Commands = append(result.Commands, step.Command)
	}
	if err != nil {
		return result, err
	}

	if config.KeepTemp {
		r.logger.Info("Intermediate files kept in %s", workDir)
	}
	r.inspect(&result)

	result.Timing.End = r.deps.Now()
	reportEnd(r.logger, result.Timing)
	r.logger.Info("Output saved to %s", result.Output)
	return result, nil
}

func (r *Reassembler) resolveInputs(config ReassembleConfig, result *ReassembleResult) error {
	source, err := filepath.Abs(config.Source)
	if err != nil {
		return fmt.Errorf("resolve source: %w", err)
	}
	imageDir, err := filepath.Abs(config.ImageDir)
	if err != nil {
		return fmt.Errorf("resolve imagedir: %w", err)
	}
	result.Source = source
	result.ImageDir = imageDir

	isFile, err := r.deps.FS.IsFile(source)
	if err != nil || !isFile {
		return &InputError{Err: ErrInputsNotFound, Path: source}
	}
	isDir, err := r.deps.FS.IsDir(imageDir)
	if err != nil || !isDir {
		return &InputError{Err: ErrInputsNotFound, Path: imageDir}
	}

	output := config.Output
	if output == "" {
		output = DefaultOutputName(source, r.deps.Now())
	}
	if result.Output, err = filepath.Abs(output); err != nil {
		return fmt.Errorf("resolve outfile: %w", err)
	}
	return nil
}

// checkFrames verifies the image directory holds a frame sequence the
// encoder can read, warning about problems it cannot rule out.
func (r *Reassembler) checkFrames(dir string, t frameseq.ImageType) (frameseq.Sequence, error) {
	seq, err := frameseq.Scan(r.deps.FS, dir, t)
	if err != nil {
		return seq, err
	}
	if seq.Count == 0 {
		return seq, fmt.Errorf("%w: no %s files in %s", ErrNoFrames, frameseq.Pattern("", t), dir)
	}
	if !seq.HasFirst {
		r.logger.Warn("%s not found in %s, the sequence starts at %s", frameseq.Name(1, t), dir, filepath.Base(seq.First))
	}

	width, height, err := frameseq.FrameSize(r.deps.FS, seq.First)
	switch {
	case err != nil:
		r.logger.Warn("Could not read frame size: %v", err)
	case width%2 != 0 || height%2 != 0:
		r.logger.Warn("Frame size %dx%d is odd, yuv420p encoding needs even dimensions", width, height)
	default:
		r.logger.Debug("Frame size %dx%d", width, height)
	}
	return seq, nil
}

func (r *Reassembler) inspect(result *ReassembleResult) {
	if !mp4inspect.Supported(result.Output) {
		return
	}
	report, err := r.deps.Inspect(result.Output)
	if err != nil {
		r.logger.Warn("Could not inspect %s: %v", result.Output, err)
		return
	}
	result.Report = &report
	if report.HasAudio() {
		r.logger.Info("Output tracks: video %s, audio %s", report.VideoCodec, report.AudioCodec)
	} else {
		r.logger.Warn("Output has no audio track (video %s)", report.VideoCodec)
	}
}

func (r *Reassembler) cleanup(dir string) {
	if err := r.deps.FS.RemoveAll(dir); err != nil {
		r.logger.Warn("Could not remove %s: %v", dir, err)
	}
}
