package orchestrator

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/user/dreamframes/pkg/adapters/pngcrushcmd"
	"github.com/user/dreamframes/pkg/encoder"
	"github.com/user/dreamframes/pkg/frameseq"
	"github.com/user/dreamframes/pkg/pipeline"
	"github.com/user/dreamframes/pkg/ports"
	"github.com/user/dreamframes/pkg/stages/crush"
	"github.com/user/dreamframes/pkg/stages/extract"
	"github.com/user/dreamframes/pkg/stages/outdir"
)

// ExtractConfig contains the settings of one movie2frames run.
type ExtractConfig struct {
	Source         string
	Directory      string // parent of source_frames
	Encoder        encoder.Kind
	ImageType      frameseq.ImageType
	PngcrushMethod int
}

// ExtractResult contains the results of an extraction run for summary generation.
type ExtractResult struct {
	RunID    string
	Source   string
	OutDir   string
	Pattern  string
	Commands []ports.Command
	Timing   Timing

	// Crush is nil when the output is not PNG or pngcrush is missing.
	Crush *pipeline.CrushResult
}

// Extractor runs the frame extraction pipeline.
type Extractor struct {
	outdirStage  pipeline.Stage[pipeline.OutdirInput, pipeline.OutdirResult]
	extractStage pipeline.Stage[pipeline.ExtractInput, pipeline.ExtractResult]
	crushStage   pipeline.Stage[pipeline.CrushInput, pipeline.CrushResult]
	deps         Deps
	logger       ports.Logger
}

// NewExtractor creates an Extractor with the default stages.
func NewExtractor(deps Deps) *Extractor {
	deps = deps.withDefaults()
	return &Extractor{
		outdirStage:  outdir.NewStage(deps.FS, deps.Prompter, deps.Logger),
		extractStage: extract.NewStage(deps.Runner, deps.Logger),
		crushStage:   crush.NewStage(deps.FS, deps.Runner, deps.Progress, deps.Logger),
		deps:         deps,
		logger:       deps.Logger,
	}
}

// Run validates the source, prepares the frame directory and extracts
// every frame. Nothing is created on disk when the source is missing or
// the encoder is unavailable.
func (e *Extractor) Run(ctx context.Context, config ExtractConfig) (ExtractResult, error) {
	result := ExtractResult{RunID: e.deps.NewID()}

	source, err := filepath.Abs(config.Source)
	if err != nil {
		return result, fmt.Errorf("resolve source: %w", err)
	}
	result.Source = source

	isFile, err := e.deps.FS.IsFile(source)
	if err != nil || !isFile {
		return result, &InputError{Err: ErrSourceNotFound, Path: source}
	}

	backend, err := extract.Lookup(config.Encoder)
	if err != nil {
		return result, err
	}
	toolPath, err := find(e.deps.Locator, backend.Tool)
	if err != nil {
		return result, err
	}

	dir, err := filepath.Abs(config.Directory)
	if err != nil {
		return result, fmt.Errorf("resolve directory: %w", err)
	}
	prepared, err := e.outdirStage.Execute(ctx, pipeline.OutdirInput{Path: filepath.Join(dir, frameseq.DirName)})
	if err != nil {
		return result, err
	}
	result.OutDir = prepared.Path

	result.Timing.Start = e.deps.Now()
	reportStart(e.logger, result.Timing.Start)

	extracted, err := e.extractStage.Execute(ctx, pipeline.ExtractInput{
		Encoder:   config.Encoder,
		ToolPath:  toolPath,
		Source:    source,
		OutDir:    result.OutDir,
		ImageType: config.ImageType,
	})
	result.Pattern = extracted.Pattern
	if extracted.Command.Name != "" {
		result.Commands = append(result.Commands, extracted.Command)
	}
	if err != nil {
		return result, err
	}

	if config.ImageType == frameseq.PNG {
		if crushed, ok, err := e.crush(ctx, config, result.OutDir); err != nil {
			return result, err
		} else if ok {
			result.Crush = &crushed
		}
	}

	result.Timing.End = e.deps.Now()
	reportEnd(e.logger, result.Timing)
	return result, nil
}

// crush recompresses the extracted PNGs. A missing pngcrush is not an error.
func (e *Extractor) crush(ctx context.Context, config ExtractConfig, dir string) (pipeline.CrushResult, bool, error) {
	toolPath, err := e.deps.Locator.Find(pngcrushcmd.Tool)
	if err != nil {
		e.logger.Warn("pngcrush is not installed, skipping...")
		return pipeline.CrushResult{}, false, nil
	}

	crushed, err := e.crushStage.Execute(ctx, pipeline.CrushInput{
		Dir:      dir,
		ToolPath: toolPath,
		Method:   config.PngcrushMethod,
	})
	if err != nil {
		return crushed, false, fmt.Errorf("pngcrush: %w", err)
	}
	return crushed, true, nil
}
