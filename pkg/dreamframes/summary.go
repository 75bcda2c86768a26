package dreamframes

import (
	"github.com/user/dreamframes/pkg/orchestrator"
	"github.com/user/dreamframes/pkg/ports"
	"github.com/user/dreamframes/pkg/summarizer"
)

// ExtractSummary builds the run report of a movie2frames run.
func ExtractSummary(config orchestrator.ExtractConfig, result orchestrator.ExtractResult) *summarizer.Summary {
	settings := summarizer.Settings{
		Encoder:   config.Encoder.String(),
		ImageType: config.ImageType.Ext(),
	}
	var res summarizer.Result
	if result.Crush != nil {
		settings.PngcrushMethod = config.PngcrushMethod
		res.Crushed = result.Crush.Processed
		res.CrushFailed = result.Crush.Failed
	}

	b := summarizer.NewBuilder().
		WithRun(result.RunID, "movie2frames").
		WithInputs(summarizer.Inputs{Source: result.Source, OutDir: result.OutDir}).
		WithSettings(settings).
		WithTiming(result.Timing.Start, result.Timing.End).
		WithResult(res)
	addCommands(b, result.Commands)
	return b.Build()
}

// ReassembleSummary builds the run report of a frames2movie run.
func ReassembleSummary(config orchestrator.ReassembleConfig, result orchestrator.ReassembleResult) *summarizer.Summary {
	res := summarizer.Result{
		Frames:  result.Frames.Count,
		TempDir: result.TempDir,
	}
	if result.Report != nil {
		res.VideoCodec = result.Report.VideoCodec
		res.AudioCodec = result.Report.AudioCodec
	}

	b := summarizer.NewBuilder().
		WithRun(result.RunID, "frames2movie").
		WithInputs(summarizer.Inputs{
			Source:   result.Source,
			ImageDir: result.ImageDir,
			Output:   result.Output,
		}).
		WithSettings(summarizer.Settings{
			Encoder:     config.Encoder.String(),
			ImageType:   config.ImageType.Ext(),
			Codec:       config.Codec,
			FrameRate:   result.Probe.FrameRate,
			BitrateKbps: result.Probe.BitrateKbps,
		}).
		WithTiming(result.Timing.Start, result.Timing.End).
		WithResult(res)
	addCommands(b, result.Commands)
	return b.Build()
}

func addCommands(b *summarizer.Builder, cmds []ports.Command) {
	for _, cmd := range cmds {
		b.AddCommand(cmd.String())
	}
}

// WriteSummary writes s to path as Markdown, or as YAML when path ends in
// .yaml or .yml.
func WriteSummary(path string, s *summarizer.Summary) error {
	return summarizer.NewWriter(summarizer.ForPath(path)).Write(path, s)
}
