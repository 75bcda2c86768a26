// Package summarizer provides run reports for the frame tools.
package summarizer

import "time"

// Summary contains all data collected during one run.
type Summary struct {
	// Metadata
	RunID       string    `yaml:"run_id"`
	Program     string    `yaml:"program"`
	GeneratedAt time.Time `yaml:"generated_at"`

	Inputs   Inputs     `yaml:"inputs"`
	Settings Settings   `yaml:"settings"`
	Timing   TimingInfo `yaml:"timing"`

	// Commands lists every external invocation in execution order.
	Commands []string `yaml:"commands"`

	Result Result `yaml:"result"`
}

// Inputs contains the paths a run read from and wrote to.
type Inputs struct {
	Source   string `yaml:"source"`
	ImageDir string `yaml:"image_dir,omitempty"`
	OutDir   string `yaml:"out_dir,omitempty"`
	Output   string `yaml:"output,omitempty"`
}

// Settings contains the run configuration.
type Settings struct {
	Encoder        string `yaml:"encoder"`
	ImageType      string `yaml:"image_type"`
	Codec          string `yaml:"codec,omitempty"`
	FrameRate      string `yaml:"frame_rate,omitempty"`
	BitrateKbps    int    `yaml:"bitrate_kbps,omitempty"`
	PngcrushMethod int    `yaml:"pngcrush_method,omitempty"`
}

// TimingInfo contains wall-clock measurements.
type TimingInfo struct {
	Start      time.Time `yaml:"start"`
	End        time.Time `yaml:"end"`
	DurationMs int64     `yaml:"duration_ms"`
}

// Duration returns the elapsed time.
func (t TimingInfo) Duration() time.Duration {
	return time.Duration(t.DurationMs) * time.Millisecond
}

// Result contains what the run produced.
type Result struct {
	Frames      int    `yaml:"frames,omitempty"`
	Crushed     int    `yaml:"crushed,omitempty"`
	CrushFailed int    `yaml:"crush_failed,omitempty"`
	VideoCodec  string `yaml:"video_codec,omitempty"`
	AudioCodec  string `yaml:"audio_codec,omitempty"`
	TempDir     string `yaml:"temp_dir,omitempty"`
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithRun sets the run identifier and program name.
func (b *Builder) WithRun(id, program string) *Builder {
	b.summary.RunID = id
	b.summary.Program = program
	return b
}

// WithInputs sets input and output paths.
func (b *Builder) WithInputs(inputs Inputs) *Builder {
	b.summary.Inputs = inputs
	return b
}

// WithSettings sets run settings.
func (b *Builder) WithSettings(settings Settings) *Builder {
	b.summary.Settings = settings
	return b
}

// WithTiming sets start and end times.
func (b *Builder) WithTiming(start, end time.Time) *Builder {
	b.summary.Timing = TimingInfo{
		Start:      start,
		End:        end,
		DurationMs: end.Sub(start).Milliseconds(),
	}
	return b
}

// AddCommand appends an executed command line.
func (b *Builder) AddCommand(cmd string) *Builder {
	b.summary.Commands = append(b.summary.Commands, cmd)
	return b
}

// WithResult sets the run result.
func (b *Builder) WithResult(result Result) *Builder {
	b.summary.Result = result
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
