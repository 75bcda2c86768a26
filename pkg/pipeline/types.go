package pipeline

import (
	"github.com/user/dreamframes/pkg/encoder"
	"github.com/user/dreamframes/pkg/frameseq"
	"github.com/user/dreamframes/pkg/ports"
)

// =============================================================================
// Output Directory Stage Types
// =============================================================================

// OutdirInput asks for a fresh frame directory.
type OutdirInput struct {
	Path string // absolute path of the directory to (re)create
}

// OutdirResult describes the prepared directory.
type OutdirResult struct {
	Path     string
	Replaced bool // a previous directory was deleted
}

// =============================================================================
// Extract Stage Types
// =============================================================================

// ExtractInput contains parameters for frame extraction.
type ExtractInput struct {
	Encoder   encoder.Kind
	ToolPath  string // resolved executable of the encoder backend
	Source    string
	OutDir    string
	ImageType frameseq.ImageType
}

// ExtractResult describes the extraction run.
type ExtractResult struct {
	Command ports.Command
	Pattern string
}

// =============================================================================
// Crush Stage Types
// =============================================================================

// CrushInput contains parameters for PNG recompression.
type CrushInput struct {
	Dir      string
	ToolPath string
	Method   int
}

// CrushResult counts recompressed files.
type CrushResult struct {
	Processed int
	Failed    int
}

// =============================================================================
// Probe Stage Types
// =============================================================================

// ProbeInput contains parameters for reading source metadata.
type ProbeInput struct {
	Encoder  encoder.Kind
	ToolPath string // ffprobe or mplayer
	Source   string
}

// ProbeResult carries the metadata needed to re-encode at the source rate.
type ProbeResult struct {
	FrameRate   string // verbatim as printed by the probe tool
	BitrateKbps int    // only reported by mplayer
}

// =============================================================================
// Assemble Stage Types
// =============================================================================

// AssembleInput contains parameters for rebuilding the video.
type AssembleInput struct {
	Encoder     encoder.Kind
	ToolPath    string // ffmpeg or mencoder
	ImageDir    string
	ImageType   frameseq.ImageType
	Source      string
	Output      string
	Codec       string // ffmpeg only
	FrameRate   string
	BitrateKbps int    // mencoder only
	WorkDir     string // receives the intermediate files
}

// Step is one external invocation of a reassembly plan.
type Step struct {
	Label   string
	Command ports.Command
}

// AssembleResult lists what was executed.
type AssembleResult struct {
	Steps        []Step
	Intermediate []string // temporary files written to WorkDir
}
