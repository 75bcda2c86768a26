package summarizer

import (
	"fmt"
	"strings"
	"time"
)

// MarkdownFormatter renders a Summary as a Markdown document.
type MarkdownFormatter struct{}

// NewMarkdownFormatter creates a new MarkdownFormatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

const timeLayout = "2006-01-02 15:04:05.000000"

// Format implements Formatter.
func (f *MarkdownFormatter) Format(s *Summary) (string, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s Run Summary\n\n", s.Program)
	fmt.Fprintf(&b, "- Run ID: `%s`\n", s.RunID)
	fmt.Fprintf(&b, "- Generated: %s\n\n", s.GeneratedAt.Format(time.RFC3339))

	b.WriteString("## Inputs\n\n")
	b.WriteString("| Item | Value |\n|---|---|\n")
	row(&b, "Source", s.Inputs.Source)
	row(&b, "Image directory", s.Inputs.ImageDir)
	row(&b, "Frame directory", s.Inputs.OutDir)
	row(&b, "Output", s.Inputs.Output)
	b.WriteString("\n")

	b.WriteString("## Settings\n\n")
	b.WriteString("| Item | Value |\n|---|---|\n")
	row(&b, "Encoder", s.Settings.Encoder)
	row(&b, "Image type", s.Settings.ImageType)
	row(&b, "Codec", s.Settings.Codec)
	row(&b, "Frame rate", s.Settings.FrameRate)
	if s.Settings.BitrateKbps > 0 {
		row(&b, "Bitrate", fmt.Sprintf("%d kbps", s.Settings.BitrateKbps))
	}
	if s.Settings.PngcrushMethod > 0 {
		row(&b, "pngcrush method", fmt.Sprint(s.Settings.PngcrushMethod))
	}
	b.WriteString("\n")

	b.WriteString("## Timing\n\n")
	b.WriteString("| Item | Value |\n|---|---|\n")
	row(&b, "Start", s.Timing.Start.Format(timeLayout))
	row(&b, "End", s.Timing.End.Format(timeLayout))
	row(&b, "Took", s.Timing.Duration().String())
	b.WriteString("\n")

	if len(s.Commands) > 0 {
		b.WriteString("## Commands\n\n")
		for i, cmd := range s.Commands {
			fmt.Fprintf(&b, "%d. `%s`\n", i+1, cmd)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Result\n\n")
	b.WriteString("| Item | Value |\n|---|---|\n")
	if s.Result.Frames > 0 {
		row(&b, "Frames", fmt.Sprint(s.Result.Frames))
	}
	if s.Result.Crushed > 0 || s.Result.CrushFailed > 0 {
		row(&b, "pngcrush", fmt.Sprintf("%d ok, %d failed", s.Result.Crushed, s.Result.CrushFailed))
	}
	row(&b, "Video codec", s.Result.VideoCodec)
	row(&b, "Audio codec", s.Result.AudioCodec)
	row(&b, "Kept intermediates", s.Result.TempDir)

	return b.String(), nil
}

// row writes a table row, skipping empty values.
func row(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "| %s | %s |\n", label, value)
}
