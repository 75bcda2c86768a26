// Package progressbar reports per-item progress on the terminal.
package progressbar

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"github.com/user/dreamframes/pkg/ports"
)

// Factory creates terminal progress bars.
type Factory struct {
	out     io.Writer
	enabled bool
}

// New creates a Factory drawing on out. Bars are only drawn when out is a
// terminal; otherwise progress is silently dropped.
func New(out io.Writer) *Factory {
	enabled := false
	if f, ok := out.(*os.File); ok {
		enabled = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &Factory{out: out, enabled: enabled}
}

// New creates a progress tracker for total items.
func (f *Factory) New(total int, description string) ports.Progress {
	if !f.enabled {
		return nop{}
	}
	return &bar{
		pb: progressbar.NewOptions(total,
			progressbar.OptionSetWriter(f.out),
			progressbar.OptionSetDescription(description),
			progressbar.OptionShowCount(),
			progressbar.OptionSetWidth(40),
			progressbar.OptionSetRenderBlankState(true),
			progressbar.OptionOnCompletion(func() {
				io.WriteString(f.out, "\n")
			}),
		),
	}
}

type bar struct {
	pb *progressbar.ProgressBar
}

func (b *bar) Add(n int) {
	_ = b.pb.Add(n)
}

func (b *bar) Finish() {
	_ = b.pb.Finish()
}

type nop struct{}

func (nop) Add(int) {}
func (nop) Finish() {}

var _ ports.ProgressFactory = (*Factory)(nil)
