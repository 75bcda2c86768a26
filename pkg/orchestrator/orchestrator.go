// Package orchestrator sequences the stages of the two frame tools.
package orchestrator

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/user/dreamframes/pkg/adapters/mp4inspect"
	"github.com/user/dreamframes/pkg/ports"
)

// TimeLayout formats the START TIME and END TIME report lines.
const TimeLayout = "2006-01-02 15:04:05.000000"

var (
	// ErrSourceNotFound is returned when the source video is not a regular file.
	ErrSourceNotFound = errors.New("source file not found")
	// ErrInputsNotFound is returned when the image directory or the source
	// video of a reassembly is missing.
	ErrInputsNotFound = errors.New("imagedir or source file not found")
	// ErrNoFrames is returned when the image directory holds no numbered frames.
	ErrNoFrames = errors.New("no frames found")
)

// InputError reports a missing or unusable input path.
type InputError struct {
	Err  error
	Path string
}

func (e *InputError) Error() string {
	return e.Err.Error() + ": " + e.Path
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// MissingToolError reports an external executable that could not be found.
type MissingToolError struct {
	Tool string
	Err  error
}

func (e *MissingToolError) Error() string {
	return fmt.Sprintf("%q not found: %v", e.Tool, e.Err)
}

func (e *MissingToolError) Unwrap() error {
	return e.Err
}

// Deps holds the collaborators shared by both orchestrators.
type Deps struct {
	FS       ports.FileSystem
	Runner   ports.CommandRunner
	Locator  ports.ToolLocator
	Prompter ports.Prompter
	Progress ports.ProgressFactory
	Logger   ports.Logger

	// Now defaults to time.Now.
	Now func() time.Time
	// NewID defaults to a random UUID.
	NewID func() string
	// Inspect defaults to mp4inspect.InspectFile.
	Inspect func(path string) (mp4inspect.Report, error)
}

func (d Deps) withDefaults() Deps {
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.NewID == nil {
		d.NewID = uuid.NewString
	}
	if d.Inspect == nil {
		d.Inspect = mp4inspect.InspectFile
	}
	return d
}

func find(locator ports.ToolLocator, tool string) (string, error) {
	path, err := locator.Find(tool)
	if err != nil {
		return "", &MissingToolError{Tool: tool, Err: err}
	}
	return path, nil
}

// Timing holds the wall-clock bounds of a run.
type Timing struct {
	Start time.Time
	End   time.Time
}

// Took returns the elapsed time.
func (t Timing) Took() time.Duration {
	return t.End.Sub(t.Start)
}

func reportStart(logger ports.Logger, t time.Time) {
	logger.Info(" START TIME: %s", t.Format(TimeLayout))
}

func reportEnd(logger ports.Logger, timing Timing) {
	logger.Info(" END TIME: %s", timing.End.Format(TimeLayout))
	logger.Info(" TOOK %s", timing.Took())
}

// DefaultOutputName derives deepdream-<basename>-<unix>.<ext> from source.
// A source without an extension yields an .mp4 output.
func DefaultOutputName(source string, now time.Time) string {
	base := filepath.Base(source)
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)
	if ext == "" || name == "" {
		name = base
		ext = ".mp4"
	}
	return "deepdream-" + name + "-" + strconv.FormatInt(now.Unix(), 10) + ext
}
