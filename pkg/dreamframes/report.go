package dreamframes

import (
	"context"
	"errors"

	"github.com/user/dreamframes/pkg/encoder"
	"github.com/user/dreamframes/pkg/frameseq"
	"github.com/user/dreamframes/pkg/orchestrator"
	"github.com/user/dreamframes/pkg/ports"
	"github.com/user/dreamframes/pkg/stages/extract"
	"github.com/user/dreamframes/pkg/stages/outdir"
)

// Failure is the operator-facing description of a failed run.
type Failure struct {
	// Message is a message key, translated by the logger.
	Message string
	Args    []interface{}
	// Subject, when set, is printed on its own line before Message.
	Subject string
	// ShowUsage asks the caller to print the program's help.
	ShowUsage bool
}

// Describe maps a run error to the message shown before exiting.
func Describe(err error) Failure {
	var input *orchestrator.InputError
	var missing *orchestrator.MissingToolError

	switch {
	case errors.As(err, &input) && errors.Is(err, orchestrator.ErrSourceNotFound):
		return Failure{Message: "ERROR! File not found", Subject: input.Path, ShowUsage: true}
	case errors.As(err, &input) && errors.Is(err, orchestrator.ErrInputsNotFound):
		return Failure{Message: "ERROR! imagedir or source file not found", Subject: input.Path, ShowUsage: true}
	case errors.As(err, &missing):
		return Failure{Message: "ERROR! \"%s\" not found. Please make sure it's in your $PATH", Args: []interface{}{missing.Tool}}
	case errors.Is(err, extract.ErrEncoderDisabled):
		return Failure{Message: "Support for mplayer is currently disabled, use ffmpeg instead"}
	case errors.Is(err, outdir.ErrOverwriteDeclined):
		return Failure{Message: "Directory exists, exiting..."}
	case errors.Is(err, encoder.ErrUnknown), errors.Is(err, frameseq.ErrUnknownImageType):
		return Failure{Message: "ERROR! %v", Args: []interface{}{err}, ShowUsage: true}
	case errors.Is(err, context.Canceled):
		return Failure{Message: "Interrupted, shutting down..."}
	default:
		return Failure{Message: "ERROR! %v", Args: []interface{}{err}}
	}
}

// Report logs f.
func (f Failure) Report(log ports.Logger) {
	if f.Subject != "" {
		log.Error("%s", f.Subject)
	}
	log.Error(f.Message, f.Args...)
}
