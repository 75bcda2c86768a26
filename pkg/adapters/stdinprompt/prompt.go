// Package stdinprompt asks yes/no questions on a terminal.
package stdinprompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/user/dreamframes/pkg/ports"
)

type answer struct {
	line string
	err  error
}

// Prompter reads answers line by line from an input stream.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer

	// pending carries the line of a read that outlived a cancelled Confirm.
	pending chan answer
}

// New creates a Prompter reading from in and writing questions to out.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Confirm writes question and reads one line. Only "y", "Y" and "yes" are
// affirmative; end of input counts as a refusal. The read is abandoned when
// ctx is done.
func (p *Prompter) Confirm(ctx context.Context, question string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if _, err := fmt.Fprint(p.out, question); err != nil {
		return false, err
	}

	if p.pending == nil {
		ch := make(chan answer, 1)
		go func() {
			line, err := p.in.ReadString('\n')
			ch <- answer{line: line, err: err}
		}()
		p.pending = ch
	}

	var a answer
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case a = <-p.pending:
		p.pending = nil
	}

	if a.err != nil && !errors.Is(a.err, io.EOF) {
		return false, a.err
	}
	switch strings.TrimRight(a.line, "\r\n") {
	case "y", "Y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// AssumeYes is a Prompter that confirms without asking.
type AssumeYes struct{}

// Confirm always returns true.
func (AssumeYes) Confirm(ctx context.Context, question string) (bool, error) {
	return true, nil
}

var (
	_ ports.Prompter = (*Prompter)(nil)
	_ ports.Prompter = AssumeYes{}
)
