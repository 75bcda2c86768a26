package ports

import "context"

// Prompter asks the operator yes/no questions.
type Prompter interface {
	// Confirm shows question and reports whether the answer was affirmative.
	// It returns ctx.Err() when ctx is done before an answer arrives.
	Confirm(ctx context.Context, question string) (bool, error)
}
