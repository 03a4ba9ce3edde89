// internal/prompt/prompt.go
package prompt

import (
	"github.com/juju/errors"
)

// ErrCancelled is returned when the user backs out of a prompt. It is not a
// failure and should end the command quietly.
const ErrCancelled = errors.ConstError("cancelled by user")

// MaxAttempts bounds how many times an invalid answer is re-prompted before
// the validation error is returned.
const MaxAttempts = 3

type Question struct {
	Label       string
	Placeholder string
	// Default is used when the answer is empty.
	Default  string
	Validate func(string) error
}

type FileQuestion struct {
	Title string
	// Dir is searched for candidate files to offer.
	Dir        string
	Extensions []string
}

// Prompter collects answers from the user.
type Prompter interface {
	Ask(q Question) (string, error)
	PickFile(q FileQuestion) (string, error)
	Confirm(label string, def bool) (bool, error)
}
