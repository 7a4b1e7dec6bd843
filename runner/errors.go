package runner

import (
	"errors"
	"fmt"
)

var (
	// ErrBadLine is the base error for a batch job aborted by a malformed line.
	ErrBadLine = errors.New("bad input line")

	// ErrNoInput is returned when none of a job's input blobs exist.
	ErrNoInput = errors.New("no input for job")
)

// LineError reports the line that aborted a batch job.
type LineError struct {
	Job  string
	Line int // 1-based, counting the header line
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("job %s: line %d %q: %v", e.Job, e.Line, e.Text, e.Err)
}

// Unwrap exposes both ErrBadLine and the parse error.
func (e *LineError) Unwrap() []error {
	return []error{ErrBadLine, e.Err}
}
