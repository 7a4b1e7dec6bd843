package command

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyLine is returned for a blank input line.
	ErrEmptyLine = errors.New("empty line")

	// ErrUnknownCommand is returned when the first field is not a known verb.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrMalformed is the base error for arguments that do not fit a known verb.
	ErrMalformed = errors.New("malformed command")

	// ErrUnknownFormat is returned for an unsupported output format.
	ErrUnknownFormat = errors.New("unknown output format")
)

// ParseError describes why a line could not be parsed.
type ParseError struct {
	Line   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed command %q: %s", e.Line, e.Reason)
}

// Unwrap allows errors.Is(err, ErrMalformed).
func (e *ParseError) Unwrap() error {
	return ErrMalformed
}

func malformed(line, format string, args ...any) error {
	return &ParseError{Line: line, Reason: fmt.Sprintf(format, args...)}
}
