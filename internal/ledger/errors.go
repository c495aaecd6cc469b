package ledger

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a load source does not exist.
	ErrNotFound = errors.New("ledger source not found")
	// ErrFormat marks a load source that does not follow the line grammar.
	ErrFormat = errors.New("malformed ledger line")
	// ErrIO marks a sink or source that could not be written or read.
	ErrIO = errors.New("ledger i/o failure")
	// ErrInvalidNotation is returned for notation outside the 1..6 character range.
	ErrInvalidNotation = errors.New("invalid notation")
)

// FormatError describes the first line of a load source that failed to parse.
type FormatError struct {
	Line   int
	Text   string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Text)
}

func (e *FormatError) Unwrap() error { return ErrFormat }

// IOError wraps a failure to open, read or write a backing resource.
type IOError struct {
	Op   string
	Name string
	Err  error
}

func (e *IOError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Name, e.Err)
}

func (e *IOError) Unwrap() []error { return []error{ErrIO, e.Err} }
