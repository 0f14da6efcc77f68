package todo

import (
	"errors"
	"fmt"
)

// ErrEmptyArgument is returned when a command that needs arguments gets none.
var ErrEmptyArgument = errors.New("at least one argument is required")

// OutOfRangeError reports a position outside [1, Len].
// Arg holds the argument as typed when it does not fit in an int; Len is
// then -1 because no list has been consulted.
type OutOfRangeError struct {
	Position int
	Len      int
	Arg      string
}

func (e *OutOfRangeError) Error() string {
	if e.Arg != "" {
		return fmt.Sprintf("position %s is out of range", e.Arg)
	}
	if e.Len == 0 {
		return fmt.Sprintf("position %d is out of range: the list is empty", e.Position)
	}
	return fmt.Sprintf("position %d is out of range (1-%d)", e.Position, e.Len)
}

// InvalidSelectorError reports an argument that is neither a position nor a
// keyword the command accepts.
type InvalidSelectorError struct {
	Arg    string
	Reason string
}

func (e *InvalidSelectorError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("invalid selector %q", e.Arg)
	}
	return fmt.Sprintf("invalid selector %q: %s", e.Arg, e.Reason)
}

// IOError reports a data file that could not be read, parsed, validated, or
// written.
type IOError struct {
	Op   string // read, parse, validate, write
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *IOError) Unwrap() error {
	return e.Err
}
