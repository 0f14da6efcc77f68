// Package exitcode defines exit codes for the CLI.
package exitcode

import (
	"context"
	"errors"
	"io/fs"

	"github.com/BurntSushi/toml"

	"github.com/nibzard/todo-go/internal/todo"
)

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad position, missing argument,
	// unknown command or setting).
	UserError = 1

	// IOError indicates the data or settings file could not be read,
	// parsed or written.
	IOError = 2

	// Interrupted indicates the command was cancelled by a signal.
	Interrupted = 130
)

// For maps an error returned by a command to an exit code.
func For(err error) int {
	if err == nil {
		return Success
	}
	if errors.Is(err, context.Canceled) {
		return Interrupted
	}

	var ioErr *todo.IOError
	var pathErr *fs.PathError
	var parseErr toml.ParseError
	switch {
	case errors.As(err, &ioErr), errors.As(err, &pathErr), errors.As(err, &parseErr):
		return IOError
	}
	return UserError
}
