package ui

import (
	"io"

	"golang.org/x/term"
)

type fder interface {
	Fd() uintptr
}

// IsTTY returns true if v is a file attached to a terminal.
func IsTTY(v any) bool {
	f, ok := v.(fder)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// IsInteractive reports whether both ends of a prompt are terminals.
func IsInteractive(in io.Reader, out io.Writer) bool {
	return IsTTY(in) && IsTTY(out)
}

// TerminalWidth returns the width of the terminal behind w, or fallback.
func TerminalWidth(w io.Writer, fallback int) int {
	f, ok := w.(fder)
	if !ok {
		return fallback
	}
	if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
		return width
	}
	return fallback
}
