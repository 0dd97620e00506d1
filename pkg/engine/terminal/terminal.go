// Package terminal wraps the size query the TUI needs, with sane
// fallbacks for pipes and dumb terminals.
package terminal

import (
	"os"

	"golang.org/x/term"
)

// Fallback dimensions when stdout is not a terminal.
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Size returns the current terminal dimensions, or the defaults when
// they cannot be determined.
func Size() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// IsTerminal reports whether stdout is an interactive terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
