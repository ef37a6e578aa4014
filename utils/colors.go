package utils

import (
	"os"

	"golang.org/x/term"
)

// Terminal color codes. They are empty when stderr is not a terminal, so
// diagnostics stay plain text in logs and pipes.
var (
	SuccessColor = "\x1b[92m"
	ErrorColor   = "\x1b[31m"
	DefaultColor = "\x1b[0m"
)

func init() {
	if !IsTerminal(os.Stderr) {
		DisableColors()
	}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// DisableColors turns every color code into an empty string.
func DisableColors() {
	SuccessColor, ErrorColor, DefaultColor = "", "", ""
}
