package output

import (
	"os"

	"golang.org/x/term"
)

// IsTTY reports whether stdout is a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// IsStdinTTY reports whether stdin is a terminal, i.e. prompts can be answered.
func IsStdinTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
