// Purpose: Detect terminal state for rendering decisions.
// Exports: none.
// Role: I/O behavior toggles for color and wrap width.
// Invariants: Falls back to non-TTY and 80 columns on any error.
package probe

import (
	"os"

	"golang.org/x/term"
)

func stdoutIsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// terminalWidth returns the stdout width, or 80 if unavailable.
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}
