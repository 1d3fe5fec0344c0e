package output

import (
	"os"

	"golang.org/x/term"
)

// ColorEnabled reports whether colored output should be used: the user has
// not disabled it and stdout is a terminal.
func ColorEnabled(noColor bool) bool {
	if noColor {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
