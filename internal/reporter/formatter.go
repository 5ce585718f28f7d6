package reporter

import (
	"strings"

	"golang.org/x/term"
)

const SEPARATOR_CHAR = "-"

// Returns the width of the terminal. If it cannot be determined, it
// returns a default value of 80.
func termWidth() int {
	width, _, err := term.GetSize(0)
	if err != nil {
		return 80
	}
	return width
}

// Returns a separator line sized to the terminal.
func separator() string {
	return strings.Repeat(SEPARATOR_CHAR, termWidth())
}
