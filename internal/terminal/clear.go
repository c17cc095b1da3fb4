// Package terminal provides small terminal utilities for the CLI prompts.
package terminal

import (
	"fmt"
	"math"
	"os"

	"golang.org/x/term"
)

// ClearPreviousLines clears previously printed prompt text from the
// terminal. It computes how many lines the text wrapped to at the
// current terminal width, then moves up and clears each one. Used to
// scrub credential prompts once they have been read.
//
// textLength is the total number of characters printed (prompt plus the
// user's input). One extra line is cleared to account for the newline
// the user's Enter produced.
func ClearPreviousLines(textLength int) {
	termWidth := 80 // fallback when not a terminal
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		termWidth = width
	}

	totalLines := int(math.Ceil(float64(textLength) / float64(termWidth)))
	if totalLines < 1 {
		totalLines = 1
	}
	linesToClear := totalLines + 1

	for i := 0; i < linesToClear; i++ {
		fmt.Print("\r\x1b[2K") // move to start, clear entire line
		if i < linesToClear-1 {
			fmt.Print("\x1b[1A") // move up one line
		}
	}
}
