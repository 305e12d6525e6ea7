// Copyright (c) 2025 Reactivities
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package terminal provides prompt and line-clearing helpers for the CLI.
package terminal

import (
	"fmt"
	"io"
	"math"
	"os"

	"golang.org/x/term"
)

// Width returns the width of stdout, or 80 when it is not a terminal.
func Width() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return 80
}

// linesFor returns how many rows textLength characters occupy at width,
// plus the row the cursor sits on after Enter.
func linesFor(textLength, width int) int {
	if width <= 0 {
		width = 80
	}
	total := int(math.Ceil(float64(textLength) / float64(width)))
	if total < 1 {
		total = 1
	}
	return total + 1
}

// ClearPreviousLines erases a prompt and the input typed after it, so pasted
// codes do not stay on screen.
func ClearPreviousLines(w io.Writer, textLength int) {
	n := linesFor(textLength, Width())
	for i := 0; i < n; i++ {
		fmt.Fprint(w, "\r\x1b[2K") // start of line, clear it
		if i < n-1 {
			fmt.Fprint(w, "\x1b[1A") // up one line
		}
	}
}
