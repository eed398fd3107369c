// Package terminal queries the terminal the program writes to.
package terminal

import (
	"os"

	"golang.org/x/term"
)

// Size is a terminal size in character cells.
type Size struct {
	Width  int
	Height int
}

// Default is used when no terminal is attached.
var Default = Size{Width: 80, Height: 24}

// Query returns the size of the terminal open on fd.
// Falls back to Default if fd is not a terminal.
func Query(fd int) Size {
	width, height, err := term.GetSize(fd)
	if err != nil || width <= 0 || height <= 0 {
		return Default
	}
	return Size{Width: width, Height: height}
}

// Stdout returns the size of the terminal attached to standard output.
func Stdout() Size {
	return Query(int(os.Stdout.Fd()))
}

// IsStdoutTerminal reports whether standard output is an interactive terminal.
func IsStdoutTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Fits reports whether a block of cols x rows cells fits on screen.
func (s Size) Fits(cols, rows int) bool {
	return cols <= s.Width && rows <= s.Height
}
