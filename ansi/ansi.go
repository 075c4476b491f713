package ansi

import (
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"
)

// ClearLine erases the current line and returns the cursor to column 1.
func ClearLine(w io.Writer) {
	fmt.Fprint(w, "\r\x1b[2K")
}

// CursorUp moves the cursor up n lines. Zero or negative n is a no-op.
func CursorUp(w io.Writer, n int) {
	if n <= 0 {
		return
	}
	fmt.Fprintf(w, "\x1b[%dA", n)
}

// CursorToColumn moves the cursor to the given 1-based column.
func CursorToColumn(w io.Writer, n int) {
	if n < 1 {
		n = 1
	}
	fmt.Fprintf(w, "\x1b[%dG", n)
}

// HideCursor makes the cursor invisible until ShowCursor is written.
func HideCursor(w io.Writer) {
	fmt.Fprint(w, "\x1b[?25l")
}

// ShowCursor restores cursor visibility.
func ShowCursor(w io.Writer) {
	fmt.Fprint(w, "\x1b[?25h")
}

// ClearLines clears the n lines above the cursor, leaving the cursor at the
// start of the topmost cleared line. Prompts call this with the number of
// newline-terminated lines they drew on the previous frame.
func ClearLines(w io.Writer, n int) {
	for i := 0; i < n; i++ {
		CursorUp(w, 1)
		ClearLine(w)
	}
}

// Truncate shortens s to fit within width terminal cells, appending "…"
// when it had to cut. Width is measured in display cells, not bytes, so
// wide runes count double.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
