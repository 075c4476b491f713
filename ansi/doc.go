// Package ansi provides the small set of VT100 escape helpers quill prompts
// repaint with.
//
// # Overview
//
// Key-mode prompts redraw themselves by moving the cursor up over the lines
// they drew last time, clearing each one, and printing the new frame. The
// helpers here are stateless writers; each prompt tracks its own drawn-line
// count and passes it back in on the next repaint.
//
// # Usage
//
//	ansi.HideCursor(w)
//	ansi.CursorUp(w, 3)
//	ansi.ClearLine(w)
//	ansi.ShowCursor(w)
//
// Terminals that ignore an escape degrade display only, never correctness.
package ansi
