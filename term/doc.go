// Package term owns the terminal input handle quill prompts read from.
//
// # Overview
//
// A Reader exposes the two input disciplines prompts need: ReadLine for
// cooked-mode text entry and ReadKey for single keystrokes. ReadKey switches
// the terminal into raw mode around each read and restores it afterwards,
// so line-mode and key-mode prompts can interleave freely.
//
// # The stdin singleton
//
// Interactive tools share one process-wide handle on standard input.
// Stdin() creates it lazily; Release() tears it down and is safe to call
// from a signal handler or more than once. Tests that need a clean slate
// call ResetStdin between cases.
//
// # Non-interactive streams
//
// When standard input is a pipe or file, ReadLine reads to the next line
// ending (or end of input) without error, and ReadKey synthesizes a key
// event from the first character of the next line. Prompts degrade to
// line-oriented behavior instead of hanging.
package term
