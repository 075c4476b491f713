// Package prompt collects, validates, and returns typed values from an
// operator at a terminal.
//
// # Overview
//
// All tools in the Firebird Suite (Firebird, Talon, Hornbill, Plume, etc.)
// gather interactive input through this package. Two input disciplines sit
// behind one contract: line-mode prompts read a full line and parse it,
// key-mode prompts read single keystrokes and maintain an evolving menu
// view. Both run through the same interpreter, Run.
//
// # Usage
//
//	name, err := prompt.Text(term.Stdin(), "Project name", &prompt.TextOptions{
//		Default: prompt.String("myapp"),
//	})
//
//	db, err := prompt.Select(term.Stdin(), "Database", []prompt.Option[string]{
//		{Label: "PostgreSQL", Value: "postgres"},
//		{Label: "SQLite", Value: "sqlite"},
//	}, nil)
//
// # Cancellation
//
// Escape or Ctrl+C inside any prompt surfaces as ErrCancelled, a typed
// sentinel callers can match with errors.Is to exit quietly. Prompts never
// terminate the process themselves.
//
// # Non-Interactive Mode
//
// Line-mode prompts read from whatever stream is attached. Key-mode prompts
// fall back to a numbered-list (or plain text) substitute when no terminal
// is present, or fail with ErrNoTerminal when no fallback makes sense.
package prompt
