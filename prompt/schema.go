package prompt

import "github.com/simonhull/firebird-suite/quill/key"

// Schema is the contract a concrete prompt hands to Run. Exactly one
// variant is populated for the prompt's lifetime; Run dispatches on which.
type Schema[T any] struct {
	Line *LineSchema[T]
	Key  *KeySchema[T]
}

// LineSchema describes a prompt that reads one full line and parses it.
type LineSchema[T any] struct {
	// Message is the question shown before the cursor.
	Message string

	// Default, when set, is returned for empty input without invoking
	// Parse or any validator.
	Default *T

	// Hint, when set, returns extra gray text appended to the message
	// (a rendered default, accepted formats, ...).
	Hint func() string

	// Parse converts trimmed input into a value. empty is true when the
	// trimmed input was the empty string.
	Parse func(trimmed string, empty bool) (T, error)

	// Validators run in order after a successful parse; the first failure
	// is shown and the attempt retried.
	Validators []Validator[T]

	// Retries bounds the number of attempts. Zero means the default of 10.
	Retries int

	// Prefix is printed before the message. Empty means the default "? ".
	Prefix string
}

// KeySchema describes a prompt driven by single keystrokes. The state
// payload is opaque to the runner and replaced wholesale on every
// transition; prompts keep their own typed state structs behind it.
type KeySchema[T any] struct {
	// Message is the question the prompt renders on its first line.
	Message string

	// Init constructs the initial state.
	Init func() any

	// Render draws the current state. first is true only for the initial
	// frame, before any key has been handled.
	Render func(state any, first bool)

	// HandleKey advances the prompt. It returns Continue with replacement
	// state, Done with the final value, or an error (ErrCancelled for an
	// operator abort) that propagates after Cleanup runs.
	HandleKey func(ev key.Event, state any) (Step[T], error)

	// Cleanup runs exactly once when the loop ends, however it ends.
	// Prompts restore cursor visibility here.
	Cleanup func()

	// Fallback produces a value without a terminal. Nil means the prompt
	// fails with ErrNoTerminal when not interactive.
	Fallback func() (T, error)
}

// Step is the result of one key transition: either a replacement state or
// a final value.
type Step[T any] struct {
	done  bool
	value T
	state any
}

// Continue returns a step that replaces the loop state.
func Continue[T any](state any) Step[T] {
	return Step[T]{state: state}
}

// Done returns a step that finishes the prompt with value.
func Done[T any](value T) Step[T] {
	return Step[T]{done: true, value: value}
}

// Option is one selectable entry for menu prompts.
type Option[T any] struct {
	// Label is the text shown to the operator.
	Label string

	// Value is returned when the option is chosen.
	Value T

	// Hint is optional gray text shown next to the label.
	Hint string
}

// String returns a pointer to s, a convenience for Default fields.
func String(s string) *string { return &s }

// Int returns a pointer to n, a convenience for Default fields.
func Int(n int) *int { return &n }

// Bool returns a pointer to b, a convenience for Default fields.
func Bool(b bool) *bool { return &b }
