package prompt

import (
	"errors"
	"fmt"
)

// ErrCancelled is returned when the operator aborts a prompt with Escape or
// Ctrl+C. Callers match it with errors.Is to exit quietly instead of
// printing a generic failure.
var ErrCancelled = errors.New("prompt cancelled")

// ErrNoTerminal is returned when a key-mode prompt runs without an
// interactive terminal and has no fallback.
var ErrNoTerminal = errors.New("prompt requires an interactive terminal")

// RetriesExhaustedError is returned when a line-mode prompt fails to obtain
// a valid value within its retry limit.
type RetriesExhaustedError struct {
	Attempts int
}

func (e *RetriesExhaustedError) Error() string {
	return fmt.Sprintf("no valid input after %d attempts", e.Attempts)
}
