package prompt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/simonhull/firebird-suite/quill/output"
	"github.com/simonhull/firebird-suite/quill/term"
)

// DefaultRetries is the attempt limit line-mode prompts use when their
// schema leaves Retries at zero.
const DefaultRetries = 10

// DefaultPrefix is printed before a line-mode message when the schema
// leaves Prefix empty.
const DefaultPrefix = "? "

// Run is the single interpreter for both schema kinds. It drives the
// reader until the schema produces a value, the operator cancels, or the
// retry limit is exhausted.
func Run[T any](r *term.Reader, s Schema[T]) (T, error) {
	var zero T

	switch {
	case s.Line != nil && s.Key == nil:
		return runLine(r, s.Line)
	case s.Key != nil && s.Line == nil:
		return runKey(r, s.Key)
	default:
		return zero, errors.New("schema must populate exactly one variant")
	}
}

func runLine[T any](r *term.Reader, ls *LineSchema[T]) (T, error) {
	var zero T

	if ls.Parse == nil {
		return zero, errors.New("line schema requires a parse function")
	}

	retries := ls.Retries
	if retries <= 0 {
		retries = DefaultRetries
	}

	for attempt := 0; attempt < retries; attempt++ {
		printMessage(r, ls)

		line, err := r.ReadLine()
		if err != nil {
			return zero, err
		}

		trimmed := strings.TrimSpace(line)
		empty := trimmed == ""

		// An empty answer with a default short-circuits parse and
		// validation entirely.
		if empty && ls.Default != nil {
			return *ls.Default, nil
		}

		value, err := ls.Parse(trimmed, empty)
		if err != nil {
			fmt.Fprintln(r.Out(), output.ErrorMark(err.Error()))
			continue
		}

		if err := runValidators(value, ls.Validators); err != nil {
			fmt.Fprintln(r.Out(), output.ErrorMark(err.Error()))
			continue
		}

		return value, nil
	}

	return zero, &RetriesExhaustedError{Attempts: retries}
}

func printMessage[T any](r *term.Reader, ls *LineSchema[T]) {
	prefix := ls.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}

	msg := stylePrefix(prefix) + styleMessage(ls.Message)
	if ls.Hint != nil {
		if hint := ls.Hint(); hint != "" {
			msg += " " + styleHint(hint)
		}
	}
	fmt.Fprint(r.Out(), msg+" ")
}

func runKey[T any](r *term.Reader, ks *KeySchema[T]) (T, error) {
	var zero T

	if !r.IsInteractive() {
		if ks.Fallback != nil {
			return ks.Fallback()
		}
		return zero, ErrNoTerminal
	}

	state := ks.Init()

	// Cleanup always runs, even when a handler fails, so cursor
	// visibility and terminal mode are restored on every exit path.
	if ks.Cleanup != nil {
		defer ks.Cleanup()
	}

	ks.Render(state, true)

	for {
		ev, err := r.ReadKey()
		if err != nil {
			return zero, err
		}

		step, err := ks.HandleKey(ev, state)
		if err != nil {
			return zero, err
		}

		if step.done {
			return step.value, nil
		}

		state = step.state
		ks.Render(state, false)
	}
}
