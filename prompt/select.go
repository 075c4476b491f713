package prompt

import (
	"errors"
	"fmt"

	"github.com/simonhull/firebird-suite/quill/ansi"
	"github.com/simonhull/firebird-suite/quill/key"
	"github.com/simonhull/firebird-suite/quill/term"
)

// DefaultMaxVisible is the window size menu prompts use when their options
// leave MaxVisible at zero.
const DefaultMaxVisible = 8

// SelectOptions configures a Select prompt. A nil *SelectOptions means
// defaults.
type SelectOptions struct {
	// Initial is the starting cursor position.
	Initial int

	// MaxVisible caps how many options are drawn at once; longer lists
	// scroll. Zero means DefaultMaxVisible.
	MaxVisible int
}

// selectState is replaced wholesale on every transition.
type selectState struct {
	cursor int
	window int // index of the first visible option
}

// Select asks the operator to pick one option with the arrow keys (j/k also
// work). Up from the first option wraps to the last and vice versa. Enter
// confirms; Escape or Ctrl+C cancels with ErrCancelled.
//
// Without a terminal, Select degrades to a numbered list read in line mode.
func Select[T any](r *term.Reader, message string, options []Option[T], opts *SelectOptions) (T, error) {
	var zero T

	if len(options) == 0 {
		return zero, errors.New("select requires at least one option")
	}
	if opts == nil {
		opts = &SelectOptions{}
	}

	maxVisible := opts.MaxVisible
	if maxVisible <= 0 {
		maxVisible = DefaultMaxVisible
	}
	if maxVisible > len(options) {
		maxVisible = len(options)
	}

	initial := opts.Initial
	if initial < 0 || initial >= len(options) {
		initial = 0
	}

	w := r.Out()
	prevLines := 0

	render := func(state any, first bool) {
		st := state.(*selectState)
		if first {
			ansi.HideCursor(w)
		} else {
			ansi.ClearLines(w, prevLines)
		}

		lines := 0
		fmt.Fprintf(w, "%s%s %s\n", stylePrefix(DefaultPrefix), styleMessage(message),
			styleHint("(arrows to move, enter to choose)"))
		lines++

		end := st.window + maxVisible
		if end > len(options) {
			end = len(options)
		}
		for i := st.window; i < end; i++ {
			fmt.Fprintln(w, renderOptionLine(options[i], i == st.cursor))
			lines++
		}
		if remaining := len(options) - end; remaining > 0 {
			fmt.Fprintln(w, styleHint(fmt.Sprintf("  +%d more", remaining)))
			lines++
		}

		prevLines = lines
	}

	handle := func(ev key.Event, state any) (Step[T], error) {
		st := state.(*selectState)

		switch {
		case ev.IsEscape() || ev.IsInterrupt():
			ansi.ShowCursor(w)
			return Step[T]{}, ErrCancelled

		case ev.IsReturn():
			return Done(options[st.cursor].Value), nil

		case ev.Name == "up" || ev.Name == "k":
			return Continue[T](moveCursor(st, -1, len(options), maxVisible)), nil

		case ev.Name == "down" || ev.Name == "j":
			return Continue[T](moveCursor(st, +1, len(options), maxVisible)), nil
		}

		// Unrecognized keys are no-ops.
		return Continue[T](st), nil
	}

	ks := &KeySchema[T]{
		Message:   message,
		Init:      func() any { return clampWindow(&selectState{cursor: initial}, maxVisible) },
		Render:    render,
		HandleKey: handle,
		Cleanup:   func() { ansi.ShowCursor(w) },
		Fallback:  func() (T, error) { return selectFallback(r, message, options) },
	}

	return Run(r, Schema[T]{Key: ks})
}

// moveCursor returns a fresh state with the cursor moved delta positions,
// wrapping circularly, and the scroll window clamped around it.
func moveCursor(st *selectState, delta, total, maxVisible int) *selectState {
	next := &selectState{
		cursor: (st.cursor + delta + total) % total,
		window: st.window,
	}
	return clampWindow(next, maxVisible)
}

// clampWindow slides the window so the cursor is always visible.
func clampWindow(st *selectState, maxVisible int) *selectState {
	if st.cursor < st.window {
		st.window = st.cursor
	}
	if st.cursor >= st.window+maxVisible {
		st.window = st.cursor - maxVisible + 1
	}
	return st
}

// renderOptionLine draws one single-select menu row.
func renderOptionLine[T any](opt Option[T], focused bool) string {
	marker := "  "
	if focused {
		marker = styleCursor("❯ ")
	}

	label := opt.Label
	if focused {
		label = styleSelected(label)
	}

	line := marker + label
	if opt.Hint != "" {
		line += " " + styleHint("("+opt.Hint+")")
	}
	return line
}

// selectFallback renders a numbered list and reads the choice in line mode.
func selectFallback[T any](r *term.Reader, message string, options []Option[T]) (T, error) {
	w := r.Out()

	fmt.Fprintf(w, "%s%s\n", stylePrefix(DefaultPrefix), styleMessage(message))
	for i, opt := range options {
		fmt.Fprintf(w, "  %d) %s\n", i+1, opt.Label)
	}

	ls := &LineSchema[T]{
		Message: fmt.Sprintf("Choose 1-%d", len(options)),
		Parse: func(trimmed string, empty bool) (T, error) {
			var zero T
			idx, err := parseChoice(trimmed, len(options))
			if err != nil {
				return zero, err
			}
			return options[idx].Value, nil
		},
	}

	return Run(r, Schema[T]{Line: ls})
}

func parseChoice(trimmed string, n int) (int, error) {
	var idx int
	if _, err := fmt.Sscanf(trimmed, "%d", &idx); err != nil {
		return 0, fmt.Errorf("enter a number between 1 and %d", n)
	}
	if idx < 1 || idx > n {
		return 0, fmt.Errorf("enter a number between 1 and %d", n)
	}
	return idx - 1, nil
}
