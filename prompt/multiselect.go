package prompt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/simonhull/firebird-suite/quill/ansi"
	"github.com/simonhull/firebird-suite/quill/key"
	"github.com/simonhull/firebird-suite/quill/term"
)

// MultiSelectOptions configures a MultiSelect prompt. A nil
// *MultiSelectOptions means defaults.
type MultiSelectOptions struct {
	// Min is the smallest number of choices Enter accepts. Zero allows an
	// empty result.
	Min int

	// Max caps how many options can be toggled on at once. Zero means
	// unlimited.
	Max int

	// MaxVisible caps how many options are drawn at once. Zero means
	// DefaultMaxVisible.
	MaxVisible int
}

// multiSelectState is replaced wholesale on every transition.
type multiSelectState struct {
	cursor int
	window int
	chosen map[int]bool
	notice string // validation message shown under the list
}

// MultiSelect asks the operator to toggle any number of options with the
// space bar and confirm with Enter. Enter is refused until at least Min
// options are chosen; toggling past Max is ignored.
//
// Without a terminal, MultiSelect degrades to a numbered list read as a
// comma-separated set of indices in line mode.
func MultiSelect[T any](r *term.Reader, message string, options []Option[T], opts *MultiSelectOptions) ([]T, error) {
	if len(options) == 0 {
		return nil, errors.New("multiselect requires at least one option")
	}
	if opts == nil {
		opts = &MultiSelectOptions{}
	}

	maxVisible := opts.MaxVisible
	if maxVisible <= 0 {
		maxVisible = DefaultMaxVisible
	}
	if maxVisible > len(options) {
		maxVisible = len(options)
	}

	w := r.Out()
	prevLines := 0

	render := func(state any, first bool) {
		st := state.(*multiSelectState)
		if first {
			ansi.HideCursor(w)
		} else {
			ansi.ClearLines(w, prevLines)
		}

		lines := 0
		fmt.Fprintf(w, "%s%s %s\n", stylePrefix(DefaultPrefix), styleMessage(message),
			styleHint("(space to toggle, enter to confirm)"))
		lines++

		end := st.window + maxVisible
		if end > len(options) {
			end = len(options)
		}
		for i := st.window; i < end; i++ {
			fmt.Fprintln(w, renderCheckboxLine(options[i], i == st.cursor, st.chosen[i]))
			lines++
		}
		if remaining := len(options) - end; remaining > 0 {
			fmt.Fprintln(w, styleHint(fmt.Sprintf("  +%d more", remaining)))
			lines++
		}
		if st.notice != "" {
			fmt.Fprintln(w, styleHint(st.notice))
			lines++
		}

		prevLines = lines
	}

	handle := func(ev key.Event, state any) (Step[[]T], error) {
		st := state.(*multiSelectState)

		switch {
		case ev.IsEscape() || ev.IsInterrupt():
			ansi.ShowCursor(w)
			return Step[[]T]{}, ErrCancelled

		case ev.IsReturn():
			if len(st.chosen) < opts.Min {
				return Continue[[]T](withNotice(st, fmt.Sprintf("choose at least %d", opts.Min))), nil
			}
			var values []T
			for i := range options {
				if st.chosen[i] {
					values = append(values, options[i].Value)
				}
			}
			return Done(values), nil

		case ev.IsSpace():
			return Continue[[]T](toggleChoice(st, opts.Max)), nil

		case ev.Name == "up" || ev.Name == "k":
			return Continue[[]T](moveMultiCursor(st, -1, len(options), maxVisible)), nil

		case ev.Name == "down" || ev.Name == "j":
			return Continue[[]T](moveMultiCursor(st, +1, len(options), maxVisible)), nil
		}

		return Continue[[]T](st), nil
	}

	ks := &KeySchema[[]T]{
		Message: message,
		Init: func() any {
			return &multiSelectState{chosen: map[int]bool{}}
		},
		Render:    render,
		HandleKey: handle,
		Cleanup:   func() { ansi.ShowCursor(w) },
		Fallback:  func() ([]T, error) { return multiSelectFallback(r, message, options, opts) },
	}

	return Run(r, Schema[[]T]{Key: ks})
}

func renderCheckboxLine[T any](opt Option[T], focused, checked bool) string {
	marker := "  "
	if focused {
		marker = styleCursor("❯ ")
	}

	box := "[ ] "
	if checked {
		box = styleSelected("[x] ")
	}

	label := opt.Label
	if focused {
		label = styleSelected(label)
	}

	line := marker + box + label
	if opt.Hint != "" {
		line += " " + styleHint("("+opt.Hint+")")
	}
	return line
}

// toggleChoice flips membership under the cursor, respecting the cap, and
// returns a fresh state.
func toggleChoice(st *multiSelectState, max int) *multiSelectState {
	chosen := make(map[int]bool, len(st.chosen))
	for i := range st.chosen {
		chosen[i] = true
	}

	if chosen[st.cursor] {
		delete(chosen, st.cursor)
	} else if max <= 0 || len(chosen) < max {
		chosen[st.cursor] = true
	}

	return &multiSelectState{cursor: st.cursor, window: st.window, chosen: chosen}
}

func moveMultiCursor(st *multiSelectState, delta, total, maxVisible int) *multiSelectState {
	next := &multiSelectState{
		cursor: (st.cursor + delta + total) % total,
		window: st.window,
		chosen: st.chosen,
	}
	if next.cursor < next.window {
		next.window = next.cursor
	}
	if next.cursor >= next.window+maxVisible {
		next.window = next.cursor - maxVisible + 1
	}
	return next
}

func withNotice(st *multiSelectState, notice string) *multiSelectState {
	return &multiSelectState{cursor: st.cursor, window: st.window, chosen: st.chosen, notice: notice}
}

// multiSelectFallback renders a numbered list and reads comma-separated
// indices in line mode.
func multiSelectFallback[T any](r *term.Reader, message string, options []Option[T], opts *MultiSelectOptions) ([]T, error) {
	w := r.Out()

	fmt.Fprintf(w, "%s%s\n", stylePrefix(DefaultPrefix), styleMessage(message))
	for i, opt := range options {
		fmt.Fprintf(w, "  %d) %s\n", i+1, opt.Label)
	}

	ls := &LineSchema[[]T]{
		Message: fmt.Sprintf("Choose 1-%d (comma-separated)", len(options)),
		Parse: func(trimmed string, empty bool) ([]T, error) {
			var values []T
			seen := map[int]bool{}
			if !empty {
				for _, part := range strings.Split(trimmed, ",") {
					part = strings.TrimSpace(part)
					if part == "" {
						continue
					}
					idx, err := parseChoice(part, len(options))
					if err != nil {
						return nil, err
					}
					if seen[idx] {
						continue
					}
					seen[idx] = true
					values = append(values, options[idx].Value)
				}
			}
			if len(values) < opts.Min {
				return nil, fmt.Errorf("choose at least %d", opts.Min)
			}
			if opts.Max > 0 && len(values) > opts.Max {
				return nil, fmt.Errorf("choose at most %d", opts.Max)
			}
			return values, nil
		},
	}

	return Run(r, Schema[[]T]{Line: ls})
}
