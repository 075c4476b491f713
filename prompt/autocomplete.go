package prompt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/simonhull/firebird-suite/quill/ansi"
	"github.com/simonhull/firebird-suite/quill/key"
	"github.com/simonhull/firebird-suite/quill/term"
)

// AutocompleteOptions configures an Autocomplete prompt. A nil value means
// defaults.
type AutocompleteOptions[T any] struct {
	// Filter decides whether a candidate label matches the typed input.
	// Nil means SubsequenceMatch.
	Filter func(input, label string) bool

	// MaxVisible caps how many matches are drawn at once; the rest show as
	// a "+N more" line. Zero means DefaultMaxVisible.
	MaxVisible int

	// Custom, when set, converts raw typed text into a value when Enter is
	// pressed with no match highlighted. Nil disallows custom input.
	Custom func(raw string) (T, error)
}

// autoState is replaced wholesale on every transition.
type autoState struct {
	input   []rune
	matches []int // indices into the option list
	cursor  int
	notice  string
}

// SubsequenceMatch is the default autocomplete filter: every rune of input
// must appear in label in order, case-insensitively. Typing "ra" matches
// "React" (positions 0 and 3) but not "Vue".
func SubsequenceMatch(input, label string) bool {
	input = strings.ToLower(input)
	label = strings.ToLower(label)

	pos := 0
	for _, r := range input {
		idx := strings.IndexRune(label[pos:], r)
		if idx < 0 {
			return false
		}
		pos += idx + len(string(r))
	}
	return true
}

// Autocomplete asks the operator to narrow a candidate list by typing.
// Each keystroke recomputes the filtered list and resets the highlight to
// its top; Enter selects the highlighted option, or the raw typed text when
// custom input is allowed and nothing is highlighted.
//
// Without a terminal, Autocomplete degrades to a numbered list (or a plain
// text prompt when custom input is allowed).
func Autocomplete[T any](r *term.Reader, message string, options []Option[T], opts *AutocompleteOptions[T]) (T, error) {
	var zero T

	if len(options) == 0 && (opts == nil || opts.Custom == nil) {
		return zero, errors.New("autocomplete requires options or custom input")
	}
	if opts == nil {
		opts = &AutocompleteOptions[T]{}
	}

	filter := opts.Filter
	if filter == nil {
		filter = SubsequenceMatch
	}

	maxVisible := opts.MaxVisible
	if maxVisible <= 0 {
		maxVisible = DefaultMaxVisible
	}

	refilter := func(input []rune) []int {
		var matches []int
		for i, opt := range options {
			if filter(string(input), opt.Label) {
				matches = append(matches, i)
			}
		}
		return matches
	}

	w := r.Out()
	prevLines := 0

	render := func(state any, first bool) {
		st := state.(*autoState)
		if !first {
			ansi.ClearLines(w, prevLines)
		}

		lines := 0
		fmt.Fprintf(w, "%s%s %s\n", stylePrefix(DefaultPrefix), styleMessage(message), string(st.input))
		lines++

		visible := len(st.matches)
		if visible > maxVisible {
			visible = maxVisible
		}
		for row := 0; row < visible; row++ {
			i := st.matches[row]
			fmt.Fprintln(w, renderOptionLine(options[i], row == st.cursor))
			lines++
		}
		if remaining := len(st.matches) - visible; remaining > 0 {
			fmt.Fprintln(w, styleHint(fmt.Sprintf("  +%d more", remaining)))
			lines++
		}
		if len(st.matches) == 0 {
			hint := "no matches"
			if opts.Custom != nil {
				hint = "no matches (enter keeps your text)"
			}
			fmt.Fprintln(w, styleHint("  "+hint))
			lines++
		}
		if st.notice != "" {
			fmt.Fprintln(w, styleHint("  "+st.notice))
			lines++
		}

		prevLines = lines
	}

	handle := func(ev key.Event, state any) (Step[T], error) {
		st := state.(*autoState)

		switch {
		case ev.IsEscape() || ev.IsInterrupt():
			ansi.ShowCursor(w)
			return Step[T]{}, ErrCancelled

		case ev.IsReturn():
			if len(st.matches) > 0 {
				return Done(options[st.matches[st.cursor]].Value), nil
			}
			if opts.Custom != nil {
				value, err := opts.Custom(string(st.input))
				if err != nil {
					return Continue[T](&autoState{input: st.input, matches: st.matches, cursor: st.cursor, notice: err.Error()}), nil
				}
				return Done(value), nil
			}
			return Continue[T](&autoState{input: st.input, matches: st.matches, cursor: st.cursor, notice: "nothing matches; keep typing"}), nil

		case ev.Name == "up":
			if len(st.matches) == 0 {
				return Continue[T](st), nil
			}
			cursor := st.cursor - 1
			if cursor < 0 {
				cursor = minInt(len(st.matches), maxVisible) - 1
			}
			return Continue[T](&autoState{input: st.input, matches: st.matches, cursor: cursor}), nil

		case ev.Name == "down":
			if len(st.matches) == 0 {
				return Continue[T](st), nil
			}
			cursor := (st.cursor + 1) % minInt(len(st.matches), maxVisible)
			return Continue[T](&autoState{input: st.input, matches: st.matches, cursor: cursor}), nil

		case ev.IsBackspace():
			if len(st.input) == 0 {
				return Continue[T](st), nil
			}
			input := copyRunes(st.input[:len(st.input)-1])
			return Continue[T](&autoState{input: input, matches: refilter(input)}), nil

		case ev.IsSpace():
			input := append(copyRunes(st.input), ' ')
			return Continue[T](&autoState{input: input, matches: refilter(input)}), nil

		case ev.IsChar():
			input := append(copyRunes(st.input), ev.Rune())
			return Continue[T](&autoState{input: input, matches: refilter(input)}), nil
		}

		return Continue[T](st), nil
	}

	ks := &KeySchema[T]{
		Message: message,
		Init: func() any {
			return &autoState{matches: refilter(nil)}
		},
		Render:    render,
		HandleKey: handle,
		Cleanup:   func() { ansi.ShowCursor(w) },
		Fallback: func() (T, error) {
			if opts.Custom != nil {
				raw, err := Text(r, message, nil)
				if err != nil {
					return zero, err
				}
				return opts.Custom(raw)
			}
			return selectFallback(r, message, options)
		},
	}

	return Run(r, Schema[T]{Key: ks})
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
