package prompt

import (
	"fmt"

	"github.com/simonhull/firebird-suite/quill/ansi"
	"github.com/simonhull/firebird-suite/quill/key"
	"github.com/simonhull/firebird-suite/quill/term"
)

// toggleState is replaced wholesale on every transition.
type toggleState struct {
	on bool
}

// Toggle asks the operator to flip between two labels with the left/right
// arrows (h/l and space also work) and confirm with Enter. It returns true
// when onLabel is active.
//
// Without a terminal, Toggle degrades to a yes/no line prompt.
func Toggle(r *term.Reader, message, offLabel, onLabel string, initial bool) (bool, error) {
	w := r.Out()
	prevLines := 0

	render := func(state any, first bool) {
		st := state.(*toggleState)
		if first {
			ansi.HideCursor(w)
		} else {
			ansi.ClearLines(w, prevLines)
		}

		off, on := offLabel, onLabel
		if st.on {
			on = styleSelected("● " + on)
			off = styleHint("○ " + off)
		} else {
			off = styleSelected("● " + off)
			on = styleHint("○ " + on)
		}

		fmt.Fprintf(w, "%s%s %s / %s\n", stylePrefix(DefaultPrefix), styleMessage(message), off, on)
		prevLines = 1
	}

	handle := func(ev key.Event, state any) (Step[bool], error) {
		st := state.(*toggleState)

		switch {
		case ev.IsEscape() || ev.IsInterrupt():
			ansi.ShowCursor(w)
			return Step[bool]{}, ErrCancelled

		case ev.IsReturn():
			return Done(st.on), nil

		case ev.Name == "left" || ev.Name == "h":
			return Continue[bool](&toggleState{on: false}), nil

		case ev.Name == "right" || ev.Name == "l":
			return Continue[bool](&toggleState{on: true}), nil

		case ev.IsSpace() || ev.IsTab():
			return Continue[bool](&toggleState{on: !st.on}), nil
		}

		return Continue[bool](st), nil
	}

	ks := &KeySchema[bool]{
		Message:   message,
		Init:      func() any { return &toggleState{on: initial} },
		Render:    render,
		HandleKey: handle,
		Cleanup:   func() { ansi.ShowCursor(w) },
		Fallback: func() (bool, error) {
			return Confirm(r, fmt.Sprintf("%s (%s?)", message, onLabel), initial)
		},
	}

	return Run(r, Schema[bool]{Key: ks})
}
