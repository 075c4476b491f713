package prompt

import (
	"fmt"
	"strings"

	"github.com/simonhull/firebird-suite/quill/ansi"
	"github.com/simonhull/firebird-suite/quill/key"
	"github.com/simonhull/firebird-suite/quill/output"
	"github.com/simonhull/firebird-suite/quill/term"
)

// PasswordOptions configures a Password prompt. A nil *PasswordOptions
// means defaults.
type PasswordOptions struct {
	// Mask is the rune echoed per typed character. Zero means '•'.
	Mask rune

	Validators []Validator[string]
}

// passwordState is replaced wholesale on every transition.
type passwordState struct {
	buf    []rune
	notice string
}

// Password asks for a secret, echoing a mask character per keystroke.
// Enter submits once the validators accept the value; Escape or Ctrl+C
// cancels with ErrCancelled.
//
// Without a terminal, the secret is read as a plain line (a pipe does not
// echo, so nothing leaks).
func Password(r *term.Reader, message string, opts *PasswordOptions) (string, error) {
	if opts == nil {
		opts = &PasswordOptions{}
	}

	mask := opts.Mask
	if mask == 0 {
		mask = '•'
	}

	w := r.Out()
	prevLines := 0

	render := func(state any, first bool) {
		st := state.(*passwordState)
		if !first {
			ansi.ClearLines(w, prevLines)
		}

		lines := 1
		fmt.Fprintf(w, "%s%s %s", stylePrefix(DefaultPrefix), styleMessage(message),
			strings.Repeat(string(mask), len(st.buf)))
		if st.notice != "" {
			fmt.Fprintf(w, "\n%s", output.ErrorMark(st.notice))
			lines++
		}
		fmt.Fprintln(w)

		prevLines = lines
	}

	handle := func(ev key.Event, state any) (Step[string], error) {
		st := state.(*passwordState)

		switch {
		case ev.IsEscape() || ev.IsInterrupt():
			ansi.ShowCursor(w)
			return Step[string]{}, ErrCancelled

		case ev.IsReturn():
			secret := string(st.buf)
			if err := runValidators(secret, opts.Validators); err != nil {
				return Continue[string](&passwordState{buf: st.buf, notice: err.Error()}), nil
			}
			return Done(secret), nil

		case ev.IsBackspace():
			if len(st.buf) == 0 {
				return Continue[string](st), nil
			}
			return Continue[string](&passwordState{buf: st.buf[:len(st.buf)-1]}), nil

		case ev.IsSpace():
			return Continue[string](&passwordState{buf: append(copyRunes(st.buf), ' ')}), nil

		case ev.IsChar():
			return Continue[string](&passwordState{buf: append(copyRunes(st.buf), ev.Rune())}), nil
		}

		return Continue[string](st), nil
	}

	ks := &KeySchema[string]{
		Message:   message,
		Init:      func() any { return &passwordState{} },
		Render:    render,
		HandleKey: handle,
		Cleanup:   func() { ansi.ShowCursor(w) },
		Fallback: func() (string, error) {
			ls := &LineSchema[string]{
				Message: message,
				Parse: func(trimmed string, empty bool) (string, error) {
					return trimmed, nil
				},
				Validators: opts.Validators,
			}
			return Run(r, Schema[string]{Line: ls})
		},
	}

	return Run(r, Schema[string]{Key: ks})
}

// copyRunes returns a fresh slice so appends never alias a previous state.
func copyRunes(src []rune) []rune {
	dst := make([]rune, len(src))
	copy(dst, src)
	return dst
}
