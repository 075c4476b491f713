package prompt

import (
	"fmt"

	"github.com/simonhull/firebird-suite/quill/term"
)

// TextOptions configures a Text prompt. A nil *TextOptions means defaults.
type TextOptions struct {
	Default    *string
	Hint       string
	Validators []Validator[string]
	Retries    int
}

// Text asks for a line of text.
//
// Example:
//
//	modulePath, err := prompt.Text(term.Stdin(), "Module path", &prompt.TextOptions{
//		Default: prompt.String("github.com/username/myapp"),
//	})
func Text(r *term.Reader, message string, opts *TextOptions) (string, error) {
	if opts == nil {
		opts = &TextOptions{}
	}

	ls := &LineSchema[string]{
		Message: message,
		Default: opts.Default,
		Parse: func(trimmed string, empty bool) (string, error) {
			return trimmed, nil
		},
		Validators: opts.Validators,
		Retries:    opts.Retries,
	}

	ls.Hint = func() string {
		switch {
		case opts.Hint != "":
			return opts.Hint
		case opts.Default != nil:
			return fmt.Sprintf("(%s)", *opts.Default)
		default:
			return ""
		}
	}

	return Run(r, Schema[string]{Line: ls})
}
