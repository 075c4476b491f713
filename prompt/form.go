package prompt

import (
	"errors"
	"fmt"

	"github.com/simonhull/firebird-suite/quill/term"
)

// Field is one named entry of a form. Run executes any prompt kind and
// returns its value.
type Field struct {
	Name string
	Run  func(r *term.Reader) (any, error)
}

// Form runs fields in order and collects their values by name. The first
// error (including ErrCancelled) aborts the form; values gathered so far
// are discarded.
//
// Example:
//
//	answers, err := prompt.Form(term.Stdin(), []prompt.Field{
//		{Name: "name", Run: func(r *term.Reader) (any, error) {
//			return prompt.Text(r, "Project name", nil)
//		}},
//		{Name: "tidy", Run: func(r *term.Reader) (any, error) {
//			return prompt.Confirm(r, "Run go mod tidy?", true)
//		}},
//	})
func Form(r *term.Reader, fields []Field) (map[string]any, error) {
	values := make(map[string]any, len(fields))

	for _, field := range fields {
		if field.Name == "" {
			return nil, errors.New("form field requires a name")
		}
		if field.Run == nil {
			return nil, fmt.Errorf("form field %q requires a prompt", field.Name)
		}
		if _, ok := values[field.Name]; ok {
			return nil, fmt.Errorf("duplicate form field %q", field.Name)
		}

		value, err := field.Run(r)
		if err != nil {
			return nil, err
		}
		values[field.Name] = value
	}

	return values, nil
}
