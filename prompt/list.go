package prompt

import (
	"strings"

	"github.com/simonhull/firebird-suite/quill/term"
)

// ListOptions configures a List prompt. A nil *ListOptions means defaults.
type ListOptions struct {
	Default    []string
	Separator  string // default ","
	Validators []Validator[[]string]
	Retries    int
}

// List asks for a separated list of values on one line. Items are trimmed
// and empty items dropped.
//
// Example:
//
//	tags, err := prompt.List(term.Stdin(), "Tags", nil)
//	// "web, api,,backend" -> ["web" "api" "backend"]
func List(r *term.Reader, message string, opts *ListOptions) ([]string, error) {
	if opts == nil {
		opts = &ListOptions{}
	}

	sep := opts.Separator
	if sep == "" {
		sep = ","
	}

	var def *[]string
	if opts.Default != nil {
		def = &opts.Default
	}

	ls := &LineSchema[[]string]{
		Message: message,
		Default: def,
		Hint: func() string {
			if opts.Default != nil {
				return "(" + strings.Join(opts.Default, sep+" ") + ")"
			}
			return "(separate with " + sep + ")"
		},
		Parse: func(trimmed string, empty bool) ([]string, error) {
			if empty {
				return nil, nil
			}
			var items []string
			for _, part := range strings.Split(trimmed, sep) {
				if item := strings.TrimSpace(part); item != "" {
					items = append(items, item)
				}
			}
			return items, nil
		},
		Validators: opts.Validators,
		Retries:    opts.Retries,
	}

	return Run(r, Schema[[]string]{Line: ls})
}
