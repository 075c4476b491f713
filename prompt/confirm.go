package prompt

import (
	"fmt"
	"strings"

	"github.com/simonhull/firebird-suite/quill/term"
)

// Confirm asks a yes/no question. Pressing Enter returns defaultYes;
// anything other than a yes/no answer re-prompts.
//
// Example:
//
//	if ok, err := prompt.Confirm(term.Stdin(), "Run go mod tidy?", true); err == nil && ok {
//		// user said yes (or pressed Enter with defaultYes=true)
//	}
func Confirm(r *term.Reader, message string, defaultYes bool) (bool, error) {
	def := defaultYes

	ls := &LineSchema[bool]{
		Message: message,
		Default: &def,
		Hint: func() string {
			if defaultYes {
				return "[Y/n]"
			}
			return "[y/N]"
		},
		Parse: func(trimmed string, empty bool) (bool, error) {
			switch strings.ToLower(trimmed) {
			case "y", "yes":
				return true, nil
			case "n", "no":
				return false, nil
			default:
				return false, fmt.Errorf("answer yes or no")
			}
		},
	}

	return Run(r, Schema[bool]{Line: ls})
}
