package prompt

import (
	"fmt"
	"strconv"

	"github.com/simonhull/firebird-suite/quill/term"
)

// NumberOptions configures a Number prompt. A nil *NumberOptions means
// defaults.
type NumberOptions struct {
	Default    *int
	Min        *int
	Max        *int
	Validators []Validator[int]
	Retries    int
}

// Number asks for an integer.
//
// Example:
//
//	port, err := prompt.Number(term.Stdin(), "Port", &prompt.NumberOptions{
//		Default: prompt.Int(8080),
//		Min:     prompt.Int(1),
//		Max:     prompt.Int(65535),
//	})
func Number(r *term.Reader, message string, opts *NumberOptions) (int, error) {
	if opts == nil {
		opts = &NumberOptions{}
	}

	validators := opts.Validators
	if opts.Min != nil || opts.Max != nil {
		validators = append([]Validator[int]{boundsValidator(opts.Min, opts.Max)}, validators...)
	}

	ls := &LineSchema[int]{
		Message: message,
		Default: opts.Default,
		Parse: func(trimmed string, empty bool) (int, error) {
			n, err := strconv.Atoi(trimmed)
			if err != nil {
				return 0, fmt.Errorf("%q is not a whole number", trimmed)
			}
			return n, nil
		},
		Validators: validators,
		Retries:    opts.Retries,
	}

	ls.Hint = func() string {
		if opts.Default != nil {
			return fmt.Sprintf("(%d)", *opts.Default)
		}
		return ""
	}

	return Run(r, Schema[int]{Line: ls})
}

func boundsValidator(min, max *int) Validator[int] {
	return func(n int) error {
		if min != nil && n < *min {
			return fmt.Errorf("must be at least %d", *min)
		}
		if max != nil && n > *max {
			return fmt.Errorf("must be at most %d", *max)
		}
		return nil
	}
}
