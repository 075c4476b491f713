package prompt

import (
	"fmt"
	"regexp"
	"strings"
)

// Validator checks a parsed value. A nil return accepts the value; an
// error's message is shown to the operator before the re-prompt.
type Validator[T any] func(T) error

func runValidators[T any](value T, validators []Validator[T]) error {
	for _, v := range validators {
		if v == nil {
			continue
		}
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

// NonEmpty rejects strings that are empty after trimming.
func NonEmpty() Validator[string] {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("a value is required")
		}
		return nil
	}
}

// MinLen rejects strings shorter than n runes.
func MinLen(n int) Validator[string] {
	return func(s string) error {
		if len([]rune(s)) < n {
			return fmt.Errorf("must be at least %d characters", n)
		}
		return nil
	}
}

// MaxLen rejects strings longer than n runes.
func MaxLen(n int) Validator[string] {
	return func(s string) error {
		if len([]rune(s)) > n {
			return fmt.Errorf("must be at most %d characters", n)
		}
		return nil
	}
}

// Range rejects integers outside [min, max].
func Range(min, max int) Validator[int] {
	return func(n int) error {
		if n < min || n > max {
			return fmt.Errorf("must be between %d and %d", min, max)
		}
		return nil
	}
}

// MatchRegexp rejects strings that do not match pattern. The pattern is
// compiled once; an invalid pattern rejects everything with the compile
// error so the mistake surfaces during development.
func MatchRegexp(pattern, explain string) Validator[string] {
	re, err := regexp.Compile(pattern)
	return func(s string) error {
		if err != nil {
			return fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		if !re.MatchString(s) {
			return fmt.Errorf("%s", explain)
		}
		return nil
	}
}
