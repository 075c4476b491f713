package prompt_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/simonhull/firebird-suite/quill/prompt"
)

func frameworkOptions() []prompt.Option[string] {
	return []prompt.Option[string]{
		{Label: "React", Value: "react"},
		{Label: "Vue", Value: "vue"},
		{Label: "Svelte", Value: "svelte"},
		{Label: "Angular", Value: "angular"},
	}
}

func TestSubsequenceMatch(t *testing.T) {
	tests := []struct {
		input string
		label string
		want  bool
	}{
		{"", "React", true},
		{"ra", "React", true},
		{"ra", "Vue", false},
		{"RCT", "react", true},
		{"tcr", "React", false},
		{"sv", "Svelte", true},
		{"react", "React", true},
		{"reactx", "React", false},
	}

	for _, tt := range tests {
		if got := prompt.SubsequenceMatch(tt.input, tt.label); got != tt.want {
			t.Errorf("SubsequenceMatch(%q, %q) = %v, want %v", tt.input, tt.label, got, tt.want)
		}
	}
}

func TestAutocomplete_TypingNarrowsAndSelects(t *testing.T) {
	r, out := keyReader(ev("r"), ev("a"), ev("return"))

	got, err := prompt.Autocomplete(r, "Framework", frameworkOptions(), nil)
	if err != nil {
		t.Fatalf("Autocomplete failed: %v", err)
	}
	if got != "react" {
		t.Errorf("Autocomplete returned %q, want the only subsequence match", got)
	}
	if strings.Contains(lastFrame(out.String()), "Vue") {
		t.Error("non-matching option still drawn after filtering")
	}
}

func TestAutocomplete_TypingResetsHighlight(t *testing.T) {
	// Move the highlight down, then type; the highlight must return to the
	// top of the refiltered list.
	r, _ := keyReader(ev("down"), ev("down"), ev("v"), ev("return"))

	got, err := prompt.Autocomplete(r, "Framework", frameworkOptions(), nil)
	if err != nil {
		t.Fatalf("Autocomplete failed: %v", err)
	}
	if got != "vue" {
		t.Errorf("Autocomplete returned %q, want the first match after refilter", got)
	}
}

func TestAutocomplete_BackspaceWidensMatches(t *testing.T) {
	r, _ := keyReader(ev("z"), ev("backspace"), ev("return"))

	got, err := prompt.Autocomplete(r, "Framework", frameworkOptions(), nil)
	if err != nil {
		t.Fatalf("Autocomplete failed: %v", err)
	}
	if got != "react" {
		t.Errorf("Autocomplete returned %q, want the full list restored", got)
	}
}

func TestAutocomplete_CursorWrapsWithinMatches(t *testing.T) {
	r, _ := keyReader(ev("up"), ev("return"))

	got, err := prompt.Autocomplete(r, "Framework", frameworkOptions(), nil)
	if err != nil {
		t.Fatalf("Autocomplete failed: %v", err)
	}
	if got != "angular" {
		t.Errorf("Autocomplete returned %q, want up from the top to wrap to the last match", got)
	}
}

func TestAutocomplete_CustomInputWhenNothingMatches(t *testing.T) {
	r, _ := keyReader(ev("z"), ev("z"), ev("return"))

	got, err := prompt.Autocomplete(r, "Framework", frameworkOptions(), &prompt.AutocompleteOptions[string]{
		Custom: func(raw string) (string, error) { return "custom:" + raw, nil },
	})
	if err != nil {
		t.Fatalf("Autocomplete failed: %v", err)
	}
	if got != "custom:zz" {
		t.Errorf("Autocomplete returned %q, want the raw text handed to Custom", got)
	}
}

func TestAutocomplete_NoMatchWithoutCustomKeepsPrompting(t *testing.T) {
	r, out := keyReader(ev("z"), ev("return"), ev("backspace"), ev("return"))

	got, err := prompt.Autocomplete(r, "Framework", frameworkOptions(), nil)
	if err != nil {
		t.Fatalf("Autocomplete failed: %v", err)
	}
	if got != "react" {
		t.Errorf("Autocomplete returned %q", got)
	}
	if !strings.Contains(out.String(), "keep typing") {
		t.Error("empty-match confirm did not show a notice")
	}
}

func TestAutocomplete_CustomErrorShownAsNotice(t *testing.T) {
	r, out := keyReader(ev("z"), ev("return"), ev("backspace"), ev("return"))

	got, err := prompt.Autocomplete(r, "Framework", frameworkOptions(), &prompt.AutocompleteOptions[string]{
		Custom: func(raw string) (string, error) {
			if raw == "z" {
				return "", errors.New("z is not a framework")
			}
			return raw, nil
		},
	})
	if err != nil {
		t.Fatalf("Autocomplete failed: %v", err)
	}
	if got != "react" {
		t.Errorf("Autocomplete returned %q", got)
	}
	if !strings.Contains(out.String(), "z is not a framework") {
		t.Error("custom conversion error was not surfaced")
	}
}

func TestAutocomplete_EscapeCancels(t *testing.T) {
	r, _ := keyReader(ev("r"), ev("escape"))

	_, err := prompt.Autocomplete(r, "Framework", frameworkOptions(), nil)
	if !errors.Is(err, prompt.ErrCancelled) {
		t.Errorf("Autocomplete returned %v, want ErrCancelled", err)
	}
}

func TestAutocomplete_RepaintClearsExactlyDrawnLines(t *testing.T) {
	// Narrow four matches down to two and back. Every repaint must clear
	// exactly the lines the previous frame drew, so clear and cursor-up
	// counts stay consistent with the frame sizes.
	r, out := keyReader(ev("v"), ev("backspace"), ev("return"))

	if _, err := prompt.Autocomplete(r, "Framework", frameworkOptions(), nil); err != nil {
		t.Fatalf("Autocomplete failed: %v", err)
	}

	rendered := out.String()
	// Frame 1 draws 5 lines (input + 4 matches), so repaint 1 clears 5.
	// Frame 2 draws 3 lines (input + Vue + Svelte), so repaint 2 clears 3.
	// Every cleared line needs one cursor-up: 8 of each in total.
	if got := strings.Count(rendered, "\x1b[2K"); got != 8 {
		t.Errorf("repaints issued %d line clears, want 8", got)
	}
	if got := strings.Count(rendered, "\x1b[1A"); got != 8 {
		t.Errorf("repaints issued %d cursor-ups, want 8", got)
	}
}

func TestAutocomplete_FallbackWithCustomUsesPlainText(t *testing.T) {
	r, _ := lineReader("anything\n")

	got, err := prompt.Autocomplete(r, "Framework", frameworkOptions(), &prompt.AutocompleteOptions[string]{
		Custom: func(raw string) (string, error) { return raw, nil },
	})
	if err != nil {
		t.Fatalf("Autocomplete failed: %v", err)
	}
	if got != "anything" {
		t.Errorf("Autocomplete returned %q, want the typed line", got)
	}
}

func TestAutocomplete_FallbackWithoutCustomUsesNumberedList(t *testing.T) {
	r, out := lineReader("3\n")

	got, err := prompt.Autocomplete(r, "Framework", frameworkOptions(), nil)
	if err != nil {
		t.Fatalf("Autocomplete failed: %v", err)
	}
	if got != "svelte" {
		t.Errorf("Autocomplete returned %q, want the third option", got)
	}
	if !strings.Contains(out.String(), "3) Svelte") {
		t.Error("fallback did not render a numbered list")
	}
}

// lastFrame returns everything after the final line-clear sequence, which is
// the last frame a key-mode prompt drew.
func lastFrame(rendered string) string {
	idx := strings.LastIndex(rendered, "\x1b[2K")
	if idx < 0 {
		return rendered
	}
	return rendered[idx:]
}
