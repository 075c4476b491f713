package prompt

import (
	"bytes"
	"os/exec"
	"strings"
	"testing"

	"github.com/simonhull/firebird-suite/quill/term"
)

// fakeEditor writes script into the file the editor is asked to open.
func fakeEditor(script string) func(name string, args ...string) *exec.Cmd {
	return func(name string, args ...string) *exec.Cmd {
		return exec.Command("sh", "-c", script+" >> \""+args[0]+"\"")
	}
}

func scriptedReader() *term.Reader {
	var out bytes.Buffer
	return term.NewScripted(strings.NewReader(""), &out)
}

func TestEditor_ReturnsSavedBuffer(t *testing.T) {
	r := scriptedReader()

	got, err := Editor(r, "Description", &EditorOptions{
		commandFunc: fakeEditor(`printf 'release notes\n\n'`),
	})
	if err != nil {
		t.Fatalf("Editor failed: %v", err)
	}
	if got != "release notes" {
		t.Errorf("Editor returned %q, want the buffer with trailing newlines stripped", got)
	}
}

func TestEditor_DefaultSeedsBuffer(t *testing.T) {
	r := scriptedReader()

	got, err := Editor(r, "Description", &EditorOptions{
		Default:     "seed",
		commandFunc: fakeEditor(`printf ' appended'`),
	})
	if err != nil {
		t.Fatalf("Editor failed: %v", err)
	}
	if got != "seed appended" {
		t.Errorf("Editor returned %q, the default did not reach the buffer", got)
	}
}

func TestEditor_FailureSurfaces(t *testing.T) {
	r := scriptedReader()

	_, err := Editor(r, "Description", &EditorOptions{
		commandFunc: func(name string, args ...string) *exec.Cmd {
			return exec.Command("false")
		},
	})
	if err == nil || !strings.Contains(err.Error(), "editor failed") {
		t.Errorf("Editor returned %v, want the editor failure", err)
	}
}

func TestEditor_ValidatorsRunOnResult(t *testing.T) {
	r := scriptedReader()

	_, err := Editor(r, "Description", &EditorOptions{
		commandFunc: fakeEditor(`printf 'x'`),
		Validators:  []Validator[string]{MinLen(10)},
	})
	if err == nil || !strings.Contains(err.Error(), "at least 10 characters") {
		t.Errorf("Editor returned %v, want the validation failure", err)
	}
}

func TestEditor_FallbackWithoutTerminal(t *testing.T) {
	var out bytes.Buffer
	r := term.NewReader(strings.NewReader("typed instead\n"), &out)

	got, err := Editor(r, "Description", nil)
	if err != nil {
		t.Fatalf("Editor failed: %v", err)
	}
	if got != "typed instead" {
		t.Errorf("Editor returned %q, want the typed line", got)
	}
}

func TestEditorName(t *testing.T) {
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "")
	if got := editorName(""); got != "vi" {
		t.Errorf("editorName with nothing set = %q, want vi", got)
	}

	t.Setenv("EDITOR", "nano")
	if got := editorName(""); got != "nano" {
		t.Errorf("editorName with EDITOR = %q, want nano", got)
	}

	t.Setenv("VISUAL", "code")
	if got := editorName(""); got != "code" {
		t.Errorf("editorName prefers VISUAL, got %q", got)
	}

	if got := editorName("hx"); got != "hx" {
		t.Errorf("editorName override = %q, want hx", got)
	}
}
