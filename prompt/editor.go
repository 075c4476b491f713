package prompt

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/simonhull/firebird-suite/quill/term"
)

// EditorOptions configures an Editor prompt. A nil *EditorOptions means
// defaults.
type EditorOptions struct {
	// Default seeds the editor buffer.
	Default string

	// Extension is the temp file suffix, which editors use to pick a
	// syntax mode. Empty means ".txt".
	Extension string

	// Editor overrides the $VISUAL/$EDITOR lookup.
	Editor string

	Validators []Validator[string]

	// commandFunc can be swapped in tests.
	commandFunc func(name string, args ...string) *exec.Cmd
}

// Editor opens the operator's editor on a temp file and returns the saved
// buffer with trailing newlines stripped.
//
// Without a terminal there is no editor to open; the prompt degrades to a
// plain text line.
func Editor(r *term.Reader, message string, opts *EditorOptions) (string, error) {
	if opts == nil {
		opts = &EditorOptions{}
	}

	if !r.IsInteractive() {
		return Text(r, message, &TextOptions{Validators: opts.Validators})
	}

	ext := opts.Extension
	if ext == "" {
		ext = ".txt"
	}

	commandFunc := opts.commandFunc
	if commandFunc == nil {
		commandFunc = exec.Command
	}

	fmt.Fprintf(r.Out(), "%s%s %s\n", stylePrefix(DefaultPrefix), styleMessage(message),
		styleHint("(opens "+editorName(opts.Editor)+")"))

	tmp, err := os.CreateTemp("", "quill-*"+ext)
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	path := tmp.Name()
	defer os.Remove(path)

	if _, err := tmp.WriteString(opts.Default); err != nil {
		tmp.Close()
		return "", fmt.Errorf("seeding temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("closing temp file: %w", err)
	}

	cmd := commandFunc(editorName(opts.Editor), path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("editor failed: %w", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading edited file: %w", err)
	}

	value := strings.TrimRight(string(content), "\n")
	if err := runValidators(value, opts.Validators); err != nil {
		return "", err
	}
	return value, nil
}

// editorName resolves the editor command: explicit override, then $VISUAL,
// then $EDITOR, then vi.
func editorName(override string) string {
	if override != "" {
		return override
	}
	if v := os.Getenv("VISUAL"); v != "" {
		return v
	}
	if v := os.Getenv("EDITOR"); v != "" {
		return v
	}
	return "vi"
}
