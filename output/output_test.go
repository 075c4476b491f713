package output

import (
	"bytes"
	"strings"
	"testing"
)

// capture redirects package output to a buffer for the duration of f.
func capture(f func()) string {
	var buf bytes.Buffer
	prev := SetWriter(&buf)
	defer SetWriter(prev)

	f()
	return buf.String()
}

func TestSuccess(t *testing.T) {
	out := capture(func() {
		Success("Test message")
	})

	if !strings.Contains(out, "✔") {
		t.Error("Success output should contain the check mark")
	}
	if !strings.Contains(out, "Test message") {
		t.Error("Success output should contain the message")
	}
}

func TestError(t *testing.T) {
	out := capture(func() {
		Error("Error message")
	})

	if !strings.Contains(out, "✖") {
		t.Error("Error output should contain the cross mark")
	}
	if !strings.Contains(out, "Error message") {
		t.Error("Error output should contain the message")
	}
}

func TestStep(t *testing.T) {
	out := capture(func() {
		Step("Step message")
	})

	if !strings.Contains(out, "   ") {
		t.Error("Step output should contain indentation")
	}
	if !strings.Contains(out, "Step message") {
		t.Error("Step output should contain the message")
	}
}

func TestVerbose(t *testing.T) {
	// Verbose mode off (default): silent.
	out := capture(func() {
		Verbose("Debug message")
	})
	if out != "" {
		t.Error("Verbose output should be empty when verbose mode is off")
	}

	SetVerbose(true)
	defer SetVerbose(false)

	out = capture(func() {
		Verbose("Debug message")
	})
	if !strings.Contains(out, "Debug message") {
		t.Error("Verbose output should contain the message when enabled")
	}
}

func TestErrorMark(t *testing.T) {
	mark := ErrorMark("bad value")

	if !strings.Contains(mark, "✖") {
		t.Error("ErrorMark should contain the cross mark")
	}
	if !strings.Contains(mark, "bad value") {
		t.Error("ErrorMark should contain the message")
	}

	// ErrorMark renders without printing.
	out := capture(func() {
		_ = ErrorMark("silent")
	})
	if out != "" {
		t.Error("ErrorMark should not write to the output writer")
	}
}
