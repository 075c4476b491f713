package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	verboseMode bool

	// writer is swappable so tests can capture output.
	writer io.Writer = os.Stdout
)

// SetVerbose enables or disables verbose output for debugging.
// This should be called by the CLI when the --verbose flag is set.
func SetVerbose(v bool) {
	verboseMode = v
}

// SetWriter redirects all output to w. Tests use this to capture messages;
// it returns the previous writer so callers can restore it.
func SetWriter(w io.Writer) io.Writer {
	prev := writer
	writer = w
	return prev
}

// Success prints a success message with a green check mark.
// Use this for completed operations.
//
// Example:
//
//	output.Success("Created project: myapp")
func Success(msg string) {
	fmt.Fprintln(writer, successStyle.Render("✔ "+msg))
}

// Error prints an error message with a red cross mark.
// Use this for failures that need user attention.
//
// Example:
//
//	output.Error("Failed to create project: permission denied")
func Error(msg string) {
	fmt.Fprintln(writer, errorStyle.Render("✖ "+msg))
}

// Info prints an informational message in cyan.
// Use this for status updates or explanations.
func Info(msg string) {
	fmt.Fprintln(writer, infoStyle.Render(msg))
}

// Step prints an indented step message in gray.
// Use this for actionable next steps or sub-items.
//
// Example:
//
//	output.Step("cd myapp")
//	output.Step("go mod tidy")
func Step(msg string) {
	fmt.Fprintln(writer, stepStyle.Render("   "+msg))
}

// Verbose prints a debug message only if verbose mode is enabled.
func Verbose(msg string) {
	if verboseMode {
		fmt.Fprintln(writer, stepStyle.Render("· "+msg))
	}
}

// ErrorMark returns msg rendered in the error style without printing it.
// Quill's line-mode prompts use this for the single marked line shown
// before a re-prompt.
func ErrorMark(msg string) string {
	return errorStyle.Render("✖ " + msg)
}

// HintMark returns msg rendered in the gray hint style without printing it.
func HintMark(msg string) string {
	return stepStyle.Render(msg)
}
