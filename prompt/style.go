package prompt

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Decorator is a display-only text decoration. Quill's own decorators are
// lipgloss styles that degrade to Passthrough when color is unsupported or
// disabled; correctness never depends on what a decorator emits.
type Decorator func(string) string

// Passthrough returns its input unchanged.
func Passthrough(s string) string { return s }

var (
	prefixStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)
	messageStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
	hintStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	cursorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
	selectedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("green"))
	colorsDisabled bool
)

func init() {
	colorsDisabled = os.Getenv("NO_COLOR") != "" ||
		!isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// SetColorEnabled overrides color autodetection. The demo CLI wires this
// to its --no-color flag.
func SetColorEnabled(enabled bool) {
	colorsDisabled = !enabled
}

func decorator(st lipgloss.Style) Decorator {
	return func(s string) string {
		if colorsDisabled {
			return Passthrough(s)
		}
		return st.Render(s)
	}
}

var (
	stylePrefix   = decorator(prefixStyle)
	styleMessage  = decorator(messageStyle)
	styleHint     = decorator(hintStyle)
	styleCursor   = decorator(cursorStyle)
	styleSelected = decorator(selectedStyle)
)
