package spin

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Options configures a spinner run.
type Options struct {
	// Output receives the spinner frames. Nil means os.Stderr.
	Output io.Writer
}

// Run executes fn while showing a spinner labelled with message. The final
// frame is a ✔ line on success or a ✖ line carrying fn's error. The
// context passed to fn is the caller's; cancelling it is fn's concern.
func Run(ctx context.Context, message string, fn func(ctx context.Context) error) error {
	return RunWithOptions(ctx, message, fn, nil)
}

// RunWithOptions is Run with an explicit output writer for tests.
func RunWithOptions(ctx context.Context, message string, fn func(ctx context.Context) error, opts *Options) error {
	out := io.Writer(os.Stderr)
	if opts != nil && opts.Output != nil {
		out = opts.Output
	}

	done := make(chan error, 1)
	go func() {
		done <- fn(ctx)
	}()

	m := newModel(message)
	p := tea.NewProgram(m, tea.WithOutput(out), tea.WithInput(nil))

	go func() {
		if _, err := p.Run(); err != nil {
			// A broken spinner must not fail the wrapped work.
			_ = err
		}
	}()

	err := <-done

	p.Send(doneMsg{err: err})

	// Give the program one tick to render the final frame.
	time.Sleep(50 * time.Millisecond)
	p.Quit()
	p.Wait()

	return err
}

// model is the bubbletea model for the spinner.
type model struct {
	spinner spinner.Model
	message string
	done    bool
	err     error
}

type doneMsg struct {
	err error
}

func newModel(message string) *model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	return &model{
		spinner: s,
		message: message,
	}
}

func (m *model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case doneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	case spinner.TickMsg:
		if !m.done {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m *model) View() string {
	if m.done {
		if m.err != nil {
			return fmt.Sprintf("✖ %s: %v\n", m.message, m.err)
		}
		return fmt.Sprintf("✔ %s\n", m.message)
	}
	return fmt.Sprintf("%s %s...", m.spinner.View(), m.message)
}
