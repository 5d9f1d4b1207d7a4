package bubbletea

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"
)

// Spinner shows an animated status line while a blocking call runs.
type Spinner struct {
	output io.Writer
}

// NewSpinner creates a Spinner writing to w, or stderr if w is nil.
func NewSpinner(w io.Writer) *Spinner {
	if w == nil {
		w = os.Stderr
	}
	return &Spinner{output: w}
}

// Run displays message with a spinner until fn returns, then clears the
// line and returns fn's error. Spinner failures never affect the result.
func (s *Spinner) Run(ctx context.Context, message string, fn func(context.Context) error) error {
	prog := tea.NewProgram(NewSpinnerModel(message),
		tea.WithContext(ctx),
		tea.WithInput(nil),
		tea.WithOutput(s.output),
	)

	var g errgroup.Group
	g.Go(func() error {
		_, err := prog.Run()
		return err
	})

	err := fn(ctx)

	prog.Send(StopMsg{})
	_ = g.Wait()

	return err
}

// StopMsg tells a SpinnerModel to clear itself and quit.
type StopMsg struct{}

// SpinnerModel renders a spinner next to a message.
type SpinnerModel struct {
	spinner spinner.Model
	message string
	done    bool
}

// NewSpinnerModel returns a spinner model showing message.
func NewSpinnerModel(message string) SpinnerModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	return SpinnerModel{spinner: s, message: message}
}

// Init implements tea.Model.
func (m SpinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update implements tea.Model.
func (m SpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case StopMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m SpinnerModel) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + m.message
}
