// Package bubbletea provides terminal UI components built on Bubble Tea:
// an interactive fuzzy picker implementing rfcli.Picker and a spinner for
// long-running calls.
package bubbletea

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/ponchorolls/rfcli"
	"github.com/sahilm/fuzzy"
)

// defaultListHeight is used until the terminal reports its size.
const defaultListHeight = 10

var (
	promptStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#58a6ff")).Bold(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#58a6ff"))
	itemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#c9d1d9"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#58a6ff")).Background(lipgloss.Color("#21262d")).Bold(true)
	matchStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#d29922")).Bold(true)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8b949e"))
)

// Ensure Picker implements rfcli.Picker at compile time.
var _ rfcli.Picker = (*Picker)(nil)

// Picker runs a PickerModel as a Bubble Tea program.
type Picker struct {
	input  io.Reader
	output io.Writer
}

// PickerOption configures a Picker.
type PickerOption func(*Picker)

// WithInput sets the terminal input. Defaults to stdin.
func WithInput(r io.Reader) PickerOption {
	return func(p *Picker) {
		p.input = r
	}
}

// WithOutput sets the terminal output. Defaults to stdout.
func WithOutput(w io.Writer) PickerOption {
	return func(p *Picker) {
		p.output = w
	}
}

// NewPicker creates a new Picker.
func NewPicker(opts ...PickerOption) *Picker {
	p := &Picker{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Pick blocks until the user chooses a candidate or aborts with esc or ctrl+c.
func (p *Picker) Pick(ctx context.Context, candidates []string, query string) (rfcli.Pick, error) {
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if p.input != nil {
		opts = append(opts, tea.WithInput(p.input))
	}
	if p.output != nil {
		opts = append(opts, tea.WithOutput(p.output))
	}

	final, err := tea.NewProgram(NewPickerModel(candidates, query), opts...).Run()
	if err != nil {
		if ctx.Err() != nil {
			return rfcli.Pick{}, ctx.Err()
		}
		return rfcli.Pick{}, rfcli.WrapError(rfcli.EINTERNAL, err, "run picker")
	}

	m, ok := final.(PickerModel)
	if !ok {
		return rfcli.Pick{}, rfcli.Errorf(rfcli.EINTERNAL, "unexpected picker model %T", final)
	}
	return m.Result(), nil
}

// PickerModel is a single-selection fuzzy finder over candidate lines.
type PickerModel struct {
	input      textinput.Model
	candidates []string
	matches    fuzzy.Matches
	cursor     int
	offset     int
	height     int
	width      int
	result     rfcli.Pick
	done       bool
}

// NewPickerModel returns a model over candidates with the query pre-filled.
func NewPickerModel(candidates []string, query string) PickerModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Search RFCs..."
	ti.PromptStyle = promptStyle
	ti.Cursor.Style = cursorStyle
	ti.SetValue(query)
	ti.CursorEnd()
	ti.Focus()

	m := PickerModel{
		input:      ti,
		candidates: candidates,
		height:     defaultListHeight,
	}
	m.filter()
	return m
}

// Init implements tea.Model.
func (m PickerModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Use half the terminal, less the prompt and status lines.
		m.height = max(1, msg.Height/2-2)
		m.width = msg.Width
		m.input.Width = max(0, msg.Width-4)
		m.scroll()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			m.result = rfcli.Pick{Aborted: true}
			m.done = true
			return m, tea.Quit

		case "enter":
			if m.cursor < len(m.matches) {
				m.result = rfcli.Pick{Line: m.matches[m.cursor].Str}
			}
			m.done = true
			return m, tea.Quit

		case "up", "ctrl+p", "ctrl+k":
			if m.cursor > 0 {
				m.cursor--
			}
			m.scroll()
			return m, nil

		case "down", "ctrl+n", "ctrl+j":
			if m.cursor < len(m.matches)-1 {
				m.cursor++
			}
			m.scroll()
			return m, nil
		}
	}

	oldValue := m.input.Value()

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if m.input.Value() != oldValue {
		m.filter()
	}

	return m, cmd
}

// filter ranks candidates against the current query.
func (m *PickerModel) filter() {
	query := strings.TrimSpace(m.input.Value())
	if query == "" {
		m.matches = make(fuzzy.Matches, len(m.candidates))
		for i, c := range m.candidates {
			m.matches[i] = fuzzy.Match{Str: c, Index: i}
		}
	} else {
		m.matches = fuzzy.Find(query, m.candidates)
	}
	m.cursor = 0
	m.offset = 0
}

// scroll keeps the cursor inside the visible window.
func (m *PickerModel) scroll() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.height {
		m.offset = m.cursor - m.height + 1
	}
}

// View implements tea.Model.
func (m PickerModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(fmt.Sprintf("  %d/%d", len(m.matches), len(m.candidates))))
	b.WriteString("\n")

	end := min(m.offset+m.height, len(m.matches))
	for i := m.offset; i < end; i++ {
		line := m.truncate(m.matches[i].Str)
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("› " + line))
		} else {
			b.WriteString("  " + highlight(line, m.matches[i].MatchedIndexes))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// truncate shortens a line to the terminal width, if known.
func (m PickerModel) truncate(line string) string {
	limit := m.width - 2
	if m.width == 0 || limit <= 0 {
		return line
	}
	return ansi.Truncate(line, limit, "")
}

// highlight renders matched characters in a distinct style.
func highlight(line string, matched []int) string {
	if len(matched) == 0 {
		return itemStyle.Render(line)
	}

	set := make(map[int]bool, len(matched))
	for _, i := range matched {
		set[i] = true
	}

	var b strings.Builder
	for i, r := range line {
		if set[i] {
			b.WriteString(matchStyle.Render(string(r)))
		} else {
			b.WriteString(itemStyle.Render(string(r)))
		}
	}
	return b.String()
}

// Result returns the outcome once the model has quit.
func (m PickerModel) Result() rfcli.Pick {
	return m.result
}

// Matches returns the candidates currently matching the query, best first.
func (m PickerModel) Matches() []string {
	out := make([]string, len(m.matches))
	for i, match := range m.matches {
		out[i] = match.Str
	}
	return out
}

// Query returns the current search input.
func (m PickerModel) Query() string {
	return m.input.Value()
}
