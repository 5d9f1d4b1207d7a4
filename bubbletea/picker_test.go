package bubbletea_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ponchorolls/rfcli"
	"github.com/ponchorolls/rfcli/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var candidates = []string{
	"0768 User Datagram Protocol. J. Postel.",
	"0791 Internet Protocol. J. Postel.",
	"0793 Transmission Control Protocol. J. Postel.",
	"2616 Hypertext Transfer Protocol -- HTTP/1.1. R. Fielding, et al.",
}

// update applies msg and returns the resulting PickerModel and command.
func update(t *testing.T, m bubbletea.PickerModel, msg tea.Msg) (bubbletea.PickerModel, tea.Cmd) {
	t.Helper()

	next, cmd := m.Update(msg)
	pm, ok := next.(bubbletea.PickerModel)
	require.True(t, ok, "Update should return a PickerModel")
	return pm, cmd
}

// typeText sends each rune of s as a key press.
func typeText(t *testing.T, m bubbletea.PickerModel, s string) bubbletea.PickerModel {
	t.Helper()

	for _, r := range s {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

// assertQuit executes cmd and checks that it quits the program.
func assertQuit(t *testing.T, cmd tea.Cmd) {
	t.Helper()

	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok, "command should be tea.Quit")
}

func TestPickerModel(t *testing.T) {
	t.Parallel()

	t.Run("lists all candidates for empty query", func(t *testing.T) {
		t.Parallel()

		m := bubbletea.NewPickerModel(candidates, "")

		assert.Equal(t, candidates, m.Matches())
	})

	t.Run("pre-fills initial query", func(t *testing.T) {
		t.Parallel()

		m := bubbletea.NewPickerModel(candidates, "791")

		assert.Equal(t, "791", m.Query())
		require.NotEmpty(t, m.Matches())
		assert.Equal(t, "0791 Internet Protocol. J. Postel.", m.Matches()[0])
	})

	t.Run("typing narrows matches", func(t *testing.T) {
		t.Parallel()

		m := typeText(t, bubbletea.NewPickerModel(candidates, ""), "http")

		require.NotEmpty(t, m.Matches())
		assert.Equal(t, candidates[3], m.Matches()[0])
	})

	t.Run("enter chooses highlighted line", func(t *testing.T) {
		t.Parallel()

		m := bubbletea.NewPickerModel(candidates, "")
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
		m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

		assertQuit(t, cmd)
		assert.Equal(t, rfcli.Pick{Line: candidates[1]}, m.Result())
	})

	t.Run("cursor stays within bounds", func(t *testing.T) {
		t.Parallel()

		m := bubbletea.NewPickerModel(candidates, "")
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
		for range 10 {
			m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlN})
		}
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

		assert.Equal(t, candidates[3], m.Result().Line)
	})

	t.Run("enter with no matches chooses nothing", func(t *testing.T) {
		t.Parallel()

		m := bubbletea.NewPickerModel(candidates, "zzzzqqq")
		m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

		assertQuit(t, cmd)
		assert.Empty(t, m.Matches())
		assert.Equal(t, rfcli.Pick{}, m.Result())
	})

	t.Run("escape aborts", func(t *testing.T) {
		t.Parallel()

		m, cmd := update(t, bubbletea.NewPickerModel(candidates, "791"), tea.KeyMsg{Type: tea.KeyEsc})

		assertQuit(t, cmd)
		assert.True(t, m.Result().Aborted)
		assert.Empty(t, m.Result().Line)
	})

	t.Run("ctrl+c aborts like escape", func(t *testing.T) {
		t.Parallel()

		m, cmd := update(t, bubbletea.NewPickerModel(candidates, ""), tea.KeyMsg{Type: tea.KeyCtrlC})

		assertQuit(t, cmd)
		assert.Equal(t, rfcli.Pick{Aborted: true}, m.Result())
	})

	t.Run("view shows query count and lines", func(t *testing.T) {
		t.Parallel()

		m := bubbletea.NewPickerModel(candidates, "")
		m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

		view := m.View()

		assert.Contains(t, view, "4/4")
		assert.Contains(t, view, "Internet Protocol")
	})

	t.Run("view limits lines to half the terminal", func(t *testing.T) {
		t.Parallel()

		many := make([]string, 100)
		for i := range many {
			many[i] = candidates[i%len(candidates)]
		}
		m := bubbletea.NewPickerModel(many, "")
		m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 10})

		// Input and status lines plus 3 list lines.
		assert.Equal(t, 5, countLines(m.View()))
	})

	t.Run("view is empty after quitting", func(t *testing.T) {
		t.Parallel()

		m, _ := update(t, bubbletea.NewPickerModel(candidates, ""), tea.KeyMsg{Type: tea.KeyEsc})

		assert.Empty(t, m.View())
	})
}

func countLines(s string) int {
	n := 0
	for _, r := range s {
		if r == '\n' {
			n++
		}
	}
	return n
}
