// Package lipgloss renders TLDR summaries for the terminal.
package lipgloss

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/term"
)

// DefaultWidth is used when the terminal size cannot be determined.
const DefaultWidth = 80

// margin is the room reserved for the bullet and indent.
const margin = 6

const headerWidth = 58

var (
	colorCyan   = lipgloss.Color("6")
	colorYellow = lipgloss.Color("3")
	colorWhite  = lipgloss.Color("15")

	headerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorCyan).
			Bold(true).
			Padding(0, 1)

	numberStyle = lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
	bulletStyle = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
	textStyle   = lipgloss.NewStyle().Foreground(colorWhite).Bold(true)
)

// TerminalWidth returns the column count of the terminal behind w,
// or DefaultWidth when w is not a terminal.
func TerminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return DefaultWidth
	}
	width, _, err := term.GetSize(f.Fd())
	if err != nil || width <= 0 {
		return DefaultWidth
	}
	return width
}

// CleanSummary returns the non-empty lines of a model response with
// conversational filler dropped and markdown bold markers removed.
func CleanSummary(summary string) []string {
	var out []string
	for _, line := range strings.Split(summary, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		lower := strings.ToLower(trimmed)
		if strings.HasPrefix(lower, "here is") || strings.Contains(lower, "summary of rfc") {
			continue
		}
		out = append(out, strings.ReplaceAll(trimmed, "**", ""))
	}
	return out
}

// RenderSummary formats summary under an "RFC <number>" header.
// Lines starting with "*" or "-" become bullets; every line is wrapped
// to width minus a small margin with continuation lines indented.
func RenderSummary(number int, summary string, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	limit := max(width-margin, 20)

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(headerStyle.Width(min(headerWidth, width-2)).
		Render("RFC " + numberStyle.Render(strconv.Itoa(number))))
	sb.WriteString("\n")

	for _, line := range CleanSummary(summary) {
		bullet := strings.HasPrefix(line, "*") || strings.HasPrefix(line, "-")
		if bullet {
			line = strings.TrimSpace(line[1:])
		}
		if line == "" {
			continue
		}

		for i, wrapped := range strings.Split(ansi.Wrap(line, limit, ""), "\n") {
			wrapped = strings.TrimSpace(wrapped)
			if i == 0 && bullet {
				sb.WriteString("  " + bulletStyle.Render("•") + " " + textStyle.Render(wrapped) + "\n")
				continue
			}
			sb.WriteString("    " + textStyle.Render(wrapped) + "\n")
		}
	}

	return sb.String()
}
