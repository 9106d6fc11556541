package patternwizard

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mark3labs/atelier/internal/tui/theme"
	"github.com/mark3labs/atelier/internal/tui/wizard"
)

// step is one wizard screen. Steps write straight into the brief wizard as
// the user types, so leaving a step never loses input.
type step interface {
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View() string
	SetSize(width, height int)
	FocusFirst() tea.Cmd
	FocusLast() tea.Cmd
	Blur()
}

func tabForward() tea.Msg  { return wizard.TabExitForwardMsg{} }
func tabBackward() tea.Msg { return wizard.TabExitBackwardMsg{} }
func advance() tea.Msg     { return advanceMsg{} }

// question renders the large prompt at the top of a step.
func question(text string) string {
	t := theme.Current()
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(t.FgBright)).
		MarginBottom(1).
		Render(text)
}

// fieldBox wraps an input in the rounded box used by every step.
func fieldBox(content string, width int, focused bool) string {
	t := theme.Current()
	border := t.BorderDefault
	if focused {
		border = t.BorderFocused
	}
	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Render(content)
}

// errorLine renders a validation message, or "" when there is none.
func errorLine(msg string) string {
	if msg == "" {
		return ""
	}
	return theme.Current().S().Error.Render("✗ " + msg)
}

// joinParts stacks the non-empty parts vertically.
func joinParts(parts ...string) string {
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, kept...)
}
