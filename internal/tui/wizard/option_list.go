package wizard

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mark3labs/atelier/internal/tui/theme"
)

// Option is one row of an OptionList.
type Option struct {
	ID     string
	Label  string
	Detail string // Muted trailing text
	Swatch string // Optional hex color rendered as a block before the label
}

// OptionList is a cursor-driven list with single or multi selection.
type OptionList struct {
	options  []Option
	cursor   int
	multi    bool
	selected map[string]struct{}
	focused  bool
}

// NewOptionList creates a list. With multi set, choosing a row toggles it;
// otherwise choosing replaces the selection.
func NewOptionList(options []Option, multi bool) *OptionList {
	return &OptionList{
		options:  options,
		multi:    multi,
		selected: make(map[string]struct{}),
	}
}

// Focus gives the list keyboard focus.
func (l *OptionList) Focus() { l.focused = true }

// Blur removes keyboard focus.
func (l *OptionList) Blur() { l.focused = false }

// Focused reports whether the list has focus.
func (l *OptionList) Focused() bool { return l.focused }

// Len returns the number of options.
func (l *OptionList) Len() int { return len(l.options) }

// Cursor returns the cursor index.
func (l *OptionList) Cursor() int { return l.cursor }

// CursorID returns the ID under the cursor.
func (l *OptionList) CursorID() string {
	if l.cursor < 0 || l.cursor >= len(l.options) {
		return ""
	}
	return l.options[l.cursor].ID
}

// SetCursorID moves the cursor to id if present.
func (l *OptionList) SetCursorID(id string) {
	for i, o := range l.options {
		if o.ID == id {
			l.cursor = i
			return
		}
	}
}

// SetSelected replaces the selection.
func (l *OptionList) SetSelected(ids ...string) {
	l.selected = make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id != "" {
			l.selected[id] = struct{}{}
		}
	}
}

// IsSelected reports whether id is selected.
func (l *OptionList) IsSelected(id string) bool {
	_, ok := l.selected[id]
	return ok
}

// Selected returns the selected IDs in list order.
func (l *OptionList) Selected() []string {
	var ids []string
	for _, o := range l.options {
		if l.IsSelected(o.ID) {
			ids = append(ids, o.ID)
		}
	}
	return ids
}

// choose applies a selection to the row under the cursor.
func (l *OptionList) choose() string {
	id := l.CursorID()
	if id == "" {
		return ""
	}
	if l.multi {
		if l.IsSelected(id) {
			delete(l.selected, id)
		} else {
			l.selected[id] = struct{}{}
		}
		return id
	}
	l.SetSelected(id)
	return id
}

// Update handles navigation keys. It returns the chosen ID and true when
// enter or space picked a row.
func (l *OptionList) Update(msg tea.Msg) (string, bool) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok || !l.focused || len(l.options) == 0 {
		return "", false
	}
	switch key.String() {
	case "up", "k":
		if l.cursor > 0 {
			l.cursor--
		}
	case "down", "j":
		if l.cursor < len(l.options)-1 {
			l.cursor++
		}
	case "home", "g":
		l.cursor = 0
	case "end", "G":
		l.cursor = len(l.options) - 1
	case "enter", "space", " ":
		return l.choose(), true
	}
	return "", false
}

// View renders the list in width columns.
func (l *OptionList) View(width int) string {
	t := theme.Current()
	s := t.S()

	lines := make([]string, 0, len(l.options))
	for i, o := range l.options {
		cursor := "  "
		if l.focused && i == l.cursor {
			cursor = s.Cursor.Render("› ")
		}

		var marker string
		switch {
		case l.multi && l.IsSelected(o.ID):
			marker = s.Selected.Render("[x]")
		case l.multi:
			marker = s.Muted.Render("[ ]")
		case l.IsSelected(o.ID):
			marker = s.Selected.Render("●")
		default:
			marker = s.Muted.Render("○")
		}

		label := o.Label
		if o.Swatch != "" {
			label = lipgloss.NewStyle().Foreground(lipgloss.Color(o.Swatch)).Render("■") + " " + label
		}
		labelStyle := s.Text
		if l.focused && i == l.cursor {
			labelStyle = labelStyle.Bold(true)
		}
		line := cursor + marker + " " + labelStyle.Render(label)
		if o.Detail != "" {
			line += "  " + s.Muted.Render(o.Detail)
		}
		if width > 0 && lipgloss.Width(line) > width {
			line = lipgloss.NewStyle().MaxWidth(width).Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
