package patternwizard

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/mark3labs/atelier/internal/brief"
	"github.com/mark3labs/atelier/internal/logger"
)

// TitleStep collects the project title.
type TitleStep struct {
	wiz    *brief.Wizard
	input  textinput.Model
	width  int
	height int
	err    string // Validation error message
}

// NewTitleStep creates the title step, prefilled from the draft.
func NewTitleStep(wiz *brief.Wizard) *TitleStep {
	ti := textinput.New()
	ti.Placeholder = "Name your project..."
	ti.CharLimit = 100
	ti.SetWidth(modalContentWidth - 4)
	ti.SetValue(wiz.Draft().ProjectTitle)
	ti.Focus()

	return &TitleStep{
		wiz:   wiz,
		input: ti,
	}
}

// Init initializes the title step.
func (t *TitleStep) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the title step.
func (t *TitleStep) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyPressMsg); ok {
		switch msg.String() {
		case "enter":
			if !t.wiz.CanAdvance() {
				t.err = "Give your project a name"
				return nil
			}
			t.err = ""
			return advance
		case "tab":
			return tabForward
		case "shift+tab":
			return tabBackward
		default:
			t.err = ""
		}
	}

	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	if err := t.wiz.UpdateField(brief.StepProjectTitle, brief.FieldProjectTitle, t.input.Value()); err != nil {
		logger.Error("Updating project title: %v", err)
	}
	return cmd
}

// View renders the title step content.
func (t *TitleStep) View() string {
	return joinParts(
		question("What are we creating today?"),
		fieldBox(t.input.View(), modalContentWidth-2, t.input.Focused()),
		errorLine(t.err),
	)
}

// Value returns the current input text.
func (t *TitleStep) Value() string {
	return t.input.Value()
}

// SetSize updates the size of the title step.
func (t *TitleStep) SetSize(width, height int) {
	t.width = width
	t.height = height
	t.input.SetWidth(width - 6)
}

// FocusFirst focuses the title input.
func (t *TitleStep) FocusFirst() tea.Cmd {
	return t.input.Focus()
}

// FocusLast focuses the title input.
func (t *TitleStep) FocusLast() tea.Cmd {
	return t.input.Focus()
}

// Blur blurs the title input.
func (t *TitleStep) Blur() {
	t.input.Blur()
}
