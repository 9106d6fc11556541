package patternwizard

import (
	"os"
	"strings"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/editor"
	"github.com/mark3labs/atelier/internal/brief"
	"github.com/mark3labs/atelier/internal/logger"
	"github.com/mark3labs/atelier/internal/tui/theme"
	"github.com/mark3labs/atelier/internal/tui/wizard"
)

// DescriptionStep collects the free-form design description and the
// optional inspirations picked from the library overlay.
type DescriptionStep struct {
	wiz         *brief.Wizard
	textarea    textarea.Model
	library     *wizard.OptionList
	libraryOpen bool
	width       int
	height      int
	err         string
}

// NewDescriptionStep creates the description step, prefilled from the draft.
func NewDescriptionStep(wiz *brief.Wizard) *DescriptionStep {
	ta := textarea.New()
	ta.Placeholder = "Describe the fabric, fit, colors, silhouette, details..."
	ta.CharLimit = 2000
	ta.ShowLineNumbers = false
	ta.SetHeight(6)
	ta.SetWidth(modalContentWidth - 4)
	ta.SetValue(wiz.Draft().Description)
	ta.Focus()

	cat := wiz.Catalog()
	options := make([]wizard.Option, 0, len(cat.Inspirations))
	for _, i := range cat.Inspirations {
		options = append(options, wizard.Option{ID: i.ID, Label: i.Name, Swatch: i.Color})
	}

	return &DescriptionStep{
		wiz:      wiz,
		textarea: ta,
		library:  wizard.NewOptionList(options, true),
	}
}

// Init initializes the description step.
func (d *DescriptionStep) Init() tea.Cmd {
	return textarea.Blink
}

// LibraryOpen reports whether the inspiration library overlay is showing.
func (d *DescriptionStep) LibraryOpen() bool {
	return d.libraryOpen
}

// Update handles messages for the description step.
func (d *DescriptionStep) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case DescriptionEditedMsg:
		d.setDescription(strings.TrimRight(msg.Content, "\n"))
		return nil

	case tea.KeyPressMsg:
		if d.libraryOpen {
			return d.updateLibrary(msg)
		}
		switch msg.String() {
		case "ctrl+d":
			if !d.wiz.CanAdvance() {
				d.err = "Describe your design before continuing"
				return nil
			}
			d.err = ""
			return advance
		case "ctrl+l":
			return d.openLibrary()
		case "ctrl+e":
			return d.openEditor()
		case "tab":
			return tabForward
		case "shift+tab":
			return tabBackward
		default:
			d.err = ""
		}
	}

	var cmd tea.Cmd
	d.textarea, cmd = d.textarea.Update(msg)
	d.setDescription(d.textarea.Value())
	return cmd
}

func (d *DescriptionStep) setDescription(value string) {
	if d.textarea.Value() != value {
		d.textarea.SetValue(value)
	}
	if err := d.wiz.UpdateField(brief.StepDescription, brief.FieldDescription, value); err != nil {
		logger.Error("Updating description: %v", err)
	}
}

func (d *DescriptionStep) openLibrary() tea.Cmd {
	d.libraryOpen = true
	d.textarea.Blur()

	draft := d.wiz.Draft()
	var ids []string
	for _, i := range d.wiz.Catalog().Inspirations {
		if draft.HasInspiration(i.ID) {
			ids = append(ids, i.ID)
		}
	}
	d.library.SetSelected(ids...)
	d.library.Focus()
	return nil
}

func (d *DescriptionStep) closeLibrary() tea.Cmd {
	d.libraryOpen = false
	d.library.Blur()
	return d.textarea.Focus()
}

func (d *DescriptionStep) updateLibrary(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "ctrl+l", "tab", "shift+tab":
		return d.closeLibrary()
	}
	if id, chosen := d.library.Update(msg); chosen {
		d.wiz.ToggleInspiration(id)
	}
	return nil
}

// openEditor launches $EDITOR on the current description.
func (d *DescriptionStep) openEditor() tea.Cmd {
	tmpfile, err := os.CreateTemp("", "atelier_description_*.md")
	if err != nil {
		logger.Warn("Creating temp file for editor: %v", err)
		return nil
	}
	if _, err := tmpfile.WriteString(d.textarea.Value()); err != nil {
		_ = tmpfile.Close()
		_ = os.Remove(tmpfile.Name())
		return nil
	}
	_ = tmpfile.Close()

	cmd, err := editor.Command("atelier", tmpfile.Name())
	if err != nil {
		_ = os.Remove(tmpfile.Name())
		return nil
	}

	path := tmpfile.Name()
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		defer func() { _ = os.Remove(path) }()
		if err != nil {
			logger.Warn("Editor exited with error: %v", err)
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		return DescriptionEditedMsg{Content: string(content)}
	})
}

// View renders the description step content, or the library overlay.
func (d *DescriptionStep) View() string {
	t := theme.Current()
	s := t.S()

	if d.libraryOpen {
		return joinParts(
			question("Inspiration Library"),
			s.Muted.Render("Pick the swatches that capture the mood."),
			"",
			d.library.View(modalContentWidth),
			"",
			wizard.RenderHintBar("space", "toggle", "esc", "done"),
		)
	}

	var chips string
	if names := d.wiz.Snapshot().Inspirations; len(names) > 0 {
		rendered := make([]string, 0, len(names))
		for _, n := range names {
			rendered = append(rendered, s.Chip.Render(n))
		}
		chips = lipgloss.JoinVertical(lipgloss.Left,
			"",
			s.Muted.Render("Selected:"),
			lipgloss.NewStyle().Width(modalContentWidth).Render(strings.Join(rendered, " ")),
		)
	}

	library := s.Subtle.Render("ctrl+l  Pull from Inspiration Library")

	return joinParts(
		question("Describe your design"),
		fieldBox(d.textarea.View(), modalContentWidth-2, d.textarea.Focused()),
		library,
		chips,
		errorLine(d.err),
	)
}

// Value returns the current description text.
func (d *DescriptionStep) Value() string {
	return d.textarea.Value()
}

// SetSize updates the size of the description step.
func (d *DescriptionStep) SetSize(width, height int) {
	d.width = width
	d.height = height
	d.textarea.SetWidth(width - 4)
	h := height - 10
	if h < 4 {
		h = 4
	}
	if h > 10 {
		h = 10
	}
	d.textarea.SetHeight(h)
}

// FocusFirst focuses the textarea.
func (d *DescriptionStep) FocusFirst() tea.Cmd {
	if d.libraryOpen {
		return nil
	}
	return d.textarea.Focus()
}

// FocusLast focuses the textarea.
func (d *DescriptionStep) FocusLast() tea.Cmd {
	return d.FocusFirst()
}

// Blur blurs the textarea.
func (d *DescriptionStep) Blur() {
	d.textarea.Blur()
}
