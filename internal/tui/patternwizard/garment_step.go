package patternwizard

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/mark3labs/atelier/internal/brief"
	"github.com/mark3labs/atelier/internal/catalog"
	"github.com/mark3labs/atelier/internal/logger"
	"github.com/mark3labs/atelier/internal/tui/theme"
	"github.com/mark3labs/atelier/internal/tui/wizard"
)

// GarmentStep picks the garment type. Choosing Other reveals a text input
// for a custom garment name.
type GarmentStep struct {
	wiz         *brief.Wizard
	list        *wizard.OptionList
	custom      textinput.Model
	customFocus bool
	width       int
	height      int
	err         string
}

// NewGarmentStep creates the garment step, restoring any earlier choice.
func NewGarmentStep(wiz *brief.Wizard) *GarmentStep {
	cat := wiz.Catalog()
	options := make([]wizard.Option, 0, len(cat.GarmentTypes))
	for _, g := range cat.GarmentTypes {
		options = append(options, wizard.Option{ID: g, Label: g})
	}
	list := wizard.NewOptionList(options, false)

	d := wiz.Draft()
	if d.GarmentType != "" {
		list.SetSelected(d.GarmentType)
		list.SetCursorID(d.GarmentType)
	}
	list.Focus()

	ti := textinput.New()
	ti.Placeholder = "Describe your garment type..."
	ti.CharLimit = 60
	ti.SetWidth(modalContentWidth - 6)
	ti.SetValue(d.CustomGarment)

	return &GarmentStep{
		wiz:    wiz,
		list:   list,
		custom: ti,
	}
}

// Init initializes the garment step.
func (g *GarmentStep) Init() tea.Cmd {
	return nil
}

func (g *GarmentStep) isOther() bool {
	return g.wiz.Draft().GarmentType == catalog.OtherGarment
}

// Update handles messages for the garment step.
func (g *GarmentStep) Update(msg tea.Msg) tea.Cmd {
	key, isKey := msg.(tea.KeyPressMsg)
	if g.customFocus {
		if isKey {
			switch key.String() {
			case "enter":
				return g.submit()
			case "tab":
				return tabForward
			case "shift+tab", "up":
				return g.focusList()
			}
			g.err = ""
		}
		var cmd tea.Cmd
		g.custom, cmd = g.custom.Update(msg)
		if err := g.wiz.UpdateField(brief.StepGarmentType, brief.FieldCustomGarment, g.custom.Value()); err != nil {
			logger.Error("Updating custom garment: %v", err)
		}
		return cmd
	}

	if !isKey {
		return nil
	}
	switch key.String() {
	case "tab":
		if g.isOther() {
			return g.focusCustom()
		}
		return tabForward
	case "shift+tab":
		return tabBackward
	}

	id, chosen := g.list.Update(key)
	if !chosen {
		return nil
	}
	g.err = ""
	if err := g.wiz.UpdateField(brief.StepGarmentType, brief.FieldGarmentType, id); err != nil {
		logger.Error("Updating garment type: %v", err)
		return nil
	}
	if id == catalog.OtherGarment {
		return g.focusCustom()
	}
	if key.String() == "enter" {
		return g.submit()
	}
	return nil
}

func (g *GarmentStep) submit() tea.Cmd {
	if !g.wiz.CanAdvance() {
		if g.isOther() {
			g.err = "Describe the garment you have in mind"
		} else {
			g.err = "Pick a garment type"
		}
		return nil
	}
	g.err = ""
	return advance
}

func (g *GarmentStep) focusList() tea.Cmd {
	g.customFocus = false
	g.custom.Blur()
	g.list.Focus()
	return nil
}

func (g *GarmentStep) focusCustom() tea.Cmd {
	g.customFocus = true
	g.list.Blur()
	return g.custom.Focus()
}

// View renders the garment step content.
func (g *GarmentStep) View() string {
	var custom string
	if g.isOther() {
		custom = joinParts(
			"",
			theme.Current().S().Muted.Render("Custom garment"),
			fieldBox(g.custom.View(), modalContentWidth-2, g.customFocus),
		)
	}
	return joinParts(
		question("What type of garment?"),
		g.list.View(modalContentWidth),
		custom,
		errorLine(g.err),
	)
}

// SetSize updates the size of the garment step.
func (g *GarmentStep) SetSize(width, height int) {
	g.width = width
	g.height = height
	g.custom.SetWidth(width - 6)
}

// FocusFirst focuses the garment list.
func (g *GarmentStep) FocusFirst() tea.Cmd {
	return g.focusList()
}

// FocusLast focuses the custom input when visible, else the list.
func (g *GarmentStep) FocusLast() tea.Cmd {
	if g.isOther() {
		return g.focusCustom()
	}
	return g.focusList()
}

// Blur removes focus from the list and the custom input.
func (g *GarmentStep) Blur() {
	g.list.Blur()
	g.custom.Blur()
}
