package patternwizard

import (
	"fmt"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mark3labs/atelier/internal/brief"
	"github.com/mark3labs/atelier/internal/catalog"
	"github.com/mark3labs/atelier/internal/logger"
	"github.com/mark3labs/atelier/internal/tui/theme"
	"github.com/mark3labs/atelier/internal/tui/wizard"
)

const (
	modeSavedID  = "saved"
	modeCustomID = "custom"
)

type measurementsFocus int

const (
	focusMode measurementsFocus = iota
	focusProfiles
	focusInputs
)

// MeasurementsStep chooses between a saved profile and one-time
// measurements typed in inches.
type MeasurementsStep struct {
	wiz      *brief.Wizard
	fields   []catalog.MeasurementField
	modes    *wizard.OptionList
	profiles *wizard.OptionList
	inputs   []textinput.Model
	focus    measurementsFocus
	inputIdx int
	width    int
	height   int
	err      string
}

// NewMeasurementsStep creates the measurements step, restoring the draft.
func NewMeasurementsStep(wiz *brief.Wizard) *MeasurementsStep {
	cat := wiz.Catalog()
	d := wiz.Draft()

	modes := wizard.NewOptionList([]wizard.Option{
		{ID: modeSavedID, Label: "Use Saved Profile", Detail: "Select from your saved measurement profiles"},
		{ID: modeCustomID, Label: "One-Time Measurements", Detail: "Enter measurements for this pattern only"},
	}, false)
	switch d.MeasurementMode {
	case brief.ModeSaved:
		modes.SetSelected(modeSavedID)
		modes.SetCursorID(modeSavedID)
	case brief.ModeCustom:
		modes.SetSelected(modeCustomID)
		modes.SetCursorID(modeCustomID)
	}
	modes.Focus()

	profileOptions := make([]wizard.Option, 0, len(cat.Profiles))
	for _, p := range cat.Profiles {
		profileOptions = append(profileOptions, wizard.Option{
			ID:     p.ID,
			Label:  p.Name,
			Detail: fmt.Sprintf("Bust %s · Waist %s · Hips %s", p.Bust, p.Waist, p.Hips),
		})
	}
	profiles := wizard.NewOptionList(profileOptions, false)
	if d.SelectedProfile != "" {
		profiles.SetSelected(d.SelectedProfile)
		profiles.SetCursorID(d.SelectedProfile)
	}

	t := theme.Current()
	inputs := make([]textinput.Model, len(cat.Measurements))
	for i, f := range cat.Measurements {
		ti := textinput.New()
		ti.Placeholder = "0"
		ti.CharLimit = 6
		ti.SetWidth(8)
		ti.Prompt = ""
		ti.SetValue(d.CustomMeasurements[f.Key])
		ti.SetStyles(textinput.Styles{
			Focused: textinput.StyleState{
				Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgBright)),
				Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted)),
			},
			Blurred: textinput.StyleState{
				Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgBase)),
				Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgSubtle)),
			},
			Cursor: textinput.CursorStyle{
				Color: lipgloss.Color(t.Secondary),
				Shape: tea.CursorBar,
				Blink: true,
			},
		})
		inputs[i] = ti
	}

	return &MeasurementsStep{
		wiz:      wiz,
		fields:   cat.Measurements,
		modes:    modes,
		profiles: profiles,
		inputs:   inputs,
	}
}

// Init initializes the measurements step.
func (m *MeasurementsStep) Init() tea.Cmd {
	return nil
}

func (m *MeasurementsStep) mode() brief.MeasurementMode {
	return m.wiz.Draft().MeasurementMode
}

// Update handles messages for the measurements step.
func (m *MeasurementsStep) Update(msg tea.Msg) tea.Cmd {
	key, isKey := msg.(tea.KeyPressMsg)
	switch m.focus {
	case focusMode:
		if !isKey {
			return nil
		}
		return m.updateMode(key)
	case focusProfiles:
		if !isKey {
			return nil
		}
		return m.updateProfiles(key)
	default:
		return m.updateInputs(msg)
	}
}

func (m *MeasurementsStep) updateMode(key tea.KeyPressMsg) tea.Cmd {
	switch key.String() {
	case "tab":
		if m.mode() == brief.ModeUnset {
			return tabForward
		}
		return m.focusDetail(true)
	case "shift+tab":
		return tabBackward
	}
	id, chosen := m.modes.Update(key)
	if !chosen {
		return nil
	}
	m.err = ""
	mode := brief.ModeSaved
	if id == modeCustomID {
		mode = brief.ModeCustom
	}
	m.wiz.SetMeasurementMode(mode)
	return m.focusDetail(true)
}

func (m *MeasurementsStep) updateProfiles(key tea.KeyPressMsg) tea.Cmd {
	switch key.String() {
	case "tab":
		return tabForward
	case "shift+tab", "esc":
		return m.focusModes()
	}
	id, chosen := m.profiles.Update(key)
	if !chosen {
		return nil
	}
	if err := m.wiz.UpdateField(brief.StepMeasurements, brief.FieldSelectedProfile, id); err != nil {
		logger.Error("Selecting profile: %v", err)
		return nil
	}
	m.err = ""
	if key.String() == "enter" {
		return m.submit()
	}
	return nil
}

func (m *MeasurementsStep) updateInputs(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "tab", "down":
			if m.inputIdx < len(m.inputs)-1 {
				return m.focusInput(m.inputIdx + 1)
			}
			if key.String() == "tab" {
				return tabForward
			}
			return nil
		case "shift+tab", "up":
			if m.inputIdx > 0 {
				return m.focusInput(m.inputIdx - 1)
			}
			return m.focusModes()
		case "enter":
			if m.inputIdx < len(m.inputs)-1 {
				return m.focusInput(m.inputIdx + 1)
			}
			return m.submit()
		}
		m.err = ""
	}

	if len(m.inputs) == 0 {
		return nil
	}
	var cmd tea.Cmd
	m.inputs[m.inputIdx], cmd = m.inputs[m.inputIdx].Update(msg)
	m.wiz.SetCustomMeasurement(m.fields[m.inputIdx].Key, m.inputs[m.inputIdx].Value())
	return cmd
}

func (m *MeasurementsStep) submit() tea.Cmd {
	if !m.wiz.CanAdvance() {
		switch m.mode() {
		case brief.ModeSaved:
			m.err = "Select a saved profile"
		case brief.ModeCustom:
			m.err = "Bust, waist and hips are required"
		default:
			m.err = "Choose how to provide measurements"
		}
		return nil
	}
	m.err = ""
	return advance
}

func (m *MeasurementsStep) blurAll() {
	m.modes.Blur()
	m.profiles.Blur()
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
}

func (m *MeasurementsStep) focusModes() tea.Cmd {
	m.blurAll()
	m.focus = focusMode
	m.modes.Focus()
	return nil
}

// focusDetail focuses the profile list or an input, depending on the mode.
func (m *MeasurementsStep) focusDetail(first bool) tea.Cmd {
	switch m.mode() {
	case brief.ModeSaved:
		m.blurAll()
		m.focus = focusProfiles
		m.profiles.Focus()
		return nil
	case brief.ModeCustom:
		if len(m.inputs) == 0 {
			return m.focusModes()
		}
		if first {
			return m.focusInput(0)
		}
		return m.focusInput(len(m.inputs) - 1)
	}
	return m.focusModes()
}

func (m *MeasurementsStep) focusInput(i int) tea.Cmd {
	m.blurAll()
	m.focus = focusInputs
	m.inputIdx = i
	return m.inputs[i].Focus()
}

// View renders the measurements step content.
func (m *MeasurementsStep) View() string {
	s := theme.Current().S()

	var detail string
	switch m.mode() {
	case brief.ModeSaved:
		detail = joinParts("", s.SectionTitle.Render("Saved profiles"), m.profiles.View(modalContentWidth))
	case brief.ModeCustom:
		rows := []string{"", s.SectionTitle.Render("Measurements (in)")}
		for i, f := range m.fields {
			label := f.Label
			if f.Required {
				label += " *"
			}
			labelStyle := s.Muted
			if m.focus == focusInputs && i == m.inputIdx {
				labelStyle = s.Cursor
			}
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
				labelStyle.Width(18).Render(label),
				m.inputs[i].View(),
				s.Subtle.Render(" in"),
			))
		}
		detail = lipgloss.JoinVertical(lipgloss.Left, rows...)
	}

	return joinParts(
		question("Select your measurements"),
		m.modes.View(modalContentWidth),
		detail,
		errorLine(m.err),
	)
}

// SetSize updates the size of the measurements step.
func (m *MeasurementsStep) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// FocusFirst focuses the mode list.
func (m *MeasurementsStep) FocusFirst() tea.Cmd {
	return m.focusModes()
}

// FocusLast focuses the last field of the active mode.
func (m *MeasurementsStep) FocusLast() tea.Cmd {
	return m.focusDetail(false)
}

// Blur removes focus from every field.
func (m *MeasurementsStep) Blur() {
	m.blurAll()
}
