// Package patternwizard is the Bubble Tea program that walks the user
// through a pattern brief and then shows the simulated generation result.
package patternwizard

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mark3labs/atelier/internal/brief"
	"github.com/mark3labs/atelier/internal/catalog"
	"github.com/mark3labs/atelier/internal/generation"
	"github.com/mark3labs/atelier/internal/hooks"
	"github.com/mark3labs/atelier/internal/logger"
	"github.com/mark3labs/atelier/internal/tui/theme"
	"github.com/mark3labs/atelier/internal/tui/wizard"
)

// Modal layout constants
const (
	modalWidth        = 70                                                       // Total modal width including border
	modalPadding      = 2                                                        // Horizontal padding on each side
	modalBorderWidth  = 1                                                        // Border width on each side
	modalContentWidth = modalWidth - (modalPadding * 2) - (modalBorderWidth * 2) // 64
)

// Options configures the program.
type Options struct {
	Catalog *catalog.Catalog // Defaults to catalog.Default()
	Hooks   HookRunner       // May be nil
	Delays  generation.Delays
	CartURL string
	WorkDir string
}

// Outcome reports how the program ended.
type Outcome int

const (
	OutcomeQuit         Outcome = iota // ctrl+c
	OutcomeBackToStudio                // esc on the first step
)

// Model is the main BubbleTea model for the pattern wizard.
type Model struct {
	opts Options
	ctx  context.Context
	wiz  *brief.Wizard

	width  int
	height int

	current       step
	bars          map[brief.Step]*wizard.ButtonBar // Cached per step so focus survives re-renders
	buttonFocused bool

	result *ResultView // Non-nil while a generation session is shown
	toast  *Toast

	outcome Outcome
	leaving bool // Back to studio requested, quitting after the hook

	// after schedules a delayed message; swapped out in tests.
	after func(time.Duration, func(time.Time) tea.Msg) tea.Cmd
}

// New creates the model at step 1 with an empty brief.
func New(ctx context.Context, opts Options) *Model {
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default()
	}
	if opts.Delays.Design <= 0 || opts.Delays.Pattern <= 0 {
		opts.Delays = generation.DefaultDelays()
	}

	m := &Model{
		opts:  opts,
		ctx:   ctx,
		bars:  make(map[brief.Step]*wizard.ButtonBar),
		toast: NewToast(),
		after: tea.Tick,
	}
	m.wiz = brief.NewWizard(opts.Catalog, func() { m.leaving = true })
	m.initCurrentStep()
	return m
}

// Run is the entry point for the pattern wizard. It runs a standalone
// BubbleTea program and reports how it ended.
func Run(ctx context.Context, opts Options) (Outcome, error) {
	m := New(ctx, opts)
	p := tea.NewProgram(m, tea.WithContext(ctx))

	finalModel, err := p.Run()
	if err != nil {
		return OutcomeQuit, fmt.Errorf("pattern wizard failed: %w", err)
	}
	wm, ok := finalModel.(*Model)
	if !ok {
		return OutcomeQuit, fmt.Errorf("unexpected model type")
	}
	if wm.result != nil {
		wm.result.session.Close()
	}
	return wm.outcome, nil
}

// Wizard exposes the brief controller.
func (m *Model) Wizard() *brief.Wizard { return m.wiz }

// Result returns the active result view, or nil while in the wizard.
func (m *Model) Result() *ResultView { return m.result }

// Leaving reports whether the user asked to go back to the studio.
func (m *Model) Leaving() bool { return m.leaving }

// Outcome reports how the program ended.
func (m *Model) Outcome() Outcome { return m.outcome }

// Toast returns the toast component.
func (m *Model) Toast() *Toast { return m.toast }

// Init starts the first step's cursor blink.
func (m *Model) Init() tea.Cmd {
	return m.current.Init()
}

// Update handles messages for the wizard.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, nil

	case PhaseElapsedMsg:
		if m.result == nil || msg.SessionID != m.result.session.ID() {
			logger.Debug("Dropping timer for inactive session %s", msg.SessionID)
			return m, nil
		}
		return m, m.apply(generation.Elapsed{Token: msg.Token})

	case HookFinishedMsg:
		if m.leaving && msg.Name == hooks.BackToStudio {
			return m, tea.Quit
		}
		if text := m.toastText(msg); text != "" {
			return m, m.toast.Show(text)
		}
		return m, nil

	case ToastDismissMsg:
		m.toast.Update(msg)
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			m.outcome = OutcomeQuit
			if m.result != nil {
				m.result.session.Close()
			}
			return m, tea.Quit
		}
		if m.leaving {
			return m, nil
		}
		if m.result != nil {
			return m, m.apply(m.result.HandleKey(msg))
		}
		return m.handleWizardKey(msg)

	case advanceMsg:
		return m.goNext()

	case wizard.TabExitForwardMsg:
		m.focusButtons(true)
		return m, nil

	case wizard.TabExitBackwardMsg:
		m.focusButtons(false)
		return m, nil
	}

	if m.result != nil {
		return m, m.result.Update(msg)
	}
	if m.current != nil {
		cmd := m.current.Update(msg)
		m.syncButtons()
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleWizardKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if m.buttonFocused {
		bar := m.buttonBar()
		switch msg.String() {
		case "tab", "right":
			if !bar.FocusNext() {
				return m, m.focusContent(true)
			}
			return m, nil
		case "shift+tab", "left":
			if !bar.FocusPrev() {
				return m, m.focusContent(false)
			}
			return m, nil
		case "enter", "space", " ":
			return m.activateButton(bar.FocusedButton())
		case "esc":
			return m.goBack()
		}
		return m, nil
	}

	if msg.String() == "esc" {
		if d, ok := m.current.(*DescriptionStep); ok && d.LibraryOpen() {
			return m, d.Update(msg)
		}
		return m.goBack()
	}

	cmd := m.current.Update(msg)
	m.syncButtons()
	return m, cmd
}

// apply feeds ev to the session and turns the outcome into commands.
func (m *Model) apply(ev generation.Event) tea.Cmd {
	if ev == nil || m.result == nil {
		return nil
	}
	out := m.result.session.Apply(ev)
	if !out.Changed {
		return nil
	}

	var cmds []tea.Cmd
	if out.Action != generation.ActionNone {
		cmds = append(cmds, m.runHook(out.Action.String()))
	}
	if out.Exit {
		logger.Info("Leaving generation to edit the prompt")
		m.result = nil
		m.wiz.EditPrompt()
		cmds = append(cmds, m.initCurrentStep())
		return tea.Batch(cmds...)
	}
	if out.Schedule != nil {
		cmds = append(cmds, m.schedule(*out.Schedule))
	}
	cmds = append(cmds, m.result.Sync())
	return tea.Batch(cmds...)
}

// schedule starts the timer for a generating phase.
func (m *Model) schedule(s generation.Schedule) tea.Cmd {
	id := m.result.session.ID()
	return m.after(s.Delay, func(time.Time) tea.Msg {
		return PhaseElapsedMsg{SessionID: id, Token: s.Token}
	})
}

// startGeneration submits the brief and opens the result screen.
func (m *Model) startGeneration() tea.Cmd {
	snap, ok := m.wiz.Submit()
	if !ok {
		return nil
	}
	s := generation.NewSession(snap, m.opts.Catalog, m.opts.Delays)
	m.result = newResultView(s)
	m.result.SetSize(m.width, m.height)
	m.current = nil
	m.buttonFocused = false

	out := s.Start()
	var cmds []tea.Cmd
	if out.Schedule != nil {
		cmds = append(cmds, m.schedule(*out.Schedule))
	}
	cmds = append(cmds, m.result.Sync())
	return tea.Batch(cmds...)
}

// initCurrentStep builds the component for the wizard's current step.
func (m *Model) initCurrentStep() tea.Cmd {
	m.buttonFocused = false
	switch m.wiz.Step() {
	case brief.StepProjectTitle:
		m.current = NewTitleStep(m.wiz)
	case brief.StepGarmentType:
		m.current = NewGarmentStep(m.wiz)
	case brief.StepDescription:
		m.current = NewDescriptionStep(m.wiz)
	case brief.StepMeasurements:
		m.current = NewMeasurementsStep(m.wiz)
	case brief.StepReview:
		m.current = NewReviewStep(m.wiz)
	}
	if bar := m.bars[m.wiz.Step()]; bar != nil {
		bar.Blur()
	}
	m.updateSizes()
	m.syncButtons()
	return m.current.Init()
}

func (m *Model) goNext() (tea.Model, tea.Cmd) {
	if m.result != nil {
		return m, nil
	}
	if m.wiz.Step() == brief.StepReview {
		return m, m.startGeneration()
	}
	if !m.wiz.GoNext() {
		return m, nil
	}
	return m, m.initCurrentStep()
}

func (m *Model) goBack() (tea.Model, tea.Cmd) {
	if m.wiz.GoBack() {
		return m, m.initCurrentStep()
	}
	if m.leaving {
		logger.Info("Returning to studio")
		m.outcome = OutcomeBackToStudio
		if cmd := m.runHook(hooks.BackToStudio); cmd != nil {
			// Quit once the hook reports back
			return m, cmd
		}
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) activateButton(id wizard.ButtonID) (tea.Model, tea.Cmd) {
	switch id {
	case wizard.ButtonBack:
		return m.goBack()
	case wizard.ButtonNext:
		return m.goNext()
	}
	return m, nil
}

// buttonBar returns the cached bar for the current step, creating it once.
func (m *Model) buttonBar() *wizard.ButtonBar {
	s := m.wiz.Step()
	if bar, ok := m.bars[s]; ok {
		return bar
	}
	nextLabel := "Next →"
	if s == brief.StepReview {
		nextLabel = "Generate Pattern"
	}
	bar := wizard.NewButtonBar(wizard.CreateBackNextButtons(true, m.wiz.CanAdvance(), nextLabel))
	bar.SetWidth(modalContentWidth)
	m.bars[s] = bar
	return bar
}

// syncButtons enables Next only while the step predicate holds.
func (m *Model) syncButtons() {
	if m.result != nil {
		return
	}
	m.buttonBar().SetEnabled(wizard.ButtonNext, m.wiz.CanAdvance())
}

func (m *Model) focusButtons(first bool) {
	if m.current == nil {
		return
	}
	bar := m.buttonBar()
	m.buttonFocused = true
	m.current.Blur()
	if first {
		bar.FocusFirst()
	} else {
		bar.FocusLast()
	}
}

func (m *Model) focusContent(first bool) tea.Cmd {
	m.buttonFocused = false
	m.buttonBar().Blur()
	if first {
		return m.current.FocusFirst()
	}
	return m.current.FocusLast()
}

// getModalContentSize returns the internal content dimensions for the modal.
func (m *Model) getModalContentSize() (width, height int) {
	width = modalContentWidth
	height = m.height - 4
	if height < 20 {
		height = 20
	}
	if height > 40 {
		height = 40
	}
	// Subtract modal chrome: padding, border, header and hint
	height -= 12
	if height < 10 {
		height = 10
	}
	return width, height
}

func (m *Model) updateSizes() {
	if m.result != nil {
		m.result.SetSize(m.width, m.height)
	}
	if m.current != nil {
		w, h := m.getModalContentSize()
		m.current.SetSize(w, h)
	}
}

// View renders the wizard or the result screen.
func (m *Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	if m.width == 0 || m.height == 0 {
		view.Content = lipgloss.NewLayer("")
		return view
	}

	var content string
	if m.result != nil {
		content = m.result.View()
	} else {
		content = m.renderStep()
	}

	centered := lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)

	canvas := uv.NewScreenBuffer(m.width, m.height)
	uv.NewStyledString(centered).Draw(canvas, uv.Rectangle{
		Min: uv.Position{X: 0, Y: 0},
		Max: uv.Position{X: m.width, Y: m.height},
	})

	if toast := m.toast.View(m.width); toast != "" {
		tw := lipgloss.Width(toast)
		th := lipgloss.Height(toast)
		x := m.width - tw - 2
		if x < 0 {
			x = 0
		}
		y := m.height - th - 1
		if y < 0 {
			y = 0
		}
		uv.NewStyledString(toast).Draw(canvas, uv.Rectangle{
			Min: uv.Position{X: x, Y: y},
			Max: uv.Position{X: x + tw, Y: y + th},
		})
	}

	view.Content = lipgloss.NewLayer(canvas.Render())
	return view
}

// renderStep renders the current step inside the wizard modal.
func (m *Model) renderStep() string {
	t := theme.Current()
	s := t.S()
	cur := m.wiz.Step()

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		s.HeaderTitle.Render("Generate Pattern"),
		"  ",
		s.StepCounter.Render(fmt.Sprintf("Step %d of %d · %s", cur, brief.TotalSteps, cur)),
	)

	progress := make([]string, 0, brief.TotalSteps)
	for i := brief.StepProjectTitle; i <= brief.StepReview; i++ {
		switch {
		case i < cur:
			progress = append(progress, s.Success.Render("━━━━"))
		case i == cur:
			progress = append(progress, s.Selected.Render("━━━━"))
		default:
			progress = append(progress, s.Subtle.Render("━━━━"))
		}
	}

	var stepContent string
	if m.current != nil {
		stepContent = m.current.View()
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.JoinHorizontal(lipgloss.Top, progress...),
		"",
		stepContent,
		"",
		m.buttonBar().Render(),
		"",
		m.hint(),
	)

	modalStyle := lipgloss.NewStyle().
		Width(modalWidth).
		Padding(modalPadding).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(t.BorderDefault))

	return modalStyle.Render(content)
}

// hint returns the key hints for the current step.
func (m *Model) hint() string {
	back := "back"
	if m.wiz.Step() == brief.StepProjectTitle {
		back = "studio"
	}
	if m.buttonFocused {
		return wizard.RenderHintBar("tab", "navigate", "enter", "select", "esc", back)
	}
	switch cur := m.current.(type) {
	case *GarmentStep:
		return wizard.RenderHintBar("↑↓", "navigate", "space", "select", "enter", "next", "esc", back)
	case *DescriptionStep:
		if cur.LibraryOpen() {
			return ""
		}
		return wizard.RenderHintBar("ctrl+d", "next", "ctrl+l", "library", "ctrl+e", "editor", "esc", back)
	case *MeasurementsStep:
		return wizard.RenderHintBar("↑↓", "navigate", "space", "select", "tab", "next field", "esc", back)
	case *ReviewStep:
		return wizard.RenderHintBar("↑↓", "scroll", "enter", "generate", "tab", "buttons", "esc", back)
	}
	return wizard.RenderHintBar("enter", "next", "tab", "buttons", "esc", back)
}
