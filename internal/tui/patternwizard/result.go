package patternwizard

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mark3labs/atelier/internal/generation"
	"github.com/mark3labs/atelier/internal/tui/theme"
	"github.com/mark3labs/atelier/internal/tui/wizard"
)

const buttonConfirm wizard.ButtonID = "confirm"

// ResultView renders a generation session and turns key presses into
// session events. It never mutates the session itself.
type ResultView struct {
	session *generation.Session
	keys    resultKeyMap
	spinner spinner.Model
	ticking bool
	frame   int // Gradient bar offset

	bar     *wizard.ButtonBar
	barKind generation.PhaseKind
	cursor  int // Row in fabrics followed by notions

	sheet      string // Rendered pattern notes
	sheetWidth int

	width  int
	height int
}

func newResultView(s *generation.Session) *ResultView {
	t := theme.Current()
	return &ResultView{
		session: s,
		keys:    defaultResultKeys(),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(t.Secondary))),
		),
		barKind: -1,
	}
}

// Session returns the session shown by the view.
func (r *ResultView) Session() *generation.Session {
	return r.session
}

// SetSize updates the available screen area.
func (r *ResultView) SetSize(width, height int) {
	r.width = width
	r.height = height
}

func (r *ResultView) generating() bool {
	switch r.session.Phase().Kind() {
	case generation.KindGeneratingDesign, generation.KindGeneratingPattern:
		return true
	}
	return false
}

// Sync brings the view in line with the session phase. It returns the
// spinner tick when a generating phase needs animating.
func (r *ResultView) Sync() tea.Cmd {
	kind := r.session.Phase().Kind()
	if kind != r.barKind {
		r.barKind = kind
		r.bar = r.buildBar(kind)
		r.cursor = 0
	}
	if p, ok := r.session.Phase().(generation.PatternReady); ok && r.bar != nil {
		cart := wizard.ButtonID(generation.ActionAddToCart.String())
		label := generation.ActionAddToCart.Label()
		if n := p.TotalSelected(); n > 0 {
			label = fmt.Sprintf("%s (%d)", label, n)
		}
		r.bar.SetLabel(cart, label)
		r.bar.SetEnabled(cart, p.TotalSelected() > 0)
	}
	if r.generating() && !r.ticking {
		r.ticking = true
		return r.spinner.Tick
	}
	return nil
}

func (r *ResultView) buildBar(kind generation.PhaseKind) *wizard.ButtonBar {
	action := func(a generation.Action) wizard.Button {
		return wizard.Button{ID: wizard.ButtonID(a.String()), Label: a.Label()}
	}
	switch kind {
	case generation.KindDesignReady:
		return wizard.NewButtonBar([]wizard.Button{
			action(generation.ActionRegenerate),
			action(generation.ActionEditPrompt),
			{ID: buttonConfirm, Label: "This is it →"},
		})
	case generation.KindPatternReady:
		return wizard.NewButtonBar([]wizard.Button{
			action(generation.ActionAddToCart),
			action(generation.ActionDownloadPattern),
			action(generation.ActionPrintPattern),
			action(generation.ActionViewMyPatterns),
			action(generation.ActionListOnMarketplace),
		})
	}
	return nil
}

// Update advances the spinner and gradient while generating.
func (r *ResultView) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(spinner.TickMsg); !ok {
		return nil
	}
	if !r.generating() {
		r.ticking = false
		return nil
	}
	r.frame++
	var cmd tea.Cmd
	r.spinner, cmd = r.spinner.Update(msg)
	return cmd
}

// HandleKey maps a key press to a session event, or nil.
func (r *ResultView) HandleKey(msg tea.KeyPressMsg) generation.Event {
	if r.bar != nil && r.bar.Focused() {
		switch msg.String() {
		case "tab", "right":
			if !r.bar.FocusNext() {
				r.bar.Blur()
			}
			return nil
		case "shift+tab", "left":
			if !r.bar.FocusPrev() {
				r.bar.Blur()
			}
			return nil
		case "enter", "space", " ":
			return r.buttonEvent(r.bar.FocusedButton())
		case "esc":
			r.bar.Blur()
			return nil
		}
	} else if r.bar != nil {
		switch msg.String() {
		case "tab":
			r.bar.FocusFirst()
			return nil
		case "shift+tab":
			r.bar.FocusLast()
			return nil
		}
	}

	switch p := r.session.Phase().(type) {
	case generation.DesignReady:
		if ev, ok := r.viewKey(msg); ok {
			return ev
		}
		switch {
		case key.Matches(msg, r.keys.Prev):
			return generation.CyclePrev{}
		case key.Matches(msg, r.keys.Next):
			return generation.CycleNext{}
		case key.Matches(msg, r.keys.Regenerate):
			return generation.Regenerate{}
		case key.Matches(msg, r.keys.EditPrompt):
			return generation.EditPrompt{}
		case key.Matches(msg, r.keys.Confirm), msg.String() == "enter":
			return generation.Confirm{}
		}
	case generation.PatternReady:
		return r.patternKey(msg, p)
	}
	return nil
}

// viewKey maps the number keys to a SetView event.
func (r *ResultView) viewKey(msg tea.KeyPressMsg) (generation.Event, bool) {
	for i, b := range r.keys.Views {
		if key.Matches(msg, b) {
			return generation.SetView{View: generation.Views[i]}, true
		}
	}
	return nil, false
}

func (r *ResultView) patternKey(msg tea.KeyPressMsg, p generation.PatternReady) generation.Event {
	if ev, ok := r.viewKey(msg); ok {
		return ev
	}

	switch {
	case key.Matches(msg, r.keys.Up):
		if r.cursor > 0 {
			r.cursor--
		}
	case key.Matches(msg, r.keys.Down):
		if r.cursor < r.rowCount()-1 {
			r.cursor++
		}
	case key.Matches(msg, r.keys.Toggle), msg.String() == "enter":
		return r.toggleAtCursor()
	case key.Matches(msg, r.keys.SelectAll):
		return generation.SelectAll{}
	case key.Matches(msg, r.keys.DeselectAll):
		return generation.DeselectAll{}
	case key.Matches(msg, r.keys.Cart):
		return generation.Trigger{Action: generation.ActionAddToCart}
	case key.Matches(msg, r.keys.Download):
		return generation.Trigger{Action: generation.ActionDownloadPattern}
	case key.Matches(msg, r.keys.Print):
		return generation.Trigger{Action: generation.ActionPrintPattern}
	case key.Matches(msg, r.keys.MyPatterns):
		return generation.Trigger{Action: generation.ActionViewMyPatterns}
	case key.Matches(msg, r.keys.Marketplace):
		return generation.Trigger{Action: generation.ActionListOnMarketplace}
	}
	return nil
}

func (r *ResultView) rowCount() int {
	cat := r.session.Catalog()
	return len(cat.Fabrics) + len(cat.Notions)
}

func (r *ResultView) toggleAtCursor() generation.Event {
	cat := r.session.Catalog()
	if r.cursor < len(cat.Fabrics) {
		return generation.ToggleFabric{ID: cat.Fabrics[r.cursor].ID}
	}
	if i := r.cursor - len(cat.Fabrics); i < len(cat.Notions) {
		return generation.ToggleNotion{ID: cat.Notions[i].ID}
	}
	return nil
}

func (r *ResultView) buttonEvent(id wizard.ButtonID) generation.Event {
	switch id {
	case buttonConfirm:
		return generation.Confirm{}
	case wizard.ButtonID(generation.ActionRegenerate.String()):
		return generation.Regenerate{}
	case wizard.ButtonID(generation.ActionEditPrompt.String()):
		return generation.EditPrompt{}
	}
	for _, a := range []generation.Action{
		generation.ActionAddToCart,
		generation.ActionDownloadPattern,
		generation.ActionPrintPattern,
		generation.ActionViewMyPatterns,
		generation.ActionListOnMarketplace,
	} {
		if id == wizard.ButtonID(a.String()) {
			return generation.Trigger{Action: a}
		}
	}
	return nil
}

// View renders the current phase.
func (r *ResultView) View() string {
	switch p := r.session.Phase().(type) {
	case generation.GeneratingDesign:
		return r.viewGenerating(
			"AI.TELIER is crafting your design",
			"Analyzing your brief and generating garment visualization",
		)
	case generation.GeneratingPattern:
		return r.viewGenerating(
			"Generating your professional pattern...",
			"Converting design into technical specifications",
		)
	case generation.DesignReady:
		return r.viewDesign(p)
	case generation.PatternReady:
		return r.viewPattern(p)
	}
	return ""
}

func (r *ResultView) viewGenerating(title, subtitle string) string {
	t := theme.Current()
	s := t.S()
	in := r.session.Input()

	return lipgloss.JoinVertical(lipgloss.Center,
		r.spinner.View()+" "+s.Heading.Render(title),
		s.Muted.Render(subtitle),
		"",
		theme.GradientBar(40, r.frame, t.GradientStart, t.GradientEnd),
		"",
		s.Subtle.Render(in.ProjectTitle+" · "+in.Garment),
		"",
		wizard.RenderHintBar("ctrl+c", "quit"),
	)
}

// viewTabs renders the four viewing angles with the active one highlighted.
func viewTabs(active generation.View) string {
	s := theme.Current().S()
	tabs := make([]string, 0, len(generation.Views))
	for i, v := range generation.Views {
		label := fmt.Sprintf("%d %s", i+1, strings.ToUpper(v.String()))
		if v == active {
			tabs = append(tabs, s.TabActive.Render(label))
		} else {
			tabs = append(tabs, s.Tab.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (r *ResultView) viewDesign(p generation.DesignReady) string {
	s := theme.Current().S()
	in := r.session.Input()

	art := s.Panel.Width(40).Align(lipgloss.Center).Render(preview(in.Garment, p.View))

	dots := make([]string, len(generation.Views))
	for i, v := range generation.Views {
		if v == p.View {
			dots[i] = s.Selected.Render("●")
		} else {
			dots[i] = s.Muted.Render("○")
		}
	}

	return lipgloss.JoinVertical(lipgloss.Center,
		s.Heading.Render("Your Design"),
		s.Muted.Render(in.ProjectTitle+" · "+in.Garment),
		"",
		viewTabs(p.View),
		art,
		s.Muted.Render("◀ ")+strings.Join(dots, " ")+s.Muted.Render(" ▶"),
		"",
		r.bar.Render(),
		"",
		wizard.RenderHintBar(hintPairs(r.keys.Prev, r.keys.Next, r.keys.Views[0], r.keys.Regenerate, r.keys.EditPrompt, r.keys.Confirm)...),
	)
}

// patternNotes is the markdown summary printed on the pattern sheet.
func (r *ResultView) patternNotes() string {
	in := r.session.Input()
	var b strings.Builder
	fmt.Fprintf(&b, "**Garment:** %s  \n", in.Garment)
	fmt.Fprintf(&b, "**Measurements:** %s  \n", in.Measurements)
	if len(in.Inspirations) > 0 {
		fmt.Fprintf(&b, "**Inspirations:** %s  \n", strings.Join(in.Inspirations, ", "))
	}
	fmt.Fprintf(&b, "\n%s\n", in.Description)
	return b.String()
}

func (r *ResultView) renderedNotes(width int) string {
	if r.sheet == "" || r.sheetWidth != width {
		r.sheet = renderMarkdown(r.patternNotes(), width)
		r.sheetWidth = width
	}
	return r.sheet
}

func (r *ResultView) viewPattern(p generation.PatternReady) string {
	t := theme.Current()
	s := t.S()
	in := r.session.Input()
	cat := r.session.Catalog()

	const leftWidth = 46
	left := lipgloss.JoinVertical(lipgloss.Left,
		viewTabs(p.View),
		s.Panel.Width(leftWidth).Align(lipgloss.Center).Render(preview(in.Garment, p.View)),
		lipgloss.NewStyle().Width(leftWidth).Render(r.renderedNotes(leftWidth)),
	)

	row := func(i int, selected bool, swatch, name, detail string) string {
		cursor := "  "
		if i == r.cursor && (r.bar == nil || !r.bar.Focused()) {
			cursor = s.Cursor.Render("› ")
		}
		marker := s.Muted.Render("[ ]")
		if selected {
			marker = s.Selected.Render("[x]")
		}
		sw := " "
		if swatch != "" {
			sw = lipgloss.NewStyle().Foreground(lipgloss.Color(swatch)).Render("■")
		}
		return cursor + marker + " " + sw + " " + s.Text.Render(name) + "\n      " + s.Muted.Render(detail)
	}

	rows := []string{
		s.SectionTitle.Render("RECOMMENDED FABRICS"),
		s.Subtle.Render("Sourced from " + cat.FabricSupplier),
	}
	for i, f := range cat.Fabrics {
		rows = append(rows, row(i, p.HasFabric(f.ID), f.Color, f.Name, f.Type+" · "+f.Yardage))
	}
	rows = append(rows, "", s.SectionTitle.Render("NOTIONS & THREAD"))
	for i, n := range cat.Notions {
		rows = append(rows, row(len(cat.Fabrics)+i, p.HasNotion(n.ID), "", n.Name, n.Detail+" · "+n.Quantity))
	}
	rows = append(rows, "", s.Text.Render(fmt.Sprintf("Selected: %d items", p.TotalSelected())))
	right := lipgloss.NewStyle().PaddingLeft(4).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	return lipgloss.JoinVertical(lipgloss.Left,
		s.Heading.Render(in.Heading()),
		s.Muted.Render(in.Garment),
		"",
		body,
		"",
		s.Success.Render("✓ Your Pattern Has Been Saved"),
		s.Muted.Render("Find it anytime in My Patterns"),
		"",
		r.bar.Render(),
		"",
		wizard.RenderHintBar(hintPairs(
			r.keys.Views[0], r.keys.Down, r.keys.Toggle, r.keys.SelectAll, r.keys.DeselectAll,
			r.keys.Cart, r.keys.Download, r.keys.Print, r.keys.MyPatterns, r.keys.Marketplace,
		)...),
	)
}
