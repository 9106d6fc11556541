package patternwizard

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"github.com/mark3labs/atelier/internal/brief"
	"github.com/mark3labs/atelier/internal/tui/theme"
)

// ReviewStep shows the assembled brief before generation.
type ReviewStep struct {
	wiz      *brief.Wizard
	viewport viewport.Model
	focused  bool
	width    int
	height   int
}

// NewReviewStep creates the review step for the current draft.
func NewReviewStep(wiz *brief.Wizard) *ReviewStep {
	vp := viewport.New(
		viewport.WithWidth(modalContentWidth),
		viewport.WithHeight(12),
	)
	vp.MouseWheelEnabled = true

	r := &ReviewStep{
		wiz:      wiz,
		viewport: vp,
		focused:  true,
		width:    modalContentWidth,
		height:   12,
	}
	r.refresh()
	return r
}

// Markdown is the brief as the markdown document shown in the viewport.
func (r *ReviewStep) Markdown() string {
	return briefMarkdown(r.wiz.Snapshot())
}

func briefMarkdown(snap brief.Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", snap.Heading())
	for _, item := range snap.ReviewItems() {
		if item.Multiline {
			fmt.Fprintf(&b, "**%s**\n\n> %s\n\n", item.Label, strings.ReplaceAll(item.Value, "\n", "\n> "))
			continue
		}
		fmt.Fprintf(&b, "**%s**  \n%s\n\n", item.Label, item.Value)
	}
	return b.String()
}

func (r *ReviewStep) refresh() {
	r.viewport.SetContent(renderMarkdown(r.Markdown(), r.width))
}

// Init initializes the review step.
func (r *ReviewStep) Init() tea.Cmd {
	return nil
}

// Update handles messages for the review step.
func (r *ReviewStep) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyPressMsg); ok {
		switch msg.String() {
		case "enter":
			return advance
		case "tab":
			return tabForward
		case "shift+tab":
			return tabBackward
		}
	}

	var cmd tea.Cmd
	r.viewport, cmd = r.viewport.Update(msg)
	return cmd
}

// View renders the review step content.
func (r *ReviewStep) View() string {
	s := theme.Current().S()
	return joinParts(
		s.Muted.Render("Review your brief before we start generating."),
		r.viewport.View(),
	)
}

// SetSize updates the dimensions of the review step.
func (r *ReviewStep) SetSize(width, height int) {
	r.width = width
	r.height = height
	r.viewport.SetWidth(width)
	vh := height - 2
	if vh < 5 {
		vh = 5
	}
	r.viewport.SetHeight(vh)
	r.refresh()
}

// FocusFirst gives the viewport focus.
func (r *ReviewStep) FocusFirst() tea.Cmd {
	r.focused = true
	return nil
}

// FocusLast gives the viewport focus.
func (r *ReviewStep) FocusLast() tea.Cmd {
	return r.FocusFirst()
}

// Blur removes focus from the viewport.
func (r *ReviewStep) Blur() {
	r.focused = false
}
