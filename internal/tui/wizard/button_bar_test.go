package wizard

import (
	"strings"
	"testing"

	"github.com/mark3labs/atelier/internal/tui/testfixtures"
	"github.com/stretchr/testify/require"
)

func threeButtons() *ButtonBar {
	return NewButtonBar([]Button{
		{ID: "regenerate", Label: "Regenerate"},
		{ID: "edit", Label: "Edit Prompt"},
		{ID: "confirm", Label: "This is it"},
	})
}

func TestButtonBar_FocusNavigation(t *testing.T) {
	bar := threeButtons()
	require.False(t, bar.Focused())
	require.Equal(t, ButtonNone, bar.FocusedButton())

	require.True(t, bar.FocusFirst())
	require.Equal(t, ButtonID("regenerate"), bar.FocusedButton())

	require.True(t, bar.FocusNext())
	require.True(t, bar.FocusNext())
	require.Equal(t, ButtonID("confirm"), bar.FocusedButton())
	require.False(t, bar.FocusNext(), "no wraparound")
	require.Equal(t, ButtonID("confirm"), bar.FocusedButton())

	require.True(t, bar.FocusPrev())
	require.Equal(t, ButtonID("edit"), bar.FocusedButton())

	bar.Blur()
	require.False(t, bar.Focused())

	require.True(t, bar.FocusLast())
	require.Equal(t, ButtonID("confirm"), bar.FocusedButton())
}

func TestButtonBar_DisabledSkipped(t *testing.T) {
	bar := threeButtons()
	bar.SetEnabled("edit", false)
	require.False(t, bar.Enabled("edit"))
	require.True(t, bar.Enabled("confirm"))
	require.False(t, bar.Enabled("missing"))

	bar.FocusFirst()
	require.True(t, bar.FocusNext())
	require.Equal(t, ButtonID("confirm"), bar.FocusedButton(), "disabled button skipped")

	require.False(t, bar.Focus("edit"))
	require.True(t, bar.Focus("regenerate"))
}

func TestButtonBar_DisablingFocusedMovesFocus(t *testing.T) {
	bar := NewButtonBar(CreateBackNextButtons(true, true, "Next →"))
	bar.FocusLast()
	require.Equal(t, ButtonNext, bar.FocusedButton())

	bar.SetEnabled(ButtonNext, false)
	require.Equal(t, ButtonBack, bar.FocusedButton())

	bar.SetEnabled(ButtonBack, false)
	require.False(t, bar.Focused())
	require.False(t, bar.FocusFirst())
}

func TestButtonBar_Render(t *testing.T) {
	bar := NewButtonBar(CreateBackNextButtons(true, false, "Next →"))
	bar.SetWidth(testfixtures.TestTermWidth)
	out := testfixtures.Plain(bar.Render())
	require.Contains(t, out, "← Back")
	require.Contains(t, out, "Next →")
	require.Equal(t, 1, len(strings.Split(out, "\n")))

	require.Empty(t, NewButtonBar(nil).Render())
}

func TestRenderHintBar(t *testing.T) {
	require.Equal(t, "tab buttons • esc back", testfixtures.Plain(RenderHintBar("tab", "buttons", "esc", "back")))
	require.Empty(t, RenderHintBar("odd"))
	require.Empty(t, RenderHintBar())
}
