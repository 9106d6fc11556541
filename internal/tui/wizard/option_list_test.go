package wizard

import (
	"testing"

	"github.com/mark3labs/atelier/internal/tui/testfixtures"
	"github.com/stretchr/testify/require"
)

func garmentOptions() []Option {
	return []Option{
		{ID: "T-Shirt", Label: "T-Shirt"},
		{ID: "Dress", Label: "Dress"},
		{ID: "Other", Label: "Other", Detail: "describe it"},
	}
}

func TestOptionList_IgnoresKeysWhenBlurred(t *testing.T) {
	l := NewOptionList(garmentOptions(), false)
	_, chosen := l.Update(testfixtures.Key("enter"))
	require.False(t, chosen)
	l.Update(testfixtures.Key("down"))
	require.Equal(t, 0, l.Cursor())
}

func TestOptionList_SingleSelect(t *testing.T) {
	l := NewOptionList(garmentOptions(), false)
	l.Focus()

	l.Update(testfixtures.Key("down"))
	id, chosen := l.Update(testfixtures.Key("enter"))
	require.True(t, chosen)
	require.Equal(t, "Dress", id)
	require.Equal(t, []string{"Dress"}, l.Selected())

	l.Update(testfixtures.Key("j"))
	l.Update(testfixtures.Key("j"))
	require.Equal(t, 2, l.Cursor(), "cursor stops at the end")
	id, _ = l.Update(testfixtures.Key("space"))
	require.Equal(t, "Other", id)
	require.Equal(t, []string{"Other"}, l.Selected(), "single select replaces")

	l.Update(testfixtures.Key("k"))
	l.Update(testfixtures.Key("up"))
	l.Update(testfixtures.Key("up"))
	require.Equal(t, 0, l.Cursor())
	require.Equal(t, "T-Shirt", l.CursorID())
}

func TestOptionList_MultiSelectToggles(t *testing.T) {
	l := NewOptionList(garmentOptions(), true)
	l.Focus()

	l.Update(testfixtures.Key("space"))
	l.Update(testfixtures.Key("G"))
	l.Update(testfixtures.Key("space"))
	require.Equal(t, []string{"T-Shirt", "Other"}, l.Selected())

	l.Update(testfixtures.Key("space"))
	require.Equal(t, []string{"T-Shirt"}, l.Selected())
}

func TestOptionList_SetCursorAndSelection(t *testing.T) {
	l := NewOptionList(garmentOptions(), false)
	l.SetCursorID("Other")
	require.Equal(t, 2, l.Cursor())
	l.SetCursorID("missing")
	require.Equal(t, 2, l.Cursor())

	l.SetSelected("Dress", "")
	require.True(t, l.IsSelected("Dress"))
	require.Len(t, l.Selected(), 1)
}

func TestOptionList_View(t *testing.T) {
	l := NewOptionList(garmentOptions(), true)
	l.Focus()
	l.SetSelected("Dress")
	out := testfixtures.Plain(l.View(60))
	require.Contains(t, out, "› [ ] T-Shirt")
	require.Contains(t, out, "[x] Dress")
	require.Contains(t, out, "describe it")
}
