package patternwizard

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/mark3labs/atelier/internal/brief"
	"github.com/mark3labs/atelier/internal/tui/testfixtures"
	"github.com/mark3labs/atelier/internal/tui/wizard"
	"github.com/stretchr/testify/require"
)

// timers records scheduled phase delays instead of sleeping.
type timers struct {
	delays []time.Duration
	msgs   []PhaseElapsedMsg
}

func (tm *timers) last(t *testing.T) PhaseElapsedMsg {
	t.Helper()
	require.NotEmpty(t, tm.msgs, "no timer scheduled")
	return tm.msgs[len(tm.msgs)-1]
}

func newTestModel(t *testing.T) (*Model, *testfixtures.MockHooks, *timers) {
	t.Helper()
	mock := testfixtures.NewMockHooks()
	m := New(context.Background(), Options{
		Hooks:   mock,
		CartURL: "https://www.moodfabrics.com",
		WorkDir: t.TempDir(),
	})
	tm := &timers{}
	m.after = func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
		tm.delays = append(tm.delays, d)
		tm.msgs = append(tm.msgs, fn(time.Time{}).(PhaseElapsedMsg))
		return nil
	}
	m.Update(tea.WindowSizeMsg{Width: testfixtures.TestTermWidth, Height: testfixtures.TestTermHeight})
	return m, mock, tm
}

// atReview returns a model on the review step with the reference brief.
func atReview(t *testing.T) (*Model, *testfixtures.MockHooks, *timers) {
	t.Helper()
	m, mock, tm := newTestModel(t)
	testfixtures.FillGalaGown(t, m.Wizard())
	for m.Wizard().Step() < brief.StepReview {
		require.True(t, m.Wizard().GoNext())
	}
	m.initCurrentStep()
	return m, mock, tm
}

// settle runs cmd and feeds back the messages the model sends itself.
// Cursor blinks and spinner ticks are dropped, as are the commands returned
// for hook results (toast timers).
func settle(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	for _, msg := range testfixtures.ExecCmd(cmd) {
		switch msg.(type) {
		case advanceMsg, wizard.TabExitForwardMsg, wizard.TabExitBackwardMsg, PhaseElapsedMsg, DescriptionEditedMsg:
			_, next := m.Update(msg)
			settle(t, m, next)
		case HookFinishedMsg:
			m.Update(msg)
		}
	}
}

// press sends a key and settles the result. Only use it for keys whose
// command resolves immediately.
func press(t *testing.T, m *Model, k tea.KeyPressMsg) {
	t.Helper()
	_, cmd := m.Update(k)
	settle(t, m, cmd)
}

// typeText types s into the model without running the blink commands.
func typeText(m *Model, s string) {
	for _, r := range s {
		m.Update(testfixtures.Rune(r))
	}
}
