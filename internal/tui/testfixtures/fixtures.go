package testfixtures

import (
	"testing"

	"github.com/mark3labs/atelier/internal/brief"
	"github.com/mark3labs/atelier/internal/catalog"
	"github.com/stretchr/testify/require"
)

// GalaGown returns a wizard at the review step with the reference brief:
// "Gala Gown", Dress, "Deep red silk evening gown", custom 34/26/36.
func GalaGown(t *testing.T) *brief.Wizard {
	t.Helper()
	w := brief.NewWizard(catalog.Default(), nil)
	FillGalaGown(t, w)
	for w.Step() < brief.StepReview {
		require.True(t, w.GoNext(), "stuck at step %s", w.Step())
	}
	return w
}

// FillGalaGown fills every draft field of w without navigating.
func FillGalaGown(t *testing.T, w *brief.Wizard) {
	t.Helper()
	require.NoError(t, w.UpdateField(brief.StepProjectTitle, brief.FieldProjectTitle, "Gala Gown"))
	require.NoError(t, w.UpdateField(brief.StepGarmentType, brief.FieldGarmentType, "Dress"))
	require.NoError(t, w.UpdateField(brief.StepDescription, brief.FieldDescription, "Deep red silk evening gown"))
	w.SetMeasurementMode(brief.ModeCustom)
	w.SetCustomMeasurement("bust", "34")
	w.SetCustomMeasurement("waist", "26")
	w.SetCustomMeasurement("hips", "36")
}

// GalaGownSnapshot returns the submitted snapshot of the reference brief.
func GalaGownSnapshot(t *testing.T) brief.Snapshot {
	t.Helper()
	snap, ok := GalaGown(t).Submit()
	require.True(t, ok)
	return snap
}
