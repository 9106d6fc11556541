package brief

import (
	"math/rand"
	"testing"

	"github.com/mark3labs/atelier/internal/catalog"
	"github.com/stretchr/testify/require"
)

func newTestWizard(t *testing.T) *Wizard {
	t.Helper()
	return NewWizard(catalog.Default(), nil)
}

// fillValid fills every step so the whole draft is valid.
func fillValid(t *testing.T, w *Wizard) {
	t.Helper()
	require.NoError(t, w.UpdateField(StepProjectTitle, FieldProjectTitle, "Gala Gown"))
	require.NoError(t, w.UpdateField(StepGarmentType, FieldGarmentType, "Dress"))
	require.NoError(t, w.UpdateField(StepDescription, FieldDescription, "Deep red silk evening gown"))
	require.NoError(t, w.UpdateField(StepMeasurements, FieldMeasurementMode, "custom"))
	w.SetCustomMeasurement("bust", "34")
	w.SetCustomMeasurement("waist", "26")
	w.SetCustomMeasurement("hips", "36")
}

func TestWizard_StartsAtStepOne(t *testing.T) {
	t.Parallel()

	w := newTestWizard(t)
	require.Equal(t, StepProjectTitle, w.Step())
	require.False(t, w.CanAdvance(), "empty title should not be valid")
	require.False(t, w.Submitted())
}

func TestWizard_GoNextGatedByPredicate(t *testing.T) {
	t.Parallel()

	w := newTestWizard(t)

	require.False(t, w.GoNext())
	require.Equal(t, StepProjectTitle, w.Step())

	require.NoError(t, w.UpdateField(StepProjectTitle, FieldProjectTitle, "   "))
	require.False(t, w.GoNext(), "whitespace-only title is invalid")

	require.NoError(t, w.UpdateField(StepProjectTitle, FieldProjectTitle, "Gala Gown"))
	require.True(t, w.GoNext())
	require.Equal(t, StepGarmentType, w.Step())
}

func TestWizard_NoAdvancePastReview(t *testing.T) {
	t.Parallel()

	w := newTestWizard(t)
	fillValid(t, w)
	for i := 0; i < 4; i++ {
		require.True(t, w.GoNext())
	}
	require.Equal(t, StepReview, w.Step())
	require.False(t, w.GoNext(), "review is the last step")
	require.Equal(t, StepReview, w.Step())
}

func TestWizard_GoBackAtFirstStepCallsOnBack(t *testing.T) {
	t.Parallel()

	calls := 0
	w := NewWizard(catalog.Default(), func() { calls++ })

	require.False(t, w.GoBack())
	require.Equal(t, StepProjectTitle, w.Step())
	require.Equal(t, 1, calls)

	require.NoError(t, w.UpdateField(StepProjectTitle, FieldProjectTitle, "Gala Gown"))
	require.True(t, w.GoNext())
	require.True(t, w.GoBack())
	require.Equal(t, StepProjectTitle, w.Step())
	require.Equal(t, 1, calls, "onBack only fires at step 1")
}

// Random walks never leave [1,5] and never advance past an invalid step.
func TestWizard_RandomNavigationStaysInBounds(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))
	garments := catalog.Default().GarmentTypes

	for run := 0; run < 50; run++ {
		w := newTestWizard(t)
		for i := 0; i < 200; i++ {
			switch rng.Intn(6) {
			case 0:
				before := w.Step()
				valid := w.CanAdvance()
				advanced := w.GoNext()
				if advanced {
					require.True(t, valid, "advanced past invalid step %s", before)
					require.Equal(t, before+1, w.Step())
				}
			case 1:
				w.GoBack()
			case 2:
				title := ""
				if rng.Intn(2) == 0 {
					title = "Gala"
				}
				require.NoError(t, w.UpdateField(StepProjectTitle, FieldProjectTitle, title))
			case 3:
				require.NoError(t, w.UpdateField(StepGarmentType, FieldGarmentType, garments[rng.Intn(len(garments))]))
			case 4:
				require.NoError(t, w.UpdateField(StepDescription, FieldDescription, "silk"))
			case 5:
				require.NoError(t, w.UpdateField(StepMeasurements, FieldMeasurementMode, "saved"))
				require.NoError(t, w.UpdateField(StepMeasurements, FieldSelectedProfile, "p2"))
			}
			require.GreaterOrEqual(t, int(w.Step()), 1)
			require.LessOrEqual(t, int(w.Step()), TotalSteps)
		}
	}
}

func TestDraft_GarmentTypePredicate(t *testing.T) {
	t.Parallel()

	cat := catalog.Default()
	d := NewDraft()
	require.False(t, d.StepValid(StepGarmentType, cat), "unset garment is invalid")

	d.GarmentType = "Other"
	d.CustomGarment = ""
	require.False(t, d.StepValid(StepGarmentType, cat))

	d.CustomGarment = "   "
	require.False(t, d.StepValid(StepGarmentType, cat))

	d.CustomGarment = "Kimono"
	require.True(t, d.StepValid(StepGarmentType, cat))
	require.Equal(t, "Kimono", d.GarmentDisplay())

	d.GarmentType = "Jacket"
	d.CustomGarment = ""
	require.True(t, d.StepValid(StepGarmentType, cat))
	require.Equal(t, "Jacket", d.GarmentDisplay())
}

func TestDraft_MeasurementPredicate(t *testing.T) {
	t.Parallel()

	cat := catalog.Default()

	tests := []struct {
		name    string
		mode    MeasurementMode
		profile string
		custom  map[string]string
		want    bool
	}{
		{name: "unset", mode: ModeUnset, want: false},
		{name: "saved without profile", mode: ModeSaved, want: false},
		{name: "saved with profile", mode: ModeSaved, profile: "p1", want: true},
		{name: "custom empty", mode: ModeCustom, want: false},
		{
			name:   "custom missing hips",
			mode:   ModeCustom,
			custom: map[string]string{"bust": "34", "waist": "26"},
			want:   false,
		},
		{
			name:   "custom complete",
			mode:   ModeCustom,
			custom: map[string]string{"bust": "34", "waist": "26", "hips": "36"},
			want:   true,
		},
		{
			name:   "custom optional fields only",
			mode:   ModeCustom,
			custom: map[string]string{"inseam": "30", "shoulder": "15"},
			want:   false,
		},
		{
			name:    "custom ignores saved profile",
			mode:    ModeCustom,
			profile: "p1",
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDraft()
			d.MeasurementMode = tt.mode
			d.SelectedProfile = tt.profile
			for k, v := range tt.custom {
				d.CustomMeasurements[k] = v
			}
			require.Equal(t, tt.want, d.StepValid(StepMeasurements, cat))
		})
	}
}

func TestWizard_ToggleInspirationIsInvolution(t *testing.T) {
	t.Parallel()

	w := newTestWizard(t)
	w.ToggleInspiration("1")
	w.ToggleInspiration("4")
	before := w.Draft().SelectedInspirations

	w.ToggleInspiration("2")
	require.True(t, w.Draft().HasInspiration("2"))
	w.ToggleInspiration("2")
	require.Equal(t, before, w.Draft().SelectedInspirations)

	w.ToggleInspiration("1")
	w.ToggleInspiration("1")
	require.Equal(t, before, w.Draft().SelectedInspirations)
}

func TestWizard_SetCustomMeasurementUpserts(t *testing.T) {
	t.Parallel()

	w := newTestWizard(t)
	w.SetCustomMeasurement("bust", "34")
	w.SetCustomMeasurement("bust", "35")
	require.Equal(t, map[string]string{"bust": "35"}, w.Draft().CustomMeasurements)
}

func TestWizard_UpdateFieldErrors(t *testing.T) {
	t.Parallel()

	w := newTestWizard(t)
	require.Error(t, w.UpdateField(StepGarmentType, FieldProjectTitle, "x"), "field belongs to step 1")
	require.Error(t, w.UpdateField(StepGarmentType, FieldGarmentType, "Kimono"))
	require.Error(t, w.UpdateField(StepMeasurements, FieldMeasurementMode, "bespoke"))
	require.Error(t, w.UpdateField(StepMeasurements, FieldSelectedProfile, "p9"))

	require.NoError(t, w.UpdateField(StepGarmentType, FieldGarmentType, ""))
	require.NoError(t, w.UpdateField(StepMeasurements, FieldSelectedProfile, ""))
}

func TestWizard_DraftIsACopy(t *testing.T) {
	t.Parallel()

	w := newTestWizard(t)
	w.ToggleInspiration("3")
	d := w.Draft()
	d.SelectedInspirations["5"] = struct{}{}
	d.CustomMeasurements["bust"] = "99"

	require.False(t, w.Draft().HasInspiration("5"))
	require.Empty(t, w.Draft().CustomMeasurements)
}

func TestWizard_SubmitOnlyFromValidReview(t *testing.T) {
	t.Parallel()

	w := newTestWizard(t)
	fillValid(t, w)

	_, ok := w.Submit()
	require.False(t, ok, "submit requires the review step")

	for w.Step() < StepReview {
		require.True(t, w.GoNext())
	}
	snap, ok := w.Submit()
	require.True(t, ok)
	require.True(t, w.Submitted())

	_, ok = w.Submit()
	require.False(t, ok, "already submitted")
	require.False(t, w.GoNext())
	require.False(t, w.GoBack())

	require.Equal(t, "Gala Gown", snap.ProjectTitle)
	require.Equal(t, "Dress", snap.Garment)
}

func TestWizard_EditPromptKeepsData(t *testing.T) {
	t.Parallel()

	w := newTestWizard(t)
	fillValid(t, w)
	w.ToggleInspiration("2")
	for w.Step() < StepReview {
		require.True(t, w.GoNext())
	}
	_, ok := w.Submit()
	require.True(t, ok)

	w.EditPrompt()
	require.False(t, w.Submitted())
	require.Equal(t, StepDescription, w.Step())

	d := w.Draft()
	require.Equal(t, "Gala Gown", d.ProjectTitle)
	require.Equal(t, "Deep red silk evening gown", d.Description)
	require.Equal(t, ModeCustom, d.MeasurementMode)
	require.Equal(t, "36", d.CustomMeasurements["hips"])
	require.True(t, d.HasInspiration("2"))

	// Later steps are still valid, so the user can walk straight back.
	require.True(t, w.GoNext())
	require.True(t, w.GoNext())
	require.Equal(t, StepReview, w.Step())
}

func TestSnapshot_ReviewItems(t *testing.T) {
	t.Parallel()

	w := newTestWizard(t)
	fillValid(t, w)
	snap := w.Snapshot()

	require.Equal(t, "Gala Gown Pattern", snap.Heading())
	require.Equal(t, []ReviewItem{
		{Label: "Project Title", Value: "Gala Gown"},
		{Label: "Garment Type", Value: "Dress"},
		{Label: "Design Description", Value: "Deep red silk evening gown", Multiline: true},
		{Label: "Measurements", Value: "One-time measurements"},
	}, snap.ReviewItems())
}

func TestSnapshot_SavedProfileAndInspirations(t *testing.T) {
	t.Parallel()

	w := newTestWizard(t)
	require.NoError(t, w.UpdateField(StepGarmentType, FieldGarmentType, "Other"))
	require.NoError(t, w.UpdateField(StepGarmentType, FieldCustomGarment, " Kimono "))
	require.NoError(t, w.UpdateField(StepMeasurements, FieldMeasurementMode, "saved"))
	require.NoError(t, w.UpdateField(StepMeasurements, FieldSelectedProfile, "p2"))
	w.ToggleInspiration("6")
	w.ToggleInspiration("1")

	snap := w.Snapshot()
	require.Equal(t, "Kimono", snap.Garment)
	require.Equal(t, "DEMO 1", snap.Measurements)
	require.Equal(t, []string{"Autumn Palette", "Charcoal Wool"}, snap.Inspirations)
	require.Equal(t, "Pattern", snap.Heading())

	items := snap.ReviewItems()
	require.Equal(t, "—", items[0].Value, "empty title renders as a dash")
	require.Equal(t, "Inspirations", items[3].Label)
	require.Equal(t, "Autumn Palette, Charcoal Wool", items[3].Value)
}

func TestParseMeasurementMode(t *testing.T) {
	t.Parallel()

	for _, m := range []MeasurementMode{ModeUnset, ModeSaved, ModeCustom} {
		got, ok := ParseMeasurementMode(m.String())
		require.True(t, ok)
		require.Equal(t, m, got)
	}
	_, ok := ParseMeasurementMode("bespoke")
	require.False(t, ok)
}
