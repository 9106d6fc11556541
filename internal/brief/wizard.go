package brief

import (
	"fmt"
	"strings"

	"github.com/mark3labs/atelier/internal/catalog"
	"github.com/mark3labs/atelier/internal/logger"
)

// Step is a 1-based wizard step index.
type Step int

// Step enumeration for wizard flow
const (
	StepProjectTitle Step = 1 // Project title input
	StepGarmentType  Step = 2 // Garment type selection
	StepDescription  Step = 3 // Design description and inspirations
	StepMeasurements Step = 4 // Saved profile or one-time measurements
	StepReview       Step = 5 // Review and generate
)

// TotalSteps is the number of wizard steps.
const TotalSteps = 5

// String returns the step's display name.
func (s Step) String() string {
	switch s {
	case StepProjectTitle:
		return "Project Title"
	case StepGarmentType:
		return "Garment Type"
	case StepDescription:
		return "Design Description"
	case StepMeasurements:
		return "Measurements"
	case StepReview:
		return "Review"
	}
	return fmt.Sprintf("Step(%d)", int(s))
}

// Field names a scalar draft field for UpdateField.
type Field int

const (
	FieldProjectTitle Field = iota
	FieldGarmentType
	FieldCustomGarment
	FieldDescription
	FieldMeasurementMode
	FieldSelectedProfile
)

// Step returns the wizard step that owns the field.
func (f Field) Step() Step {
	switch f {
	case FieldProjectTitle:
		return StepProjectTitle
	case FieldGarmentType, FieldCustomGarment:
		return StepGarmentType
	case FieldDescription:
		return StepDescription
	case FieldMeasurementMode, FieldSelectedProfile:
		return StepMeasurements
	}
	return 0
}

// Wizard is the controller for the five-step brief. It owns the draft and
// gates forward navigation on each step's validity predicate.
type Wizard struct {
	step      Step
	submitted bool
	draft     Draft
	cat       *catalog.Catalog
	onBack    func() // Invoked by GoBack at step 1 ("return to Studio")
}

// NewWizard creates a wizard at step 1 with an empty draft. onBack may be nil.
func NewWizard(cat *catalog.Catalog, onBack func()) *Wizard {
	return &Wizard{
		step:   StepProjectTitle,
		draft:  NewDraft(),
		cat:    cat,
		onBack: onBack,
	}
}

// Step returns the current step.
func (w *Wizard) Step() Step {
	return w.step
}

// Submitted reports whether the brief has been handed to generation.
func (w *Wizard) Submitted() bool {
	return w.submitted
}

// Draft returns a read-only copy of the draft.
func (w *Wizard) Draft() Draft {
	return w.draft.clone()
}

// Catalog returns the catalog the wizard validates against.
func (w *Wizard) Catalog() *catalog.Catalog {
	return w.cat
}

// CanAdvance reports whether the current step's predicate holds, which is
// what enables the Next control.
func (w *Wizard) CanAdvance() bool {
	return w.draft.StepValid(w.step, w.cat)
}

// GoNext advances one step if the current step is valid and not the last.
// Returns true if the step changed.
func (w *Wizard) GoNext() bool {
	if w.submitted || w.step >= TotalSteps || !w.CanAdvance() {
		return false
	}
	w.step++
	logger.Debug("Wizard advanced to step %d (%s)", w.step, w.step)
	return true
}

// GoBack moves back one step. At step 1 it invokes the onBack collaborator
// instead and returns false.
func (w *Wizard) GoBack() bool {
	if w.submitted {
		return false
	}
	if w.step > StepProjectTitle {
		w.step--
		logger.Debug("Wizard went back to step %d (%s)", w.step, w.step)
		return true
	}
	if w.onBack != nil {
		w.onBack()
	}
	return false
}

// UpdateField assigns value to a scalar draft field. It fails only when the
// field does not belong to step or the value is not a catalog member.
func (w *Wizard) UpdateField(step Step, field Field, value string) error {
	if field.Step() != step {
		return fmt.Errorf("field %d does not belong to step %s", field, step)
	}
	switch field {
	case FieldProjectTitle:
		w.draft.ProjectTitle = value
	case FieldGarmentType:
		if value != "" && !w.cat.HasGarmentType(value) {
			return fmt.Errorf("unknown garment type %q", value)
		}
		w.draft.GarmentType = value
	case FieldCustomGarment:
		w.draft.CustomGarment = value
	case FieldDescription:
		w.draft.Description = value
	case FieldMeasurementMode:
		mode, ok := ParseMeasurementMode(value)
		if !ok {
			return fmt.Errorf("unknown measurement mode %q", value)
		}
		w.draft.MeasurementMode = mode
	case FieldSelectedProfile:
		if value != "" {
			if _, ok := w.cat.Profile(value); !ok {
				return fmt.Errorf("unknown profile %q", value)
			}
		}
		w.draft.SelectedProfile = value
	default:
		return fmt.Errorf("unknown field %d", field)
	}
	return nil
}

// SetMeasurementMode is a typed shortcut for UpdateField on the mode.
func (w *Wizard) SetMeasurementMode(mode MeasurementMode) {
	w.draft.MeasurementMode = mode
}

// ToggleInspiration adds id to the selected inspirations if absent and
// removes it if present.
func (w *Wizard) ToggleInspiration(id string) {
	if w.draft.HasInspiration(id) {
		delete(w.draft.SelectedInspirations, id)
		return
	}
	w.draft.SelectedInspirations[id] = struct{}{}
}

// SetCustomMeasurement upserts a one-time measurement value.
func (w *Wizard) SetCustomMeasurement(key, value string) {
	w.draft.CustomMeasurements[key] = value
}

// Submit hands the brief over to generation. It only succeeds on the review
// step with a valid draft; the wizard keeps its state for EditPrompt.
func (w *Wizard) Submit() (Snapshot, bool) {
	if w.submitted || w.step != StepReview || !w.draft.Valid(w.cat) {
		return Snapshot{}, false
	}
	w.submitted = true
	snap := w.Snapshot()
	logger.Info("Brief submitted: %q (%s)", snap.ProjectTitle, snap.Garment)
	return snap, true
}

// EditPrompt returns from generation to the description step without
// clearing any draft data.
func (w *Wizard) EditPrompt() {
	w.submitted = false
	w.step = StepDescription
	logger.Debug("Returned to description step for prompt edit")
}

// Snapshot builds the generation input from the current draft.
func (w *Wizard) Snapshot() Snapshot {
	d := w.draft.clone()
	var inspirations []string
	for _, i := range w.cat.Inspirations {
		if d.HasInspiration(i.ID) {
			inspirations = append(inspirations, i.Name)
		}
	}
	return Snapshot{
		ProjectTitle: strings.TrimSpace(d.ProjectTitle),
		Garment:      strings.TrimSpace(d.GarmentDisplay()),
		Description:  strings.TrimSpace(d.Description),
		Inspirations: inspirations,
		Measurements: d.MeasurementDisplay(w.cat),
		Draft:        d,
	}
}

// Snapshot is the read-only generation input taken when the brief is
// submitted.
type Snapshot struct {
	ProjectTitle string
	Garment      string
	Description  string
	Inspirations []string // Inspiration names in catalog order
	Measurements string   // Measurement display text
	Draft        Draft    // Deep copy of the draft at submit time
}

// Heading is the pattern heading: "<title> Pattern", or "Pattern" when the
// title is empty.
func (s Snapshot) Heading() string {
	if s.ProjectTitle == "" {
		return "Pattern"
	}
	return s.ProjectTitle + " Pattern"
}

// ReviewItem is one labelled line of the review screen.
type ReviewItem struct {
	Label     string
	Value     string
	Multiline bool
}

// ReviewItems lists what the review step shows. Empty values render as "—".
func (s Snapshot) ReviewItems() []ReviewItem {
	items := []ReviewItem{
		{Label: "Project Title", Value: s.ProjectTitle},
		{Label: "Garment Type", Value: s.Garment},
		{Label: "Design Description", Value: s.Description, Multiline: true},
	}
	if len(s.Inspirations) > 0 {
		items = append(items, ReviewItem{Label: "Inspirations", Value: strings.Join(s.Inspirations, ", ")})
	}
	items = append(items, ReviewItem{Label: "Measurements", Value: s.Measurements})
	for i := range items {
		if items[i].Value == "" {
			items[i].Value = "—"
		}
	}
	return items
}
