// Package brief holds the pattern brief a user builds in the wizard and the
// controller that walks them through its five steps.
package brief

import (
	"strings"

	"github.com/mark3labs/atelier/internal/catalog"
)

// MeasurementMode selects where the brief's measurements come from.
type MeasurementMode int

const (
	ModeUnset  MeasurementMode = iota // No choice made yet
	ModeSaved                         // A saved profile from the catalog
	ModeCustom                        // One-time measurements typed in
)

// String returns the config/hook spelling of the mode.
func (m MeasurementMode) String() string {
	switch m {
	case ModeSaved:
		return "saved"
	case ModeCustom:
		return "custom"
	default:
		return "unset"
	}
}

// ParseMeasurementMode is the inverse of MeasurementMode.String.
func ParseMeasurementMode(s string) (MeasurementMode, bool) {
	switch s {
	case "saved":
		return ModeSaved, true
	case "custom":
		return ModeCustom, true
	case "unset", "":
		return ModeUnset, true
	}
	return ModeUnset, false
}

// Draft is the in-progress input accumulated across the wizard steps.
type Draft struct {
	ProjectTitle         string
	GarmentType          string
	CustomGarment        string // Only meaningful when GarmentType is Other
	Description          string
	SelectedInspirations map[string]struct{}
	MeasurementMode      MeasurementMode
	SelectedProfile      string            // Only meaningful in ModeSaved
	CustomMeasurements   map[string]string // Only meaningful in ModeCustom
}

// NewDraft returns an empty draft.
func NewDraft() Draft {
	return Draft{
		SelectedInspirations: make(map[string]struct{}),
		CustomMeasurements:   make(map[string]string),
	}
}

// HasInspiration reports whether id is in the selected inspirations.
func (d Draft) HasInspiration(id string) bool {
	_, ok := d.SelectedInspirations[id]
	return ok
}

// GarmentDisplay is the garment name shown to the user: the custom garment
// when the type is Other, the type otherwise.
func (d Draft) GarmentDisplay() string {
	if d.GarmentType == catalog.OtherGarment {
		return d.CustomGarment
	}
	return d.GarmentType
}

// StepValid evaluates the local validity predicate of a step.
func (d Draft) StepValid(step Step, cat *catalog.Catalog) bool {
	switch step {
	case StepProjectTitle:
		return strings.TrimSpace(d.ProjectTitle) != ""
	case StepGarmentType:
		if d.GarmentType == "" {
			return false
		}
		return d.GarmentType != catalog.OtherGarment || strings.TrimSpace(d.CustomGarment) != ""
	case StepDescription:
		return strings.TrimSpace(d.Description) != ""
	case StepMeasurements:
		switch d.MeasurementMode {
		case ModeSaved:
			return d.SelectedProfile != ""
		case ModeCustom:
			for _, key := range cat.RequiredMeasurements() {
				if strings.TrimSpace(d.CustomMeasurements[key]) == "" {
					return false
				}
			}
			return true
		default:
			return false
		}
	case StepReview:
		return true
	}
	return false
}

// Valid reports whether every step predicate holds.
func (d Draft) Valid(cat *catalog.Catalog) bool {
	for s := StepProjectTitle; s <= StepReview; s++ {
		if !d.StepValid(s, cat) {
			return false
		}
	}
	return true
}

// MeasurementDisplay is the review-screen summary of the measurements.
func (d Draft) MeasurementDisplay(cat *catalog.Catalog) string {
	switch d.MeasurementMode {
	case ModeSaved:
		if p, ok := cat.Profile(d.SelectedProfile); ok {
			return p.Name
		}
		return ""
	case ModeCustom:
		return "One-time measurements"
	}
	return ""
}

// clone returns a deep copy so snapshots never alias the live draft.
func (d Draft) clone() Draft {
	c := d
	c.SelectedInspirations = make(map[string]struct{}, len(d.SelectedInspirations))
	for id := range d.SelectedInspirations {
		c.SelectedInspirations[id] = struct{}{}
	}
	c.CustomMeasurements = make(map[string]string, len(d.CustomMeasurements))
	for k, v := range d.CustomMeasurements {
		c.CustomMeasurements[k] = v
	}
	return c
}
