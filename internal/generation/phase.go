// Package generation simulates the design and pattern generation pipeline
// that follows a submitted brief.
//
// The pipeline is a four-phase state machine:
//
//	generating-design → design-ready → generating-pattern → pattern-ready
//
// Generating phases end on a delayed timer. Every scheduled delay carries a
// token; entering any phase or closing the session invalidates earlier
// tokens, so a late timer is dropped instead of applied.
package generation

import "fmt"

// PhaseKind identifies one of the four pipeline phases.
type PhaseKind int

const (
	KindGeneratingDesign PhaseKind = iota
	KindDesignReady
	KindGeneratingPattern
	KindPatternReady
)

// String returns the phase name.
func (k PhaseKind) String() string {
	switch k {
	case KindGeneratingDesign:
		return "generating-design"
	case KindDesignReady:
		return "design-ready"
	case KindGeneratingPattern:
		return "generating-pattern"
	case KindPatternReady:
		return "pattern-ready"
	}
	return fmt.Sprintf("PhaseKind(%d)", int(k))
}

// Phase is the tagged union of pipeline states. Ready phases carry their
// own sub-state so it cannot exist outside them.
type Phase interface {
	Kind() PhaseKind
}

// GeneratingDesign waits for the design delay.
type GeneratingDesign struct{}

// DesignReady shows the generated design in a view carousel.
type DesignReady struct {
	View View
}

// GeneratingPattern waits for the pattern delay.
type GeneratingPattern struct{}

// PatternReady shows the pattern sheet with selectable fabrics and notions.
type PatternReady struct {
	View    View
	Fabrics map[string]struct{}
	Notions map[string]struct{}
}

func (GeneratingDesign) Kind() PhaseKind  { return KindGeneratingDesign }
func (DesignReady) Kind() PhaseKind       { return KindDesignReady }
func (GeneratingPattern) Kind() PhaseKind { return KindGeneratingPattern }
func (PatternReady) Kind() PhaseKind      { return KindPatternReady }

// TotalSelected is the number of selected fabrics plus notions.
func (p PatternReady) TotalSelected() int {
	return len(p.Fabrics) + len(p.Notions)
}

// HasFabric reports whether fabric id is selected.
func (p PatternReady) HasFabric(id string) bool {
	_, ok := p.Fabrics[id]
	return ok
}

// HasNotion reports whether notion id is selected.
func (p PatternReady) HasNotion(id string) bool {
	_, ok := p.Notions[id]
	return ok
}

// View is a garment viewing angle.
type View int

const (
	ViewFront View = iota
	ViewBack
	ViewLeft
	ViewRight
)

// Views lists the viewing angles in carousel order.
var Views = []View{ViewFront, ViewBack, ViewLeft, ViewRight}

// String returns the lowercase view name.
func (v View) String() string {
	switch v {
	case ViewFront:
		return "front"
	case ViewBack:
		return "back"
	case ViewLeft:
		return "left"
	case ViewRight:
		return "right"
	}
	return fmt.Sprintf("View(%d)", int(v))
}

// Next returns the following view, wrapping right → front.
func (v View) Next() View {
	return View((int(v) + 1) % len(Views))
}

// Prev returns the preceding view, wrapping front → right.
func (v View) Prev() View {
	return View((int(v) + len(Views) - 1) % len(Views))
}
