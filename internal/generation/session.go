package generation

import (
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/atelier/internal/brief"
	"github.com/mark3labs/atelier/internal/catalog"
	"github.com/mark3labs/atelier/internal/logger"
)

// Default phase delays.
const (
	DefaultDesignDelay  = 3000 * time.Millisecond
	DefaultPatternDelay = 3500 * time.Millisecond
)

// Delays configures how long each generating phase lasts.
type Delays struct {
	Design  time.Duration
	Pattern time.Duration
}

// DefaultDelays returns the stock delays.
func DefaultDelays() Delays {
	return Delays{Design: DefaultDesignDelay, Pattern: DefaultPatternDelay}
}

// Schedule asks the caller to deliver Elapsed{Token} after Delay.
type Schedule struct {
	Token uint64
	Delay time.Duration
	For   PhaseKind // Phase the timer was scheduled from
}

// Outcome reports what an event did.
type Outcome struct {
	Changed  bool      // Phase or ready sub-state changed
	Schedule *Schedule // Timer to start, if a generating phase was entered
	Action   Action    // Collaborator to notify, ActionNone if none
	Exit     bool      // Session ended; control returns to the wizard
}

// Session is one run of the generation pipeline for a submitted brief. It is
// driven from a single event loop and is not safe for concurrent use.
type Session struct {
	id      string
	input   brief.Snapshot
	cat     *catalog.Catalog
	delays  Delays
	phase   Phase
	token   uint64
	pending bool // A timer with the current token is outstanding
	closed  bool
}

// NewSession creates a session in GeneratingDesign. Call Start to schedule
// the first delay.
func NewSession(input brief.Snapshot, cat *catalog.Catalog, delays Delays) *Session {
	return &Session{
		id:     uuid.NewString(),
		input:  input,
		cat:    cat,
		delays: delays,
		phase:  GeneratingDesign{},
	}
}

// ID returns the session's unique id.
func (s *Session) ID() string { return s.id }

// Input returns the brief snapshot the session was created from.
func (s *Session) Input() brief.Snapshot { return s.input }

// Catalog returns the shared catalog.
func (s *Session) Catalog() *catalog.Catalog { return s.cat }

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Closed reports whether the session has been torn down.
func (s *Session) Closed() bool { return s.closed }

// Pending returns the outstanding timer token, if any.
func (s *Session) Pending() (uint64, bool) {
	return s.token, s.pending && !s.closed
}

// Start schedules the delay for the initial phase.
func (s *Session) Start() Outcome {
	if s.closed {
		return Outcome{}
	}
	logger.Info("Generation session %s started for %q", s.id, s.input.ProjectTitle)
	return s.enter(s.phase, ActionNone)
}

// Close tears the session down. Every outstanding timer becomes stale.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.pending = false
	s.token++
	logger.Debug("Generation session %s closed", s.id)
}

// Apply feeds one event through the transition function.
func (s *Session) Apply(ev Event) Outcome {
	if s.closed {
		logger.Debug("Session %s closed, dropping %T", s.id, ev)
		return Outcome{}
	}

	if e, ok := ev.(Elapsed); ok {
		if !s.pending || e.Token != s.token {
			logger.Debug("Dropping stale timer %d (current %d, phase %s)", e.Token, s.token, s.phase.Kind())
			return Outcome{}
		}
		s.pending = false
	}

	next, action, ok := transition(s.phase, ev, s.cat)
	if !ok {
		return Outcome{}
	}

	if _, exit := ev.(EditPrompt); exit {
		s.Close()
		return Outcome{Changed: true, Action: action, Exit: true}
	}

	_, regen := ev.(Regenerate)
	if next.Kind() != s.phase.Kind() || regen {
		return s.enter(next, action)
	}

	s.phase = next
	return Outcome{Changed: true, Action: action}
}

// enter makes p the current phase, invalidates earlier timers and schedules
// the delay of a generating phase.
func (s *Session) enter(p Phase, action Action) Outcome {
	s.phase = p
	s.token++
	s.pending = false
	out := Outcome{Changed: true, Action: action}

	var delay time.Duration
	switch p.Kind() {
	case KindGeneratingDesign:
		delay = s.delays.Design
	case KindGeneratingPattern:
		delay = s.delays.Pattern
	default:
		logger.Debug("Session %s entered %s", s.id, p.Kind())
		return out
	}

	s.pending = true
	out.Schedule = &Schedule{Token: s.token, Delay: delay, For: p.Kind()}
	logger.Debug("Session %s entered %s, timer %d in %s", s.id, p.Kind(), s.token, delay)
	return out
}

// transition is the single dispatch for every (phase, event) pair. It is
// pure: it never mutates p and returns ok=false for events the phase does
// not accept.
func transition(p Phase, ev Event, cat *catalog.Catalog) (Phase, Action, bool) {
	switch cur := p.(type) {
	case GeneratingDesign:
		switch ev.(type) {
		case Elapsed:
			return DesignReady{View: ViewFront}, ActionNone, true
		case Regenerate:
			return GeneratingDesign{}, ActionRegenerate, true
		case EditPrompt:
			return cur, ActionEditPrompt, true
		}

	case DesignReady:
		switch e := ev.(type) {
		case Regenerate:
			return GeneratingDesign{}, ActionRegenerate, true
		case EditPrompt:
			return cur, ActionEditPrompt, true
		case Confirm:
			return GeneratingPattern{}, ActionNone, true
		case CycleNext:
			return DesignReady{View: cur.View.Next()}, ActionNone, true
		case CyclePrev:
			return DesignReady{View: cur.View.Prev()}, ActionNone, true
		case SetView:
			return DesignReady{View: e.View}, ActionNone, true
		}

	case GeneratingPattern:
		if _, ok := ev.(Elapsed); ok {
			return PatternReady{
				View:    ViewFront,
				Fabrics: map[string]struct{}{},
				Notions: map[string]struct{}{},
			}, ActionNone, true
		}

	case PatternReady:
		switch e := ev.(type) {
		case SetView:
			next := cur.copy()
			next.View = e.View
			return next, ActionNone, true
		case ToggleFabric:
			if _, ok := cat.Fabric(e.ID); !ok {
				return cur, ActionNone, false
			}
			next := cur.copy()
			toggle(next.Fabrics, e.ID)
			return next, ActionNone, true
		case ToggleNotion:
			if _, ok := cat.Notion(e.ID); !ok {
				return cur, ActionNone, false
			}
			next := cur.copy()
			toggle(next.Notions, e.ID)
			return next, ActionNone, true
		case SelectAll:
			next := cur.copy()
			for _, id := range cat.FabricIDs() {
				next.Fabrics[id] = struct{}{}
			}
			for _, id := range cat.NotionIDs() {
				next.Notions[id] = struct{}{}
			}
			return next, ActionNone, true
		case DeselectAll:
			next := cur.copy()
			next.Fabrics = map[string]struct{}{}
			next.Notions = map[string]struct{}{}
			return next, ActionNone, true
		case Trigger:
			switch e.Action {
			case ActionAddToCart:
				// Suppressed with nothing selected
				if cur.TotalSelected() == 0 {
					return cur, ActionNone, false
				}
				return cur, e.Action, true
			case ActionDownloadPattern, ActionPrintPattern, ActionViewMyPatterns, ActionListOnMarketplace:
				return cur, e.Action, true
			}
		}
	}
	return p, ActionNone, false
}

func (p PatternReady) copy() PatternReady {
	next := PatternReady{
		View:    p.View,
		Fabrics: make(map[string]struct{}, len(p.Fabrics)),
		Notions: make(map[string]struct{}, len(p.Notions)),
	}
	for id := range p.Fabrics {
		next.Fabrics[id] = struct{}{}
	}
	for id := range p.Notions {
		next.Notions[id] = struct{}{}
	}
	return next
}

func toggle(set map[string]struct{}, id string) {
	if _, ok := set[id]; ok {
		delete(set, id)
		return
	}
	set[id] = struct{}{}
}
