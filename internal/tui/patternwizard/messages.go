package patternwizard

// advanceMsg is sent by a step that wants to move forward (enter on the
// last field, ctrl+d in the description).
type advanceMsg struct{}

// PhaseElapsedMsg is delivered when a generation delay fires. It is applied
// only if both the session and the token are still current.
type PhaseElapsedMsg struct {
	SessionID string
	Token     uint64
}

// HookFinishedMsg carries the outcome of an external hook.
type HookFinishedMsg struct {
	Name   string
	Output string
	Err    error
}

// DescriptionEditedMsg is sent when $EDITOR returns with a new description.
type DescriptionEditedMsg struct {
	Content string
}
