package generation

// Event is anything that can drive the pipeline: a timer firing or a user
// action.
type Event interface {
	isEvent()
}

// Elapsed is delivered when a scheduled delay fires.
type Elapsed struct {
	Token uint64
}

// Regenerate discards the current design and generates again.
type Regenerate struct{}

// EditPrompt leaves generation and returns to the brief.
type EditPrompt struct{}

// Confirm accepts the design ("This is it") and generates the pattern.
type Confirm struct{}

// CycleNext moves the design carousel one view forward.
type CycleNext struct{}

// CyclePrev moves the design carousel one view back.
type CyclePrev struct{}

// SetView picks the pattern sheet view directly.
type SetView struct {
	View View
}

// ToggleFabric flips a fabric's selection.
type ToggleFabric struct {
	ID string
}

// ToggleNotion flips a notion's selection.
type ToggleNotion struct {
	ID string
}

// SelectAll selects every fabric and notion in the catalog.
type SelectAll struct{}

// DeselectAll clears both selections.
type DeselectAll struct{}

// Trigger fires one of the pattern-ready actions handled outside the
// pipeline (cart, download, print, ...).
type Trigger struct {
	Action Action
}

func (Elapsed) isEvent()      {}
func (Regenerate) isEvent()   {}
func (EditPrompt) isEvent()   {}
func (Confirm) isEvent()      {}
func (CycleNext) isEvent()    {}
func (CyclePrev) isEvent()    {}
func (SetView) isEvent()      {}
func (ToggleFabric) isEvent() {}
func (ToggleNotion) isEvent() {}
func (SelectAll) isEvent()    {}
func (DeselectAll) isEvent()  {}
func (Trigger) isEvent()      {}

// Action names an external collaborator to notify.
type Action int

const (
	ActionNone Action = iota
	ActionRegenerate
	ActionEditPrompt
	ActionAddToCart
	ActionDownloadPattern
	ActionPrintPattern
	ActionViewMyPatterns
	ActionListOnMarketplace
)

// String returns the action's hook name.
func (a Action) String() string {
	switch a {
	case ActionRegenerate:
		return "regenerate"
	case ActionEditPrompt:
		return "edit_prompt"
	case ActionAddToCart:
		return "add_to_cart"
	case ActionDownloadPattern:
		return "download_pattern"
	case ActionPrintPattern:
		return "print_pattern"
	case ActionViewMyPatterns:
		return "view_my_patterns"
	case ActionListOnMarketplace:
		return "list_on_marketplace"
	}
	return "none"
}

// Label returns the button text for the action.
func (a Action) Label() string {
	switch a {
	case ActionRegenerate:
		return "Regenerate"
	case ActionEditPrompt:
		return "Edit Prompt"
	case ActionAddToCart:
		return "Add to Cart"
	case ActionDownloadPattern:
		return "Download Pattern PDF"
	case ActionPrintPattern:
		return "Print"
	case ActionViewMyPatterns:
		return "View in My Patterns"
	case ActionListOnMarketplace:
		return "List on Marketplace"
	}
	return ""
}
