package patternwizard

import "charm.land/bubbles/v2/key"

// resultKeyMap holds the result screen shortcuts.
type resultKeyMap struct {
	Prev       key.Binding
	Next       key.Binding
	Regenerate key.Binding
	EditPrompt key.Binding
	Confirm    key.Binding

	Views       []key.Binding // One per generation.Views entry
	Up          key.Binding
	Down        key.Binding
	Toggle      key.Binding
	SelectAll   key.Binding
	DeselectAll key.Binding
	Cart        key.Binding
	Download    key.Binding
	Print       key.Binding
	MyPatterns  key.Binding
	Marketplace key.Binding
}

func defaultResultKeys() resultKeyMap {
	return resultKeyMap{
		Prev:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "prev view")),
		Next:       key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next view")),
		Regenerate: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "regenerate")),
		EditPrompt: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit prompt")),
		Confirm:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "this is it")),

		Views: []key.Binding{
			key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "front")),
			key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "back")),
			key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "left")),
			key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "right")),
		},
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "down")),
		Toggle:      key.NewBinding(key.WithKeys("space", " "), key.WithHelp("space", "toggle")),
		SelectAll:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select all")),
		DeselectAll: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear")),
		Cart:        key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "cart")),
		Download:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "download")),
		Print:       key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "print")),
		MyPatterns:  key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "my patterns")),
		Marketplace: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sell")),
	}
}

// hintPairs flattens bindings into RenderHintBar arguments.
func hintPairs(bindings ...key.Binding) []string {
	pairs := make([]string, 0, len(bindings)*2)
	for _, b := range bindings {
		h := b.Help()
		pairs = append(pairs, h.Key, h.Desc)
	}
	return pairs
}
