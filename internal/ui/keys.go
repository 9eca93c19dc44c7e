package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the dashboard bindings outside the palette.
type keyMap struct {
	Quit       key.Binding
	Palette    key.Binding
	Reload     key.Binding
	NextPanel  key.Binding
	FacetLeft  key.Binding
	FacetRight key.Binding
	ToggleTag  key.Binding
	ClearTag   key.Binding
	Down       key.Binding
	Up         key.Binding
	Top        key.Binding
	Bottom     key.Binding
	Panel      key.Binding
}

var keys = keyMap{
	Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Palette:    key.NewBinding(key.WithKeys("/", "ctrl+k"), key.WithHelp("/", "search")),
	Reload:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	NextPanel:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "panel")),
	FacetLeft:  key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/l", "tags")),
	FacetRight: key.NewBinding(key.WithKeys("l", "right")),
	ToggleTag:  key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle tag")),
	ClearTag:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear tag")),
	Down:       key.NewBinding(key.WithKeys("j", "down")),
	Up:         key.NewBinding(key.WithKeys("k", "up")),
	Top:        key.NewBinding(key.WithKeys("g", "home")),
	Bottom:     key.NewBinding(key.WithKeys("G", "end")),
	Panel:      key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6"), key.WithHelp("1-6", "panels")),
}

// hintBindings are shown in the status bar, in order.
var hintBindings = []key.Binding{
	keys.Panel, keys.FacetLeft, keys.ToggleTag, keys.ClearTag, keys.Palette, keys.Reload, keys.Quit,
}
