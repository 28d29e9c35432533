package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up         key.Binding
	down       key.Binding
	pageUp     key.Binding
	pageDown   key.Binding
	enter      key.Binding
	esc        key.Binding
	tab        key.Binding
	backtab    key.Binding
	quit       key.Binding
	disconnect key.Binding
	copy       key.Binding
	info       key.Binding
}

var keys = keyMap{
	up:         key.NewBinding(key.WithKeys("up")),
	down:       key.NewBinding(key.WithKeys("down")),
	pageUp:     key.NewBinding(key.WithKeys("pgup")),
	pageDown:   key.NewBinding(key.WithKeys("pgdown")),
	enter:      key.NewBinding(key.WithKeys("enter")),
	esc:        key.NewBinding(key.WithKeys("esc")),
	tab:        key.NewBinding(key.WithKeys("tab")),
	backtab:    key.NewBinding(key.WithKeys("shift+tab")),
	quit:       key.NewBinding(key.WithKeys("ctrl+c")),
	disconnect: key.NewBinding(key.WithKeys("ctrl+d")),
	copy:       key.NewBinding(key.WithKeys("ctrl+y")),
	info:       key.NewBinding(key.WithKeys("f1")),
}
