package view

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the view key bindings.
type KeyMap struct {
	PageUp, PageDown key.Binding
	ClearSelection   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		PageUp:         key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll up")),
		PageDown:       key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "scroll down")),
		ClearSelection: key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear selection")),
	}
}
