package main

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit   key.Binding
	Legend key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:   key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
		Legend: key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "legend")),
	}
}
