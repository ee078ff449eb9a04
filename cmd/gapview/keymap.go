package main

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Left, Right key.Binding
	Home, End   key.Binding

	Backspace, Delete key.Binding
	Enter             key.Binding

	Undo, Redo key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Left:  key.NewBinding(key.WithKeys("left", "ctrl+b"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right", "ctrl+f"), key.WithHelp("→", "right")),

		Home: key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "line start")),
		End:  key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete", "ctrl+d"), key.WithHelp("del", "delete right")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),

		Undo: key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Redo: key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "redo")),
		Quit: key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

func (k keyMap) help() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Backspace, k.Undo, k.Redo, k.Quit}
}
