package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the picker's key bindings
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Choose   key.Binding
	Remove   key.Binding
	Dismiss  key.Binding
	Confirm  key.Binding
	Quit     key.Binding
	Help     key.Binding
	Contacts key.Binding
}

// DefaultKeyMap returns the default bindings. Printable keys are left to
// the query input.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑/ctrl+p", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓/ctrl+n", "next"),
		),
		Choose: key.NewBinding(
			key.WithKeys("enter", "tab"),
			key.WithHelp("enter", "add"),
		),
		Remove: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", "remove last"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close/cancel"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "done"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
		Contacts: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "contacts"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Choose, k.Remove, k.Confirm, k.Dismiss, k.Help}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Choose},
		{k.Remove, k.Dismiss},
		{k.Confirm, k.Quit, k.Help, k.Contacts},
	}
}
