package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the screen's key bindings.
type keyMap struct {
	Submit       key.Binding
	SwitchFocus  key.Binding
	Blur         key.Binding
	FocusInput   key.Binding
	Up           key.Binding
	Down         key.Binding
	Toggle       key.Binding
	Delete       key.Binding
	Filter       key.Binding
	FilterGlobal key.Binding
	Help         key.Binding
	Quit         key.Binding
	ForceQuit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "add task"),
		),
		SwitchFocus: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "switch focus"),
		),
		Blur: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "go to list"),
		),
		FocusInput: key.NewBinding(
			key.WithKeys("a", "i"),
			key.WithHelp("a", "new task"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("space", "toggle done"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "x", "delete", "backspace"),
			key.WithHelp("d", "delete"),
		),
		Filter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "filter"),
		),
		FilterGlobal: key.NewBinding(
			key.WithKeys("ctrl+f"),
			key.WithHelp("ctrl+f", "filter"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// inputKeys is the help shown while typing a new task.
type inputKeys struct{ keyMap }

func (k inputKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.SwitchFocus, k.FilterGlobal, k.ForceQuit}
}

func (k inputKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.SwitchFocus, k.Blur},
		{k.FilterGlobal, k.ForceQuit},
	}
}

// listKeys is the help shown while the task list has focus.
type listKeys struct{ keyMap }

func (k listKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Delete, k.Filter, k.FocusInput, k.Help, k.Quit}
}

func (k listKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle, k.Delete},
		{k.Filter, k.FocusInput, k.SwitchFocus},
		{k.Help, k.Quit, k.ForceQuit},
	}
}
