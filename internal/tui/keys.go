package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Increment key.Binding
	Reset     key.Binding
	NextLabel key.Binding
	PrevLabel key.Binding
	Target    key.Binding
	Sound     key.Binding
	Vibration key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Increment, k.Reset, k.NextLabel, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Increment, k.Reset, k.NextLabel, k.PrevLabel},
		{k.Target, k.Sound, k.Vibration},
		{k.Help, k.Quit},
	}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Increment: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "count"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r", "R"),
			key.WithHelp("r", "reset"),
		),
		NextLabel: key.NewBinding(
			key.WithKeys("tab", "right"),
			key.WithHelp("tab", "next dhikr"),
		),
		PrevLabel: key.NewBinding(
			key.WithKeys("shift+tab", "left"),
			key.WithHelp("shift+tab", "prev dhikr"),
		),
		Target: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "set target"),
		),
		Sound: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sound"),
		),
		Vibration: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "vibration"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
