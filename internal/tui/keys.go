package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap holds the bindings that are not plain single-character keys.
type keyMap struct {
	Equals     key.Binding
	Backspace  key.Binding
	ClearEntry key.Binding
	Clear      key.Binding
	Negate     key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Equals: key.NewBinding(
			key.WithKeys("enter", "="),
			key.WithHelp("enter", "equals"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", "delete digit"),
		),
		ClearEntry: key.NewBinding(
			key.WithKeys("delete"),
			key.WithHelp("del", "clear entry"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear"),
		),
		Negate: key.NewBinding(
			key.WithKeys("f9", "n"),
			key.WithHelp("f9/n", "±"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Equals, k.Clear, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Equals, k.Backspace, k.ClearEntry, k.Clear},
		{k.Negate, k.Help, k.Quit},
	}
}
