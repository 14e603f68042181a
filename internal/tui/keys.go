package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Copy       key.Binding
	Quit       key.Binding
	Undo       key.Binding
	Redo       key.Binding
	ToggleMode key.Binding
	ToggleDiff key.Binding
	Paste      key.Binding
	Separator  key.Binding
	Backspace  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Copy: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "copy & close"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
		Undo: key.NewBinding(
			key.WithKeys("ctrl+z"),
			key.WithHelp("ctrl+z", "undo"),
		),
		Redo: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "redo"),
		),
		ToggleMode: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "self-closing"),
		),
		ToggleDiff: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "diff line"),
		),
		Paste: key.NewBinding(
			key.WithKeys("ctrl+v"),
			key.WithHelp("ctrl+v", "paste"),
		),
		Separator: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", "delete"),
		),
	}
}

// helpLine renders the short help strip shown under the status bar.
func (k keyMap) helpLine() string {
	items := []key.Binding{
		k.Separator, k.Copy, k.Undo, k.Redo, k.ToggleMode, k.Paste, k.Quit,
	}
	out := ""
	for i, b := range items {
		if i > 0 {
			out += "  "
		}
		out += b.Help().Key + " " + b.Help().Desc
	}
	return out
}
