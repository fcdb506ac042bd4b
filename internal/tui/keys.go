package tui

import "github.com/charmbracelet/bubbles/key"

// pickerKeys are the bindings of the project picker.
type pickerKeys struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

var keys = pickerKeys{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("j/k", "navigate"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("j/k", "navigate"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "open"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// helpLine renders the short help shown under the list.
func helpLine() string {
	bindings := []key.Binding{keys.Down, keys.Select, keys.Quit}
	out := ""
	for i, b := range bindings {
		if i > 0 {
			out += helpSepStyle.Render(" • ")
		}
		h := b.Help()
		out += helpKeyStyle.Render(h.Key) + " " + helpDescStyle.Render(h.Desc)
	}
	return out
}
