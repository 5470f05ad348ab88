package showcase

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the host model's bindings. Modal navigation keys live in
// the modal package.
type keyMap struct {
	Quit     key.Binding
	ForceQ   key.Binding
	Copy     key.Binding
	Download key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "quit"),
		),
		ForceQ: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy as markdown"),
		),
		Download: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "copy download link"),
		),
	}
}

// hint formats bindings as "key action · key action".
func hint(bindings ...key.Binding) string {
	var s string
	for i, b := range bindings {
		if i > 0 {
			s += " · "
		}
		h := b.Help()
		s += h.Key + " " + h.Desc
	}
	return s
}
