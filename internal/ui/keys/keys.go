package keys

import (
	"charm.land/bubbles/v2/key"

	"github.com/abhisek/histquiz/internal/ui/layout"
)

// KeyMap lists every binding used by the quiz screens.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Submit  key.Binding
	Pick    key.Binding
	Next    key.Binding
	Restart key.Binding
	Start   key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// Default is the standard key map.
var Default = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "Up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "Down"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter", "space"),
		key.WithHelp("Enter", "Answer"),
	),
	Pick: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("1-9", "Pick"),
	),
	Next: key.NewBinding(
		key.WithKeys("enter", "n", "space"),
		key.WithHelp("Enter", "Next question"),
	),
	Restart: key.NewBinding(
		key.WithKeys("enter", "r"),
		key.WithHelp("Enter", "Restart quiz"),
	),
	Start: key.NewBinding(
		key.WithKeys("enter", "space"),
		key.WithHelp("Enter", "Start"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "Back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("Ctrl+C", "Quit"),
	),
}

// Hints converts bindings into footer hints, skipping disabled ones.
func Hints(bindings ...key.Binding) []layout.KeyHint {
	hints := make([]layout.KeyHint, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		hints = append(hints, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return hints
}

// PickIndex returns the zero-based option index for a digit key, or -1.
func PickIndex(k string) int {
	if len(k) != 1 || k[0] < '1' || k[0] > '9' {
		return -1
	}
	return int(k[0] - '1')
}
