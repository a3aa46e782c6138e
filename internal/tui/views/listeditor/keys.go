package listeditor

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the editor key bindings.
type KeyMap struct {
	NextRegion key.Binding
	PrevRegion key.Binding
	CardPrev   key.Binding
	CardNext   key.Binding
	Edit       key.Binding
	Remove     key.Binding
}

// DefaultKeyMap returns the editor bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextRegion: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		PrevRegion: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous field")),
		CardPrev:   key.NewBinding(key.WithKeys("up", "left", "k", "h"), key.WithHelp("←/↑", "previous item")),
		CardNext:   key.NewBinding(key.WithKeys("down", "right", "j", "l"), key.WithHelp("→/↓", "next item")),
		Edit:       key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit item")),
		Remove:     key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "remove item")),
	}
}

// Bindings lists the bindings for the help dialog.
func (k KeyMap) Bindings() []key.Binding {
	return []key.Binding{k.NextRegion, k.PrevRegion, k.CardPrev, k.CardNext, k.Edit, k.Remove}
}

var keys = DefaultKeyMap()
