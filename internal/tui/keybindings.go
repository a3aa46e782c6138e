package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/colonyops/mealprefs/internal/tui/components"
	"github.com/colonyops/mealprefs/internal/tui/views/listeditor"
)

// KeyMap holds the page level key bindings.
type KeyMap struct {
	NextSection key.Binding
	PrevSection key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	HalfUp      key.Binding
	HalfDown    key.Binding
	Help        key.Binding
	CloseHelp   key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the page bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextSection: key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "next section")),
		PrevSection: key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "previous section")),
		PageUp:      key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll up")),
		PageDown:    key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdown", "scroll down")),
		HalfUp:      key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "half page up")),
		HalfDown:    key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "half page down")),
		Help:        key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
		CloseHelp:   key.NewBinding(key.WithKeys("esc", "f1"), key.WithHelp("esc", "close help")),
		Quit:        key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextSection, k.PrevSection, k.PageDown, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextSection, k.PrevSection},
		{k.PageUp, k.PageDown, k.HalfUp, k.HalfDown},
		{k.Help, k.Quit},
	}
}

func (k KeyMap) helpSections() []components.HelpDialogSection {
	editor := listeditor.DefaultKeyMap()
	return []components.HelpDialogSection{
		{Title: "Page", Bindings: []key.Binding{k.NextSection, k.PrevSection, k.PageUp, k.PageDown, k.HalfUp, k.HalfDown, k.Quit}},
		{Title: "Food Lists", Bindings: append([]key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add item")),
		}, editor.Bindings()...)},
		{Title: "Edit Dialog", Bindings: []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		}},
		{Title: "Considerations", Bindings: []key.Binding{
			key.NewBinding(key.WithKeys("enter", "ctrl+j"), key.WithHelp("enter/ctrl+j", "submit")),
		}},
	}
}
