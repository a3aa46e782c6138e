// Package form provides focusable input widgets shared by the preference
// sections: text inputs, the category pill selector, button rows and the
// add-item form.
package form

import tea "github.com/charmbracelet/bubbletea"

// Focusable is anything that can hold keyboard focus within a section.
type Focusable interface {
	Focus() tea.Cmd
	Blur()
	Focused() bool
}

// Field is the interface implemented by all form field types.
type Field interface {
	Focusable
	Update(msg tea.Msg) (Field, tea.Cmd)
	View() string
	Value() any    // string for text fields, the label type for selectors
	Label() string // Display label for the field
}
