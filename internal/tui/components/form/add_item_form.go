package form

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/colonyops/mealprefs/internal/core/prefs"
	"github.com/colonyops/mealprefs/internal/core/styles"
)

// AddItemEvent reports what an AddItemForm update produced.
type AddItemEvent int

const (
	AddItemNone AddItemEvent = iota
	// AddItemSubmit means enter was pressed in the name input.
	AddItemSubmit
	// AddItemCategory means the selector moved to another category.
	AddItemCategory
)

var keySubmit = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add"))

// AddItemForm pairs the category selector with the name input and the Add
// button. It owns no list state; callers read Input and Selected on submit.
type AddItemForm[C ~string] struct {
	selector *CategorySelect[C]
	input    *TextField
}

// NewAddItemForm creates an add form for the given categories.
func NewAddItemForm[C ~string](categories prefs.Categories[C], placeholder string) *AddItemForm[C] {
	return &AddItemForm[C]{
		selector: NewCategorySelect(categories),
		input:    NewTextField("", placeholder, ""),
	}
}

// Selector returns the category selector region.
func (f *AddItemForm[C]) Selector() *CategorySelect[C] { return f.selector }

// Input returns the name input region.
func (f *AddItemForm[C]) Input() *TextField { return f.input }

// Update routes msg to whichever region is focused.
func (f *AddItemForm[C]) Update(msg tea.Msg) (AddItemEvent, tea.Cmd) {
	switch {
	case f.selector.Focused():
		before := f.selector.Selected()
		_, cmd := f.selector.Update(msg)
		if f.selector.Selected() != before {
			return AddItemCategory, cmd
		}
		return AddItemNone, cmd
	case f.input.Focused():
		if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, keySubmit) {
			return AddItemSubmit, nil
		}
		_, cmd := f.input.Update(msg)
		return AddItemNone, cmd
	}
	return AddItemNone, nil
}

// View renders the selector above the input and Add button.
func (f *AddItemForm[C]) View() string {
	btnStyle := styles.ModalButtonStyle
	if f.input.Focused() {
		btnStyle = styles.ModalButtonSelectedStyle
	}
	row := lipgloss.JoinHorizontal(lipgloss.Center, f.input.View(), " ", btnStyle.Render("Add"))
	return lipgloss.JoinVertical(lipgloss.Left, f.selector.View(), row)
}
