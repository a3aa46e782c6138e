package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/colonyops/mealprefs/pkg/tuitest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPad(t *testing.T) {
	assert.Empty(t, Pad(0))
	assert.Empty(t, Pad(-3))
	assert.Equal(t, "   ", Pad(3))
	assert.Len(t, Pad(120), 120)
}

func TestItemCard(t *testing.T) {
	t.Run("shows name and actions", func(t *testing.T) {
		view := tuitest.StripANSI(ItemCard("Oatmeal", false, 0))
		assert.Contains(t, view, "Oatmeal")
		assert.Contains(t, view, "e edit")
		assert.Contains(t, view, "x remove")
	})

	t.Run("selection changes rendering", func(t *testing.T) {
		assert.NotEqual(t, ItemCard("Toast", false, 30), ItemCard("Toast", true, 30))
	})

	t.Run("long names wrap within width", func(t *testing.T) {
		name := strings.Repeat("spaghetti ", 8)
		view := tuitest.StripANSI(ItemCard(name, false, 30))
		for _, line := range strings.Split(view, "\n") {
			assert.LessOrEqual(t, len([]rune(line)), 30)
		}
	})
}

func TestEditModal(t *testing.T) {
	t.Run("opens with value", func(t *testing.T) {
		m := NewEditModal("Toast", 100, 40)
		assert.Equal(t, "Toast", m.Value())

		view := tuitest.StripANSI(m.View())
		assert.Contains(t, view, "Edit Food Item")
		assert.Contains(t, view, "Update the name of the selected food.")
		assert.Contains(t, view, "Cancel")
		assert.Contains(t, view, "Save")
	})

	t.Run("typing appends at cursor end", func(t *testing.T) {
		m := NewEditModal("Toast", 100, 40)
		for _, msg := range tuitest.Type("ed") {
			action, _ := m.Update(msg)
			assert.Equal(t, EditModalNone, action)
		}
		assert.Equal(t, "Toasted", m.Value())
	})

	t.Run("enter saves", func(t *testing.T) {
		m := NewEditModal("Toast", 100, 40)
		action, _ := m.Update(tuitest.KeyEnter())
		assert.Equal(t, EditModalSave, action)
	})

	t.Run("esc closes", func(t *testing.T) {
		m := NewEditModal("Toast", 100, 40)
		action, _ := m.Update(tuitest.KeyEsc())
		assert.Equal(t, EditModalClose, action)
		assert.Equal(t, "Toast", m.Value())
	})

	t.Run("backdrop click closes", func(t *testing.T) {
		m := NewEditModal("Toast", 100, 40)
		action, _ := m.Update(tuitest.Click(0, 0))
		assert.Equal(t, EditModalClose, action)
	})

	t.Run("click inside does nothing", func(t *testing.T) {
		m := NewEditModal("Toast", 100, 40)
		x, y, w, h := m.Bounds()
		action, _ := m.Update(tuitest.Click(x+w/2, y+h/2))
		assert.Equal(t, EditModalNone, action)
	})

	t.Run("wheel outside does nothing", func(t *testing.T) {
		m := NewEditModal("Toast", 100, 40)
		action, _ := m.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
		assert.Equal(t, EditModalNone, action)
	})

	t.Run("bounds are centered", func(t *testing.T) {
		m := NewEditModal("Toast", 100, 40)
		x, y, w, h := m.Bounds()
		require.Positive(t, w)
		require.Positive(t, h)
		assert.Equal(t, (100-w)/2, x)
		assert.Equal(t, (40-h)/2, y)
		assert.True(t, m.Contains(x, y))
		assert.False(t, m.Contains(x+w, y))
	})

	t.Run("overlay fills the screen", func(t *testing.T) {
		m := NewEditModal("Toast", 80, 30)
		lines := strings.Split(m.Overlay(), "\n")
		assert.Len(t, lines, 30)
	})
}

func TestHelpDialog(t *testing.T) {
	b := key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "next section"))
	disabled := key.NewBinding(key.WithKeys("z"), key.WithHelp("z", "hidden"), key.WithDisabled())

	h := NewHelpDialog("Keyboard Shortcuts", []HelpDialogSection{
		{Title: "Page", Bindings: []key.Binding{b, disabled}},
	})
	view := tuitest.StripANSI(h.View())

	assert.Contains(t, view, "Keyboard Shortcuts")
	assert.Contains(t, view, "Page")
	assert.Contains(t, view, "ctrl+n")
	assert.Contains(t, view, "next section")
	assert.NotContains(t, view, "hidden")
}
