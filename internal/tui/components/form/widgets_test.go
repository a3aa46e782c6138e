package form

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/colonyops/mealprefs/internal/core/prefs"
	"github.com/colonyops/mealprefs/pkg/tuitest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestButtonRow(t *testing.T) {
	t.Run("press highlighted button", func(t *testing.T) {
		b := NewButtonRow("Quick Add", []string{"Nuts", "Dairy", "Soy"})
		b.Focus()

		b.Update(tuitest.Key(tea.KeyRight))
		b.Update(tuitest.KeyEnter())

		label, ok := b.Pressed()
		require.True(t, ok)
		assert.Equal(t, "Dairy", label)

		_, ok = b.Pressed()
		assert.False(t, ok, "press is consumed")
	})

	t.Run("cursor clamps at edges", func(t *testing.T) {
		b := NewButtonRow("", []string{"A", "B"})
		b.Focus()
		b.Update(tuitest.Key(tea.KeyLeft))
		assert.Equal(t, "A", b.Value())

		b.Update(tuitest.Key(tea.KeyRight))
		b.Update(tuitest.Key(tea.KeyRight))
		assert.Equal(t, "B", b.Value())
	})

	t.Run("ignored when blurred", func(t *testing.T) {
		b := NewButtonRow("", []string{"A"})
		b.Update(tuitest.KeyEnter())
		_, ok := b.Pressed()
		assert.False(t, ok)
	})

	t.Run("view lists buttons", func(t *testing.T) {
		b := NewButtonRow("Quick Add", []string{"Nuts", "Soy"})
		view := tuitest.StripANSI(b.View())
		assert.Contains(t, view, "Quick Add")
		assert.Contains(t, view, "+ Nuts")
		assert.Contains(t, view, "+ Soy")
	})
}

func TestCategorySelect(t *testing.T) {
	s := NewCategorySelect(prefs.MealCategories)
	assert.Equal(t, prefs.Breakfast, s.Selected())

	s.Update(tuitest.Key(tea.KeyRight))
	assert.Equal(t, prefs.Breakfast, s.Selected(), "blurred selector ignores keys")

	s.Focus()
	s.Update(tuitest.Key(tea.KeyRight))
	s.Update(tuitest.KeyPress('l'))
	assert.Equal(t, prefs.Dinner, s.Selected())

	s.Update(tuitest.KeyPress('h'))
	assert.Equal(t, prefs.Lunch, s.Selected())

	s.SetSelected(prefs.Snacks)
	assert.Equal(t, prefs.Snacks, s.Value())

	s.SetSelected(prefs.MealCategory("Brunch"))
	assert.Equal(t, prefs.Snacks, s.Selected())

	view := tuitest.StripANSI(s.View())
	for _, c := range prefs.MealCategories {
		assert.Contains(t, view, string(c))
	}
}

func TestFocusRing(t *testing.T) {
	a := NewTextField("A", "", "")
	b := NewTextField("B", "", "")
	c := NewButtonRow("C", nil)
	r := NewFocusRing(a, b, c)

	r.Focus()
	assert.True(t, a.Focused())

	r.Next()
	assert.False(t, a.Focused())
	assert.True(t, b.Focused())

	r.Next()
	r.Next()
	assert.True(t, a.Focused(), "next wraps to first")

	r.Prev()
	assert.True(t, c.Focused(), "prev wraps to last")
	assert.Equal(t, 2, r.Index())

	r.Blur()
	assert.False(t, r.Focused())

	assert.Nil(t, NewFocusRing().Next())
}

func TestAddItemForm(t *testing.T) {
	t.Run("enter in input submits", func(t *testing.T) {
		f := NewAddItemForm(prefs.MealCategories, "Enter food item")
		f.Input().Focus()
		for _, msg := range tuitest.Type("Oatmeal") {
			f.Update(msg)
		}
		ev, _ := f.Update(tuitest.KeyEnter())
		assert.Equal(t, AddItemSubmit, ev)
		assert.Equal(t, "Oatmeal", f.Input().Text())
	})

	t.Run("selector move reports category", func(t *testing.T) {
		f := NewAddItemForm(prefs.DislikeSeverities, "Enter food item")
		f.Selector().Focus()
		ev, _ := f.Update(tuitest.Key(tea.KeyRight))
		assert.Equal(t, AddItemCategory, ev)
		assert.Equal(t, prefs.WontEat, f.Selector().Selected())

		ev, _ = f.Update(tuitest.Key(tea.KeyRight))
		assert.Equal(t, AddItemNone, ev, "already at last category")
	})

	t.Run("nothing focused", func(t *testing.T) {
		f := NewAddItemForm(prefs.MealCategories, "")
		ev, cmd := f.Update(tuitest.KeyEnter())
		assert.Equal(t, AddItemNone, ev)
		assert.Nil(t, cmd)
	})

	t.Run("view shows add button", func(t *testing.T) {
		f := NewAddItemForm(prefs.MealCategories, "Enter food item")
		view := tuitest.StripANSI(f.View())
		assert.Contains(t, view, "Add")
		assert.Contains(t, view, "Enter food item")
	})
}
