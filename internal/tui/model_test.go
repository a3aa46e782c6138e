package tui

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/mealprefs/internal/core/prefs"
	"github.com/colonyops/mealprefs/pkg/tuitest"
)

func newModel(t *testing.T, profile *prefs.Profile) Model {
	t.Helper()
	m, err := New(profile)
	require.NoError(t, err)
	return update(m, tuitest.WindowSize(80, 20))
}

func update(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func tallProfile() *prefs.Profile {
	p := prefs.NewProfile()
	for i := range 12 {
		p.Favorites.Append(prefs.FavoriteFood{Category: prefs.MealCategories[i%4], FoodName: fmt.Sprintf("Food %d", i)})
	}
	return p
}

func TestModelRendersPage(t *testing.T) {
	m := newModel(t, prefs.NewProfile())
	view := tuitest.StripANSI(m.View())

	assert.Contains(t, view, "Elderly Meal Preferences")
	assert.Contains(t, view, "My Favorite Foods")
	assert.Contains(t, view, "ctrl+n")
}

func TestModelAddsThroughFocusedSection(t *testing.T) {
	p := prefs.NewProfile()
	m := newModel(t, p)

	m = update(m, tuitest.Type("Oatmeal")...)
	m = update(m, tuitest.KeyEnter())

	assert.Equal(t, []prefs.FavoriteFood{{Category: prefs.Breakfast, FoodName: "Oatmeal"}}, p.Favorites.Items())
	assert.Same(t, p, m.Profile())
}

func TestModelSectionFocus(t *testing.T) {
	p := prefs.NewProfile()
	m := newModel(t, p)
	require.Equal(t, 0, m.Focused())

	m = update(m, tuitest.Key(tea.KeyCtrlN))
	assert.Equal(t, 1, m.Focused())

	m = update(m, tuitest.Type("Liver")...)
	m = update(m, tuitest.KeyEnter())
	assert.Equal(t, 1, p.Dislikes.Len())
	assert.Zero(t, p.Favorites.Len())

	m = update(m, tuitest.Key(tea.KeyCtrlP), tuitest.Key(tea.KeyCtrlP))
	assert.Equal(t, 3, m.Focused(), "focus wraps around")
}

func TestModelScrollLock(t *testing.T) {
	m := newModel(t, tallProfile())

	m = update(m, tuitest.Key(tea.KeyPgDown))
	scrolled := m.viewport.YOffset
	require.Positive(t, scrolled)
	m = update(m, tuitest.Key(tea.KeyPgUp))
	require.Zero(t, m.viewport.YOffset)

	// open the edit dialog on the first card
	m = update(m, tuitest.KeyTab(), tuitest.KeyPress('e'))
	require.True(t, m.ScrollLocked())
	assert.Contains(t, tuitest.StripANSI(m.View()), "Edit Food Item")

	m = update(m, tuitest.Key(tea.KeyPgDown))
	assert.Zero(t, m.viewport.YOffset, "page key ignored while locked")

	m = update(m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	assert.Zero(t, m.viewport.YOffset, "wheel ignored while locked")

	m = update(m, tuitest.KeyEsc())
	require.False(t, m.ScrollLocked())

	m = update(m, tuitest.Key(tea.KeyPgDown))
	assert.Equal(t, scrolled, m.viewport.YOffset, "scrolling restored after close")
}

func TestModelBackdropClickReleasesLock(t *testing.T) {
	m := newModel(t, tallProfile())
	m = update(m, tuitest.KeyTab(), tuitest.KeyPress('e'))
	require.True(t, m.ScrollLocked())

	m = update(m, tuitest.Click(0, 0))
	assert.False(t, m.ScrollLocked())
}

func TestModelHelp(t *testing.T) {
	m := newModel(t, prefs.NewProfile())

	m = update(m, tuitest.Key(tea.KeyF1))
	view := tuitest.StripANSI(m.View())
	assert.Contains(t, view, "Keyboard Shortcuts")
	assert.Contains(t, view, "next section")

	m = update(m, tuitest.KeyEsc())
	assert.NotContains(t, tuitest.StripANSI(m.View()), "Keyboard Shortcuts")
}

func TestModelQuitReleasesLock(t *testing.T) {
	m := newModel(t, tallProfile())
	m = update(m, tuitest.KeyTab(), tuitest.KeyPress('e'))
	require.True(t, m.ScrollLocked())

	next, cmd := m.Update(tuitest.Key(tea.KeyCtrlC))
	m = next.(Model)

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.False(t, m.ScrollLocked())
	assert.Empty(t, m.View())
}
