package sections

import (
	"strings"
	"testing"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/mealprefs/internal/core/prefs"
	"github.com/colonyops/mealprefs/internal/tui/scrolllock"
	"github.com/colonyops/mealprefs/pkg/tuitest"
)

var (
	_ Section = (*Favorites)(nil)
	_ Section = (*Dislikes)(nil)
	_ Section = (*Allergies)(nil)
	_ Section = (*Considerations)(nil)
)

func TestFavorites(t *testing.T) {
	list := prefs.NewItemList[prefs.FavoriteFood]()
	f, err := NewFavorites(list, scrolllock.New())
	require.NoError(t, err)

	assert.Equal(t, "My Favorite Foods", f.Title())
	f.SelectCategory(prefs.Snacks)
	f.Add("Crackers")

	assert.Equal(t, []prefs.FavoriteFood{{Category: prefs.Snacks, FoodName: "Crackers"}}, list.Items())
	assert.Contains(t, tuitest.StripANSI(f.View()), "Enter food item")
}

func TestDislikes(t *testing.T) {
	list := prefs.NewItemList[prefs.DislikedFood]()
	d, err := NewDislikes(list, scrolllock.New())
	require.NoError(t, err)

	d.Add("Liver")
	d.SelectCategory(prefs.WontEat)
	d.Add("Okra")

	assert.Equal(t, []prefs.DislikedFood{
		{Severity: prefs.MildDislike, FoodName: "Liver"},
		{Severity: prefs.WontEat, FoodName: "Okra"},
	}, list.Items())

	require.NoError(t, d.OpenEdit(0))
	d.SetDraft("Beef liver")
	require.NoError(t, d.SaveEdit())
	got, err := list.At(0)
	require.NoError(t, err)
	assert.Equal(t, prefs.DislikedFood{Severity: prefs.MildDislike, FoodName: "Beef liver"}, got)
}

func TestAllergies(t *testing.T) {
	t.Run("quick add twice adds once", func(t *testing.T) {
		list := prefs.NewItemList[prefs.Allergy]()
		a, err := NewAllergies(list, scrolllock.New())
		require.NoError(t, err)

		assert.True(t, a.QuickAdd("Nuts"))
		assert.False(t, a.QuickAdd("Nuts"))
		assert.False(t, a.QuickAdd("nuts"))
		assert.Equal(t, []prefs.Allergy{{Severity: prefs.MildIntolerance, FoodName: "Nuts"}}, list.Items())
	})

	t.Run("same name at two severities", func(t *testing.T) {
		list := prefs.NewItemList[prefs.Allergy]()
		a, err := NewAllergies(list, scrolllock.New())
		require.NoError(t, err)

		a.QuickAdd("Dairy")
		a.SelectCategory(prefs.SevereAllergy)
		assert.Equal(t, prefs.SevereAllergy, a.Severity())
		a.QuickAdd("Dairy")

		assert.Equal(t, []prefs.Allergy{
			{Severity: prefs.MildIntolerance, FoodName: "Dairy"},
			{Severity: prefs.SevereAllergy, FoodName: "Dairy"},
		}, list.Items())
	})

	t.Run("form add uses shared severity", func(t *testing.T) {
		list := prefs.NewItemList[prefs.Allergy]()
		a, err := NewAllergies(list, scrolllock.New())
		require.NoError(t, err)

		a.SetSeverity(prefs.SevereAllergy)
		a.Add("Peanuts")
		got, err := list.At(0)
		require.NoError(t, err)
		assert.Equal(t, prefs.SevereAllergy, got.Severity)

		a.SetSeverity(prefs.AllergySeverity("Deadly"))
		assert.Equal(t, prefs.SevereAllergy, a.Severity())
	})

	t.Run("preset row via keyboard", func(t *testing.T) {
		list := prefs.NewItemList[prefs.Allergy]()
		a, err := NewAllergies(list, scrolllock.New())
		require.NoError(t, err)

		a.Focus()
		// input -> presets, then second preset
		a.Update(tuitest.KeyTab())
		a.Update(tuitest.Key(tea.KeyRight))
		a.Update(tuitest.KeyEnter())
		a.Update(tuitest.KeyEnter())

		assert.Equal(t, []prefs.Allergy{{Severity: prefs.MildIntolerance, FoodName: "Dairy"}}, list.Items())
	})

	t.Run("view shows presets", func(t *testing.T) {
		a, err := NewAllergies(prefs.NewItemList[prefs.Allergy](), scrolllock.New())
		require.NoError(t, err)

		view := tuitest.StripANSI(a.View())
		assert.Contains(t, view, "Food Intolerances / Allergies")
		assert.Contains(t, view, "Quick Add Common Allergies:")
		for _, name := range prefs.CommonAllergies {
			assert.Contains(t, view, name)
		}
	})
}

func TestConsiderations(t *testing.T) {
	t.Run("submissions keep order", func(t *testing.T) {
		log := &prefs.ConsiderationLog{}
		c := NewConsiderations(log)

		assert.True(t, c.Submit("a"))
		assert.True(t, c.Submit("b"))
		assert.False(t, c.Submit("   "))
		assert.Equal(t, []string{"a", "b"}, log.Entries())
	})

	t.Run("input capped at limit", func(t *testing.T) {
		c := NewConsiderations(&prefs.ConsiderationLog{})
		c.SetInput(strings.Repeat("x", 510))
		assert.Len(t, c.Input(), prefs.MaxConsiderationLength)
	})

	t.Run("wide characters count once each", func(t *testing.T) {
		c := NewConsiderations(&prefs.ConsiderationLog{})
		c.Focus()
		c.SetInput(strings.Repeat("粥", 300))
		for _, msg := range tuitest.Type("汤") {
			c.Update(msg)
		}
		assert.Equal(t, 301, utf8.RuneCountInString(c.Input()))
		assert.Contains(t, tuitest.StripANSI(c.View()), "301 / 500 characters")

		c.SetInput(strings.Repeat("粥", 600))
		assert.Equal(t, prefs.MaxConsiderationLength, utf8.RuneCountInString(c.Input()))
	})

	t.Run("enter submits and clears", func(t *testing.T) {
		log := &prefs.ConsiderationLog{}
		c := NewConsiderations(log)
		c.Focus()

		for _, msg := range tuitest.Type("No spicy food") {
			c.Update(msg)
		}
		assert.True(t, c.CanSubmit())
		c.Update(tuitest.KeyEnter())

		assert.Equal(t, []string{"No spicy food"}, log.Entries())
		assert.Empty(t, c.Input())
		assert.False(t, c.CanSubmit())
	})

	t.Run("ctrl+j submits", func(t *testing.T) {
		log := &prefs.ConsiderationLog{}
		c := NewConsiderations(log)
		c.Focus()
		c.SetInput("  Cut food small  ")
		c.Update(tuitest.Key(tea.KeyCtrlJ))

		assert.Equal(t, []string{"Cut food small"}, log.Entries())
	})

	t.Run("blank enter ignored", func(t *testing.T) {
		log := &prefs.ConsiderationLog{}
		c := NewConsiderations(log)
		c.Focus()
		c.Update(tuitest.KeyEnter())
		assert.Zero(t, log.Len())
	})

	t.Run("view shows counter log and examples", func(t *testing.T) {
		log := &prefs.ConsiderationLog{}
		c := NewConsiderations(log)
		c.Submit("Warm milk at night")
		c.SetInput("abc")

		view := tuitest.StripANSI(c.View())
		assert.Contains(t, view, "Additional Considerations")
		assert.Contains(t, view, "3 / 500 characters")
		assert.Contains(t, view, "Submitted Considerations:")
		assert.Contains(t, view, "Warm milk at night")
		assert.Contains(t, view, prefs.ConsiderationExamples[0])
		assert.Empty(t, c.ModalView())
	})
}
