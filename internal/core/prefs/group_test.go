package prefs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func favoriteCategory(f FavoriteFood) MealCategory { return f.Category }

func TestGroupBy(t *testing.T) {
	items := []FavoriteFood{
		{Category: Dinner, FoodName: "Stew"},
		{Category: Breakfast, FoodName: "Oatmeal"},
		{Category: Dinner, FoodName: "Fish"},
	}

	groups := GroupBy(items, MealCategories, favoriteCategory)

	require.Len(t, groups, 2, "empty categories are skipped")
	assert.Equal(t, Breakfast, groups[0].Category)
	assert.Equal(t, []Indexed[FavoriteFood]{{Index: 1, Item: items[1]}}, groups[0].Entries)
	assert.True(t, groups[0].Separator)

	assert.Equal(t, Dinner, groups[1].Category)
	require.Len(t, groups[1].Entries, 2)
	assert.Equal(t, 0, groups[1].Entries[0].Index)
	assert.Equal(t, 2, groups[1].Entries[1].Index)
	assert.False(t, groups[1].Separator, "last non-empty group has no separator")
}

func TestGroupBy_ItemLandsInItsOwnCategory(t *testing.T) {
	for _, c := range MealCategories {
		t.Run(string(c), func(t *testing.T) {
			groups := GroupBy([]FavoriteFood{{Category: c, FoodName: "x"}}, MealCategories, favoriteCategory)
			require.Len(t, groups, 1)
			assert.Equal(t, c, groups[0].Category)
			assert.False(t, groups[0].Separator)
		})
	}
}

func TestGroupBy_Empty(t *testing.T) {
	assert.Empty(t, GroupBy(nil, MealCategories, favoriteCategory))
}
