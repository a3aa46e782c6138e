package sections

import (
	"github.com/colonyops/mealprefs/internal/core/logging"
	"github.com/colonyops/mealprefs/internal/core/prefs"
	"github.com/colonyops/mealprefs/internal/tui/scrolllock"
	"github.com/colonyops/mealprefs/internal/tui/views/listeditor"
)

// Favorites edits favorite foods grouped by meal.
type Favorites struct {
	*listeditor.Editor[prefs.FavoriteFood, prefs.MealCategory]
}

// NewFavorites binds an editor to list.
func NewFavorites(list *prefs.ItemList[prefs.FavoriteFood], lock *scrolllock.Lock) (*Favorites, error) {
	log := logging.Component("favorites")

	e, err := listeditor.New(listeditor.Config[prefs.FavoriteFood, prefs.MealCategory]{
		Title:       "My Favorite Foods",
		Placeholder: "Enter food item",
		Categories:  prefs.MealCategories,
		Items:       list.Items,
		Accessors: listeditor.Accessors[prefs.FavoriteFood, prefs.MealCategory]{
			Name: func(f prefs.FavoriteFood) string { return f.FoodName },
			SetName: func(f prefs.FavoriteFood, name string) prefs.FavoriteFood {
				f.FoodName = name
				return f
			},
			Category: func(f prefs.FavoriteFood) prefs.MealCategory { return f.Category },
			SetCategory: func(f prefs.FavoriteFood, c prefs.MealCategory) prefs.FavoriteFood {
				f.Category = c
				return f
			},
			New: func(name string, c prefs.MealCategory) prefs.FavoriteFood {
				return prefs.FavoriteFood{Category: c, FoodName: name}
			},
		},
		Callbacks: listCallbacks(list, log),
		Identity:  identity(list),
		Lock:      lock,
	})
	if err != nil {
		return nil, err
	}
	return &Favorites{Editor: e}, nil
}
