package sections

import (
	"github.com/colonyops/mealprefs/internal/core/logging"
	"github.com/colonyops/mealprefs/internal/core/prefs"
	"github.com/colonyops/mealprefs/internal/tui/scrolllock"
	"github.com/colonyops/mealprefs/internal/tui/views/listeditor"
)

// Dislikes edits disliked foods grouped by severity.
type Dislikes struct {
	*listeditor.Editor[prefs.DislikedFood, prefs.DislikeSeverity]
}

// NewDislikes binds an editor to list.
func NewDislikes(list *prefs.ItemList[prefs.DislikedFood], lock *scrolllock.Lock) (*Dislikes, error) {
	log := logging.Component("dislikes")

	e, err := listeditor.New(listeditor.Config[prefs.DislikedFood, prefs.DislikeSeverity]{
		Title:       "Disliked Foods",
		Placeholder: "Enter food item",
		Categories:  prefs.DislikeSeverities,
		Items:       list.Items,
		Accessors: listeditor.Accessors[prefs.DislikedFood, prefs.DislikeSeverity]{
			Name: func(d prefs.DislikedFood) string { return d.FoodName },
			SetName: func(d prefs.DislikedFood, name string) prefs.DislikedFood {
				d.FoodName = name
				return d
			},
			Category: func(d prefs.DislikedFood) prefs.DislikeSeverity { return d.Severity },
			SetCategory: func(d prefs.DislikedFood, s prefs.DislikeSeverity) prefs.DislikedFood {
				d.Severity = s
				return d
			},
			New: func(name string, s prefs.DislikeSeverity) prefs.DislikedFood {
				return prefs.DislikedFood{Severity: s, FoodName: name}
			},
		},
		Callbacks: listCallbacks(list, log),
		Identity:  identity(list),
		Lock:      lock,
	})
	if err != nil {
		return nil, err
	}
	return &Dislikes{Editor: e}, nil
}
