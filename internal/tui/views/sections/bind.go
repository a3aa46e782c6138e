package sections

import (
	"github.com/rs/zerolog"

	"github.com/colonyops/mealprefs/internal/core/prefs"
	"github.com/colonyops/mealprefs/internal/tui/views/listeditor"
)

// listCallbacks applies editor changes to list.
func listCallbacks[T any](list *prefs.ItemList[T], log zerolog.Logger) listeditor.Callbacks[T] {
	return listeditor.Callbacks[T]{
		OnAdd: func(item T) {
			list.Append(item)
		},
		OnEdit: func(i int, item T) {
			if err := list.Replace(i, item); err != nil {
				log.Warn().Err(err).Int("index", i).Msg("edit dropped")
			}
		},
		OnRemove: func(i int) {
			if err := list.RemoveAt(i); err != nil {
				log.Warn().Err(err).Int("index", i).Msg("remove dropped")
			}
		},
	}
}

func identity[T any](list *prefs.ItemList[T]) *listeditor.Identity {
	return &listeditor.Identity{ID: list.ID, IndexOf: list.IndexOf}
}
