package prefs

// Indexed pairs an item with its position in the owning list.
type Indexed[T any] struct {
	Index int
	Item  T
}

// Group is the display subset of a list for one category.
type Group[T any, C ~string] struct {
	Category C
	Entries  []Indexed[T]
	// Separator is set on every non-empty group except the last one.
	Separator bool
}

// GroupBy partitions items by category in the order of cats. Categories
// without items are omitted. Positions refer to the original slice.
func GroupBy[T any, C ~string](items []T, cats Categories[C], category func(T) C) []Group[T, C] {
	var groups []Group[T, C]
	for _, c := range cats {
		var entries []Indexed[T]
		for i, it := range items {
			if category(it) == c {
				entries = append(entries, Indexed[T]{Index: i, Item: it})
			}
		}
		if len(entries) == 0 {
			continue
		}
		groups = append(groups, Group[T, C]{Category: c, Entries: entries})
	}

	for i := range groups {
		groups[i].Separator = i < len(groups)-1
	}
	return groups
}
