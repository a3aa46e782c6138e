package listeditor

import (
	"errors"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/mealprefs/internal/core/prefs"
	"github.com/colonyops/mealprefs/internal/core/validate"
	"github.com/colonyops/mealprefs/internal/tui/components/form"
	"github.com/colonyops/mealprefs/internal/tui/scrolllock"
)

var errMissing = errors.New("is required")

// Accessors read and write the name and category of a list item.
type Accessors[T any, C ~string] struct {
	Name        func(T) string
	SetName     func(T, string) T
	Category    func(T) C
	SetCategory func(T, C) T
	// New builds a fresh item for Add.
	New func(name string, category C) T
}

// Callbacks notify the list owner of edits. The editor never mutates the
// list itself.
type Callbacks[T any] struct {
	OnAdd    func(T)
	OnEdit   func(index int, item T)
	OnRemove func(index int)
}

// Identity lets the editor follow an item across list changes while the
// edit modal is open. Without it the edit applies to the opened position.
type Identity struct {
	ID      func(index int) (string, error)
	IndexOf func(id string) int
}

// Config configures an Editor.
type Config[T any, C ~string] struct {
	Title       string
	Placeholder string
	Categories  prefs.Categories[C]

	// Items returns the current list. It is called on every render and
	// operation.
	Items     func() []T
	Accessors Accessors[T, C]
	Callbacks Callbacks[T]
	Identity  *Identity

	// Selected and OnCategoryChange hand the selected category to the
	// owner. Both must be set together.
	Selected         func() C
	OnCategoryChange func(C)

	// RenderCard overrides the default item card.
	RenderCard func(item T, selected bool, width int) string

	// Extra is an optional region rendered below the add form.
	Extra form.Field

	// Lock is held while the edit modal is open.
	Lock *scrolllock.Lock
}

func present(ok bool) error {
	if !ok {
		return errMissing
	}
	return nil
}

func (c Config[T, C]) validate() error {
	return criterio.ValidateStruct(
		validate.NonBlankField("title", c.Title),
		criterio.Run("categories", len(c.Categories) > 0, present),
		criterio.Run("items", c.Items != nil, present),
		criterio.Run("accessors.name", c.Accessors.Name != nil, present),
		criterio.Run("accessors.set_name", c.Accessors.SetName != nil, present),
		criterio.Run("accessors.category", c.Accessors.Category != nil, present),
		criterio.Run("accessors.set_category", c.Accessors.SetCategory != nil, present),
		criterio.Run("accessors.new", c.Accessors.New != nil, present),
		criterio.Run("callbacks.on_add", c.Callbacks.OnAdd != nil, present),
		criterio.Run("callbacks.on_edit", c.Callbacks.OnEdit != nil, present),
		criterio.Run("callbacks.on_remove", c.Callbacks.OnRemove != nil, present),
		criterio.Run("on_category_change", (c.Selected == nil) == (c.OnCategoryChange == nil), present),
	)
}
