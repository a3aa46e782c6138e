// Package listeditor implements the categorized list editor shared by the
// favorites, dislikes and allergies sections.
//
// The editor is a controlled component: it renders whatever Items returns and
// reports every change through Callbacks. Items are grouped by category in
// the order the categories were supplied.
package listeditor

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/colonyops/mealprefs/internal/core/logging"
	"github.com/colonyops/mealprefs/internal/core/prefs"
	"github.com/colonyops/mealprefs/internal/core/validate"
	"github.com/colonyops/mealprefs/internal/tui/components"
	"github.com/colonyops/mealprefs/internal/tui/components/form"
)

// draft is the staged edit while the modal is open.
type draft[C ~string] struct {
	index    int
	id       string
	name     string
	category C
}

// Editor is a categorized list editor with an add form, grouped item cards
// and an edit modal.
type Editor[T any, C ~string] struct {
	cfg      Config[T, C]
	selected C

	form  *form.AddItemForm[C]
	cards *cardCursor
	ring  *form.FocusRing

	modal *components.EditModal
	draft *draft[C]

	token  string
	width  int
	height int
	log    zerolog.Logger
}

// New creates an editor from cfg.
func New[T any, C ~string](cfg Config[T, C]) (*Editor[T, C], error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("list editor %q: %w", cfg.Title, err)
	}

	e := &Editor[T, C]{
		cfg:      cfg,
		selected: cfg.Categories.Default(),
		form:     form.NewAddItemForm(cfg.Categories, cfg.Placeholder),
		cards:    &cardCursor{},
		token:    uuid.NewString(),
		log:      logging.Section(logging.Component("listeditor"), cfg.Title),
	}

	regions := []form.Focusable{e.form.Selector(), e.form.Input()}
	if cfg.Extra != nil {
		regions = append(regions, cfg.Extra)
	}
	regions = append(regions, e.cards)
	e.ring = form.NewFocusRing(regions...)

	// start on the name input
	e.ring.Set(1)
	e.ring.Blur()

	e.syncSelector()
	return e, nil
}

// Title returns the section title.
func (e *Editor[T, C]) Title() string { return e.cfg.Title }

// Selected returns the category new items are added under.
func (e *Editor[T, C]) Selected() C {
	if e.cfg.Selected != nil {
		return e.cfg.Selected()
	}
	return e.selected
}

// SelectCategory changes the selected category. Labels outside the
// category set are ignored.
func (e *Editor[T, C]) SelectCategory(c C) {
	if !e.cfg.Categories.Contains(c) {
		e.log.Warn().Str("category", string(c)).Msg("ignoring unknown category")
		return
	}
	if e.cfg.OnCategoryChange != nil {
		e.cfg.OnCategoryChange(c)
	} else {
		e.selected = c
	}
	e.syncSelector()
}

// Add appends a new item named name under the selected category. Blank
// names are ignored. The input is cleared after a successful add.
func (e *Editor[T, C]) Add(name string) {
	trimmed, err := validate.Text(name)
	if err != nil {
		return
	}

	cat := e.Selected()
	a := e.cfg.Accessors
	item := a.SetCategory(a.SetName(a.New(trimmed, cat), trimmed), cat)
	e.cfg.Callbacks.OnAdd(item)
	e.form.Input().Reset()

	e.log.Debug().Str("name", trimmed).Str("category", string(cat)).Msg("item added")
}

// OpenEdit stages the item at index for editing and opens the modal.
func (e *Editor[T, C]) OpenEdit(index int) error {
	items := e.cfg.Items()
	if index < 0 || index >= len(items) {
		e.log.Warn().Int("index", index).Msg("edit requested for missing item")
		return prefs.ErrIndexOutOfRange
	}

	item := items[index]
	d := &draft[C]{
		index:    index,
		name:     e.cfg.Accessors.Name(item),
		category: e.cfg.Accessors.Category(item),
	}
	if e.cfg.Identity != nil {
		if id, err := e.cfg.Identity.ID(index); err == nil {
			d.id = id
		}
	}

	modal := components.NewEditModal(d.name, e.width, e.height)
	e.draft = d
	e.modal = &modal
	e.cfg.Lock.Acquire(e.token)
	return nil
}

// Editing reports whether the edit modal is open.
func (e *Editor[T, C]) Editing() bool { return e.draft != nil }

// Draft returns the staged name while the modal is open.
func (e *Editor[T, C]) Draft() (string, bool) {
	if e.draft == nil {
		return "", false
	}
	return e.draft.name, true
}

// SetDraft replaces the staged name.
func (e *Editor[T, C]) SetDraft(name string) {
	if e.draft == nil {
		return
	}
	e.draft.name = name
}

// SaveEdit applies the staged name to the item being edited and closes the
// modal. A blank draft leaves the modal open and changes nothing. When the
// item was removed while the modal was open, the edit is dropped and
// ErrIndexOutOfRange is returned.
func (e *Editor[T, C]) SaveEdit() error {
	if e.draft == nil {
		return nil
	}
	trimmed, err := validate.Text(e.draft.name)
	if err != nil {
		return nil
	}

	index := e.draft.index
	if e.cfg.Identity != nil && e.draft.id != "" {
		index = e.cfg.Identity.IndexOf(e.draft.id)
	}

	items := e.cfg.Items()
	if index < 0 || index >= len(items) {
		e.log.Warn().Str("name", trimmed).Msg("edited item no longer exists")
		e.closeModal()
		return prefs.ErrIndexOutOfRange
	}

	a := e.cfg.Accessors
	updated := a.SetCategory(a.SetName(items[index], trimmed), e.draft.category)
	e.cfg.Callbacks.OnEdit(index, updated)
	e.closeModal()

	e.log.Debug().Int("index", index).Str("name", trimmed).Msg("item edited")
	return nil
}

// CancelEdit closes the modal and discards the draft.
func (e *Editor[T, C]) CancelEdit() {
	e.closeModal()
}

// Remove asks the owner to delete the item at index.
func (e *Editor[T, C]) Remove(index int) {
	e.cfg.Callbacks.OnRemove(index)
	e.cards.clamp(len(e.cfg.Items()))
	e.log.Debug().Int("index", index).Msg("item removed")
}

// Groups partitions the current items by category.
func (e *Editor[T, C]) Groups() []prefs.Group[T, C] {
	return prefs.GroupBy(e.cfg.Items(), e.cfg.Categories, e.cfg.Accessors.Category)
}

// Close tears the editor down, releasing the scroll lock if held.
func (e *Editor[T, C]) Close() {
	e.closeModal()
}

func (e *Editor[T, C]) closeModal() {
	e.draft = nil
	e.modal = nil
	e.cfg.Lock.Release(e.token)
}

func (e *Editor[T, C]) syncSelector() {
	e.form.Selector().SetSelected(e.Selected())
}

// displayOrder lists item indexes in the order cards are rendered.
func (e *Editor[T, C]) displayOrder() []int {
	var order []int
	for _, g := range e.Groups() {
		for _, entry := range g.Entries {
			order = append(order, entry.Index)
		}
	}
	return order
}
