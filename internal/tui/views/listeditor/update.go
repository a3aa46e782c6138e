package listeditor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/colonyops/mealprefs/internal/tui/components"
	"github.com/colonyops/mealprefs/internal/tui/components/form"
)

// Focus gives the editor keyboard focus on its current region.
func (e *Editor[T, C]) Focus() tea.Cmd {
	return e.ring.Focus()
}

// Blur removes keyboard focus from every region.
func (e *Editor[T, C]) Blur() {
	e.ring.Blur()
}

// Focused reports whether any region of the editor holds focus.
func (e *Editor[T, C]) Focused() bool {
	return e.ring.Focused()
}

// SetSize records the screen and content size.
func (e *Editor[T, C]) SetSize(width, height int) {
	e.width = width
	e.height = height
	e.form.Input().SetWidth(min(max(width/2, 20), 50))
	if e.modal != nil {
		e.modal.SetSize(width, height)
	}
}

// Update handles input. While the edit modal is open it receives every
// message.
func (e *Editor[T, C]) Update(msg tea.Msg) tea.Cmd {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		e.SetSize(size.Width, size.Height)
		return nil
	}

	if e.modal != nil {
		return e.updateModal(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		// cursor blink and similar
		if e.form.Input().Focused() {
			_, cmd := e.form.Input().Update(msg)
			return cmd
		}
		return nil
	}

	switch {
	case key.Matches(keyMsg, keys.NextRegion):
		return e.ring.Next()
	case key.Matches(keyMsg, keys.PrevRegion):
		return e.ring.Prev()
	}

	switch region := e.ring.Current(); {
	case region == e.cards:
		e.updateCards(keyMsg)
		return nil
	case e.cfg.Extra != nil && region == form.Focusable(e.cfg.Extra):
		_, cmd := e.cfg.Extra.Update(msg)
		return cmd
	}

	e.syncSelector()
	ev, cmd := e.form.Update(msg)
	switch ev {
	case form.AddItemSubmit:
		e.Add(e.form.Input().Text())
	case form.AddItemCategory:
		e.SelectCategory(e.form.Selector().Selected())
	}
	return cmd
}

func (e *Editor[T, C]) updateModal(msg tea.Msg) tea.Cmd {
	action, cmd := e.modal.Update(msg)
	e.SetDraft(e.modal.Value())

	switch action {
	case components.EditModalSave:
		_ = e.SaveEdit()
	case components.EditModalClose:
		e.CancelEdit()
	}
	return cmd
}

func (e *Editor[T, C]) updateCards(msg tea.KeyMsg) {
	order := e.displayOrder()
	if len(order) == 0 {
		return
	}
	e.cards.clamp(len(order))

	switch {
	case key.Matches(msg, keys.CardPrev):
		e.cards.move(-1, len(order))
	case key.Matches(msg, keys.CardNext):
		e.cards.move(1, len(order))
	case key.Matches(msg, keys.Edit):
		_ = e.OpenEdit(order[e.cards.pos])
	case key.Matches(msg, keys.Remove):
		e.Remove(order[e.cards.pos])
	}
}
