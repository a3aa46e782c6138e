package form

import tea "github.com/charmbracelet/bubbletea"

// FocusRing cycles keyboard focus across a fixed set of regions. Advancing
// past the last region wraps to the first and retreating past the first wraps
// to the last.
type FocusRing struct {
	items   []Focusable
	current int
}

// NewFocusRing creates a ring over items with nothing focused until Focus is
// called.
func NewFocusRing(items ...Focusable) *FocusRing {
	return &FocusRing{items: items}
}

// Focus focuses the current region and returns its command.
func (r *FocusRing) Focus() tea.Cmd {
	if len(r.items) == 0 {
		return nil
	}
	return r.items[r.current].Focus()
}

// Blur blurs every region.
func (r *FocusRing) Blur() {
	for _, it := range r.items {
		it.Blur()
	}
}

// Focused reports whether the current region holds focus.
func (r *FocusRing) Focused() bool {
	return len(r.items) > 0 && r.items[r.current].Focused()
}

// Current returns the current region.
func (r *FocusRing) Current() Focusable {
	if len(r.items) == 0 {
		return nil
	}
	return r.items[r.current]
}

// Index returns the position of the current region.
func (r *FocusRing) Index() int { return r.current }

// Next moves focus to the following region.
func (r *FocusRing) Next() tea.Cmd {
	return r.move(1)
}

// Prev moves focus to the preceding region.
func (r *FocusRing) Prev() tea.Cmd {
	return r.move(-1)
}

// Set moves focus to the region at index i.
func (r *FocusRing) Set(i int) tea.Cmd {
	if i < 0 || i >= len(r.items) {
		return nil
	}
	r.items[r.current].Blur()
	r.current = i
	return r.items[r.current].Focus()
}

func (r *FocusRing) move(delta int) tea.Cmd {
	n := len(r.items)
	if n == 0 {
		return nil
	}
	return r.Set(((r.current+delta)%n + n) % n)
}
