package form

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/colonyops/mealprefs/internal/core/prefs"
	"github.com/colonyops/mealprefs/internal/core/styles"
)

// CategorySelect renders a section's categories as a row of pills with
// exactly one selected. Left and right move the selection.
type CategorySelect[C ~string] struct {
	categories prefs.Categories[C]
	selected   int
	focused    bool
}

// NewCategorySelect creates a selector with the first category selected.
func NewCategorySelect[C ~string](categories prefs.Categories[C]) *CategorySelect[C] {
	return &CategorySelect[C]{categories: categories}
}

func (s *CategorySelect[C]) Update(msg tea.Msg) (Field, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !s.focused || !ok || len(s.categories) == 0 {
		return s, nil
	}

	switch {
	case key.Matches(keyMsg, keyPrev):
		s.selected = max(s.selected-1, 0)
	case key.Matches(keyMsg, keyNext):
		s.selected = min(s.selected+1, len(s.categories)-1)
	}

	return s, nil
}

// Selected returns the selected category.
func (s *CategorySelect[C]) Selected() C {
	if len(s.categories) == 0 {
		var zero C
		return zero
	}
	return s.categories[s.selected]
}

// SetSelected selects c. Labels outside the category set are ignored.
func (s *CategorySelect[C]) SetSelected(c C) {
	if i := s.categories.Index(c); i >= 0 {
		s.selected = i
	}
}

func (s *CategorySelect[C]) View() string {
	pills := make([]string, 0, len(s.categories)*2)
	for i, c := range s.categories {
		if i > 0 {
			pills = append(pills, " ")
		}
		style := styles.PillStyle
		switch {
		case i == s.selected && s.focused:
			style = styles.PillFocusedStyle
		case i == s.selected:
			style = styles.PillSelectedStyle
		}
		pills = append(pills, style.Render(string(c)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, pills...)
}

func (s *CategorySelect[C]) Focus() tea.Cmd {
	s.focused = true
	return nil
}

func (s *CategorySelect[C]) Blur() { s.focused = false }

func (s *CategorySelect[C]) Focused() bool { return s.focused }
func (s *CategorySelect[C]) Value() any    { return s.Selected() }
func (s *CategorySelect[C]) Label() string { return "Category" }
