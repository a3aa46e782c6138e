package listeditor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/mealprefs/internal/core/styles"
	"github.com/colonyops/mealprefs/internal/tui/components"
)

const (
	cardWidth   = 24
	defaultWide = 80
)

// View renders the title, add form, extra region and grouped cards. The edit
// modal is rendered separately through ModalView.
func (e *Editor[T, C]) View() string {
	e.syncSelector()

	parts := []string{
		styles.SectionTitleStyle.Render(e.cfg.Title),
		e.form.View(),
	}
	if e.cfg.Extra != nil {
		parts = append(parts, "", e.cfg.Extra.View())
	}
	if groups := e.renderGroups(); groups != "" {
		parts = append(parts, "", groups)
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// ModalView renders the edit modal over the full screen, or "" when closed.
func (e *Editor[T, C]) ModalView() string {
	if e.modal == nil {
		return ""
	}
	return e.modal.Overlay()
}

func (e *Editor[T, C]) renderGroups() string {
	groups := e.Groups()
	if len(groups) == 0 {
		return ""
	}

	width := e.width
	if width <= 0 {
		width = defaultWide
	}
	// leave room for the section frame
	perRow := max((width-6)/(cardWidth+1), 1)

	cursorItem := -1
	if e.cards.focused {
		if order := e.displayOrder(); len(order) > 0 {
			e.cards.clamp(len(order))
			cursorItem = order[e.cards.pos]
		}
	}

	var blocks []string
	for _, g := range groups {
		cards := make([]string, 0, len(g.Entries))
		for _, entry := range g.Entries {
			cards = append(cards, e.renderCard(entry.Item, entry.Index == cursorItem))
		}

		var rows []string
		for start := 0; start < len(cards); start += perRow {
			end := min(start+perRow, len(cards))
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, spaced(cards[start:end])...))
		}

		blocks = append(blocks, styles.CategoryTitle.Render(string(g.Category)))
		blocks = append(blocks, rows...)
		if g.Separator {
			blocks = append(blocks, styles.SeparatorStyle.Render(strings.Repeat("─", min(width, 60))))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func (e *Editor[T, C]) renderCard(item T, selected bool) string {
	if e.cfg.RenderCard != nil {
		return e.cfg.RenderCard(item, selected, cardWidth)
	}
	return components.ItemCard(e.cfg.Accessors.Name(item), selected, cardWidth)
}

func spaced(cards []string) []string {
	out := make([]string, 0, len(cards)*2)
	for i, c := range cards {
		if i > 0 {
			out = append(out, " ")
		}
		out = append(out, c)
	}
	return out
}
