package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/colonyops/mealprefs/internal/core/styles"
)

const cardMinWidth = 16

// ItemCard renders one list entry with its edit and remove hints. Long
// names wrap inside the card. width <= 0 sizes the card to its content.
func ItemCard(name string, selected bool, width int) string {
	style := styles.CardStyle
	if selected {
		style = styles.CardSelectedStyle
	}

	actions := styles.CardActionStyle.Render("e edit  x remove")

	if width > 0 {
		// border + padding take four columns
		inner := max(width-4, cardMinWidth)
		style = style.Width(inner + 2)
		name = lipgloss.NewStyle().Width(inner).Render(name)
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		styles.TextForegroundStyle.Render(name),
		actions,
	)
	return style.Render(body)
}
