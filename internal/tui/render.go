package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/mealprefs/internal/core/styles"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	for _, s := range m.sections {
		if overlay := s.ModalView(); overlay != "" {
			return overlay
		}
	}

	if m.showHelp {
		return m.helpDlg.Overlay(m.width, m.height)
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.header(), m.viewport.View(), m.footer())
}

func (m Model) header() string {
	return styles.PageTitleStyle.Render(pageTitle)
}

func (m Model) footer() string {
	return m.help.ShortHelpView(m.keys.ShortHelp())
}

// refresh re-renders the sections into the viewport, keeping the scroll
// position where possible.
func (m *Model) refresh() {
	offset := m.viewport.YOffset
	m.viewport.SetContent(m.renderSections())
	m.viewport.SetYOffset(offset)
}

func (m Model) renderSections() string {
	blocks := make([]string, 0, len(m.sections))
	for i := range m.sections {
		blocks = append(blocks, m.renderSection(i))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func (m Model) renderSection(i int) string {
	style := styles.SectionStyle
	if i == m.focused {
		style = style.BorderForeground(styles.ColorPrimary)
	}
	if m.width > 2 {
		style = style.Width(m.width - 2)
	}
	return style.Render(m.sections[i].View())
}

// sectionOffset returns the first content line of section i.
func (m Model) sectionOffset(i int) int {
	offset := 0
	for j := 0; j < i; j++ {
		offset += lipgloss.Height(m.renderSection(j))
	}
	return offset
}
