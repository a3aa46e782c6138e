// Package sections holds the four preference screens shown on the page.
package sections

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Section is one block of the preferences page.
type Section interface {
	Title() string
	Update(msg tea.Msg) tea.Cmd
	View() string
	// ModalView renders a full screen overlay, or "" when none is open.
	ModalView() string
	Focus() tea.Cmd
	Blur()
	SetSize(width, height int)
	// Close releases anything the section holds, such as the scroll lock.
	Close()
}
