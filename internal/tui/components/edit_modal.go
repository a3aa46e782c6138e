package components

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/colonyops/mealprefs/internal/core/styles"
)

// EditModalAction is the outcome of an EditModal update.
type EditModalAction int

const (
	EditModalNone EditModalAction = iota
	EditModalSave
	EditModalClose
)

var (
	editSaveKey  = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save"))
	editCloseKey = key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel"))
)

const editModalInputWidth = 36

// EditModal is the rename dialog shown over the page. It knows nothing about
// lists; the owner reads Value when Update reports EditModalSave.
type EditModal struct {
	input  textinput.Model
	width  int
	height int
}

// NewEditModal opens a modal pre-filled with value, focused with the cursor
// at the end. width and height are the screen size used to place the modal
// and to detect backdrop clicks.
func NewEditModal(value string, width, height int) EditModal {
	ti := textinput.New()
	ti.Placeholder = "e.g., Oatmeal"
	ti.Prompt = ""
	ti.Width = editModalInputWidth
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(styles.ColorMuted)
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(styles.ColorPrimary)
	ti.SetValue(value)
	ti.CursorEnd()
	ti.Focus()

	return EditModal{
		input:  ti,
		width:  width,
		height: height,
	}
}

// SetSize updates the screen size.
func (m *EditModal) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles input. Enter saves, esc closes and a left click outside the
// dialog box closes. Everything else edits the draft.
func (m *EditModal) Update(msg tea.Msg) (EditModalAction, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, editSaveKey):
			return EditModalSave, nil
		case key.Matches(msg, editCloseKey):
			return EditModalClose, nil
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && !m.Contains(msg.X, msg.Y) {
			return EditModalClose, nil
		}
		return EditModalNone, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return EditModalNone, cmd
}

// Value returns the current draft text.
func (m EditModal) Value() string {
	return m.input.Value()
}

// View renders the dialog box.
func (m EditModal) View() string {
	buttons := lipgloss.JoinHorizontal(lipgloss.Center,
		styles.ModalButtonStyle.Render("Cancel"),
		"  ",
		styles.ModalButtonSelectedStyle.Render("Save"),
	)
	buttonRow := lipgloss.NewStyle().MarginTop(1).Render(buttons)

	input := styles.FormFieldFocusedStyle.Render(m.input.View())

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		styles.ModalTitleStyle.Render("Edit Food Item"),
		styles.TextMutedStyle.Render("Update the name of the selected food."),
		"",
		input,
		buttonRow,
		styles.ModalHelpStyle.Render("enter save  esc cancel  click outside to close"),
	)

	return styles.ModalStyle.Render(content)
}

// Bounds returns the dialog box position and size on screen.
func (m EditModal) Bounds() (x, y, w, h int) {
	box := m.View()
	w = lipgloss.Width(box)
	h = lipgloss.Height(box)
	x = max((m.width-w)/2, 0)
	y = max((m.height-h)/2, 0)
	return x, y, w, h
}

// Contains reports whether the screen cell x, y lies inside the dialog box.
func (m EditModal) Contains(x, y int) bool {
	bx, by, bw, bh := m.Bounds()
	return x >= bx && x < bx+bw && y >= by && y < by+bh
}

// Overlay renders the dialog centered on a screen of the modal's size.
func (m EditModal) Overlay() string {
	return lipgloss.Place(
		m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		m.View(),
	)
}
