package form

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/colonyops/mealprefs/internal/core/styles"
)

var (
	keyPrev  = key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous"))
	keyNext  = key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next"))
	keyPress = key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "press"))
)

// ButtonRow is a horizontal row of labelled buttons. Left and right move the
// cursor, enter or space presses the highlighted button.
type ButtonRow struct {
	label   string
	buttons []string
	cursor  int
	pressed int
	focused bool
}

// NewButtonRow creates a button row with the given labels.
func NewButtonRow(label string, buttons []string) *ButtonRow {
	return &ButtonRow{
		label:   label,
		buttons: buttons,
		pressed: -1,
	}
}

func (b *ButtonRow) Update(msg tea.Msg) (Field, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !b.focused || !ok || len(b.buttons) == 0 {
		return b, nil
	}

	switch {
	case key.Matches(keyMsg, keyPrev):
		b.cursor = max(b.cursor-1, 0)
	case key.Matches(keyMsg, keyNext):
		b.cursor = min(b.cursor+1, len(b.buttons)-1)
	case key.Matches(keyMsg, keyPress):
		b.pressed = b.cursor
	}

	return b, nil
}

// Pressed returns the label of the button pressed by the last Update and
// clears it.
func (b *ButtonRow) Pressed() (string, bool) {
	if b.pressed < 0 {
		return "", false
	}
	label := b.buttons[b.pressed]
	b.pressed = -1
	return label, true
}

func (b *ButtonRow) View() string {
	rendered := make([]string, 0, len(b.buttons)*2)
	for i, btn := range b.buttons {
		if i > 0 {
			rendered = append(rendered, " ")
		}
		style := styles.PresetStyle
		if b.focused && i == b.cursor {
			style = styles.PresetFocusedStyle
		}
		rendered = append(rendered, style.Render("+ "+btn))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)

	if b.label == "" {
		return row
	}
	return lipgloss.JoinVertical(lipgloss.Left, styles.TextMutedStyle.Render(b.label), row)
}

func (b *ButtonRow) Focus() tea.Cmd {
	b.focused = true
	return nil
}

func (b *ButtonRow) Blur() { b.focused = false }

func (b *ButtonRow) Focused() bool { return b.focused }
func (b *ButtonRow) Label() string { return b.label }

// Value returns the label of the highlighted button.
func (b *ButtonRow) Value() any {
	if len(b.buttons) == 0 {
		return ""
	}
	return b.buttons[b.cursor]
}
