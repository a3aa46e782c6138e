package form

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/colonyops/mealprefs/internal/core/styles"
)

// TextField is a single-line text input form field.
type TextField struct {
	input   textinput.Model
	label   string
	focused bool
}

// NewTextField creates a new single-line text input field. An empty label
// renders the input without a title line.
func NewTextField(label, placeholder, defaultVal string) *TextField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.Width = 40
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(styles.ColorMuted)
	ti.TextStyle = styles.TextForegroundStyle
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(styles.ColorPrimary)

	if defaultVal != "" {
		ti.SetValue(defaultVal)
	}

	return &TextField{
		input: ti,
		label: label,
	}
}

func (f *TextField) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !f.focused {
		return f, nil
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

func (f *TextField) View() string {
	content := f.input.View()
	if f.label != "" {
		titleStyle := styles.TextMutedStyle
		if f.focused {
			titleStyle = styles.FormTitleStyle
		}
		content = lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(f.label), content)
	}

	borderStyle := styles.FormFieldStyle
	if f.focused {
		borderStyle = styles.FormFieldFocusedStyle
	}

	return borderStyle.Render(content)
}

func (f *TextField) Focus() tea.Cmd {
	f.focused = true
	return f.input.Focus()
}

func (f *TextField) Blur() {
	f.focused = false
	f.input.Blur()
}

// SetValue replaces the input text and moves the cursor to the end.
func (f *TextField) SetValue(s string) {
	f.input.SetValue(s)
	f.input.CursorEnd()
}

// SetWidth sets the visible width of the input.
func (f *TextField) SetWidth(w int) {
	if w > 0 {
		f.input.Width = w
	}
}

// Reset clears the input.
func (f *TextField) Reset() { f.input.Reset() }

// Text returns the raw input text.
func (f *TextField) Text() string { return f.input.Value() }

func (f *TextField) Focused() bool { return f.focused }
func (f *TextField) Value() any    { return f.input.Value() }
func (f *TextField) Label() string { return f.label }
