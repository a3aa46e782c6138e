package form

import (
	"fmt"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/colonyops/mealprefs/internal/core/styles"
)

// TextAreaField is a multi-line text input form field with an optional
// character limit. When a limit is set a "N / limit characters" counter is
// rendered below the input. The limit counts runes, not display cells.
type TextAreaField struct {
	input   textarea.Model
	label   string
	limit   int
	focused bool
}

// NewTextAreaField creates a new multi-line text input field. limit <= 0
// disables the character cap.
func NewTextAreaField(label, placeholder string, limit int) *TextAreaField {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.SetHeight(4)
	ta.SetWidth(60)
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(styles.ColorMuted)
	ta.BlurredStyle.Placeholder = lipgloss.NewStyle().Foreground(styles.ColorMuted)
	// textarea counts display width; the cap is enforced in clamp instead
	ta.CharLimit = 0

	return &TextAreaField{
		input: ta,
		label: label,
		limit: limit,
	}
}

// DisableNewlines stops enter from inserting line breaks so the owner can
// treat it as a submit key.
func (f *TextAreaField) DisableNewlines() {
	f.input.KeyMap.InsertNewline.SetEnabled(false)
}

func (f *TextAreaField) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !f.focused {
		return f, nil
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	f.clamp()
	return f, cmd
}

func (f *TextAreaField) clamp() {
	if f.limit <= 0 {
		return
	}
	v := f.input.Value()
	if utf8.RuneCountInString(v) <= f.limit {
		return
	}
	f.input.SetValue(string([]rune(v)[:f.limit]))
}

func (f *TextAreaField) View() string {
	titleStyle := styles.TextMutedStyle
	if f.focused {
		titleStyle = styles.FormTitleStyle
	}

	parts := []string{}
	if f.label != "" {
		parts = append(parts, titleStyle.Render(f.label))
	}
	parts = append(parts, f.input.View())
	if f.limit > 0 {
		counter := fmt.Sprintf("%d / %d characters", f.Len(), f.limit)
		parts = append(parts, styles.CounterStyle.Width(f.input.Width()).Render(counter))
	}

	borderStyle := styles.FormFieldStyle
	if f.focused {
		borderStyle = styles.FormFieldFocusedStyle
	}

	return borderStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (f *TextAreaField) Focus() tea.Cmd {
	f.focused = true
	return f.input.Focus()
}

func (f *TextAreaField) Blur() {
	f.focused = false
	f.input.Blur()
}

// SetValue replaces the text. Input beyond the character limit is dropped.
func (f *TextAreaField) SetValue(s string) {
	f.input.SetValue(s)
	f.clamp()
}

// SetWidth sets the visible width of the text area.
func (f *TextAreaField) SetWidth(w int) {
	if w > 0 {
		f.input.SetWidth(w)
	}
}

// Reset clears the text.
func (f *TextAreaField) Reset() { f.input.Reset() }

// Text returns the raw text.
func (f *TextAreaField) Text() string { return f.input.Value() }

// Len returns the number of characters entered.
func (f *TextAreaField) Len() int { return utf8.RuneCountInString(f.input.Value()) }

// Limit returns the configured character cap, 0 when uncapped.
func (f *TextAreaField) Limit() int { return f.limit }

func (f *TextAreaField) Focused() bool { return f.focused }
func (f *TextAreaField) Value() any    { return f.input.Value() }
func (f *TextAreaField) Label() string { return f.label }
