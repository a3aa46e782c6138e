package sections

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/colonyops/mealprefs/internal/core/logging"
	"github.com/colonyops/mealprefs/internal/core/prefs"
	"github.com/colonyops/mealprefs/internal/core/styles"
	"github.com/colonyops/mealprefs/internal/core/validate"
	"github.com/colonyops/mealprefs/internal/tui/components/form"
)

var submitKey = key.NewBinding(key.WithKeys("enter", "ctrl+j"), key.WithHelp("enter/ctrl+j", "submit"))

// Considerations collects free-text preparation notes. Notes can be
// submitted but not edited or removed.
type Considerations struct {
	log   *prefs.ConsiderationLog
	input *form.TextAreaField
	l     zerolog.Logger
}

// NewConsiderations binds the input to log.
func NewConsiderations(log *prefs.ConsiderationLog) *Considerations {
	input := form.NewTextAreaField(
		"Please provide any special instructions for preparing meals:",
		"Texture preference, temperature preference, cultural restrictions...",
		prefs.MaxConsiderationLength,
	)
	input.DisableNewlines()

	return &Considerations{
		log:   log,
		input: input,
		l:     logging.Component("considerations"),
	}
}

func (c *Considerations) Title() string { return "Additional Considerations" }

// Submit appends the trimmed text to the log and clears the input. Blank
// text is ignored.
func (c *Considerations) Submit(text string) bool {
	if !c.log.Submit(text) {
		return false
	}
	c.input.Reset()
	c.l.Debug().Int("count", c.log.Len()).Msg("consideration submitted")
	return true
}

// CanSubmit reports whether the current input would be accepted.
func (c *Considerations) CanSubmit() bool {
	return validate.NonBlank(c.input.Text()) == nil
}

// Input returns the current input text.
func (c *Considerations) Input() string { return c.input.Text() }

// SetInput replaces the input text, dropping characters past the limit.
func (c *Considerations) SetInput(text string) { c.input.SetValue(text) }

func (c *Considerations) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && c.input.Focused() && key.Matches(keyMsg, submitKey) {
		c.Submit(c.input.Text())
		return nil
	}
	_, cmd := c.input.Update(msg)
	return cmd
}

func (c *Considerations) View() string {
	btn := styles.ModalButtonStyle.Render("Submit")
	if c.CanSubmit() {
		btn = styles.ModalButtonSelectedStyle.Render("Submit")
	}

	parts := []string{
		styles.SectionTitleStyle.Render(c.Title()),
		c.input.View(),
		lipgloss.JoinHorizontal(lipgloss.Center, btn, " ", styles.FormHelpStyle.Render(submitKey.Help().Key+" to submit")),
	}

	if entries := c.log.Entries(); len(entries) > 0 {
		parts = append(parts, "", styles.TextPrimaryBoldStyle.Render("Submitted Considerations:"))
		for _, e := range entries {
			parts = append(parts, styles.LogEntryStyle.Render(e))
		}
	}

	parts = append(parts, "", styles.TextMutedStyle.Render("Examples:"))
	for _, ex := range prefs.ConsiderationExamples {
		parts = append(parts, styles.TextMutedStyle.Render("• "+ex))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// ModalView is always empty; considerations have no overlay.
func (c *Considerations) ModalView() string { return "" }

func (c *Considerations) Focus() tea.Cmd { return c.input.Focus() }
func (c *Considerations) Blur()          { c.input.Blur() }

func (c *Considerations) SetSize(width, _ int) {
	c.input.SetWidth(min(max(width-8, 20), 80))
}

func (c *Considerations) Close() {}
