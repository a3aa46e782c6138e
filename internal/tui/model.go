// Package tui implements the Bubble Tea page for recording meal preferences.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/colonyops/mealprefs/internal/core/logging"
	"github.com/colonyops/mealprefs/internal/core/prefs"
	"github.com/colonyops/mealprefs/internal/core/styles"
	"github.com/colonyops/mealprefs/internal/tui/components"
	"github.com/colonyops/mealprefs/internal/tui/scrolllock"
	"github.com/colonyops/mealprefs/internal/tui/views/sections"
)

const (
	pageTitle  = "Elderly Meal Preferences"
	wheelLines = 3
)

// Model is the single preferences page: four sections stacked in a
// scrollable viewport.
type Model struct {
	profile  *prefs.Profile
	lock     *scrolllock.Lock
	sections []sections.Section
	focused  int

	viewport viewport.Model
	help     help.Model
	keys     KeyMap
	helpDlg  *components.HelpDialog
	showHelp bool

	width    int
	height   int
	quitting bool
	log      zerolog.Logger
}

// New builds the page over profile.
func New(profile *prefs.Profile) (Model, error) {
	lock := scrolllock.New()

	favorites, err := sections.NewFavorites(profile.Favorites, lock)
	if err != nil {
		return Model{}, fmt.Errorf("favorites: %w", err)
	}
	dislikes, err := sections.NewDislikes(profile.Dislikes, lock)
	if err != nil {
		return Model{}, fmt.Errorf("dislikes: %w", err)
	}
	allergies, err := sections.NewAllergies(profile.Allergies, lock)
	if err != nil {
		return Model{}, fmt.Errorf("allergies: %w", err)
	}

	keys := DefaultKeyMap()
	m := Model{
		profile: profile,
		lock:    lock,
		sections: []sections.Section{
			favorites,
			dislikes,
			allergies,
			sections.NewConsiderations(profile.Considerations),
		},
		viewport: viewport.New(0, 0),
		help:     help.New(),
		keys:     keys,
		helpDlg:  components.NewHelpDialog("Keyboard Shortcuts", keys.helpSections()),
		log:      logging.Component("tui"),
	}
	m.help.Styles.ShortKey = styles.TextPrimaryBoldStyle
	m.help.Styles.ShortDesc = styles.TextMutedStyle
	m.help.Styles.ShortSeparator = styles.TextMutedStyle

	m.sections[0].Focus()
	m.refresh()
	return m, nil
}

// Profile returns the preferences recorded so far.
func (m Model) Profile() *prefs.Profile { return m.profile }

// Focused returns the index of the focused section.
func (m Model) Focused() int { return m.focused }

// ScrollLocked reports whether an edit dialog is holding the page scroll.
func (m Model) ScrollLocked() bool { return m.lock.Locked() }

func (m Model) Init() tea.Cmd {
	return m.sections[m.focused].Focus()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		m, cmd = m.handleKey(msg)
	case tea.MouseMsg:
		cmd = m.handleMouse(msg)
	default:
		cmd = m.sections[m.focused].Update(msg)
	}

	if !m.quitting {
		m.refresh()
	}
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m.quit()
	}

	if m.showHelp {
		if key.Matches(msg, m.keys.CloseHelp) {
			m.showHelp = false
		}
		return m, nil
	}

	// an open edit dialog owns the keyboard
	if m.lock.Locked() {
		return m, m.sections[m.focused].Update(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.NextSection):
		return m, m.focusSection(m.focused + 1)
	case key.Matches(msg, m.keys.PrevSection):
		return m, m.focusSection(m.focused - 1)
	case key.Matches(msg, m.keys.PageDown):
		m.scroll(m.viewport.Height)
		return m, nil
	case key.Matches(msg, m.keys.PageUp):
		m.scroll(-m.viewport.Height)
		return m, nil
	case key.Matches(msg, m.keys.HalfDown):
		m.scroll(m.viewport.Height / 2)
		return m, nil
	case key.Matches(msg, m.keys.HalfUp):
		m.scroll(-m.viewport.Height / 2)
		return m, nil
	}

	return m, m.sections[m.focused].Update(msg)
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.lock.Locked() {
		return m.sections[m.focused].Update(msg)
	}
	if msg.Action != tea.MouseActionPress {
		return nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scroll(-wheelLines)
	case tea.MouseButtonWheelDown:
		m.scroll(wheelLines)
	}
	return nil
}

func (m Model) quit() (Model, tea.Cmd) {
	for _, s := range m.sections {
		s.Close()
	}
	m.quitting = true
	m.log.Info().
		Int("favorites", m.profile.Favorites.Len()).
		Int("dislikes", m.profile.Dislikes.Len()).
		Int("allergies", m.profile.Allergies.Len()).
		Int("considerations", m.profile.Considerations.Len()).
		Msg("quitting")
	return m, tea.Quit
}

func (m *Model) scroll(lines int) {
	if m.lock.Locked() {
		return
	}
	m.viewport.SetYOffset(m.viewport.YOffset + lines)
}

func (m *Model) focusSection(i int) tea.Cmd {
	n := len(m.sections)
	i = ((i % n) + n) % n
	if i == m.focused {
		return nil
	}

	m.sections[m.focused].Blur()
	m.focused = i
	cmd := m.sections[i].Focus()

	m.refresh()
	m.viewport.SetYOffset(m.sectionOffset(i))
	return cmd
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width

	for _, s := range m.sections {
		s.SetSize(width, height)
	}

	m.viewport.Width = width
	m.viewport.Height = max(height-lipgloss.Height(m.header())-lipgloss.Height(m.footer()), 1)
}
