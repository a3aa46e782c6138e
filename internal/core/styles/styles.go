// Package styles provides shared lipgloss styles for CLI and TUI components.
package styles

import "github.com/charmbracelet/lipgloss"

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Exported color aliases for convenience.
var (
	ColorPrimary    lipgloss.Color
	ColorSecondary  lipgloss.Color
	ColorForeground lipgloss.Color
	ColorMuted      lipgloss.Color
	ColorBackground lipgloss.Color
	ColorSurface    lipgloss.Color
	ColorSuccess    lipgloss.Color
	ColorWarning    lipgloss.Color
	ColorError      lipgloss.Color
)

// Style exports.
var (
	PageTitleStyle    lipgloss.Style
	SectionStyle      lipgloss.Style
	SectionTitleStyle lipgloss.Style
	CategoryTitle     lipgloss.Style
	SeparatorStyle    lipgloss.Style

	CardStyle         lipgloss.Style
	CardSelectedStyle lipgloss.Style
	CardActionStyle   lipgloss.Style

	PillStyle          lipgloss.Style
	PillSelectedStyle  lipgloss.Style
	PillFocusedStyle   lipgloss.Style
	PresetStyle        lipgloss.Style
	PresetFocusedStyle lipgloss.Style

	ModalStyle               lipgloss.Style
	ModalTitleStyle          lipgloss.Style
	ModalHelpStyle           lipgloss.Style
	ModalButtonStyle         lipgloss.Style
	ModalButtonSelectedStyle lipgloss.Style

	FormTitleStyle        lipgloss.Style
	FormFieldStyle        lipgloss.Style
	FormFieldFocusedStyle lipgloss.Style
	FormHelpStyle         lipgloss.Style

	TextForegroundStyle  lipgloss.Style
	TextMutedStyle       lipgloss.Style
	TextPrimaryBoldStyle lipgloss.Style
	CounterStyle         lipgloss.Style
	LogEntryStyle        lipgloss.Style
)

func init() {
	p, _ := GetPalette(DefaultTheme)
	SetTheme(p)
}

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	ColorPrimary = p.Primary
	ColorSecondary = p.Secondary
	ColorForeground = p.Foreground
	ColorMuted = p.Muted
	ColorBackground = p.Background
	ColorSurface = p.Surface
	ColorSuccess = p.Success
	ColorWarning = p.Warning
	ColorError = p.Error

	PageTitleStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		Bold(true).
		Padding(1, 0)
	SectionStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorSurface).
		Padding(0, 1)
	SectionTitleStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		MarginBottom(1)
	CategoryTitle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true).
		Underline(true)
	SeparatorStyle = lipgloss.NewStyle().
		Foreground(ColorSurface)

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorSurface).
		Padding(0, 1)
	CardSelectedStyle = CardStyle.
		BorderForeground(ColorPrimary)
	CardActionStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	PillStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(ColorMuted).
		Background(ColorSurface)
	PillSelectedStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(ColorBackground).
		Background(ColorPrimary).
		Bold(true)
	PillFocusedStyle = PillSelectedStyle.
		Underline(true)
	PresetStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(ColorError)
	PresetFocusedStyle = PresetStyle.
		Background(ColorSurface).
		Bold(true)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2)
	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorForeground)
	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		MarginTop(1)
	ModalButtonStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(ColorSurface).
		Foreground(ColorMuted)
	ModalButtonSelectedStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(ColorPrimary).
		Foreground(ColorBackground).
		Bold(true)

	FormTitleStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	FormFieldStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(ColorMuted).
		PaddingLeft(1)
	FormFieldFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(ColorPrimary).
		PaddingLeft(1)
	FormHelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	TextForegroundStyle = lipgloss.NewStyle().Foreground(ColorForeground)
	TextMutedStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	TextPrimaryBoldStyle = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	CounterStyle = lipgloss.NewStyle().Foreground(ColorMuted).Align(lipgloss.Right)
	LogEntryStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(ColorWarning)
}
