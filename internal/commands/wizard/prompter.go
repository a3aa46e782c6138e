package wizard

import (
	"github.com/charmbracelet/huh"
)

// Prompter asks the questions the wizard needs answered.
type Prompter interface {
	// Item asks for one item name and its category. A blank name finishes
	// the section.
	Item(section, placeholder string, categories []string) (name, category string, err error)
	// Choose asks for exactly one of options.
	Choose(title string, options []string) (string, error)
	// Pick asks for any subset of options.
	Pick(title string, options []string) ([]string, error)
	// Text asks for free text up to limit characters.
	Text(title, description string, limit int) (string, error)
}

// HuhPrompter asks questions with huh forms. Accessible switches to plain
// line prompts for screen readers and pipes.
type HuhPrompter struct {
	Accessible bool
}

func (h HuhPrompter) run(fields ...huh.Field) error {
	return huh.NewForm(huh.NewGroup(fields...)).
		WithAccessible(h.Accessible).
		WithTheme(huh.ThemeCharm()).
		Run()
}

func (h HuhPrompter) Item(section, placeholder string, categories []string) (string, string, error) {
	var name string
	category := categories[0]

	err := h.run(
		huh.NewInput().
			Title(section).
			Description("Leave blank to finish this section").
			Placeholder(placeholder).
			Value(&name),
		huh.NewSelect[string]().
			Title("Category").
			Options(huh.NewOptions(categories...)...).
			Value(&category),
	)
	if err != nil {
		return "", "", err
	}
	return name, category, nil
}

func (h HuhPrompter) Choose(title string, options []string) (string, error) {
	choice := options[0]
	err := h.run(
		huh.NewSelect[string]().
			Title(title).
			Options(huh.NewOptions(options...)...).
			Value(&choice),
	)
	return choice, err
}

func (h HuhPrompter) Pick(title string, options []string) ([]string, error) {
	var picked []string
	err := h.run(
		huh.NewMultiSelect[string]().
			Title(title).
			Options(huh.NewOptions(options...)...).
			Value(&picked),
	)
	return picked, err
}

func (h HuhPrompter) Text(title, description string, limit int) (string, error) {
	var text string
	err := h.run(
		huh.NewText().
			Title(title).
			Description(description).
			CharLimit(limit).
			Value(&text),
	)
	return text, err
}
