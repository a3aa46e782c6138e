// Package summary renders the recorded preferences for printing when the
// program exits.
package summary

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"gopkg.in/yaml.v3"

	"github.com/colonyops/mealprefs/internal/core/config"
	"github.com/colonyops/mealprefs/internal/core/prefs"
	"github.com/colonyops/mealprefs/internal/core/styles"
)

// Export is the YAML shape of a profile.
type Export struct {
	Favorites      []prefs.FavoriteFood `yaml:"favorites"`
	Dislikes       []prefs.DislikedFood `yaml:"dislikes"`
	Allergies      []prefs.Allergy      `yaml:"allergies"`
	Considerations []string             `yaml:"considerations"`
}

// NewExport copies p into an Export.
func NewExport(p *prefs.Profile) Export {
	return Export{
		Favorites:      p.Favorites.Items(),
		Dislikes:       p.Dislikes.Items(),
		Allergies:      p.Allergies.Items(),
		Considerations: p.Considerations.Entries(),
	}
}

// YAML marshals p.
func YAML(p *prefs.Profile) ([]byte, error) {
	out, err := yaml.Marshal(NewExport(p))
	if err != nil {
		return nil, fmt.Errorf("marshal profile: %w", err)
	}
	return out, nil
}

// Markdown builds a report of p with one heading per section and one
// sub-heading per category, in category order. Empty sections are omitted.
func Markdown(p *prefs.Profile) string {
	var b strings.Builder
	b.WriteString("# Elderly Meal Preferences\n")

	writeGroups(&b, "My Favorite Foods",
		prefs.GroupBy(p.Favorites.Items(), prefs.MealCategories, func(f prefs.FavoriteFood) prefs.MealCategory { return f.Category }),
		func(f prefs.FavoriteFood) string { return f.FoodName })
	writeGroups(&b, "Disliked Foods",
		prefs.GroupBy(p.Dislikes.Items(), prefs.DislikeSeverities, func(d prefs.DislikedFood) prefs.DislikeSeverity { return d.Severity }),
		func(d prefs.DislikedFood) string { return d.FoodName })
	writeGroups(&b, "Food Intolerances / Allergies",
		prefs.GroupBy(p.Allergies.Items(), prefs.AllergySeverities, func(a prefs.Allergy) prefs.AllergySeverity { return a.Severity }),
		func(a prefs.Allergy) string { return a.FoodName })

	if entries := p.Considerations.Entries(); len(entries) > 0 {
		b.WriteString("\n## Additional Considerations\n\n")
		for i, e := range entries {
			fmt.Fprintf(&b, "%d. %s\n", i+1, escapeMarkdown(e))
		}
	}

	return b.String()
}

func writeGroups[T any, C ~string](b *strings.Builder, title string, groups []prefs.Group[T, C], name func(T) string) {
	if len(groups) == 0 {
		return
	}
	fmt.Fprintf(b, "\n## %s\n", title)
	for _, g := range groups {
		fmt.Fprintf(b, "\n### %s\n\n", g.Category)
		for _, e := range g.Entries {
			fmt.Fprintf(b, "- %s\n", escapeMarkdown(name(e.Item)))
		}
	}
}

// markdownEscaper backslash-escapes CommonMark punctuation so user text
// renders literally.
var markdownEscaper = strings.NewReplacer(
	`\`, `\\`, "`", "\\`", `*`, `\*`, `_`, `\_`,
	`{`, `\{`, `}`, `\}`, `[`, `\[`, `]`, `\]`,
	`<`, `\<`, `>`, `\>`, `(`, `\(`, `)`, `\)`,
	`#`, `\#`, `+`, `\+`, `-`, `\-`, `.`, `\.`,
	`!`, `\!`, `|`, `\|`,
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

// Render renders markdown for the terminal in the given glamour style.
func Render(markdown, style string, width int) (string, error) {
	var styleOpt glamour.TermRendererOption
	switch style {
	case config.StyleTheme:
		styleOpt = glamour.WithStyles(styles.GlamourStyle())
	case config.StyleAuto, "":
		styleOpt = glamour.WithAutoStyle()
	default:
		styleOpt = glamour.WithStandardStyle(style)
	}

	opts := []glamour.TermRendererOption{styleOpt}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}

	out, err := r.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}

// Write prints p to w in the configured format. Nothing is written when
// the format is none or p is empty.
func Write(w io.Writer, p *prefs.Profile, cfg config.SummaryConfig, width int) error {
	if p.Empty() {
		return nil
	}

	switch cfg.Format {
	case config.FormatNone:
		return nil
	case config.FormatYAML:
		out, err := YAML(p)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	default:
		out, err := Render(Markdown(p), cfg.Style, width)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	}
}
