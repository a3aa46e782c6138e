package config

import (
	"github.com/hay-kot/criterio"

	"github.com/colonyops/mealprefs/internal/core/styles"
	"github.com/colonyops/mealprefs/internal/core/validate"
)

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("theme", c.Theme, validate.OneOf(styles.ThemeNames()...)),
		criterio.Run("summary.format", c.Summary.Format, validate.OneOf(FormatMarkdown, FormatYAML, FormatNone)),
		criterio.Run("summary.style", c.Summary.Style, validate.OneOf(StyleAuto, StyleDark, StyleLight, StyleNoTTY, StyleTheme)),
	)
}
