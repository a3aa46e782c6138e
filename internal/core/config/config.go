// Package config handles configuration loading and validation for mealprefs.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/mealprefs/internal/core/styles"
)

// Summary formats.
const (
	FormatMarkdown = "markdown"
	FormatYAML     = "yaml"
	FormatNone     = "none"
)

// Glamour styles accepted for summary.style.
const (
	StyleAuto  = "auto"
	StyleDark  = "dark"
	StyleLight = "light"
	StyleNoTTY = "notty"
	// StyleTheme derives the markdown style from the active TUI theme.
	StyleTheme = "theme"
)

// Config holds the application configuration.
type Config struct {
	Theme   string        `yaml:"theme"`
	Mouse   bool          `yaml:"mouse"`
	Summary SummaryConfig `yaml:"summary"`
}

// SummaryConfig controls the report printed when the program exits.
type SummaryConfig struct {
	OnExit bool   `yaml:"on_exit"`
	Format string `yaml:"format"` // markdown, yaml or none
	Style  string `yaml:"style"`  // glamour style for markdown
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Theme: styles.DefaultTheme,
		Mouse: true,
		Summary: SummaryConfig{
			OnExit: true,
			Format: FormatMarkdown,
			Style:  StyleTheme,
		},
	}
}

// Load reads configuration from the given path.
// If configPath is empty or doesn't exist, returns defaults.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults fills values left empty by the config file.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
	if c.Summary.Format == "" {
		c.Summary.Format = defaults.Summary.Format
	}
	if c.Summary.Style == "" {
		c.Summary.Style = defaults.Summary.Style
	}
}

// Palette returns the palette for the configured theme.
func (c *Config) Palette() styles.Palette {
	p, ok := styles.GetPalette(c.Theme)
	if !ok {
		p, _ = styles.GetPalette(styles.DefaultTheme)
	}
	return p
}

// YAML renders the effective configuration.
func (c *Config) YAML() (string, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("marshal config: %w", err)
	}
	return string(out), nil
}
