package commands

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/colonyops/mealprefs/internal/core/config"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "mealprefs", "config.yaml")
}

// DefaultLogFile returns the default log file path using the system's state directory.
// On macOS: ~/Library/Logs/mealprefs/mealprefs.log
// On Linux: $XDG_STATE_HOME/mealprefs/mealprefs.log (defaults to ~/.local/state/mealprefs/mealprefs.log)
func DefaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return filepath.Join(stateHome, "mealprefs", "mealprefs.log")
	}

	home, _ := os.UserHomeDir()

	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", "mealprefs", "mealprefs.log")
	}

	return filepath.Join(home, ".local", "state", "mealprefs", "mealprefs.log")
}
