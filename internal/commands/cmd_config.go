package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

type ConfigCmd struct {
	flags *Flags
}

// NewConfigCmd creates a new config command.
func NewConfigCmd(flags *Flags) *ConfigCmd {
	return &ConfigCmd{flags: flags}
}

// Register adds the config command to the application.
func (cmd *ConfigCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "config",
		Usage:       "Print the effective configuration",
		UsageText:   "mealprefs config",
		Description: "Loads and validates the configuration file, then prints the result with defaults applied.",
		Action:      cmd.run,
	})

	return app
}

func (cmd *ConfigCmd) run(_ context.Context, c *cli.Command) error {
	if err := cmd.flags.Config.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	out, err := cmd.flags.Config.YAML()
	if err != nil {
		return err
	}

	w := c.Root().Writer
	_, _ = fmt.Fprintf(w, "# %s\n", cmd.flags.ConfigPath)
	_, err = fmt.Fprint(w, out)
	return err
}
