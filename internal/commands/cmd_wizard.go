package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/mealprefs/internal/commands/wizard"
	"github.com/colonyops/mealprefs/internal/core/prefs"
	"github.com/colonyops/mealprefs/internal/core/summary"
)

type WizardCmd struct {
	flags      *Flags
	accessible bool
}

// NewWizardCmd creates a new wizard command
func NewWizardCmd(flags *Flags) *WizardCmd {
	return &WizardCmd{flags: flags}
}

// Register adds the wizard command to the application
func (cmd *WizardCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "wizard",
		Usage:     "Record preferences one question at a time",
		UsageText: "mealprefs wizard [--accessible]",
		Description: `Asks for favorite foods, disliked foods, allergies and additional
considerations in turn. Leave an answer blank to move to the next section.

Accessible mode is used automatically when stdin or stdout is not a terminal.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "accessible",
				Usage:       "use plain line prompts",
				Sources:     cli.EnvVars("MEALPREFS_ACCESSIBLE"),
				Destination: &cmd.accessible,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *WizardCmd) run(ctx context.Context, c *cli.Command) error {
	cfg := cmd.flags.Config
	profile := prefs.NewProfile()

	prompter := wizard.HuhPrompter{Accessible: cmd.accessible || !isInteractive()}
	err := wizard.New(prompter, profile).Run(ctx)
	switch {
	case errors.Is(err, huh.ErrUserAborted):
		log.Info().Msg("wizard aborted")
		return nil
	case err != nil:
		return fmt.Errorf("wizard: %w", err)
	}

	if !cfg.Summary.OnExit {
		return nil
	}
	return summary.Write(c.Root().Writer, profile, cfg.Summary, outputWidth())
}
