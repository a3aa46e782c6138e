package commands

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/mealprefs/internal/core/prefs"
	"github.com/colonyops/mealprefs/internal/core/summary"
	"github.com/colonyops/mealprefs/internal/tui"
)

var errNotInteractive = errors.New("mealprefs needs an interactive terminal; try 'mealprefs wizard'")

type TuiCmd struct {
	flags     *Flags
	noSummary bool
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags) *TuiCmd {
	return &TuiCmd{flags: flags}
}

// Flags returns the TUI-specific flags for registration on the root command
func (cmd *TuiCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "no-summary",
			Usage:       "do not print the preferences summary on exit",
			Sources:     cli.EnvVars("MEALPREFS_NO_SUMMARY"),
			Destination: &cmd.noSummary,
		},
	}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *TuiCmd) run(ctx context.Context, c *cli.Command) error {
	if !isInteractive() {
		return errNotInteractive
	}

	cfg := cmd.flags.Config
	profile := prefs.NewProfile()

	m, err := tui.New(profile)
	if err != nil {
		return fmt.Errorf("build page: %w", err)
	}

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	log.Info().Bool("mouse", cfg.Mouse).Msg("starting tui")

	finalModel, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	model := finalModel.(tui.Model)
	if cmd.noSummary || !cfg.Summary.OnExit {
		return nil
	}
	return summary.Write(c.Root().Writer, model.Profile(), cfg.Summary, outputWidth())
}
