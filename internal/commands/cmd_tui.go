package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/campus/internal/campus"
	"github.com/colonyops/campus/internal/core/notify"
	"github.com/colonyops/campus/internal/tui"
)

// ErrNotTerminal is returned when the TUI is started without a terminal on
// stdin and stdout.
var ErrNotTerminal = errors.New("campus needs an interactive terminal, run a subcommand instead")

// isTerminal is replaced in tests.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

type TuiCmd struct {
	flags *Flags
	app   *campus.App
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags, app *campus.App) *TuiCmd {
	return &TuiCmd{
		flags: flags,
		app:   app,
	}
}

// Flags returns the TUI-specific flags for registration on the root command
func (cmd *TuiCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "theme",
			Usage:       "override the configured color theme",
			Sources:     cli.EnvVars("CAMPUS_THEME"),
			Destination: &cmd.flags.Theme,
		},
		&cli.BoolFlag{
			Name:        "no-tour",
			Usage:       "do not open the onboarding tour automatically",
			Sources:     cli.EnvVars("CAMPUS_NO_TOUR"),
			Destination: &cmd.flags.NoTour,
		},
	}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *TuiCmd) run(ctx context.Context, _ *cli.Command) error {
	if !isTerminal() {
		return ErrNotTerminal
	}

	ctx = notify.WithStore(ctx, cmd.app.Notifications)

	m := tui.New(ctx, cmd.app, tui.Options{NoTour: cmd.flags.NoTour})
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	return nil
}
