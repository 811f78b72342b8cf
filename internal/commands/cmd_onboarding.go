package commands

import (
	"context"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/campus/internal/campus"
	"github.com/colonyops/campus/internal/printer"
	"github.com/colonyops/campus/pkg/iojson"
)

type OnboardingCmd struct {
	flags  *Flags
	app    *campus.App
	format string
}

// NewOnboardingCmd creates the onboarding command group.
func NewOnboardingCmd(flags *Flags, app *campus.App) *OnboardingCmd {
	return &OnboardingCmd{flags: flags, app: app}
}

// Register adds the onboarding commands to the application.
func (cmd *OnboardingCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "onboarding",
		Usage: "Inspect or reset the first-run tour",
		Commands: []*cli.Command{
			{
				Name:      "status",
				Usage:     "Show whether the tour has been completed",
				UsageText: "campus onboarding status [options]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.runStatus,
			},
			{
				Name:        "reset",
				Usage:       "Show the tour again on next launch",
				UsageText:   "campus onboarding reset",
				Description: "Clears the stored completion flag and any snooze so the tour opens automatically the next time the TUI starts.",
				Action:      cmd.runReset,
			},
		},
	})

	return app
}

func (cmd *OnboardingCmd) runStatus(ctx context.Context, c *cli.Command) error {
	status := cmd.app.Onboarding.Status(ctx)

	if cmd.format == "json" {
		out := struct {
			Completed    bool       `json:"completed"`
			SnoozedUntil *time.Time `json:"snoozed_until,omitempty"`
			Backend      string     `json:"backend"`
		}{
			Completed: status.Completed,
			Backend:   cmd.app.Config.Storage.Backend,
		}
		if !status.SnoozedUntil.IsZero() {
			out.SnoozedUntil = &status.SnoozedUntil
		}
		return iojson.Write(c.Root().Writer, out)
	}

	p := printer.Ctx(ctx)
	switch {
	case status.Completed:
		p.Successf("Tour completed")
	case !status.SnoozedUntil.IsZero():
		p.Infof("Tour snoozed until %s", status.SnoozedUntil.Local().Format(time.DateTime))
	default:
		p.Infof("Tour not completed, it will open on next launch")
	}
	return nil
}

func (cmd *OnboardingCmd) runReset(ctx context.Context, _ *cli.Command) error {
	if err := cmd.app.Onboarding.Reset(ctx); err != nil {
		return err
	}

	printer.Ctx(ctx).Successf("Onboarding reset, the tour will open on next launch")
	return nil
}
