package commands

import (
	"context"
	"errors"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/campus/internal/printer"
	"github.com/colonyops/campus/pkg/iojson"
)

type ConfigValidateCmd struct {
	flags  *Flags
	format string
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags}
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "campus config validate [options]",
				Description: "Validates the configuration file, checking themes, delays, shortcuts, storage settings and file paths.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.run,
			},
		},
	})

	return app
}

// fieldError is the JSON form of one validation failure.
type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (cmd *ConfigValidateCmd) run(ctx context.Context, c *cli.Command) error {
	problems, err := collectFieldErrors(cmd.flags.Config.ValidateDeep(cmd.flags.ConfigPath))
	if err != nil {
		return err
	}

	if cmd.format == "json" {
		out := struct {
			Valid  bool         `json:"valid"`
			Path   string       `json:"path"`
			Errors []fieldError `json:"errors,omitempty"`
		}{
			Valid:  len(problems) == 0,
			Path:   cmd.flags.ConfigPath,
			Errors: problems,
		}
		if err := iojson.Write(c.Root().Writer, out); err != nil {
			return err
		}
	} else {
		p := printer.Ctx(ctx)
		for _, fe := range problems {
			p.Errorf("%s: %s", fe.Field, fe.Message)
		}
		if len(problems) == 0 {
			p.Successf("Configuration is valid")
		} else {
			p.Printf("")
			p.Errorf("%d error(s) found", len(problems))
		}
	}

	if len(problems) > 0 {
		return cli.Exit("", 1)
	}
	return nil
}

// collectFieldErrors flattens criterio field errors. Any other error is
// returned as is.
func collectFieldErrors(err error) ([]fieldError, error) {
	if err == nil {
		return nil, nil
	}

	var fieldErrs criterio.FieldErrors
	if !errors.As(err, &fieldErrs) {
		return nil, err
	}

	out := make([]fieldError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, fieldError{Field: fe.Field, Message: fe.Err.Error()})
	}
	return out, nil
}
