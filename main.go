package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/campus/internal/campus"
	"github.com/colonyops/campus/internal/campus/sweep"
	"github.com/colonyops/campus/internal/commands"
	"github.com/colonyops/campus/internal/core/config"
	"github.com/colonyops/campus/internal/core/logging"
	"github.com/colonyops/campus/internal/core/media"
	"github.com/colonyops/campus/internal/core/styles"
	"github.com/colonyops/campus/pkg/logutils"
	"github.com/colonyops/campus/pkg/utils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, init() populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func buildInfo() campus.BuildInfo {
	v, c, d := version, commit, date

	// ldflags aren't set by `go install module@version`, so fall back to the
	// module version and VCS metadata Go records in the binary.
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	if len(c) > 7 {
		c = c[:7]
	}

	return campus.BuildInfo{Version: v, Commit: c, Date: d}
}

func main() {
	ctx := context.Background()

	// A missing .env is the common case.
	_ = godotenv.Load()

	var (
		build       = buildInfo()
		logCloser   func()
		consoleLogs *utils.DeferredWriter
		storeCloser io.Closer
		sweepCancel context.CancelFunc
		campusApp   = &campus.App{}
	)

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "campus",
		Usage:     "A learning management shell for the terminal",
		UsageText: "campus [global options] command [command options]",
		Description: `Campus is a keyboard-driven learning management shell.

Run 'campus' with no arguments to open the interactive shell.
Press ctrl+k inside the shell for the command palette and ? for help.`,
		Version: fmt.Sprintf("%s (%s) %s", build.Version, build.Commit, build.Date),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("CAMPUS_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file, or '-' to print logs after the shell exits",
				Sources:     cli.EnvVars("CAMPUS_LOG_FILE"),
				Value:       commands.DefaultLogFile(),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("CAMPUS_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "data-dir",
				Usage:       "path to data directory",
				Sources:     cli.EnvVars("CAMPUS_DATA_DIR"),
				Value:       commands.DefaultDataDir(),
				Destination: &flags.DataDir,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			// Console logs would draw over the shell, so hold them until exit.
			consoleLogs = &utils.DeferredWriter{}
			logger, closer, err := logutils.New(flags.LogLevel, flags.LogFile, consoleLogs)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger.Hook(logging.ContextHook{})
			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath, flags.DataDir)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			if flags.Theme != "" {
				cfg.Theme = flags.Theme
				if err := cfg.Validate(); err != nil {
					return ctx, fmt.Errorf("invalid --theme: %w", err)
				}
			}
			flags.Config = cfg

			// Apply configured theme (validation ensures name is valid)
			palette, _ := styles.GetPalette(cfg.Theme)
			styles.SetTheme(palette)

			store, closeStore, err := campus.OpenStorage(ctx, cfg)
			if err != nil {
				return ctx, err
			}
			storeCloser = closeStore

			sweepCtx, cancel := context.WithCancel(context.Background())
			sweepCancel = cancel
			go sweep.Start(sweepCtx, store, 5*time.Minute)

			// Commands already hold a pointer to the App.
			*campusApp = *campus.NewApp(cfg, store, media.NewLocalDevice(""), build)

			log.Debug().
				Str("version", build.Version).
				Str("backend", cfg.Storage.Backend).
				Msg("campus started")

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if sweepCancel != nil {
				sweepCancel()
			}

			if storeCloser != nil {
				if err := storeCloser.Close(); err != nil {
					log.Error().Err(err).Msg("failed to close storage")
					return err
				}
			}

			if consoleLogs != nil {
				_ = consoleLogs.Flush(os.Stderr)
			}
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	tuiCmd := commands.NewTuiCmd(flags, campusApp)

	app = commands.NewConfigValidateCmd(flags).Register(app)
	app = commands.NewOnboardingCmd(flags, campusApp).Register(app)

	// Register TUI flags on root command
	app.Flags = append(app.Flags, tuiCmd.Flags()...)

	// Set TUI as default action when no subcommand is provided
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'campus --help' for usage", c.Args().First())
		}
		return tuiCmd.Run(ctx, c)
	}

	exitCode := 0
	runErr := app.Run(ctx, os.Args)
	if runErr != nil {
		fmt.Println()
		fmt.Println(runErr.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
