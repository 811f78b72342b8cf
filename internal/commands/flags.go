package commands

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/colonyops/campus/internal/core/config"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	DataDir    string

	// TUI only
	Theme  string
	NoTour bool

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	return config.DefaultPath()
}

// DefaultDataDir returns the default data directory using XDG_DATA_HOME.
func DefaultDataDir() string {
	return config.DefaultDataDir()
}

// DefaultLogFile returns the default log file path using the system's state directory.
// On macOS: ~/Library/Logs/campus/campus.log
// On Linux: $XDG_STATE_HOME/campus/campus.log (defaults to ~/.local/state/campus/campus.log)
func DefaultLogFile() string {
	if stateHome := os.Getenv("XDG_STATE_HOME"); stateHome != "" {
		return filepath.Join(stateHome, "campus", "campus.log")
	}

	home, _ := os.UserHomeDir()

	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", "campus", "campus.log")
	}

	return filepath.Join(home, ".local", "state", "campus", "campus.log")
}
