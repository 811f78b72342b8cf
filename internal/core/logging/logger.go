package logging

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Component derives a logger from the global logger tagged with the owning
// subsystem, e.g. "nav", "tui" or "media". Call it after log.Logger is
// configured; the parent is captured at call time.
func Component(name string) zerolog.Logger {
	return log.Logger.With().Str("component", name).Logger()
}
