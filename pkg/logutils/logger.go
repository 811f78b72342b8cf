// Package logutils builds the process-wide zerolog logger.
package logutils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// ConsoleFile selects human-readable console output instead of a log file.
const ConsoleFile = "-"

// New returns a logger at the given level.
//
// When file is ConsoleFile, events are formatted as console lines and written
// to console. Otherwise JSON is appended to file, or written to stdout when
// file is empty.
//
// The level parameter can be one of: debug, info, warn, error, fatal.
func New(level, file string, console io.Writer) (zerolog.Logger, func(), error) {
	closer := func() {}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Logger{}, closer, err
	}

	var writer io.Writer = os.Stdout
	switch file {
	case "":
	case ConsoleFile:
		writer = zerolog.ConsoleWriter{Out: console, NoColor: true}
	default:
		if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
			return zerolog.Logger{}, closer, fmt.Errorf("create logs dir: %w", err)
		}

		osFile, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Logger{}, closer, err
		}
		closer = func() { _ = osFile.Close() }
		writer = osFile
	}

	l := zerolog.New(writer).
		With().
		Timestamp().
		Logger().
		Level(lvl)

	return l, closer, nil
}
