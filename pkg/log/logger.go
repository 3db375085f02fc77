// Package log provides zerolog logger construction for the command-line
// tooling. Library packages never log; only the acquisition tool does.
package log

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// ParseLevel converts a textual log level into a zerolog level.
func ParseLevel(level string) (zerolog.Level, error) {
	switch level {
	case "debug":
		return zerolog.DebugLevel, nil
	case "info":
		return zerolog.InfoLevel, nil
	case "warn":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("invalid log level: %q", level)
	}
}

// New returns a console logger writing to w at the given level.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	out := zerolog.ConsoleWriter{Out: w}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// NewJSON returns a structured JSON logger writing to w at the given level.
func NewJSON(w io.Writer, level zerolog.Level) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
