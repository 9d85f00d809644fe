// Package logger builds the zerolog logger used across the service.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New creates a structured logger. Release mode emits JSON; anything else
// gets console output for local development.
func New(level, ginMode string) zerolog.Logger {
	var w io.Writer = os.Stdout
	if ginMode != "release" {
		w = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	return zerolog.New(w).
		Level(parseLevel(level)).
		With().
		Timestamp().
		Logger()
}

func parseLevel(s string) zerolog.Level {
	switch s {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
