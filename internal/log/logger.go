package log

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New builds the console logger. level overrides the environment default
// (debug outside production, info in production); an unknown level is ignored.
func New(environment, level string) zerolog.Logger {
	return NewWithWriter(environment, level, os.Stdout)
}

func NewWithWriter(environment, level string, out io.Writer) zerolog.Logger {
	production := environment == "production"

	var w io.Writer = zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    true,
	}
	if production {
		// one JSON object per line for the log shipper
		w = out
	}

	return zerolog.New(w).
		Level(resolveLevel(production, level)).
		With().
		Timestamp().
		Str("env", environment).
		Str("app", "estate-admin").
		Logger()
}

func resolveLevel(production bool, level string) zerolog.Level {
	if level = strings.TrimSpace(level); level != "" {
		if l, err := zerolog.ParseLevel(strings.ToLower(level)); err == nil {
			return l
		}
	}
	if production {
		return zerolog.InfoLevel
	}
	return zerolog.DebugLevel
}
