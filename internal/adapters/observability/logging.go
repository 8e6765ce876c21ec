package observability

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger returns a zerolog Logger tagged with the service name.
// env dev (or development) uses a human-friendly console writer and debug
// level; anything else logs JSON at level (info when empty or invalid).
func NewLogger(env, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	if env == "dev" || env == "development" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
			Level(zerolog.DebugLevel).
			With().Timestamp().Str("service", "city-explorer").Logger()
	}
	return zerolog.New(os.Stdout).Level(lvl).
		With().Timestamp().Str("service", "city-explorer").Logger()
}
