package analysis

import (
	"io"

	"github.com/rs/zerolog"
)

// NewLogger builds a console logger at the given level; an unknown level
// falls back to info.
func NewLogger(level string, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
	}).Level(lvl).With().Timestamp().Str("service", "ssspbench").Logger()
}

// Logger creates a console logger from the configured level.
func (c *Config) Logger(w io.Writer) zerolog.Logger {
	return NewLogger(c.LogLevel(), w)
}
