// Package logger builds the structured logger of the graphval command.
package logger

import (
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/hidal-go/graphval/config"
)

// New creates a logger that writes to w. All events include the provided component field.
// A console format produces human-readable output, any other format produces JSON lines.
func New(w io.Writer, component string, cfg config.LogConfig) (zerolog.Logger, error) {
	cfg.SetDefaults()
	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), err
	}
	if cfg.Format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Str("component", component).Logger(), nil
}
