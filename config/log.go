package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// LogConfig defines the log output of the command.
type LogConfig struct {
	// Level is a minimal level of events: "debug", "info", "warn" or "error".
	Level string `json:"level"`
	// Format selects the output: "json" or "console".
	Format string `json:"format"`
}

// SetDefaults applies sane defaults.
func (c *LogConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = "json"
	}
}

// Validate checks the level and the format.
func (c LogConfig) Validate() error {
	if _, err := zerolog.ParseLevel(c.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Level, err)
	}
	if c.Format != "json" && c.Format != "console" {
		return fmt.Errorf("unknown log format %s", c.Format)
	}
	return nil
}
