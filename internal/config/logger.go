package config

import (
	"log/slog"
	"os"
	"strings"
)

// NewLogger builds the process-wide JSON logger at the configured level.
// Source locations are attached only at debug level, where the extra bytes
// per record earn their keep.
func (c *LoggerConfig) NewLogger() *slog.Logger {
	level := c.slogLevel()
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}))
}

// slogLevel maps the configured level name onto slog's levels, defaulting
// to info for anything unrecognized.
func (c *LoggerConfig) slogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
