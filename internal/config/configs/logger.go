package configs

import (
	"log/slog"
	"strings"
)

// Logger configures the process slog logger.
type Logger struct {
	Level  string `env:"LEVEL" envDefault:"info"`
	Format string `env:"FORMAT" envDefault:"text"`
	Source bool   `env:"SOURCE" envDefault:"false"`
}

// SlogLevel parses Level. Unknown values mean info.
func (c Logger) SlogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.Level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "err":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SlogFormat returns "json" or "text".
func (c Logger) SlogFormat() string {
	if strings.EqualFold(strings.TrimSpace(c.Format), "json") {
		return "json"
	}
	return "text"
}

// HandlerOptions returns the handler options for the configured level.
// debug overrides the level and turns on source locations.
func (c Logger) HandlerOptions(debug bool) *slog.HandlerOptions {
	opts := &slog.HandlerOptions{Level: c.SlogLevel(), AddSource: c.Source}
	if debug {
		opts.Level = slog.LevelDebug
		opts.AddSource = true
	}
	return opts
}
