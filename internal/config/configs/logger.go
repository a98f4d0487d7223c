package configs

import (
	"io"
	"log/slog"
	"strings"
)

// Logger configures the structured logger shared by the server and the CLI.
// Level accepts the slog names ("debug", "info", "warn", "error", optionally
// with an offset such as "info+2"). Format is "text" or "json".
type Logger struct {
	Level  string `env:"LEVEL" envDefault:"info"`
	Format string `env:"FORMAT" envDefault:"text"`
	// Source adds the file:line of the call site to every record.
	Source bool `env:"SOURCE" envDefault:"false"`
}

// SlogLevel parses Level. Unknown levels default to slog.LevelInfo.
func (c Logger) SlogLevel() slog.Level {
	lvl := strings.TrimSpace(c.Level)
	if strings.EqualFold(lvl, "warning") {
		lvl = "warn"
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(lvl)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// SlogFormat returns "json" or "text"; anything unrecognised is "text".
func (c Logger) SlogFormat() string {
	if strings.EqualFold(strings.TrimSpace(c.Format), "json") {
		return "json"
	}
	return "text"
}

// Handler builds the slog handler writing to w.
func (c Logger) Handler(w io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{Level: c.SlogLevel(), AddSource: c.Source}
	if c.SlogFormat() == "json" {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}
