package logger

import (
	"log/slog"
	"os"
)

// New returns a JSON-structured logger writing to stderr at the given level.
func New(level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// Default is the info-level logger used when none is configured.
var Default = New(slog.LevelInfo)
