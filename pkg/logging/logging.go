// Package logging configures colored structured logging with tint.
//
// Usage:
//
//	logging.Setup("info")                    // explicit level name
//	logging.SetupWithLevel(slog.LevelDebug)  // explicit slog level
package logging

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Setup configures colored logging at the named level (debug, info,
// warn, error); unknown names fall back to INFO.
func Setup(level string) {
	SetupWithLevel(parseLevel(level))
}

// SetupWithLevel configures colored logging at the given level.
func SetupWithLevel(level slog.Level) {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		}),
	))
}

func parseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
