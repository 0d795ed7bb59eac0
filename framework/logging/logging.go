// Package logging configures the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	levelVar slog.LevelVar
	mu       sync.RWMutex
	current  = newLogger(os.Stdout, false)
)

func newLogger(w io.Writer, json bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: &levelVar}
	if json {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Init replaces the default logger. json selects the JSON handler used in
// production; level is parsed with ParseLevel.
func Init(w io.Writer, level string, json bool) *slog.Logger {
	levelVar.Set(ParseLevel(level))
	l := newLogger(w, json)

	mu.Lock()
	current = l
	mu.Unlock()

	slog.SetDefault(l)
	return l
}

// ParseLevel maps debug|info|warn|error to a slog level. Anything else is info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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

// SetLevel changes the level of every logger created by this package.
func SetLevel(level slog.Level) { levelVar.Set(level) }

// Default returns the current logger.
func Default() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// With returns the current logger with attrs attached.
func With(args ...any) *slog.Logger { return Default().With(args...) }

// Discard returns a logger that writes nowhere, for tests.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
