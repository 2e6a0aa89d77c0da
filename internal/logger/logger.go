// Package logger holds the process-wide structured logger used by the CLI.
// The library packages never log; only the command layer does.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

// Format selects the slog handler.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

type Config struct {
	Debug  bool
	Format Format
	// Out defaults to os.Stderr.
	Out io.Writer
}

var (
	mu     sync.RWMutex
	global = discard()
)

// Setup installs a logger built from cfg and returns a func restoring the
// discard logger.
func Setup(cfg Config) func() {
	out := cfg.Out
	if out == nil {
		out = os.Stderr
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level, AddSource: cfg.Debug}

	var h slog.Handler
	switch cfg.Format {
	case FormatJSON:
		h = slog.NewJSONHandler(out, opts)
	default:
		h = slog.NewTextHandler(out, opts)
	}

	mu.Lock()
	global = slog.New(h)
	mu.Unlock()

	L().Debug("logger.initialized", "format", string(cfg.Format), "debug", cfg.Debug)

	return func() {
		mu.Lock()
		defer mu.Unlock()
		global = discard()
	}
}

// L returns the current logger. Before Setup it discards everything.
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

func discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
