// Package logging configures the process-wide slog logger. Logs go to a
// rotating file; when no file is configured they are discarded so console
// output stays exactly what the commands print.
package logging

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

type Config struct {
	// File is the log file path; empty discards logs unless Debug is set.
	File string
	// Level is "debug", "info", "warn" or "error".
	Level string
	// Format is "json" (default) or "text".
	Format string
	// Debug without File writes text logs to stderr.
	Debug bool

	MaxSizeMB  int
	MaxBackups int
}

var (
	mu     sync.Mutex
	logger = slog.New(slog.DiscardHandler)
	closer io.Closer
)

// Init replaces the global logger. Call Close before exit.
func Init(cfg Config) *slog.Logger {
	mu.Lock()
	defer mu.Unlock()

	if closer != nil {
		_ = closer.Close()
		closer = nil
	}
	if cfg.MaxSizeMB <= 0 {
		cfg.MaxSizeMB = 10
	}
	if cfg.MaxBackups <= 0 {
		cfg.MaxBackups = 3
	}

	level := ParseLevel(cfg.Level)
	if cfg.Debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var w io.Writer
	switch {
	case cfg.File != "":
		lj := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
		}
		w, closer = lj, lj
	case cfg.Debug:
		w = os.Stderr
		cfg.Format = "text"
	default:
		logger = slog.New(slog.DiscardHandler)
		return logger
	}

	if cfg.Format == "text" {
		logger = slog.New(slog.NewTextHandler(w, opts))
	} else {
		logger = slog.New(slog.NewJSONHandler(w, opts))
	}
	return logger
}

// Logger returns the current global logger.
func Logger() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// Close flushes and closes the log file, if any. Later log calls are
// discarded until the next Init.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	logger = slog.New(slog.DiscardHandler)
	if closer == nil {
		return nil
	}
	err := closer.Close()
	closer = nil
	return err
}

func ParseLevel(s string) slog.Level {
	switch s {
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
