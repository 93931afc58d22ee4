package storage

import (
	"log/slog"
	"os"
)

// Runtime flag for growth logging - controlled by COWLIST_LOG_GROWTH env var.
var logGrowth = os.Getenv("COWLIST_LOG_GROWTH") != ""

// Config controls how a storage is built.
type Config struct {
	// Kind selects the strategy.
	// Default: KindBuffer
	Kind Kind

	// Logger receives debug events (growth). Nil discards them unless
	// COWLIST_LOG_GROWTH is set, in which case they go to stderr.
	Logger *slog.Logger
}

// DefaultConfig is used when a nil *Config is passed.
var DefaultConfig = Config{Kind: KindBuffer}

// logger resolves the configured logger.
func (c *Config) logger() *slog.Logger {
	if c != nil && c.Logger != nil {
		return c.Logger
	}
	return defaultLogger
}

var defaultLogger = func() *slog.Logger {
	if logGrowth {
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slog.DiscardHandler)
}()
