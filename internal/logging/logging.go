// Package logging installs the process-wide slog handler.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spacehole-rogue/supertrek/internal/config"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Init points the default logger at path. Both front-ends own the terminal, so stderr is
// only used when the file cannot be opened. The returned closer releases the file.
func Init(cfg config.LoggingConfig, path string) (*slog.Logger, io.Closer) {
	var (
		w       io.Writer = os.Stderr
		closer  io.Closer = nopCloser{}
		openErr error
	)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		openErr = err
	} else if f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err != nil {
		openErr = err
	} else {
		w, closer = f, f
	}

	logger := New(w, cfg)
	slog.SetDefault(logger)
	if openErr != nil {
		logger.Warn("log file unavailable, using stderr", "path", path, "error", openErr)
	}
	logger.With("component", "logger").Debug("logger initialized",
		"level", cfg.Level,
		"json_format", cfg.JSONFormat,
	)
	return logger, closer
}

// New builds a text or JSON logger on w.
func New(w io.Writer, cfg config.LoggingConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	var handler slog.Handler
	if cfg.JSONFormat {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}
