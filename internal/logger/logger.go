// Package logger configures slog for a session. The terminal belongs to the
// game screen, so records go to a file (or stderr for headless commands).
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"winternight/internal/config"

	"github.com/google/uuid"
)

// Setup builds the logger described by cfg and installs it as the slog
// default. The returned closer releases the log file.
func Setup(cfg config.Config) (*slog.Logger, io.Closer, error) {
	out, closer, err := open(cfg.LogFile)
	if err != nil {
		return nil, nil, err
	}
	logger := New(out, cfg)
	slog.SetDefault(logger)
	return logger, closer, nil
}

// New returns a logger writing to w, JSON in production and text otherwise.
func New(w io.Writer, cfg config.Config) *slog.Logger {
	var handler slog.Handler
	opts := &slog.HandlerOptions{Level: cfg.Level()}
	if cfg.Environment == "production" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// WithRunID tags every record with a fresh run id and returns the id.
func WithRunID(logger *slog.Logger) (*slog.Logger, string) {
	id := uuid.NewString()
	return logger.With("run_id", id), id
}

// WithError adds err to the logger context.
func WithError(logger *slog.Logger, err error) *slog.Logger {
	return logger.With("error", err.Error())
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func open(path string) (io.Writer, io.Closer, error) {
	switch path {
	case "":
		return io.Discard, nopCloser{}, nil
	case "-":
		return os.Stderr, nopCloser{}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, f, nil
}
