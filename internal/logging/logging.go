// Package logging configures the process-wide slog logger. The TUI owns
// the terminal, so records go to a file or nowhere.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

// Setup installs the default logger. With an empty path all records are
// discarded. The returned closer releases the log file.
func Setup(path string, level slog.Level) (*slog.Logger, io.Closer, error) {
	if path == "" {
		logger := slog.New(slog.DiscardHandler)
		slog.SetDefault(logger)
		return logger, io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := New(f, level)
	slog.SetDefault(logger)
	return logger, f, nil
}

// New returns a JSON logger on w tagged with a fresh run_id.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})).With("run_id", uuid.NewString())
}
