// Package logger builds charmbracelet/log loggers for the CLI and library.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// New creates a logger writing to w at the given level.
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
	})
}

// NewWithFile creates a logger writing to both w and the file at path.
// The returned cleanup closes the file.
func NewWithFile(w io.Writer, path string, level log.Level) (*log.Logger, func(), error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644) // #nosec G304 -- log path is user-provided
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() { _ = f.Close() }
	return New(io.MultiWriter(w, f), level), cleanup, nil
}

// Discard returns a logger that drops all output.
func Discard() *log.Logger {
	return New(io.Discard, log.FatalLevel)
}
