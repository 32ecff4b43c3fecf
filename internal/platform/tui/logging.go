package tui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// NewLogger creates the structured logger used by the drivers.
func NewLogger(w io.Writer, level log.Level, prefix string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
}

// OpenLogFile opens path for appending. An empty path returns io.Discard,
// since the local driver must not log onto the screen it draws.
func OpenLogFile(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{io.Discard}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("tui: cannot open log file %s: %w", path, err)
	}
	return f, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
