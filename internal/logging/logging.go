// Package logging builds the application logger. The terminal belongs to the
// TUI, so log output goes to a file.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
)

// DefaultPath returns the log file location under the XDG state directory,
// creating parent directories as needed.
func DefaultPath() (string, error) {
	return xdg.StateFile("backdrop/backdrop.log")
}

// New creates a logger writing to w with timestamps and caller information.
// Unknown level names fall back to info.
func New(w io.Writer, level string) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	opts := log.Options{ReportTimestamp: true, ReportCaller: true}
	l := log.NewWithOptions(w, opts)
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	l.SetLevel(lvl)
	return l
}

// Open appends to the log file at path (DefaultPath when empty) and returns
// the logger with the file to close on exit.
func Open(path, level string) (*log.Logger, io.Closer, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, nil, fmt.Errorf("resolve log path: %w", err)
		}
		path = p
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return New(f, level), f, nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
