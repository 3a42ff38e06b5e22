// Package logger implements a logging adapter using log/slog.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"go.trai.ch/rerun/internal/core/ports"
)

// Logger implements ports.Logger using log/slog.
//
// Info and Warn go to the standard output so status lines interleave with
// the command's own output. Error goes to the standard error.
type Logger struct {
	mu       sync.RWMutex
	out      *slog.Logger
	errOut   *slog.Logger
	outW     io.Writer
	errW     io.Writer
	jsonMode bool
}

// New creates a new Logger writing to os.Stdout and os.Stderr.
func New() ports.Logger {
	l := &Logger{}
	l.SetOutput(os.Stdout, os.Stderr)
	return l
}

// SetOutput updates the destinations for status lines and errors.
// A nil writer falls back to os.Stdout or os.Stderr respectively.
func (l *Logger) SetOutput(out, errOut io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	l.outW, l.errW = out, errOut
	l.rebuild()
}

// SetJSON switches between JSON and pretty logging.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable
	l.rebuild()
}

func (l *Logger) rebuild() {
	l.out = slog.New(l.handler(l.outW))
	l.errOut = slog.New(l.handler(l.errW))
}

func (l *Logger) handler(w io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if l.jsonMode {
		return slog.NewJSONHandler(w, opts)
	}
	return NewPrettyHandler(w, opts)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.out.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.out.Warn(msg)
}

// Error logs err with its full cause chain.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.jsonMode {
		l.errOut.Error("operation failed", "error", err)
		return
	}

	l.errOut.Error(formatErrorEntries(collectErrorEntries(err)))
}
