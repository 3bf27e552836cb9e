// Package logger provides process-wide logging for gutentopics.
// Debug and Info lines are only emitted in verbose mode (the --verbose flag)
// and trace each pipeline stage. Warnings and errors are always emitted.
// Lines are structured key=value records written through log/slog.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
	log               = newLogger(os.Stderr, false)
)

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: dropTime,
	})
	return slog.New(h)
}

// dropTime removes the timestamp; the CLI is short-lived and
// tests compare whole lines.
func dropTime(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey && len(groups) == 0 {
		return slog.Attr{}
	}
	return a
}

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
	log = newLogger(output, verbose)
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	log = newLogger(output, verbose)
}

// Logger returns the current logger, for adapters that take a *slog.Logger.
func Logger() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

// Debug logs a pipeline detail if verbose mode is enabled.
func Debug(msg string, args ...any) {
	Logger().Debug(msg, args...)
}

// Section marks the start of a pipeline stage if verbose mode is enabled.
func Section(name string) {
	Logger().Debug("stage", slog.String("name", name))
}

// Info logs an informational message if verbose mode is enabled.
func Info(msg string, args ...any) {
	Logger().Info(msg, args...)
}

// Warn logs a warning.
func Warn(msg string, args ...any) {
	Logger().Warn(msg, args...)
}

// Error logs an error.
func Error(msg string, err error, args ...any) {
	Logger().Error(msg, append(args, slog.Any("err", err))...)
}
