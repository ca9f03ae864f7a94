// Package logging owns the application's log file.
//
// The terminal UI owns stdout, so everything is written as JSON lines to a
// file. Until Configure is called all output is discarded.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	mu           sync.RWMutex
	logger       = slog.New(slog.NewJSONHandler(io.Discard, nil))
	traceEnabled bool
	out          io.Closer
)

// Configure opens path for appending and routes all log output there.
// Directories are created when missing. An empty path keeps output
// discarded, which is what the CLI uses unless -verbose is given.
func Configure(path string, level slog.Level, trace bool) error {
	if strings.TrimSpace(path) == "" {
		SetOutput(io.Discard, level, trace)
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	SetOutput(f, level, trace)

	mu.Lock()
	out = f
	mu.Unlock()
	return nil
}

// SetOutput routes log output to w. The previous file, if any, is closed.
func SetOutput(w io.Writer, level slog.Level, trace bool) {
	mu.Lock()
	defer mu.Unlock()
	if out != nil {
		out.Close()
		out = nil
	}
	logger = slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	traceEnabled = trace
}

// Close closes the log file opened by Configure.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	if out == nil {
		return nil
	}
	err := out.Close()
	out = nil
	return err
}

// Logger returns the shared logger.
func Logger() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// SetTraceEnabled toggles emission of trace entries.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	traceEnabled = enabled
	mu.Unlock()
}

// Trace writes a named event when tracing is enabled.
func Trace(event string, args ...any) {
	mu.RLock()
	enabled, l := traceEnabled, logger
	mu.RUnlock()
	if !enabled {
		return
	}
	l.Info(event, append([]any{slog.Bool("trace", true)}, args...)...)
}

// Error logs err at error level. Nil errors are ignored.
func Error(err error) {
	if err == nil {
		return
	}
	Logger().Error(err.Error())
}

// ParseLevel maps "debug", "info", "warn" and "error" to slog levels.
// Anything else is info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
