package log

import (
	"io"
	stdlog "log"
	"log/slog"
	"os"
)

// Logger is the global logger instance
var Logger *slog.Logger

var level = new(slog.LevelVar)

// InitLogger initializes the global logger writing to w at Error level.
// The level is raised by SetDebug once configuration is loaded.
func InitLogger(w io.Writer) {
	level.Set(slog.LevelError)

	opts := &slog.HandlerOptions{
		AddSource: false,
		Level:     level,
	}

	handler := slog.NewTextHandler(w, opts)
	Logger = slog.New(handler)
	slog.SetDefault(Logger)
}

// init initializes the logger when the package is imported.
// Output goes to stderr; stdout carries the MCP stream.
func init() {
	InitLogger(os.Stderr)
}

// SetDebug switches the global logger between Debug and Error level
func SetDebug(enabled bool) {
	if enabled {
		level.Set(slog.LevelDebug)
		return
	}
	level.Set(slog.LevelError)
}

// StdLogger returns a standard library logger writing through Logger at Error level
func StdLogger() *stdlog.Logger {
	return slog.NewLogLogger(Logger.Handler(), slog.LevelError)
}

// Debug logs a debug message
func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}

// Info logs an info message
func Info(msg string, args ...any) {
	Logger.Info(msg, args...)
}

// Warn logs a warning message
func Warn(msg string, args ...any) {
	Logger.Warn(msg, args...)
}

// Error logs an error message
func Error(msg string, args ...any) {
	Logger.Error(msg, args...)
}
