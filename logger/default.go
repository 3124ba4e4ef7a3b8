package logger

import (
	"sync"

	"github.com/philipp01105/bootlog/core"
	"github.com/philipp01105/bootlog/formatter"
	"github.com/philipp01105/bootlog/handler/consolehandler"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	// Initialize default logger with a development console handler
	h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Formatter: formatter.NewTextFormatter(formatter.Config{Environment: core.Development}),
	})
	defaultLogger = NewBuilder().
		WithHandler(h).
		Build()
}

// Default returns the default logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger

// Error logs an error message using the default logger
func Error(format string, args ...any) {
	Default().Error(format, args...)
}

// Warn logs a warning message using the default logger
func Warn(format string, args ...any) {
	Default().Warn(format, args...)
}

// Info logs an info message using the default logger
func Info(format string, args ...any) {
	Default().Info(format, args...)
}

// Debug logs a debug message using the default logger
func Debug(format string, args ...any) {
	Default().Debug(format, args...)
}

// Log logs a plain message using the default logger
func Log(format string, args ...any) {
	Default().Log(format, args...)
}
