package logger

import (
	"time"

	"github.com/philipp01105/bootlog/core"
	"github.com/philipp01105/bootlog/handler"
)

// Logger is the main logging interface (immutable)
type Logger struct {
	handler     handler.Handler
	fastHandler handler.FastHandler
	now         func() time.Time
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	handler     handler.Handler
	fastHandler handler.FastHandler
	now         func() time.Time
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{now: time.Now}
}

// WithHandler sets the handler
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handler = h
	// Cache FastHandler for pool-free hot path
	b.fastHandler, _ = h.(handler.FastHandler)
	return b
}

// WithClock sets the function used to timestamp entries
func (b *Builder) WithClock(now func() time.Time) *Builder {
	if now != nil {
		b.now = now
	}
	return b
}

// WithCoarseClock switches timestamps to the cached coarse clock, which
// is refreshed in the background and avoids a time.Now call per entry.
func (b *Builder) WithCoarseClock(enabled bool) *Builder {
	if enabled {
		core.StartCoarseClock()
		b.now = core.CoarseNow
	} else {
		b.now = time.Now
	}
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	return &Logger{
		handler:     b.handler,
		fastHandler: b.fastHandler,
		now:         b.now,
	}
}

// Logf logs a formatted message at the specified level
func (l *Logger) Logf(level core.Level, format string, args ...any) {
	l.log(level, format, args)
}

// log is the internal logging method. Args are passed through untouched;
// substitution happens in the formatter, after suppression.
func (l *Logger) log(level core.Level, format string, args []any) {
	// Handler check - exit if no handler (avoid any work)
	if l.handler == nil {
		return
	}

	if l.fastHandler != nil {
		_ = l.fastHandler.HandleLog(l.now(), level, format, args)
		return
	}

	entry := core.GetEntry()
	entry.Time = l.now()
	entry.Level = level
	entry.Message = format
	if len(args) > 0 {
		entry.Args = append(entry.Args, args...)
	}

	// Handlers write synchronously, so the entry can be recycled right away
	_ = l.handler.Handle(entry)
	core.PutEntry(entry)
}

// Error logs an error message with formatting
func (l *Logger) Error(format string, args ...any) {
	l.log(core.ErrorLevel, format, args)
}

// Warn logs a warning message with formatting
func (l *Logger) Warn(format string, args ...any) {
	l.log(core.WarnLevel, format, args)
}

// Info logs an info message with formatting
func (l *Logger) Info(format string, args ...any) {
	l.log(core.InfoLevel, format, args)
}

// Debug logs a debug message with formatting
func (l *Logger) Debug(format string, args ...any) {
	l.log(core.DebugLevel, format, args)
}

// Log logs a plain message with formatting. Log lines are undecorated
// and survive production suppression.
func (l *Logger) Log(format string, args ...any) {
	l.log(core.LogLevel, format, args)
}

// Handler returns the handler the logger writes to
func (l *Logger) Handler() handler.Handler {
	return l.handler
}

// Close closes the logger's handler
func (l *Logger) Close() error {
	if l.handler != nil {
		return l.handler.Close()
	}
	return nil
}
