package handler

import (
	"errors"
	"time"

	"github.com/philipp01105/bootlog/core"
)

// ErrClosed is returned when an entry reaches a handler after Close.
var ErrClosed = errors.New("handler: closed")

// Handler defines the interface for log handlers
type Handler interface {
	// Handle processes a log entry. Suppressed entries are not an error.
	Handle(entry *core.Entry) error

	// Close closes the handler and releases resources
	Close() error
}

// FastHandler is an optional interface that handlers can implement
// to process log data directly without requiring an Entry from the pool.
type FastHandler interface {
	HandleLog(t time.Time, level core.Level, msg string, args []any) error
}

// StatsProvider is implemented by handlers that count what they write.
type StatsProvider interface {
	Stats() Snapshot
}

// Allower is implemented by handlers that can tell ahead of time whether
// an entry at a level would be suppressed. Bridges use it to skip work.
type Allower interface {
	Allow(entry *core.Entry) bool
}

// allows reports whether h would keep an entry at level.
func allows(h Handler, level core.Level) bool {
	a, ok := h.(Allower)
	if !ok {
		return true
	}
	return a.Allow(&core.Entry{Level: level})
}
