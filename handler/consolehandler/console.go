package consolehandler

import (
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/mattn/go-colorable"

	"github.com/philipp01105/bootlog/core"
	"github.com/philipp01105/bootlog/formatter"
	"github.com/philipp01105/bootlog/handler"
)

// lockedWriter wraps an io.Writer with a mutex, acquiring the lock only
// for Write calls. Formatters prepare a whole line and call Write once,
// so lines from concurrent callers never interleave.
type lockedWriter struct {
	mu *sync.Mutex // points to handler's mu
	w  io.Writer
}

func (lw *lockedWriter) Write(p []byte) (n int, err error) {
	lw.mu.Lock()
	n, err = lw.w.Write(p)
	lw.mu.Unlock()
	return
}

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Writer to write to (default: colorable stdout)
	Writer io.Writer
	// Formatter to use (default: TextFormatter for Development)
	Formatter formatter.Formatter
}

// applyConsoleDefaults fills in zero-value fields with defaults.
func applyConsoleDefaults(cfg *ConsoleConfig) {
	if cfg.Writer == nil {
		// Translates ANSI sequences on Windows consoles; a plain passthrough elsewhere
		cfg.Writer = colorable.NewColorableStdout()
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{Environment: core.Development})
	}
}

// ConsoleHandler writes one formatted line per entry, synchronously.
type ConsoleHandler struct {
	writer          io.Writer
	formatter       formatter.Formatter
	writerFormatter formatter.WriterFormatter
	filter          formatter.Filter
	stats           *handler.Stats
	mu              sync.Mutex // serializes writes
	lw              lockedWriter
	closed          atomic.Bool
}

// NewConsoleHandler creates a new console handler.
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	applyConsoleDefaults(&cfg)

	h := &ConsoleHandler{
		writer:    cfg.Writer,
		formatter: cfg.Formatter,
		stats:     handler.NewStats(),
	}
	h.lw = lockedWriter{mu: &h.mu, w: h.writer}

	// Cache optional formatter interfaces once
	h.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)
	h.filter, _ = cfg.Formatter.(formatter.Filter)

	return h
}

// Allow reports whether the formatter would keep the entry.
func (h *ConsoleHandler) Allow(entry *core.Entry) bool {
	return h.filter == nil || h.filter.Allow(entry)
}

// Handle formats the entry and writes it. Suppressed entries are counted
// and produce no output.
func (h *ConsoleHandler) Handle(entry *core.Entry) error {
	if h.closed.Load() {
		return handler.ErrClosed
	}

	if !h.Allow(entry) {
		h.stats.IncrementSuppressed(entry.Level)
		return nil
	}

	if h.writerFormatter != nil && h.filter != nil {
		if err := h.writerFormatter.FormatTo(entry, &h.lw); err != nil {
			return err
		}
		h.stats.IncrementProcessed(entry.Level)
		return nil
	}

	data, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}
	if data == nil {
		h.stats.IncrementSuppressed(entry.Level)
		return nil
	}
	if _, err := h.lw.Write(data); err != nil {
		return err
	}
	h.stats.IncrementProcessed(entry.Level)
	return nil
}

// HandleLog processes log data directly without requiring a pooled Entry.
func (h *ConsoleHandler) HandleLog(t time.Time, level core.Level, msg string, args []any) error {
	entry := core.Entry{Time: t, Level: level, Message: msg, Args: args}
	return h.Handle(&entry)
}

// Stats returns a snapshot of the current statistics
func (h *ConsoleHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close marks the handler closed. The writer is not closed; stdout
// outlives any handler.
func (h *ConsoleHandler) Close() error {
	h.closed.Store(true)
	return nil
}
