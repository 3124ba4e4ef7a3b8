package handler

import (
	"strings"
	"sync"
	"time"

	"github.com/philipp01105/bootlog/core"
)

// recordingHandler captures entries and optionally suppresses some levels.
type recordingHandler struct {
	mu      sync.Mutex
	entries []core.Entry
	drop    map[core.Level]bool
	closed  bool
}

func (r *recordingHandler) Allow(entry *core.Entry) bool {
	return !r.drop[entry.Level]
}

func (r *recordingHandler) Handle(entry *core.Entry) error {
	if !r.Allow(entry) {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	e := *entry
	e.Args = append([]any(nil), entry.Args...)
	r.entries = append(r.entries, e)
	return nil
}

func (r *recordingHandler) Close() error {
	r.closed = true
	return nil
}

func (r *recordingHandler) messages() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var b strings.Builder
	for _, e := range r.entries {
		b.WriteString(e.Level.String())
		b.WriteString(":")
		b.WriteString(e.Text())
		b.WriteString("\n")
	}
	return b.String()
}

// fastRecorder additionally implements FastHandler.
type fastRecorder struct {
	recordingHandler
	fastCalls int
}

func (f *fastRecorder) HandleLog(t time.Time, level core.Level, msg string, args []any) error {
	f.fastCalls++
	return f.Handle(&core.Entry{Time: t, Level: level, Message: msg, Args: args})
}
