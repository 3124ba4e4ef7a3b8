package handler

import (
	"context"
	"log/slog"
	"time"

	"github.com/philipp01105/bootlog/accumulator"
	"github.com/philipp01105/bootlog/core"
)

// SlogHandler is an adapter that implements slog.Handler on top of a Handler.
// Records go through the same formatting pipeline as native log calls;
// attributes are appended to the message as key=value pairs.
type SlogHandler struct {
	handler Handler
	attrs   []slog.Attr
	group   string
}

// NewSlogHandler creates a new slog.Handler adapter wrapping the given Handler.
func NewSlogHandler(h Handler) *SlogHandler {
	return &SlogHandler{handler: h}
}

// Enabled reports whether the wrapped handler would keep records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return allows(s.handler, slogLevelToCore(level))
}

// Handle renders the record and its attributes into one message and passes it on.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	acc := accumulator.New(record.Message)

	// s.attrs were qualified by WithAttrs
	for _, a := range s.attrs {
		appendAttr(acc, "", a)
	}
	record.Attrs(func(a slog.Attr) bool {
		appendAttr(acc, s.group, a)
		return true
	})

	// A zero record time means the caller did not set one
	t := record.Time
	if t.IsZero() {
		t = time.Now()
	}
	return dispatch(s.handler, t, slogLevelToCore(record.Level), acc.String())
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]slog.Attr, len(s.attrs), len(s.attrs)+len(attrs))
	copy(newAttrs, s.attrs)
	for _, a := range attrs {
		// Qualify now so a later WithGroup does not re-prefix these
		if s.group != "" {
			a.Key = s.group + "." + a.Key
		}
		newAttrs = append(newAttrs, a)
	}
	return &SlogHandler{
		handler: s.handler,
		attrs:   newAttrs,
		group:   s.group,
	}
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	newGroup := name
	if s.group != "" {
		newGroup = s.group + "." + name
	}
	return &SlogHandler{
		handler: s.handler,
		attrs:   s.attrs,
		group:   newGroup,
	}
}

// slogLevelToCore converts a slog.Level to a core.Level.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}

// appendAttr writes " key=value", flattening groups into dotted keys.
func appendAttr(acc *accumulator.Accumulator, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	key := a.Key
	if group != "" && key != "" {
		key = group + "." + key
	}

	if a.Value.Kind() == slog.KindGroup {
		if key == "" {
			key = group
		}
		for _, ga := range a.Value.Group() {
			appendAttr(acc, key, ga)
		}
		return
	}

	acc.AppendString(" ").AppendString(key).AppendString("=").Append(a.Value.String())
}
