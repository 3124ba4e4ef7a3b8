package handler

import (
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/bootlog/accumulator"
	"github.com/philipp01105/bootlog/core"
)

// ZapCore implements zapcore.Core on top of a Handler, so a *zap.Logger
// can write through the formatting pipeline. Fields are rendered as
// key=value pairs after the message.
type ZapCore struct {
	handler Handler
	enabler zapcore.LevelEnabler
	fields  map[string]any
}

// NewZapCore wraps h. A nil enabler accepts every level.
//
//	log := zap.New(handler.NewZapCore(h, zapcore.DebugLevel))
func NewZapCore(h Handler, enabler zapcore.LevelEnabler) *ZapCore {
	if enabler == nil {
		enabler = zapcore.DebugLevel
	}
	return &ZapCore{handler: h, enabler: enabler}
}

// Enabled reports whether both the enabler and the wrapped handler keep the level.
func (c *ZapCore) Enabled(level zapcore.Level) bool {
	return c.enabler.Enabled(level) && allows(c.handler, zapLevelToCore(level))
}

// With returns a core that adds fields to every entry.
func (c *ZapCore) With(fields []zapcore.Field) zapcore.Core {
	merged := make(map[string]any, len(c.fields)+len(fields))
	for k, v := range c.fields {
		merged[k] = v
	}
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range fields {
		f.AddTo(enc)
	}
	for k, v := range enc.Fields {
		merged[k] = v
	}
	return &ZapCore{handler: c.handler, enabler: c.enabler, fields: merged}
}

// Check adds this core to the checked entry when the level is enabled.
func (c *ZapCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write renders the entry and its fields into one message and passes it on.
func (c *ZapCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	acc := accumulator.New()
	if ent.LoggerName != "" {
		acc.AppendString(ent.LoggerName).AppendString(": ")
	}
	acc.AppendString(ent.Message)

	all := c.fields
	if len(fields) > 0 {
		enc := zapcore.NewMapObjectEncoder()
		for k, v := range c.fields {
			enc.Fields[k] = v
		}
		for _, f := range fields {
			f.AddTo(enc)
		}
		all = enc.Fields
	}
	appendPairs(acc, all)

	return dispatch(c.handler, ent.Time, zapLevelToCore(ent.Level), acc.String())
}

// Sync is a no-op; the wrapped handler writes synchronously.
func (c *ZapCore) Sync() error {
	return nil
}

// zapLevelToCore converts a zapcore.Level to a core.Level.
func zapLevelToCore(level zapcore.Level) core.Level {
	switch {
	case level >= zapcore.ErrorLevel:
		return core.ErrorLevel
	case level == zapcore.WarnLevel:
		return core.WarnLevel
	case level == zapcore.InfoLevel:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}
