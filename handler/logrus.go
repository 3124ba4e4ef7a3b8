package handler

import (
	"github.com/sirupsen/logrus"

	"github.com/philipp01105/bootlog/accumulator"
	"github.com/philipp01105/bootlog/core"
)

// LogrusHook forwards logrus entries to a Handler. Attach it with
// AddHook and discard the logrus output to make the pipeline the only sink:
//
//	l := logrus.New()
//	l.SetOutput(io.Discard)
//	l.AddHook(handler.NewLogrusHook(h))
type LogrusHook struct {
	handler Handler
}

// NewLogrusHook creates a hook wrapping h.
func NewLogrusHook(h Handler) *LogrusHook {
	return &LogrusHook{handler: h}
}

// Levels implements logrus.Hook; every level is forwarded.
func (hk *LogrusHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire implements logrus.Hook.
func (hk *LogrusHook) Fire(e *logrus.Entry) error {
	level := logrusLevelToCore(e.Level)
	if !allows(hk.handler, level) {
		return nil
	}

	acc := accumulator.New(e.Message)
	appendPairs(acc, e.Data)
	return dispatch(hk.handler, e.Time, level, acc.String())
}

// logrusLevelToCore converts a logrus.Level to a core.Level.
func logrusLevelToCore(level logrus.Level) core.Level {
	switch level {
	case logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel:
		return core.ErrorLevel
	case logrus.WarnLevel:
		return core.WarnLevel
	case logrus.InfoLevel:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}
