// Package handler provides the Handler interface that receives log
// entries, plus the pieces shared by every sink.
//
// Stats counts written and suppressed lines per level with atomic
// counters; Collector exposes those counts to Prometheus.
//
// Three bridges let code written against other logging APIs share the
// same pipeline and sink:
//
//   - SlogHandler implements log/slog.Handler.
//   - ZapCore implements zapcore.Core for go.uber.org/zap.
//   - LogrusHook implements logrus.Hook for sirupsen/logrus.
//
// Bridged attributes and fields are appended to the message as sorted
// key=value pairs; there is no structured output. Bridges ask the
// wrapped handler whether a level would be suppressed (Allower) before
// rendering anything.
//
// The console sink lives in the consolehandler subpackage.
package handler
