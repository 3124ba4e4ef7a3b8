// Package core defines the shared types used across bootlog.
//
// It provides the closed Level set (error, warn, info, debug, log), the
// Environment a process runs in, and the Entry type that represents a
// single log event. Environment is deliberately not part of Entry: it is
// fixed once at startup and handed to formatters as configuration.
//
// Entry objects are pooled via sync.Pool. Callers get an Entry with
// GetEntry and return it with PutEntry once the handler has consumed
// it. PutEntry clears the argument slice so pooled entries never keep
// caller values alive.
//
// The coarse clock caches time.Now() on a ticker for loggers that only
// need minute-resolution timestamps.
package core
