package logger

import "github.com/philipp01105/bootlog/core"

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	ErrorLevel = core.ErrorLevel
	WarnLevel  = core.WarnLevel
	InfoLevel  = core.InfoLevel
	DebugLevel = core.DebugLevel
	LogLevel   = core.LogLevel
)

// Environment Re-export type and constants for convenience
type Environment = core.Environment

const (
	Development = core.Development
	Production  = core.Production
	Test        = core.Test
)

// ParseLevel converts a string to a Level
func ParseLevel(s string) (Level, error) {
	return core.ParseLevel(s)
}
