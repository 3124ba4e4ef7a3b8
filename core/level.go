package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownLevel is returned by ParseLevel for names outside the closed level set.
var ErrUnknownLevel = errors.New("unknown log level")

// Level represents the severity level of a log entry
type Level int8

const (
	// ErrorLevel for failures that need attention
	ErrorLevel Level = iota
	// WarnLevel for conditions that may become failures
	WarnLevel
	// InfoLevel for general informational messages
	InfoLevel
	// DebugLevel for detailed debugging information
	DebugLevel
	// LogLevel for plain, undecorated messages that survive production filtering
	LogLevel

	levelCount
)

// Levels lists every valid level in declaration order.
var Levels = [...]Level{ErrorLevel, WarnLevel, InfoLevel, DebugLevel, LogLevel}

var levelNames = [...]string{
	ErrorLevel: "error",
	WarnLevel:  "warn",
	InfoLevel:  "info",
	DebugLevel: "debug",
	LogLevel:   "log",
}

// String returns the string representation of the level
func (l Level) String() string {
	if !l.Valid() {
		return "unknown"
	}
	return levelNames[l]
}

// Valid reports whether l is one of the five known levels.
func (l Level) Valid() bool {
	return l >= 0 && l < levelCount
}

// ParseLevel converts a level name to a Level. Matching is case-insensitive
// and "warning" is accepted as an alias for warn.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return ErrorLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "info":
		return InfoLevel, nil
	case "debug":
		return DebugLevel, nil
	case "log":
		return LogLevel, nil
	default:
		return LogLevel, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
}
