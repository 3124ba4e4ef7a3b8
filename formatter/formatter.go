package formatter

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"

	"github.com/philipp01105/bootlog/accumulator"
	"github.com/philipp01105/bootlog/core"
)

// DefaultTimestampFormat renders timestamps as DD/MM @ HH:mm.
const DefaultTimestampFormat = "02/01 @ 15:04"

// Formatter defines the interface for log formatters
type Formatter interface {
	// Format formats a log entry into a newline-terminated line. A nil
	// slice with a nil error means the entry was suppressed.
	Format(entry *core.Entry) ([]byte, error)
}

// WriterFormatter is an optional interface that formatters can implement
// to write directly to a writer without intermediate byte slice allocation.
type WriterFormatter interface {
	// FormatTo formats a log entry and writes it directly to the writer.
	// Suppressed entries write nothing.
	FormatTo(entry *core.Entry, w io.Writer) error
}

// Filter is implemented by formatters that drop some entries before
// formatting them. Handlers use it to count suppressed lines.
type Filter interface {
	Allow(entry *core.Entry) bool
}

// ColorMode selects whether ANSI styling is applied.
type ColorMode uint8

const (
	// ColorAuto styles output only when stdout is a terminal
	ColorAuto ColorMode = iota
	// ColorAlways forces styling on
	ColorAlways
	// ColorNever disables styling
	ColorNever
)

// String returns the string representation of the mode
func (m ColorMode) String() string {
	switch m {
	case ColorAuto:
		return "auto"
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "unknown"
	}
}

// ParseColorMode converts "auto", "always" or "never" (also "true"/"false")
// to a ColorMode.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ColorAuto, nil
	case "always", "true", "on":
		return ColorAlways, nil
	case "never", "false", "off":
		return ColorNever, nil
	default:
		return ColorAuto, fmt.Errorf("invalid color mode: %q", s)
	}
}

// enabled resolves the mode against the process's stdout.
func (m ColorMode) enabled() bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		fd := os.Stdout.Fd()
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
}

// Config holds common formatter configuration
type Config struct {
	// Environment selects the environment tag and production suppression
	Environment core.Environment
	// TimestampFormat specifies the time layout (empty for DefaultTimestampFormat)
	TimestampFormat string
	// Color selects ANSI styling (default: ColorAuto)
	Color ColorMode
}

// accumulatorPool is a pool of accumulators to reduce allocations. Each
// formatting call takes its own, so concurrent calls never share one.
var accumulatorPool = &sync.Pool{
	New: func() interface{} {
		return accumulator.New()
	},
}

func getAccumulator() *accumulator.Accumulator {
	return accumulatorPool.Get().(*accumulator.Accumulator)
}

func putAccumulator(acc *accumulator.Accumulator) {
	if acc.Len() > 64 { // Don't keep accumulators grown by unusual lines
		return
	}
	acc.Clear()
	accumulatorPool.Put(acc)
}
