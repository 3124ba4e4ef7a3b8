package formatter

import (
	"io"

	"github.com/philipp01105/bootlog/accumulator"
	"github.com/philipp01105/bootlog/core"
)

// Separator sits between the level glyph and the message.
const Separator = " → "

// TextFormatter formats log entries as one human-readable, environment-aware line
type TextFormatter struct {
	Config
	envTag  string
	palette [len(levelStyles)]levelPalette
}

// NewTextFormatter creates a new text formatter. Styles are resolved once
// here, so the formatter is immutable and safe for concurrent use.
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = DefaultTimestampFormat
	}
	colored := cfg.Color.enabled()
	return &TextFormatter{
		Config:  cfg,
		envTag:  environmentTag(cfg.Environment, colored),
		palette: buildPalette(colored),
	}
}

// stage appends one part of the line to the accumulator.
type stage func(f *TextFormatter, entry *core.Entry, acc *accumulator.Accumulator)

// pipeline runs in order after an entry passes Allow.
var pipeline = [...]stage{
	(*TextFormatter).writeEnvironment,
	(*TextFormatter).writeTimestamp,
	(*TextFormatter).writeGlyph,
	(*TextFormatter).writeMessage,
}

// Allow reports whether the entry survives suppression. In production only
// error, warn and log entries pass; every other environment passes all.
func (f *TextFormatter) Allow(entry *core.Entry) bool {
	if f.Environment != core.Production {
		return true
	}
	return entry.Level.Valid() && keepInProduction[entry.Level]
}

// Line runs the pipeline and returns the line without a trailing newline.
// ok is false when the entry was suppressed.
func (f *TextFormatter) Line(entry *core.Entry) (line string, ok bool) {
	if !f.Allow(entry) {
		return "", false
	}

	acc := getAccumulator()
	for _, s := range pipeline {
		s(f, entry, acc)
	}
	line = acc.String()
	putAccumulator(acc)
	return line, true
}

// Format formats an entry as a newline-terminated line, or nil when suppressed
func (f *TextFormatter) Format(entry *core.Entry) ([]byte, error) {
	line, ok := f.Line(entry)
	if !ok {
		return nil, nil
	}
	out := make([]byte, 0, len(line)+1)
	out = append(out, line...)
	return append(out, '\n'), nil
}

// FormatTo formats an entry and writes it to w with a single Write call
func (f *TextFormatter) FormatTo(entry *core.Entry, w io.Writer) error {
	out, err := f.Format(entry)
	if err != nil || out == nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

func (f *TextFormatter) writeEnvironment(_ *core.Entry, acc *accumulator.Accumulator) {
	if f.envTag == "" {
		return
	}
	acc.AppendString(f.envTag).AppendString(" ")
}

func (f *TextFormatter) writeTimestamp(entry *core.Entry, acc *accumulator.Accumulator) {
	if !entry.Level.Valid() {
		return
	}
	stamp := entry.Time.Format(f.TimestampFormat)
	acc.AppendString("[").
		AppendString(f.palette[entry.Level].stamp.paint(stamp)).
		AppendString("]")
}

func (f *TextFormatter) writeGlyph(entry *core.Entry, acc *accumulator.Accumulator) {
	acc.AppendString(" ")
	if entry.Level.Valid() {
		acc.AppendString(f.palette[entry.Level].glyph)
	}
	acc.AppendString(Separator)
}

func (f *TextFormatter) writeMessage(entry *core.Entry, acc *accumulator.Accumulator) {
	text := entry.Text()
	if entry.Level.Valid() {
		text = f.palette[entry.Level].message.paint(text)
	}
	acc.AppendString(text)
}
