// Package formatter turns log entries into display lines.
//
// TextFormatter runs a fixed pipeline over each entry. Suppression runs
// first: in production, info and debug entries are dropped before any
// other work. Surviving entries pass through four stages that append to
// a pooled accumulator.Accumulator:
//
//  1. environment tag, e.g. "[development] "
//  2. bracketed timestamp in DD/MM @ HH:mm, styled per level
//  3. a space, the level glyph and the " → " separator
//  4. the message after printf substitution, styled per level
//
// The accumulator is materialized exactly once per line. Glyphs and
// styles come from a single table indexed by core.Level; a level outside
// the closed set simply gets no decoration.
//
// ANSI styling uses fatih/color and is resolved once at construction
// from Config.Color, so a formatter never consults global state while
// formatting.
package formatter
