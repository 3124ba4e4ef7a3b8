package accumulator

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cast"
)

// ErrIndexOutOfBounds is returned by Insert and Delete when an index or
// range falls outside the current fragment sequence.
var ErrIndexOutOfBounds = errors.New("accumulator: index out of bounds")

// Accumulator is an ordered, mutable sequence of string fragments that is
// materialized into a single string by String.
//
// The zero value is an empty Accumulator ready to use. An Accumulator is
// not safe for concurrent use; it is meant to be owned by a single
// formatting call.
type Accumulator struct {
	fragments []string
}

// New creates an Accumulator seeded with the given fragments.
// Empty seeds are skipped.
func New(seed ...string) *Accumulator {
	a := &Accumulator{fragments: make([]string, 0, 8)}
	for _, s := range seed {
		if s != "" {
			a.fragments = append(a.fragments, s)
		}
	}
	return a
}

// Stringify converts any value to the string form used by Append.
//
// Strings, numbers, booleans and byte slices are converted with their
// natural textual form; nil becomes the empty string. Errors, fmt.Stringer
// values and anything else are rendered with fmt's %v verb, which copes
// with nil receivers and panicking methods.
func Stringify(v any) string {
	switch v.(type) {
	case error, fmt.Stringer:
		return fmt.Sprint(v)
	}
	if s, err := cast.ToStringE(v); err == nil {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// Append appends the string form of v as a new fragment.
func (a *Accumulator) Append(v any) *Accumulator {
	a.fragments = append(a.fragments, Stringify(v))
	return a
}

// AppendString appends s as a new fragment.
func (a *Accumulator) AppendString(s string) *Accumulator {
	a.fragments = append(a.fragments, s)
	return a
}

// AppendInt appends the base 10 form of n.
func (a *Accumulator) AppendInt(n int64) *Accumulator {
	return a.AppendString(strconv.FormatInt(n, 10))
}

// AppendFloat appends the shortest decimal form of f that round-trips.
func (a *Accumulator) AppendFloat(f float64) *Accumulator {
	return a.AppendString(strconv.FormatFloat(f, 'f', -1, 64))
}

// AppendBool appends "true" or "false".
func (a *Accumulator) AppendBool(b bool) *Accumulator {
	return a.AppendString(strconv.FormatBool(b))
}

// Insert inserts the string form of v as a new fragment at position index
// of the fragment sequence. Index must be within [0, Len()].
func (a *Accumulator) Insert(index int, v any) error {
	if index < 0 || index > len(a.fragments) {
		return fmt.Errorf("%w: insert at %d with %d fragments", ErrIndexOutOfBounds, index, len(a.fragments))
	}
	a.fragments = slices.Insert(a.fragments, index, Stringify(v))
	return nil
}

// Delete removes the fragments in the half-open range [start, end). When
// end is omitted the range extends to the last fragment. Only the first
// value of end is used.
func (a *Accumulator) Delete(start int, end ...int) error {
	stop := len(a.fragments)
	if len(end) > 0 {
		stop = end[0]
	}
	if start < 0 || start > len(a.fragments) || stop < start || stop > len(a.fragments) {
		return fmt.Errorf("%w: delete [%d, %d) with %d fragments", ErrIndexOutOfBounds, start, stop, len(a.fragments))
	}
	a.fragments = slices.Delete(a.fragments, start, stop)
	return nil
}

// Reverse reverses the order of the fragments. The characters inside each
// fragment keep their order, so "ab","c" becomes "c","ab" and renders as
// "cab", not "cba".
func (a *Accumulator) Reverse() *Accumulator {
	slices.Reverse(a.fragments)
	return a
}

// Length returns the number of characters (runes) in the materialized
// string. It is recomputed on every call.
func (a *Accumulator) Length() int {
	n := 0
	for _, f := range a.fragments {
		n += utf8.RuneCountInString(f)
	}
	return n
}

// Len returns the number of fragments.
func (a *Accumulator) Len() int {
	return len(a.fragments)
}

// Fragments returns a copy of the current fragment sequence.
func (a *Accumulator) Fragments() []string {
	out := make([]string, len(a.fragments))
	copy(out, a.fragments)
	return out
}

// String concatenates all fragments in their current order.
func (a *Accumulator) String() string {
	switch len(a.fragments) {
	case 0:
		return ""
	case 1:
		return a.fragments[0]
	}
	return strings.Join(a.fragments, "")
}

// Clear drops every fragment, keeping the backing storage for reuse.
func (a *Accumulator) Clear() *Accumulator {
	clear(a.fragments)
	a.fragments = a.fragments[:0]
	return a
}
