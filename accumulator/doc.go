// Package accumulator provides Accumulator, a mutable ordered sequence of
// string fragments used to build a log line piece by piece.
//
// Values of any type are turned into fragments with Stringify, which is
// the one place where coercion to text happens. Insert, Delete and
// Reverse operate on fragments, not characters: indices count fragments
// and Reverse keeps every fragment intact while flipping their order.
// Index errors wrap ErrIndexOutOfBounds and leave the Accumulator
// unchanged.
//
// The final string is produced by String, which may be called any number
// of times without side effects.
package accumulator
