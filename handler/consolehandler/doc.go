// Package consolehandler provides the console sink: a synchronous
// handler that writes one formatted line per entry to any io.Writer
// (default: stdout, wrapped by go-colorable).
//
// Each line is written with a single Write call under a mutex, so lines
// from concurrent goroutines never interleave and lines from one
// goroutine appear in call order. There is no queue; when Handle
// returns, the line has reached the writer.
//
// Entries dropped by the formatter's suppression stage are counted in
// Stats but never reach the writer.
package consolehandler
