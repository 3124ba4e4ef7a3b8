package core

import (
	"fmt"
	"sync"
	"time"
)

// Entry is a single log event: a level, a printf-style message template
// and the arguments substituted into it.
type Entry struct {
	Time    time.Time
	Level   Level
	Message string
	Args    []any
}

// entryPool is a pool of Entry objects to reduce allocations
var entryPool = sync.Pool{
	New: func() interface{} {
		return &Entry{
			Args: make([]any, 0, 4),
		}
	},
}

// GetEntry retrieves an Entry from the pool
func GetEntry() *Entry {
	e := entryPool.Get().(*Entry)
	e.Time = time.Now()
	e.Args = e.Args[:0]
	return e
}

// PutEntry returns an Entry to the pool
func PutEntry(e *Entry) {
	if e == nil {
		return
	}
	// Drop argument references so pooled entries don't pin caller values
	clear(e.Args)
	e.Args = e.Args[:0]
	e.Message = ""
	e.Level = 0
	entryPool.Put(e)
}

// Text returns the message with its arguments substituted. A message
// without arguments is returned as is, so literal percent signs survive.
func (e *Entry) Text() string {
	if len(e.Args) == 0 {
		return e.Message
	}
	return fmt.Sprintf(e.Message, e.Args...)
}
