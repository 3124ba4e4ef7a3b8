package core

import (
	"sync"
	"sync/atomic"
	"time"
)

// CoarseClockInterval is how often the coarse clock refreshes its cached time.
const CoarseClockInterval = 500 * time.Millisecond

var (
	coarseClockOnce sync.Once
	coarseNow       atomic.Pointer[time.Time]
)

// StartCoarseClock starts the background goroutine that caches time.Now()
// every CoarseClockInterval. Log timestamps only carry minutes, so the
// cached value is always precise enough. Safe to call multiple times; the
// goroutine is started once and lives as long as the process.
func StartCoarseClock() {
	coarseClockOnce.Do(func() {
		t := time.Now()
		coarseNow.Store(&t)
		go func() {
			ticker := time.NewTicker(CoarseClockInterval)
			for range ticker.C {
				t := time.Now()
				coarseNow.Store(&t)
			}
		}()
	})
}

// CoarseNow returns the most recently cached time. It falls back to
// time.Now when StartCoarseClock has not been called.
func CoarseNow() time.Time {
	if t := coarseNow.Load(); t != nil {
		return *t
	}
	return time.Now()
}
