package handler

import (
	"sync/atomic"

	"github.com/philipp01105/bootlog/core"
)

// unknownSlot collects counts for levels outside the closed set.
const unknownSlot = len(core.Levels)

// Stats tracks handler statistics
type Stats struct {
	// Separate atomic counters per level, plus one slot for unknown levels
	processed  [unknownSlot + 1]atomic.Uint64
	suppressed [unknownSlot + 1]atomic.Uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

func slot(level core.Level) int {
	if !level.Valid() {
		return unknownSlot
	}
	return int(level)
}

// IncrementProcessed atomically increments the written counter for a level
func (s *Stats) IncrementProcessed(level core.Level) {
	s.processed[slot(level)].Add(1)
}

// IncrementSuppressed atomically increments the suppressed counter for a level
func (s *Stats) IncrementSuppressed(level core.Level) {
	s.suppressed[slot(level)].Add(1)
}

// GetProcessed returns the written count for a level
func (s *Stats) GetProcessed(level core.Level) uint64 {
	return s.processed[slot(level)].Load()
}

// GetSuppressed returns the suppressed count for a level
func (s *Stats) GetSuppressed(level core.Level) uint64 {
	return s.suppressed[slot(level)].Load()
}

// GetTotalProcessed returns the written count across all levels
func (s *Stats) GetTotalProcessed() uint64 {
	var n uint64
	for i := range s.processed {
		n += s.processed[i].Load()
	}
	return n
}

// GetTotalSuppressed returns the suppressed count across all levels
func (s *Stats) GetTotalSuppressed() uint64 {
	var n uint64
	for i := range s.suppressed {
		n += s.suppressed[i].Load()
	}
	return n
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	for i := range s.processed {
		s.processed[i].Store(0)
		s.suppressed[i].Store(0)
	}
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	Processed       map[core.Level]uint64
	Suppressed      map[core.Level]uint64
	ProcessedTotal  uint64
	SuppressedTotal uint64
}

// GetSnapshot returns a snapshot of current statistics. Per-level maps
// only hold the known levels; the totals include unknown ones.
func (s *Stats) GetSnapshot() Snapshot {
	snap := Snapshot{
		Processed:  make(map[core.Level]uint64, len(core.Levels)),
		Suppressed: make(map[core.Level]uint64, len(core.Levels)),
	}
	for _, l := range core.Levels {
		snap.Processed[l] = s.GetProcessed(l)
		snap.Suppressed[l] = s.GetSuppressed(l)
	}
	snap.ProcessedTotal = s.GetTotalProcessed()
	snap.SuppressedTotal = s.GetTotalSuppressed()
	return snap
}
