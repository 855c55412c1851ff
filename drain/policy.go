package drain

import (
	"sync/atomic"

	"github.com/treelog/treelog/core"
)

// OverflowPolicy defines how AsyncDrain handles a full queue
type OverflowPolicy int

const (
	// DropNewest drops the incoming record when the queue is full
	DropNewest OverflowPolicy = iota
	// DropOldest drops the oldest queued record when the queue is full
	DropOldest
	// Block waits for space (with timeout, then falls back to a
	// synchronous write)
	Block
)

// String returns the string representation of the policy
func (p OverflowPolicy) String() string {
	switch p {
	case DropNewest:
		return "DropNewest"
	case DropOldest:
		return "DropOldest"
	case Block:
		return "Block"
	default:
		return "Unknown"
	}
}

// DefaultLevelPolicy returns the default per-level overflow policies:
// errors and worse never get dropped silently, everything else does.
func DefaultLevelPolicy() map[core.Level]OverflowPolicy {
	return map[core.Level]OverflowPolicy{
		core.CriticalLevel: Block,
		core.ErrorLevel:    Block,
		core.WarningLevel:  DropNewest,
		core.InfoLevel:     DropNewest,
		core.DebugLevel:    DropNewest,
		core.TraceLevel:    DropNewest,
	}
}

// numLevels covers Critical through Trace
const numLevels = int(core.TraceLevel) + 1

// Stats tracks AsyncDrain counters
type Stats struct {
	dropped   [numLevels]atomic.Uint64
	blocked   atomic.Uint64
	processed atomic.Uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementDropped atomically increments the dropped counter for a level
func (s *Stats) IncrementDropped(level core.Level) {
	if level >= 0 && int(level) < numLevels {
		s.dropped[level].Add(1)
	}
}

// IncrementBlocked atomically increments the blocked counter
func (s *Stats) IncrementBlocked() {
	s.blocked.Add(1)
}

// IncrementProcessed atomically increments the processed counter
func (s *Stats) IncrementProcessed() {
	s.processed.Add(1)
}

// Dropped returns the dropped count for a level
func (s *Stats) Dropped(level core.Level) uint64 {
	if level < 0 || int(level) >= numLevels {
		return 0
	}
	return s.dropped[level].Load()
}

// TotalDropped returns the dropped count across all levels
func (s *Stats) TotalDropped() uint64 {
	var total uint64
	for i := range s.dropped {
		total += s.dropped[i].Load()
	}
	return total
}

// Snapshot is a point-in-time copy of the counters
type Snapshot struct {
	Dropped   map[core.Level]uint64
	Blocked   uint64
	Processed uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	snap := Snapshot{
		Dropped: make(map[core.Level]uint64, numLevels),
	}
	for i := range s.dropped {
		snap.Dropped[core.Level(i)] = s.dropped[i].Load()
	}
	snap.Blocked = s.blocked.Load()
	snap.Processed = s.processed.Load()
	return snap
}
