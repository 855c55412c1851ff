package core

import (
	"sync"
	"sync/atomic"
	"time"
	"unsafe"
)

var (
	coarseClockOnce    sync.Once
	coarseClockEnabled atomic.Bool
	coarseNow          unsafe.Pointer // *time.Time
)

// now is the time source for Record timestamps.
func now() time.Time {
	if coarseClockEnabled.Load() {
		return *(*time.Time)(atomic.LoadPointer(&coarseNow))
	}
	return time.Now()
}

// UseCoarseClock switches Record timestamps to a cached time value
// refreshed every 500µs by a background goroutine. This trades
// timestamp precision for removing the time.Now call from the hot
// path; under a high log rate many records share one cached instant.
//
// It is safe to call multiple times; the goroutine is started exactly
// once and runs for the lifetime of the process, which is intentional
// because logging typically spans the entire application lifecycle.
func UseCoarseClock() {
	coarseClockOnce.Do(func() {
		t := time.Now()
		atomic.StorePointer(&coarseNow, unsafe.Pointer(&t))
		go func() {
			ticker := time.NewTicker(500 * time.Microsecond)
			for range ticker.C {
				t := time.Now()
				atomic.StorePointer(&coarseNow, unsafe.Pointer(&t))
			}
		}()
		coarseClockEnabled.Store(true)
	})
}
