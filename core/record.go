package core

import (
	"sync"
	"time"
)

// Record carries the metadata of a single log call: level, message,
// and a lazily computed timestamp.
//
// A Record is built immediately before the drain invocation, consumed
// only during that invocation, and is never shared across goroutines,
// so the timestamp slot needs no synchronization.
type Record struct {
	level Level
	msg   string
	ts    time.Time
}

// recordPool is a pool of Record objects to reduce allocations
var recordPool = sync.Pool{
	New: func() interface{} {
		return new(Record)
	},
}

// GetRecord retrieves a Record from the pool, initialized with the
// given level and message and an unset timestamp.
func GetRecord(level Level, msg string) *Record {
	r := recordPool.Get().(*Record)
	r.level = level
	r.msg = msg
	r.ts = time.Time{}
	return r
}

// PutRecord returns a Record to the pool.
func PutRecord(r *Record) {
	if r == nil {
		return
	}
	r.msg = ""
	r.ts = time.Time{}
	recordPool.Put(r)
}

// Level returns the record's severity level
func (r *Record) Level() Level {
	return r.level
}

// Message returns the record's message
func (r *Record) Message() string {
	return r.msg
}

// Time returns the record's timestamp, computing and memoizing "now"
// on first call. Every subsequent call within the same log invocation
// returns the identical instant, so multiple drain stages observe the
// same time even though the wall clock advances while formatting.
func (r *Record) Time() time.Time {
	if r.ts.IsZero() {
		r.ts = now()
	}
	return r.ts
}

// SetTime overrides the memoized timestamp. Used by drains that queue
// records for later delivery, and by tests that need a deterministic
// instant.
func (r *Record) SetTime(ts time.Time) {
	r.ts = ts
}
