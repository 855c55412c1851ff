// Package core defines the shared types used across the treelog façade.
//
// It provides the Level type for severity ordering, the Record type that
// carries the per-call metadata (level, message, lazily computed
// timestamp), and the Field type for zero-allocation structured
// key-value pairs.
//
// Record objects are pooled via sync.Pool to keep the hot path
// allocation-free. Callers get a Record with GetRecord and must return
// it with PutRecord once the drain has consumed it; drains must not
// retain a Record past the Log call that delivered it.
//
// Field encodes values into fixed-size numeric slots (Num, Float)
// wherever possible so that common types like int, bool, and time.Time
// never escape to the heap. The Any slot exists as a fallback for
// arbitrary types but will cause an allocation.
package core
