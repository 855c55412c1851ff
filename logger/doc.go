// Package logger provides the hierarchical logging handles.
//
// A root Logger is created with NewRoot and starts with the Discard
// drain. Child loggers are derived with New; a child copies the
// parent's key-value fields, appends its own, and shares the parent's
// drain cell. Because every logger in a hierarchy points at the same
// cell, installing a drain through any of them takes effect for all
// of them, including loggers created before the swap.
//
// Loggers are immutable and freely shareable across goroutines. A log
// call invokes the hierarchy's current drain exactly once, passing it
// a per-call scratch buffer that is reset (length zero, capacity kept)
// after every call. Drain errors are swallowed: a failing drain
// silently drops the line rather than disturbing the calling
// application. Resetting the buffer does not
// zero its memory; treat previous contents as still reachable until
// overwritten.
//
// Drains must not log through the same hierarchy from within their Log
// method on the calling goroutine; the scratch buffer is not
// re-entrant.
package logger
