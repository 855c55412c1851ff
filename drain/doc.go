// Package drain defines where log records go.
//
// A Drain consumes one record per logger call, together with the
// logger's inherited fields and the call-site fields, and a scratch
// buffer it may format into. The logger swallows any error a drain
// returns: logging is a side channel and a failing drain silently
// drops the line. Drains that need failure visibility must implement
// their own fallback internally.
//
// Cell is the concurrently swappable holder of "the current drain for
// a logger hierarchy". Every logger derived from the same root shares
// one Cell, which is what makes SetDrain take effect hierarchy-wide.
//
// Concrete drains: Discard (no-op), StreamDrain (io.Writer),
// FileDrain (rotating file via lumberjack), MultiDrain (fan-out),
// FilterDrain (level gate), AsyncDrain (bounded-queue decorator), and
// ZapDrain (bridge to a zapcore.Core).
package drain
