package logger

import (
	"bytes"

	"github.com/treelog/treelog/core"
	"github.com/treelog/treelog/drain"
)

// Logger is an immutable, cheaply shareable handle: an ordered list of
// inherited key-value fields plus a reference to the hierarchy's
// shared drain cell.
type Logger struct {
	values []core.Field
	cell   *drain.Cell
}

// NewRoot builds a root logger with the given initial fields. The new
// hierarchy starts with the Discard drain; install a real one with
// SetDrain.
func NewRoot(values ...core.Field) *Logger {
	return &Logger{
		values: core.CopyFields(values),
		cell:   drain.NewCell(nil),
	}
}

// New builds a child logger. The child copies all of this logger's
// fields, appends the given ones (duplicate keys are kept, later
// entries shadow earlier ones by convention), and shares this
// logger's drain cell, so the whole hierarchy keeps observing a single
// drain.
func (l *Logger) New(values ...core.Field) *Logger {
	merged := make([]core.Field, len(l.values)+len(values))
	copy(merged, l.values)
	copy(merged[len(l.values):], values)
	return &Logger{
		values: merged,
		cell:   l.cell,
	}
}

// Values returns the logger's inherited fields. The returned slice is
// a copy; mutating it does not affect the logger.
func (l *Logger) Values() []core.Field {
	return core.CopyFields(l.values)
}

// SetDrain installs d as the hierarchy's drain, discarding the
// previous one. Effective immediately for every logger in the
// hierarchy, including those derived before the call.
func (l *Logger) SetDrain(d drain.Drain) {
	l.cell.Set(d)
}

// SwapDrain installs d and returns the previously active drain, so a
// caller can restore it later, chain it, or inspect it in tests.
func (l *Logger) SwapDrain(d drain.Drain) drain.Drain {
	return l.cell.Swap(d)
}

// Log dispatches one record to the hierarchy's current drain. The
// drain is invoked exactly once per call with the scratch buffer, the
// record, this logger's inherited fields, and the call-site fields.
// Any error the drain returns is swallowed: logging must never
// propagate failures into application control flow.
func (l *Logger) Log(level core.Level, msg string, fields ...core.Field) {
	rec := core.GetRecord(level, msg)
	d := l.cell.Get()
	withBuffer(func(buf *bytes.Buffer) {
		_ = d.Log(buf, rec, l.values, fields)
	})
	core.PutRecord(rec)
}

// Critical logs a critical level record
func (l *Logger) Critical(msg string, fields ...core.Field) {
	l.Log(core.CriticalLevel, msg, fields...)
}

// Error logs an error level record
func (l *Logger) Error(msg string, fields ...core.Field) {
	l.Log(core.ErrorLevel, msg, fields...)
}

// Warning logs a warning level record
func (l *Logger) Warning(msg string, fields ...core.Field) {
	l.Log(core.WarningLevel, msg, fields...)
}

// Info logs an info level record
func (l *Logger) Info(msg string, fields ...core.Field) {
	l.Log(core.InfoLevel, msg, fields...)
}

// Debug logs a debug level record
func (l *Logger) Debug(msg string, fields ...core.Field) {
	l.Log(core.DebugLevel, msg, fields...)
}

// Trace logs a trace level record
func (l *Logger) Trace(msg string, fields ...core.Field) {
	l.Log(core.TraceLevel, msg, fields...)
}
