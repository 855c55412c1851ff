package drain

import (
	"bytes"

	"github.com/treelog/treelog/core"
)

// Drain consumes log records. Implementations must be safe to call
// concurrently from multiple goroutines; the logger provides no
// serialization around drain invocation.
type Drain interface {
	// Log processes one record. buf is per-call scratch space the
	// drain may format into; it arrives empty and is reset by the
	// logger after Log returns, so the drain must not retain it.
	// logger holds the inherited fields, call the call-site fields;
	// neither may be retained past the call without copying.
	Log(buf *bytes.Buffer, rec *core.Record, logger, call []core.Field) error

	// Close releases the drain's resources
	Close() error
}

type discard struct{}

func (discard) Log(*bytes.Buffer, *core.Record, []core.Field, []core.Field) error {
	return nil
}

func (discard) Close() error { return nil }

var discardDrain Drain = discard{}

// Discard returns the no-op drain. Every new hierarchy starts with it
// until a real drain is installed.
func Discard() Drain {
	return discardDrain
}
