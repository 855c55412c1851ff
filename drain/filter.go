package drain

import (
	"bytes"

	"github.com/treelog/treelog/core"
)

// FilterDrain passes records at least as severe as a minimum level to
// another drain and silently drops the rest.
type FilterDrain struct {
	min  core.Level
	next Drain
}

// NewFilterDrain creates a level gate in front of next
func NewFilterDrain(min core.Level, next Drain) *FilterDrain {
	if next == nil {
		next = Discard()
	}
	return &FilterDrain{min: min, next: next}
}

// Log forwards the record when its level passes the gate
func (d *FilterDrain) Log(buf *bytes.Buffer, rec *core.Record, logger, call []core.Field) error {
	if !rec.Level().AtLeast(d.min) {
		return nil
	}
	return d.next.Log(buf, rec, logger, call)
}

// Close closes the wrapped drain
func (d *FilterDrain) Close() error {
	return d.next.Close()
}
