package drain

import (
	"bytes"

	"go.uber.org/multierr"

	"github.com/treelog/treelog/core"
)

// MultiDrain fans every record out to several drains. All drains are
// invoked even when an earlier one fails; their errors are combined.
type MultiDrain struct {
	drains []Drain
}

// NewMultiDrain creates a fan-out over the given drains
func NewMultiDrain(drains ...Drain) *MultiDrain {
	return &MultiDrain{drains: drains}
}

// Log sends the record to every drain. The scratch buffer is reset
// between children so each one formats into a clean buffer; the record
// is shared, so all children observe the identical memoized timestamp.
func (d *MultiDrain) Log(buf *bytes.Buffer, rec *core.Record, logger, call []core.Field) error {
	var err error
	for _, child := range d.drains {
		buf.Reset()
		err = multierr.Append(err, child.Log(buf, rec, logger, call))
	}
	return err
}

// Close closes all drains
func (d *MultiDrain) Close() error {
	var err error
	for _, child := range d.drains {
		err = multierr.Append(err, child.Close())
	}
	return err
}
