package drain

import "sync/atomic"

// Cell holds the current drain of a logger hierarchy. All loggers in
// one hierarchy share a single Cell, so replacing the drain through
// any of them is observed by all of them.
//
// Get and Swap are lock-free atomic pointer operations: a reader
// always sees some drain that was fully installed by a completed
// Set/Swap (or the initial drain), never a partial value, and a swap
// never blocks concurrent logging.
type Cell struct {
	d atomic.Pointer[Drain]
}

// NewCell creates a cell holding d. A nil d seeds the cell with the
// Discard drain.
func NewCell(d Drain) *Cell {
	if d == nil {
		d = Discard()
	}
	c := &Cell{}
	c.d.Store(&d)
	return c
}

// Get returns the currently installed drain
func (c *Cell) Get() Drain {
	return *c.d.Load()
}

// Set installs d, discarding the previous drain. A nil d installs the
// Discard drain.
func (c *Cell) Set(d Drain) {
	if d == nil {
		d = Discard()
	}
	c.d.Store(&d)
}

// Swap installs d and returns the previously installed drain
func (c *Cell) Swap(d Drain) Drain {
	if d == nil {
		d = Discard()
	}
	return *c.d.Swap(&d)
}
