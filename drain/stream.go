package drain

import (
	"bytes"
	"io"
	"os"
	"sync"

	"github.com/treelog/treelog/core"
	"github.com/treelog/treelog/format"
)

// StreamDrain writes formatted records synchronously to an io.Writer.
// Writes are serialized by a mutex; formatting happens outside the
// lock, in the caller's scratch buffer, so the lock is held only for
// the actual I/O.
type StreamDrain struct {
	mu sync.Mutex
	w  io.Writer
	f  format.Formatter
}

// NewStreamDrain creates a drain writing to w (default: os.Stdout).
// When f is nil a TextFormatter is used, with ANSI coloring enabled if
// w is a terminal.
func NewStreamDrain(w io.Writer, f format.Formatter) *StreamDrain {
	if w == nil {
		w = os.Stdout
	}
	if f == nil {
		tf := format.NewTextFormatter(format.Config{})
		tf.Color = isTerminal(w)
		f = tf
	}
	return &StreamDrain{w: w, f: f}
}

// Log formats the record into buf and writes it
func (d *StreamDrain) Log(buf *bytes.Buffer, rec *core.Record, logger, call []core.Field) error {
	if err := d.f.Format(buf, rec, logger, call); err != nil {
		return err
	}
	d.mu.Lock()
	_, err := d.w.Write(buf.Bytes())
	d.mu.Unlock()
	return err
}

// Close is a no-op; the drain does not own the writer.
func (d *StreamDrain) Close() error {
	return nil
}
