package format

import (
	"bytes"

	"github.com/treelog/treelog/core"
)

// Formatter renders one log record into the given buffer. The logger
// fields precede the call fields; both may contain duplicate keys, in
// which case later entries shadow earlier ones by convention and are
// all emitted.
type Formatter interface {
	Format(buf *bytes.Buffer, rec *core.Record, logger, call []core.Field) error
}

// Config holds common formatter configuration
type Config struct {
	// TimestampLayout overrides the formatter's default time layout
	// (RFC3339Nano for JSON, RFC3339 for text)
	TimestampLayout string
}
