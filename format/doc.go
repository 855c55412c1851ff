// Package format renders log records into bytes.
//
// Formatters write into a caller-provided buffer rather than allocating
// their own: the logger hands every drain its per-call scratch buffer,
// and drains pass that buffer through to the formatter. This keeps the
// hot path free of per-call allocations.
//
// Two formatters are provided: JSONFormatter emits one JSON object per
// record, TextFormatter emits a human-readable line with optional ANSI
// level coloring. Both encode field values manually instead of going
// through encoding/json or fmt.
package format
