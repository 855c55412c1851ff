package format

import (
	"bytes"
	"time"

	"github.com/treelog/treelog/core"
)

// TextFormatter formats log records as human-readable text
type TextFormatter struct {
	Config
	// Color enables ANSI coloring of the level token
	Color bool
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampLayout == "" {
		cfg.TimestampLayout = time.RFC3339
	}
	return &TextFormatter{Config: cfg}
}

// pre-formatted level strings to avoid multiple WriteString calls
var levelBrackets = [...]string{
	core.CriticalLevel: " [CRITICAL] ",
	core.ErrorLevel:    " [ERROR] ",
	core.WarningLevel:  " [WARNING] ",
	core.InfoLevel:     " [INFO] ",
	core.DebugLevel:    " [DEBUG] ",
	core.TraceLevel:    " [TRACE] ",
}

// pre-colored variants, SGR code chosen per severity
var coloredLevelBrackets = [...]string{
	core.CriticalLevel: " \x1b[35m[CRITICAL]\x1b[0m ",
	core.ErrorLevel:    " \x1b[31m[ERROR]\x1b[0m ",
	core.WarningLevel:  " \x1b[33m[WARNING]\x1b[0m ",
	core.InfoLevel:     " \x1b[32m[INFO]\x1b[0m ",
	core.DebugLevel:    " \x1b[36m[DEBUG]\x1b[0m ",
	core.TraceLevel:    " \x1b[90m[TRACE]\x1b[0m ",
}

// Format renders the record as a text line into buf
func (f *TextFormatter) Format(buf *bytes.Buffer, rec *core.Record, logger, call []core.Field) error {
	// Timestamp - use AppendFormat to avoid string allocation
	buf.Write(rec.Time().AppendFormat(buf.AvailableBuffer(), f.TimestampLayout))

	// Level - use pre-formatted string
	level := rec.Level()
	if level >= 0 && int(level) < len(levelBrackets) {
		if f.Color {
			buf.WriteString(coloredLevelBrackets[level])
		} else {
			buf.WriteString(levelBrackets[level])
		}
	} else {
		buf.WriteString(" [UNKNOWN] ")
	}

	buf.WriteString(rec.Message())

	for _, field := range logger {
		appendTextField(buf, field)
	}
	for _, field := range call {
		appendTextField(buf, field)
	}

	buf.WriteByte('\n')
	return nil
}

func appendTextField(buf *bytes.Buffer, field core.Field) {
	buf.WriteByte(' ')
	buf.WriteString(field.Key)
	buf.WriteByte('=')
	buf.WriteString(field.String())
}
