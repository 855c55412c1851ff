package format

import (
	"bytes"
	"strconv"
	"time"

	"github.com/treelog/treelog/core"
)

// JSONFormatter formats log records as JSON, one object per line
type JSONFormatter struct {
	Config
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(cfg Config) *JSONFormatter {
	if cfg.TimestampLayout == "" {
		cfg.TimestampLayout = time.RFC3339Nano
	}
	return &JSONFormatter{Config: cfg}
}

// Format renders the record as JSON into buf
func (f *JSONFormatter) Format(buf *bytes.Buffer, rec *core.Record, logger, call []core.Field) error {
	buf.WriteByte('{')

	buf.WriteString(`"ts":"`)
	buf.Write(rec.Time().AppendFormat(buf.AvailableBuffer(), f.TimestampLayout))
	buf.WriteByte('"')

	buf.WriteString(`,"level":"`)
	buf.WriteString(rec.Level().String())
	buf.WriteByte('"')

	buf.WriteString(`,"msg":"`)
	appendJSONString(buf, rec.Message())
	buf.WriteByte('"')

	for _, field := range logger {
		appendJSONField(buf, field)
	}
	for _, field := range call {
		appendJSONField(buf, field)
	}

	buf.WriteString("}\n")
	return nil
}

func appendJSONField(buf *bytes.Buffer, field core.Field) {
	buf.WriteString(`,"`)
	appendJSONString(buf, field.Key)
	buf.WriteString(`":`)
	appendJSONValue(buf, field)
}

// appendJSONString writes a JSON-escaped string (without surrounding quotes) to the buffer
func appendJSONString(buf *bytes.Buffer, s string) {
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x20 && c != '"' && c != '\\' {
			continue
		}
		// Flush unescaped prefix
		if start < i {
			buf.WriteString(s[start:i])
		}
		switch c {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			buf.WriteString(`\u00`)
			buf.WriteByte(hexChars[c>>4])
			buf.WriteByte(hexChars[c&0x0f])
		}
		start = i + 1
	}
	// Flush remaining
	if start < len(s) {
		buf.WriteString(s[start:])
	}
}

var hexChars = [16]byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'a', 'b', 'c', 'd', 'e', 'f'}

// appendJSONValue writes a JSON-encoded field value to the buffer
func appendJSONValue(buf *bytes.Buffer, field core.Field) {
	switch field.Kind {
	case core.StringKind:
		buf.WriteByte('"')
		appendJSONString(buf, field.Str)
		buf.WriteByte('"')
	case core.IntKind, core.Int64Kind:
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), field.Num, 10))
	case core.Float64Kind:
		buf.Write(strconv.AppendFloat(buf.AvailableBuffer(), field.Float, 'f', -1, 64))
	case core.BoolKind:
		buf.Write(strconv.AppendBool(buf.AvailableBuffer(), field.Num == 1))
	case core.TimeKind:
		buf.WriteByte('"')
		buf.Write(time.Unix(0, field.Num).AppendFormat(buf.AvailableBuffer(), time.RFC3339Nano))
		buf.WriteByte('"')
	case core.DurationKind:
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), field.Num, 10))
	case core.ErrorKind:
		buf.WriteByte('"')
		appendJSONString(buf, field.Str)
		buf.WriteByte('"')
	default:
		buf.WriteByte('"')
		appendJSONString(buf, field.String())
		buf.WriteByte('"')
	}
}
