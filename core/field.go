package core

import (
	"fmt"
	"strconv"
	"time"
)

// Kind represents the type of a field value
type Kind uint8

const (
	StringKind Kind = iota
	IntKind
	Int64Kind
	Float64Kind
	BoolKind
	TimeKind
	DurationKind
	ErrorKind
	AnyKind
)

// Field represents a key-value pair for structured logging.
//
// Fields bound into a Logger at construction time are owned by the
// logger for its lifetime; fields supplied at a log call site are only
// valid for the duration of that call, and drains that hold on to them
// past the call (for example to queue them) must copy the slice.
type Field struct {
	Key   string
	Kind  Kind
	Num   int64
	Float float64
	Str   string
	Any   interface{}
}

// String returns the string representation of the field's value
func (f Field) String() string {
	switch f.Kind {
	case StringKind:
		return f.Str
	case IntKind, Int64Kind:
		return strconv.FormatInt(f.Num, 10)
	case Float64Kind:
		return strconv.FormatFloat(f.Float, 'f', -1, 64)
	case BoolKind:
		return strconv.FormatBool(f.Num == 1)
	case TimeKind:
		return time.Unix(0, f.Num).Format(time.RFC3339)
	case DurationKind:
		return time.Duration(f.Num).String()
	case ErrorKind:
		return f.Str
	case AnyKind:
		return fmt.Sprintf("%v", f.Any)
	default:
		return ""
	}
}

// CopyFields returns a copy of src, or nil when src is empty. Used by
// drains that retain call-site fields past the log call.
func CopyFields(src []Field) []Field {
	if len(src) == 0 {
		return nil
	}
	dst := make([]Field, len(src))
	copy(dst, src)
	return dst
}
