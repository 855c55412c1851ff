package logger

import (
	"time"

	"github.com/treelog/treelog/core"
)

// Field helper functions for convenience

// String creates a string field
func String(key, val string) core.Field {
	return core.Field{Key: key, Kind: core.StringKind, Str: val}
}

// Int creates an int field
func Int(key string, val int) core.Field {
	return core.Field{Key: key, Kind: core.IntKind, Num: int64(val)}
}

// Int64 creates an int64 field
func Int64(key string, val int64) core.Field {
	return core.Field{Key: key, Kind: core.Int64Kind, Num: val}
}

// Float64 creates a float64 field
func Float64(key string, val float64) core.Field {
	return core.Field{Key: key, Kind: core.Float64Kind, Float: val}
}

// Bool creates a bool field
func Bool(key string, val bool) core.Field {
	num := int64(0)
	if val {
		num = 1
	}
	return core.Field{Key: key, Kind: core.BoolKind, Num: num}
}

// Time creates a time field
func Time(key string, val time.Time) core.Field {
	return core.Field{Key: key, Kind: core.TimeKind, Num: val.UnixNano()}
}

// Duration creates a duration field
func Duration(key string, val time.Duration) core.Field {
	return core.Field{Key: key, Kind: core.DurationKind, Num: int64(val)}
}

// Err creates an error field
func Err(err error) core.Field {
	if err == nil {
		return core.Field{Key: "error", Kind: core.ErrorKind, Str: ""}
	}
	return core.Field{Key: "error", Kind: core.ErrorKind, Str: err.Error()}
}

// Any creates a field with any value
func Any(key string, val interface{}) core.Field {
	return core.Field{Key: key, Kind: core.AnyKind, Any: val}
}
