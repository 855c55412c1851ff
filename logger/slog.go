package logger

import (
	"bytes"
	"context"
	"log/slog"

	"github.com/treelog/treelog/core"
)

// SlogHandler adapts a Logger to the log/slog.Handler interface, so
// code written against the standard library logs through a treelog
// hierarchy (and follows its drain swaps).
type SlogHandler struct {
	logger *Logger
	min    core.Level
	group  string
}

// NewSlogHandler creates a slog.Handler forwarding to l. Records less
// severe than min are reported as disabled.
func NewSlogHandler(l *Logger, min core.Level) *SlogHandler {
	return &SlogHandler{logger: l, min: min}
}

// Enabled reports whether the handler handles records at the given level.
func (h *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return slogLevelToCore(level).AtLeast(h.min)
}

// Handle forwards a slog.Record into the hierarchy's current drain,
// preserving the record's timestamp.
func (h *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	fields := make([]core.Field, 0, record.NumAttrs())
	record.Attrs(func(a slog.Attr) bool {
		fields = append(fields, slogAttrToField(h.group, a))
		return true
	})

	rec := core.GetRecord(slogLevelToCore(record.Level), record.Message)
	if !record.Time.IsZero() {
		rec.SetTime(record.Time)
	}
	d := h.logger.cell.Get()
	withBuffer(func(buf *bytes.Buffer) {
		_ = d.Log(buf, rec, h.logger.values, fields)
	})
	core.PutRecord(rec)
	return nil
}

// WithAttrs returns a new SlogHandler whose logger is a child carrying
// the additional attributes.
func (h *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	fields := make([]core.Field, 0, len(attrs))
	for _, a := range attrs {
		fields = append(fields, slogAttrToField(h.group, a))
	}
	return &SlogHandler{
		logger: h.logger.New(fields...),
		min:    h.min,
		group:  h.group,
	}
}

// WithGroup returns a new SlogHandler with the given group name; group
// names become dotted key prefixes.
func (h *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	group := name
	if h.group != "" {
		group = h.group + "." + name
	}
	return &SlogHandler{
		logger: h.logger,
		min:    h.min,
		group:  group,
	}
}

// slogLevelToCore converts a slog.Level to a core.Level.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarningLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}

// slogAttrToField converts a slog.Attr to a core.Field, prepending the
// group prefix if present.
func slogAttrToField(group string, a slog.Attr) core.Field {
	key := a.Key
	if group != "" {
		key = group + "." + a.Key
	}

	a.Value = a.Value.Resolve()

	switch a.Value.Kind() {
	case slog.KindString:
		return core.Field{Key: key, Kind: core.StringKind, Str: a.Value.String()}
	case slog.KindInt64:
		return core.Field{Key: key, Kind: core.Int64Kind, Num: a.Value.Int64()}
	case slog.KindFloat64:
		return core.Field{Key: key, Kind: core.Float64Kind, Float: a.Value.Float64()}
	case slog.KindBool:
		num := int64(0)
		if a.Value.Bool() {
			num = 1
		}
		return core.Field{Key: key, Kind: core.BoolKind, Num: num}
	case slog.KindTime:
		return core.Field{Key: key, Kind: core.TimeKind, Num: a.Value.Time().UnixNano()}
	case slog.KindDuration:
		return core.Field{Key: key, Kind: core.DurationKind, Num: int64(a.Value.Duration())}
	default:
		return core.Field{Key: key, Kind: core.AnyKind, Any: a.Value.Any()}
	}
}
