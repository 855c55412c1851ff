package drain

import (
	"bytes"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/treelog/treelog/core"
)

// ZapDrain forwards records to a zapcore.Core, so an existing zap
// setup (encoders, sinks, samplers) can serve as the delivery backend
// of a treelog hierarchy.
type ZapDrain struct {
	core zapcore.Core
}

// NewZapDrain creates a drain backed by zc
func NewZapDrain(zc zapcore.Core) *ZapDrain {
	return &ZapDrain{core: zc}
}

// Log converts the record and fields and writes them through the core
func (d *ZapDrain) Log(_ *bytes.Buffer, rec *core.Record, logger, call []core.Field) error {
	ent := zapcore.Entry{
		Time:    rec.Time(),
		Level:   zapLevel(rec.Level()),
		Message: rec.Message(),
	}
	ce := d.core.Check(ent, nil)
	if ce == nil {
		return nil
	}
	fields := make([]zapcore.Field, 0, len(logger)+len(call))
	for _, f := range logger {
		fields = append(fields, zapField(f))
	}
	for _, f := range call {
		fields = append(fields, zapField(f))
	}
	ce.Write(fields...)
	return nil
}

// Close flushes the core
func (d *ZapDrain) Close() error {
	return d.core.Sync()
}

// zapLevel maps treelog levels onto zap's scale. zap has no trace
// level; Trace maps to Debug.
func zapLevel(l core.Level) zapcore.Level {
	switch l {
	case core.CriticalLevel:
		return zapcore.DPanicLevel
	case core.ErrorLevel:
		return zapcore.ErrorLevel
	case core.WarningLevel:
		return zapcore.WarnLevel
	case core.InfoLevel:
		return zapcore.InfoLevel
	case core.DebugLevel, core.TraceLevel:
		return zapcore.DebugLevel
	default:
		return zapcore.InfoLevel
	}
}

func zapField(f core.Field) zapcore.Field {
	switch f.Kind {
	case core.StringKind:
		return zap.String(f.Key, f.Str)
	case core.IntKind, core.Int64Kind:
		return zap.Int64(f.Key, f.Num)
	case core.Float64Kind:
		return zap.Float64(f.Key, f.Float)
	case core.BoolKind:
		return zap.Bool(f.Key, f.Num == 1)
	case core.TimeKind:
		return zap.Time(f.Key, time.Unix(0, f.Num))
	case core.DurationKind:
		return zap.Duration(f.Key, time.Duration(f.Num))
	case core.ErrorKind:
		return zap.String(f.Key, f.Str)
	default:
		return zap.Any(f.Key, f.Any)
	}
}
