package drain

import (
	"bytes"
	"fmt"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/treelog/treelog/core"
	"github.com/treelog/treelog/format"
)

// FileConfig holds configuration for FileDrain
type FileConfig struct {
	// Path is the log file path (required)
	Path string
	// Formatter to use (default: TextFormatter without color)
	Formatter format.Formatter
	// MaxSizeMB is the maximum file size in megabytes before rotation (default: 100)
	MaxSizeMB int
	// MaxBackups is the maximum number of rotated files to retain (0 = keep all)
	MaxBackups int
	// MaxAgeDays is the maximum age in days of rotated files (0 = no age limit)
	MaxAgeDays int
	// Compress enables gzip compression of rotated files
	Compress bool
	// LocalTime uses local time in rotated file names (default: UTC)
	LocalTime bool
}

// FileDrain writes formatted records to a size-rotated log file.
// Rotation, backup retention, and compression are delegated to
// lumberjack.
type FileDrain struct {
	mu sync.Mutex
	lj *lumberjack.Logger
	f  format.Formatter
}

// NewFileDrain creates a rotating file drain
func NewFileDrain(cfg FileConfig) (*FileDrain, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("file drain: path is required")
	}
	if cfg.Formatter == nil {
		cfg.Formatter = format.NewTextFormatter(format.Config{})
	}
	if cfg.MaxSizeMB <= 0 {
		cfg.MaxSizeMB = 100
	}
	return &FileDrain{
		lj: &lumberjack.Logger{
			Filename:   cfg.Path,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
			LocalTime:  cfg.LocalTime,
		},
		f: cfg.Formatter,
	}, nil
}

// Log formats the record into buf and writes it to the file
func (d *FileDrain) Log(buf *bytes.Buffer, rec *core.Record, logger, call []core.Field) error {
	if err := d.f.Format(buf, rec, logger, call); err != nil {
		return err
	}
	d.mu.Lock()
	_, err := d.lj.Write(buf.Bytes())
	d.mu.Unlock()
	return err
}

// Close closes the underlying file
func (d *FileDrain) Close() error {
	return d.lj.Close()
}
