package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	kjson "github.com/knadh/koanf/parsers/json"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/treelog/treelog/core"
	"github.com/treelog/treelog/drain"
	"github.com/treelog/treelog/format"
	"github.com/treelog/treelog/logger"
)

// Format identifies a configuration encoding
type Format string

const (
	YAML Format = "yaml"
	JSON Format = "json"
)

// Config describes a drain stack
type Config struct {
	// Level is the minimum severity to deliver (default: "info")
	Level string `koanf:"level"`
	// Format selects the record encoding: "text" or "json" (default: "text")
	Format string `koanf:"format"`
	// Output selects the destination: "stdout", "stderr", or "file"
	// (default: "stderr")
	Output string `koanf:"output"`
	// TimestampLayout overrides the formatter's time layout
	TimestampLayout string `koanf:"timestamp_layout"`
	// Color forces ANSI coloring for the text format
	Color bool `koanf:"color"`

	// File configures the "file" output
	File FileConfig `koanf:"file"`

	// Async configures background delivery
	Async AsyncConfig `koanf:"async"`
}

// FileConfig configures the rotating file output
type FileConfig struct {
	Path       string `koanf:"path"`
	MaxSizeMB  int    `koanf:"max_size_mb"`
	MaxBackups int    `koanf:"max_backups"`
	MaxAgeDays int    `koanf:"max_age_days"`
	Compress   bool   `koanf:"compress"`
}

// AsyncConfig configures background delivery
type AsyncConfig struct {
	Enabled   bool `koanf:"enabled"`
	QueueSize int  `koanf:"queue_size"`
	// BlockTimeoutMS is the Block-policy timeout in milliseconds
	BlockTimeoutMS int `koanf:"block_timeout_ms"`
}

// Default returns the configuration used when no file is given:
// info-level text to stderr, synchronous.
func Default() Config {
	return Config{
		Level:  "info",
		Format: "text",
		Output: "stderr",
	}
}

// Load reads a configuration file, picking the parser from the file
// extension (.yaml/.yml or .json).
func Load(path string) (Config, error) {
	enc, err := detectFormat(path)
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return LoadBytes(data, enc)
}

// LoadBytes parses raw configuration bytes in the given format.
// Missing keys keep their defaults.
func LoadBytes(data []byte, f Format) (Config, error) {
	k := koanf.New(".")

	var parser koanf.Parser
	switch f {
	case YAML:
		parser = kyaml.Parser()
	case JSON:
		parser = kjson.Parser()
	default:
		return Config{}, fmt.Errorf("config: unsupported format %q", f)
	}

	if len(data) > 0 {
		if err := k.Load(rawbytes.Provider(data), parser); err != nil {
			return Config{}, fmt.Errorf("config: parse: %w", err)
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	return cfg, nil
}

func detectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".json":
		return JSON, nil
	default:
		return "", fmt.Errorf("config: cannot detect format of %q", path)
	}
}

// Build assembles the drain chain the config describes: formatter,
// destination drain, level gate, and optionally an async decorator,
// outermost first.
func (c Config) Build() (drain.Drain, error) {
	var f format.Formatter
	switch strings.ToLower(c.Format) {
	case "", "text":
		tf := format.NewTextFormatter(format.Config{TimestampLayout: c.TimestampLayout})
		tf.Color = c.Color
		f = tf
	case "json":
		f = format.NewJSONFormatter(format.Config{TimestampLayout: c.TimestampLayout})
	default:
		return nil, fmt.Errorf("config: unknown format %q", c.Format)
	}

	var d drain.Drain
	switch strings.ToLower(c.Output) {
	case "", "stderr":
		d = drain.NewStreamDrain(os.Stderr, f)
	case "stdout":
		d = drain.NewStreamDrain(os.Stdout, f)
	case "file":
		fd, err := drain.NewFileDrain(drain.FileConfig{
			Path:       c.File.Path,
			Formatter:  f,
			MaxSizeMB:  c.File.MaxSizeMB,
			MaxBackups: c.File.MaxBackups,
			MaxAgeDays: c.File.MaxAgeDays,
			Compress:   c.File.Compress,
		})
		if err != nil {
			return nil, err
		}
		d = fd
	default:
		return nil, fmt.Errorf("config: unknown output %q", c.Output)
	}

	if c.Async.Enabled {
		d = drain.NewAsyncDrain(d, drain.AsyncConfig{
			QueueSize:    c.Async.QueueSize,
			BlockTimeout: time.Duration(c.Async.BlockTimeoutMS) * time.Millisecond,
		})
	}

	level := core.InfoLevel
	if c.Level != "" {
		level = core.ParseLevel(c.Level)
	}
	return drain.NewFilterDrain(level, d), nil
}

// Apply builds the configured drain and installs it on l's hierarchy.
// The previously installed drain is returned so the caller can close
// or restore it.
func (c Config) Apply(l *logger.Logger) (drain.Drain, error) {
	d, err := c.Build()
	if err != nil {
		return nil, err
	}
	return l.SwapDrain(d), nil
}
