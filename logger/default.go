package logger

import (
	"os"
	"sync"

	"github.com/treelog/treelog/core"
	"github.com/treelog/treelog/drain"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	// The default hierarchy writes to stderr; a nil formatter picks
	// text with color when stderr is a terminal.
	defaultLogger = NewRoot()
	defaultLogger.SetDrain(drain.NewStreamDrain(os.Stderr, nil))
}

// Default returns the default logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger

// Critical logs a critical message using the default logger
func Critical(msg string, fields ...core.Field) {
	Default().Critical(msg, fields...)
}

// Error logs an error message using the default logger
func Error(msg string, fields ...core.Field) {
	Default().Error(msg, fields...)
}

// Warning logs a warning message using the default logger
func Warning(msg string, fields ...core.Field) {
	Default().Warning(msg, fields...)
}

// Info logs an info message using the default logger
func Info(msg string, fields ...core.Field) {
	Default().Info(msg, fields...)
}

// Debug logs a debug message using the default logger
func Debug(msg string, fields ...core.Field) {
	Default().Debug(msg, fields...)
}

// Trace logs a trace message using the default logger
func Trace(msg string, fields ...core.Field) {
	Default().Trace(msg, fields...)
}

// With derives a child of the default logger with additional fields
func With(fields ...core.Field) *Logger {
	return Default().New(fields...)
}
