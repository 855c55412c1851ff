package logger

import "github.com/treelog/treelog/core"

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	CriticalLevel = core.CriticalLevel
	ErrorLevel    = core.ErrorLevel
	WarningLevel  = core.WarningLevel
	InfoLevel     = core.InfoLevel
	DebugLevel    = core.DebugLevel
	TraceLevel    = core.TraceLevel
)

// ParseLevel converts a string to a Level
func ParseLevel(s string) Level {
	return core.ParseLevel(s)
}
