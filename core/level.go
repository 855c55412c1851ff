package core

import "strings"

// Level represents the severity of a log record. Levels are ordered
// most-severe first: CriticalLevel is the smallest value, TraceLevel
// the largest.
type Level int8

const (
	// CriticalLevel for errors the application cannot recover from
	CriticalLevel Level = iota
	// ErrorLevel for error messages
	ErrorLevel
	// WarningLevel for warning messages
	WarningLevel
	// InfoLevel for general informational messages (default)
	InfoLevel
	// DebugLevel for detailed debugging information
	DebugLevel
	// TraceLevel for very fine-grained tracing output
	TraceLevel
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case CriticalLevel:
		return "CRITICAL"
	case ErrorLevel:
		return "ERROR"
	case WarningLevel:
		return "WARNING"
	case InfoLevel:
		return "INFO"
	case DebugLevel:
		return "DEBUG"
	case TraceLevel:
		return "TRACE"
	default:
		return "UNKNOWN"
	}
}

// AtLeast reports whether l is at least as severe as min.
func (l Level) AtLeast(min Level) bool {
	return l <= min
}

// ParseLevel converts a string to a Level. Unknown strings map to
// InfoLevel.
func ParseLevel(s string) Level {
	switch strings.ToUpper(s) {
	case "CRITICAL", "CRIT":
		return CriticalLevel
	case "ERROR":
		return ErrorLevel
	case "WARN", "WARNING":
		return WarningLevel
	case "INFO":
		return InfoLevel
	case "DEBUG":
		return DebugLevel
	case "TRACE":
		return TraceLevel
	default:
		return InfoLevel
	}
}
