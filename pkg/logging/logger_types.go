package logging

import (
	"io"
	"strings"
	"sync"
)

// Level orders log severity. Entries below a logger's level are dropped.
type Level int

const (
	// DebugLevel covers per-event decisions: hit-test results, drag deltas, clamping
	DebugLevel Level = iota
	// InfoLevel records rebuilds, view resets and startup
	InfoLevel
	// WarnLevel flags data hazards that were absorbed, such as dangling uplinks or duplicate ids
	WarnLevel
	// ErrorLevel is reserved for failures at the edges: config, snapshot files, the metrics listener
	ErrorLevel
)

// String is the upper-case name written to the "level" key.
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a string to a Level. Unknown values fall back to InfoLevel.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DebugLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

// Field is one key/value attached to an entry.
type Field struct {
	Key   string
	Value any
}

// Logger is implemented by JSONLogger and NopLogger.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	// With returns a child that adds fields to every entry
	With(fields ...Field) Logger
	SetLevel(level Level)
	GetLevel() Level
}

// JSONLogger writes one JSON object per line.
// Children created with With share the parent's writer and lock.
type JSONLogger struct {
	writer io.Writer
	level  Level
	fields []Field
	mu     *sync.Mutex
}

// LogEntry is the JSON shape of one line.
type LogEntry struct {
	Time    string         `json:"time"`
	Level   string         `json:"level"`
	Message string         `json:"msg"`
	Fields  map[string]any `json:"fields,omitempty"`
}

// NopLogger drops everything. Constructors fall back to it when given a nil Logger.
type NopLogger struct{}

func (NopLogger) Debug(msg string, fields ...Field) {}
func (NopLogger) Info(msg string, fields ...Field)  {}
func (NopLogger) Warn(msg string, fields ...Field)  {}
func (NopLogger) Error(msg string, fields ...Field) {}
func (n NopLogger) With(fields ...Field) Logger     { return n }
func (NopLogger) SetLevel(level Level)              {}
func (NopLogger) GetLevel() Level                   { return InfoLevel }

// NewNopLogger returns a NopLogger.
func NewNopLogger() Logger {
	return NopLogger{}
}
