// Package interfaces defines core domain contracts.
//
//nolint:revive // Package name 'interfaces' is intentional for domain layer
package interfaces

import (
	"fmt"
	"io"
	"strings"
)

// Logger defines the interface for structured logging
type Logger interface {
	// Debug logs debug-level messages
	Debug(msg string, fields ...Field)

	// Info logs informational messages
	Info(msg string, fields ...Field)

	// Warn logs warning messages
	Warn(msg string, fields ...Field)

	// Error logs error messages
	Error(msg string, fields ...Field)
}

// Field represents a structured log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a new Field (convenience function)
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Level is a log severity
type Level int

// Log levels in increasing severity
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a config value such as "info" into a Level.
// An empty string means info.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// NoOpLogger is a logger that does nothing (useful for tests)
type NoOpLogger struct{}

// Debug does nothing (no-op implementation)
func (n *NoOpLogger) Debug(_ string, _ ...Field) {}

// Info does nothing (no-op implementation)
func (n *NoOpLogger) Info(_ string, _ ...Field) {}

// Warn does nothing (no-op implementation)
func (n *NoOpLogger) Warn(_ string, _ ...Field) {}

// Error does nothing (no-op implementation)
func (n *NoOpLogger) Error(_ string, _ ...Field) {}

// WriterLogger writes one "LEVEL: msg key=value" line per entry to an io.Writer
type WriterLogger struct {
	out io.Writer
	min Level
}

// NewWriterLogger creates a logger that drops entries below min
func NewWriterLogger(out io.Writer, min Level) *WriterLogger {
	return &WriterLogger{out: out, min: min}
}

// Debug logs debug-level messages
func (w *WriterLogger) Debug(msg string, fields ...Field) {
	w.log(LevelDebug, msg, fields)
}

// Info logs informational messages
func (w *WriterLogger) Info(msg string, fields ...Field) {
	w.log(LevelInfo, msg, fields)
}

// Warn logs warning messages
func (w *WriterLogger) Warn(msg string, fields ...Field) {
	w.log(LevelWarn, msg, fields)
}

// Error logs error messages
func (w *WriterLogger) Error(msg string, fields ...Field) {
	w.log(LevelError, msg, fields)
}

func (w *WriterLogger) log(level Level, msg string, fields []Field) {
	if level < w.min {
		return
	}

	var b strings.Builder
	b.WriteString(level.String())
	b.WriteString(": ")
	b.WriteString(msg)
	for _, f := range fields {
		fmt.Fprintf(&b, " %s=%v", f.Key, f.Value)
	}
	b.WriteByte('\n')

	_, _ = io.WriteString(w.out, b.String())
}
