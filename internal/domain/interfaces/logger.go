// Package interfaces defines core domain contracts.
//
//nolint:revive // Package name 'interfaces' is intentional for domain layer
package interfaces

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
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

// WriterLogger writes one line per message to an io.Writer, such as a log file
type WriterLogger struct {
	mu  sync.Mutex
	out io.Writer
}

// NewWriterLogger creates a logger writing to w
func NewWriterLogger(w io.Writer) *WriterLogger {
	return &WriterLogger{out: w}
}

// NewStdoutLogger creates a logger writing to standard output
func NewStdoutLogger() *WriterLogger {
	return NewWriterLogger(os.Stdout)
}

// Debug logs debug-level messages
func (l *WriterLogger) Debug(msg string, fields ...Field) {
	l.log("DEBUG", msg, fields)
}

// Info logs informational messages
func (l *WriterLogger) Info(msg string, fields ...Field) {
	l.log("INFO", msg, fields)
}

// Warn logs warning messages
func (l *WriterLogger) Warn(msg string, fields ...Field) {
	l.log("WARN", msg, fields)
}

func (l *WriterLogger) Error(msg string, fields ...Field) {
	l.log("ERROR", msg, fields)
}

func (l *WriterLogger) log(level, msg string, fields []Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = fmt.Fprintln(l.out, FormatEntry(level, msg, fields))
}

// FormatEntry renders "LEVEL: msg key=value ..."
func FormatEntry(level, msg string, fields []Field) string {
	var b strings.Builder
	b.WriteString(level)
	b.WriteString(": ")
	b.WriteString(msg)
	for _, f := range fields {
		fmt.Fprintf(&b, " %s=%v", f.Key, f.Value)
	}
	return b.String()
}

// Entry is one message captured by MemoryLogger
type Entry struct {
	Level   string
	Message string
	Fields  []Field
}

// MemoryLogger keeps every message in memory
type MemoryLogger struct {
	mu      sync.Mutex
	entries []Entry
}

// Debug records a debug message
func (m *MemoryLogger) Debug(msg string, fields ...Field) { m.record("DEBUG", msg, fields) }

// Info records an informational message
func (m *MemoryLogger) Info(msg string, fields ...Field) { m.record("INFO", msg, fields) }

// Warn records a warning
func (m *MemoryLogger) Warn(msg string, fields ...Field) { m.record("WARN", msg, fields) }

// Error records an error
func (m *MemoryLogger) Error(msg string, fields ...Field) { m.record("ERROR", msg, fields) }

func (m *MemoryLogger) record(level, msg string, fields []Field) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, Entry{Level: level, Message: msg, Fields: fields})
}

// Entries returns a copy of the recorded entries
func (m *MemoryLogger) Entries() []Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Messages returns the recorded messages in order
func (m *MemoryLogger) Messages() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		out = append(out, e.Message)
	}
	return out
}
