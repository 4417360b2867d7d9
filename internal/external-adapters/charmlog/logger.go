// Package charmlog adapts github.com/charmbracelet/log to the domain Logger interface.
package charmlog

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/ochairo/spdxtv/internal/domain/interfaces"
)

// Options configures the terminal logger
type Options struct {
	Level           string
	Prefix          string
	ReportTimestamp bool
}

// Logger writes leveled, styled log lines through charmbracelet/log
type Logger struct {
	logger *log.Logger
}

// New creates a logger writing to w
func New(w io.Writer, opts Options) (*Logger, error) {
	level := log.InfoLevel
	if opts.Level != "" {
		parsed, err := log.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
		level = parsed
	}

	return &Logger{
		logger: log.NewWithOptions(w, log.Options{
			Level:           level,
			Prefix:          opts.Prefix,
			ReportTimestamp: opts.ReportTimestamp,
		}),
	}, nil
}

// Debug logs debug-level messages
func (l *Logger) Debug(msg string, fields ...interfaces.Field) {
	l.logger.Debug(msg, keyvals(fields)...)
}

// Info logs informational messages
func (l *Logger) Info(msg string, fields ...interfaces.Field) {
	l.logger.Info(msg, keyvals(fields)...)
}

// Warn logs warning messages
func (l *Logger) Warn(msg string, fields ...interfaces.Field) {
	l.logger.Warn(msg, keyvals(fields)...)
}

// Error logs error messages
func (l *Logger) Error(msg string, fields ...interfaces.Field) {
	l.logger.Error(msg, keyvals(fields)...)
}

func keyvals(fields []interfaces.Field) []interface{} {
	if len(fields) == 0 {
		return nil
	}
	kv := make([]interface{}, 0, len(fields)*2)
	for _, f := range fields {
		kv = append(kv, f.Key, f.Value)
	}
	return kv
}
