package interfaces

import (
	"bytes"
	"slices"
	"testing"
)

func TestFormatEntry(t *testing.T) {
	got := FormatEntry("ERROR", "bad value", []Field{F("line", 3), F("kind", "value")})
	if want := "ERROR: bad value line=3 kind=value"; got != want {
		t.Errorf("FormatEntry() = %q, want %q", got, want)
	}
}

func TestWriterLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf)
	logger.Info("parsed", F("file", "a.spdx"))
	logger.Warn("invalid")

	if want := "INFO: parsed file=a.spdx\nWARN: invalid\n"; buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestMemoryLogger(t *testing.T) {
	logger := &MemoryLogger{}
	logger.Debug("one")
	logger.Error("two", F("line", 1))

	if !slices.Equal(logger.Messages(), []string{"one", "two"}) {
		t.Errorf("Messages() = %v", logger.Messages())
	}
	entries := logger.Entries()
	if entries[1].Level != "ERROR" || len(entries[1].Fields) != 1 {
		t.Errorf("Entries()[1] = %+v", entries[1])
	}
}
