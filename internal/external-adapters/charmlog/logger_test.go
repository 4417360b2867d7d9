package charmlog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ochairo/spdxtv/internal/domain/interfaces"
)

var _ interfaces.Logger = (*Logger)(nil)

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, Options{Level: "warn", Prefix: "spdxtv"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	logger.Debug("hidden debug")
	logger.Info("hidden info")
	logger.Warn("Document uses a newer license list", interfaces.F("loaded", "3.6"))
	logger.Error("File failed verification", interfaces.F("file", "./a.c"))

	out := buf.String()
	for _, hidden := range []string{"hidden debug", "hidden info"} {
		if strings.Contains(out, hidden) {
			t.Errorf("output contains %q below the configured level:\n%s", hidden, out)
		}
	}
	for _, want := range []string{"Document uses a newer license list", "loaded=3.6", "File failed verification", "file=./a.c", "spdxtv"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	if _, err := New(&bytes.Buffer{}, Options{Level: "loud"}); err == nil {
		t.Error("New() should reject an unknown level")
	}
}

func TestKeyvals(t *testing.T) {
	if got := keyvals(nil); got != nil {
		t.Errorf("keyvals(nil) = %v", got)
	}
	got := keyvals([]interfaces.Field{interfaces.F("line", 3), interfaces.F("kind", "value")})
	if len(got) != 4 || got[0] != "line" || got[1] != 3 || got[3] != "value" {
		t.Errorf("keyvals() = %v", got)
	}
}
