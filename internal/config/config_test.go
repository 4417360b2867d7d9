package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName+".yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, path, err := Load(context.Background(), LoadOptions{SearchDirs: []string{t.TempDir()}})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if path != "" {
		t.Errorf("path = %q, want none", path)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
log:
  level: DEBUG
parse:
  strict: true
licenses:
  file: /etc/spdx/licenses.yml
verify:
  keyring: https://example.com/KEYS
`)

	cfg, path, err := Load(context.Background(), LoadOptions{SearchDirs: []string{dir}})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("path = %q, want file in %q", path, dir)
	}

	want := DefaultConfig()
	want.Log.Level = "debug"
	want.Parse.Strict = true
	want.Licenses.File = "/etc/spdx/licenses.yml"
	want.Verify.Keyring = "https://example.com/KEYS"
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "write:\n  validate: true\n")
	t.Setenv("SPDXTV_WRITE_VALIDATE", "false")
	t.Setenv("SPDXTV_VERIFY_PASSPHRASE", "secret")

	cfg, _, err := Load(context.Background(), LoadOptions{ConfigFilePath: path})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Write.Validate {
		t.Error("environment should override write.validate")
	}
	if cfg.Verify.Passphrase != "secret" {
		t.Errorf("Passphrase = %q", cfg.Verify.Passphrase)
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		opts LoadOptions
		want string
	}{
		{"missing explicit file", LoadOptions{ConfigFilePath: filepath.Join(dir, "nope.yaml")}, "config file not found"},
		{"bad level", LoadOptions{ConfigFilePath: writeConfig(t, dir, "log:\n  level: loud\n")}, "invalid log.level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Load(context.Background(), tt.opts)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Load() error = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestLoad_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := Load(ctx, LoadOptions{}); err == nil {
		t.Error("Load() should honor a canceled context")
	}
}

func TestConfig_YAML(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Verify.Passphrase = "secret"

	out, err := cfg.YAML()
	if err != nil {
		t.Fatalf("YAML() error = %v", err)
	}
	if strings.Contains(string(out), "secret") {
		t.Error("YAML() must not render the passphrase")
	}

	var back Config
	if err := yaml.Unmarshal(out, &back); err != nil {
		t.Fatalf("rendered config does not parse: %v", err)
	}
	cfg.Verify.Passphrase = ""
	if diff := cmp.Diff(cfg, &back); diff != "" {
		t.Errorf("YAML() mismatch (-want +got):\n%s", diff)
	}
}
