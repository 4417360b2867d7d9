package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ProtonMail/go-crypto/openpgp"
	"github.com/ProtonMail/go-crypto/openpgp/armor"
	"github.com/ProtonMail/go-crypto/openpgp/packet"
)

const foxSHA1 = "2fd4e1c67a2d28fced849ee1bb76e7391b93eb12"

// runCLI executes the command line and returns the exit code with both outputs
func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

// setup writes a quiet config file and a small project tree
func setup(t *testing.T) (cfgPath, root string) {
	t.Helper()
	dir := t.TempDir()
	cfgPath = filepath.Join(dir, "spdxtv.yaml")
	if err := os.WriteFile(cfgPath, []byte("log:\n  level: error\n"), 0600); err != nil {
		t.Fatal(err)
	}

	root = filepath.Join(dir, "project")
	files := map[string]string{
		"fox.txt":    "The quick brown fox jumps over the lazy dog",
		"src/main.c": "int main(void) { return 0; }\n",
	}
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatal(err)
		}
	}
	return cfgPath, root
}

func TestCLI_GenerateValidateVerify(t *testing.T) {
	cfg, root := setup(t)
	doc := filepath.Join(root, "project.spdx")

	code, out, errOut := runCLI(t, "--config", cfg, "generate", root, "-o", doc, "--creator", "Person: Jane Doe (jane@example.com)")
	if code != 0 {
		t.Fatalf("generate exit = %d, stderr = %s", code, errOut)
	}
	if !strings.Contains(out, "Files: 2") {
		t.Errorf("generate output = %q", out)
	}

	code, out, errOut = runCLI(t, "--config", cfg, "validate", doc)
	if code != 0 || !strings.Contains(out, "✅") {
		t.Fatalf("validate exit = %d, out = %q, stderr = %q", code, out, errOut)
	}

	code, out, _ = runCLI(t, "--config", cfg, "parse", doc)
	if code != 0 {
		t.Fatalf("parse exit = %d", code)
	}
	for _, want := range []string{"Package:      project (2 files)", "Creator:      Person: Jane Doe (jane@example.com)", "NOASSERTION", "No problems found"} {
		if !strings.Contains(out, want) {
			t.Errorf("parse output missing %q:\n%s", want, out)
		}
	}

	code, out, errOut = runCLI(t, "--config", cfg, "verify", doc, "--root", root)
	if code != 0 {
		t.Fatalf("verify exit = %d, out = %s, stderr = %s", code, out, errOut)
	}
	if !strings.Contains(out, "2 file(s) match") {
		t.Errorf("verify output = %q", out)
	}

	if err := os.WriteFile(filepath.Join(root, "fox.txt"), []byte("changed"), 0600); err != nil {
		t.Fatal(err)
	}
	code, out, _ = runCLI(t, "--config", cfg, "verify", doc, "--root", root)
	if code != 1 || !strings.Contains(out, "❌ ./fox.txt") {
		t.Errorf("verify after change exit = %d, out = %q", code, out)
	}
}

func TestCLI_Format(t *testing.T) {
	cfg, root := setup(t)
	doc := filepath.Join(t.TempDir(), "doc.spdx")
	if code, _, errOut := runCLI(t, "--config", cfg, "generate", root, "-o", doc); code != 0 {
		t.Fatalf("generate failed: %s", errOut)
	}

	formatted := filepath.Join(t.TempDir(), "formatted.spdx")
	if code, _, errOut := runCLI(t, "--config", cfg, "format", doc, "-o", formatted); code != 0 {
		t.Fatalf("format failed: %s", errOut)
	}
	want, _ := os.ReadFile(doc)
	got, _ := os.ReadFile(formatted)
	if !bytes.Equal(want, got) {
		t.Errorf("format changed a canonical document:\n%s", got)
	}
}

func TestCLI_ValidateInvalid(t *testing.T) {
	cfg, _ := setup(t)
	bad := filepath.Join(t.TempDir(), "bad.spdx")
	if err := os.WriteFile(bad, []byte("SPDXVersion: SPDX-2.1\nDataLicense: MIT\n"), 0600); err != nil {
		t.Fatal(err)
	}

	code, out, errOut := runCLI(t, "--config", cfg, "validate", bad)
	if code != 1 {
		t.Errorf("validate exit = %d, want 1", code)
	}
	if !strings.Contains(out, "Invalid DataLicense 'MIT' must be CC0-1.0") {
		t.Errorf("validate output = %q", out)
	}
	if !strings.Contains(errOut, "1 of 1 document(s) invalid") {
		t.Errorf("stderr = %q", errOut)
	}

	if code, _, _ := runCLI(t, "--config", cfg, "--strict", "parse", bad); code != 1 {
		t.Errorf("strict parse exit = %d, want 1", code)
	}
}

func TestCLI_LogFile(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "spdxtv.log")
	cfg := filepath.Join(dir, "spdxtv.yaml")
	if err := os.WriteFile(cfg, []byte("log:\n  file: "+logPath+"\n"), 0600); err != nil {
		t.Fatal(err)
	}
	bad := filepath.Join(dir, "bad.spdx")
	if err := os.WriteFile(bad, []byte("SPDXVersion: SPDX-2.1\nBogus: tag\n"), 0600); err != nil {
		t.Fatal(err)
	}

	if code, _, _ := runCLI(t, "--config", cfg, "validate", bad); code != 1 {
		t.Errorf("validate exit = %d, want 1", code)
	}
	logged, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(logged), "ERROR: Found unknown tag : Bogus at line: 2") {
		t.Errorf("log file = %q", logged)
	}
}

func TestCLI_Checksum(t *testing.T) {
	cfg, root := setup(t)
	fox := filepath.Join(root, "fox.txt")

	code, out, errOut := runCLI(t, "--config", cfg, "checksum", "--code", fox)
	if code != 0 {
		t.Fatalf("checksum exit = %d, stderr = %s", code, errOut)
	}
	if !strings.Contains(out, "SHA1: "+foxSHA1+"  "+fox) {
		t.Errorf("checksum output = %q", out)
	}
	if !strings.Contains(out, "PackageVerificationCode: ") {
		t.Errorf("missing verification code in %q", out)
	}
}

func TestCLI_SignAndVerify(t *testing.T) {
	cfg, root := setup(t)
	doc := filepath.Join(root, "project.spdx")
	if code, _, errOut := runCLI(t, "--config", cfg, "generate", root, "-o", doc); code != 0 {
		t.Fatalf("generate failed: %s", errOut)
	}

	entity, err := openpgp.NewEntity("cli test", "", "cli@example.com", &packet.Config{Algorithm: packet.PubKeyAlgoEdDSA})
	if err != nil {
		t.Fatal(err)
	}
	var key bytes.Buffer
	w, err := armor.Encode(&key, openpgp.PrivateKeyType, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := entity.SerializePrivate(w, nil); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	keyPath := filepath.Join(t.TempDir(), "key.asc")
	if err := os.WriteFile(keyPath, key.Bytes(), 0600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SPDXTV_VERIFY_KEYRING", keyPath)

	code, out, errOut := runCLI(t, "--config", cfg, "sign", doc)
	if code != 0 {
		t.Fatalf("sign exit = %d, stderr = %s", code, errOut)
	}
	if !strings.Contains(out, doc+".asc") {
		t.Errorf("sign output = %q", out)
	}

	code, out, errOut = runCLI(t, "--config", cfg, "verify", doc, "--signature", doc+".asc", "--root", root)
	if code != 0 || !strings.Contains(out, "Signature verified") {
		t.Errorf("verify exit = %d, out = %q, stderr = %q", code, out, errOut)
	}
}

func TestCLI_ConfigShow(t *testing.T) {
	cfg, _ := setup(t)
	code, out, _ := runCLI(t, "--config", cfg, "config", "show")
	if code != 0 {
		t.Fatalf("config show exit = %d", code)
	}
	if !strings.Contains(out, "level: error") || !strings.Contains(out, "# "+cfg) {
		t.Errorf("config show output = %q", out)
	}
}

func TestCLI_Errors(t *testing.T) {
	cfg, _ := setup(t)
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown command", []string{"bogus"}, "unknown command"},
		{"missing argument", []string{"--config", cfg, "parse"}, "accepts 1 arg"},
		{"missing config", []string{"--config", "/nonexistent/spdxtv.yaml", "parse", "x"}, "config file not found"},
		{"missing document", []string{"--config", cfg, "parse", "/nonexistent/doc.spdx"}, "failed to open document"},
		{"bad creator", []string{"--config", cfg, "generate", ".", "--creator", "Robot: x"}, "invalid --creator"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, errOut := runCLI(t, tt.args...)
			if code != 1 || !strings.Contains(errOut, tt.want) {
				t.Errorf("exit = %d, stderr = %q, want %q", code, errOut, tt.want)
			}
		})
	}
}
