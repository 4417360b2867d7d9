package services

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ochairo/spdxtv/internal/domain-adapters/gateways"
	"github.com/ochairo/spdxtv/internal/domain/entities"
	"github.com/ochairo/spdxtv/internal/domain/interfaces"
	"github.com/ochairo/spdxtv/internal/external-adapters/tagvalue"
)

func newTestService(logger interfaces.Logger) *documentService {
	catalog := entities.NewLicenseList(entities.Version{Major: 3, Minor: 6})
	catalog.Add("MIT", "MIT License")
	return NewDocumentService(DocumentDeps{
		Decoder:   tagvalue.NewParser(tagvalue.WithCatalog(catalog)),
		Encoder:   tagvalue.NewWriter(tagvalue.WithValidation(true)),
		Checksums: gateways.NewChecksumCalculator(),
		Catalog:   catalog,
		Logger:    logger,
	}).(*documentService)
}

// writeTree creates files relative to a fresh temp dir
func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}
	return root
}

func TestGenerate(t *testing.T) {
	root := writeTree(t, map[string]string{
		"main.c":       "int main(void) { return 0; }\n",
		"docs/fox.txt": "The quick brown fox jumps over the lazy dog",
	})
	svc := newTestService(nil)

	doc, err := svc.Generate(context.Background(), root, entities.GenerateOptions{PackageName: "demo"})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if msgs := doc.Validate(); len(msgs) != 0 {
		t.Fatalf("generated document is invalid: %v", msgs)
	}

	files := doc.Package.Files
	if len(files) != 2 {
		t.Fatalf("Files = %d, want 2", len(files))
	}
	if files[0].Name != "./docs/fox.txt" || files[1].Name != "./main.c" {
		t.Errorf("file names = %q, %q", files[0].Name, files[1].Name)
	}
	if files[0].Checksum.Value != "2fd4e1c67a2d28fced849ee1bb76e7391b93eb12" {
		t.Errorf("fox checksum = %s", files[0].Checksum)
	}
	if files[0].Type != entities.FileTypeOther || files[1].Type != entities.FileTypeSource {
		t.Errorf("file types = %s, %s", files[0].Type, files[1].Type)
	}
	if doc.Package.Name != "demo" || doc.Name != filepath.Base(root) {
		t.Errorf("names = package %q, document %q", doc.Package.Name, doc.Name)
	}
	if !strings.HasPrefix(doc.Namespace, DefaultNamespacePrefix+doc.Name+"-") {
		t.Errorf("Namespace = %q", doc.Namespace)
	}
	if got := doc.CreationInfo.Creators; len(got) != 1 || got[0].String() != "Tool: spdxtv" {
		t.Errorf("Creators = %v", got)
	}
	if v := doc.CreationInfo.LicenseListVersion; v == nil || v.String() != "3.6" {
		t.Errorf("LicenseListVersion = %v, want 3.6", v)
	}
}

func TestGenerate_Excluded(t *testing.T) {
	root := writeTree(t, map[string]string{"a.go": "package a\n", "doc.spdx": "generated"})
	svc := newTestService(nil)

	doc, err := svc.Generate(context.Background(), root, entities.GenerateOptions{Excluded: []string{"doc.spdx"}})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(doc.Package.Files) != 1 || doc.Package.Files[0].Name != "./a.go" {
		t.Errorf("Files = %v, want only ./a.go", doc.Package.Files)
	}
	code := doc.Package.VerificationCode
	if len(code.ExcludedFiles) != 1 || code.ExcludedFiles[0] != "./doc.spdx" {
		t.Errorf("ExcludedFiles = %v", code.ExcludedFiles)
	}

	if err := os.WriteFile(filepath.Join(root, "doc.spdx"), []byte("regenerated"), 0600); err != nil {
		t.Fatal(err)
	}
	report, err := svc.VerifyFiles(context.Background(), doc, root)
	if err != nil {
		t.Fatalf("VerifyFiles() error = %v", err)
	}
	if !report.CodeMatches() {
		t.Errorf("verification code changed with an excluded file: %s vs %s", report.ExpectedCode, report.ActualCode)
	}
}

func TestGenerate_Errors(t *testing.T) {
	svc := newTestService(nil)
	file := filepath.Join(writeTree(t, map[string]string{"x": "x"}), "x")

	tests := []struct {
		name string
		root string
		want string
	}{
		{"missing", "/nonexistent/dir", "failed to read"},
		{"not a directory", file, "is not a directory"},
		{"empty", t.TempDir(), "no files found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Generate(context.Background(), tt.root, entities.GenerateOptions{})
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Generate() error = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestWriteParseRoundTrip(t *testing.T) {
	root := writeTree(t, map[string]string{"lib/util.py": "print('hi')\n"})
	svc := newTestService(nil)
	ctx := context.Background()

	doc, err := svc.Generate(ctx, root, entities.GenerateOptions{DocumentName: "util"})
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := svc.Write(&buf, doc); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	result, err := svc.Parse(ctx, &buf)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if result.Error {
		t.Fatalf("Parse() diagnostics: %v", result.Messages())
	}
	if got := result.Document.Package.VerificationCode.Value; got != doc.Package.VerificationCode.Value {
		t.Errorf("verification code = %s, want %s", got, doc.Package.VerificationCode.Value)
	}
	if msgs := svc.Validate(result.Document); len(msgs) != 0 {
		t.Errorf("Validate() = %v", msgs)
	}
}

func TestVerifyFiles(t *testing.T) {
	root := writeTree(t, map[string]string{"a.c": "a", "b.c": "b", "c.c": "c"})
	svc := newTestService(nil)
	ctx := context.Background()
	doc, err := svc.Generate(ctx, root, entities.GenerateOptions{})
	if err != nil {
		t.Fatal(err)
	}

	report, err := svc.VerifyFiles(ctx, doc, root)
	if err != nil {
		t.Fatalf("VerifyFiles() error = %v", err)
	}
	if !report.Passed() {
		t.Fatalf("unchanged tree failed verification: %+v", report.Failed())
	}

	if err := os.WriteFile(filepath.Join(root, "b.c"), []byte("changed"), 0600); err != nil {
		t.Fatal(err)
	}
	report, err = svc.VerifyFiles(ctx, doc, root)
	if err != nil {
		t.Fatal(err)
	}
	failed := report.Failed()
	if len(failed) != 1 || failed[0].Name != "./b.c" {
		t.Fatalf("Failed() = %+v, want ./b.c", failed)
	}
	if !errors.Is(failed[0].Err, entities.ErrChecksumMismatch) {
		t.Errorf("failure = %v, want ErrChecksumMismatch", failed[0].Err)
	}
	if report.CodeMatches() {
		t.Error("verification code should differ after a change")
	}

	if err := os.Remove(filepath.Join(root, "c.c")); err != nil {
		t.Fatal(err)
	}
	report, err = svc.VerifyFiles(ctx, doc, root)
	if err != nil {
		t.Fatal(err)
	}
	if report.ActualCode != nil {
		t.Error("verification code should not be computed with missing files")
	}
	if len(report.Failed()) != 2 {
		t.Errorf("Failed() = %d, want 2", len(report.Failed()))
	}
}

func TestVerifyFiles_NoPackage(t *testing.T) {
	if _, err := newTestService(nil).VerifyFiles(context.Background(), entities.NewDocument(), "."); err == nil {
		t.Error("VerifyFiles() should fail without a package")
	}
}

func TestValidate_NewerLicenseList(t *testing.T) {
	logger := &interfaces.MemoryLogger{}
	svc := newTestService(logger)
	doc := entities.NewDocument()
	doc.CreationInfo.LicenseListVersion = &entities.Version{Major: 3, Minor: 20}

	if msgs := svc.Validate(doc); len(msgs) == 0 {
		t.Error("Validate() should report an empty document")
	}
	entries := logger.Entries()
	if len(entries) != 1 || entries[0].Level != "WARN" {
		t.Errorf("log entries = %+v, want one warning", entries)
	}
	if got := svc.Validate(nil); len(got) != 1 {
		t.Errorf("Validate(nil) = %v", got)
	}
}

func TestLicenseSummary(t *testing.T) {
	mit := entities.SimpleLicense{ID: "MIT"}
	apache := entities.SimpleLicense{ID: "Apache-2.0"}
	doc := &entities.Document{
		Package: &entities.Package{
			ConcludedLicense:  entities.LicenseDisjunction{Left: mit, Right: apache},
			DeclaredLicense:   mit,
			LicensesFromFiles: []entities.License{apache, mit},
			Files: []*entities.File{{
				ConcludedLicense: entities.NoAssertion{},
				LicensesInFile:   []entities.License{mit},
			}},
		},
	}

	var got []string
	for _, l := range LicenseSummary(doc) {
		got = append(got, l.Identifier())
	}
	want := []string{"Apache-2.0", "MIT", "MIT OR Apache-2.0", "NOASSERTION"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("LicenseSummary() = %v, want %v", got, want)
	}
}

func TestLocalPath(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"./a.c", filepath.Join("root", "a.c")},
		{"./src/../b.c", filepath.Join("root", "b.c")},
		{"../../etc/passwd", filepath.Join("root", "etc", "passwd")},
	}
	for _, tt := range tests {
		if got := localPath("root", tt.name); got != tt.want {
			t.Errorf("localPath(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
