package yaml

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestLicenseRepository_Default(t *testing.T) {
	repo := NewLicenseRepository("")
	list, err := repo.LoadLicenseList(context.Background())
	if err != nil {
		t.Fatalf("LoadLicenseList() error = %v", err)
	}
	if list.Version.String() != "3.6" {
		t.Errorf("Version = %v, want 3.6", list.Version)
	}
	if name, ok := list.LicenseName("Apache-2.0"); !ok || name != "Apache License 2.0" {
		t.Errorf("LicenseName(Apache-2.0) = %q, %v", name, ok)
	}
	if _, ok := list.LicenseName("GPL-2.0"); ok {
		t.Error("deprecated identifiers should not be loaded")
	}

	again, err := repo.LoadLicenseList(context.Background())
	if err != nil || again != list {
		t.Error("second load should return the cached list")
	}
}

func TestLicenseRepository_File(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "licenses.json")
	data := []byte(`{"licenseListVersion": "3.20", "licenses": [{"licenseId": "MIT", "name": "MIT License"}]}`)
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	list, err := NewLicenseRepository(path).LoadLicenseList(context.Background())
	if err != nil {
		t.Fatalf("LoadLicenseList() error = %v", err)
	}
	if list.Len() != 1 {
		t.Errorf("Len() = %d, want 1", list.Len())
	}
}

func TestLicenseRepository_NotFound(t *testing.T) {
	repo := NewLicenseRepository(filepath.Join(t.TempDir(), "missing.yml"))
	if _, err := repo.LoadLicenseList(context.Background()); err == nil {
		t.Error("LoadLicenseList() should return error for a missing file")
	}
}

func TestLicenseRepository_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewLicenseRepository("").LoadLicenseList(ctx); err == nil {
		t.Error("LoadLicenseList() should fail on a canceled context")
	}
}
