package preflight

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"phashbench/internal/config"
)

func TestCheckDirectoryAccess_OK(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("test", dir)
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"))
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if !strings.Contains(result.Detail, "does not exist") {
		t.Fatalf("unexpected detail %q", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckDirectoryAccess("test", f)
	if result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestCheckWritableDirCreatesMissing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out", "nested")
	if err := CheckWritableDir(dir); err != nil {
		t.Fatalf("CheckWritableDir failed: %v", err)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Fatalf("expected directory to be created: %v", err)
	}
}

func TestCheckWritableDirRejectsFile(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := CheckWritableDir(f); err == nil {
		t.Fatal("expected error for file path")
	}
	if err := CheckWritableDir(""); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestRunAll(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.DataDir = t.TempDir()
	cfg.Paths.OutputDir = filepath.Join(t.TempDir(), "missing")

	results := RunAll(&cfg)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	failed := Failed(results)
	if len(failed) != 1 || failed[0].Name != "Output directory" {
		t.Fatalf("expected only output directory to fail, got %#v", failed)
	}
	if RunAll(nil) != nil {
		t.Fatal("expected nil for nil config")
	}
}
