package preflight

import (
	"os"
	"path/filepath"
	"testing"

	"mediadiff/internal/testsupport"
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
	if result.Detail == "" {
		t.Fatal("expected non-empty detail")
	}
}

func TestCheckReadableDirectory_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckReadableDirectory("test", f)
	if result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestCheckReadableDirectory_Unreadable(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}
	dir := filepath.Join(t.TempDir(), "locked")
	if err := os.Mkdir(dir, 0o000); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })
	if result := CheckReadableDirectory("test", dir); result.Passed {
		t.Fatal("expected failure for unreadable dir")
	}
}

func TestRunAll(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithStubbedBinaries())
	root := t.TempDir()
	cfg.Logging.File = filepath.Join(t.TempDir(), "mediadiff.log")

	results := RunAll(cfg, root)
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d: %#v", len(results), results)
	}
	if Failed(results) {
		t.Fatalf("expected all checks to pass, got %#v", results)
	}
	if results[0].Name != "FFprobe" || results[1].Name != "Scan root" || results[2].Name != "Log directory" {
		t.Fatalf("unexpected check order: %#v", results)
	}
}

func TestRunAllMissingFFprobe(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cfg.Probe.FFprobeBinary = filepath.Join(t.TempDir(), "no-ffprobe")

	results := RunAll(cfg, "")
	if len(results) != 1 {
		t.Fatalf("expected only the ffprobe check, got %#v", results)
	}
	if !Failed(results) {
		t.Fatal("expected missing ffprobe to fail")
	}
}

func TestRunAllNilConfig(t *testing.T) {
	if results := RunAll(nil, "/"); results != nil {
		t.Fatalf("expected nil results, got %#v", results)
	}
}
