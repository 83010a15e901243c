package compiler

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileWriter_CreatesParentsAndWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "marketing", "nested", "support-docs.txt")

	if err := (FileWriter{}).Write(path, []byte("compiled")); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(data) != "compiled" {
		t.Fatalf("unexpected content %q", data)
	}
}

func TestFileWriter_ReplacesExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "support-docs.txt")
	if err := os.WriteFile(path, []byte("a much longer previous artifact"), 0o644); err != nil {
		t.Fatalf("seed output: %v", err)
	}

	if err := (FileWriter{}).Write(path, []byte("new")); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(data) != "new" {
		t.Fatalf("unexpected content %q", data)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected temp files to be cleaned up, found %d entries", len(entries))
	}
}

func TestFileWriter_ParentIsFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "marketing")
	if err := os.WriteFile(blocker, []byte("not a directory"), 0o644); err != nil {
		t.Fatalf("seed blocker: %v", err)
	}

	err := (FileWriter{}).Write(filepath.Join(blocker, "support-docs.txt"), []byte("x"))
	if err == nil {
		t.Fatal("expected error when parent is a regular file")
	}
}
