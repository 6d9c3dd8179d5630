package fsops

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestRealFS_AtomicWrite(t *testing.T) {
	fs := NewRealFS()
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "out.csv")

	if err := fs.AtomicWrite(path, []byte("1,2\n"), 0644); err != nil {
		t.Fatalf("AtomicWrite() error = %v", err)
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "1,2\n" {
		t.Errorf("ReadFile() = %q, want %q", data, "1,2\n")
	}

	// Overwrite replaces the content and leaves no temp files behind
	if err := fs.AtomicWrite(path, []byte("3\n"), 0644); err != nil {
		t.Fatalf("AtomicWrite() error = %v", err)
	}
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the output file, found %d entries", len(entries))
	}
}

func TestRealFS_Exists(t *testing.T) {
	fs := NewRealFS()
	dir := t.TempDir()

	exists, err := fs.Exists(filepath.Join(dir, "missing.csv"))
	if err != nil || exists {
		t.Errorf("Exists(missing) = %v, %v; want false, nil", exists, err)
	}

	exists, err = fs.Exists(dir)
	if err != nil || !exists {
		t.Errorf("Exists(dir) = %v, %v; want true, nil", exists, err)
	}
}

func TestMemFS(t *testing.T) {
	fs := NewMemFS()

	if _, err := fs.ReadFile("a.csv"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ReadFile() error = %v, want ErrNotExist", err)
	}

	if err := fs.AtomicWrite("a.csv", []byte("x"), 0644); err != nil {
		t.Fatalf("AtomicWrite() error = %v", err)
	}
	exists, _ := fs.Exists("a.csv")
	if !exists {
		t.Error("expected a.csv to exist")
	}

	fs.WriteErr = errors.New("disk full")
	if err := fs.AtomicWrite("b.csv", []byte("y"), 0644); err == nil {
		t.Error("expected WriteErr to be returned")
	}
	if exists, _ := fs.Exists("b.csv"); exists {
		t.Error("failed write should not create the file")
	}
}
