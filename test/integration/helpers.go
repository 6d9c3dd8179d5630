// Package integration runs the full repair pipeline against the real
// filesystem.
package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/danieljhkim/gridfill/internal/clock"
	"github.com/danieljhkim/gridfill/internal/engine"
	"github.com/danieljhkim/gridfill/internal/fsops"
	"github.com/danieljhkim/gridfill/internal/hash"
)

// newEngine returns an engine backed by the real filesystem and hasher.
func newEngine() *engine.Engine {
	return engine.New(fsops.NewRealFS(), hash.NewSHA256Hasher(), clock.RealClock{}, nil)
}

// writeGrid writes content to name inside a fresh temp dir and returns its path.
func writeGrid(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write grid: %v", err)
	}
	return path
}

func readGrid(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read grid: %v", err)
	}
	return string(data)
}
