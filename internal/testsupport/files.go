// Package testsupport provides shared fixtures for package tests.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// MediaDir creates a temp directory containing one small placeholder file
// per name and returns its path.
func MediaDir(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		WriteFile(t, filepath.Join(dir, name))
	}
	return dir
}

// WriteFile creates path with placeholder content, failing the test on error.
func WriteFile(t *testing.T, path string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create parent for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte("fixture"), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
