// Package fileutil provides small path helpers shared across the pipeline.
package fileutil

import (
	"os"
	"path/filepath"
	"strings"
)

// WithExt returns the sibling of path with its extension replaced. ext must
// include the leading dot.
func WithExt(path, ext string) string {
	old := filepath.Ext(path)
	return strings.TrimSuffix(path, old) + ext
}

// IsRegularFile reports whether path exists and is a regular file.
func IsRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
