package fileutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/JamesMcGahn/faster-folder/internal/fileutil"
)

func TestWithExt(t *testing.T) {
	cases := []struct{ path, ext, want string }{
		{"/media/lecture01.mp4", ".wav", "/media/lecture01.wav"},
		{"/media/lecture01.wav", ".srt", "/media/lecture01.srt"},
		{"/media/archive.tar.gz", ".txt", "/media/archive.tar.txt"},
		{"/media/noext", ".wav", "/media/noext.wav"},
	}
	for _, tc := range cases {
		if got := fileutil.WithExt(tc.path, tc.ext); got != tc.want {
			t.Errorf("WithExt(%q, %q) = %q, want %q", tc.path, tc.ext, got, tc.want)
		}
	}
}

func TestIsRegularFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.mp3")
	if fileutil.IsRegularFile(path) {
		t.Fatal("missing file reported as regular")
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !fileutil.IsRegularFile(path) {
		t.Fatal("regular file not recognized")
	}
	if fileutil.IsRegularFile(dir) {
		t.Fatal("directory reported as regular file")
	}
}
