package queue_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/JamesMcGahn/faster-folder/internal/queue"
	"github.com/JamesMcGahn/faster-folder/internal/testsupport"
)

func TestDiscoverFiltersAndSorts(t *testing.T) {
	dir := testsupport.MediaDir(t,
		"b-lecture.MP3",
		"a-lecture.mp4",
		"c-lecture.flac",
		"notes.pdf",
		"readme.txt",
		"clip.TS",
	)
	if err := os.Mkdir(filepath.Join(dir, "sub.mp3"), 0o755); err != nil {
		t.Fatal(err)
	}

	files, err := queue.Discover(dir, "")
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}

	want := []string{
		filepath.Join(dir, "a-lecture.mp4"),
		filepath.Join(dir, "b-lecture.MP3"),
		filepath.Join(dir, "c-lecture.flac"),
		filepath.Join(dir, "clip.TS"),
	}
	if len(files) != len(want) {
		t.Fatalf("got %d files %v, want %d", len(files), files, len(want))
	}
	for i := range want {
		if files[i] != want[i] {
			t.Fatalf("position %d: got %q want %q", i, files[i], want[i])
		}
	}
}

func TestDiscoverSingleFileExisting(t *testing.T) {
	dir := testsupport.MediaDir(t, "talk.mp3")
	path := filepath.Join(dir, "talk.mp3")

	files, err := queue.Discover(t.TempDir(), path)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(files) != 1 || files[0] != path {
		t.Fatalf("unexpected queue: %v", files)
	}
}

func TestDiscoverSingleFileResolvedAgainstDir(t *testing.T) {
	dir := testsupport.MediaDir(t, "talk.mp3")

	files, err := queue.Discover(dir, "talk.mp3")
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(files) != 1 || files[0] != filepath.Join(dir, "talk.mp3") {
		t.Fatalf("unexpected queue: %v", files)
	}
}

func TestDiscoverMissingDirectory(t *testing.T) {
	if _, err := queue.Discover(filepath.Join(t.TempDir(), "nope"), ""); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestCheckStart(t *testing.T) {
	cases := []struct {
		start, total int
		wantErr      bool
	}{
		{1, 3, false},
		{3, 3, false},
		{0, 3, true},
		{-1, 3, true},
		{4, 3, true},
		{1, 0, true},
	}
	for _, tc := range cases {
		err := queue.CheckStart(tc.start, tc.total)
		if tc.wantErr && err == nil {
			t.Errorf("CheckStart(%d, %d): expected error", tc.start, tc.total)
		}
		if !tc.wantErr && err != nil {
			t.Errorf("CheckStart(%d, %d): %v", tc.start, tc.total, err)
		}
	}
}

func TestSkipList(t *testing.T) {
	list := queue.NewSkipList([]string{"00. Professor.avi", " ", ""})
	if !list.Contains("/media/00. Professor.avi") {
		t.Fatal("expected base-name match")
	}
	if list.Contains("/media/01. Intro.avi") {
		t.Fatal("unexpected match")
	}
	if len(list) != 1 {
		t.Fatalf("blank entries should be dropped, got %d entries", len(list))
	}
}
