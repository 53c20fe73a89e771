package queue

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/JamesMcGahn/faster-folder/internal/fileutil"
)

// Recognized holds the media extensions eligible for transcription,
// lower-cased with leading dot.
var Recognized = map[string]struct{}{
	".mp3":  {},
	".wav":  {},
	".m4a":  {},
	".flac": {},
	".avi":  {},
	".mp4":  {},
	".ts":   {},
}

// Discover returns the ordered list of files for a run. When singleFile is
// set the queue holds exactly that file: the path is used as given when it
// exists, otherwise it is resolved relative to dir. Directory scans include
// regular files with a recognized extension, sorted ascending by path.
func Discover(dir, singleFile string) ([]string, error) {
	if name := strings.TrimSpace(singleFile); name != "" {
		if fileutil.IsRegularFile(name) {
			abs, err := filepath.Abs(name)
			if err != nil {
				return nil, fmt.Errorf("resolve %s: %w", name, err)
			}
			return []string{abs}, nil
		}
		return []string{filepath.Join(dir, name)}, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan directory %s: %w", dir, err)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if _, ok := Recognized[ext]; !ok {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// CheckStart validates a 1-based start index against the queue length.
func CheckStart(start, total int) error {
	if start < 1 || start > total {
		return fmt.Errorf("start position %d is out of range: queue holds %d file(s)", start, total)
	}
	return nil
}

// SkipList matches file base names that receive no work.
type SkipList map[string]struct{}

// NewSkipList builds a skip list from exact base names, ignoring blanks.
func NewSkipList(names []string) SkipList {
	list := make(SkipList, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		list[name] = struct{}{}
	}
	return list
}

// Contains reports whether the base name of path is on the skip list.
func (s SkipList) Contains(path string) bool {
	_, ok := s[filepath.Base(path)]
	return ok
}
