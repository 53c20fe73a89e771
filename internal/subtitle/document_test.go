package subtitle_test

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/JamesMcGahn/faster-folder/internal/subtitle"
)

func TestDocumentRoundTrip(t *testing.T) {
	doc := subtitle.NewDocument()
	doc.Append(0.0, 4.25, "first line")
	doc.Append(4.25, 9.5, "second line")
	doc.Append(9.5, 12.0, "third line")

	if doc.Empty() {
		t.Fatal("document with segments reported empty")
	}
	if doc.Count() != 3 {
		t.Fatalf("unexpected count %d", doc.Count())
	}

	dir := t.TempDir()
	srtPath := filepath.Join(dir, "talk.srt")
	txtPath := filepath.Join(dir, "talk.txt")
	if err := doc.WriteFiles(srtPath, txtPath); err != nil {
		t.Fatalf("WriteFiles: %v", err)
	}

	srt, err := os.ReadFile(srtPath)
	if err != nil {
		t.Fatalf("read srt: %v", err)
	}
	blocks := strings.Split(strings.TrimRight(string(srt), "\n"), "\n\n")
	if len(blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d: %q", len(blocks), string(srt))
	}
	for i, block := range blocks {
		lines := strings.Split(block, "\n")
		if len(lines) != 3 {
			t.Fatalf("block %d should have index, range, text: %q", i+1, block)
		}
		if lines[0] != strconv.Itoa(i+1) {
			t.Fatalf("block %d has index %q", i+1, lines[0])
		}
		if !strings.Contains(lines[1], " --> ") {
			t.Fatalf("block %d missing time range: %q", i+1, lines[1])
		}
	}
	if !strings.Contains(blocks[0], "00:00:00,000 --> 00:00:04,250") {
		t.Fatalf("unexpected first range: %q", blocks[0])
	}

	txt, err := os.ReadFile(txtPath)
	if err != nil {
		t.Fatalf("read txt: %v", err)
	}
	if string(txt) != "first line\nsecond line\nthird line" {
		t.Fatalf("unexpected transcript: %q", string(txt))
	}
}

func TestDocumentRefusesEmptyWrite(t *testing.T) {
	doc := subtitle.NewDocument()
	dir := t.TempDir()
	srtPath := filepath.Join(dir, "talk.srt")
	txtPath := filepath.Join(dir, "talk.txt")

	if err := doc.WriteFiles(srtPath, txtPath); err == nil {
		t.Fatal("expected refusal for empty document")
	}
	if _, err := os.Stat(srtPath); !os.IsNotExist(err) {
		t.Fatal("srt file should not exist")
	}
	if _, err := os.Stat(txtPath); !os.IsNotExist(err) {
		t.Fatal("txt file should not exist")
	}
}
