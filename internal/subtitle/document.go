package subtitle

import (
	"fmt"
	"os"
	"strings"
)

// Document accumulates the segments of one file. Nothing touches disk until
// WriteFiles, so an interrupted transcription leaves no partial outputs.
type Document struct {
	srtLines []string
	txtLines []string
	index    int
}

// NewDocument returns an empty accumulator.
func NewDocument() *Document {
	return &Document{}
}

// Append records one segment under the next 1-based subtitle index.
func (d *Document) Append(start, end float64, text string) {
	d.index++
	d.srtLines = append(d.srtLines,
		fmt.Sprintf("%d", d.index),
		FormatTimestamp(start)+" --> "+FormatTimestamp(end),
		text,
		"",
	)
	d.txtLines = append(d.txtLines, text)
}

// Empty reports whether no segment was appended.
func (d *Document) Empty() bool {
	return d.index == 0
}

// Count returns the number of appended segments.
func (d *Document) Count() int {
	return d.index
}

// WriteFiles flushes both documents. The SRT ends with the blank line of
// its final block; the text document carries no trailing newline.
func (d *Document) WriteFiles(srtPath, txtPath string) error {
	if d.Empty() {
		return fmt.Errorf("refusing to write empty transcript")
	}
	if err := os.WriteFile(txtPath, []byte(strings.Join(d.txtLines, "\n")), 0o644); err != nil {
		return fmt.Errorf("write transcript %s: %w", txtPath, err)
	}
	if err := os.WriteFile(srtPath, []byte(strings.Join(d.srtLines, "\n")), 0o644); err != nil {
		return fmt.Errorf("write subtitles %s: %w", srtPath, err)
	}
	return nil
}
