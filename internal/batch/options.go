package batch

import (
	"github.com/JamesMcGahn/faster-folder/internal/whisper"
)

// Options is the immutable set of resolved run parameters. It is built once
// by the CLI from config file plus flags and read-only afterwards.
type Options struct {
	// Directory is the folder scanned for media files.
	Directory string
	// SingleFile, when set, replaces the scan with exactly one file.
	SingleFile string
	// Start is the 1-based queue position of the first file to process.
	Start int
	// ConvertOnly stops each file after WAV conversion.
	ConvertOnly bool
	// KeepWAVFiles retains intermediate conversions.
	KeepWAVFiles bool
	// SkipFiles lists base names that are counted but never worked on.
	SkipFiles []string
	// Engine carries the per-run transcription tuning.
	Engine whisper.Config
}
