package progress

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"github.com/JamesMcGahn/faster-folder/internal/logging"
)

// Reporter owns the outer files bar for one run and hands out a fresh audio
// meter per file. Bars render only when the output is a terminal; piped
// runs fall back to plain log lines.
type Reporter struct {
	out    io.Writer
	tty    bool
	total  int
	files  *progressbar.ProgressBar
	logger *slog.Logger
}

// NewReporter builds the outer indicator: total queue length, initial
// position start-1 completed files.
func NewReporter(total, start int, logger *slog.Logger) *Reporter {
	out := os.Stderr
	tty := isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd())

	r := &Reporter{
		out:    out,
		tty:    tty,
		total:  total,
		logger: logging.WithComponent(logger, "progress"),
	}
	r.files = r.newBar(total, "Files")
	if start > 1 {
		_ = r.files.Set(start - 1)
	}
	return r
}

// FileDone ticks the outer bar: processed, skipped, and softly-failed files
// all count.
func (r *Reporter) FileDone() {
	_ = r.files.Add(1)
}

// StartFile returns the inner meter for one file, sized to the whole
// seconds of audio the engine reported.
func (r *Reporter) StartFile(path string, durationSeconds float64) *AudioMeter {
	total := int(durationSeconds)
	label := fmt.Sprintf("Transcribing %s", filepath.Base(path))
	if !r.tty {
		r.logger.Info("transcribing file",
			logging.String(logging.FieldFile, filepath.Base(path)),
			logging.Int("audio_seconds", total),
		)
	}
	return newAudioMeter(r.newBar(total, label), total)
}

// Close finishes the outer bar.
func (r *Reporter) Close() {
	_ = r.files.Finish()
	if r.tty {
		fmt.Fprintln(r.out)
	}
}

func (r *Reporter) newBar(total int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(r.out),
		progressbar.OptionShowCount(),
		progressbar.OptionSetVisibility(r.tty),
		progressbar.OptionOnCompletion(func() {
			if r.tty {
				fmt.Fprintln(r.out)
			}
		}),
	)
}
