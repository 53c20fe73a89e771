package media

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/JamesMcGahn/faster-folder/internal/fileutil"
	"github.com/JamesMcGahn/faster-folder/internal/logging"
)

// FFmpegCommand is the converter binary resolved from PATH.
const FFmpegCommand = "ffmpeg"

// CommandRunner executes an external command. It exists so tests can
// intercept ffmpeg invocations.
type CommandRunner func(ctx context.Context, name string, args ...string) error

// Converter produces mono 16 kHz s16le WAV renditions of media files.
type Converter struct {
	ffmpeg string
	runner CommandRunner
	logger *slog.Logger
}

// NewConverter builds a Converter logging through the given logger.
func NewConverter(logger *slog.Logger) *Converter {
	return &Converter{
		ffmpeg: FFmpegCommand,
		logger: logging.WithComponent(logger, "media"),
	}
}

// WithCommandRunner overrides command execution, for tests.
func (c *Converter) WithCommandRunner(runner CommandRunner) *Converter {
	c.runner = runner
	return c
}

// IsWAV reports whether path already carries a .wav extension.
func IsWAV(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".wav")
}

// WAVPath returns the sibling WAV path for a source file.
func WAVPath(source string) string {
	return fileutil.WithExt(source, ".wav")
}

// Normalize converts source to its sibling WAV path and returns that path.
// WAV inputs are returned as-is without invoking ffmpeg. A converter failure
// means a corrupt or unreadable input, or a broken tool install; callers
// treat it as fatal for the run.
func (c *Converter) Normalize(ctx context.Context, source string) (string, bool, error) {
	if IsWAV(source) {
		return source, false, nil
	}

	target := WAVPath(source)
	args := []string{
		"-loglevel", "error",
		"-y",
		"-i", source,
		"-vn",
		"-ac", "1",
		"-ar", "16000",
		"-c:a", "pcm_s16le",
		target,
	}

	c.logger.Info("converting to wav",
		logging.String(logging.FieldFile, filepath.Base(source)),
		logging.String("target", filepath.Base(target)),
	)
	start := time.Now()
	if err := c.run(ctx, c.ffmpeg, args...); err != nil {
		return "", false, fmt.Errorf("convert %s: %w", source, err)
	}
	c.logger.Info("wav conversion done",
		logging.String(logging.FieldFile, filepath.Base(target)),
		logging.Duration("elapsed", time.Since(start)),
	)
	return target, true, nil
}

func (c *Converter) run(ctx context.Context, name string, args ...string) error {
	if c.runner != nil {
		return c.runner(ctx, name, args...)
	}
	cmd := exec.CommandContext(ctx, name, args...)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s: %w: %s", name, err, strings.TrimSpace(string(output)))
	}
	return nil
}
