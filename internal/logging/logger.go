package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Options describes logger construction parameters.
type Options struct {
	Level   string
	Format  string
	LogDir  string
	Console io.Writer
}

// New constructs a slog logger using the provided options. When LogDir is
// set, records are fanned out to a run log file in addition to the console.
func New(opts Options) (*slog.Logger, error) {
	levelVar := new(slog.LevelVar)
	levelVar.Set(parseLevel(opts.Level))

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}

	format := strings.ToLower(strings.TrimSpace(opts.Format))
	if format == "" {
		format = "console"
	}

	var consoleHandler slog.Handler
	switch format {
	case "json":
		consoleHandler = slog.NewJSONHandler(console, &slog.HandlerOptions{Level: levelVar})
	case "console":
		consoleHandler = newConsoleHandler(console, levelVar)
	default:
		return nil, fmt.Errorf("log format: unsupported value %q", opts.Format)
	}

	if strings.TrimSpace(opts.LogDir) == "" {
		return slog.New(consoleHandler), nil
	}

	if err := os.MkdirAll(opts.LogDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure log directory: %w", err)
	}
	logPath := filepath.Join(opts.LogDir, "faster-folder.log")
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o664)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", logPath, err)
	}
	fileHandler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: levelVar})

	return slog.New(fanoutHandler{handlers: []slog.Handler{consoleHandler, fileHandler}}), nil
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "info", "":
		return slog.LevelInfo
	default:
		return slog.LevelInfo
	}
}
