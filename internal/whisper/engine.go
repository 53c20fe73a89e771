package whisper

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"time"

	"github.com/JamesMcGahn/faster-folder/internal/logging"
)

// Engine owns the worker process for one run. It is not safe for concurrent
// use; the pipeline is strictly sequential.
type Engine struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	events *bufio.Scanner
	logger *slog.Logger
}

type event struct {
	Event    string  `json:"event"`
	Duration float64 `json:"duration"`
	Start    float64 `json:"start"`
	End      float64 `json:"end"`
	Text     string  `json:"text"`
	Message  string  `json:"message"`
}

// Start launches the worker and blocks until the model is loaded. The
// returned Engine must be closed at end of run.
func Start(ctx context.Context, cfg Config, logger *slog.Logger) (*Engine, error) {
	logger = logging.WithComponent(logger, "whisper")

	cmd := exec.CommandContext(ctx, UVXCommand, workerArgs(cfg)...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("engine stdin: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("engine stdout: %w", err)
	}
	cmd.Stderr = os.Stderr

	logger.Info("loading model",
		logging.String("model", cfg.Model),
		logging.String("compute_type", cfg.ComputeType),
	)
	start := time.Now()
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start speech engine: %w", err)
	}

	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	engine := &Engine{cmd: cmd, stdin: stdin, events: scanner, logger: logger}
	ev, err := engine.nextEvent()
	if err != nil {
		_ = engine.Close()
		return nil, fmt.Errorf("speech engine startup: %w", err)
	}
	if ev.Event != "ready" {
		_ = engine.Close()
		return nil, fmt.Errorf("speech engine startup: unexpected %q event", ev.Event)
	}
	logger.Info("model loaded", logging.Duration("elapsed", time.Since(start)))
	return engine, nil
}

// Transcribe submits one WAV file and returns the single-pass segment
// stream. The previous file's stream must be fully drained first.
func (e *Engine) Transcribe(ctx context.Context, wavPath string) (*Stream, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	e.logger.Info("transcribing", logging.String(logging.FieldFile, filepath.Base(wavPath)))
	if _, err := io.WriteString(e.stdin, wavPath+"\n"); err != nil {
		return nil, fmt.Errorf("submit %s: %w", wavPath, err)
	}

	ev, err := e.nextEvent()
	if err != nil {
		return nil, fmt.Errorf("transcribe %s: %w", wavPath, err)
	}
	switch ev.Event {
	case "start":
		return &Stream{next: e.nextEvent, duration: ev.Duration}, nil
	case "error":
		return nil, fmt.Errorf("transcribe %s: %s", wavPath, ev.Message)
	default:
		return nil, fmt.Errorf("transcribe %s: unexpected %q event", wavPath, ev.Event)
	}
}

// Close tears the worker down: stdin is closed so the worker exits its read
// loop, then the process is reaped.
func (e *Engine) Close() error {
	if e.stdin != nil {
		_ = e.stdin.Close()
		e.stdin = nil
	}
	if e.cmd == nil {
		return nil
	}
	err := e.cmd.Wait()
	e.cmd = nil
	if err != nil {
		return fmt.Errorf("speech engine exit: %w", err)
	}
	return nil
}

func (e *Engine) nextEvent() (event, error) {
	if !e.events.Scan() {
		if err := e.events.Err(); err != nil {
			return event{}, fmt.Errorf("read engine output: %w", err)
		}
		return event{}, fmt.Errorf("engine output closed unexpectedly")
	}
	var ev event
	if err := json.Unmarshal(e.events.Bytes(), &ev); err != nil {
		return event{}, fmt.Errorf("parse engine output %q: %w", e.events.Text(), err)
	}
	return ev, nil
}

func workerArgs(cfg Config) []string {
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	vad := "0"
	if cfg.VADFilter {
		vad = "1"
	}
	return []string{
		"--from", enginePackage,
		"python", "-c", workerScript,
		model,
		cfg.ComputeType,
		cfg.Language,
		strconv.Itoa(cfg.ChunkLength),
		strconv.Itoa(cfg.BeamSize),
		strconv.Itoa(cfg.MinSilenceMS),
		vad,
		cfg.InitialPrompt,
	}
}
