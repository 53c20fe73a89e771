package batch

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/JamesMcGahn/faster-folder/internal/fileutil"
	"github.com/JamesMcGahn/faster-folder/internal/logging"
	"github.com/JamesMcGahn/faster-folder/internal/progress"
	"github.com/JamesMcGahn/faster-folder/internal/queue"
	"github.com/JamesMcGahn/faster-folder/internal/subtitle"
	"github.com/JamesMcGahn/faster-folder/internal/whisper"
)

// LockFileName guards a directory against concurrent runs, which would
// collide on intermediate WAV paths.
const LockFileName = ".faster-folder.lock"

// SegmentStream is the single-pass sequence of segments for one file.
type SegmentStream interface {
	Duration() float64
	Next() (whisper.Segment, bool, error)
}

// Transcriber is the long-lived engine handle owned by the run.
type Transcriber interface {
	Transcribe(ctx context.Context, wavPath string) (SegmentStream, error)
	Close() error
}

// Converter normalizes one input to WAV, reporting whether it created the
// file.
type Converter interface {
	Normalize(ctx context.Context, source string) (path string, created bool, err error)
}

// Runner executes one batch over a directory.
type Runner struct {
	opts        Options
	logger      *slog.Logger
	converter   Converter
	startEngine func(ctx context.Context) (Transcriber, error)
}

// New builds a Runner wired to the real converter and speech engine.
func New(opts Options, logger *slog.Logger, converter Converter) *Runner {
	r := &Runner{
		opts:      opts,
		logger:    logging.WithComponent(logger, "batch"),
		converter: converter,
	}
	r.startEngine = func(ctx context.Context) (Transcriber, error) {
		engine, err := whisper.Start(ctx, opts.Engine, logger)
		if err != nil {
			return nil, Wrap(ErrExternalTool, "start engine", "", err)
		}
		return engineAdapter{engine}, nil
	}
	return r
}

// WithEngineStarter overrides engine construction, for tests.
func (r *Runner) WithEngineStarter(start func(ctx context.Context) (Transcriber, error)) *Runner {
	r.startEngine = start
	return r
}

// Run processes the queue from the configured start position. It returns
// nil when every file was handled, including runs where all files were
// skipped softly.
func (r *Runner) Run(ctx context.Context) error {
	files, err := queue.Discover(r.opts.Directory, r.opts.SingleFile)
	if err != nil {
		return Wrap(ErrConfiguration, "discover files", "", err)
	}
	total := len(files)
	if err := queue.CheckStart(r.opts.Start, total); err != nil {
		return Wrap(ErrConfiguration, "check start position", "", err)
	}

	lock := flock.New(filepath.Join(r.opts.Directory, LockFileName))
	held, err := lock.TryLock()
	if err != nil {
		return Wrap(ErrConfiguration, "lock directory", "", err)
	}
	if !held {
		return Wrap(ErrConfiguration, "lock directory", "another run is already processing "+r.opts.Directory, nil)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	r.logger.Info("starting batch",
		logging.Int("files", total),
		logging.Int("start", r.opts.Start),
		logging.String("directory", r.opts.Directory),
	)

	var engine Transcriber
	if !r.opts.ConvertOnly {
		engine, err = r.startEngine(ctx)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := engine.Close(); cerr != nil && ctx.Err() == nil {
				r.logger.Warn("engine shutdown", logging.Error(cerr))
			}
		}()
	}

	skip := queue.NewSkipList(r.opts.SkipFiles)
	reporter := progress.NewReporter(total, r.opts.Start, r.logger)
	defer reporter.Close()

	for i, path := range files[r.opts.Start-1:] {
		if err := ctx.Err(); err != nil {
			return err
		}
		position := r.opts.Start + i
		if err := r.processFile(ctx, engine, reporter, skip, path, position, total); err != nil {
			return err
		}
		reporter.FileDone()
	}

	r.logger.Info("batch complete", logging.Int("files", total))
	return nil
}

func (r *Runner) processFile(ctx context.Context, engine Transcriber, reporter *progress.Reporter, skip queue.SkipList, path string, position, total int) error {
	log := r.logger.With(
		logging.String(logging.FieldFile, filepath.Base(path)),
		logging.Int("position", position),
		logging.Int("total", total),
	)

	if skip.Contains(path) {
		log.Info("file is on the skip list")
		return nil
	}
	if !fileutil.IsRegularFile(path) {
		log.Warn("file no longer exists, skipping")
		return nil
	}

	wav, created, err := r.converter.Normalize(ctx, path)
	if err != nil {
		return Wrap(ErrExternalTool, "normalize", "", err)
	}
	if r.opts.ConvertOnly {
		return nil
	}

	stream, err := engine.Transcribe(ctx, wav)
	if err != nil {
		return Wrap(ErrExternalTool, "transcribe", "", err)
	}

	doc := subtitle.NewDocument()
	meter := reporter.StartFile(wav, stream.Duration())
	for {
		seg, ok, err := stream.Next()
		if err != nil {
			return Wrap(ErrExternalTool, "transcribe", "", err)
		}
		if !ok {
			break
		}
		doc.Append(seg.Start, seg.End, seg.Text)
		meter.Observe(seg.End)
	}
	meter.Finish()

	if doc.Empty() {
		log.Warn("empty transcript, no outputs written")
		return nil
	}

	srtPath := fileutil.WithExt(wav, ".srt")
	txtPath := fileutil.WithExt(wav, ".txt")
	if err := doc.WriteFiles(srtPath, txtPath); err != nil {
		return Wrap(ErrExternalTool, "write outputs", "", err)
	}
	log.Info("wrote outputs",
		logging.Int("segments", doc.Count()),
		logging.String("srt", filepath.Base(srtPath)),
		logging.String("txt", filepath.Base(txtPath)),
	)

	r.cleanup(created, wav, log)
	return nil
}

// cleanup deletes the intermediate WAV when this run created it, retention
// is off, and it still exists.
func (r *Runner) cleanup(created bool, wav string, log *slog.Logger) {
	if !created || r.opts.KeepWAVFiles {
		return
	}
	if !fileutil.IsRegularFile(wav) {
		return
	}
	if err := os.Remove(wav); err != nil {
		log.Warn("failed to delete intermediate wav", logging.Error(err))
		return
	}
	log.Debug("deleted intermediate wav")
}

// engineAdapter narrows *whisper.Engine to the Transcriber interface.
type engineAdapter struct {
	engine *whisper.Engine
}

func (a engineAdapter) Transcribe(ctx context.Context, wavPath string) (SegmentStream, error) {
	return a.engine.Transcribe(ctx, wavPath)
}

func (a engineAdapter) Close() error {
	return a.engine.Close()
}
