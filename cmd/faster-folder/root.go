package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/JamesMcGahn/faster-folder/internal/batch"
	"github.com/JamesMcGahn/faster-folder/internal/config"
	"github.com/JamesMcGahn/faster-folder/internal/language"
	"github.com/JamesMcGahn/faster-folder/internal/logging"
	"github.com/JamesMcGahn/faster-folder/internal/media"
	"github.com/JamesMcGahn/faster-folder/internal/queue"
)

type rootFlags struct {
	configPath    string
	directory     string
	model         string
	languageCode  string
	start         int
	singleFile    string
	convertOnly   bool
	vadFilter     bool
	beamSize      int
	chunkLength   int
	minSilenceMS  int
	computeType   string
	initialPrompt string
	keepWAVFiles  bool
	fileCount     bool
	skip          []string
}

func newRootCommand() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:           "faster-folder",
		Short:         "Batch-transcribe a folder of audio and video files to SRT and text",
		Long: "faster-folder walks a folder of recordings, converts anything that is " +
			"not already WAV to mono 16 kHz PCM with ffmpeg, transcribes each file " +
			"with faster-whisper, and writes .srt and .txt transcripts beside the sources.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, flags)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "Configuration file path")
	pf.StringVar(&flags.directory, "directory", "", "Root folder to scan for media files")

	f := rootCmd.Flags()
	f.StringVar(&flags.model, "model", "", "Speech model identifier (default \"medium\")")
	f.StringVar(&flags.languageCode, "language", "", "Target language code (default \"en\")")
	f.IntVar(&flags.start, "start", 1, "1-based index of the first file to process")
	f.StringVar(&flags.singleFile, "single-file", "", "Process exactly one named file instead of scanning")
	f.BoolVar(&flags.convertOnly, "convert-wav-only", false, "Stop after WAV conversion, skip transcription")
	f.BoolVar(&flags.vadFilter, "vad-filter", false, "Enable voice-activity-based segmentation")
	f.IntVar(&flags.beamSize, "beam-size", 0, "Decoding beam width (default 1)")
	f.IntVar(&flags.chunkLength, "chunk-length", 0, "Seconds of audio per transcription chunk (default 60)")
	f.IntVar(&flags.minSilenceMS, "min-silence-ms", 0, "Minimum silence gap for VAD in milliseconds (default 2500)")
	f.StringVar(&flags.computeType, "compute-type", "", "Numeric precision mode for the model (default \"auto\")")
	f.StringVar(&flags.initialPrompt, "initial-prompt", "", "Seed prompt text (default \"transcribe\")")
	f.BoolVar(&flags.keepWAVFiles, "keep-wav-files", false, "Do not delete intermediate WAV files")
	f.BoolVar(&flags.fileCount, "file-count", false, "Print the discovered file count and exit")
	f.StringArrayVar(&flags.skip, "skip", nil, "File base name to skip (repeatable)")

	rootCmd.AddCommand(newQueueCommand(flags))
	rootCmd.AddCommand(newDepsCommand(flags))
	rootCmd.AddCommand(newConfigCommand(flags))

	return rootCmd
}

func runBatch(cmd *cobra.Command, flags *rootFlags) error {
	cfg, err := loadConfig(cmd, flags)
	if err != nil {
		return err
	}

	lang, err := language.Normalize(cfg.Transcription.Language)
	if err != nil {
		return err
	}
	cfg.Transcription.Language = lang

	if flags.fileCount {
		files, err := queue.Discover(cfg.Paths.Directory, flags.singleFile)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Total files to transcribe: %d\n", len(files))
		return nil
	}

	logger, err := logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		LogDir: cfg.Paths.LogDir,
	})
	if err != nil {
		return err
	}
	logger = logger.With(logging.String(logging.FieldRunID, uuid.NewString()))
	logger.Info("run configured",
		logging.String("model", cfg.Transcription.Model),
		logging.String("language", language.DisplayName(lang)),
		logging.String("directory", cfg.Paths.Directory),
	)

	runner := batch.New(buildOptions(cfg, flags), logger, media.NewConverter(logger))
	return runner.Run(cmd.Context())
}

// loadConfig resolves the layered run configuration: file values first,
// then any flag the operator explicitly set.
func loadConfig(cmd *cobra.Command, flags *rootFlags) (config.Config, error) {
	cfg, _, _, err := config.Load(flags.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if err := applyFlags(&cfg, flags, cmd.Flags().Changed); err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func applyFlags(cfg *config.Config, flags *rootFlags, changed func(string) bool) error {
	if flags.directory != "" {
		expanded, err := config.ExpandPath(flags.directory)
		if err != nil {
			return err
		}
		cfg.Paths.Directory = expanded
	}
	if flags.model != "" {
		cfg.Transcription.Model = flags.model
	}
	if flags.languageCode != "" {
		cfg.Transcription.Language = flags.languageCode
	}
	if flags.computeType != "" {
		cfg.Transcription.ComputeType = flags.computeType
	}
	if flags.initialPrompt != "" {
		cfg.Transcription.InitialPrompt = flags.initialPrompt
	}
	if flags.beamSize > 0 {
		cfg.Transcription.BeamSize = flags.beamSize
	}
	if flags.chunkLength > 0 {
		cfg.Transcription.ChunkLength = flags.chunkLength
	}
	if flags.minSilenceMS > 0 {
		cfg.Transcription.MinSilenceMS = flags.minSilenceMS
	}
	if changed("vad-filter") {
		cfg.Transcription.VADFilter = flags.vadFilter
	}
	if changed("keep-wav-files") {
		cfg.Output.KeepWAVFiles = flags.keepWAVFiles
	}
	cfg.Output.SkipFiles = append(cfg.Output.SkipFiles, flags.skip...)
	return nil
}
