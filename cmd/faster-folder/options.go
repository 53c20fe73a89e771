package main

import (
	"github.com/JamesMcGahn/faster-folder/internal/batch"
	"github.com/JamesMcGahn/faster-folder/internal/config"
	"github.com/JamesMcGahn/faster-folder/internal/whisper"
)

func buildOptions(cfg config.Config, flags *rootFlags) batch.Options {
	return batch.Options{
		Directory:    cfg.Paths.Directory,
		SingleFile:   flags.singleFile,
		Start:        flags.start,
		ConvertOnly:  flags.convertOnly,
		KeepWAVFiles: cfg.Output.KeepWAVFiles,
		SkipFiles:    cfg.Output.SkipFiles,
		Engine: whisper.Config{
			Model:         cfg.Transcription.Model,
			ComputeType:   cfg.Transcription.ComputeType,
			Language:      cfg.Transcription.Language,
			ChunkLength:   cfg.Transcription.ChunkLength,
			BeamSize:      cfg.Transcription.BeamSize,
			MinSilenceMS:  cfg.Transcription.MinSilenceMS,
			VADFilter:     cfg.Transcription.VADFilter,
			InitialPrompt: cfg.Transcription.InitialPrompt,
		},
	}
}
