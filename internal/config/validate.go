package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate reports the first invalid setting found. It checks values that
// would otherwise surface as confusing engine failures mid-run.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Transcription.Model) == "" {
		return errors.New("transcription.model must not be empty")
	}
	if strings.TrimSpace(c.Transcription.Language) == "" {
		return errors.New("transcription.language must not be empty")
	}
	if c.Transcription.BeamSize < 1 {
		return fmt.Errorf("transcription.beam_size must be at least 1, got %d", c.Transcription.BeamSize)
	}
	if c.Transcription.ChunkLength < 1 {
		return fmt.Errorf("transcription.chunk_length must be at least 1 second, got %d", c.Transcription.ChunkLength)
	}
	if c.Transcription.MinSilenceMS < 0 {
		return fmt.Errorf("transcription.min_silence_ms must not be negative, got %d", c.Transcription.MinSilenceMS)
	}
	if strings.TrimSpace(c.Transcription.ComputeType) == "" {
		return errors.New("transcription.compute_type must not be empty")
	}
	if strings.TrimSpace(c.Paths.Directory) == "" {
		return errors.New("paths.directory must not be empty")
	}
	for _, name := range c.Output.SkipFiles {
		if strings.ContainsRune(name, '/') {
			return fmt.Errorf("output.skip_files entries are matched by base name, %q must not contain a path separator", name)
		}
	}
	return nil
}
