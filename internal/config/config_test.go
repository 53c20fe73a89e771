package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/JamesMcGahn/faster-folder/internal/config"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if want := filepath.Join(tempHome, ".config", "faster-folder", "config.toml"); resolved != want {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, want)
	}
	if cfg.Transcription.Model != "medium" {
		t.Fatalf("unexpected default model: %q", cfg.Transcription.Model)
	}
	if cfg.Transcription.BeamSize != 1 || cfg.Transcription.ChunkLength != 60 || cfg.Transcription.MinSilenceMS != 2500 {
		t.Fatalf("unexpected tuning defaults: %+v", cfg.Transcription)
	}
	if cfg.Transcription.VADFilter {
		t.Fatal("expected VAD filter disabled by default")
	}
	if cfg.Output.KeepWAVFiles {
		t.Fatal("expected keep_wav_files disabled by default")
	}
	if len(cfg.Output.SkipFiles) != 0 {
		t.Fatalf("expected empty skip list, got %v", cfg.Output.SkipFiles)
	}
	if !filepath.IsAbs(cfg.Paths.Directory) {
		t.Fatalf("expected normalized absolute directory, got %q", cfg.Paths.Directory)
	}
}

func TestLoadReadsFileAndExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	path := filepath.Join(tempHome, "ff.toml")
	content := strings.Join([]string{
		"[transcription]",
		`model = "large-v3"`,
		"beam_size = 5",
		"",
		"[paths]",
		`directory = "~/lectures"`,
		"",
		"[output]",
		"keep_wav_files = true",
		`skip_files = ["00. Professor.avi"]`,
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to be reported as present")
	}
	if cfg.Transcription.Model != "large-v3" {
		t.Fatalf("unexpected model: %q", cfg.Transcription.Model)
	}
	if cfg.Transcription.BeamSize != 5 {
		t.Fatalf("unexpected beam size: %d", cfg.Transcription.BeamSize)
	}
	// Unset values keep defaults.
	if cfg.Transcription.ChunkLength != 60 {
		t.Fatalf("expected default chunk length, got %d", cfg.Transcription.ChunkLength)
	}
	if want := filepath.Join(tempHome, "lectures"); cfg.Paths.Directory != want {
		t.Fatalf("unexpected directory: got %q want %q", cfg.Paths.Directory, want)
	}
	if !cfg.Output.KeepWAVFiles {
		t.Fatal("expected keep_wav_files true")
	}
	if len(cfg.Output.SkipFiles) != 1 || cfg.Output.SkipFiles[0] != "00. Professor.avi" {
		t.Fatalf("unexpected skip list: %v", cfg.Output.SkipFiles)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
		wantOK bool
	}{
		{name: "defaults valid", mutate: func(*config.Config) {}, wantOK: true},
		{name: "zero beam", mutate: func(c *config.Config) { c.Transcription.BeamSize = 0 }},
		{name: "zero chunk", mutate: func(c *config.Config) { c.Transcription.ChunkLength = 0 }},
		{name: "negative silence", mutate: func(c *config.Config) { c.Transcription.MinSilenceMS = -1 }},
		{name: "empty model", mutate: func(c *config.Config) { c.Transcription.Model = " " }},
		{name: "empty language", mutate: func(c *config.Config) { c.Transcription.Language = "" }},
		{name: "skip entry with separator", mutate: func(c *config.Config) { c.Output.SkipFiles = []string{"a/b.mp3"} }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantOK && err != nil {
				t.Fatalf("expected valid config, got %v", err)
			}
			if !tc.wantOK && err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestWriteSampleRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := config.WriteSample(path); err != nil {
		t.Fatalf("WriteSample: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "[transcription]") {
		t.Fatalf("sample missing transcription section: %q", string(data))
	}
	if err := config.WriteSample(path); err == nil {
		t.Fatal("expected overwrite refusal")
	}
}

func TestExpandPathTilde(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	got, err := config.ExpandPath("~/media")
	if err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	if want := filepath.Join(tempHome, "media"); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}
