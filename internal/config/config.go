package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Transcription holds tuning parameters forwarded to the speech engine.
type Transcription struct {
	Model         string `toml:"model"`
	Language      string `toml:"language"`
	BeamSize      int    `toml:"beam_size"`
	ChunkLength   int    `toml:"chunk_length"`
	MinSilenceMS  int    `toml:"min_silence_ms"`
	ComputeType   string `toml:"compute_type"`
	InitialPrompt string `toml:"initial_prompt"`
	VADFilter     bool   `toml:"vad_filter"`
}

// Paths holds directory configuration.
type Paths struct {
	Directory string `toml:"directory"`
	LogDir    string `toml:"log_dir"`
}

// Output holds output and cleanup configuration.
type Output struct {
	KeepWAVFiles bool     `toml:"keep_wav_files"`
	SkipFiles    []string `toml:"skip_files"`
}

// Logging holds logger configuration.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Config is the root configuration document.
type Config struct {
	Transcription Transcription `toml:"transcription"`
	Paths         Paths         `toml:"paths"`
	Output        Output        `toml:"output"`
	Logging       Logging       `toml:"logging"`
}

// DefaultConfigPath returns the conventional config file location.
func DefaultConfigPath() (string, error) {
	return ExpandPath("~/.config/faster-folder/config.toml")
}

// Load reads the config file at path, or the default location when path is
// empty. It returns the effective config, the resolved path, and whether a
// file existed there. A missing file yields defaults without error.
func Load(path string) (Config, string, bool, error) {
	resolved := strings.TrimSpace(path)
	var err error
	if resolved == "" {
		resolved, err = DefaultConfigPath()
	} else {
		resolved, err = ExpandPath(resolved)
	}
	if err != nil {
		return Config{}, "", false, err
	}

	cfg := Default()
	data, err := os.ReadFile(resolved)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err := cfg.normalize(); err != nil {
			return Config{}, resolved, false, err
		}
		return cfg, resolved, false, nil
	case err != nil:
		return Config{}, resolved, false, fmt.Errorf("read config %s: %w", resolved, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, resolved, true, fmt.Errorf("parse config %s: %w", resolved, err)
	}
	if err := cfg.normalize(); err != nil {
		return Config{}, resolved, true, err
	}
	return cfg, resolved, true, nil
}

// WriteSample writes the embedded sample configuration to path, creating
// parent directories. It refuses to overwrite an existing file.
func WriteSample(path string) error {
	resolved, err := ExpandPath(path)
	if err != nil {
		return err
	}
	if _, err := os.Stat(resolved); err == nil {
		return fmt.Errorf("config file already exists at %s", resolved)
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	return os.WriteFile(resolved, []byte(sampleConfig), 0o644)
}

// Render marshals the config back to TOML for display.
func (c Config) Render() (string, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("render config: %w", err)
	}
	return string(data), nil
}

func (c *Config) normalize() error {
	expanded, err := ExpandPath(c.Paths.Directory)
	if err != nil {
		return err
	}
	c.Paths.Directory = expanded
	if strings.TrimSpace(c.Paths.LogDir) != "" {
		expanded, err = ExpandPath(c.Paths.LogDir)
		if err != nil {
			return err
		}
		c.Paths.LogDir = expanded
	}
	return nil
}

// ExpandPath resolves a leading tilde against the current user's home
// directory and returns an absolute path.
func ExpandPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", errors.New("empty path")
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve path %s: %w", path, err)
	}
	return abs, nil
}
