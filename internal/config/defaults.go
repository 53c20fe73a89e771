package config

const (
	defaultModel         = "medium"
	defaultLanguage      = "en"
	defaultBeamSize      = 1
	defaultChunkLength   = 60
	defaultMinSilenceMS  = 2500
	defaultComputeType   = "auto"
	defaultInitialPrompt = "transcribe"
	defaultDirectory     = "."
	defaultLogLevel      = "info"
	defaultLogFormat     = "console"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Transcription: Transcription{
			Model:         defaultModel,
			Language:      defaultLanguage,
			BeamSize:      defaultBeamSize,
			ChunkLength:   defaultChunkLength,
			MinSilenceMS:  defaultMinSilenceMS,
			ComputeType:   defaultComputeType,
			InitialPrompt: defaultInitialPrompt,
		},
		Paths: Paths{
			Directory: defaultDirectory,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
