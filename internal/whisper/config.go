package whisper

// Config captures the per-run tuning forwarded to the engine. The task is
// always "transcribe" and word-level timestamps are never requested.
type Config struct {
	Model         string
	ComputeType   string
	Language      string
	ChunkLength   int
	BeamSize      int
	MinSilenceMS  int
	VADFilter     bool
	InitialPrompt string
}

const (
	// DefaultModel is the engine model used when none is configured.
	DefaultModel = "medium"

	// UVXCommand launches the worker inside an ephemeral faster-whisper
	// environment.
	UVXCommand    = "uvx"
	enginePackage = "faster-whisper"
)
