// Package deps checks the external collaborators a run depends on before
// any work starts.
package deps

import (
	"fmt"
	"os/exec"
	"strings"
)

// Requirement defines an external binary the pipeline shells out to.
type Requirement struct {
	Name        string
	Command     string
	Description string
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Description string
	Available   bool
	Detail      string
}

// Requirements lists the binaries a transcription run needs.
func Requirements() []Requirement {
	return []Requirement{
		{Name: "FFmpeg", Command: "ffmpeg", Description: "Converts inputs to mono 16 kHz WAV"},
		{Name: "uvx", Command: "uvx", Description: "Runs the faster-whisper worker"},
	}
}

// CheckBinaries evaluates the provided requirements against PATH.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		command := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     command,
			Description: strings.TrimSpace(req.Description),
		}
		if command == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		resolved, err := exec.LookPath(command)
		if err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", command)
			results = append(results, status)
			continue
		}
		status.Command = resolved
		status.Available = true
		results = append(results, status)
	}
	return results
}
