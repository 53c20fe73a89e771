package deps_test

import (
	"path/filepath"
	"testing"

	"github.com/JamesMcGahn/faster-folder/internal/deps"
)

func TestCheckBinaries(t *testing.T) {
	results := deps.CheckBinaries([]deps.Requirement{
		{Name: "Shell", Command: "sh", Description: "always present"},
		{Name: "Bogus", Command: "faster-folder-no-such-binary"},
		{Name: "Unset", Command: " "},
	})
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if !results[0].Available {
		t.Fatalf("sh should resolve: %+v", results[0])
	}
	if results[1].Available {
		t.Fatalf("bogus binary should not resolve: %+v", results[1])
	}
	if results[2].Available || results[2].Detail != "command not configured" {
		t.Fatalf("blank command should be reported unconfigured: %+v", results[2])
	}
}

func TestRequirementsCoverPipelineTools(t *testing.T) {
	var names []string
	for _, req := range deps.Requirements() {
		names = append(names, req.Command)
	}
	want := map[string]bool{"ffmpeg": false, "uvx": false}
	for _, name := range names {
		if _, ok := want[name]; ok {
			want[name] = true
		}
	}
	for name, seen := range want {
		if !seen {
			t.Errorf("requirement %q missing from %v", name, names)
		}
	}
}

func TestCheckDirectory(t *testing.T) {
	dir := t.TempDir()
	status := deps.CheckDirectory(dir)
	if !status.Available {
		t.Fatalf("temp dir should pass: %+v", status)
	}

	if status := deps.CheckDirectory(filepath.Join(dir, "missing")); status.Available {
		t.Fatalf("missing dir should fail: %+v", status)
	}
}
