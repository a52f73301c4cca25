// Package integration provides end-to-end tests that drive the built
// mathdoc binary.
package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

var (
	// mathdocBin is the path to the built mathdoc binary.
	mathdocBin string
	// buildErr captures any build error.
	buildErr error
)

// BuildError wraps a build error with output.
type BuildError struct {
	Err    error
	Output string
}

func (e *BuildError) Error() string {
	return e.Err.Error() + ": " + e.Output
}

// FindProjectRoot finds the project root by walking up and looking for go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// TestEnv provides an isolated environment with its own config and output directory.
type TestEnv struct {
	t         *testing.T
	TempDir   string
	ConfigDir string
	OutputDir string
}

// NewTestEnv creates a new isolated test environment with a config.yaml
// that fixes the seed and sample size.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	if buildErr != nil {
		t.Fatalf("failed to build mathdoc: %v", buildErr)
	}
	if mathdocBin == "" {
		t.Fatal("mathdoc binary not built (mathdocBin is empty)")
	}

	tempDir := t.TempDir()
	configDir := filepath.Join(tempDir, "config")
	outputDir := filepath.Join(tempDir, "docs")

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	configContent := "output_dir: " + outputDir + "\nseed: 42\nsample_size: 50\n"
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(configContent), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	return &TestEnv{
		t:         t,
		TempDir:   tempDir,
		ConfigDir: configDir,
		OutputDir: outputDir,
	}
}

// CmdResult holds the result of a mathdoc command execution.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Run executes the mathdoc CLI with the env's config directory.
func (e *TestEnv) Run(args ...string) CmdResult {
	e.t.Helper()

	allArgs := append([]string{"--config-dir", e.ConfigDir}, args...)
	cmd := exec.Command(mathdocBin, allArgs...)
	cmd.Env = append(os.Environ(), "MATHDOC_CONFIG_DIR=", "MATHDOC_OUTPUT_DIR=")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			e.t.Fatalf("failed to run mathdoc: %v", err)
		}
	}

	return CmdResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

// MustRun executes the mathdoc CLI and fails the test on a non-zero exit.
func (e *TestEnv) MustRun(args ...string) CmdResult {
	e.t.Helper()
	result := e.Run(args...)
	if result.ExitCode != 0 {
		e.t.Fatalf("mathdoc %v failed with exit code %d:\nstdout: %s\nstderr: %s",
			args, result.ExitCode, result.Stdout, result.Stderr)
	}
	return result
}

// ParseJSON parses JSON output into the target type.
func ParseJSON[T any](t *testing.T, jsonStr string) T {
	t.Helper()
	var result T
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		t.Fatalf("failed to parse JSON %q: %v", jsonStr, err)
	}
	return result
}

// Figure mirrors the JSON form of a catalog record.
type Figure struct {
	ID       string `json:"id"`
	RunID    string `json:"run_id"`
	Exercise string `json:"exercise"`
	Seq      int    `json:"seq"`
	File     string `json:"file"`
	Format   string `json:"format"`
}
