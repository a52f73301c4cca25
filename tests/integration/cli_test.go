package integration

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMain builds the mathdoc binary once before running tests.
func TestMain(m *testing.M) {
	projectRoot, err := FindProjectRoot()
	if err != nil {
		buildErr = err
		os.Exit(1)
	}

	tmpDir, err := os.MkdirTemp("", "mathdoc-test-*")
	if err != nil {
		buildErr = err
		os.Exit(1)
	}
	mathdocBin = filepath.Join(tmpDir, "mathdoc")

	cmd := exec.Command("go", "build", "-o", mathdocBin, "./cmd/mathdoc")
	cmd.Dir = projectRoot
	if output, err := cmd.CombinedOutput(); err != nil {
		buildErr = &BuildError{Err: err, Output: string(output)}
		os.Exit(1)
	}

	code := m.Run()
	os.RemoveAll(tmpDir)
	os.Exit(code)
}

func TestVersionSkipsConfig(t *testing.T) {
	env := NewTestEnv(t)
	result := env.MustRun("version")
	assert.True(t, strings.HasPrefix(result.Stdout, "mathdoc v"))
	assert.NoDirExists(t, env.OutputDir)
}

func TestRenderTutorial(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRun("init")

	result := env.MustRun("run", "--verbose")
	doc := filepath.Join(env.OutputDir, "04-power-and-log.md")
	assert.Equal(t, doc+"\n", result.Stdout)
	assert.Contains(t, result.Stderr, "mathdoc: 04-power-and-log: power of log")

	data, err := os.ReadFile(doc)
	require.NoError(t, err)
	text := string(data)

	assert.Equal(t, strings.Count(text, "<markdown>\n"), strings.Count(text, "</markdown>\n\n"))
	assert.Contains(t, text, "<markdown>\n$x^{a} x^{b}$ is equivalent to $x^{a + b}$\n</markdown>\n\n")
	assert.Contains(t, text, "a | b | $x^{a} x^{b}$ | $x^{a + b}$\n--- | --- | --- | ---\n3.4 | 7.3 | $x^{10.7}$ | $x^{10.7}$\n")

	figs := ParseJSON[[]Figure](t, env.MustRun("figures", "--json").Stdout)
	require.Len(t, figs, 3)
	for i, f := range figs {
		assert.Equal(t, i+1, f.Seq)
		assert.Contains(t, text, `<img src="`+f.File+`">`)
		assert.FileExists(t, filepath.Join(env.OutputDir, f.File))
	}

	// The seed in config.yaml makes regeneration byte-identical.
	env.MustRun("run")
	again, err := os.ReadFile(doc)
	require.NoError(t, err)
	assert.Equal(t, text, string(again))
}

func TestUnknownExerciseExitCode(t *testing.T) {
	env := NewTestEnv(t)
	result := env.Run("run", "99-missing")
	assert.Equal(t, 1, result.ExitCode)
	assert.Contains(t, result.Stderr, "unknown exercise")
}

func TestCleanRemovesFigures(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRun("run", "--format", "png")

	result := env.MustRun("clean", "04-power-and-log")
	assert.Equal(t, "removed 3 figure(s)\n", result.Stdout)

	matches, err := filepath.Glob(filepath.Join(env.OutputDir, "*.png"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}
