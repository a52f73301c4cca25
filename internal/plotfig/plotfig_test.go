package plotfig

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/mathdoc/pkg/mdprint"
)

func TestScatter_SaveSVG(t *testing.T) {
	s, err := NewScatter("diff", []float64{0, 0.5, -0.25, 1e-16})
	require.NoError(t, err)
	require.NoError(t, s.ClampY(-1, 1))
	assert.Equal(t, "diff", s.Title())

	path := filepath.Join(t.TempDir(), "scatter.svg")
	require.NoError(t, s.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "<svg"), "expected svg output")
}

func TestScatter_SavePNG(t *testing.T) {
	s, err := NewScatter("", []float64{1, 2, 3})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "scatter.png")
	require.NoError(t, s.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))
}

func TestScatter_Closed(t *testing.T) {
	s, err := NewScatter("x", []float64{1})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	assert.ErrorIs(t, s.Save(filepath.Join(t.TempDir(), "x.svg")), ErrClosed)
	assert.ErrorIs(t, s.ClampY(0, 1), ErrClosed)
	assert.Empty(t, s.Title())
}

func TestScatter_WithFigures(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	figs := mdprint.NewFigures(mdprint.New(&buf), dir, "plot")

	s, err := NewScatter("x", []float64{0.1, 0.2})
	require.NoError(t, err)
	require.NoError(t, figs.Save(s))

	assert.FileExists(t, filepath.Join(dir, "plot-1.svg"))
	assert.ErrorIs(t, s.Save(filepath.Join(dir, "again.svg")), ErrClosed, "Figures closes the plot")
	assert.Equal(t, "<markdown>\n<img src=\"plot-1.svg\">\n</markdown>\n\n", buf.String())
}
