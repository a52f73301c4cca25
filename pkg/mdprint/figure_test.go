package mdprint

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFigure writes a placeholder file and tracks Close calls.
type fakeFigure struct {
	saveErr error
	saved   []string
	closed  bool
}

func (f *fakeFigure) Save(path string) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, path)
	return os.WriteFile(path, []byte("<svg/>"), 0o644)
}

func (f *fakeFigure) Close() error {
	f.closed = true
	return nil
}

type recorded struct {
	file   string
	seq    int
	format string
}

type fakeRecorder struct {
	entries []recorded
}

func (r *fakeRecorder) Record(file string, seq int, format string) error {
	r.entries = append(r.entries, recorded{file, seq, format})
	return nil
}

func TestFigures_SaveNumbersSequentially(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	figs := NewFigures(New(&buf), dir, "report")

	var want string
	for i, name := range []string{"report-1.svg", "report-2.svg", "report-3.svg"} {
		fig := &fakeFigure{}
		require.NoError(t, figs.Save(fig))

		assert.Equal(t, []string{filepath.Join(dir, name)}, fig.saved)
		assert.True(t, fig.closed, "figure %d not closed", i+1)
		assert.FileExists(t, filepath.Join(dir, name))
		want += "<markdown>\n<img src=\"" + name + "\">\n</markdown>\n\n"
	}
	assert.Equal(t, want, buf.String())
	assert.Equal(t, 4, figs.Next())
}

func TestFigures_CounterSharedAcrossFormats(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	rec := &fakeRecorder{}
	figs := NewFigures(New(&buf), dir, "plots", WithRecorder(rec))

	require.NoError(t, figs.SaveAs(&fakeFigure{}, "png"))
	require.NoError(t, figs.Save(&fakeFigure{}))
	require.NoError(t, figs.SaveAs(&fakeFigure{}, ".pdf"))

	assert.Equal(t, []recorded{
		{"plots-1.png", 1, "png"},
		{"plots-2.svg", 2, "svg"},
		{"plots-3.pdf", 3, "pdf"},
	}, rec.entries)
}

func TestFigures_FailedSaveStillConsumesNumber(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	figs := NewFigures(New(&buf), dir, "report")

	boom := errors.New("no active figure")
	err := figs.Save(&fakeFigure{saveErr: boom})
	require.ErrorIs(t, err, boom)
	assert.Empty(t, buf.String())

	fig := &fakeFigure{}
	require.NoError(t, figs.Save(fig))
	assert.Equal(t, []string{filepath.Join(dir, "report-2.svg")}, fig.saved)
}

func TestForScript(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	figs := ForScript(New(&buf), filepath.Join(dir, "04-power-and-log.md"))

	assert.Equal(t, "04-power-and-log", figs.Base())
	assert.Equal(t, dir, figs.Dir())

	require.NoError(t, figs.Save(&fakeFigure{}))
	assert.FileExists(t, filepath.Join(dir, "04-power-and-log-1.svg"))
	assert.Contains(t, buf.String(), `<img src="04-power-and-log-1.svg">`)
	assert.NotContains(t, buf.String(), dir)
}

func TestFigures_InstancesIndependent(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	p := New(&buf)
	a := NewFigures(p, dir, "a")
	b := NewFigures(p, dir, "b")

	require.NoError(t, a.Save(&fakeFigure{}))
	require.NoError(t, a.Save(&fakeFigure{}))
	require.NoError(t, b.Save(&fakeFigure{}))

	assert.Equal(t, 3, a.Next())
	assert.Equal(t, 2, b.Next())
	assert.FileExists(t, filepath.Join(dir, "b-1.svg"))
}
