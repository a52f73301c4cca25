package catalog

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/mathdoc/pkg/mdprint"
)

type stubFigure struct{}

func (stubFigure) Save(path string) error { return os.WriteFile(path, []byte("x"), 0o644) }
func (stubFigure) Close() error           { return nil }

func TestRecorder_TagsFiguresWithRun(t *testing.T) {
	out := t.TempDir()
	c, err := OpenFor(out)
	require.NoError(t, err)
	defer c.Close()

	rec, err := NewRecorder(c, "report")
	require.NoError(t, err)

	var buf bytes.Buffer
	figs := mdprint.NewFigures(mdprint.New(&buf), out, "report", mdprint.WithRecorder(rec))
	require.NoError(t, figs.Save(stubFigure{}))
	require.NoError(t, figs.SaveAs(stubFigure{}, "png"))

	recs, err := c.List("report")
	require.NoError(t, err)
	require.Len(t, recs, 2)
	for i, r := range recs {
		assert.Equal(t, rec.RunID(), r.RunID)
		assert.Equal(t, i+1, r.Seq)
	}
	assert.Equal(t, "report-1.svg", recs[0].File)
	assert.Equal(t, "report-2.png", recs[1].File)
}

func TestNewRecorder_EmptyExercise(t *testing.T) {
	c, err := Open(t.TempDir())
	require.NoError(t, err)
	defer c.Close()

	_, err = NewRecorder(c, "")
	assert.Error(t, err)
}
