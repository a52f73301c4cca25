package catalog

import (
	"fmt"

	"github.com/mesh-intelligence/mathdoc/pkg/mdprint"
	"github.com/mesh-intelligence/mathdoc/pkg/types"
)

// Recorder adds every figure saved by an mdprint.Figures to a catalog under
// one run of one exercise.
type Recorder struct {
	cat      types.Catalog
	exercise string
	runID    string
}

var _ mdprint.Recorder = (*Recorder)(nil)

// NewRecorder starts a run for exercise on cat.
func NewRecorder(cat types.Catalog, exercise string) (*Recorder, error) {
	runID, err := cat.BeginRun(exercise)
	if err != nil {
		return nil, fmt.Errorf("begin run: %w", err)
	}
	return &Recorder{cat: cat, exercise: exercise, runID: runID}, nil
}

// RunID returns the run every recorded figure is tagged with.
func (r *Recorder) RunID() string { return r.runID }

// Record implements mdprint.Recorder.
func (r *Recorder) Record(file string, seq int, format string) error {
	_, err := r.cat.Add(types.FigureRecord{
		RunID:    r.runID,
		Exercise: r.exercise,
		Seq:      seq,
		File:     file,
		Format:   format,
	})
	return err
}
