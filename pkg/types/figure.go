package types

import (
	"errors"
	"time"
)

// FigureRecord describes one figure file written during a run.
type FigureRecord struct {
	// ID is a UUID v7 assigned when the record is stored.
	ID string `json:"id"`

	// RunID groups the figures written by one exercise run.
	RunID string `json:"run_id"`

	// Exercise is the exercise name the figure belongs to; it is also the
	// base name of the file.
	Exercise string `json:"exercise"`

	// Seq is the figure counter value (1, 2, ...).
	Seq int `json:"seq"`

	// File is the file name relative to the output directory.
	File string `json:"file"`

	// Format is the image extension without the dot.
	Format string `json:"format"`

	CreatedAt time.Time `json:"created_at"`
}

// Validate checks the fields a catalog requires before storing a record.
func (r FigureRecord) Validate() error {
	switch {
	case r.Exercise == "":
		return ErrInvalidRecord
	case r.File == "":
		return ErrInvalidRecord
	case r.Seq < 1:
		return ErrInvalidRecord
	}
	return nil
}

// Catalog stores the figures written to an output directory.
type Catalog interface {
	// BeginRun returns a new run ID for exercise.
	BeginRun(exercise string) (string, error)

	// Add stores rec, assigning ID and CreatedAt when empty. Returns the ID.
	Add(rec FigureRecord) (string, error)

	// List returns the records for exercise, or all records when exercise
	// is empty, ordered by exercise, creation time, and sequence number.
	List(exercise string) ([]FigureRecord, error)

	// Forget removes the records for exercise (all when empty) and returns
	// what was removed.
	Forget(exercise string) ([]FigureRecord, error)

	// Close releases resources. Idempotent.
	Close() error
}

// Catalog errors.
var (
	ErrCatalogClosed = errors.New("catalog is closed")
	ErrInvalidRecord = errors.New("invalid figure record")
)
