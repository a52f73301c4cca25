// Package exercise holds the tutorial exercises. Each exercise writes its
// section of a document through a Session: markdown blocks, identity
// comparisons, tables, and figures.
package exercise

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/mesh-intelligence/mathdoc/internal/numeric"
	"github.com/mesh-intelligence/mathdoc/pkg/mdprint"
	"github.com/mesh-intelligence/mathdoc/pkg/types"
)

// ErrUnknownExercise is returned by Lookup for a name that is not registered.
var ErrUnknownExercise = errors.New("unknown exercise")

// Session carries everything an exercise writes through. Build one per
// exercise run and pass it explicitly; it is not safe for concurrent use.
type Session struct {
	Printer *mdprint.Printer
	Figures *mdprint.Figures
	Rand    *rand.Rand

	// SampleSize is the length of random arrays.
	SampleSize int

	// Format is the figure image format; empty means mdprint.DefaultFormat.
	Format string

	// Log receives progress messages. Nil discards them.
	Log *log.Logger
}

// logf writes a progress message.
func (s *Session) logf(format string, args ...any) {
	if s.Log != nil {
		s.Log.Printf(format, args...)
	}
}

// SaveFigure saves fig in the session's format.
func (s *Session) SaveFigure(fig mdprint.Figure) error {
	if s.Format == "" {
		return s.Figures.Save(fig)
	}
	return s.Figures.SaveAs(fig, s.Format)
}

// rng returns the session's random source, creating a time-seeded one
// when none was set.
func (s *Session) rng() *rand.Rand {
	if s.Rand == nil {
		s.Rand = numeric.NewRand(0)
	}
	return s.Rand
}

// tenths draws one table value for an identity comparison.
func (s *Session) tenths() float64 {
	return numeric.Tenths(s.rng())
}

// sampleSize returns SampleSize or the default when unset.
func (s *Session) sampleSize() int {
	if s.SampleSize <= 0 {
		return types.DefaultSampleSize
	}
	return s.SampleSize
}

// Exercise is one document section generator.
type Exercise struct {
	// Name is the file stem of the generated document.
	Name  string
	Title string
	Run   func(s *Session) error
}

// registry lists exercises in document order.
var registry = []Exercise{
	powerAndLog,
}

// All returns every registered exercise in document order.
func All() []Exercise {
	return slices.Clone(registry)
}

// Names returns the registered exercise names.
func Names() []string {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.Name
	}
	return names
}

// Lookup returns the exercise called name.
func Lookup(name string) (Exercise, error) {
	for _, e := range registry {
		if e.Name == name {
			return e, nil
		}
	}
	return Exercise{}, fmt.Errorf("%w %q (valid: %s)", ErrUnknownExercise, name, strings.Join(Names(), ", "))
}

// NewLogger returns a logger prefixed like the CLI's messages, or one that
// discards output when verbose is false.
func NewLogger(w io.Writer, verbose bool) *log.Logger {
	if !verbose {
		w = io.Discard
	}
	return log.New(w, "mathdoc: ", 0)
}
