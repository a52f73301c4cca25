// Package plotfig adapts gonum/plot figures to mdprint.Figure.
package plotfig

import (
	"errors"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/mesh-intelligence/mathdoc/pkg/mdprint"
)

// Figure size on save.
const (
	Width  = 6 * vg.Inch
	Height = 4 * vg.Inch
)

// ErrClosed is returned when saving a figure after Close.
var ErrClosed = errors.New("figure is closed")

// Scatter is a point plot of a series against its index.
type Scatter struct {
	p *plot.Plot
}

var _ mdprint.Figure = (*Scatter)(nil)

// NewScatter plots ys[i] at x = i with small dot markers.
func NewScatter(title string, ys []float64) (*Scatter, error) {
	pts := make(plotter.XYs, len(ys))
	for i, y := range ys {
		pts[i].X = float64(i)
		pts[i].Y = y
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, fmt.Errorf("new scatter: %w", err)
	}
	s.GlyphStyle.Radius = vg.Points(1.5)

	p := plot.New()
	p.Title.Text = title
	p.Add(s, plotter.NewGrid())
	return &Scatter{p: p}, nil
}

// ClampY fixes the y-axis range to [min, max].
func (s *Scatter) ClampY(min, max float64) error {
	if s.p == nil {
		return ErrClosed
	}
	s.p.Y.Min = min
	s.p.Y.Max = max
	return nil
}

// Title returns the plot title.
func (s *Scatter) Title() string {
	if s.p == nil {
		return ""
	}
	return s.p.Title.Text
}

// Save writes the plot to path; the format follows the file extension.
func (s *Scatter) Save(path string) error {
	if s.p == nil {
		return ErrClosed
	}
	return s.p.Save(Width, Height, path)
}

// Close drops the plot. Further saves return ErrClosed.
func (s *Scatter) Close() error {
	s.p = nil
	return nil
}
