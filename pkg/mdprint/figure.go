package mdprint

import (
	"fmt"
	"path/filepath"
	"strings"
)

// DefaultFormat is the image format used by Figures.Save.
const DefaultFormat = "svg"

// Figure is a plot held by a plotting library. Save writes it to path, with
// the image format taken from the path's extension. Close releases the
// plot; a closed figure is not saved again.
type Figure interface {
	Save(path string) error
	Close() error
}

// Recorder is notified after each figure is written.
type Recorder interface {
	Record(file string, seq int, format string) error
}

// Figures saves figures to numbered files that share one base name and
// emits an <img> block for each. The counter starts at 1 and grows by one
// per SaveAs call, whether or not the save succeeds, so a file name is never
// handed out twice by the same Figures.
type Figures struct {
	p        *Printer
	dir      string
	base     string
	counter  int
	recorder Recorder
}

// FigureOption configures a Figures.
type FigureOption func(*Figures)

// WithRecorder registers r to be called after every saved figure.
func WithRecorder(r Recorder) FigureOption {
	return func(f *Figures) {
		f.recorder = r
	}
}

// NewFigures returns a Figures writing <dir>/<base>-<n>.<format>.
func NewFigures(p *Printer, dir, base string, opts ...FigureOption) *Figures {
	f := &Figures{
		p:       p,
		dir:     dir,
		base:    base,
		counter: 1,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// ForScript binds figures to the file at path: images are written next to
// it and named after its stem ("docs/04-power.md" gives "docs/04-power-1.svg").
func ForScript(p *Printer, path string, opts ...FigureOption) *Figures {
	name := filepath.Base(path)
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	return NewFigures(p, filepath.Dir(path), stem, opts...)
}

// Base returns the base name figure files are derived from.
func (f *Figures) Base() string { return f.base }

// Dir returns the directory figure files are written to.
func (f *Figures) Dir() string { return f.dir }

// Next returns the number the next saved figure will carry.
func (f *Figures) Next() int { return f.counter }

// Save saves fig in DefaultFormat.
func (f *Figures) Save(fig Figure) error {
	return f.SaveAs(fig, DefaultFormat)
}

// SaveAs writes fig to the next numbered file with the given format
// extension, closes it, and emits a block referencing the file by name.
func (f *Figures) SaveAs(fig Figure, format string) error {
	format = strings.TrimPrefix(format, ".")
	seq := f.counter
	f.counter++

	name := fmt.Sprintf("%s-%d.%s", f.base, seq, format)
	if err := fig.Save(filepath.Join(f.dir, name)); err != nil {
		return fmt.Errorf("save figure %s: %w", name, err)
	}
	if err := fig.Close(); err != nil {
		return fmt.Errorf("close figure %s: %w", name, err)
	}
	if f.recorder != nil {
		if err := f.recorder.Record(name, seq, format); err != nil {
			return fmt.Errorf("record figure %s: %w", name, err)
		}
	}
	return f.p.Block(ImgTag(name))
}

// ImgTag returns an inline HTML image reference to src.
func ImgTag(src string) string {
	return fmt.Sprintf(`<img src="%s">`, src)
}
