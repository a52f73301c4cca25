package mdprint

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Block markers and table syntax.
const (
	OpenMarker      = "<markdown>"
	CloseMarker     = "</markdown>"
	ColumnSeparator = " | "
	HeaderDivider   = "---"
)

// ErrNoHeader is returned by Table when the row sequence is empty.
var ErrNoHeader = errors.New("table has no header row")

// Printer writes markdown blocks to an underlying writer.
type Printer struct {
	w io.Writer
}

// New returns a Printer that writes to w.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Block writes text between the block markers, followed by a blank line.
// The text is not escaped; it must not contain CloseMarker.
func (p *Printer) Block(text string) error {
	if _, err := fmt.Fprintf(p.w, "%s\n%s\n%s\n\n", OpenMarker, text, CloseMarker); err != nil {
		return fmt.Errorf("write block: %w", err)
	}
	return nil
}

// Expr renders each value, joins the results with single spaces, and writes
// them as one block. Math values appear as $latex$; Text values unchanged.
//
//	p.Expr(mdprint.Math(lhs), mdprint.Text("is equivalent to"), mdprint.Math(rhs))
func (p *Printer) Expr(values ...Value) error {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = v.String()
	}
	return p.Block(strings.Join(parts, " "))
}
