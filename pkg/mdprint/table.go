package mdprint

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Row is one line of a table: either a PreJoined line or Cells.
type Row interface {
	// cells returns the row split into column strings.
	cells() []string
	// line returns the row as it is printed.
	line() string
}

// PreJoined is a row that has already been joined with ColumnSeparator.
// It is printed verbatim.
type PreJoined string

func (r PreJoined) cells() []string { return strings.Split(string(r), ColumnSeparator) }
func (r PreJoined) line() string    { return string(r) }

// Cells is a row of column strings joined with ColumnSeparator on output.
type Cells []string

func (r Cells) cells() []string { return r }
func (r Cells) line() string    { return strings.Join(r, ColumnSeparator) }

// CellsOf converts each value to its default string form (fmt.Sprint).
// A Value renders the way it does in Expr.
func CellsOf(values ...any) Cells {
	c := make(Cells, len(values))
	for i, v := range values {
		c[i] = fmt.Sprint(v)
	}
	return c
}

// Header returns a header row from column labels.
func Header(labels ...string) Cells {
	return Cells(labels)
}

// Rows returns a sequence over the given rows.
func Rows(rows ...Row) iter.Seq[Row] {
	return slices.Values(rows)
}

// Table writes rows as one markdown table block. The first row produced is
// the header; a divider row of HeaderDivider cells with the same column
// count follows it. Every later row is printed with its own rule: PreJoined
// verbatim, Cells joined with ColumnSeparator.
//
// rows is consumed exactly once. Row widths are not checked against the
// header; uneven rows are printed as given.
func (p *Printer) Table(rows iter.Seq[Row]) error {
	var b strings.Builder
	header := true
	for r := range rows {
		if header {
			cols := r.cells()
			b.WriteString(strings.Join(cols, ColumnSeparator))
			b.WriteByte('\n')
			b.WriteString(divider(len(cols)))
			header = false
			continue
		}
		b.WriteByte('\n')
		b.WriteString(r.line())
	}
	if header {
		return ErrNoHeader
	}
	return p.Block(b.String())
}

func divider(n int) string {
	d := make([]string, n)
	for i := range d {
		d[i] = HeaderDivider
	}
	return strings.Join(d, ColumnSeparator)
}
