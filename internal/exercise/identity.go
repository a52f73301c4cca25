package exercise

import (
	"fmt"
	"iter"
	"math"
	"strconv"

	"github.com/mesh-intelligence/mathdoc/pkg/mdprint"
)

// Formula is an expression in x with parameters a and b. It renders as
// LaTeX and can render again with a and b replaced by numbers.
type Formula struct {
	latex string
	at    func(a, b float64) string
}

// LaTeX implements mdprint.Expression.
func (f Formula) LaTeX() string { return f.latex }

// At returns the formula with a and b substituted.
func (f Formula) At(a, b float64) mdprint.Expression {
	return mdprint.Latex(f.at(a, b))
}

// Identity is a pair of formulas claimed to be equal.
type Identity struct {
	LHS, RHS Formula
}

// Point is one (a, b) substitution.
type Point struct {
	A, B float64
}

// Compare writes the identity as an expression block followed by a table
// of both sides evaluated at first and then at four random points.
func (s *Session) Compare(id Identity, first Point) error {
	if err := s.Printer.Expr(mdprint.Math(id.LHS), mdprint.Text("is equivalent to"), mdprint.Math(id.RHS)); err != nil {
		return err
	}
	return s.Printer.Table(s.compareRows(id, first))
}

func (s *Session) compareRows(id Identity, first Point) iter.Seq[mdprint.Row] {
	return func(yield func(mdprint.Row) bool) {
		header := mdprint.Header("a", "b", mdprint.Math(id.LHS).String(), mdprint.Math(id.RHS).String())
		if !yield(header) {
			return
		}
		points := []Point{first}
		for range 4 {
			points = append(points, Point{A: s.tenths(), B: s.tenths()})
		}
		for _, p := range points {
			row := mdprint.PreJoined(fmt.Sprintf("%s | %s | %s | %s",
				formatNumber(p.A), formatNumber(p.B),
				mdprint.Math(id.LHS.At(p.A, p.B)), mdprint.Math(id.RHS.At(p.A, p.B))))
			if !yield(row) {
				return
			}
		}
	}
}

// power renders x raised to exp after evaluation: 1, x, or x^{exp}.
func power(exp float64) string {
	switch exp {
	case 0:
		return "1"
	case 1:
		return "x"
	}
	return "x^{" + formatNumber(exp) + "}"
}

// formatNumber prints v with at most 12 significant digits so that sums
// like 3.4 + 7.3 print as 10.7.
func formatNumber(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'g', 12, 64), 64)
	return strconv.FormatFloat(r, 'g', -1, 64)
}

// formatComplex prints c as (re+imj).
func formatComplex(c complex128) string {
	im, sign := imag(c), "+"
	if math.Signbit(im) {
		im, sign = -im, "-"
	}
	return "(" + formatNumber(real(c)) + sign + formatNumber(im) + "j)"
}
