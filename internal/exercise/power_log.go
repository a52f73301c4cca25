package exercise

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/mesh-intelligence/mathdoc/internal/numeric"
	"github.com/mesh-intelligence/mathdoc/internal/plotfig"
	"github.com/mesh-intelligence/mathdoc/pkg/mdprint"
)

const (
	powerAndLogName  = "04-power-and-log"
	powerAndLogTitle = "Functions: Power and log"
)

var powerAndLog = Exercise{
	Name:  powerAndLogName,
	Title: powerAndLogTitle,
	Run:   runPowerAndLog,
}

// Identities compared symbolically in the power-and-log exercise.
var (
	addingPowers = Identity{
		LHS: Formula{latex: `x^{a} x^{b}`, at: func(a, b float64) string { return power(a + b) }},
		RHS: Formula{latex: `x^{a + b}`, at: func(a, b float64) string { return power(a + b) }},
	}
	subtractingPowers = Identity{
		LHS: Formula{latex: `\frac{x^{a}}{x^{b}}`, at: func(a, b float64) string { return power(a - b) }},
		RHS: Formula{latex: `x^{a - b}`, at: func(a, b float64) string { return power(a - b) }},
	}
	// Combining the exponents holds for positive x.
	powersUponPowers = Identity{
		LHS: Formula{latex: `\left(x^{a}\right)^{b}`, at: func(a, b float64) string { return power(a * b) }},
		RHS: Formula{latex: `x^{a b}`, at: func(a, b float64) string { return power(a * b) }},
	}
)

// arrayIdentity is a logarithm rule checked numerically on integer arrays.
type arrayIdentity struct {
	lhsLabel, rhsLabel string
	lhs, rhs           func(a, b []float64) []float64
}

var logIdentities = []arrayIdentity{
	{
		lhsLabel: "ln(a xx b)",
		rhsLabel: "ln(a) + ln(b)",
		lhs:      func(a, b []float64) []float64 { return numeric.Log(numeric.Mul(a, b)) },
		rhs:      func(a, b []float64) []float64 { return numeric.Add(numeric.Log(a), numeric.Log(b)) },
	},
	{
		lhsLabel: "ln(a^b)",
		rhsLabel: "b ln(a)",
		lhs:      func(a, b []float64) []float64 { return numeric.Log(numeric.Pow(a, b)) },
		rhs:      func(a, b []float64) []float64 { return numeric.Mul(b, numeric.Log(a)) },
	},
	{
		lhsLabel: "ln(a/b)",
		rhsLabel: "ln(a)-ln(b)",
		lhs:      func(a, b []float64) []float64 { return numeric.Log(numeric.Div(a, b)) },
		rhs:      func(a, b []float64) []float64 { return numeric.Sub(numeric.Log(a), numeric.Log(b)) },
	},
}

// Rows shown per numeric comparison table, and the y range of its plot.
const (
	arrayRows = 6
	diffLimit = 1.0
)

func runPowerAndLog(s *Session) error {
	steps := []struct {
		name string
		run  func(*Session) error
	}{
		{"title", func(s *Session) error { return s.Printer.Block("# " + powerAndLogTitle) }},
		{"zero to the zero", zeroToZero},
		{"adding powers", func(s *Session) error {
			return s.section("Exercise 1: Adding powers", addingPowers, Point{3.4, 7.3})
		}},
		{"subtracting powers", func(s *Session) error {
			return s.section("Exercise 2: Subtracting powers", subtractingPowers, Point{4, 4})
		}},
		{"powers upon powers", func(s *Session) error {
			return s.section("Exercise 3: Powers upon powers", powersUponPowers, Point{3, 7})
		}},
		{"negative base", negativeBase},
		{"power of log", powerOfLog},
	}
	for _, step := range steps {
		s.logf("%s: %s", powerAndLogName, step.name)
		if err := step.run(s); err != nil {
			return fmt.Errorf("%s: %w", step.name, err)
		}
	}
	return nil
}

// section writes a heading and compares id.
func (s *Session) section(heading string, id Identity, first Point) error {
	if err := s.Printer.Block("## " + heading); err != nil {
		return err
	}
	return s.Compare(id, first)
}

func zeroToZero(s *Session) error {
	if err := s.Printer.Block("## What is " + asciiMath("0^0") + "?"); err != nil {
		return err
	}
	return s.Printer.Block(fmt.Sprintf(
		"It has been a point of contention, but mathematicians hashed it out and decided that %s.",
		asciiMath("0^0 = "+formatNumber(math.Pow(0, 0)))))
}

func negativeBase(s *Session) error {
	e := powersUponPowers.LHS
	x, a, b := -2.0, 4.1, -0.3
	nested := cmplx.Pow(cmplx.Pow(complex(x, 0), complex(a, 0)), complex(b, 0))
	combined := cmplx.Pow(complex(x, 0), complex(a*b, 0))

	text := fmt.Sprintf(`In general, simplifying %s will result in the same expression.

Combining the exponents into %s is only valid when %s is positive.

For %s:

%s = %s

%s = %s`,
		mdprint.Math(e), mdprint.Math(powersUponPowers.RHS), mdprint.InlineMath("x"),
		asciiMath("x = -2, a = 4.1, b = -0.3"),
		asciiMath("(-2^4.1)^{-0.3}"), formatComplex(nested),
		asciiMath("-2^(4.1 xx -0.3)"), formatComplex(combined),
	)
	return s.Printer.Block(text)
}

func powerOfLog(s *Session) error {
	if err := s.Printer.Block("## Exercise 4: The power of log"); err != nil {
		return err
	}
	n := s.sampleSize()
	a, err := numeric.RandInts(s.rng(), 1, 20, n)
	if err != nil {
		return err
	}
	b, err := numeric.RandInts(s.rng(), 1, 20, n)
	if err != nil {
		return err
	}
	for _, id := range logIdentities {
		if err := s.CompareArrays(a, b, id.lhs(a, b), id.rhs(a, b), id.lhsLabel, id.rhsLabel); err != nil {
			return fmt.Errorf("%s: %w", id.lhsLabel, err)
		}
	}
	return nil
}

// CompareArrays writes fa = fb as a formula block, a table of the first
// rows with their absolute difference, and a scatter plot of fa - fb.
func (s *Session) CompareArrays(a, b, fa, fb []float64, faLabel, fbLabel string) error {
	equation := faLabel + " = " + fbLabel
	if err := s.Printer.Block(asciiMath(equation)); err != nil {
		return err
	}

	rows := []mdprint.Row{
		mdprint.Header("a", "b", asciiMath(faLabel), asciiMath(fbLabel), "diff"),
	}
	for i := range min(arrayRows, len(a), len(b), len(fa), len(fb)) {
		rows = append(rows, mdprint.PreJoined(fmt.Sprintf("%s | %s | %.3f | %.3f | %.5f",
			formatNumber(a[i]), formatNumber(b[i]), fa[i], fb[i], math.Abs(fa[i]-fb[i]))))
	}
	if err := s.Printer.Table(mdprint.Rows(rows...)); err != nil {
		return err
	}

	fig, err := plotfig.NewScatter(equation, numeric.Sub(fa, fb))
	if err != nil {
		return err
	}
	if err := fig.ClampY(-diffLimit, diffLimit); err != nil {
		return err
	}
	return s.SaveFigure(fig)
}

// asciiMath wraps s in the tutorial's AsciiMath delimiters.
func asciiMath(s string) string {
	return "◊" + s + "◊"
}
