package mdprint

import "fmt"

// Expression is a symbolic expression that can render itself as LaTeX.
type Expression interface {
	LaTeX() string
}

// Value is a printable value accepted by Printer.Expr. The set of variants
// is closed: Text and the values returned by Math and Latex.
type Value interface {
	fmt.Stringer
	value()
}

// Text is printed unchanged.
type Text string

func (t Text) String() string { return string(t) }
func (Text) value()           {}

// mathValue renders an expression between inline-math delimiters.
type mathValue struct {
	e Expression
}

// Math wraps e so that it prints as $<latex>$.
func Math(e Expression) Value {
	return mathValue{e: e}
}

func (m mathValue) String() string { return InlineMath(m.e.LaTeX()) }
func (mathValue) value()           {}

// Latex is an Expression backed by an already-rendered LaTeX string.
type Latex string

// LaTeX implements Expression.
func (l Latex) LaTeX() string { return string(l) }

// InlineMath wraps latex in $ delimiters.
func InlineMath(latex string) string {
	return "$" + latex + "$"
}
