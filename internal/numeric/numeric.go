// Package numeric provides the elementwise array helpers numeric exercises
// use. Arithmetic is delegated to gonum's floats package; every function
// returns a new slice and leaves its inputs untouched.
package numeric

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
)

// NewRand returns a PCG random source. A zero seed draws one from the
// runtime's random source.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// RandInts returns n integers drawn uniformly from [lo, hi).
func RandInts(rng *rand.Rand, lo, hi, n int) ([]float64, error) {
	if hi <= lo {
		return nil, fmt.Errorf("empty range [%d, %d)", lo, hi)
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(lo + rng.IntN(hi-lo))
	}
	return out, nil
}

// Tenths returns an integer drawn from [0, 100] divided by 10.
func Tenths(rng *rand.Rand) float64 {
	return float64(rng.IntN(101)) / 10
}

// Add returns a + b.
func Add(a, b []float64) []float64 {
	return floats.AddTo(make([]float64, len(a)), a, b)
}

// Sub returns a - b.
func Sub(a, b []float64) []float64 {
	return floats.SubTo(make([]float64, len(a)), a, b)
}

// Mul returns a * b.
func Mul(a, b []float64) []float64 {
	return floats.MulTo(make([]float64, len(a)), a, b)
}

// Div returns a / b.
func Div(a, b []float64) []float64 {
	return floats.DivTo(make([]float64, len(a)), a, b)
}

// Log returns the natural logarithm of each element.
func Log(a []float64) []float64 {
	return apply(a, math.Log)
}

// Pow returns a[i] raised to b[i].
func Pow(a, b []float64) []float64 {
	if len(a) != len(b) {
		panic("numeric: slice lengths do not match")
	}
	out := make([]float64, len(a))
	for i := range a {
		out[i] = math.Pow(a[i], b[i])
	}
	return out
}

// Abs returns |a[i]|.
func Abs(a []float64) []float64 {
	return apply(a, math.Abs)
}

// AbsDiff returns |a[i] - b[i]|.
func AbsDiff(a, b []float64) []float64 {
	return Abs(Sub(a, b))
}

// MaxAbsDiff returns the largest |a[i] - b[i]|, or 0 for empty input.
func MaxAbsDiff(a, b []float64) float64 {
	if len(a) == 0 {
		return 0
	}
	return floats.Max(AbsDiff(a, b))
}

func apply(a []float64, f func(float64) float64) []float64 {
	out := make([]float64, len(a))
	for i, v := range a {
		out[i] = f(v)
	}
	return out
}
