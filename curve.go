package pcurve

import (
	"fmt"
	"iter"
)

// Curve describes a 2D curve parametrized by a [Param].
//
// Implementations must be pure: evaluating the same parameter twice yields the
// same point, and evaluation never modifies the curve. This makes every curve
// in this package safe for concurrent use and lets combinators share children.
type Curve interface {
	// Eval evaluates the curve at parameter t.
	Eval(t Param) Point
}

// CurveFunc adapts an ordinary function to the [Curve] interface.
type CurveFunc func(t Param) Point

// Eval implements Curve.
func (f CurveFunc) Eval(t Param) Point {
	return f(t)
}

// StartPoint returns the curve's point at [ParamStart].
func StartPoint(c Curve) Point {
	return c.Eval(ParamStart)
}

// EndPoint returns the curve's point at [ParamEnd].
func EndPoint(c Curve) Point {
	return c.Eval(ParamEnd)
}

// Samples returns an iterator over n+1 equally spaced parameters, from
// [ParamStart] to [ParamEnd] inclusive, and the curve's points at them.
//
// Samples panics if n < 1.
func Samples(c Curve, n int) iter.Seq2[Param, Point] {
	if n < 1 {
		panic(fmt.Sprintf("pcurve: Samples requires n >= 1, got %d", n))
	}
	return func(yield func(Param, Point) bool) {
		for i := range n + 1 {
			t := NewParam(float64(i) / float64(n))
			if !yield(t, c.Eval(t)) {
				return
			}
		}
	}
}

// Linspace returns n+1 points along the curve, evaluated at the equally
// spaced parameters i/n for i in 0..n. The first point is the curve's start
// point and the last its end point.
//
// Linspace panics if n < 1.
func Linspace(c Curve, n int) []Point {
	if n < 1 {
		panic(fmt.Sprintf("pcurve: Linspace requires n >= 1, got %d", n))
	}
	out := make([]Point, 0, n+1)
	for _, pt := range Samples(c, n) {
		out = append(out, pt)
	}
	return out
}
