package pcurve

import (
	"fmt"
	"math"
)

// Concat joins curves end to end. Each of the N curves owns an equal 1/N
// slice of the parameter range, in order, and sweeps its own full range
// within that slice.
//
// Concat must contain at least one curve. The same curve may appear more than
// once, or under other combinators, as curves are never modified.
type Concat struct {
	Curves []Curve
}

var _ Curve = Concat{}

// NewConcat returns the concatenation of curves. It panics if no curves are
// given.
func NewConcat(curves ...Curve) Concat {
	if len(curves) == 0 {
		panic("pcurve: Concat has no curves")
	}
	return Concat{Curves: curves}
}

// Eval implements Curve. It panics if c has no curves.
func (c Concat) Eval(t Param) Point {
	if len(c.Curves) == 0 {
		panic("pcurve: Concat has no curves")
	}
	return evalPieces(len(c.Curves), t, func(i int, t Param) Point {
		return c.Curves[i].Eval(t)
	})
}

// Repeat plays a curve N times in a row. It is equivalent to a [Concat] of N
// references to the same curve: for k in [0, N) and x in [0, 1], evaluating
// at (k+x)/N yields the curve's point at x.
type Repeat struct {
	Curve Curve
	N     int
}

var _ Curve = Repeat{}

// Eval implements Curve. It panics if N < 1.
func (r Repeat) Eval(t Param) Point {
	if r.N < 1 {
		panic(fmt.Sprintf("pcurve: Repeat requires N >= 1, got %d", r.N))
	}
	return evalPieces(r.N, t, func(_ int, t Param) Point {
		return r.Curve.Eval(t)
	})
}

// Concat returns the equivalent concatenation, holding N references to the
// repeated curve. It panics if N < 1.
func (r Repeat) Concat() Concat {
	if r.N < 1 {
		panic(fmt.Sprintf("pcurve: Repeat requires N >= 1, got %d", r.N))
	}
	curves := make([]Curve, r.N)
	for i := range curves {
		curves[i] = r.Curve
	}
	return Concat{Curves: curves}
}

// evalPieces maps t onto one of n equally wide pieces of the parameter range
// and evaluates that piece at the remapped parameter. The exact boundaries
// map to the start of the first piece and the end of the last one, without
// any rounding.
func evalPieces(n int, t Param, eval func(i int, t Param) Point) Point {
	switch {
	case t.IsStart():
		return eval(0, t)
	case t.IsEnd():
		return eval(n-1, t)
	}
	gap := 1 / float64(n)
	i := min(int(math.Floor(float64(n)*t.Value())), n-1)
	local := (t.Value() - float64(i)*gap) / gap
	return eval(i, NewParam(local))
}
