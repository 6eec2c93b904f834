package pcurve

import (
	"math"
	"testing"
)

// bernstein evaluates the Bézier curve with control points pts in Bernstein
// form, independently of de Casteljau's algorithm.
func bernstein(pts []Point, t float64) Point {
	n := len(pts) - 1
	var x, y float64
	binom := 1.0
	for i, pt := range pts {
		w := binom * math.Pow(t, float64(i)) * math.Pow(1-t, float64(n-i))
		x += w * pt.X
		y += w * pt.Y
		binom = binom * float64(n-i) / float64(i+1)
	}
	return Pt(x, y)
}

func TestBezierSecond(t *testing.T) {
	b := NewBezierSecond(Pt(0, 0), Pt(2, 0), Pt(1, 1))

	diff(t, Pt(0, 0), b.Eval(ParamStart), approx)
	diff(t, Pt(2, 0), b.Eval(ParamEnd), approx)
	diff(t, Pt(1, 0.5), b.Eval(at(0.5)), approx)
}

func TestBezierThird(t *testing.T) {
	b := NewBezierThird(Pt(0, 0), Pt(1, 0), Pt(0, 1), Pt(1, 1))

	diff(t, Pt(0, 0), b.Eval(ParamStart), approx)
	diff(t, Pt(1, 0), b.Eval(ParamEnd), approx)
	diff(t, Pt(0.5, 0.75), b.Eval(at(0.5)), approx)
}

func TestBezierFourth(t *testing.T) {
	b := NewBezierFourth(Pt(0, 0), Pt(2, 0), Pt(0.5, 1), Pt(1, 0.5), Pt(1.5, 1))

	diff(t, Pt(0, 0), b.Eval(ParamStart), approx)
	diff(t, Pt(2, 0), b.Eval(ParamEnd), approx)
	diff(t, Pt(1, 0.6875), b.Eval(at(0.5)), approx)
}

func TestBezierConstructorOrder(t *testing.T) {
	diff(t, BezierSecond{Start: Pt(1, 2), Control: Pt(3, 4), End: Pt(5, 6)},
		NewBezierSecond(Pt(1, 2), Pt(5, 6), Pt(3, 4)))
	diff(t, BezierThird{Start: Pt(1, 2), Control1: Pt(3, 4), Control2: Pt(5, 6), End: Pt(7, 8)},
		NewBezierThird(Pt(1, 2), Pt(7, 8), Pt(3, 4), Pt(5, 6)))
	diff(t, BezierFourth{Start: Pt(1, 2), Control1: Pt(3, 4), Control2: Pt(5, 6), Control3: Pt(7, 8), End: Pt(9, 0)},
		NewBezierFourth(Pt(1, 2), Pt(9, 0), Pt(3, 4), Pt(5, 6), Pt(7, 8)))
}

func TestBezierMatchesBernstein(t *testing.T) {
	p := []Point{Pt(3.1, 4.1), Pt(5.9, 2.6), Pt(5.3, 5.8), Pt(-1.2, 0.4), Pt(2.2, -3.3)}
	curves := []struct {
		c   Curve
		pts []Point
	}{
		{BezierSecond{p[0], p[1], p[2]}, p[:3]},
		{BezierThird{p[0], p[1], p[2], p[3]}, p[:4]},
		{BezierFourth{p[0], p[1], p[2], p[3], p[4]}, p[:5]},
	}
	const n = 16
	for _, tt := range curves {
		for i := range n + 1 {
			ts := float64(i) / float64(n)
			assertNear(t, tt.c.Eval(at(ts)), bernstein(tt.pts, ts), 1e-12)
		}
	}
}

func TestBezierRaise(t *testing.T) {
	q := BezierSecond{Pt(3.1, 4.1), Pt(5.9, 2.6), Pt(5.3, 5.8)}
	c := q.Raise()
	qu := c.Raise()
	const n = 10
	for i := range n + 1 {
		ts := at(float64(i) / float64(n))
		assertNear(t, c.Eval(ts), q.Eval(ts), 1e-12)
		assertNear(t, qu.Eval(ts), q.Eval(ts), 1e-12)
	}
}
