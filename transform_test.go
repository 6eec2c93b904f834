package pcurve

import (
	"math"
	"testing"
)

func TestRotate(t *testing.T) {
	s := Segment{Pt(0, 0), Pt(1, 1)}
	r := Rotate{Curve: s, Center: Pt(0.5, 0.5), Angle: at(0.25)}

	assertNear(t, StartPoint(r), Pt(1, 0), epsilon)
	assertNear(t, EndPoint(r), Pt(0, 1), epsilon)
}

func TestRotatePreservesDistance(t *testing.T) {
	b := NewBezierThird(Pt(0, 0), Pt(4, 1), Pt(1, 3), Pt(3, -2))
	center := Pt(2, -1)
	for _, angle := range []float64{0, 0.1, 0.3, 0.5, 0.875, 1} {
		r := Rotate{Curve: b, Center: center, Angle: at(angle)}
		for ts, pt := range Samples(r, 20) {
			want := b.Eval(ts).Distance(center)
			if d := math.Abs(pt.Distance(center) - want); d > epsilon {
				t.Errorf("angle %g, %v: distance to center changed by %g", angle, ts, d)
			}
		}
	}
}

func TestTranslate(t *testing.T) {
	s := Segment{Pt(0, 0), Pt(1, 1)}
	tr := Translate{Curve: s, By: Vec(0.5, 0.5)}

	assertNear(t, StartPoint(tr), Pt(0.5, 0.5), epsilon)
	assertNear(t, EndPoint(tr), Pt(1.5, 1.5), epsilon)
}

func TestScale(t *testing.T) {
	s := Segment{Pt(2, 2), Pt(0, 0)}
	sc := Scale{Curve: s, Center: Pt(1, 1), Factors: Vec(2, 3)}

	assertNear(t, StartPoint(sc), Pt(3, 4), epsilon)
	assertNear(t, EndPoint(sc), Pt(-1, -2), epsilon)
	assertNear(t, sc.Eval(at(0.5)), Pt(1, 1), epsilon)
}

func TestScaleIdentity(t *testing.T) {
	c := Circle{Center: Pt(-3, 7), Radius: 2.5, Phase: at(0.2)}
	sc := Scale{Curve: c, Center: Pt(11, -4), Factors: Vec(1, 1)}
	for ts, pt := range Samples(sc, 16) {
		assertNear(t, pt, c.Eval(ts), epsilon)
	}
}

func TestRotateTranslate(t *testing.T) {
	s := Segment{Pt(0, 0), Pt(1, 1)}
	rt := RotateTranslate{
		Curve:       s,
		By:          Vec(0.5, 0.5),
		Center:      Pt(0.5, 0.5),
		Angle:       at(0.25),
		RotateFirst: true,
	}
	assertNear(t, StartPoint(rt), Pt(1.5, 0.5), epsilon)
	assertNear(t, EndPoint(rt), Pt(0.5, 1.5), epsilon)

	rt.RotateFirst = false
	assertNear(t, StartPoint(rt), Pt(0.5, 0.5), epsilon)
	assertNear(t, EndPoint(rt), Pt(-0.5, 1.5), epsilon)
}

func TestRotateTranslateOrder(t *testing.T) {
	b := NewBezierSecond(Pt(0, 0), Pt(2, 0), Pt(1, 1))
	first := RotateTranslate{Curve: b, By: Vec(1, 2), Center: Pt(0, 0), Angle: at(0.25), RotateFirst: true}
	second := first
	second.RotateFirst = false
	if d := first.Eval(at(0.5)).Distance(second.Eval(at(0.5))); d < 1 {
		t.Errorf("rotation and translation commute, points are %g apart", d)
	}

	// Equivalent to nesting the individual combinators.
	nested := Rotate{Curve: Translate{Curve: b, By: Vec(1, 2)}, Center: Pt(0, 0), Angle: at(0.25)}
	for ts, pt := range Samples(second, 8) {
		diff(t, nested.Eval(ts), pt)
	}
}

func TestCombinatorAffines(t *testing.T) {
	b := NewBezierFourth(Pt(0, 0), Pt(2, 0), Pt(0.5, 1), Pt(1, 0.5), Pt(1.5, 1))
	curves := []interface {
		Curve
		Affine() Affine
	}{
		Rotate{Curve: b, Center: Pt(1, -1), Angle: at(0.3)},
		Translate{Curve: b, By: Vec(-2, 5)},
		Scale{Curve: b, Center: Pt(1, 1), Factors: Vec(-0.5, 2)},
		RotateTranslate{Curve: b, By: Vec(3, 1), Center: Pt(-1, 2), Angle: at(0.6), RotateFirst: true},
		RotateTranslate{Curve: b, By: Vec(3, 1), Center: Pt(-1, 2), Angle: at(0.6)},
	}
	for _, c := range curves {
		tr := Transform{Curve: b, Affine: c.Affine()}
		for ts, pt := range Samples(c, 12) {
			assertNear(t, tr.Eval(ts), pt, epsilon)
		}
	}
}

func TestTransformIdentity(t *testing.T) {
	s := Segment{Pt(1, 2), Pt(3, 4)}
	tr := Transform{Curve: s, Affine: Identity}
	for ts, pt := range Samples(tr, 4) {
		diff(t, s.Eval(ts), pt)
	}
}
