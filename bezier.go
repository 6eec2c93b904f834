package pcurve

// The Bézier curves of this package are evaluated by de Casteljau's
// algorithm, expressed as a reduction: the k consecutive pairs of an order k
// curve's points form k segments, and evaluating those segments at t yields
// the points of an order k−1 curve, which is then evaluated at the same t.
// An order 1 curve is a [Segment].

// BezierSecond is a quadratic Bézier curve.
type BezierSecond struct {
	Start   Point
	Control Point
	End     Point
}

var _ Curve = BezierSecond{}

// NewBezierSecond returns the quadratic Bézier curve from start to end with
// the given control point.
func NewBezierSecond(start, end, control Point) BezierSecond {
	return BezierSecond{
		Start:   start,
		Control: control,
		End:     end,
	}
}

// Eval implements Curve.
func (b BezierSecond) Eval(t Param) Point {
	p0 := Segment{b.Start, b.Control}.Eval(t)
	p1 := Segment{b.Control, b.End}.Eval(t)
	return Segment{p0, p1}.Eval(t)
}

// Raise raises the order by 1.
//
// Returns a cubic Bézier curve that exactly represents this quadratic.
func (b BezierSecond) Raise() BezierThird {
	return BezierThird{
		Start:    b.Start,
		Control1: b.Start.Translate(b.Control.Sub(b.Start).Mul(2.0 / 3.0)),
		Control2: b.End.Translate(b.Control.Sub(b.End).Mul(2.0 / 3.0)),
		End:      b.End,
	}
}

// BezierThird is a cubic Bézier curve.
type BezierThird struct {
	Start    Point
	Control1 Point
	Control2 Point
	End      Point
}

var _ Curve = BezierThird{}

// NewBezierThird returns the cubic Bézier curve from start to end with the
// given control points.
func NewBezierThird(start, end, control1, control2 Point) BezierThird {
	return BezierThird{
		Start:    start,
		Control1: control1,
		Control2: control2,
		End:      end,
	}
}

// Eval implements Curve.
func (b BezierThird) Eval(t Param) Point {
	return BezierSecond{
		Start:   Segment{b.Start, b.Control1}.Eval(t),
		Control: Segment{b.Control1, b.Control2}.Eval(t),
		End:     Segment{b.Control2, b.End}.Eval(t),
	}.Eval(t)
}

// Raise raises the order by 1.
//
// Returns a quartic Bézier curve that exactly represents this cubic.
func (b BezierThird) Raise() BezierFourth {
	return BezierFourth{
		Start:    b.Start,
		Control1: b.Start.Lerp(b.Control1, 0.75),
		Control2: b.Control1.Midpoint(b.Control2),
		Control3: b.Control2.Lerp(b.End, 0.25),
		End:      b.End,
	}
}

// BezierFourth is a quartic Bézier curve.
type BezierFourth struct {
	Start    Point
	Control1 Point
	Control2 Point
	Control3 Point
	End      Point
}

var _ Curve = BezierFourth{}

// NewBezierFourth returns the quartic Bézier curve from start to end with the
// given control points.
func NewBezierFourth(start, end, control1, control2, control3 Point) BezierFourth {
	return BezierFourth{
		Start:    start,
		Control1: control1,
		Control2: control2,
		Control3: control3,
		End:      end,
	}
}

// Eval implements Curve.
func (b BezierFourth) Eval(t Param) Point {
	return BezierThird{
		Start:    Segment{b.Start, b.Control1}.Eval(t),
		Control1: Segment{b.Control1, b.Control2}.Eval(t),
		Control2: Segment{b.Control2, b.Control3}.Eval(t),
		End:      Segment{b.Control3, b.End}.Eval(t),
	}.Eval(t)
}
