package pcurve

import "fmt"

// The splines in this package are encoded as a flat sequence of points,
// [P₀, C, ..., P₁, C, ..., P₂, ...], in which every k-th point is an on-curve
// point shared by two neighbouring Bézier curves of order k, and the points
// between them are control points. Points at the end that don't complete a
// segment are ignored.
//
// The segments of a spline are concatenated like by [Concat], each owning an
// equal share of the parameter range regardless of its length.

// splineSegments returns the number of complete segments of order k formed by
// n points.
func splineSegments(n, k int) int {
	if n <= k {
		return 0
	}
	return (n - 1) / k
}

// logDroppedPoints reports the points of a spline that don't form a complete
// segment.
func logDroppedPoints(kind string, n, k int) {
	segs := splineSegments(n, k)
	used := 0
	if segs > 0 {
		used = segs*k + 1
	}
	if dropped := n - used; dropped > 0 {
		Logger().Debug("ignoring trailing spline points",
			"spline", kind,
			"points", n,
			"segments", segs,
			"dropped", dropped)
	}
}

func concatOf[C Curve](segs []C) Concat {
	curves := make([]Curve, len(segs))
	for i, seg := range segs {
		curves[i] = seg
	}
	return Concat{Curves: curves}
}

func evalSpline(kind string, n, k int, t Param, eval func(i int, t Param) Point) Point {
	segs := splineSegments(n, k)
	if segs == 0 {
		panic(fmt.Sprintf("pcurve: %s needs at least %d points, got %d", kind, k+1, n))
	}
	return evalPieces(segs, t, eval)
}

// BezierSecondSpline is a sequence of quadratic Bézier curves sharing their
// end points. Points is encoded as [P₀, C₀, P₁, C₁, P₂, ...].
type BezierSecondSpline struct {
	Points []Point
}

var _ Curve = BezierSecondSpline{}

// NewBezierSecondSpline returns the quadratic spline through points.
func NewBezierSecondSpline(points ...Point) BezierSecondSpline {
	logDroppedPoints("BezierSecondSpline", len(points), 2)
	return BezierSecondSpline{Points: points}
}

func (s BezierSecondSpline) segment(i int) BezierSecond {
	w := s.Points[i*2 : i*2+3]
	return BezierSecond{Start: w[0], Control: w[1], End: w[2]}
}

// Segments returns the spline's curves in order.
func (s BezierSecondSpline) Segments() []BezierSecond {
	out := make([]BezierSecond, splineSegments(len(s.Points), 2))
	for i := range out {
		out[i] = s.segment(i)
	}
	return out
}

// Concat returns the spline's curves as a [Concat].
func (s BezierSecondSpline) Concat() Concat {
	return concatOf(s.Segments())
}

// Eval implements Curve. It panics if the spline has fewer than 3 points.
func (s BezierSecondSpline) Eval(t Param) Point {
	return evalSpline("BezierSecondSpline", len(s.Points), 2, t, func(i int, t Param) Point {
		return s.segment(i).Eval(t)
	})
}

// BezierThirdSpline is a sequence of cubic Bézier curves sharing their end
// points. Points is encoded as [P₀, C₀, C₁, P₁, C₂, C₃, P₂, ...].
type BezierThirdSpline struct {
	Points []Point
}

var _ Curve = BezierThirdSpline{}

// NewBezierThirdSpline returns the cubic spline through points.
func NewBezierThirdSpline(points ...Point) BezierThirdSpline {
	logDroppedPoints("BezierThirdSpline", len(points), 3)
	return BezierThirdSpline{Points: points}
}

func (s BezierThirdSpline) segment(i int) BezierThird {
	w := s.Points[i*3 : i*3+4]
	return BezierThird{Start: w[0], Control1: w[1], Control2: w[2], End: w[3]}
}

// Segments returns the spline's curves in order.
func (s BezierThirdSpline) Segments() []BezierThird {
	out := make([]BezierThird, splineSegments(len(s.Points), 3))
	for i := range out {
		out[i] = s.segment(i)
	}
	return out
}

// Concat returns the spline's curves as a [Concat].
func (s BezierThirdSpline) Concat() Concat {
	return concatOf(s.Segments())
}

// Eval implements Curve. It panics if the spline has fewer than 4 points.
func (s BezierThirdSpline) Eval(t Param) Point {
	return evalSpline("BezierThirdSpline", len(s.Points), 3, t, func(i int, t Param) Point {
		return s.segment(i).Eval(t)
	})
}

// BezierFourthSpline is a sequence of quartic Bézier curves sharing their end
// points. Points is encoded as [P₀, C₀, C₁, C₂, P₁, C₃, C₄, C₅, P₂, ...].
type BezierFourthSpline struct {
	Points []Point
}

var _ Curve = BezierFourthSpline{}

// NewBezierFourthSpline returns the quartic spline through points.
func NewBezierFourthSpline(points ...Point) BezierFourthSpline {
	logDroppedPoints("BezierFourthSpline", len(points), 4)
	return BezierFourthSpline{Points: points}
}

func (s BezierFourthSpline) segment(i int) BezierFourth {
	w := s.Points[i*4 : i*4+5]
	return BezierFourth{Start: w[0], Control1: w[1], Control2: w[2], Control3: w[3], End: w[4]}
}

// Segments returns the spline's curves in order.
func (s BezierFourthSpline) Segments() []BezierFourth {
	out := make([]BezierFourth, splineSegments(len(s.Points), 4))
	for i := range out {
		out[i] = s.segment(i)
	}
	return out
}

// Concat returns the spline's curves as a [Concat].
func (s BezierFourthSpline) Concat() Concat {
	return concatOf(s.Segments())
}

// Eval implements Curve. It panics if the spline has fewer than 5 points.
func (s BezierFourthSpline) Eval(t Param) Point {
	return evalSpline("BezierFourthSpline", len(s.Points), 4, t, func(i int, t Param) Point {
		return s.segment(i).Eval(t)
	})
}
