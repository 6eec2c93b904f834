package pcurve

// Segment represents a straight line segment from P0 to P1.
type Segment struct {
	// The segment's start point.
	P0 Point
	// The segment's end point.
	P1 Point
}

var _ Curve = Segment{}

// Eval linearly interpolates between the end points, P0 + t·(P1 − P0).
func (s Segment) Eval(t Param) Point {
	return s.P0.Lerp(s.P1, t.Value())
}
