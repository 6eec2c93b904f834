package pcurve

import "math"

// Circle is a full revolution around Center. Angles are measured in turns,
// where 1 is a full revolution and 0 lies on the positive x axis.
//
// Over the parameter range [0, 1] the curve sweeps the whole circle, starting
// at the angle Phase.
type Circle struct {
	Center Point
	Radius float64
	Phase  Param
}

var _ Curve = Circle{}

// Eval returns Center + Radius·(cos θ, sin θ) with θ = t + Phase turns.
func (c Circle) Eval(t Param) Point {
	return pointOnCircle(c.Center, c.Radius, Turns(t.Value()+c.Phase.Value()))
}

// CircleArc is the arc of a circle between two absolute angles, measured in
// turns like the angles of [Circle].
//
// The angle is interpolated linearly from StartAngle to EndAngle. There is
// no compensation for wrap-around: an arc from 0.9 to 0.1 turns sweeps
// backwards through 0.5 rather than forwards through 0.
type CircleArc struct {
	Center     Point
	Radius     float64
	StartAngle Param
	EndAngle   Param
}

var _ Curve = CircleArc{}

// CircleArcOption configures optional properties of a [CircleArc] created by
// [NewCircleArc].
type CircleArcOption func(*CircleArc)

// WithStartAngle sets the arc's start angle.
func WithStartAngle(turns Param) CircleArcOption {
	return func(a *CircleArc) { a.StartAngle = turns }
}

// WithEndAngle sets the arc's end angle.
func WithEndAngle(turns Param) CircleArcOption {
	return func(a *CircleArc) { a.EndAngle = turns }
}

// NewCircleArc returns an arc around center. Unless overridden by options,
// the arc starts at 0 turns and ends at 1 turn, making it a full circle.
func NewCircleArc(center Point, radius float64, opts ...CircleArcOption) CircleArc {
	a := CircleArc{
		Center:     center,
		Radius:     radius,
		StartAngle: ParamStart,
		EndAngle:   ParamEnd,
	}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

// Eval returns the point at the angle EndAngle·t + StartAngle·(1 − t).
func (a CircleArc) Eval(t Param) Point {
	tv := t.Value()
	theta := a.EndAngle.Value()*tv + a.StartAngle.Value()*(1-tv)
	return pointOnCircle(a.Center, a.Radius, Turns(theta))
}

func pointOnCircle(center Point, radius float64, angle float64) Point {
	sin, cos := math.Sincos(angle)
	return center.Translate(
		Vec2{
			X: cos * radius,
			Y: sin * radius,
		})
}
