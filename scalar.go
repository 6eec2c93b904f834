package pcurve

// ScalarCurve describes a one-dimensional function of a [Param].
type ScalarCurve interface {
	// Eval evaluates the function at parameter t.
	Eval(t Param) float64
}

// ScalarFunc adapts a unary numeric function, such as [math.Sin], to the
// [ScalarCurve] interface. The function receives the parameter's value.
type ScalarFunc func(float64) float64

// Eval implements ScalarCurve.
func (f ScalarFunc) Eval(t Param) float64 {
	return f(t.Value())
}

// XY combines two scalar functions into a [Curve]. Both are evaluated at the
// same parameter, X producing the point's x coordinate and Y its y coordinate.
type XY struct {
	X ScalarCurve
	Y ScalarCurve
}

var _ Curve = XY{}

// Eval implements Curve.
func (xy XY) Eval(t Param) Point {
	return Point{
		X: xy.X.Eval(t),
		Y: xy.Y.Eval(t),
	}
}
