package pcurve

// Transform applies an affine transformation to the points of a curve. It
// leaves the parametrization unchanged.
//
// [Rotate], [Translate] and [Scale] are special cases of Transform, described
// by their geometric properties instead of a matrix.
type Transform struct {
	Curve  Curve
	Affine Affine
}

var _ Curve = Transform{}

// Eval implements Curve.
func (tr Transform) Eval(t Param) Point {
	return tr.Curve.Eval(t).Transform(tr.Affine)
}

// Rotate rotates a curve about Center by Angle turns.
//
// Rotation preserves the distance of every point to Center.
type Rotate struct {
	Curve  Curve
	Center Point
	Angle  Param
}

var _ Curve = Rotate{}

// Affine returns the transform that r applies to the curve's points.
func (r Rotate) Affine() Affine {
	return AffineRotateAbout(Turns(r.Angle.Value()), r.Center)
}

// Eval implements Curve.
func (r Rotate) Eval(t Param) Point {
	return r.Curve.Eval(t).Transform(r.Affine())
}

// Translate moves a curve by the vector By.
type Translate struct {
	Curve Curve
	By    Vec2
}

var _ Curve = Translate{}

// Affine returns the transform that tr applies to the curve's points.
func (tr Translate) Affine() Affine {
	return AffineTranslate(tr.By)
}

// Eval implements Curve.
func (tr Translate) Eval(t Param) Point {
	return tr.Curve.Eval(t).Translate(tr.By)
}

// Scale scales a curve about Center, by Factors.X horizontally and by
// Factors.Y vertically. Center stays fixed.
type Scale struct {
	Curve   Curve
	Center  Point
	Factors Vec2
}

var _ Curve = Scale{}

// Affine returns the transform that s applies to the curve's points.
func (s Scale) Affine() Affine {
	return AffineScaleAbout(s.Factors.X, s.Factors.Y, s.Center)
}

// Eval implements Curve.
func (s Scale) Eval(t Param) Point {
	return s.Curve.Eval(t).Transform(s.Affine())
}

// RotateTranslate combines a [Rotate] and a [Translate]. If RotateFirst is
// set, the curve is rotated and the result translated; otherwise the curve is
// translated and the result rotated about Center. The two orders generally
// produce different curves.
type RotateTranslate struct {
	Curve       Curve
	By          Vec2
	Center      Point
	Angle       Param
	RotateFirst bool
}

var _ Curve = RotateTranslate{}

// Affine returns the transform that rt applies to the curve's points.
func (rt RotateTranslate) Affine() Affine {
	th := Turns(rt.Angle.Value())
	if rt.RotateFirst {
		return AffineRotateAbout(th, rt.Center).ThenTranslate(rt.By)
	}
	return AffineTranslate(rt.By).ThenRotateAbout(th, rt.Center)
}

// Eval implements Curve.
func (rt RotateTranslate) Eval(t Param) Point {
	if rt.RotateFirst {
		return Translate{
			Curve: Rotate{Curve: rt.Curve, Center: rt.Center, Angle: rt.Angle},
			By:    rt.By,
		}.Eval(t)
	}
	return Rotate{
		Curve:  Translate{Curve: rt.Curve, By: rt.By},
		Center: rt.Center,
		Angle:  rt.Angle,
	}.Eval(t)
}
