package pcurve

import "math"

// Affine describes an affine transform via coefficients.
//
// If the coefficients are (a, b, c, d, e, f), then the resulting
// transformation represents this augmented matrix:
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// Note that this convention is transposed from PostScript and Direct2D, but is
// consistent with the [Wikipedia] formulation of affine transformation as
// augmented matrix. The idea is that (A * B) * v == A * (B * v).
//
// [Wikipedia]: https://en.wikipedia.org/wiki/Affine_transformation
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Identity is the identity transform.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// AffineScale creates an affine transform representing non-uniform scaling
// with different scale values for x and y.
func AffineScale(x, y float64) Affine {
	return Affine{x, 0, 0, y, 0, 0}
}

// AffineScaleAbout creates an affine transform representing non-uniform
// scaling about center, which stays fixed.
func AffineScaleAbout(x, y float64, center Point) Affine {
	c := Vec2(center)
	return AffineTranslate(c.Negate()).ThenScale(x, y).ThenTranslate(c)
}

// AffineTranslate creates an affine transform representing translation.
func AffineTranslate(v Vec2) Affine {
	return Affine{1, 0, 0, 1, v.X, v.Y}
}

// AffineRotate creates an affine transform representing rotation.
//
// The convention for rotation is that a positive angle rotates a
// positive X direction into positive Y. Thus, in a Y-down coordinate
// system (as is common for graphics), it is a clockwise rotation, and
// in Y-up (traditional for math), it is anti-clockwise.
//
// The angle th is expressed in radians. Use [Turns] to convert from turns.
func AffineRotate(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{cos, sin, -sin, cos, 0, 0}
}

// AffineRotateAbout creates an affine transform representing a rotation of th
// radians about center.
//
// See [AffineRotate] for more info.
func AffineRotateAbout(th float64, center Point) Affine {
	c := Vec2(center)
	return AffineTranslate(c.Negate()).ThenRotate(th).ThenTranslate(c)
}

// Turns converts an angle in turns, where 1 is a full revolution, to radians.
func Turns(turns float64) float64 {
	return turns * 2 * math.Pi
}

func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		aff.N0*o.N0 + aff.N2*o.N1,
		aff.N1*o.N0 + aff.N3*o.N1,
		aff.N0*o.N2 + aff.N2*o.N3,
		aff.N1*o.N2 + aff.N3*o.N3,
		aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

// ThenRotate creates aff followed by a rotation of th.
//
// Equivalent to "AffineRotate(th) * aff"
func (aff Affine) ThenRotate(th float64) Affine {
	return AffineRotate(th).Mul(aff)
}

// ThenRotateAbout creates aff followed by a rotation of th about center.
//
// Equivalent to "AffineRotateAbout(th, center) * aff"
func (aff Affine) ThenRotateAbout(th float64, center Point) Affine {
	return AffineRotateAbout(th, center).Mul(aff)
}

// ThenScale creates aff followed by a scale of (x, y).
//
// Equivalent to "AffineScale(x, y) * aff"
func (aff Affine) ThenScale(x, y float64) Affine {
	return AffineScale(x, y).Mul(aff)
}

// ThenTranslate creates aff followed by a translation of v.
//
// Equivalent to "AffineTranslate(v) * aff"
func (aff Affine) ThenTranslate(v Vec2) Affine {
	aff.N4 += v.X
	aff.N5 += v.Y
	return aff
}
