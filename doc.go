// Package pcurve evaluates points on 2D parametric curves and composes curves
// into new curves. It was designed to produce sampled points along motion
// paths and shapes.
//
// # Curves and parameters
//
// [Curve] describes curves parametrized by a [Param], a value in [0, 1] that
// measures progress along the curve. Parameters are constructed with
// [NewParam], which clamps out-of-range values instead of rejecting them.
//
// This package includes the following primitive curves:
//   - [Segment]
//   - [Circle]
//   - [CircleArc]
//   - [BezierSecond], [BezierThird], and [BezierFourth]
//   - [BezierSecondSpline], [BezierThirdSpline], and [BezierFourthSpline]
//
// Angles, such as the phase of a circle, are measured in turns, where 1 is a
// full revolution. [Turns] converts them to radians.
//
// Arbitrary functions can act as curves: [CurveFunc] adapts a function
// returning points, and [XY] combines two [ScalarCurve]s, such as
// [ScalarFunc]s, into the x and y coordinates of a curve.
//
// # Combinators
//
// Combinators wrap other curves, changing their parametrization or their
// geometry:
//   - [Concat] plays curves one after another, each getting an equal share of
//     the parameter range.
//   - [Repeat] plays the same curve several times.
//   - [Rotate], [Translate], [Scale], [RotateTranslate], and [Transform] move
//     the points of a curve.
//
// Combinators accept any curve, including other combinators, so curves can be
// nested to arbitrary depth. Since evaluating a curve never modifies it, the
// same curve may be shared by several combinators, and all curves are safe for
// concurrent use.
//
// # Sampling
//
// [Linspace] and [Samples] evaluate a curve at equally spaced parameters,
// [StartPoint] and [EndPoint] at its boundaries, and [RandomPoint] and
// [RandomPoints] at random parameters. [SVG] turns sampled points into SVG path
// data.
//
// # Errors
//
// Evaluation doesn't fail. Violating documented preconditions, such as
// evaluating an empty [Concat] or calling [Linspace] with n < 1, panics.
//
// # Literature
//
//   - [A Primer on Bézier Curves]
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
package pcurve
