package pcurve

import "math/rand/v2"

// RandomPoint returns the curve's point at a parameter drawn uniformly from
// [0, 1). It uses the global source of math/rand/v2 and is safe for
// concurrent use. Results are not reproducible; use [RandomPointRand] with a
// seeded source for that.
func RandomPoint(c Curve) Point {
	return c.Eval(NewParam(rand.Float64()))
}

// RandomPoints returns n points drawn independently with [RandomPoint].
func RandomPoints(c Curve, n int) []Point {
	out := make([]Point, 0, max(n, 0))
	for range n {
		out = append(out, RandomPoint(c))
	}
	return out
}

// RandomPointRand is like [RandomPoint] but draws from r. Like r itself, it is
// not safe for concurrent use with the same r.
func RandomPointRand(c Curve, r *rand.Rand) Point {
	return c.Eval(NewParam(r.Float64()))
}

// RandomPointsRand is like [RandomPoints] but draws from r.
func RandomPointsRand(c Curve, n int, r *rand.Rand) []Point {
	out := make([]Point, 0, max(n, 0))
	for range n {
		out = append(out, RandomPointRand(c, r))
	}
	return out
}
