package pcurve

import "fmt"

// Param is the parameter of a curve, a value in the closed interval [0, 1].
// It measures progress along the curve: 0 is the curve's start and 1 its end.
//
// The zero value is the start of the curve.
type Param struct {
	v float64
}

var (
	// ParamStart is the parameter of a curve's start point.
	ParamStart = Param{0}
	// ParamEnd is the parameter of a curve's end point.
	ParamEnd = Param{1}
)

// NewParam returns the parameter for v. Values outside of [0, 1] are clamped,
// never rejected: v <= 0 maps to 0 and v >= 1 maps to 1. NaN maps to 0.
func NewParam(v float64) Param {
	if v >= 1 {
		return Param{1}
	}
	if v > 0 {
		return Param{v}
	}
	return Param{0}
}

// Value returns the parameter's value.
func (t Param) Value() float64 {
	return t.v
}

// IsStart reports whether t is exactly [ParamStart].
func (t Param) IsStart() bool { return t == ParamStart }

// IsEnd reports whether t is exactly [ParamEnd].
func (t Param) IsEnd() bool { return t == ParamEnd }

func (t Param) String() string {
	return fmt.Sprintf("t=%g", t.v)
}
