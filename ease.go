package ease

import (
	"fmt"
	"iter"
)

// Curve is the shape of the interpolation between two keys.
//
// The numeric value of each curve is its wire encoding. The zero value is
// [Step].
type Curve uint8

// The values are the wire encoding and must not change.
const (
	// Step holds the value of the first key; t is ignored.
	Step Curve = 0
	// Linear is the identity ramp, t.
	Linear Curve = 1
	// Smooth is smoothstep, t² (3 - 2t), with zero slope at both ends.
	Smooth Curve = 2
	// Ramp is a quadratic ease-in, t².
	Ramp Curve = 3
)

// FromRaw decodes the wire encoding of a curve. Values without a curve, 4
// through 255, decode to [Step].
func FromRaw(raw uint8) Curve {
	switch raw {
	case 0:
		return Step
	case 1:
		return Linear
	case 2:
		return Smooth
	case 3:
		return Ramp
	default:
		return Step
	}
}

// Raw returns the wire encoding of the curve. A Curve that isn't one of the
// named curves encodes as [Step].
func (c Curve) Raw() uint8 {
	switch c {
	case Step:
		return 0
	case Linear:
		return 1
	case Smooth:
		return 2
	case Ramp:
		return 3
	default:
		return 0
	}
}

// Valid reports whether c is one of the named curves.
func (c Curve) Valid() bool {
	switch c {
	case Step, Linear, Smooth, Ramp:
		return true
	default:
		return false
	}
}

// Interpolate evaluates the curve at t.
//
// t is usually in [0, 1], but any value is accepted. Values outside the unit
// interval extrapolate the curve, and NaN and infinities propagate, except for
// [Step], which is always 0. A Curve that isn't one of the named curves
// behaves like Step.
func (c Curve) Interpolate(t float32) float32 {
	switch c {
	case Linear:
		return t
	case Smooth:
		return t * t * (3 - 2*t)
	case Ramp:
		return t * t
	default:
		return 0
	}
}

// Eval is like [Curve.Interpolate] but operates on float64.
func (c Curve) Eval(t float64) float64 {
	switch c {
	case Linear:
		return t
	case Smooth:
		return t * t * (3 - 2*t)
	case Ramp:
		return t * t
	default:
		return 0
	}
}

// Mix returns the value between a and b at progress t, shaped by the curve.
// It returns a for t = 0 and b for t = 1, except for [Step], which always
// returns a.
func (c Curve) Mix(a, b, t float32) float32 {
	return a + (b-a)*c.Interpolate(t)
}

func (c Curve) String() string {
	switch c {
	case Step:
		return "Step"
	case Linear:
		return "Linear"
	case Smooth:
		return "Smooth"
	case Ramp:
		return "Ramp"
	default:
		return fmt.Sprintf("Curve(%d)", uint8(c))
	}
}

// All returns an iterator over all curves, in the order of their encoding.
func All() iter.Seq[Curve] {
	return func(yield func(Curve) bool) {
		for _, c := range [...]Curve{Step, Linear, Smooth, Ramp} {
			if !yield(c) {
				return
			}
		}
	}
}
