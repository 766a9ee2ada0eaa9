// Package ease provides the interpolation curves used between the keys of a
// sync track.
//
// A [Curve] is one of four fixed, single-segment shapes: [Step], [Linear],
// [Smooth], and [Ramp]. Each curve maps normalized progress t ∈ [0, 1] to an
// output in the same range, and is stored as a small integer tag so that it can
// travel over the wire or live in a file as a single byte.
//
// # Encoding
//
// The integer encoding of each curve is part of the wire format and will not
// change:
//
//	0  Step
//	1  Linear
//	2  Smooth
//	3  Ramp
//
// [FromRaw] decodes a tag. Decoding never fails; any value outside 0–3 decodes
// to [Step], which holds the current value instead of easing towards the next
// one. Callers that need to reject unknown tags can check [Curve.Valid] on the
// result of a plain conversion, or compare the byte themselves.
//
// # Evaluation
//
// [Curve.Interpolate] evaluates a curve at t. The evaluation is a plain
// arithmetic expression, so values of t outside the unit interval extrapolate
// the curve, and NaN and infinities propagate. Validating t is up to the
// caller. [Curve.Mix] uses a curve to blend between two values, which is what a
// track does between a key and the key that follows it.
//
// Curves are values without state and are safe for concurrent use.
package ease
