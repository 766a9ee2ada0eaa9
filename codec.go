package ease

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownCurve is returned when parsing a name that doesn't belong to
	// any curve.
	ErrUnknownCurve = errors.New("unknown curve")
	// ErrInvalidLength is returned when unmarshaling a binary encoding that
	// isn't exactly one byte long.
	ErrInvalidLength = errors.New("invalid length")
)

// ParseCurve returns the curve with the given name, as returned by
// [Curve.String]. The comparison is case-insensitive.
//
// Unlike [FromRaw], ParseCurve fails on unknown input.
func ParseCurve(s string) (Curve, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "step":
		return Step, nil
	case "linear":
		return Linear, nil
	case "smooth":
		return Smooth, nil
	case "ramp":
		return Ramp, nil
	default:
		return Step, fmt.Errorf("%w %q", ErrUnknownCurve, s)
	}
}

// MarshalText implements encoding.TextMarshaler. Curves that aren't one of the
// named curves can't be marshaled.
func (c Curve) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w %d", ErrUnknownCurve, uint8(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, using [ParseCurve].
func (c *Curve) UnmarshalText(text []byte) error {
	v, err := ParseCurve(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler. The encoding is the single
// byte returned by [Curve.Raw]. Like [Curve.MarshalText], it fails for curves
// that aren't one of the named curves instead of writing Step's encoding.
func (c Curve) MarshalBinary() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w %d", ErrUnknownCurve, uint8(c))
	}
	return []byte{c.Raw()}, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The byte is decoded
// with [FromRaw], so unknown tags become [Step]. Only data that isn't exactly
// one byte long is an error.
func (c *Curve) UnmarshalBinary(data []byte) error {
	if len(data) != 1 {
		return fmt.Errorf("curve: %w: got %d bytes, want 1", ErrInvalidLength, len(data))
	}
	*c = FromRaw(data[0])
	return nil
}
