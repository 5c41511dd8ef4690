package hue

import "math"

// HSL represents a colour as hue, saturation, and lightness, plus
// alpha. H is in degrees [0, 360); A, S, and L are fractions in [0, 1].
// Immutable; conversions return new values.
type HSL struct {
	A, H, S, L float64
}

// NewHSL creates an HSL colour. The hue is wrapped into [0, 360) and
// the remaining components are clamped to [0, 1].
func NewHSL(a, h, s, l float64) HSL {
	return HSL{A: clamp01(a), H: normHue(h), S: clamp01(s), L: clamp01(l)}
}

// ToRGBA converts to the device-scale representation via the chroma
// reconstruction: chroma spans the channel spread, the secondary
// component ramps within each 60° sector, and match lifts the result
// to the requested lightness.
func (c HSL) ToRGBA() RGBA {
	h := normHue(c.H)
	s := clamp01(c.S)
	l := clamp01(c.L)

	chroma := (1 - math.Abs(2*l-1)) * s
	secondary := chroma * (1 - math.Abs(math.Mod(h/60, 2)-1))
	match := l - chroma/2

	r, g, b := rgbFromHueChroma(h, chroma, secondary, match)
	return RGBA{A: FractionChannel(c.A), R: r, G: g, B: b}
}

// ToHSV converts directly to HSV without an RGB round trip.
// This is the canonical HSL→HSV path; the RGB-mediated route agrees
// with it within floating tolerance.
func (c HSL) ToHSV() HSV {
	s := clamp01(c.S)
	l := clamp01(c.L)

	v := l + s*math.Min(l, 1-l)
	sv := 0.0
	if v != 0 {
		sv = 2 - 2*l/v
	}
	return HSV{A: clamp01(c.A), H: normHue(c.H), S: clamp01(sv), V: v}
}

// ToHSL returns the colour unchanged. It completes the Space contract.
func (c HSL) ToHSL() HSL { return c }
