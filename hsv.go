package hue

import "math"

// HSV represents a colour as hue, saturation, and value, plus alpha.
// H is in degrees [0, 360); A, S, and V are fractions in [0, 1].
// Immutable; conversions return new values.
type HSV struct {
	A, H, S, V float64
}

// NewHSV creates an HSV colour. The hue is wrapped into [0, 360) and
// the remaining components are clamped to [0, 1].
func NewHSV(a, h, s, v float64) HSV {
	return HSV{A: clamp01(a), H: normHue(h), S: clamp01(s), V: clamp01(v)}
}

// ToRGBA converts to the device-scale representation using the
// six-sector construction: the hue selects a sector, and p, q, t are
// the falling, rising, and floor intermediates within it.
func (c HSV) ToRGBA() RGBA {
	s := clamp01(c.S)
	v := clamp01(c.V)
	sector := normHue(c.H) / 60
	i := math.Floor(sector)
	f := sector - i

	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	var r, g, b float64
	switch int(i) % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	case 5:
		r, g, b = v, p, q
	}

	return RGBA{
		A: FractionChannel(c.A),
		R: FractionChannel(r),
		G: FractionChannel(g),
		B: FractionChannel(b),
	}
}

// ToHSV returns the colour unchanged. It completes the Space contract.
func (c HSV) ToHSV() HSV { return c }

// ToHSL converts directly to HSL without an RGB round trip.
// This is the canonical HSV→HSL path; the RGB-mediated route agrees
// with it within floating tolerance.
func (c HSV) ToHSL() HSL {
	s := clamp01(c.S)
	v := clamp01(c.V)

	l := (2 - s) * v / 2
	sl := 0.0
	if l != 0 && l != 1 {
		if l < 0.5 {
			sl = s * v / (l * 2)
		} else {
			sl = s * v / (2 - l*2)
		}
	}
	return HSL{A: clamp01(c.A), H: normHue(c.H), S: clamp01(sl), L: l}
}
