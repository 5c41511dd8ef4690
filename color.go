package hue

import (
	"math"

	"github.com/recollect/hue/internal/srgb"
)

// RGBA represents a device-scale colour with alpha, red, green, and blue
// channels, one byte each. The zero value is fully transparent black.
//
// RGBA is an immutable value type: it is comparable with ==, and its
// identity is the packed 32-bit value in AARRGGBB order.
type RGBA struct {
	A, R, G, B uint8
}

// ARGB creates a colour from four byte channels.
// Out-of-range values are clamped to [0, 255].
func ARGB(a, r, g, b int) RGBA {
	return RGBA{A: clampByte(a), R: clampByte(r), G: clampByte(g), B: clampByte(b)}
}

// RGB creates an opaque colour from three byte channels.
func RGB(r, g, b int) RGBA {
	return ARGB(255, r, g, b)
}

// Opacity creates a colour from three byte channels and an opacity
// percentage in [0, 100].
func Opacity(percent float64, r, g, b int) RGBA {
	return RGBA{A: PercentChannel(percent), R: clampByte(r), G: clampByte(g), B: clampByte(b)}
}

// FromFraction creates a colour from four fractions in [0, 1].
func FromFraction(a, r, g, b float64) RGBA {
	return RGBA{A: FractionChannel(a), R: FractionChannel(r), G: FractionChannel(g), B: FractionChannel(b)}
}

// FromPercent creates a colour from four percentages in [0, 100].
func FromPercent(a, r, g, b float64) RGBA {
	return RGBA{A: PercentChannel(a), R: PercentChannel(r), G: PercentChannel(g), B: PercentChannel(b)}
}

// FromPacked unpacks a 32-bit AARRGGBB value.
func FromPacked(v uint32) RGBA {
	return RGBA{
		A: uint8(v >> 24),
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}
}

// Packed returns the colour as a 32-bit AARRGGBB value. Equality and
// hashing of RGBA derive from this value.
func (c RGBA) Packed() uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// ToRGBA returns the colour unchanged. It completes the Space contract.
func (c RGBA) ToRGBA() RGBA { return c }

// ToHSV converts to the HSV representation.
func (c RGBA) ToHSV() HSV {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	delta := max - min

	s := 0.0
	if max != 0 {
		s = delta / max
	}
	return HSV{
		A: float64(c.A) / 255,
		H: hueFromRGB(r, g, b, max, delta),
		S: s,
		V: max,
	}
}

// ToHSL converts to the HSL representation.
func (c RGBA) ToHSL() HSL {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	delta := max - min

	l := (max + min) / 2
	s := 0.0
	if max != min {
		s = clamp01(delta / (1 - math.Abs(2*l-1)))
	}
	return HSL{
		A: float64(c.A) / 255,
		H: hueFromRGB(r, g, b, max, delta),
		S: s,
		L: l,
	}
}

// Lerp performs linear interpolation between two colours in channel
// space. t=0 returns c, t=1 returns other.
//
// Channel-space interpolation darkens midpoints between saturated
// colours; use Mix for a perceptually even blend.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	lerp := func(a, b uint8) uint8 {
		return ClampChannel(float64(a) + (float64(b)-float64(a))*t)
	}
	return RGBA{
		A: lerp(c.A, other.A),
		R: lerp(c.R, other.R),
		G: lerp(c.G, other.G),
		B: lerp(c.B, other.B),
	}
}

// Mix blends two colours in linear-light space, which avoids the muddy
// midpoints of naive channel interpolation. Alpha interpolates
// linearly; it is never gamma-encoded.
func (c RGBA) Mix(other RGBA, t float64) RGBA {
	mix := func(a, b uint8) uint8 {
		la := srgb.ToLinear(a)
		lb := srgb.ToLinear(b)
		return srgb.FromLinear(la + (lb-la)*t)
	}
	return RGBA{
		A: ClampChannel(float64(c.A) + (float64(other.A)-float64(c.A))*t),
		R: mix(c.R, other.R),
		G: mix(c.G, other.G),
		B: mix(c.B, other.B),
	}
}

// Luminance returns the relative luminance of the colour in [0, 1],
// computed from linear-light channels with the Rec. 709 coefficients.
func (c RGBA) Luminance() float64 {
	return 0.2126*srgb.ToLinear(c.R) + 0.7152*srgb.ToLinear(c.G) + 0.0722*srgb.ToLinear(c.B)
}

// IsDark reports whether text over this colour should be light.
// The threshold is the linear luminance of mid grey (sRGB 128).
func (c RGBA) IsDark() bool {
	return c.Luminance() < 0.216
}

// Common colours
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(255, 255, 255)
	Red         = RGB(255, 0, 0)
	Green       = RGB(0, 255, 0)
	Blue        = RGB(0, 0, 255)
	Yellow      = RGB(255, 255, 0)
	Cyan        = RGB(0, 255, 255)
	Magenta     = RGB(255, 0, 255)
	Transparent = RGBA{}
)
