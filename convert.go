package hue

import "math"

// hueFromRGB computes hue in degrees from normalized channel values.
// max and delta are the channel maximum and max-min spread.
//
// A zero max (black) yields hue 0 by definition, and any NaN from a 0/0
// division collapses to 0 as well.
func hueFromRGB(r, g, b, max, delta float64) float64 {
	var h float64
	switch {
	case max == 0:
		h = 0
	case max == r:
		m := math.Mod((g-b)/delta, 6)
		if m < 0 {
			m += 6
		}
		h = 60 * m
	case max == g:
		h = 60 * ((b-r)/delta + 2)
	case max == b:
		h = 60 * ((r-g)/delta + 4)
	}
	if math.IsNaN(h) {
		return 0
	}
	return h
}

// rgbFromHueChroma reconstructs byte-scale RGB from the hue-sector
// intermediates: chroma, the secondary component, and the lightness
// match that lifts all three channels.
func rgbFromHueChroma(hue, chroma, secondary, match float64) (r, g, b uint8) {
	var rf, gf, bf float64
	switch {
	case hue < 60:
		rf, gf, bf = chroma, secondary, 0
	case hue < 120:
		rf, gf, bf = secondary, chroma, 0
	case hue < 180:
		rf, gf, bf = 0, chroma, secondary
	case hue < 240:
		rf, gf, bf = 0, secondary, chroma
	case hue < 300:
		rf, gf, bf = secondary, 0, chroma
	default:
		rf, gf, bf = chroma, 0, secondary
	}
	return FractionChannel(rf + match), FractionChannel(gf + match), FractionChannel(bf + match)
}

// ClampChannel clamps a float to the byte channel domain [0, 255],
// rounding to the nearest integer. NaN clamps to 0.
func ClampChannel(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.Round(v))
}

// FractionChannel converts a fraction in [0, 1] to a byte channel.
// Out-of-range input is clamped.
func FractionChannel(f float64) uint8 {
	return ClampChannel(f * 255)
}

// PercentChannel converts a percentage in [0, 100] to a byte channel.
// Out-of-range input is clamped.
func PercentChannel(p float64) uint8 {
	return ClampChannel(p * 255 / 100)
}

// clampByte restricts an int to [0, 255] for the integer constructors.
func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// clamp01 restricts a float to [0, 1]. NaN clamps to 0.
func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// normHue wraps a hue angle into [0, 360).
func normHue(h float64) float64 {
	if math.IsNaN(h) {
		return 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}
