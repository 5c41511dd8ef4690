// Copyright 2026 The hue Authors
// SPDX-License-Identifier: MIT

// Package srgb converts byte channels between sRGB and linear light.
//
// Blending and luminance must be computed in linear space; doing them
// on gamma-encoded bytes skews every midpoint dark. The conversions
// here use lookup tables so the hot path is a single array read.
package srgb

import "math"

// toLinearLUT maps an sRGB byte to its linear value.
var toLinearLUT [256]float64

// fromLinearLUT maps 12-bit linear steps back to sRGB bytes. 4096
// entries give more precision than 8-bit output can distinguish.
var fromLinearLUT [4096]uint8

func init() {
	for i := range toLinearLUT {
		toLinearLUT[i] = toLinearSlow(uint8(i))
	}
	for i := range fromLinearLUT {
		fromLinearLUT[i] = fromLinearSlow(float64(i) / 4095)
	}
}

// ToLinear converts an sRGB byte to linear light in [0, 1] (the EOTF).
func ToLinear(s uint8) float64 {
	return toLinearLUT[s]
}

// FromLinear converts linear light to an sRGB byte (the OETF).
// Input is clamped to [0, 1].
func FromLinear(l float64) uint8 {
	if l <= 0 || math.IsNaN(l) {
		return 0
	}
	if l >= 1 {
		return 255
	}
	return fromLinearLUT[int(l*4095+0.5)]
}

// toLinearSlow is the reference EOTF, kept for table construction and
// verification in tests.
func toLinearSlow(s uint8) float64 {
	sf := float64(s) / 255
	if sf <= 0.04045 {
		return sf / 12.92
	}
	return math.Pow((sf+0.055)/1.055, 2.4)
}

// fromLinearSlow is the reference OETF.
func fromLinearSlow(l float64) uint8 {
	if l < 0 {
		l = 0
	}
	if l > 1 {
		l = 1
	}
	var s float64
	if l <= 0.0031308 {
		s = l * 12.92
	} else {
		s = 1.055*math.Pow(l, 1.0/2.4) - 0.055
	}
	v := int(s*255 + 0.5)
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return uint8(v)
}
