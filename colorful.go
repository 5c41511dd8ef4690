package hue

import colorful "github.com/lucasb-eyer/go-colorful"

// Colorful converts to a go-colorful colour for access to the wider
// colour-science toolbox (Lab, Luv, blending, palettes). Alpha is
// dropped; go-colorful works on opaque colours.
func (c RGBA) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// FromColorful converts a go-colorful colour to an opaque RGBA,
// clamping channels that fell outside the RGB gamut.
func FromColorful(cc colorful.Color) RGBA {
	cc = cc.Clamped()
	return RGBA{
		A: 255,
		R: FractionChannel(cc.R),
		G: FractionChannel(cc.G),
		B: FractionChannel(cc.B),
	}
}
