package hue

import "image/color"

// Color converts to the standard library colour interface.
// The result is non-premultiplied (color.NRGBA), matching the channel
// semantics of RGBA.
func (c RGBA) Color() color.Color {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// FromColor converts a standard library colour to RGBA.
// Premultiplied inputs are un-premultiplied by the NRGBA model.
func FromColor(c color.Color) RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA{A: n.A, R: n.R, G: n.G, B: n.B}
}
