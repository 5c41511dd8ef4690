// Copyright 2026 The hue Authors
// SPDX-License-Identifier: MIT

package huecell

import (
	"github.com/gdamore/tcell/v2"

	"github.com/recollect/hue"
)

// Color converts a hue colour to a tcell RGB colour. Terminals have no
// alpha channel, so only the RGB channels carry over.
func Color(c hue.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// FromColor converts a tcell colour to an opaque hue colour.
// Named palette colours resolve through their RGB equivalents.
func FromColor(tc tcell.Color) hue.RGBA {
	r, g, b := tc.TrueColor().RGB()
	return hue.RGB(int(r), int(g), int(b))
}

// Style builds a tcell style with the given foreground and background.
func Style(fg, bg hue.RGBA) tcell.Style {
	return tcell.StyleDefault.Foreground(Color(fg)).Background(Color(bg))
}
