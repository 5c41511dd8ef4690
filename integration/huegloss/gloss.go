// Copyright 2026 The hue Authors
// SPDX-License-Identifier: MIT

package huegloss

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/recollect/hue"
)

// Color renders a hue colour as a lipgloss colour. Terminals have no
// alpha channel, so only the RGB channels carry over.
func Color(c hue.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B))
}

// Adaptive pairs two hue colours into a lipgloss adaptive colour,
// picked by the terminal's background.
func Adaptive(light, dark hue.RGBA) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{
		Light: string(Color(light)),
		Dark:  string(Color(dark)),
	}
}

// Style builds a style with the given foreground and background.
func Style(fg, bg hue.RGBA) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Color(fg)).Background(Color(bg))
}

// AutoStyle builds a style over the given background, choosing black
// or white text by the background's luminance.
func AutoStyle(bg hue.RGBA) lipgloss.Style {
	fg := hue.Black
	if bg.IsDark() {
		fg = hue.White
	}
	return Style(fg, bg)
}
