package hue

import (
	"strings"

	"golang.org/x/image/colornames"
)

// FromName resolves an SVG 1.1 colour name ("red", "chartreuse",
// "lightgoldenrodyellow") to an opaque colour. Matching is
// case-insensitive. The second result reports whether the name exists.
func FromName(name string) (RGBA, bool) {
	c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return RGBA{}, false
	}
	return RGBA{A: c.A, R: c.R, G: c.G, B: c.B}, true
}

// Names returns the sorted list of colour names FromName accepts.
func Names() []string {
	out := make([]string, len(colornames.Names))
	copy(out, colornames.Names)
	return out
}
