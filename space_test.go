package hue

import "testing"

// The three representations satisfy Space and convert symmetrically.
func TestSpaceConversions(t *testing.T) {
	spaces := []struct {
		name string
		s    Space
	}{
		{name: "rgba", s: ARGB(255, 10, 200, 30)},
		{name: "hsv", s: NewHSV(1, 135, 0.9, 0.78)},
		{name: "hsl", s: NewHSL(1, 135, 0.8, 0.45)},
	}

	for _, tt := range spaces {
		t.Run(tt.name, func(t *testing.T) {
			// Conversion through any representation must settle: once a
			// value is in a space, converting to that same space again
			// is the identity.
			rgba := tt.s.ToRGBA()
			if rgba.ToRGBA() != rgba {
				t.Error("ToRGBA is not idempotent")
			}
			hsv := tt.s.ToHSV()
			if hsv.ToHSV() != hsv {
				t.Error("ToHSV is not idempotent")
			}
			hsl := tt.s.ToHSL()
			if hsl.ToHSL() != hsl {
				t.Error("ToHSL is not idempotent")
			}
		})
	}
}

// Any Space value must reach the same device colour no matter which
// representation it passes through, within channel rounding.
func TestSpaceConvergence(t *testing.T) {
	start := NewHSV(1, 210, 0.64, 0.88)
	direct := start.ToRGBA()
	viaHSL := start.ToHSL().ToRGBA()
	if channelDiff(direct.R, viaHSL.R) > 1 || channelDiff(direct.G, viaHSL.G) > 1 || channelDiff(direct.B, viaHSL.B) > 1 {
		t.Errorf("direct %v, via HSL %v", direct, viaHSL)
	}
}
