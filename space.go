package hue

// Space is the closed set of colour-space representations: RGBA, HSV,
// and HSL. Every representation converts to every other.
//
// The set is sealed — the unexported marker method keeps packages
// outside hue from adding a fourth representation. Adding one here
// means revisiting every conversion, which is exactly the point.
type Space interface {
	ToRGBA() RGBA
	ToHSV() HSV
	ToHSL() HSL

	sealed()
}

// Compile-time check that the three representations, and only these
// three, satisfy Space.
var (
	_ Space = RGBA{}
	_ Space = HSV{}
	_ Space = HSL{}
)

func (RGBA) sealed() {}
func (HSV) sealed()  {}
func (HSL) sealed()  {}
