package hue

import (
	"math"
	"testing"
)

func TestConstructorsClamp(t *testing.T) {
	tests := []struct {
		name string
		got  RGBA
		want RGBA
	}{
		{name: "argb in range", got: ARGB(255, 10, 20, 30), want: RGBA{255, 10, 20, 30}},
		{name: "argb clamps high", got: ARGB(300, 256, 999, 255), want: RGBA{255, 255, 255, 255}},
		{name: "argb clamps low", got: ARGB(-1, -20, 0, 5), want: RGBA{0, 0, 0, 5}},
		{name: "rgb is opaque", got: RGB(1, 2, 3), want: RGBA{255, 1, 2, 3}},
		{name: "opacity percent", got: Opacity(50, 255, 0, 0), want: RGBA{128, 255, 0, 0}},
		{name: "opacity clamps", got: Opacity(150, 255, 0, 0), want: RGBA{255, 255, 0, 0}},
		{name: "fraction", got: FromFraction(1, 0, 1, 0.5), want: RGBA{255, 0, 255, 128}},
		{name: "fraction clamps", got: FromFraction(2, -1, 0, 0), want: RGBA{255, 0, 0, 0}},
		{name: "percent", got: FromPercent(100, 0, 100, 50), want: RGBA{255, 0, 255, 128}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestPackedRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		c    RGBA
		want uint32
	}{
		{name: "opaque red", c: Red, want: 0xFFFF0000},
		{name: "transparent black", c: Transparent, want: 0x00000000},
		{name: "arbitrary", c: ARGB(1, 2, 3, 4), want: 0x01020304},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Packed(); got != tt.want {
				t.Errorf("Packed() = %08X, want %08X", got, tt.want)
			}
			if got := FromPacked(tt.want); got != tt.c {
				t.Errorf("FromPacked(%08X) = %v, want %v", tt.want, got, tt.c)
			}
		})
	}
}

// Value equality follows the packed form: two colours are equal exactly
// when their packed values are.
func TestEquality(t *testing.T) {
	a := ARGB(255, 10, 20, 30)
	b := FromPacked(a.Packed())
	if a != b {
		t.Errorf("%v != %v after packed round trip", a, b)
	}
	if a == ARGB(254, 10, 20, 30) {
		t.Error("colours differing in alpha compare equal")
	}
}

func TestLerp(t *testing.T) {
	mid := Black.Lerp(White, 0.5)
	if mid != RGB(128, 128, 128) {
		t.Errorf("midpoint = %v", mid)
	}
	if got := Black.Lerp(White, 0); got != Black {
		t.Errorf("t=0 = %v", got)
	}
	if got := Black.Lerp(White, 1); got != White {
		t.Errorf("t=1 = %v", got)
	}
}

func TestMix(t *testing.T) {
	// Endpoints are exact.
	if got := Red.Mix(Blue, 0); got != Red {
		t.Errorf("t=0 = %v", got)
	}
	if got := Red.Mix(Blue, 1); got != Blue {
		t.Errorf("t=1 = %v", got)
	}
	// The linear-light midpoint of black and white is sRGB 188, not 128.
	mid := Black.Mix(White, 0.5)
	if mid.R != 188 || mid.G != 188 || mid.B != 188 {
		t.Errorf("linear midpoint = %v, want 188 per channel", mid)
	}
	// Alpha interpolates linearly, never through the gamma curve.
	a := ARGB(0, 0, 0, 0).Mix(ARGB(255, 0, 0, 0), 0.5).A
	if a != 128 {
		t.Errorf("alpha midpoint = %d, want 128", a)
	}
}

func TestLuminance(t *testing.T) {
	if got := Black.Luminance(); got != 0 {
		t.Errorf("black luminance = %v", got)
	}
	if got := White.Luminance(); math.Abs(got-1) > 1e-9 {
		t.Errorf("white luminance = %v", got)
	}
	// Rec. 709: green dominates.
	if !(Green.Luminance() > Red.Luminance() && Red.Luminance() > Blue.Luminance()) {
		t.Errorf("luminance order wrong: R=%v G=%v B=%v",
			Red.Luminance(), Green.Luminance(), Blue.Luminance())
	}
}

func TestIsDark(t *testing.T) {
	if !Black.IsDark() {
		t.Error("black is not dark")
	}
	if White.IsDark() {
		t.Error("white is dark")
	}
	if !Blue.IsDark() {
		t.Error("pure blue should be dark (luminance 0.072)")
	}
}
