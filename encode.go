package hue

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/recollect/hue/radix"
)

// Errors returned by the parse functions.
var (
	// ErrHexFormat is returned for a hex string of the wrong length or
	// with non-hex characters.
	ErrHexFormat = errors.New("hue: invalid hex colour")

	// ErrB256Format is returned for a base-256 string that is not
	// exactly four alphabet symbols with byte-range values.
	ErrB256Format = errors.New("hue: invalid base-256 colour")
)

// Hex returns the colour as eight uppercase hex digits in AARRGGBB
// order, without a leading '#'.
func (c RGBA) Hex() string {
	return fmt.Sprintf("%02X%02X%02X%02X", c.A, c.R, c.G, c.B)
}

// String implements fmt.Stringer as the '#'-prefixed hex form.
func (c RGBA) String() string {
	return "#" + c.Hex()
}

// B256 returns the colour as four symbols of the radix alphabet, each
// encoding one channel at base 256, in alpha, red, green, blue order.
func (c RGBA) B256() string {
	return radix.ToBase256(uint64(c.A)) +
		radix.ToBase256(uint64(c.R)) +
		radix.ToBase256(uint64(c.G)) +
		radix.ToBase256(uint64(c.B))
}

// ARGB returns the colour as comma-separated decimal channels in
// alpha, red, green, blue order.
func (c RGBA) ARGB() string {
	return fmt.Sprintf("%d,%d,%d,%d", c.A, c.R, c.G, c.B)
}

// RGBString returns the colour as comma-separated decimal channels in
// red, green, blue order, dropping alpha.
func (c RGBA) RGBString() string {
	return fmt.Sprintf("%d,%d,%d", c.R, c.G, c.B)
}

// ParseHex parses a hex colour string. A leading '#' is optional and
// matching is case-insensitive. Accepted forms:
//
//	RGB       each nibble doubled, opaque
//	RGBA      each nibble doubled, channel order as given
//	RRGGBB    opaque
//	AARRGGBB  full form, inverse of Hex
//
// ParseHex(c.Hex()) == c exactly for every colour c.
func ParseHex(s string) (RGBA, error) {
	in := s
	s = strings.TrimPrefix(s, "#")

	switch len(s) {
	case 3:
		r, g, b, err := parseNibbles3(s)
		if err != nil {
			return RGBA{}, fmt.Errorf("%w: %q", ErrHexFormat, in)
		}
		return RGBA{A: 255, R: r, G: g, B: b}, nil
	case 4:
		r, g, b, err := parseNibbles3(s[:3])
		if err != nil {
			return RGBA{}, fmt.Errorf("%w: %q", ErrHexFormat, in)
		}
		a, err := parseNibble(s[3])
		if err != nil {
			return RGBA{}, fmt.Errorf("%w: %q", ErrHexFormat, in)
		}
		return RGBA{A: a, R: r, G: g, B: b}, nil
	case 6:
		v, err := strconv.ParseUint(s, 16, 32)
		if err != nil {
			return RGBA{}, fmt.Errorf("%w: %q", ErrHexFormat, in)
		}
		return FromPacked(0xFF000000 | uint32(v)), nil
	case 8:
		v, err := strconv.ParseUint(s, 16, 32)
		if err != nil {
			return RGBA{}, fmt.Errorf("%w: %q", ErrHexFormat, in)
		}
		return FromPacked(uint32(v)), nil
	default:
		return RGBA{}, fmt.Errorf("%w: %q has %d hex digits, want 3, 4, 6 or 8", ErrHexFormat, in, len(s))
	}
}

// parseNibbles3 parses three single hex digits, doubling each nibble
// (short-form "F" means 0xFF).
func parseNibbles3(s string) (a, b, c uint8, err error) {
	if a, err = parseNibble(s[0]); err != nil {
		return 0, 0, 0, err
	}
	if b, err = parseNibble(s[1]); err != nil {
		return 0, 0, 0, err
	}
	if c, err = parseNibble(s[2]); err != nil {
		return 0, 0, 0, err
	}
	return a, b, c, nil
}

func parseNibble(c byte) (uint8, error) {
	switch {
	case '0' <= c && c <= '9':
		return (c - '0') * 17, nil
	case 'a' <= c && c <= 'f':
		return (c - 'a' + 10) * 17, nil
	case 'A' <= c && c <= 'F':
		return (c - 'A' + 10) * 17, nil
	}
	return 0, ErrHexFormat
}

// ParseB256 parses a four-symbol base-256 colour string, the inverse
// of B256. ParseB256(c.B256()) == c exactly for every colour c.
func ParseB256(s string) (RGBA, error) {
	runes := []rune(s)
	if len(runes) != 4 {
		return RGBA{}, fmt.Errorf("%w: %q has %d symbols, want 4", ErrB256Format, s, len(runes))
	}
	var ch [4]uint8
	for i, r := range runes {
		n, err := radix.DecodeUint(string(r), 256)
		if err != nil {
			return RGBA{}, fmt.Errorf("%w: symbol %q: %v", ErrB256Format, r, err)
		}
		ch[i] = uint8(n)
	}
	return RGBA{A: ch[0], R: ch[1], G: ch[2], B: ch[3]}, nil
}
