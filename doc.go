// Package hue provides immutable colour value types with exact
// serialization formats.
//
// # Overview
//
// hue represents a colour in three interchangeable spaces: device-scale
// RGBA (one byte per channel), HSV, and HSL. The three types form a
// closed set — every one of them converts to every other via ToRGBA,
// ToHSV, and ToHSL — and all values are immutable: conversions return
// new values and never mutate shared state.
//
// # Quick Start
//
//	c, err := hue.ParseHex("#3498DB")
//	if err != nil { ... }
//
//	c.Hex()    // "FF3498DB"  (AARRGGBB, uppercase)
//	c.B256()   // four alphabet symbols, one per channel
//	c.ARGB()   // "255,52,152,219"
//	c.ToHSV()  // hue.HSV{A:1, H:204.1, S:0.76, V:0.86}
//
// # Serialization
//
// An RGBA colour serializes to four bit-exact wire formats: 8-digit
// uppercase hex in AARRGGBB order, a 4-symbol base-256 string built on
// the radix subpackage, and comma-separated ARGB/RGB decimal tuples.
// ParseHex and ParseB256 invert Hex and B256 exactly; HSV and HSL round
// trips through RGBA are correct to ±1 per channel due to rounding.
//
// # Range policy
//
// Constructors clamp out-of-range inputs to the channel domain rather
// than failing: byte channels to [0,255], fractions to [0,1], hue is
// wrapped into [0,360). Parse functions fail with ErrHexFormat or
// ErrB256Format on malformed input; they never guess.
//
// # Concurrency
//
// Everything in this package is a pure function over immutable values
// and is safe for concurrent use without synchronization.
package hue

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
