// Copyright 2026 The hue Authors
// SPDX-License-Identifier: MIT

// Package radix converts non-negative integers between positional numeral
// systems of any base from 2 up to the full symbol alphabet (269 symbols).
//
// Unlike strconv, which stops at base 36, radix draws its digits from a
// fixed Unicode alphabet large enough for base-256 encodings, where one
// symbol carries a full byte. The conversion core operates on digit strings
// rather than machine integers, so it handles numbers of any magnitude.
//
// # Wire compatibility
//
// The alphabet ordering is part of the wire format: two implementations
// with different alphabets produce incompatible encodings. The table in
// this package is frozen; see [Alphabet].
//
// # Quick Start
//
//	s, _ := radix.Encode(255, 16)        // "FF"
//	s, _ = radix.Convert("101010", 2, 10) // "42"
//	n, _ := radix.DecodeUint("FF", 16)    // 255
//
// All functions are pure and safe for concurrent use.
package radix
