// Copyright 2026 The hue Authors
// SPDX-License-Identifier: MIT

package radix

import (
	"errors"
	"fmt"
	"strconv"

	"golang.org/x/text/unicode/norm"
)

// Common errors returned by conversions.
var (
	// ErrBase is returned when a base is outside [2, MaxBase].
	ErrBase = errors.New("radix: base out of range")

	// ErrDigit is returned when an input symbol is absent from the
	// source alphabet slice (not in the table, or its digit value is
	// not below the source base).
	ErrDigit = errors.New("radix: symbol not in source alphabet")

	// ErrEmpty is returned when the input digit string is empty.
	ErrEmpty = errors.New("radix: empty input")
)

// Convert re-encodes a non-negative integer, given as a digit string in
// fromBase, into its digit string in toBase. Both bases index the shared
// alphabet, so Convert("FF", 16, 10) == "255".
//
// The input is NFC-normalized before digit lookup: Greek and Cyrillic
// symbols typed in decomposed form still resolve to their table entry.
//
// The conversion is plain schoolbook long division over the digit array,
// which keeps it correct for numbers of any magnitude, not just those
// that fit a machine word.
func Convert(digits string, fromBase, toBase int) (string, error) {
	if fromBase < 2 || fromBase > MaxBase || toBase < 2 || toBase > MaxBase {
		return "", fmt.Errorf("%w: from=%d to=%d (want 2..%d)", ErrBase, fromBase, toBase, MaxBase)
	}
	digits = norm.NFC.String(digits)
	if digits == "" {
		return "", ErrEmpty
	}

	num := make([]int, 0, len(digits))
	for _, r := range digits {
		d, ok := digitOf[r]
		if !ok || d >= fromBase {
			return "", fmt.Errorf("%w: %q in base %d", ErrDigit, r, fromBase)
		}
		num = append(num, d)
	}

	// Repeatedly divide the multi-digit number by toBase. Each pass
	// rewrites num with the quotient (still in fromBase) and yields one
	// output digit as the remainder, least significant first.
	out := make([]rune, 0, len(num))
	for len(num) > 0 {
		quotient := num[:0]
		rem := 0
		started := false
		for _, d := range num {
			acc := rem*fromBase + d
			if acc >= toBase {
				quotient = append(quotient, acc/toBase)
				rem = acc % toBase
				started = true
			} else {
				// Interior zeros of the quotient must be kept;
				// only leading zeros are dropped.
				if started {
					quotient = append(quotient, 0)
				}
				rem = acc
			}
		}
		out = append(out, symbols[rem])
		num = quotient
	}

	// Remainders arrive least significant first.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out), nil
}

// Encode renders a non-negative integer as a digit string in the given base.
func Encode(n uint64, base int) (string, error) {
	return Convert(strconv.FormatUint(n, 10), 10, base)
}

// Decode converts a digit string in the given base to its decimal
// (base-10) string form.
func Decode(digits string, base int) (string, error) {
	return Convert(digits, base, 10)
}

// DecodeUint converts a digit string in the given base to a uint64.
// It fails with strconv.ErrRange semantics if the value overflows.
func DecodeUint(digits string, base int) (uint64, error) {
	dec, err := Decode(digits, base)
	if err != nil {
		return 0, err
	}
	return strconv.ParseUint(dec, 10, 64)
}

// ToBinary renders n in base 2.
func ToBinary(n uint64) string { return mustEncode(n, 2) }

// ToOctal renders n in base 8.
func ToOctal(n uint64) string { return mustEncode(n, 8) }

// ToDecimal renders n in base 10.
func ToDecimal(n uint64) string { return mustEncode(n, 10) }

// ToHex renders n in base 16, uppercase.
func ToHex(n uint64) string { return mustEncode(n, 16) }

// ToBase256 renders n in base 256, one symbol per byte of magnitude.
func ToBase256(n uint64) string { return mustEncode(n, 256) }

// mustEncode backs the fixed-base helpers. Encode cannot fail for a
// valid base and decimal input, so the error is impossible here.
func mustEncode(n uint64, base int) string {
	s, err := Encode(n, base)
	if err != nil {
		panic(err)
	}
	return s
}
