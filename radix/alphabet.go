// Copyright 2026 The hue Authors
// SPDX-License-Identifier: MIT

package radix

// The alphabet is assembled from fixed blocks. The symbol at index i
// represents digit value i, so the concatenation order below is part of
// the wire format and must never change.
const (
	alphaNum   = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	punct      = "+/!@%^$&*()-_=[]{}|;:,.<>?~`'\"\\ "
	greekUpper = "ΑΒΓΔΕΖΗΘΙΚΛΜΝΞΟΠΡΣΤΥΦΧΨΩ"
	// U+03B1 through U+03F6: Greek lowercase, variant letterforms and the
	// archaic/Coptic-adjacent extensions, ending at ϶.
	greekLower = "αβγδεζηθικλμνξοπρςστυφχψωϊϋόύώϏϐϑϒϓϔϕϖϗϘϙϚϛϜϝϞϟϠϡϢϣϤϥϦϧϨϩϪϫϬϭϮϯϰϱϲϳϴϵ϶"
	// U+0400 through U+044F: Ѐ..Џ then А..я.
	cyrillic = "ЀЁЂЃЄЅІЇЈЉЊЋЌЍЎЏАБВГДЕЖЗИЙКЛМНОПРСТУФХЦЧШЩЪЫЬЭЮЯабвгдежзийклмнопрстуфхцчшщъыьэюя"
)

// Alphabet is the full ordered symbol table: 269 unique symbols.
// Base-256 encodings use the first 256 symbols only.
const Alphabet = alphaNum + punct + greekUpper + greekLower + cyrillic + "#"

// MaxBase is the largest usable base, equal to the number of symbols
// in the alphabet.
const MaxBase = 269

// symbols indexes the alphabet by digit value.
var symbols = []rune(Alphabet)

// digitOf maps a symbol to its digit value. Built once at init;
// read-only afterwards, so concurrent lookups need no locking.
var digitOf = make(map[rune]int, len(symbols))

func init() {
	for i, r := range symbols {
		digitOf[r] = i
	}
}
