// Copyright 2026 The hue Authors
// SPDX-License-Identifier: MIT

// Package huecell bridges hue colours to tcell cell colours and styles.
//
// tcell packs RGB into its own Color type; this package converts in
// both directions so palettes built in hue can drive a tcell screen:
//
//	st := huecell.Style(hue.White, hue.RGB(40, 44, 52))
//	screen.SetContent(x, y, r, nil, st)
//
// The adapter lives outside the core on purpose: package hue stays
// free of any UI framework's colour type.
package huecell
