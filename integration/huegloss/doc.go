// Copyright 2026 The hue Authors
// SPDX-License-Identifier: MIT

// Package huegloss bridges hue colours to lipgloss terminal styles.
//
// lipgloss addresses colours as hex strings; this package renders hue
// values into that form so palettes can be built once in hue and
// styled anywhere lipgloss runs:
//
//	accent := hue.RGB(52, 152, 219)
//	style := huegloss.Style(hue.White, accent)
//	fmt.Println(style.Render("deploy ok"))
//
// The adapter lives outside the core on purpose: package hue stays
// free of any UI framework's colour type.
package huegloss
