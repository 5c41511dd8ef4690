// Copyright 2026 The hue Authors
// SPDX-License-Identifier: MIT

package huegloss

import (
	"testing"

	"github.com/recollect/hue"
)

func TestColor(t *testing.T) {
	tests := []struct {
		name string
		c    hue.RGBA
		want string
	}{
		{name: "red", c: hue.Red, want: "#FF0000"},
		{name: "padded channels", c: hue.RGB(1, 2, 3), want: "#010203"},
		{name: "alpha dropped", c: hue.ARGB(0, 52, 152, 219), want: "#3498DB"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(Color(tt.c)); got != tt.want {
				t.Errorf("Color(%v) = %q, want %q", tt.c, got, tt.want)
			}
		})
	}
}

func TestAdaptive(t *testing.T) {
	a := Adaptive(hue.White, hue.Black)
	if a.Light != "#FFFFFF" || a.Dark != "#000000" {
		t.Errorf("Adaptive = %+v", a)
	}
}

func TestAutoStyle(t *testing.T) {
	// Dark background gets white text, light background black text.
	if got := AutoStyle(hue.Black).GetForeground(); got != Color(hue.White) {
		t.Errorf("foreground over black = %v", got)
	}
	if got := AutoStyle(hue.White).GetForeground(); got != Color(hue.Black) {
		t.Errorf("foreground over white = %v", got)
	}
}
