// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/pixcore/color"
	"github.com/gogpu/pixcore/glyph"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want color.Rgba8
		err  bool
	}{
		{"short", "#f00", color.Rgba8{R: 255, A: 255}, false},
		{"long", "#00ff00", color.Rgba8{G: 255, A: 255}, false},
		{"alpha premultiplied", "#ffffff00", color.Rgba8{}, false},
		{"no hash", "0000ff", color.Rgba8{B: 255, A: 255}, false},
		{"bad length", "#12345", color.Rgba8{}, true},
		{"bad digit", "#gg0000", color.Rgba8{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseColor(tt.in)
			if tt.err {
				if !errors.Is(err, errBadColor) {
					t.Fatalf("parseColor(%q) error = %v, want errBadColor", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseColor(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("parseColor(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDefaultScene(t *testing.T) {
	s, err := loadScene("")
	if err != nil {
		t.Fatal(err)
	}
	if s.Width != 640 || s.Height != 400 {
		t.Errorf("size = %dx%d, want 640x400", s.Width, s.Height)
	}
	kinds := map[string]bool{}
	for _, l := range s.Layers {
		kinds[l.Kind] = true
	}
	for _, k := range []string{"solid", "gradient", "compound", "text"} {
		if !kinds[k] {
			t.Errorf("default scene has no %s layer", k)
		}
	}
}

func TestRun(t *testing.T) {
	s, err := loadScene("")
	if err != nil {
		t.Fatal(err)
	}
	for _, workers := range []int{1, 4} {
		out := filepath.Join(t.TempDir(), "out.png")
		if err := run(s, out, "", workers); err != nil {
			t.Fatalf("workers=%d: %v", workers, err)
		}
		f, err := os.Open(out)
		if err != nil {
			t.Fatal(err)
		}
		img, err := png.Decode(f)
		_ = f.Close()
		if err != nil {
			t.Fatal(err)
		}
		if b := img.Bounds(); b.Dx() != s.Width || b.Dy() != s.Height {
			t.Errorf("workers=%d: bounds = %v", workers, b)
		}
	}
}

func TestDrawErrors(t *testing.T) {
	font, err := glyph.ParseFont(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	c, err := newCanvas(32, 32, 1, nil, font)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name  string
		layer Layer
		want  error
	}{
		{"unknown kind", Layer{Kind: "blur", Shape: Shape{Rect: []float64{0, 0, 4, 4}}}, errBadLayer},
		{"bad shape", Layer{Kind: "solid", Color: "#fff", Shape: Shape{Rect: []float64{0, 0}}}, errBadShape},
		{"bad color", Layer{Kind: "solid", Color: "red", Shape: Shape{Rect: []float64{0, 0, 4, 4}}}, errBadColor},
		{"gradient missing", Layer{Kind: "gradient", Shape: Shape{Rect: []float64{0, 0, 4, 4}}}, errBadLayer},
		{"text without size", Layer{Kind: "text", Color: "#000", Text: "a", At: []float64{1, 1}}, errBadLayer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := c.draw(tt.layer); !errors.Is(err, tt.want) {
				t.Errorf("draw() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestMaskedLayer(t *testing.T) {
	font, err := glyph.ParseFont(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	c, err := newCanvas(20, 10, 1, nil, font)
	if err != nil {
		t.Fatal(err)
	}
	l := Layer{
		Kind:  "solid",
		Color: "#ff0000",
		Shape: Shape{Rect: []float64{0, 0, 20, 10}},
		Mask:  &Shape{Rect: []float64{0, 0, 10, 10}},
	}
	if err := c.draw(l); err != nil {
		t.Fatal(err)
	}
	if got := c.base.Pixel(5, 5); got != (color.Rgba8{R: 255, A: 255}) {
		t.Errorf("inside mask = %+v", got)
	}
	if got := c.base.Pixel(15, 5); got != (color.Rgba8{}) {
		t.Errorf("outside mask = %+v", got)
	}
}
