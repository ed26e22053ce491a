// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package color

import (
	"math"
	"testing"
)

func TestMultiplyExact8(t *testing.T) {
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			want := uint8(math.Round(float64(a*b) / 255))
			if got := Multiply(uint8(a), uint8(b)); got != want {
				t.Fatalf("Multiply(%d, %d) = %d, want %d", a, b, got, want)
			}
		}
	}
}

func TestMultiply16(t *testing.T) {
	tests := []struct {
		name string
		a, b uint16
		want uint16
	}{
		{"zero", 0, 65535, 0},
		{"full", 65535, 65535, 65535},
		{"half", 65535, 32768, 32768},
		{"quarter", 32768, 32768, 16384},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Multiply(tt.a, tt.b); got != tt.want {
				t.Errorf("Multiply(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestLerpEndpoints(t *testing.T) {
	for p := 0; p < 256; p += 5 {
		for q := 0; q < 256; q += 3 {
			if got := Lerp(uint8(p), uint8(q), 255); got != uint8(q) {
				t.Fatalf("Lerp(%d, %d, 255) = %d, want %d", p, q, got, q)
			}
			if got := Lerp(uint8(p), uint8(q), 0); got != uint8(p) {
				t.Fatalf("Lerp(%d, %d, 0) = %d, want %d", p, q, got, p)
			}
		}
	}
	if got := Lerp(uint16(0), 65535, 65535); got != 65535 {
		t.Errorf("Lerp16 full = %d, want 65535", got)
	}
}

func TestBaseConstants(t *testing.T) {
	if BaseMask[uint8]() != 255 || BaseShift[uint8]() != 8 {
		t.Errorf("uint8 base: mask %d shift %d", BaseMask[uint8](), BaseShift[uint8]())
	}
	if BaseMask[uint16]() != 65535 || BaseShift[uint16]() != 16 {
		t.Errorf("uint16 base: mask %d shift %d", BaseMask[uint16](), BaseShift[uint16]())
	}
	if CoverValue[uint16](255) != 65535 || CoverValue[uint16](1) != 257 {
		t.Errorf("CoverValue[uint16] mismatch")
	}
}

func TestPremultiplyZeroAlpha(t *testing.T) {
	c := Rgba8{R: 200, G: 100, B: 50, A: 0}.Premultiply()
	if c != (Rgba8{}) {
		t.Errorf("Premultiply with zero alpha = %+v, want all zero", c)
	}
	c16 := Rgba16{R: 9000, G: 1, B: 65535, A: 0}.Premultiply()
	if c16 != (Rgba16{}) {
		t.Errorf("Rgba16 Premultiply with zero alpha = %+v", c16)
	}
}

// Above alpha 85 the 8-bit quantization of premultiplied channels is fine
// enough for a ±1 round trip; below it the error grows as 128/alpha.
func TestPremultiplyRoundTrip(t *testing.T) {
	for a := 1; a < 256; a++ {
		for v := 0; v < 256; v++ {
			c := Rgba8{R: uint8(v), G: uint8(255 - v), B: uint8(v / 2), A: uint8(a)}
			got := c.Premultiply().Demultiply()
			tol := 1
			if a <= 85 {
				tol = 128/a + 1
			}
			for _, ch := range [][2]uint8{{got.R, c.R}, {got.G, c.G}, {got.B, c.B}} {
				if d := int(ch[0]) - int(ch[1]); d > tol || d < -tol {
					t.Fatalf("round trip of %+v = %+v (tolerance %d)", c, got, tol)
				}
			}
			if got.A != c.A {
				t.Fatalf("alpha changed: %d -> %d", c.A, got.A)
			}
		}
	}
}

func TestPremultiplyRoundTrip16(t *testing.T) {
	for a := 1; a <= 65535; a += 251 {
		for v := 0; v <= 65535; v += 4093 {
			c := Rgba16{R: uint16(v), G: uint16(v), B: uint16(v), A: uint16(a)}
			got := c.Premultiply().Demultiply()
			tol := 1
			if a <= 21845 {
				tol = 32768/a + 1
			}
			if d := int(got.R) - int(c.R); d > tol || d < -tol {
				t.Fatalf("round trip of %+v = %+v (tolerance %d)", c, got, tol)
			}
		}
	}
}

func TestGray8GradientFixedPoint(t *testing.T) {
	from := Gray8{V: 100, A: 128}
	to := Gray8{V: 200, A: 255}
	got := from.Gradient(to, 0.5)
	// ik = round(0.5*256) = 128
	// v = 100 + (100*128)>>8 = 150, a = 128 + (127*128)>>8 = 191
	if got.V != 150 || got.A != 191 {
		t.Errorf("Gradient = %+v, want {V:150 A:191}", got)
	}
}

func TestRgba8GradientDescending(t *testing.T) {
	got := Rgba8{R: 200, G: 10, B: 0, A: 255}.Gradient(Rgba8{R: 100, G: 10, B: 255, A: 0}, 0.25)
	// ik = 64; r = 200 + (-100*64)>>8 = 175; b = (255*64)>>8 = 63; a = 255 + (-255*64)>>8 = 191
	want := Rgba8{R: 175, G: 10, B: 63, A: 191}
	if got != want {
		t.Errorf("Gradient = %+v, want %+v", got, want)
	}
}

func TestGradientEndpoints(t *testing.T) {
	a := Rgba8{R: 1, G: 2, B: 3, A: 4}
	b := Rgba8{R: 250, G: 128, B: 0, A: 255}
	if got := a.Gradient(b, 0); got != a {
		t.Errorf("Gradient(0) = %+v, want %+v", got, a)
	}
	if got := a.Gradient(b, 1); got != b {
		t.Errorf("Gradient(1) = %+v, want %+v", got, b)
	}
	if got := a.Gradient(b, 7); got != b {
		t.Errorf("Gradient(7) should clamp to 1, got %+v", got)
	}
}

func TestAddSaturates(t *testing.T) {
	tests := []struct {
		name  string
		c, o  Rgba8
		cover uint8
		want  Rgba8
	}{
		{"opaque full cover replaces", Rgba8{10, 10, 10, 10}, Rgba8{1, 2, 3, 255}, 255, Rgba8{1, 2, 3, 255}},
		{"saturates", Rgba8{200, 200, 200, 200}, Rgba8{100, 100, 100, 100}, 255, Rgba8{255, 255, 255, 255}},
		{"half cover", Rgba8{0, 0, 0, 0}, Rgba8{100, 50, 0, 200}, 128, Rgba8{50, 25, 0, 100}},
		{"zero cover", Rgba8{7, 8, 9, 10}, Rgba8{255, 255, 255, 255}, 0, Rgba8{7, 8, 9, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Add(tt.o, tt.cover); got != tt.want {
				t.Errorf("Add = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestOpacity(t *testing.T) {
	tests := []struct {
		in   float64
		want uint8
	}{
		{-1, 0}, {0, 0}, {0.5, 128}, {1, 255}, {3, 255},
	}
	for _, tt := range tests {
		if got := (Rgba8{}).WithOpacity(tt.in).A; got != tt.want {
			t.Errorf("WithOpacity(%v).A = %d, want %d", tt.in, got, tt.want)
		}
	}
	if got := (Rgba8{A: 255}).Opacity(); got != 1 {
		t.Errorf("Opacity() = %v, want 1", got)
	}
}

func TestPremultiplyA(t *testing.T) {
	c := Rgba8{R: 100, G: 50, B: 200, A: 200}.PremultiplyA(100)
	if c.A != 100 || c.R != 50 || c.G != 25 || c.B != 100 {
		t.Errorf("PremultiplyA = %+v", c)
	}
	if z := (Rgba8{R: 1, G: 1, B: 1, A: 1}).PremultiplyA(0); z != (Rgba8{}) {
		t.Errorf("PremultiplyA(0) = %+v, want zero", z)
	}
}

func TestFloatFamilyContract(t *testing.T) {
	c := RGBA{R: 0.8, G: 0.4, B: 0.2, A: 0.5}
	p := c.Premultiply()
	if math.Abs(p.R-0.4) > 1e-12 || p.A != 0.5 {
		t.Errorf("Premultiply = %+v", p)
	}
	d := p.Demultiply()
	if math.Abs(d.R-c.R) > 1e-12 || math.Abs(d.G-c.G) > 1e-12 {
		t.Errorf("Demultiply = %+v, want %+v", d, c)
	}
	if z := (RGBA{R: 1, G: 1, B: 1}).Premultiply(); z != (RGBA{}) {
		t.Errorf("zero alpha Premultiply = %+v", z)
	}
	sum := RGBA{R: 0.9, A: 0.9}.Add(RGBA{R: 0.9, A: 0.9}, 255)
	if sum.R != 1 || sum.A != 1 {
		t.Errorf("Add should saturate, got %+v", sum)
	}
	f := Rgba32{R: 1, A: 1}.Gradient(Rgba32{G: 1, A: 1}, 0.5)
	if f.R != 0.5 || f.G != 0.5 {
		t.Errorf("Rgba32 Gradient = %+v", f)
	}
}

func TestConversions(t *testing.T) {
	c := Rgba8{R: 255, G: 128, B: 0, A: 255}
	if got := c.Rgba16().Rgba8(); got != c {
		t.Errorf("Rgba16 round trip = %+v", got)
	}
	if got := c.RGBA().Rgba8(); got != c {
		t.Errorf("RGBA round trip = %+v", got)
	}
	if got := Rgba32FromRgba8(c).Rgba8(); got != c {
		t.Errorf("Rgba32 round trip = %+v", got)
	}
	if g := (Rgba8{R: 255, G: 255, B: 255, A: 7}).Gray8(); g.V != 255 || g.A != 7 {
		t.Errorf("Gray8 of white = %+v, want {V:255 A:7}", g)
	}
}

func TestFromWavelength(t *testing.T) {
	red := FromWavelength(650, 1)
	if red.R != 1 || red.G != 0 || red.B != 0 || red.A != 1 {
		t.Errorf("650nm = %+v, want pure red", red)
	}
	if c := FromWavelength(900, 1); c.R != 0 || c.G != 0 || c.B != 0 {
		t.Errorf("900nm = %+v, want black", c)
	}
}

func BenchmarkMultiply8(b *testing.B) {
	var sink uint8
	for b.Loop() {
		for i := 0; i < 256; i++ {
			sink += Multiply(uint8(i), 200)
		}
	}
	_ = sink
}
