// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package color

import (
	"math"

	"github.com/chewxy/math32"
)

// RGBA is a double-precision color with channels in [0,1].
type RGBA struct {
	R, G, B, A float64
}

// NewRGBA returns an RGBA with the given channels.
func NewRGBA(r, g, b, a float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: a}
}

// Clear returns transparent black.
func (c RGBA) Clear() RGBA { return RGBA{} }

// Transparent returns c with zero alpha.
func (c RGBA) Transparent() RGBA {
	c.A = 0
	return c
}

// WithOpacity returns c with alpha clamped to [0,1].
func (c RGBA) WithOpacity(a float64) RGBA {
	c.A = clampUnit(a)
	return c
}

// Opacity returns the alpha channel.
func (c RGBA) Opacity() float64 { return c.A }

// IsTransparent reports whether alpha is zero.
func (c RGBA) IsTransparent() bool { return c.A <= 0 }

// IsOpaque reports whether alpha is full.
func (c RGBA) IsOpaque() bool { return c.A >= 1 }

// Premultiply scales the color channels by alpha.
func (c RGBA) Premultiply() RGBA {
	if c.A <= 0 {
		return RGBA{}
	}
	c.R *= c.A
	c.G *= c.A
	c.B *= c.A
	return c
}

// PremultiplyA rescales a premultiplied color to the alpha a.
func (c RGBA) PremultiplyA(a float64) RGBA {
	if c.A <= 0 || a <= 0 {
		return RGBA{}
	}
	k := a / c.A
	c.R = math.Min(c.R*k, a)
	c.G = math.Min(c.G*k, a)
	c.B = math.Min(c.B*k, a)
	c.A = a
	return c
}

// Demultiply divides the color channels by alpha.
func (c RGBA) Demultiply() RGBA {
	if c.A <= 0 {
		c.R, c.G, c.B = 0, 0, 0
		return c
	}
	k := 1 / c.A
	c.R = math.Min(c.R*k, 1)
	c.G = math.Min(c.G*k, 1)
	c.B = math.Min(c.B*k, 1)
	return c
}

// Gradient interpolates every channel toward o by k.
func (c RGBA) Gradient(o RGBA, k float64) RGBA {
	return RGBA{
		R: c.R + (o.R-c.R)*k,
		G: c.G + (o.G-c.G)*k,
		B: c.B + (o.B-c.B)*k,
		A: c.A + (o.A-c.A)*k,
	}
}

// Add accumulates o scaled by cover, saturating at 1.
func (c RGBA) Add(o RGBA, cover uint8) RGBA {
	if cover == CoverFull && o.A >= 1 {
		return o
	}
	k := float64(cover) / CoverMask
	return RGBA{
		R: math.Min(c.R+o.R*k, 1),
		G: math.Min(c.G+o.G*k, 1),
		B: math.Min(c.B+o.B*k, 1),
		A: math.Min(c.A+o.A*k, 1),
	}
}

// Clamp returns c with every channel clamped to [0,1].
func (c RGBA) Clamp() RGBA {
	return RGBA{R: clampUnit(c.R), G: clampUnit(c.G), B: clampUnit(c.B), A: clampUnit(c.A)}
}

// Rgba8 converts to 8 bits per channel.
func (c RGBA) Rgba8() Rgba8 { return Rgba8FromRGBA(c) }

// Rgba32 converts to single precision.
func (c RGBA) Rgba32() Rgba32 {
	return Rgba32{R: float32(c.R), G: float32(c.G), B: float32(c.B), A: float32(c.A)}
}

// FromWavelength returns the color of visible light with wavelength wl
// nanometers (380..780), with the given display gamma applied.
// Wavelengths outside the visible range are black.
func FromWavelength(wl, gamma float64) RGBA {
	var t RGBA
	switch {
	case wl >= 380 && wl <= 440:
		t.R = -(wl - 440) / (440 - 380)
		t.B = 1
	case wl >= 440 && wl <= 490:
		t.G = (wl - 440) / (490 - 440)
		t.B = 1
	case wl >= 490 && wl <= 510:
		t.G = 1
		t.B = -(wl - 510) / (510 - 490)
	case wl >= 510 && wl <= 580:
		t.R = (wl - 510) / (580 - 510)
		t.G = 1
	case wl >= 580 && wl <= 645:
		t.R = 1
		t.G = -(wl - 645) / (645 - 580)
	case wl >= 645 && wl <= 780:
		t.R = 1
	}
	s := 1.0
	if wl > 700 {
		s = 0.3 + 0.7*(780-wl)/(780-700)
	} else if wl < 420 {
		s = 0.3 + 0.7*(wl-380)/(420-380)
	}
	t.R = math.Pow(t.R*s, gamma)
	t.G = math.Pow(t.G*s, gamma)
	t.B = math.Pow(t.B*s, gamma)
	t.A = 1
	return t
}

// Rgba32 is a single-precision color with channels in [0,1].
type Rgba32 struct {
	R, G, B, A float32
}

// Clear returns transparent black.
func (c Rgba32) Clear() Rgba32 { return Rgba32{} }

// WithOpacity returns c with alpha clamped to [0,1].
func (c Rgba32) WithOpacity(a float64) Rgba32 {
	c.A = clampUnit32(float32(a))
	return c
}

// Opacity returns the alpha channel.
func (c Rgba32) Opacity() float64 { return float64(c.A) }

// IsTransparent reports whether alpha is zero.
func (c Rgba32) IsTransparent() bool { return c.A <= 0 }

// IsOpaque reports whether alpha is full.
func (c Rgba32) IsOpaque() bool { return c.A >= 1 }

// Premultiply scales the color channels by alpha.
func (c Rgba32) Premultiply() Rgba32 {
	if c.A <= 0 {
		return Rgba32{}
	}
	c.R *= c.A
	c.G *= c.A
	c.B *= c.A
	return c
}

// Demultiply divides the color channels by alpha.
func (c Rgba32) Demultiply() Rgba32 {
	if c.A <= 0 {
		c.R, c.G, c.B = 0, 0, 0
		return c
	}
	k := 1 / c.A
	c.R = math32.Min(c.R*k, 1)
	c.G = math32.Min(c.G*k, 1)
	c.B = math32.Min(c.B*k, 1)
	return c
}

// Gradient interpolates every channel toward o by k.
func (c Rgba32) Gradient(o Rgba32, k float64) Rgba32 {
	kf := float32(k)
	return Rgba32{
		R: c.R + (o.R-c.R)*kf,
		G: c.G + (o.G-c.G)*kf,
		B: c.B + (o.B-c.B)*kf,
		A: c.A + (o.A-c.A)*kf,
	}
}

// Add accumulates o scaled by cover, saturating at 1.
func (c Rgba32) Add(o Rgba32, cover uint8) Rgba32 {
	if cover == CoverFull && o.A >= 1 {
		return o
	}
	k := float32(cover) / CoverMask
	return Rgba32{
		R: math32.Min(c.R+o.R*k, 1),
		G: math32.Min(c.G+o.G*k, 1),
		B: math32.Min(c.B+o.B*k, 1),
		A: math32.Min(c.A+o.A*k, 1),
	}
}

// RGBA converts to double precision.
func (c Rgba32) RGBA() RGBA {
	return RGBA{R: float64(c.R), G: float64(c.G), B: float64(c.B), A: float64(c.A)}
}

// Rgba8 converts to 8 bits per channel.
func (c Rgba32) Rgba8() Rgba8 {
	return Rgba8{R: unitToU8(c.R), G: unitToU8(c.G), B: unitToU8(c.B), A: unitToU8(c.A)}
}

// Rgba32FromRgba8 converts an 8-bit color to single precision.
func Rgba32FromRgba8(c Rgba8) Rgba32 {
	return Rgba32{
		R: float32(c.R) / Rgba8BaseMask,
		G: float32(c.G) / Rgba8BaseMask,
		B: float32(c.B) / Rgba8BaseMask,
		A: float32(c.A) / Rgba8BaseMask,
	}
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampUnit32(v float32) float32 {
	return math32.Max(0, math32.Min(v, 1))
}

// unitToU8 converts v in [0,1] to 0..255 with rounding.
func unitToU8(v float32) uint8 {
	return uint8(clampUnit32(v)*Rgba8BaseMask + 0.5)
}
