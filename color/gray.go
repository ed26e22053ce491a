// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package color

import "github.com/chewxy/math32"

// Gray8 is a gray value with alpha, 8 bits per channel.
type Gray8 struct {
	V, A uint8
}

// Clear returns transparent black.
func (c Gray8) Clear() Gray8 { return Gray8{} }

// WithOpacity returns c with alpha set from an opacity in [0,1].
func (c Gray8) WithOpacity(a float64) Gray8 {
	c.A = opacityValue[uint8](a)
	return c
}

// Opacity returns the alpha channel as a value in [0,1].
func (c Gray8) Opacity() float64 { return toUnit(c.A) }

// IsTransparent reports whether alpha is zero.
func (c Gray8) IsTransparent() bool { return c.A == 0 }

// IsOpaque reports whether alpha is full.
func (c Gray8) IsOpaque() bool { return c.A == Rgba8BaseMask }

// Premultiply scales the value by alpha.
func (c Gray8) Premultiply() Gray8 {
	c.V, _, _ = premultiply(c.V, 0, 0, c.A)
	return c
}

// PremultiplyA rescales a premultiplied value to the alpha a.
func (c Gray8) PremultiplyA(a uint8) Gray8 {
	c.V, _, _, c.A = premultiplyA(c.V, 0, 0, c.A, a)
	return c
}

// Demultiply divides the value by alpha.
func (c Gray8) Demultiply() Gray8 {
	c.V, _, _ = demultiply(c.V, 0, 0, c.A)
	return c
}

// Gradient interpolates value and alpha toward o by k with the factor
// round(k * 256): v + ((o.v - v) * ik) >> 8.
func (c Gray8) Gradient(o Gray8, k float64) Gray8 {
	ik := GradientFactor[uint8](k)
	return Gray8{V: Gradient(c.V, o.V, ik), A: Gradient(c.A, o.A, ik)}
}

// Add accumulates o scaled by cover, saturating.
func (c Gray8) Add(o Gray8, cover uint8) Gray8 {
	if cover == CoverFull && o.A == Rgba8BaseMask {
		return o
	}
	return Gray8{V: addCover(c.V, o.V, cover), A: addCover(c.A, o.A, cover)}
}

// Rgba8 expands the gray value into all three color channels.
func (c Gray8) Rgba8() Rgba8 {
	return Rgba8{R: c.V, G: c.V, B: c.V, A: c.A}
}

// Gray16 is a gray value with alpha, 16 bits per channel.
type Gray16 struct {
	V, A uint16
}

// Clear returns transparent black.
func (c Gray16) Clear() Gray16 { return Gray16{} }

// WithOpacity returns c with alpha set from an opacity in [0,1].
func (c Gray16) WithOpacity(a float64) Gray16 {
	c.A = opacityValue[uint16](a)
	return c
}

// Opacity returns the alpha channel as a value in [0,1].
func (c Gray16) Opacity() float64 { return toUnit(c.A) }

// IsTransparent reports whether alpha is zero.
func (c Gray16) IsTransparent() bool { return c.A == 0 }

// IsOpaque reports whether alpha is full.
func (c Gray16) IsOpaque() bool { return c.A == Rgba16BaseMask }

// Premultiply scales the value by alpha.
func (c Gray16) Premultiply() Gray16 {
	c.V, _, _ = premultiply(c.V, 0, 0, c.A)
	return c
}

// Demultiply divides the value by alpha.
func (c Gray16) Demultiply() Gray16 {
	c.V, _, _ = demultiply(c.V, 0, 0, c.A)
	return c
}

// Gradient interpolates value and alpha toward o by k.
func (c Gray16) Gradient(o Gray16, k float64) Gray16 {
	ik := GradientFactor[uint16](k)
	return Gray16{V: Gradient(c.V, o.V, ik), A: Gradient(c.A, o.A, ik)}
}

// Add accumulates o scaled by cover, saturating.
func (c Gray16) Add(o Gray16, cover uint8) Gray16 {
	if cover == CoverFull && o.A == Rgba16BaseMask {
		return o
	}
	return Gray16{V: addCover(c.V, o.V, cover), A: addCover(c.A, o.A, cover)}
}

// Gray8 narrows to 8 bits per channel.
func (c Gray16) Gray8() Gray8 {
	return Gray8{V: uint8(c.V >> 8), A: uint8(c.A >> 8)}
}

// Gray32 is a floating gray value with alpha in [0,1].
type Gray32 struct {
	V, A float32
}

// Clear returns transparent black.
func (c Gray32) Clear() Gray32 { return Gray32{} }

// WithOpacity returns c with alpha set from an opacity in [0,1].
func (c Gray32) WithOpacity(a float64) Gray32 {
	c.A = clampUnit32(float32(a))
	return c
}

// Opacity returns the alpha channel.
func (c Gray32) Opacity() float64 { return float64(c.A) }

// IsTransparent reports whether alpha is zero.
func (c Gray32) IsTransparent() bool { return c.A <= 0 }

// IsOpaque reports whether alpha is full.
func (c Gray32) IsOpaque() bool { return c.A >= 1 }

// Premultiply scales the value by alpha.
func (c Gray32) Premultiply() Gray32 {
	if c.A <= 0 {
		return Gray32{}
	}
	c.V *= c.A
	return c
}

// Demultiply divides the value by alpha.
func (c Gray32) Demultiply() Gray32 {
	if c.A <= 0 {
		c.V = 0
		return c
	}
	c.V = math32.Min(c.V/c.A, 1)
	return c
}

// Gradient interpolates value and alpha toward o by k.
func (c Gray32) Gradient(o Gray32, k float64) Gray32 {
	kf := float32(k)
	return Gray32{V: c.V + (o.V-c.V)*kf, A: c.A + (o.A-c.A)*kf}
}

// Add accumulates o scaled by cover, saturating at 1.
func (c Gray32) Add(o Gray32, cover uint8) Gray32 {
	if cover == CoverFull && o.A >= 1 {
		return o
	}
	k := float32(cover) / CoverMask
	return Gray32{V: math32.Min(c.V+o.V*k, 1), A: math32.Min(c.A+o.A*k, 1)}
}

// Gray8 converts to 8 bits per channel.
func (c Gray32) Gray8() Gray8 {
	return Gray8{V: unitToU8(c.V), A: unitToU8(c.A)}
}
