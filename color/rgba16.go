// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package color

// Rgba16 is an RGBA color with 16-bit channels.
type Rgba16 struct {
	R, G, B, A uint16
}

// Fixed-point constants of the 16-bit family.
const (
	Rgba16BaseShift = 16
	Rgba16BaseScale = 1 << Rgba16BaseShift
	Rgba16BaseMask  = Rgba16BaseScale - 1
)

// Rgba16FromRGBA converts a floating color, clamping each channel to [0,1].
func Rgba16FromRGBA(c RGBA) Rgba16 {
	return Rgba16{
		R: fromUnit[uint16](c.R),
		G: fromUnit[uint16](c.G),
		B: fromUnit[uint16](c.B),
		A: fromUnit[uint16](c.A),
	}
}

// Clear returns the transparent black color.
func (c Rgba16) Clear() Rgba16 { return Rgba16{} }

// Transparent returns c with zero alpha.
func (c Rgba16) Transparent() Rgba16 {
	c.A = 0
	return c
}

// WithOpacity returns c with alpha set from an opacity in [0,1].
func (c Rgba16) WithOpacity(a float64) Rgba16 {
	c.A = opacityValue[uint16](a)
	return c
}

// Opacity returns the alpha channel as a value in [0,1].
func (c Rgba16) Opacity() float64 { return toUnit(c.A) }

// IsTransparent reports whether alpha is zero.
func (c Rgba16) IsTransparent() bool { return c.A == 0 }

// IsOpaque reports whether alpha is full.
func (c Rgba16) IsOpaque() bool { return c.A == Rgba16BaseMask }

// Premultiply scales the color channels by alpha.
func (c Rgba16) Premultiply() Rgba16 {
	c.R, c.G, c.B = premultiply(c.R, c.G, c.B, c.A)
	return c
}

// PremultiplyA rescales a premultiplied color to the alpha a.
func (c Rgba16) PremultiplyA(a uint16) Rgba16 {
	c.R, c.G, c.B, c.A = premultiplyA(c.R, c.G, c.B, c.A, a)
	return c
}

// Demultiply divides the color channels by alpha.
func (c Rgba16) Demultiply() Rgba16 {
	c.R, c.G, c.B = demultiply(c.R, c.G, c.B, c.A)
	return c
}

// Gradient interpolates every channel toward o by k using the factor
// round(k * 65536).
func (c Rgba16) Gradient(o Rgba16, k float64) Rgba16 {
	ik := GradientFactor[uint16](k)
	return Rgba16{
		R: Gradient(c.R, o.R, ik),
		G: Gradient(c.G, o.G, ik),
		B: Gradient(c.B, o.B, ik),
		A: Gradient(c.A, o.A, ik),
	}
}

// Add accumulates o scaled by cover, saturating every channel.
func (c Rgba16) Add(o Rgba16, cover uint8) Rgba16 {
	if cover == CoverFull && o.A == Rgba16BaseMask {
		return o
	}
	return Rgba16{
		R: addCover(c.R, o.R, cover),
		G: addCover(c.G, o.G, cover),
		B: addCover(c.B, o.B, cover),
		A: addCover(c.A, o.A, cover),
	}
}

// RGBA converts to the floating family.
func (c Rgba16) RGBA() RGBA {
	return RGBA{R: toUnit(c.R), G: toUnit(c.G), B: toUnit(c.B), A: toUnit(c.A)}
}

// Rgba8 narrows to 8 bits per channel, dropping the low byte.
func (c Rgba16) Rgba8() Rgba8 {
	return Rgba8{
		R: uint8(c.R >> 8),
		G: uint8(c.G >> 8),
		B: uint8(c.B >> 8),
		A: uint8(c.A >> 8),
	}
}
