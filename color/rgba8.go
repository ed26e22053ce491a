// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package color

// Rgba8 is an RGBA color with 8-bit channels.
// Whether the channels are premultiplied is a property of the surface the
// color is used with, not of the type.
type Rgba8 struct {
	R, G, B, A uint8
}

// Fixed-point constants of the 8-bit family.
const (
	Rgba8BaseShift = 8
	Rgba8BaseScale = 1 << Rgba8BaseShift
	Rgba8BaseMask  = Rgba8BaseScale - 1
)

// NewRgba8 returns an Rgba8 with the given channels.
func NewRgba8(r, g, b, a uint8) Rgba8 {
	return Rgba8{R: r, G: g, B: b, A: a}
}

// Rgba8FromRGBA converts a floating color, clamping each channel to [0,1].
func Rgba8FromRGBA(c RGBA) Rgba8 {
	return Rgba8{
		R: fromUnit[uint8](c.R),
		G: fromUnit[uint8](c.G),
		B: fromUnit[uint8](c.B),
		A: fromUnit[uint8](c.A),
	}
}

// Clear returns the transparent black color.
func (c Rgba8) Clear() Rgba8 {
	return Rgba8{}
}

// Transparent returns c with zero alpha.
func (c Rgba8) Transparent() Rgba8 {
	c.A = 0
	return c
}

// WithOpacity returns c with alpha set from an opacity in [0,1].
// Out-of-range opacities are clamped.
func (c Rgba8) WithOpacity(a float64) Rgba8 {
	c.A = opacityValue[uint8](a)
	return c
}

// Opacity returns the alpha channel as a value in [0,1].
func (c Rgba8) Opacity() float64 {
	return toUnit(c.A)
}

// IsTransparent reports whether alpha is zero.
func (c Rgba8) IsTransparent() bool { return c.A == 0 }

// IsOpaque reports whether alpha is full.
func (c Rgba8) IsOpaque() bool { return c.A == Rgba8BaseMask }

// Premultiply scales the color channels by alpha. Zero alpha forces all
// color channels to zero.
func (c Rgba8) Premultiply() Rgba8 {
	c.R, c.G, c.B = premultiply(c.R, c.G, c.B, c.A)
	return c
}

// PremultiplyA rescales a premultiplied color to the alpha a.
func (c Rgba8) PremultiplyA(a uint8) Rgba8 {
	c.R, c.G, c.B, c.A = premultiplyA(c.R, c.G, c.B, c.A, a)
	return c
}

// Demultiply divides the color channels by alpha, the inverse of
// Premultiply up to rounding.
func (c Rgba8) Demultiply() Rgba8 {
	c.R, c.G, c.B = demultiply(c.R, c.G, c.B, c.A)
	return c
}

// Gradient interpolates every channel, alpha included, toward o by k.
// The fixed-point factor is round(k * 256) and each channel is computed
// as c + ((o - c) * ik) >> 8.
func (c Rgba8) Gradient(o Rgba8, k float64) Rgba8 {
	ik := GradientFactor[uint8](k)
	return Rgba8{
		R: Gradient(c.R, o.R, ik),
		G: Gradient(c.G, o.G, ik),
		B: Gradient(c.B, o.B, ik),
		A: Gradient(c.A, o.A, ik),
	}
}

// Add accumulates o scaled by cover, saturating every channel.
func (c Rgba8) Add(o Rgba8, cover uint8) Rgba8 {
	if cover == CoverFull && o.A == Rgba8BaseMask {
		return o
	}
	return Rgba8{
		R: addCover(c.R, o.R, cover),
		G: addCover(c.G, o.G, cover),
		B: addCover(c.B, o.B, cover),
		A: addCover(c.A, o.A, cover),
	}
}

// ApplyGammaDir maps the color channels through the forward gamma table.
// The high-resolution result is scaled back to 8 bits.
func (c Rgba8) ApplyGammaDir(g *GammaLUT) Rgba8 {
	c.R, c.G, c.B = g.DirU8(c.R), g.DirU8(c.G), g.DirU8(c.B)
	return c
}

// ApplyGammaInv maps the color channels through the inverse gamma table.
func (c Rgba8) ApplyGammaInv(g *GammaLUT) Rgba8 {
	c.R, c.G, c.B = g.InvU8(c.R), g.InvU8(c.G), g.InvU8(c.B)
	return c
}

// RGBA converts to the floating family.
func (c Rgba8) RGBA() RGBA {
	return RGBA{R: toUnit(c.R), G: toUnit(c.G), B: toUnit(c.B), A: toUnit(c.A)}
}

// Rgba16 widens to 16 bits per channel (v * 257).
func (c Rgba8) Rgba16() Rgba16 {
	return Rgba16{
		R: uint16(c.R) * 257,
		G: uint16(c.G) * 257,
		B: uint16(c.B) * 257,
		A: uint16(c.A) * 257,
	}
}

// Gray8 returns the Rec. 709 luminance of c with the same alpha.
func (c Rgba8) Gray8() Gray8 {
	return Gray8{V: Luminance8(c.R, c.G, c.B), A: c.A}
}

// Luminance8 returns the Rec. 709 luminance of 8-bit channels.
func Luminance8(r, g, b uint8) uint8 {
	return uint8((uint32(r)*55 + uint32(g)*184 + uint32(b)*18) >> 8)
}
