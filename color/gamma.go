// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package color

import "math"

// GammaLUT is a bidirectional gamma table between 8-bit channel values
// (low resolution) and a high-resolution linear domain of HiResShift bits.
//
//	dir[i] = round((i/255)^gamma * hiMask)
//	inv[j] = round((j/hiMask)^(1/gamma) * 255)
//
// A GammaLUT is read-only after construction and may be shared between
// goroutines.
type GammaLUT struct {
	gamma   float64
	hiShift uint
	dir     [256]uint16
	inv     []uint8
}

// NewGammaLUT builds a table with an 8-bit high-resolution domain.
func NewGammaLUT(gamma float64) *GammaLUT {
	return NewGammaLUTHiRes(gamma, 8)
}

// NewGammaLUTHiRes builds a table with a high-resolution domain of hiShift
// bits. hiShift is clamped to [8,16].
func NewGammaLUTHiRes(gamma float64, hiShift uint) *GammaLUT {
	if hiShift < 8 {
		hiShift = 8
	} else if hiShift > 16 {
		hiShift = 16
	}
	g := &GammaLUT{
		hiShift: hiShift,
		inv:     make([]uint8, 1<<hiShift),
	}
	g.SetGamma(gamma)
	return g
}

// NewGammaLUTFunc builds a table from an arbitrary monotonic curve. The
// inverse direction maps each high-resolution value to the smallest 8-bit
// input whose image reaches it.
func NewGammaLUTFunc(f GammaFunc, hiShift uint) *GammaLUT {
	g := NewGammaLUTHiRes(1, hiShift)
	g.gamma = 0
	hiMask := float64(uint32(1)<<g.hiShift - 1)
	for i := range g.dir {
		g.dir[i] = uint16(math.Round(clampUnit(f(float64(i)/255)) * hiMask))
	}
	i := 0
	for j := range g.inv {
		for i < 255 && int(g.dir[i]) < j {
			i++
		}
		g.inv[j] = uint8(i)
	}
	return g
}

// SetGamma rebuilds both directions of the table.
func (g *GammaLUT) SetGamma(gamma float64) {
	g.gamma = gamma
	hiMask := float64(uint32(1)<<g.hiShift - 1)
	if gamma == 1 {
		for i := range g.dir {
			g.dir[i] = uint16(uint32(i) << (g.hiShift - 8))
		}
		for j := range g.inv {
			g.inv[j] = uint8(uint32(j) >> (g.hiShift - 8))
		}
		return
	}
	for i := range g.dir {
		g.dir[i] = uint16(math.Round(math.Pow(float64(i)/255, gamma) * hiMask))
	}
	invG := 1 / gamma
	for j := range g.inv {
		g.inv[j] = uint8(math.Round(math.Pow(float64(j)/hiMask, invG) * 255))
	}
}

// Gamma returns the exponent the table was built with.
func (g *GammaLUT) Gamma() float64 { return g.gamma }

// HiResShift returns the number of bits of the high-resolution domain.
func (g *GammaLUT) HiResShift() uint { return g.hiShift }

// HiResMask returns the largest high-resolution value.
func (g *GammaLUT) HiResMask() uint16 { return uint16(uint32(1)<<g.hiShift - 1) }

// Dir maps an 8-bit value into the high-resolution domain.
func (g *GammaLUT) Dir(v uint8) uint16 { return g.dir[v] }

// Inv maps a high-resolution value back to 8 bits. v must not exceed
// HiResMask.
func (g *GammaLUT) Inv(v uint16) uint8 { return g.inv[v] }

// DirU8 is Dir scaled back to 8 bits.
func (g *GammaLUT) DirU8(v uint8) uint8 {
	return uint8(g.dir[v] >> (g.hiShift - 8))
}

// InvU8 is Inv applied to an 8-bit value scaled into the high-resolution
// domain.
func (g *GammaLUT) InvU8(v uint8) uint8 {
	hiMask := uint32(1)<<g.hiShift - 1
	return g.inv[(uint32(v)*hiMask+127)/255]
}

// GammaFunc maps a coverage or intensity in [0,1] to [0,1].
type GammaFunc func(x float64) float64

// GammaNone is the identity.
func GammaNone() GammaFunc {
	return func(x float64) float64 { return x }
}

// GammaPower raises x to gamma.
func GammaPower(gamma float64) GammaFunc {
	return func(x float64) float64 { return math.Pow(x, gamma) }
}

// GammaThreshold maps x below t to 0 and everything else to 1.
func GammaThreshold(t float64) GammaFunc {
	return func(x float64) float64 {
		if x < t {
			return 0
		}
		return 1
	}
}

// GammaLinear maps [start,end] linearly onto [0,1] and clamps outside it.
func GammaLinear(start, end float64) GammaFunc {
	return func(x float64) float64 {
		if x < start {
			return 0
		}
		if x > end {
			return 1
		}
		if end == start {
			return 1
		}
		return (x - start) / (end - start)
	}
}

// GammaMultiply scales x by m and saturates at 1.
func GammaMultiply(m float64) GammaFunc {
	return func(x float64) float64 {
		return math.Min(x*m, 1)
	}
}

// CoverLUT tabulates f over the 8-bit coverage range. Rasterizers use it
// to reshape coverage before it reaches a scanline.
func CoverLUT(f GammaFunc) [CoverSize]uint8 {
	var lut [CoverSize]uint8
	for i := range lut {
		v := f(float64(i)/CoverMask) * CoverMask
		lut[i] = uint8(math.Round(math.Max(0, math.Min(v, CoverMask))))
	}
	return lut
}
