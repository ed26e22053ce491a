// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package color

import "math"

// sRGBToLinearLUT provides O(1) sRGB to linear conversion.
// Converts sRGB byte [0-255] → linear float32 [0.0-1.0].
var sRGBToLinearLUT [256]float32

// linearToSRGBLUT provides O(1) linear to sRGB conversion.
// Uses 4096 entries for 12-bit precision, sufficient for 8-bit sRGB.
var linearToSRGBLUT [4096]uint8

func init() {
	for i := range sRGBToLinearLUT {
		sRGBToLinearLUT[i] = float32(srgbToLinear(float64(i) / 255))
	}
	for i := range linearToSRGBLUT {
		linearToSRGBLUT[i] = uint8(math.Round(clampUnit(linearToSRGB(float64(i)/4095)) * 255))
	}
}

func srgbToLinear(s float64) float64 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

func linearToSRGB(l float64) float64 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1/2.4) - 0.055
}

// SRGBToLinear converts an sRGB byte to linear light.
func SRGBToLinear(s uint8) float32 {
	return sRGBToLinearLUT[s]
}

// LinearToSRGB converts linear light to an sRGB byte. The input is clamped
// to [0,1].
func LinearToSRGB(l float32) uint8 {
	l = clampUnit32(l)
	return linearToSRGBLUT[int(l*4095+0.5)]
}

// Linear converts an sRGB encoded color to linear light. Alpha is never
// gamma encoded and is only rescaled.
func (c Rgba8) Linear() Rgba32 {
	return Rgba32{
		R: SRGBToLinear(c.R),
		G: SRGBToLinear(c.G),
		B: SRGBToLinear(c.B),
		A: float32(c.A) / Rgba8BaseMask,
	}
}

// SRGB converts a linear color to sRGB encoded 8-bit channels.
func (c Rgba32) SRGB() Rgba8 {
	return Rgba8{
		R: LinearToSRGB(c.R),
		G: LinearToSRGB(c.G),
		B: LinearToSRGB(c.B),
		A: unitToU8(c.A),
	}
}
