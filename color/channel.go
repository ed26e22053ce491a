// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package color implements the color values used by pixel formats and
// renderers.
//
// Two families satisfy the same algebra: fixed-point integer colors (8 and
// 16 bit per channel, values 0..BaseMask) and floating colors (0..1).
// Operations never produce values outside the channel range: additions
// saturate and interpolation stays between its endpoints.
//
// Colors are small values. Methods return a modified copy so calls chain:
//
//	c := color.Rgba8{R: 200, G: 100, B: 50, A: 128}.Premultiply()
package color

import "math/bits"

// Cover range of the 8-bit coverage values produced by scanlines.
const (
	CoverShift = 8
	CoverSize  = 1 << CoverShift
	CoverMask  = CoverSize - 1
	CoverNone  = 0
	CoverFull  = CoverMask
)

// Int is the constraint for fixed-point channel storage.
type Int interface {
	~uint8 | ~uint16
}

// BaseMask returns the full-intensity value of T (255 or 65535).
func BaseMask[T Int]() T {
	return ^T(0)
}

// BaseShift returns the number of bits in T (8 or 16).
func BaseShift[T Int]() uint {
	return uint(bits.Len64(uint64(^T(0))))
}

// Multiply returns a*b/BaseMask with exact rounding.
func Multiply[T Int](a, b T) T {
	shift := BaseShift[T]()
	t := uint64(a)*uint64(b) + 1<<(shift-1)
	return T(((t >> shift) + t) >> shift)
}

// Demultiply returns a*BaseMask/b rounded, saturating at BaseMask.
func Demultiply[T Int](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}
	if a >= b {
		return BaseMask[T]()
	}
	return T((uint64(a)*uint64(BaseMask[T]()) + uint64(b)/2) / uint64(b))
}

// Lerp interpolates from p to q by a, where a is in 0..BaseMask.
// Lerp(p, q, BaseMask) == q and Lerp(p, q, 0) == p exactly.
func Lerp[T Int](p, q, a T) T {
	shift := BaseShift[T]()
	t := (int64(q)-int64(p))*int64(a) + int64(1)<<(shift-1)
	if p > q {
		t--
	}
	return T(int64(p) + (((t >> shift) + t) >> shift))
}

// Prelerp interpolates premultiplied values: p + q - p*a.
func Prelerp[T Int](p, q, a T) T {
	v := uint64(p) + uint64(q) - uint64(Multiply(p, a))
	if m := uint64(BaseMask[T]()); v > m {
		return T(m)
	}
	return T(v)
}

// CoverValue scales an 8-bit coverage value to the range of T.
func CoverValue[T Int](cover uint8) T {
	return T(uint64(cover) * uint64(BaseMask[T]()) / CoverMask)
}

// MultCover scales a channel value by an 8-bit coverage value.
func MultCover[T Int](a T, cover uint8) T {
	return Multiply(a, CoverValue[T](cover))
}

// ScaleCover scales an 8-bit coverage value by a channel value.
func ScaleCover[T Int](cover uint8, a T) uint8 {
	shift := BaseShift[T]()
	return uint8(Multiply(CoverValue[T](cover), a) >> (shift - CoverShift))
}

// AddSat adds two channel values, saturating at BaseMask.
func AddSat[T Int](a, b T) T {
	v := uint64(a) + uint64(b)
	if m := uint64(BaseMask[T]()); v > m {
		return T(m)
	}
	return T(v)
}

// Gradient interpolates p toward q with the fixed-point factor ik, where
// ik = round(k * 2^BaseShift). The product is floored with an arithmetic
// shift, so the result never rounds differently from that formula.
func Gradient[T Int](p, q T, ik int64) T {
	return T(int64(p) + ((int64(q)-int64(p))*ik)>>BaseShift[T]())
}

// GradientFactor converts an interpolation weight k in [0,1] to the
// fixed-point factor used by Gradient. Values outside [0,1] are clamped.
func GradientFactor[T Int](k float64) int64 {
	if k < 0 {
		k = 0
	} else if k > 1 {
		k = 1
	}
	return int64(k*float64(uint64(1)<<BaseShift[T]()) + 0.5)
}

// premultiply scales r, g, b by a.
func premultiply[T Int](r, g, b, a T) (T, T, T) {
	switch a {
	case BaseMask[T]():
		return r, g, b
	case 0:
		return 0, 0, 0
	}
	return Multiply(r, a), Multiply(g, a), Multiply(b, a)
}

// premultiplyA rescales premultiplied r, g, b from alpha a to alpha na.
func premultiplyA[T Int](r, g, b, a, na T) (T, T, T, T) {
	if a == BaseMask[T]() && na == BaseMask[T]() {
		return r, g, b, a
	}
	if a == 0 || na == 0 {
		return 0, 0, 0, 0
	}
	scale := func(v T) T {
		x := uint64(v) * uint64(na) / uint64(a)
		if x > uint64(na) {
			x = uint64(na)
		}
		return T(x)
	}
	return scale(r), scale(g), scale(b), na
}

// demultiply divides r, g, b by a.
func demultiply[T Int](r, g, b, a T) (T, T, T) {
	switch a {
	case BaseMask[T]():
		return r, g, b
	case 0:
		return 0, 0, 0
	}
	return Demultiply(r, a), Demultiply(g, a), Demultiply(b, a)
}

// addCover accumulates o into v scaled by cover, saturating.
func addCover[T Int](v, o T, cover uint8) T {
	if cover == CoverFull {
		return AddSat(v, o)
	}
	return AddSat(v, MultCover(o, cover))
}

// opacityValue converts an opacity in [0,1] to a fixed-point alpha.
func opacityValue[T Int](a float64) T {
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	return T(a*float64(BaseMask[T]()) + 0.5)
}

// toUnit converts a channel value to [0,1].
func toUnit[T Int](v T) float64 {
	return float64(v) / float64(BaseMask[T]())
}

// fromUnit converts v in [0,1] to a channel value, clamping.
func fromUnit[T Int](v float64) T {
	return opacityValue[T](v)
}
