// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package blend

import "github.com/gogpu/pixcore/color"

// GrayBlender is the contract of single-channel gray surfaces. The pixel
// is addressed through a pointer because gray surfaces may step over
// interleaved buffers.
type GrayBlender[T color.Int] interface {
	BlendPix(p *T, cv, alpha T)
	BlendPixCover(p *T, cv, alpha T, cover uint8)
}

// GrayStraight blends a non-premultiplied gray value.
type GrayStraight[T color.Int] struct{}

// BlendPix interpolates the stored value toward cv.
func (GrayStraight[T]) BlendPix(p *T, cv, alpha T) {
	*p = color.Lerp(*p, cv, alpha)
}

// BlendPixCover is BlendPix with alpha scaled by cover.
func (GrayStraight[T]) BlendPixCover(p *T, cv, alpha T, cover uint8) {
	*p = color.Lerp(*p, cv, coverAlpha(alpha, cover))
}

// GrayPre blends a premultiplied gray value.
type GrayPre[T color.Int] struct{}

// BlendPix computes v' = ((v * (mask - alpha)) >> shift) + cv.
func (GrayPre[T]) BlendPix(p *T, cv, alpha T) {
	mask := uint64(color.BaseMask[T]())
	*p = T((uint64(*p)*(mask-uint64(alpha)))>>color.BaseShift[T]() + uint64(cv))
}

// BlendPixCover scales alpha and cv by cover before blending.
func (GrayPre[T]) BlendPixCover(p *T, cv, alpha T, cover uint8) {
	if cover == color.CoverFull {
		GrayPre[T]{}.BlendPix(p, cv, alpha)
		return
	}
	shift := color.BaseShift[T]()
	mask := uint64(color.BaseMask[T]())
	ia := mask - uint64(coverAlpha(alpha, cover))
	k := (uint64(cover) + 1) << (shift - color.CoverShift)
	*p = T((uint64(*p)*ia + uint64(cv)*k) >> shift)
}
