// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package blend implements the per-pixel blend math used by pixel formats.
//
// A blender receives the channels of one stored pixel and a source color
// whose alpha already reflects its full intended contribution. The Cover
// variants additionally scale the contribution by an 8-bit coverage value:
//
//	alpha' = (alpha * (cover + 1)) >> 8
//
// Variants:
//   - Straight: color channels interpolate toward the source, stored alpha
//     is left unmodified
//   - RGBA: like Straight, but the stored alpha is composed with
//     a' = a + alpha - a*alpha
//   - Pre: premultiplied destination, d' = ((d * (mask - alpha)) >> shift) + s
//   - Gamma: Straight computed in the linear domain of a color.GammaLUT
//   - CompOp: any of the 28 operators of Table, selected at run time
//
// Blenders never check bounds. The pixel slice must start at the pixel and
// hold at least the layout's width.
package blend

import (
	"github.com/gogpu/pixcore/color"
	"github.com/gogpu/pixcore/order"
)

// Blender is the contract of interleaved RGB and RGBA surfaces.
type Blender[T color.Int] interface {
	// BlendPix blends the source into p with the given alpha.
	BlendPix(p []T, cr, cg, cb, alpha T)
	// BlendPixCover blends with alpha additionally scaled by cover.
	BlendPixCover(p []T, cr, cg, cb, alpha T, cover uint8)
	// Layout returns the channel offsets the blender was built for.
	Layout() order.Layout
}

// Custom is implemented by blenders whose result at full alpha is not
// a plain copy of the source. Surfaces never take the copy fast path or
// the transparent-source skip for such blenders.
type Custom interface {
	Custom() bool
}

// coverAlpha returns alpha scaled by an 8-bit coverage value.
func coverAlpha[T color.Int](alpha T, cover uint8) T {
	return T((uint64(alpha) * (uint64(cover) + 1)) >> color.CoverShift)
}

// Straight blends non-premultiplied color channels and never writes alpha.
type Straight[T color.Int] struct {
	l order.Layout
}

// NewStraight returns a straight blender for the given channel order.
func NewStraight[T color.Int](o order.Order) *Straight[T] {
	return &Straight[T]{l: o.Layout()}
}

// Layout returns the channel offsets.
func (b *Straight[T]) Layout() order.Layout { return b.l }

// BlendPix interpolates each color channel toward the source. The
// interpolation is exactly rounded, so alpha == BaseMask yields the source.
func (b *Straight[T]) BlendPix(p []T, cr, cg, cb, alpha T) {
	p[b.l.R] = color.Lerp(p[b.l.R], cr, alpha)
	p[b.l.G] = color.Lerp(p[b.l.G], cg, alpha)
	p[b.l.B] = color.Lerp(p[b.l.B], cb, alpha)
}

// BlendPixCover is BlendPix with alpha scaled by cover.
func (b *Straight[T]) BlendPixCover(p []T, cr, cg, cb, alpha T, cover uint8) {
	b.BlendPix(p, cr, cg, cb, coverAlpha(alpha, cover))
}

// RGBA blends non-premultiplied colors and composes the stored alpha.
// On layouts without alpha it behaves as Straight.
type RGBA[T color.Int] struct {
	l order.Layout
}

// NewRGBA returns a straight blender that updates the alpha channel.
func NewRGBA[T color.Int](o order.Order) *RGBA[T] {
	return &RGBA[T]{l: o.Layout()}
}

// Layout returns the channel offsets.
func (b *RGBA[T]) Layout() order.Layout { return b.l }

// BlendPix interpolates the color channels and sets a' = a + alpha - a*alpha.
func (b *RGBA[T]) BlendPix(p []T, cr, cg, cb, alpha T) {
	p[b.l.R] = color.Lerp(p[b.l.R], cr, alpha)
	p[b.l.G] = color.Lerp(p[b.l.G], cg, alpha)
	p[b.l.B] = color.Lerp(p[b.l.B], cb, alpha)
	if b.l.A >= 0 {
		p[b.l.A] = color.Prelerp(p[b.l.A], alpha, alpha)
	}
}

// BlendPixCover is BlendPix with alpha scaled by cover.
func (b *RGBA[T]) BlendPixCover(p []T, cr, cg, cb, alpha T, cover uint8) {
	b.BlendPix(p, cr, cg, cb, coverAlpha(alpha, cover))
}

// Pre blends premultiplied colors into a premultiplied destination.
type Pre[T color.Int] struct {
	l order.Layout
}

// NewPre returns a premultiplied blender for the given channel order.
func NewPre[T color.Int](o order.Order) *Pre[T] {
	return &Pre[T]{l: o.Layout()}
}

// Layout returns the channel offsets.
func (b *Pre[T]) Layout() order.Layout { return b.l }

// BlendPix computes d' = ((d * (mask - alpha)) >> shift) + s for the color
// channels and a' = mask - (((mask - alpha) * (mask - a)) >> shift).
func (b *Pre[T]) BlendPix(p []T, cr, cg, cb, alpha T) {
	shift := color.BaseShift[T]()
	mask := uint64(color.BaseMask[T]())
	ia := mask - uint64(alpha)
	p[b.l.R] = T((uint64(p[b.l.R])*ia)>>shift + uint64(cr))
	p[b.l.G] = T((uint64(p[b.l.G])*ia)>>shift + uint64(cg))
	p[b.l.B] = T((uint64(p[b.l.B])*ia)>>shift + uint64(cb))
	if b.l.A >= 0 {
		p[b.l.A] = T(mask - ((ia * (mask - uint64(p[b.l.A]))) >> shift))
	}
}

// BlendPixCover folds cover into the alpha, (alpha*(cover+1)) >> 8, and
// scales the source channels by the cover factor (cover+1) << (shift-8):
//
//	d' = (d * (mask - alpha') + s * factor) >> shift
func (b *Pre[T]) BlendPixCover(p []T, cr, cg, cb, alpha T, cover uint8) {
	if cover == color.CoverFull {
		b.BlendPix(p, cr, cg, cb, alpha)
		return
	}
	shift := color.BaseShift[T]()
	mask := uint64(color.BaseMask[T]())
	ia := mask - uint64(coverAlpha(alpha, cover))
	k := (uint64(cover) + 1) << (shift - color.CoverShift)
	p[b.l.R] = T((uint64(p[b.l.R])*ia + uint64(cr)*k) >> shift)
	p[b.l.G] = T((uint64(p[b.l.G])*ia + uint64(cg)*k) >> shift)
	p[b.l.B] = T((uint64(p[b.l.B])*ia + uint64(cb)*k) >> shift)
	if b.l.A >= 0 {
		p[b.l.A] = T(mask - ((ia * (mask - uint64(p[b.l.A]))) >> shift))
	}
}
