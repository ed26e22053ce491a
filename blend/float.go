// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package blend

import (
	"github.com/gogpu/pixcore/color"
	"github.com/gogpu/pixcore/order"
)

// FloatBlender is the contract of float32 RGBA surfaces. Channels are in
// [0,1]; cover is still 8-bit.
type FloatBlender interface {
	BlendPix(p []float32, cr, cg, cb, alpha float32)
	BlendPixCover(p []float32, cr, cg, cb, alpha float32, cover uint8)
	Layout() order.Layout
}

func floatCover(alpha float32, cover uint8) float32 {
	return alpha * float32(cover) / color.CoverMask
}

// FloatStraight blends non-premultiplied float colors and composes alpha.
type FloatStraight struct {
	l order.Layout
}

// NewFloatStraight returns a straight float blender.
func NewFloatStraight(o order.Order) *FloatStraight {
	return &FloatStraight{l: o.Layout()}
}

// Layout returns the channel offsets.
func (b *FloatStraight) Layout() order.Layout { return b.l }

// BlendPix interpolates the color channels and composes alpha.
func (b *FloatStraight) BlendPix(p []float32, cr, cg, cb, alpha float32) {
	ia := 1 - alpha
	p[b.l.R] = p[b.l.R]*ia + cr*alpha
	p[b.l.G] = p[b.l.G]*ia + cg*alpha
	p[b.l.B] = p[b.l.B]*ia + cb*alpha
	if b.l.A >= 0 {
		p[b.l.A] += alpha - p[b.l.A]*alpha
	}
}

// BlendPixCover is BlendPix with alpha scaled by cover/255.
func (b *FloatStraight) BlendPixCover(p []float32, cr, cg, cb, alpha float32, cover uint8) {
	b.BlendPix(p, cr, cg, cb, floatCover(alpha, cover))
}

// FloatPre blends premultiplied float colors: d' = s + d*(1-alpha).
type FloatPre struct {
	l order.Layout
}

// NewFloatPre returns a premultiplied float blender.
func NewFloatPre(o order.Order) *FloatPre {
	return &FloatPre{l: o.Layout()}
}

// Layout returns the channel offsets.
func (b *FloatPre) Layout() order.Layout { return b.l }

// BlendPix composes the source over the destination.
func (b *FloatPre) BlendPix(p []float32, cr, cg, cb, alpha float32) {
	ia := 1 - alpha
	p[b.l.R] = cr + p[b.l.R]*ia
	p[b.l.G] = cg + p[b.l.G]*ia
	p[b.l.B] = cb + p[b.l.B]*ia
	if b.l.A >= 0 {
		p[b.l.A] = alpha + p[b.l.A]*ia
	}
}

// BlendPixCover scales the whole source by cover/255 before blending.
func (b *FloatPre) BlendPixCover(p []float32, cr, cg, cb, alpha float32, cover uint8) {
	if cover == color.CoverFull {
		b.BlendPix(p, cr, cg, cb, alpha)
		return
	}
	k := float32(cover) / color.CoverMask
	b.BlendPix(p, cr*k, cg*k, cb*k, alpha*k)
}
