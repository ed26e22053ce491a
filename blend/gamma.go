// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package blend

import (
	"github.com/gogpu/pixcore/color"
	"github.com/gogpu/pixcore/order"
)

// Gamma is a straight 8-bit blender that interpolates in the linear domain
// of a gamma table:
//
//	d' = inv(((dir(s) - dir(d)) * alpha) >> 8 + dir(d))
//
// It never writes alpha.
type Gamma struct {
	l   order.Layout
	lut *color.GammaLUT
}

// NewGamma returns a gamma-correcting blender. The table may be shared.
func NewGamma(o order.Order, lut *color.GammaLUT) *Gamma {
	return &Gamma{l: o.Layout(), lut: lut}
}

// Layout returns the channel offsets.
func (b *Gamma) Layout() order.Layout { return b.l }

// LUT returns the gamma table.
func (b *Gamma) LUT() *color.GammaLUT { return b.lut }

// SetLUT replaces the gamma table.
func (b *Gamma) SetLUT(lut *color.GammaLUT) { b.lut = lut }

func (b *Gamma) channel(d, s, alpha uint8) uint8 {
	dd := int32(b.lut.Dir(d))
	ds := int32(b.lut.Dir(s))
	return b.lut.Inv(uint16(((ds-dd)*int32(alpha))>>color.CoverShift + dd))
}

// BlendPix blends in the linear domain.
func (b *Gamma) BlendPix(p []uint8, cr, cg, cb, alpha uint8) {
	p[b.l.R] = b.channel(p[b.l.R], cr, alpha)
	p[b.l.G] = b.channel(p[b.l.G], cg, alpha)
	p[b.l.B] = b.channel(p[b.l.B], cb, alpha)
}

// BlendPixCover is BlendPix with alpha scaled by cover.
func (b *Gamma) BlendPixCover(p []uint8, cr, cg, cb, alpha uint8, cover uint8) {
	b.BlendPix(p, cr, cg, cb, coverAlpha(alpha, cover))
}
