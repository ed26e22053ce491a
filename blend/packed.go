// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package blend

import "github.com/gogpu/pixcore/color"

// Packed is the contract of packed-word surfaces. The stored word is
// unpacked into a wide intermediate color, blended with the usual straight
// formula and packed again. alpha is in the range of the color type C
// (8 bits for 16-bit words, 16 bits for 32-bit words).
type Packed[W ~uint16 | ~uint32, C any] interface {
	BlendPix(p *W, cr, cg, cb, alpha uint32)
	BlendPixCover(p *W, cr, cg, cb, alpha uint32, cover uint8)
	MakePix(r, g, b uint32) W
	MakeColor(p W) C
}

func coverAlpha32(alpha uint32, cover uint8) uint32 {
	return (alpha * (uint32(cover) + 1)) >> color.CoverShift
}

// blend16 interpolates an 8-bit channel v toward c and leaves the result
// shifted left by 8.
func blend16(v, c, alpha uint32) uint32 {
	return uint32((int32(c)-int32(v))*int32(alpha) + int32(v<<8))
}

// blend32 interpolates a 16-bit channel v toward c and leaves the result
// shifted left by 16.
func blend32(v, c, alpha uint32) uint32 {
	return uint32((int64(c)-int64(v))*int64(alpha) + int64(v<<16))
}

// RGB555 stores 5 bits per channel with the top bit set.
type RGB555 struct{}

// BlendPix blends an 8-bit color.
func (RGB555) BlendPix(p *uint16, cr, cg, cb, alpha uint32) {
	rgb := uint32(*p)
	r := (rgb >> 7) & 0xF8
	g := (rgb >> 2) & 0xF8
	b := (rgb << 3) & 0xF8
	*p = uint16((blend16(r, cr, alpha)>>1)&0x7C00 |
		(blend16(g, cg, alpha)>>6)&0x03E0 |
		blend16(b, cb, alpha)>>11 | 0x8000)
}

// BlendPixCover is BlendPix with alpha scaled by cover.
func (x RGB555) BlendPixCover(p *uint16, cr, cg, cb, alpha uint32, cover uint8) {
	x.BlendPix(p, cr, cg, cb, coverAlpha32(alpha, cover))
}

// MakePix packs an 8-bit color.
func (RGB555) MakePix(r, g, b uint32) uint16 {
	return uint16((r&0xF8)<<7 | (g&0xF8)<<2 | b>>3 | 0x8000)
}

// MakeColor unpacks a word into an opaque 8-bit color.
func (RGB555) MakeColor(p uint16) color.Rgba8 {
	return color.Rgba8{
		R: uint8((p >> 7) & 0xF8),
		G: uint8((p >> 2) & 0xF8),
		B: uint8((p << 3) & 0xF8),
		A: color.Rgba8BaseMask,
	}
}

// RGB565 stores 5-6-5 bits per channel.
type RGB565 struct{}

// BlendPix blends an 8-bit color.
func (RGB565) BlendPix(p *uint16, cr, cg, cb, alpha uint32) {
	rgb := uint32(*p)
	r := (rgb >> 8) & 0xF8
	g := (rgb >> 3) & 0xFC
	b := (rgb << 3) & 0xF8
	*p = uint16(blend16(r, cr, alpha)&0xF800 |
		(blend16(g, cg, alpha)>>5)&0x07E0 |
		blend16(b, cb, alpha)>>11)
}

// BlendPixCover is BlendPix with alpha scaled by cover.
func (x RGB565) BlendPixCover(p *uint16, cr, cg, cb, alpha uint32, cover uint8) {
	x.BlendPix(p, cr, cg, cb, coverAlpha32(alpha, cover))
}

// MakePix packs an 8-bit color.
func (RGB565) MakePix(r, g, b uint32) uint16 {
	return uint16((r&0xF8)<<8 | (g&0xFC)<<3 | b>>3)
}

// MakeColor unpacks a word into an opaque 8-bit color.
func (RGB565) MakeColor(p uint16) color.Rgba8 {
	return color.Rgba8{
		R: uint8((p >> 8) & 0xF8),
		G: uint8((p >> 3) & 0xFC),
		B: uint8((p << 3) & 0xF8),
		A: color.Rgba8BaseMask,
	}
}

// RGB555Pre is RGB555 with a premultiplied source.
type RGB555Pre struct{}

// BlendPix blends a premultiplied 8-bit color.
func (x RGB555Pre) BlendPix(p *uint16, cr, cg, cb, alpha uint32) {
	x.BlendPixCover(p, cr, cg, cb, alpha, color.CoverFull)
}

// BlendPixCover computes d' = (d*(255-alpha') + s*(cover+1)) >> 8.
func (RGB555Pre) BlendPixCover(p *uint16, cr, cg, cb, alpha uint32, cover uint8) {
	ia := color.Rgba8BaseMask - coverAlpha32(alpha, cover)
	k := uint32(cover) + 1
	rgb := uint32(*p)
	r := (rgb >> 7) & 0xF8
	g := (rgb >> 2) & 0xF8
	b := (rgb << 3) & 0xF8
	*p = uint16(((r*ia+cr*k)>>1)&0x7C00 |
		((g*ia+cg*k)>>6)&0x03E0 |
		(b*ia+cb*k)>>11 | 0x8000)
}

// MakePix packs an 8-bit color.
func (RGB555Pre) MakePix(r, g, b uint32) uint16 { return RGB555{}.MakePix(r, g, b) }

// MakeColor unpacks a word.
func (RGB555Pre) MakeColor(p uint16) color.Rgba8 { return RGB555{}.MakeColor(p) }

// RGB565Pre is RGB565 with a premultiplied source.
type RGB565Pre struct{}

// BlendPix blends a premultiplied 8-bit color.
func (x RGB565Pre) BlendPix(p *uint16, cr, cg, cb, alpha uint32) {
	x.BlendPixCover(p, cr, cg, cb, alpha, color.CoverFull)
}

// BlendPixCover computes d' = (d*(255-alpha') + s*(cover+1)) >> 8.
func (RGB565Pre) BlendPixCover(p *uint16, cr, cg, cb, alpha uint32, cover uint8) {
	ia := color.Rgba8BaseMask - coverAlpha32(alpha, cover)
	k := uint32(cover) + 1
	rgb := uint32(*p)
	r := (rgb >> 8) & 0xF8
	g := (rgb >> 3) & 0xFC
	b := (rgb << 3) & 0xF8
	*p = uint16((r*ia+cr*k)&0xF800 |
		((g*ia+cg*k)>>5)&0x07E0 |
		(b*ia+cb*k)>>11)
}

// MakePix packs an 8-bit color.
func (RGB565Pre) MakePix(r, g, b uint32) uint16 { return RGB565{}.MakePix(r, g, b) }

// MakeColor unpacks a word.
func (RGB565Pre) MakeColor(p uint16) color.Rgba8 { return RGB565{}.MakeColor(p) }

// RGBAAA stores 10 bits per channel, red high, with the top two bits set.
type RGBAAA struct{}

// BlendPix blends a 16-bit color.
func (RGBAAA) BlendPix(p *uint32, cr, cg, cb, alpha uint32) {
	rgb := *p
	r := (rgb >> 14) & 0xFFC0
	g := (rgb >> 4) & 0xFFC0
	b := (rgb << 6) & 0xFFC0
	*p = (blend32(r, cr, alpha)>>2)&0x3FF00000 |
		(blend32(g, cg, alpha)>>12)&0x000FFC00 |
		blend32(b, cb, alpha)>>22 | 0xC0000000
}

// BlendPixCover is BlendPix with alpha scaled by cover.
func (x RGBAAA) BlendPixCover(p *uint32, cr, cg, cb, alpha uint32, cover uint8) {
	x.BlendPix(p, cr, cg, cb, coverAlpha32(alpha, cover))
}

// MakePix packs a 16-bit color.
func (RGBAAA) MakePix(r, g, b uint32) uint32 {
	return (r&0xFFC0)<<14 | (g&0xFFC0)<<4 | b>>6 | 0xC0000000
}

// MakeColor unpacks a word into an opaque 16-bit color.
func (RGBAAA) MakeColor(p uint32) color.Rgba16 {
	return color.Rgba16{
		R: uint16((p >> 14) & 0xFFC0),
		G: uint16((p >> 4) & 0xFFC0),
		B: uint16((p << 6) & 0xFFC0),
		A: color.Rgba16BaseMask,
	}
}

// BGRAAA stores 10 bits per channel, blue high, with the top two bits set.
type BGRAAA struct{}

// BlendPix blends a 16-bit color.
func (BGRAAA) BlendPix(p *uint32, cr, cg, cb, alpha uint32) {
	bgr := *p
	b := (bgr >> 14) & 0xFFC0
	g := (bgr >> 4) & 0xFFC0
	r := (bgr << 6) & 0xFFC0
	*p = (blend32(b, cb, alpha)>>2)&0x3FF00000 |
		(blend32(g, cg, alpha)>>12)&0x000FFC00 |
		blend32(r, cr, alpha)>>22 | 0xC0000000
}

// BlendPixCover is BlendPix with alpha scaled by cover.
func (x BGRAAA) BlendPixCover(p *uint32, cr, cg, cb, alpha uint32, cover uint8) {
	x.BlendPix(p, cr, cg, cb, coverAlpha32(alpha, cover))
}

// MakePix packs a 16-bit color.
func (BGRAAA) MakePix(r, g, b uint32) uint32 {
	return (b&0xFFC0)<<14 | (g&0xFFC0)<<4 | r>>6 | 0xC0000000
}

// MakeColor unpacks a word into an opaque 16-bit color.
func (BGRAAA) MakeColor(p uint32) color.Rgba16 {
	return color.Rgba16{
		R: uint16((p << 6) & 0xFFC0),
		G: uint16((p >> 4) & 0xFFC0),
		B: uint16((p >> 14) & 0xFFC0),
		A: color.Rgba16BaseMask,
	}
}

// RGBBBA stores 11-11-10 bits for red, green and blue.
type RGBBBA struct{}

// BlendPix blends a 16-bit color.
func (RGBBBA) BlendPix(p *uint32, cr, cg, cb, alpha uint32) {
	rgb := *p
	r := (rgb >> 16) & 0xFFE0
	g := (rgb >> 5) & 0xFFE0
	b := (rgb << 6) & 0xFFC0
	*p = blend32(r, cr, alpha)&0xFFE00000 |
		(blend32(g, cg, alpha)>>11)&0x001FFC00 |
		blend32(b, cb, alpha)>>22
}

// BlendPixCover is BlendPix with alpha scaled by cover.
func (x RGBBBA) BlendPixCover(p *uint32, cr, cg, cb, alpha uint32, cover uint8) {
	x.BlendPix(p, cr, cg, cb, coverAlpha32(alpha, cover))
}

// MakePix packs a 16-bit color.
func (RGBBBA) MakePix(r, g, b uint32) uint32 {
	return (r&0xFFE0)<<16 | (g&0xFFE0)<<5 | b>>6
}

// MakeColor unpacks a word into an opaque 16-bit color.
func (RGBBBA) MakeColor(p uint32) color.Rgba16 {
	return color.Rgba16{
		R: uint16((p >> 16) & 0xFFE0),
		G: uint16((p >> 5) & 0xFFE0),
		B: uint16((p << 6) & 0xFFC0),
		A: color.Rgba16BaseMask,
	}
}

// BGRABB stores 10-11-11 bits for blue, green and red.
type BGRABB struct{}

// BlendPix blends a 16-bit color.
func (BGRABB) BlendPix(p *uint32, cr, cg, cb, alpha uint32) {
	bgr := *p
	b := (bgr >> 16) & 0xFFC0
	g := (bgr >> 6) & 0xFFE0
	r := (bgr << 5) & 0xFFE0
	*p = blend32(b, cb, alpha)&0xFFC00000 |
		(blend32(g, cg, alpha)>>10)&0x003FF800 |
		blend32(r, cr, alpha)>>21
}

// BlendPixCover is BlendPix with alpha scaled by cover.
func (x BGRABB) BlendPixCover(p *uint32, cr, cg, cb, alpha uint32, cover uint8) {
	x.BlendPix(p, cr, cg, cb, coverAlpha32(alpha, cover))
}

// MakePix packs a 16-bit color.
func (BGRABB) MakePix(r, g, b uint32) uint32 {
	return (b&0xFFC0)<<16 | (g&0xFFE0)<<6 | r>>5
}

// MakeColor unpacks a word into an opaque 16-bit color.
func (BGRABB) MakeColor(p uint32) color.Rgba16 {
	return color.Rgba16{
		R: uint16((p << 5) & 0xFFE0),
		G: uint16((p >> 6) & 0xFFE0),
		B: uint16((p >> 16) & 0xFFC0),
		A: color.Rgba16BaseMask,
	}
}
