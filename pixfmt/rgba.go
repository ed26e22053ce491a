// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pixfmt

import (
	"github.com/gogpu/pixcore/blend"
	"github.com/gogpu/pixcore/color"
	"github.com/gogpu/pixcore/order"
	"github.com/gogpu/pixcore/rowbuf"
)

// AlphaBlend is an interleaved RGB or RGBA surface with integer channels.
// Layouts without alpha (RGB, BGR and the padded X orders) report full
// alpha on read and never store it.
type AlphaBlend[T color.Int, C RGBAColor[T]] struct {
	rb     rowbuf.Buffer[T]
	bl     blend.Blender[T]
	l      order.Layout
	w      int
	custom bool
}

// Common surface instantiations.
type (
	// RGBA32 has four 8-bit channels per pixel.
	RGBA32 = AlphaBlend[uint8, color.Rgba8]
	// RGBA64 has four 16-bit channels per pixel.
	RGBA64 = AlphaBlend[uint16, color.Rgba16]
)

// NewAlphaBlend binds rb to a blender. The blender's layout fixes the
// channel order.
func NewAlphaBlend[T color.Int, C RGBAColor[T]](rb rowbuf.Buffer[T], bl blend.Blender[T]) *AlphaBlend[T, C] {
	f := &AlphaBlend[T, C]{rb: rb}
	f.SetBlender(bl)
	return f
}

// NewRGBA32 returns an 8-bit surface. Use order RGBA, ARGB, ABGR or BGRA.
func NewRGBA32(rb rowbuf.Buffer[uint8], bl blend.Blender[uint8]) *RGBA32 {
	return NewAlphaBlend[uint8, color.Rgba8](rb, bl)
}

// NewRGBA64 returns a 16-bit surface.
func NewRGBA64(rb rowbuf.Buffer[uint16], bl blend.Blender[uint16]) *RGBA64 {
	return NewAlphaBlend[uint16, color.Rgba16](rb, bl)
}

// NewRGB24 returns an 8-bit surface without alpha (order RGB or BGR).
func NewRGB24(rb rowbuf.Buffer[uint8], bl blend.Blender[uint8]) *RGBA32 {
	return NewAlphaBlend[uint8, color.Rgba8](rb, bl)
}

// NewRGB48 returns a 16-bit surface without alpha.
func NewRGB48(rb rowbuf.Buffer[uint16], bl blend.Blender[uint16]) *RGBA64 {
	return NewAlphaBlend[uint16, color.Rgba16](rb, bl)
}

// NewRGBX32 returns an 8-bit surface with a padding channel (order RGBX,
// XRGB, BGRX or XBGR). The padding channel is never written.
func NewRGBX32(rb rowbuf.Buffer[uint8], bl blend.Blender[uint8]) *RGBA32 {
	return NewAlphaBlend[uint8, color.Rgba8](rb, bl)
}

// Attach rebinds the surface to rb.
func (f *AlphaBlend[T, C]) Attach(rb rowbuf.Buffer[T]) { f.rb = rb }

// RowBuf returns the bound rows.
func (f *AlphaBlend[T, C]) RowBuf() rowbuf.Buffer[T] { return f.rb }

// Blender returns the blender.
func (f *AlphaBlend[T, C]) Blender() blend.Blender[T] { return f.bl }

// SetBlender replaces the blender and takes over its layout.
func (f *AlphaBlend[T, C]) SetBlender(bl blend.Blender[T]) {
	f.bl = bl
	f.l = bl.Layout()
	f.w = f.l.Width
	c, ok := bl.(blend.Custom)
	f.custom = ok && c.Custom()
}

// Layout returns the channel offsets.
func (f *AlphaBlend[T, C]) Layout() order.Layout { return f.l }

// PixWidth returns the number of channel elements per pixel.
func (f *AlphaBlend[T, C]) PixWidth() int { return f.w }

// Width returns the width in pixels.
func (f *AlphaBlend[T, C]) Width() int { return f.rb.Width() }

// Height returns the height in pixels.
func (f *AlphaBlend[T, C]) Height() int { return f.rb.Height() }

// PixSlice returns the elements from pixel (x, y) to the end of its row.
func (f *AlphaBlend[T, C]) PixSlice(x, y int) []T {
	return f.rb.Row(y)[x*f.w:]
}

func (f *AlphaBlend[T, C]) set(p []T, r, g, b, a T) {
	p[f.l.R] = r
	p[f.l.G] = g
	p[f.l.B] = b
	if f.l.A >= 0 {
		p[f.l.A] = a
	}
}

// blendPix is the copy-or-blend kernel shared by every operation.
func (f *AlphaBlend[T, C]) blendPix(p []T, r, g, b, a T, cover uint8) {
	if f.custom {
		f.bl.BlendPixCover(p, r, g, b, a, cover)
		return
	}
	if a == 0 || cover == 0 {
		return
	}
	if cover == color.CoverFull {
		if a == color.BaseMask[T]() {
			f.set(p, r, g, b, a)
			return
		}
		f.bl.BlendPix(p, r, g, b, a)
		return
	}
	f.bl.BlendPixCover(p, r, g, b, a, cover)
}

// Pixel reads the color at (x, y).
func (f *AlphaBlend[T, C]) Pixel(x, y int) C {
	p := f.PixSlice(x, y)
	a := color.BaseMask[T]()
	if f.l.A >= 0 {
		a = p[f.l.A]
	}
	return join[T, C](p[f.l.R], p[f.l.G], p[f.l.B], a)
}

// CopyPixel overwrites (x, y) with c.
func (f *AlphaBlend[T, C]) CopyPixel(x, y int, c C) {
	r, g, b, a := split[T](c)
	f.set(f.PixSlice(x, y), r, g, b, a)
}

// BlendPixel blends c into (x, y) with coverage cover.
func (f *AlphaBlend[T, C]) BlendPixel(x, y int, c C, cover uint8) {
	r, g, b, a := split[T](c)
	f.blendPix(f.PixSlice(x, y), r, g, b, a, cover)
}

// CopyHline fills n pixels of row y starting at x.
func (f *AlphaBlend[T, C]) CopyHline(x, y, n int, c C) {
	r, g, b, a := split[T](c)
	row := f.rb.Row(y)
	for i := x * f.w; n > 0; n-- {
		f.set(row[i:], r, g, b, a)
		i += f.w
	}
}

// CopyVline fills n pixels of column x starting at y.
func (f *AlphaBlend[T, C]) CopyVline(x, y, n int, c C) {
	r, g, b, a := split[T](c)
	for ; n > 0; n-- {
		f.set(f.PixSlice(x, y), r, g, b, a)
		y++
	}
}

// BlendHline blends c into n pixels of row y, all with coverage cover.
func (f *AlphaBlend[T, C]) BlendHline(x, y, n int, c C, cover uint8) {
	r, g, b, a := split[T](c)
	row := f.rb.Row(y)
	for i := x * f.w; n > 0; n-- {
		f.blendPix(row[i:], r, g, b, a, cover)
		i += f.w
	}
}

// BlendVline blends c into n pixels of column x, all with coverage cover.
func (f *AlphaBlend[T, C]) BlendVline(x, y, n int, c C, cover uint8) {
	r, g, b, a := split[T](c)
	for ; n > 0; n-- {
		f.blendPix(f.PixSlice(x, y), r, g, b, a, cover)
		y++
	}
}

// BlendSolidHspan blends c into n pixels with one coverage value each.
func (f *AlphaBlend[T, C]) BlendSolidHspan(x, y, n int, c C, covers []uint8) {
	r, g, b, a := split[T](c)
	row := f.rb.Row(y)
	i := x * f.w
	for _, cv := range covers[:n] {
		f.blendPix(row[i:], r, g, b, a, cv)
		i += f.w
	}
}

// BlendSolidVspan is BlendSolidHspan along column x.
func (f *AlphaBlend[T, C]) BlendSolidVspan(x, y, n int, c C, covers []uint8) {
	r, g, b, a := split[T](c)
	for _, cv := range covers[:n] {
		f.blendPix(f.PixSlice(x, y), r, g, b, a, cv)
		y++
	}
}

// CopyColorHspan overwrites n pixels of row y with colors.
func (f *AlphaBlend[T, C]) CopyColorHspan(x, y, n int, colors []C) {
	row := f.rb.Row(y)
	i := x * f.w
	for _, c := range colors[:n] {
		r, g, b, a := split[T](c)
		f.set(row[i:], r, g, b, a)
		i += f.w
	}
}

// CopyColorVspan overwrites n pixels of column x with colors.
func (f *AlphaBlend[T, C]) CopyColorVspan(x, y, n int, colors []C) {
	for _, c := range colors[:n] {
		r, g, b, a := split[T](c)
		f.set(f.PixSlice(x, y), r, g, b, a)
		y++
	}
}

// BlendColorHspan blends n colors into row y.
func (f *AlphaBlend[T, C]) BlendColorHspan(x, y, n int, colors []C, covers []uint8, cover uint8) {
	row := f.rb.Row(y)
	i := x * f.w
	for k, c := range colors[:n] {
		cv := cover
		if covers != nil {
			cv = covers[k]
		}
		r, g, b, a := split[T](c)
		f.blendPix(row[i:], r, g, b, a, cv)
		i += f.w
	}
}

// BlendColorVspan blends n colors into column x.
func (f *AlphaBlend[T, C]) BlendColorVspan(x, y, n int, colors []C, covers []uint8, cover uint8) {
	for k, c := range colors[:n] {
		cv := cover
		if covers != nil {
			cv = covers[k]
		}
		r, g, b, a := split[T](c)
		f.blendPix(f.PixSlice(x, y), r, g, b, a, cv)
		y++
	}
}
