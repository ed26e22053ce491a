// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pixfmt

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/pixcore/blend"
	"github.com/gogpu/pixcore/color"
	"github.com/gogpu/pixcore/order"
	"github.com/gogpu/pixcore/rowbuf"
)

// RGBA128F is a surface with four float32 channels per pixel.
type RGBA128F struct {
	rb     rowbuf.Buffer[float32]
	bl     blend.FloatBlender
	l      order.Layout
	w      int
	custom bool
}

// NewRGBA128F binds rb to a float blender.
func NewRGBA128F(rb rowbuf.Buffer[float32], bl blend.FloatBlender) *RGBA128F {
	f := &RGBA128F{rb: rb}
	f.SetBlender(bl)
	return f
}

// Attach rebinds the surface to rb.
func (f *RGBA128F) Attach(rb rowbuf.Buffer[float32]) { f.rb = rb }

// SetBlender replaces the blender.
func (f *RGBA128F) SetBlender(bl blend.FloatBlender) {
	f.bl = bl
	f.l = bl.Layout()
	f.w = f.l.Width
	c, ok := bl.(blend.Custom)
	f.custom = ok && c.Custom()
}

// Width returns the width in pixels.
func (f *RGBA128F) Width() int { return f.rb.Width() }

// Height returns the height in pixels.
func (f *RGBA128F) Height() int { return f.rb.Height() }

func (f *RGBA128F) pix(x, y int) []float32 { return f.rb.Row(y)[x*f.w:] }

func (f *RGBA128F) set(p []float32, c color.Rgba32) {
	p[f.l.R], p[f.l.G], p[f.l.B] = c.R, c.G, c.B
	if f.l.A >= 0 {
		p[f.l.A] = c.A
	}
}

func (f *RGBA128F) blendPix(p []float32, c color.Rgba32, cover uint8) {
	if f.custom {
		f.bl.BlendPixCover(p, c.R, c.G, c.B, c.A, cover)
		return
	}
	if c.A <= 0 || cover == 0 {
		return
	}
	if cover == color.CoverFull {
		if c.A >= 1 {
			f.set(p, c)
			return
		}
		f.bl.BlendPix(p, c.R, c.G, c.B, c.A)
		return
	}
	f.bl.BlendPixCover(p, c.R, c.G, c.B, c.A, cover)
}

// Pixel reads (x, y).
func (f *RGBA128F) Pixel(x, y int) color.Rgba32 {
	p := f.pix(x, y)
	c := color.Rgba32{R: p[f.l.R], G: p[f.l.G], B: p[f.l.B], A: 1}
	if f.l.A >= 0 {
		c.A = p[f.l.A]
	}
	return c
}

// CopyPixel overwrites (x, y).
func (f *RGBA128F) CopyPixel(x, y int, c color.Rgba32) { f.set(f.pix(x, y), c) }

// BlendPixel blends c into (x, y).
func (f *RGBA128F) BlendPixel(x, y int, c color.Rgba32, cover uint8) {
	f.blendPix(f.pix(x, y), c, cover)
}

// CopyHline fills n pixels of row y.
func (f *RGBA128F) CopyHline(x, y, n int, c color.Rgba32) {
	row := f.rb.Row(y)
	for i := x * f.w; n > 0; n-- {
		f.set(row[i:], c)
		i += f.w
	}
}

// CopyVline fills n pixels of column x.
func (f *RGBA128F) CopyVline(x, y, n int, c color.Rgba32) {
	for ; n > 0; n-- {
		f.set(f.pix(x, y), c)
		y++
	}
}

// BlendHline blends c into n pixels of row y.
func (f *RGBA128F) BlendHline(x, y, n int, c color.Rgba32, cover uint8) {
	row := f.rb.Row(y)
	for i := x * f.w; n > 0; n-- {
		f.blendPix(row[i:], c, cover)
		i += f.w
	}
}

// BlendVline blends c into n pixels of column x.
func (f *RGBA128F) BlendVline(x, y, n int, c color.Rgba32, cover uint8) {
	for ; n > 0; n-- {
		f.blendPix(f.pix(x, y), c, cover)
		y++
	}
}

// BlendSolidHspan blends c with one coverage value per pixel.
func (f *RGBA128F) BlendSolidHspan(x, y, n int, c color.Rgba32, covers []uint8) {
	row := f.rb.Row(y)
	i := x * f.w
	for _, cv := range covers[:n] {
		f.blendPix(row[i:], c, cv)
		i += f.w
	}
}

// BlendSolidVspan is BlendSolidHspan along column x.
func (f *RGBA128F) BlendSolidVspan(x, y, n int, c color.Rgba32, covers []uint8) {
	for _, cv := range covers[:n] {
		f.blendPix(f.pix(x, y), c, cv)
		y++
	}
}

// CopyColorHspan overwrites n pixels of row y.
func (f *RGBA128F) CopyColorHspan(x, y, n int, colors []color.Rgba32) {
	row := f.rb.Row(y)
	i := x * f.w
	for _, c := range colors[:n] {
		f.set(row[i:], c)
		i += f.w
	}
}

// CopyColorVspan overwrites n pixels of column x.
func (f *RGBA128F) CopyColorVspan(x, y, n int, colors []color.Rgba32) {
	for _, c := range colors[:n] {
		f.set(f.pix(x, y), c)
		y++
	}
}

// BlendColorHspan blends n colors into row y.
func (f *RGBA128F) BlendColorHspan(x, y, n int, colors []color.Rgba32, covers []uint8, cover uint8) {
	row := f.rb.Row(y)
	i := x * f.w
	for k, c := range colors[:n] {
		cv := cover
		if covers != nil {
			cv = covers[k]
		}
		f.blendPix(row[i:], c, cv)
		i += f.w
	}
}

// BlendColorVspan blends n colors into column x.
func (f *RGBA128F) BlendColorVspan(x, y, n int, colors []color.Rgba32, covers []uint8, cover uint8) {
	for k, c := range colors[:n] {
		cv := cover
		if covers != nil {
			cv = covers[k]
		}
		f.blendPix(f.pix(x, y), c, cv)
		y++
	}
}

// Premultiply scales every pixel's color channels by its alpha.
func (f *RGBA128F) Premultiply() {
	f.each(func(c color.Rgba32) color.Rgba32 { return c.Premultiply() })
}

// Demultiply divides every pixel's color channels by its alpha.
func (f *RGBA128F) Demultiply() {
	f.each(func(c color.Rgba32) color.Rgba32 { return c.Demultiply() })
}

// ApplyGamma raises every color channel to gamma.
func (f *RGBA128F) ApplyGamma(gamma float32) {
	f.each(func(c color.Rgba32) color.Rgba32 {
		c.R = math32.Pow(c.R, gamma)
		c.G = math32.Pow(c.G, gamma)
		c.B = math32.Pow(c.B, gamma)
		return c
	})
}

func (f *RGBA128F) each(fn func(color.Rgba32) color.Rgba32) {
	for y := 0; y < f.rb.Height(); y++ {
		for x := 0; x < f.rb.Width(); x++ {
			f.set(f.pix(x, y), fn(f.Pixel(x, y)))
		}
	}
}
