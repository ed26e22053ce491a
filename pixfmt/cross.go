// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pixfmt

import (
	"github.com/gogpu/pixcore/color"
	"github.com/gogpu/pixcore/rowbuf"
)

// CopyFrom copies n pixels of src row ysrc, starting at xsrc, to row ydst
// of f at xdst. src must have the same pixel layout. Overlapping rows of
// the same buffer are handled.
func (f *AlphaBlend[T, C]) CopyFrom(src rowbuf.Buffer[T], xdst, ydst, xsrc, ysrc, n int) {
	d := f.rb.Row(ydst)[xdst*f.w : (xdst+n)*f.w]
	copy(d, src.Row(ysrc)[xsrc*f.w:])
}

// BlendFrom blends n pixels of src row ysrc into row ydst of f. The source
// is read through its own layout, so surfaces with a different channel
// order can be composed. The source alpha is scaled by cover.
func (f *AlphaBlend[T, C]) BlendFrom(src Reader[C], xdst, ydst, xsrc, ysrc, n int, cover uint8) {
	row := f.rb.Row(ydst)
	i := xdst * f.w
	for k := 0; k < n; k++ {
		r, g, b, a := split[T](src.Pixel(xsrc+k, ysrc))
		f.blendPix(row[i:], r, g, b, a, cover)
		i += f.w
	}
}

// BlendFromColor treats src as a coverage map and blends the single color
// c through it: each pixel uses coverage (v * cover + 255) >> 8.
func (f *AlphaBlend[T, C]) BlendFromColor(src ValueReader, c C, xdst, ydst, xsrc, ysrc, n int, cover uint8) {
	r, g, b, a := split[T](c)
	row := f.rb.Row(ydst)
	i := xdst * f.w
	for k := 0; k < n; k++ {
		f.blendPix(row[i:], r, g, b, a, coverValue(src.Value(xsrc+k, ysrc), cover))
		i += f.w
	}
}

// BlendFromLUT treats src as palette indices into lut and blends the
// looked-up colors with coverage cover. lut must hold 256 entries.
func (f *AlphaBlend[T, C]) BlendFromLUT(src ValueReader, lut []C, xdst, ydst, xsrc, ysrc, n int, cover uint8) {
	row := f.rb.Row(ydst)
	i := xdst * f.w
	for k := 0; k < n; k++ {
		r, g, b, a := split[T](lut[src.Value(xsrc+k, ysrc)])
		f.blendPix(row[i:], r, g, b, a, cover)
		i += f.w
	}
}

// ForEachPixel calls fn with the elements of every pixel, row by row.
func (f *AlphaBlend[T, C]) ForEachPixel(fn func(p []T)) {
	for y := 0; y < f.rb.Height(); y++ {
		row := f.rb.Row(y)
		for x := 0; x < f.rb.Width(); x++ {
			fn(row[x*f.w : (x+1)*f.w])
		}
	}
}

// Premultiply scales the color channels of every pixel by its alpha.
// Surfaces without alpha are left unchanged.
func (f *AlphaBlend[T, C]) Premultiply() {
	if f.l.A < 0 {
		return
	}
	mask := color.BaseMask[T]()
	f.ForEachPixel(func(p []T) {
		switch a := p[f.l.A]; a {
		case mask:
		case 0:
			p[f.l.R], p[f.l.G], p[f.l.B] = 0, 0, 0
		default:
			p[f.l.R] = color.Multiply(p[f.l.R], a)
			p[f.l.G] = color.Multiply(p[f.l.G], a)
			p[f.l.B] = color.Multiply(p[f.l.B], a)
		}
	})
}

// Demultiply divides the color channels of every pixel by its alpha.
func (f *AlphaBlend[T, C]) Demultiply() {
	if f.l.A < 0 {
		return
	}
	mask := color.BaseMask[T]()
	f.ForEachPixel(func(p []T) {
		switch a := p[f.l.A]; a {
		case mask:
		case 0:
			p[f.l.R], p[f.l.G], p[f.l.B] = 0, 0, 0
		default:
			p[f.l.R] = color.Demultiply(p[f.l.R], a)
			p[f.l.G] = color.Demultiply(p[f.l.G], a)
			p[f.l.B] = color.Demultiply(p[f.l.B], a)
		}
	})
}

// ApplyGamma maps the color channels of every pixel through fn, for
// example a color.GammaLUT's DirU8 or InvU8 on 8-bit surfaces.
func (f *AlphaBlend[T, C]) ApplyGamma(fn func(T) T) {
	f.ForEachPixel(func(p []T) {
		p[f.l.R] = fn(p[f.l.R])
		p[f.l.G] = fn(p[f.l.G])
		p[f.l.B] = fn(p[f.l.B])
	})
}
