// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pixfmt

import (
	"github.com/gogpu/pixcore/blend"
	"github.com/gogpu/pixcore/color"
	"github.com/gogpu/pixcore/rowbuf"
)

// Gray is a single-channel surface. With a step greater than one it views
// one channel of an interleaved buffer: pixel x lives at element
// x*step + offset.
type Gray[T color.Int, C GrayColor[T]] struct {
	rb     rowbuf.Buffer[T]
	bl     blend.GrayBlender[T]
	step   int
	offset int
}

// Common gray instantiations.
type (
	// Gray8 has one 8-bit channel per pixel.
	Gray8 = Gray[uint8, color.Gray8]
	// Gray16 has one 16-bit channel per pixel.
	Gray16 = Gray[uint16, color.Gray16]
)

// NewGray returns a gray surface with the given element step and offset.
func NewGray[T color.Int, C GrayColor[T]](rb rowbuf.Buffer[T], bl blend.GrayBlender[T], step, offset int) *Gray[T, C] {
	return &Gray[T, C]{rb: rb, bl: bl, step: step, offset: offset}
}

// NewGray8 returns a packed 8-bit gray surface.
func NewGray8(rb rowbuf.Buffer[uint8], bl blend.GrayBlender[uint8]) *Gray8 {
	return NewGray[uint8, color.Gray8](rb, bl, 1, 0)
}

// NewGray16 returns a packed 16-bit gray surface.
func NewGray16(rb rowbuf.Buffer[uint16], bl blend.GrayBlender[uint16]) *Gray16 {
	return NewGray[uint16, color.Gray16](rb, bl, 1, 0)
}

// Attach rebinds the surface to rb.
func (f *Gray[T, C]) Attach(rb rowbuf.Buffer[T]) { f.rb = rb }

// RowBuf returns the bound rows.
func (f *Gray[T, C]) RowBuf() rowbuf.Buffer[T] { return f.rb }

// Step returns the element distance between pixels.
func (f *Gray[T, C]) Step() int { return f.step }

// Offset returns the element offset of the viewed channel.
func (f *Gray[T, C]) Offset() int { return f.offset }

// Width returns the width in pixels.
func (f *Gray[T, C]) Width() int { return f.rb.Width() }

// Height returns the height in pixels.
func (f *Gray[T, C]) Height() int { return f.rb.Height() }

func (f *Gray[T, C]) ptr(x, y int) *T {
	return &f.rb.Row(y)[x*f.step+f.offset]
}

func (f *Gray[T, C]) blendPix(p *T, v, a T, cover uint8) {
	if a == 0 || cover == 0 {
		return
	}
	if cover == color.CoverFull {
		if a == color.BaseMask[T]() {
			*p = v
			return
		}
		f.bl.BlendPix(p, v, a)
		return
	}
	f.bl.BlendPixCover(p, v, a, cover)
}

// Value returns the stored value at (x, y).
func (f *Gray[T, C]) Value(x, y int) T { return *f.ptr(x, y) }

// Pixel reads (x, y) as an opaque gray color.
func (f *Gray[T, C]) Pixel(x, y int) C {
	return joinGray[T, C](*f.ptr(x, y), color.BaseMask[T]())
}

// CopyPixel overwrites (x, y).
func (f *Gray[T, C]) CopyPixel(x, y int, c C) {
	v, _ := splitGray[T](c)
	*f.ptr(x, y) = v
}

// BlendPixel blends c into (x, y).
func (f *Gray[T, C]) BlendPixel(x, y int, c C, cover uint8) {
	v, a := splitGray[T](c)
	f.blendPix(f.ptr(x, y), v, a, cover)
}

// CopyHline fills n pixels of row y.
func (f *Gray[T, C]) CopyHline(x, y, n int, c C) {
	v, _ := splitGray[T](c)
	row := f.rb.Row(y)
	for i := x*f.step + f.offset; n > 0; n-- {
		row[i] = v
		i += f.step
	}
}

// CopyVline fills n pixels of column x.
func (f *Gray[T, C]) CopyVline(x, y, n int, c C) {
	v, _ := splitGray[T](c)
	for ; n > 0; n-- {
		*f.ptr(x, y) = v
		y++
	}
}

// BlendHline blends c into n pixels of row y.
func (f *Gray[T, C]) BlendHline(x, y, n int, c C, cover uint8) {
	v, a := splitGray[T](c)
	row := f.rb.Row(y)
	for i := x*f.step + f.offset; n > 0; n-- {
		f.blendPix(&row[i], v, a, cover)
		i += f.step
	}
}

// BlendVline blends c into n pixels of column x.
func (f *Gray[T, C]) BlendVline(x, y, n int, c C, cover uint8) {
	v, a := splitGray[T](c)
	for ; n > 0; n-- {
		f.blendPix(f.ptr(x, y), v, a, cover)
		y++
	}
}

// BlendSolidHspan blends c with one coverage value per pixel.
func (f *Gray[T, C]) BlendSolidHspan(x, y, n int, c C, covers []uint8) {
	v, a := splitGray[T](c)
	row := f.rb.Row(y)
	i := x*f.step + f.offset
	for _, cv := range covers[:n] {
		f.blendPix(&row[i], v, a, cv)
		i += f.step
	}
}

// BlendSolidVspan is BlendSolidHspan along column x.
func (f *Gray[T, C]) BlendSolidVspan(x, y, n int, c C, covers []uint8) {
	v, a := splitGray[T](c)
	for _, cv := range covers[:n] {
		f.blendPix(f.ptr(x, y), v, a, cv)
		y++
	}
}

// CopyColorHspan overwrites n pixels of row y.
func (f *Gray[T, C]) CopyColorHspan(x, y, n int, colors []C) {
	row := f.rb.Row(y)
	i := x*f.step + f.offset
	for _, c := range colors[:n] {
		row[i], _ = splitGray[T](c)
		i += f.step
	}
}

// CopyColorVspan overwrites n pixels of column x.
func (f *Gray[T, C]) CopyColorVspan(x, y, n int, colors []C) {
	for _, c := range colors[:n] {
		*f.ptr(x, y), _ = splitGray[T](c)
		y++
	}
}

// BlendColorHspan blends n colors into row y.
func (f *Gray[T, C]) BlendColorHspan(x, y, n int, colors []C, covers []uint8, cover uint8) {
	row := f.rb.Row(y)
	i := x*f.step + f.offset
	for k, c := range colors[:n] {
		cv := cover
		if covers != nil {
			cv = covers[k]
		}
		v, a := splitGray[T](c)
		f.blendPix(&row[i], v, a, cv)
		i += f.step
	}
}

// BlendColorVspan blends n colors into column x.
func (f *Gray[T, C]) BlendColorVspan(x, y, n int, colors []C, covers []uint8, cover uint8) {
	for k, c := range colors[:n] {
		cv := cover
		if covers != nil {
			cv = covers[k]
		}
		v, a := splitGray[T](c)
		f.blendPix(f.ptr(x, y), v, a, cv)
		y++
	}
}

// CopyFrom copies n values of src row ysrc into row ydst. Both surfaces
// use their own step and offset.
func (f *Gray[T, C]) CopyFrom(src *Gray[T, C], xdst, ydst, xsrc, ysrc, n int) {
	if f.step == 1 && src.step == 1 {
		copy(f.rb.Row(ydst)[xdst+f.offset:xdst+f.offset+n], src.rb.Row(ysrc)[xsrc+src.offset:])
		return
	}
	for k := 0; k < n; k++ {
		*f.ptr(xdst+k, ydst) = *src.ptr(xsrc+k, ysrc)
	}
}

// BlendFromColor blends c through the coverage map src.
func (f *Gray[T, C]) BlendFromColor(src ValueReader, c C, xdst, ydst, xsrc, ysrc, n int, cover uint8) {
	v, a := splitGray[T](c)
	for k := 0; k < n; k++ {
		f.blendPix(f.ptr(xdst+k, ydst), v, a, coverValue(src.Value(xsrc+k, ysrc), cover))
	}
}

// BlendFromLUT blends palette colors indexed by src.
func (f *Gray[T, C]) BlendFromLUT(src ValueReader, lut []C, xdst, ydst, xsrc, ysrc, n int, cover uint8) {
	for k := 0; k < n; k++ {
		v, a := splitGray[T](lut[src.Value(xsrc+k, ysrc)])
		f.blendPix(f.ptr(xdst+k, ydst), v, a, cover)
	}
}

// ApplyGamma maps every value through fn.
func (f *Gray[T, C]) ApplyGamma(fn func(T) T) {
	for y := 0; y < f.rb.Height(); y++ {
		row := f.rb.Row(y)
		for x, i := 0, f.offset; x < f.rb.Width(); x++ {
			row[i] = fn(row[i])
			i += f.step
		}
	}
}
