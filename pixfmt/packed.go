// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pixfmt

import (
	"github.com/gogpu/pixcore/blend"
	"github.com/gogpu/pixcore/color"
	"github.com/gogpu/pixcore/rowbuf"
)

// Word is the storage of packed surfaces.
type Word interface {
	~uint16 | ~uint32
}

// Packed is a surface storing one packed word per pixel. Colors are
// unpacked into C for reads and blends. Packed surfaces have no alpha.
type Packed[W Word, T color.Int, C RGBAColor[T]] struct {
	rb rowbuf.Buffer[W]
	bl blend.Packed[W, C]
}

// Common packed instantiations.
type (
	// Packed16 stores 15 or 16 bit words (555, 565) with 8-bit colors.
	Packed16 = Packed[uint16, uint8, color.Rgba8]
	// Packed32 stores 30 or 32 bit words (AAA, BBA, ABB) with 16-bit colors.
	Packed32 = Packed[uint32, uint16, color.Rgba16]
)

// NewPacked binds rb to a packed blender.
func NewPacked[W Word, T color.Int, C RGBAColor[T]](rb rowbuf.Buffer[W], bl blend.Packed[W, C]) *Packed[W, T, C] {
	return &Packed[W, T, C]{rb: rb, bl: bl}
}

// NewPacked16 returns a 16-bit word surface, e.g. with blend.RGB565{}.
func NewPacked16(rb rowbuf.Buffer[uint16], bl blend.Packed[uint16, color.Rgba8]) *Packed16 {
	return NewPacked[uint16, uint8, color.Rgba8](rb, bl)
}

// NewPacked32 returns a 32-bit word surface, e.g. with blend.RGBAAA{}.
func NewPacked32(rb rowbuf.Buffer[uint32], bl blend.Packed[uint32, color.Rgba16]) *Packed32 {
	return NewPacked[uint32, uint16, color.Rgba16](rb, bl)
}

// Attach rebinds the surface to rb.
func (f *Packed[W, T, C]) Attach(rb rowbuf.Buffer[W]) { f.rb = rb }

// Width returns the width in pixels.
func (f *Packed[W, T, C]) Width() int { return f.rb.Width() }

// Height returns the height in pixels.
func (f *Packed[W, T, C]) Height() int { return f.rb.Height() }

func (f *Packed[W, T, C]) word(c C) W {
	r, g, b, _ := split[T](c)
	return f.bl.MakePix(uint32(r), uint32(g), uint32(b))
}

func (f *Packed[W, T, C]) blendPix(p *W, c C, cover uint8) {
	r, g, b, a := split[T](c)
	if a == 0 || cover == 0 {
		return
	}
	if cover == color.CoverFull {
		if a == color.BaseMask[T]() {
			*p = f.bl.MakePix(uint32(r), uint32(g), uint32(b))
			return
		}
		f.bl.BlendPix(p, uint32(r), uint32(g), uint32(b), uint32(a))
		return
	}
	f.bl.BlendPixCover(p, uint32(r), uint32(g), uint32(b), uint32(a), cover)
}

// Pixel unpacks the word at (x, y).
func (f *Packed[W, T, C]) Pixel(x, y int) C { return f.bl.MakeColor(f.rb.Row(y)[x]) }

// CopyPixel packs c into (x, y).
func (f *Packed[W, T, C]) CopyPixel(x, y int, c C) { f.rb.Row(y)[x] = f.word(c) }

// BlendPixel blends c into (x, y).
func (f *Packed[W, T, C]) BlendPixel(x, y int, c C, cover uint8) {
	f.blendPix(&f.rb.Row(y)[x], c, cover)
}

// CopyHline fills n pixels of row y.
func (f *Packed[W, T, C]) CopyHline(x, y, n int, c C) {
	v := f.word(c)
	row := f.rb.Row(y)[x : x+n]
	for i := range row {
		row[i] = v
	}
}

// CopyVline fills n pixels of column x.
func (f *Packed[W, T, C]) CopyVline(x, y, n int, c C) {
	v := f.word(c)
	for ; n > 0; n-- {
		f.rb.Row(y)[x] = v
		y++
	}
}

// BlendHline blends c into n pixels of row y.
func (f *Packed[W, T, C]) BlendHline(x, y, n int, c C, cover uint8) {
	row := f.rb.Row(y)[x : x+n]
	for i := range row {
		f.blendPix(&row[i], c, cover)
	}
}

// BlendVline blends c into n pixels of column x.
func (f *Packed[W, T, C]) BlendVline(x, y, n int, c C, cover uint8) {
	for ; n > 0; n-- {
		f.blendPix(&f.rb.Row(y)[x], c, cover)
		y++
	}
}

// BlendSolidHspan blends c with one coverage value per pixel.
func (f *Packed[W, T, C]) BlendSolidHspan(x, y, n int, c C, covers []uint8) {
	row := f.rb.Row(y)[x : x+n]
	for i := range row {
		f.blendPix(&row[i], c, covers[i])
	}
}

// BlendSolidVspan is BlendSolidHspan along column x.
func (f *Packed[W, T, C]) BlendSolidVspan(x, y, n int, c C, covers []uint8) {
	for _, cv := range covers[:n] {
		f.blendPix(&f.rb.Row(y)[x], c, cv)
		y++
	}
}

// CopyColorHspan overwrites n pixels of row y.
func (f *Packed[W, T, C]) CopyColorHspan(x, y, n int, colors []C) {
	row := f.rb.Row(y)[x : x+n]
	for i := range row {
		row[i] = f.word(colors[i])
	}
}

// CopyColorVspan overwrites n pixels of column x.
func (f *Packed[W, T, C]) CopyColorVspan(x, y, n int, colors []C) {
	for _, c := range colors[:n] {
		f.rb.Row(y)[x] = f.word(c)
		y++
	}
}

// BlendColorHspan blends n colors into row y.
func (f *Packed[W, T, C]) BlendColorHspan(x, y, n int, colors []C, covers []uint8, cover uint8) {
	row := f.rb.Row(y)[x : x+n]
	for i := range row {
		cv := cover
		if covers != nil {
			cv = covers[i]
		}
		f.blendPix(&row[i], colors[i], cv)
	}
}

// BlendColorVspan blends n colors into column x.
func (f *Packed[W, T, C]) BlendColorVspan(x, y, n int, colors []C, covers []uint8, cover uint8) {
	for k, c := range colors[:n] {
		cv := cover
		if covers != nil {
			cv = covers[k]
		}
		f.blendPix(&f.rb.Row(y)[x], c, cv)
		y++
	}
}

// CopyFrom copies n words from src.
func (f *Packed[W, T, C]) CopyFrom(src rowbuf.Buffer[W], xdst, ydst, xsrc, ysrc, n int) {
	copy(f.rb.Row(ydst)[xdst:xdst+n], src.Row(ysrc)[xsrc:])
}

// BlendFrom blends n pixels read from src.
func (f *Packed[W, T, C]) BlendFrom(src Reader[C], xdst, ydst, xsrc, ysrc, n int, cover uint8) {
	row := f.rb.Row(ydst)
	for k := 0; k < n; k++ {
		f.blendPix(&row[xdst+k], src.Pixel(xsrc+k, ysrc), cover)
	}
}
