// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"image"

	"github.com/gogpu/pixcore/color"
	"github.com/gogpu/pixcore/pixfmt"
)

// Base clips drawing operations to a rectangle before passing them to a
// pixel format surface. The surface itself never bounds-checks; Base is
// the layer that makes arbitrary coordinates safe.
//
// Base holds no per-call state, so several goroutines may draw through
// one Base as long as they touch disjoint rows.
type Base[C any] struct {
	pf   pixfmt.PixFmt[C]
	clip image.Rectangle
}

// NewBase returns a renderer clipping to the whole surface.
func NewBase[C any](pf pixfmt.PixFmt[C]) *Base[C] {
	b := &Base[C]{}
	b.Attach(pf)
	return b
}

// Attach replaces the surface and resets the clip box to its bounds.
func (b *Base[C]) Attach(pf pixfmt.PixFmt[C]) {
	b.pf = pf
	b.clip = b.bounds()
}

// PixFmt returns the surface.
func (b *Base[C]) PixFmt() pixfmt.PixFmt[C] { return b.pf }

// Width returns the surface width.
func (b *Base[C]) Width() int { return b.pf.Width() }

// Height returns the surface height.
func (b *Base[C]) Height() int { return b.pf.Height() }

func (b *Base[C]) bounds() image.Rectangle {
	return image.Rect(0, 0, b.pf.Width(), b.pf.Height())
}

// SetClipBox restricts drawing to r intersected with the surface. It
// reports whether anything remains visible.
func (b *Base[C]) SetClipBox(r image.Rectangle) bool {
	b.clip = r.Canon().Intersect(b.bounds())
	return !b.clip.Empty()
}

// ResetClipping makes the whole surface visible, or nothing at all.
func (b *Base[C]) ResetClipping(visible bool) {
	if visible {
		b.clip = b.bounds()
	} else {
		b.clip = image.Rectangle{}
	}
}

// ClipBox returns the current clip rectangle.
func (b *Base[C]) ClipBox() image.Rectangle { return b.clip }

// Inbox reports whether (x, y) is inside the clip box.
func (b *Base[C]) Inbox(x, y int) bool {
	return image.Pt(x, y).In(b.clip)
}

// clipH clips a horizontal run to the clip box. It returns the new start,
// length and the number of pixels dropped on the left.
func (b *Base[C]) clipH(x, y, n int) (int, int, int, bool) {
	if n <= 0 || y < b.clip.Min.Y || y >= b.clip.Max.Y {
		return 0, 0, 0, false
	}
	skip := 0
	if x < b.clip.Min.X {
		skip = b.clip.Min.X - x
		n -= skip
		x = b.clip.Min.X
	}
	if x+n > b.clip.Max.X {
		n = b.clip.Max.X - x
	}
	return x, n, skip, n > 0
}

func (b *Base[C]) clipV(x, y, n int) (int, int, int, bool) {
	if n <= 0 || x < b.clip.Min.X || x >= b.clip.Max.X {
		return 0, 0, 0, false
	}
	skip := 0
	if y < b.clip.Min.Y {
		skip = b.clip.Min.Y - y
		n -= skip
		y = b.clip.Min.Y
	}
	if y+n > b.clip.Max.Y {
		n = b.clip.Max.Y - y
	}
	return y, n, skip, n > 0
}

// Clear overwrites the whole surface with c, ignoring the clip box.
func (b *Base[C]) Clear(c C) {
	w := b.pf.Width()
	if w == 0 {
		return
	}
	for y := range b.pf.Height() {
		b.pf.CopyHline(0, y, w, c)
	}
}

// Fill blends c over the whole surface, ignoring the clip box.
func (b *Base[C]) Fill(c C) {
	w := b.pf.Width()
	if w == 0 {
		return
	}
	for y := range b.pf.Height() {
		b.pf.BlendHline(0, y, w, c, color.CoverFull)
	}
}

// Pixel returns the color at (x, y), or the zero color outside the clip
// box.
func (b *Base[C]) Pixel(x, y int) C {
	if !b.Inbox(x, y) {
		var zero C
		return zero
	}
	return b.pf.Pixel(x, y)
}

// CopyPixel sets one pixel.
func (b *Base[C]) CopyPixel(x, y int, c C) {
	if b.Inbox(x, y) {
		b.pf.CopyPixel(x, y, c)
	}
}

// BlendPixel blends one pixel.
func (b *Base[C]) BlendPixel(x, y int, c C, cover uint8) {
	if b.Inbox(x, y) {
		b.pf.BlendPixel(x, y, c, cover)
	}
}

// CopyHline sets n pixels starting at (x, y).
func (b *Base[C]) CopyHline(x, y, n int, c C) {
	if x, n, _, ok := b.clipH(x, y, n); ok {
		b.pf.CopyHline(x, y, n, c)
	}
}

// CopyVline sets n pixels downward from (x, y).
func (b *Base[C]) CopyVline(x, y, n int, c C) {
	if y, n, _, ok := b.clipV(x, y, n); ok {
		b.pf.CopyVline(x, y, n, c)
	}
}

// BlendHline blends n pixels starting at (x, y) with one coverage value.
func (b *Base[C]) BlendHline(x, y, n int, c C, cover uint8) {
	if x, n, _, ok := b.clipH(x, y, n); ok {
		b.pf.BlendHline(x, y, n, c, cover)
	}
}

// BlendVline blends n pixels downward from (x, y).
func (b *Base[C]) BlendVline(x, y, n int, c C, cover uint8) {
	if y, n, _, ok := b.clipV(x, y, n); ok {
		b.pf.BlendVline(x, y, n, c, cover)
	}
}

// BlendSolidHspan blends c with per-pixel coverage.
func (b *Base[C]) BlendSolidHspan(x, y, n int, c C, covers []uint8) {
	if x, n, skip, ok := b.clipH(x, y, n); ok {
		b.pf.BlendSolidHspan(x, y, n, c, covers[skip:])
	}
}

// BlendSolidVspan is the vertical form of BlendSolidHspan.
func (b *Base[C]) BlendSolidVspan(x, y, n int, c C, covers []uint8) {
	if y, n, skip, ok := b.clipV(x, y, n); ok {
		b.pf.BlendSolidVspan(x, y, n, c, covers[skip:])
	}
}

// CopyColorHspan sets n pixels from colors.
func (b *Base[C]) CopyColorHspan(x, y, n int, colors []C) {
	if x, n, skip, ok := b.clipH(x, y, n); ok {
		b.pf.CopyColorHspan(x, y, n, colors[skip:])
	}
}

// CopyColorVspan is the vertical form of CopyColorHspan.
func (b *Base[C]) CopyColorVspan(x, y, n int, colors []C) {
	if y, n, skip, ok := b.clipV(x, y, n); ok {
		b.pf.CopyColorVspan(x, y, n, colors[skip:])
	}
}

// BlendColorHspan blends n colors. A nil covers uses cover for every
// pixel.
func (b *Base[C]) BlendColorHspan(x, y, n int, colors []C, covers []uint8, cover uint8) {
	if x, n, skip, ok := b.clipH(x, y, n); ok {
		if covers != nil {
			covers = covers[skip:]
		}
		b.pf.BlendColorHspan(x, y, n, colors[skip:], covers, cover)
	}
}

// BlendColorVspan is the vertical form of BlendColorHspan.
func (b *Base[C]) BlendColorVspan(x, y, n int, colors []C, covers []uint8, cover uint8) {
	if y, n, skip, ok := b.clipV(x, y, n); ok {
		if covers != nil {
			covers = covers[skip:]
		}
		b.pf.BlendColorVspan(x, y, n, colors[skip:], covers, cover)
	}
}

// CopyBar fills the rectangle r with c.
func (b *Base[C]) CopyBar(r image.Rectangle, c C) {
	r = r.Canon().Intersect(b.clip)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		b.pf.CopyHline(r.Min.X, y, r.Dx(), c)
	}
}

// BlendBar blends c over the rectangle r.
func (b *Base[C]) BlendBar(r image.Rectangle, c C, cover uint8) {
	r = r.Canon().Intersect(b.clip)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		b.pf.BlendHline(r.Min.X, y, r.Dx(), c, cover)
	}
}

// blitRect maps the source rectangle r, placed at offset (dx, dy), onto
// the clip box. It returns the visible destination rectangle.
func (b *Base[C]) blitRect(src pixfmt.Reader[C], r *image.Rectangle, dx, dy int) image.Rectangle {
	sb := image.Rect(0, 0, src.Width(), src.Height())
	if r == nil {
		return sb.Add(image.Pt(dx, dy)).Intersect(b.clip)
	}
	return r.Canon().Intersect(sb).Add(image.Pt(dx, dy)).Intersect(b.clip)
}

type blendFromer[C any] interface {
	BlendFrom(src pixfmt.Reader[C], xdst, ydst, xsrc, ysrc, n int, cover uint8)
}

// CopyFrom copies the rectangle r of src (all of it when r is nil) to
// this surface, offset by (dx, dy).
func (b *Base[C]) CopyFrom(src pixfmt.Reader[C], r *image.Rectangle, dx, dy int) {
	dst := b.blitRect(src, r, dx, dy)
	if dst.Empty() {
		return
	}
	row := make([]C, dst.Dx())
	for y := dst.Min.Y; y < dst.Max.Y; y++ {
		for i := range row {
			row[i] = src.Pixel(dst.Min.X+i-dx, y-dy)
		}
		b.pf.CopyColorHspan(dst.Min.X, y, len(row), row)
	}
}

// BlendFrom blends the rectangle r of src (all of it when r is nil) onto
// this surface, offset by (dx, dy). Surfaces with their own BlendFrom
// are used directly.
func (b *Base[C]) BlendFrom(src pixfmt.Reader[C], r *image.Rectangle, dx, dy int, cover uint8) {
	dst := b.blitRect(src, r, dx, dy)
	if dst.Empty() {
		return
	}
	if bf, ok := b.pf.(blendFromer[C]); ok {
		for y := dst.Min.Y; y < dst.Max.Y; y++ {
			bf.BlendFrom(src, dst.Min.X, y, dst.Min.X-dx, y-dy, dst.Dx(), cover)
		}
		return
	}
	row := make([]C, dst.Dx())
	for y := dst.Min.Y; y < dst.Max.Y; y++ {
		for i := range row {
			row[i] = src.Pixel(dst.Min.X+i-dx, y-dy)
		}
		b.pf.BlendColorHspan(dst.Min.X, y, len(row), row, nil, cover)
	}
}
