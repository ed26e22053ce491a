// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package amask

import "github.com/gogpu/pixcore/pixfmt"

// Source is the query side shared by Mask and NoClip.
type Source interface {
	Pixel(x, y int) uint8
	CombinePixel(x, y int, v uint8) uint8
	FillHspan(x, y int, covers []uint8, n int)
	CombineHspan(x, y int, covers []uint8, n int)
	FillVspan(x, y int, covers []uint8, n int)
	CombineVspan(x, y int, covers []uint8, n int)
}

// Adaptor is a pixel format whose every write is modulated by a mask.
// Copies become blends with the mask as coverage. It implements
// pixfmt.PixFmt and can be used anywhere a surface can.
type Adaptor[C any] struct {
	pf   pixfmt.PixFmt[C]
	mask Source
	span []uint8
}

// NewAdaptor wraps pf with mask.
func NewAdaptor[C any](pf pixfmt.PixFmt[C], mask Source) *Adaptor[C] {
	return &Adaptor[C]{pf: pf, mask: mask}
}

// Attach replaces the wrapped surface.
func (a *Adaptor[C]) Attach(pf pixfmt.PixFmt[C]) { a.pf = pf }

// SetMask replaces the mask.
func (a *Adaptor[C]) SetMask(mask Source) { a.mask = mask }

func (a *Adaptor[C]) alloc(n int) []uint8 {
	if n > cap(a.span) {
		a.span = make([]uint8, n+256)
	}
	return a.span[:n]
}

func (a *Adaptor[C]) fill(n int, cover uint8) []uint8 {
	s := a.alloc(n)
	for i := range s {
		s[i] = cover
	}
	return s
}

// Width returns the width of the wrapped surface.
func (a *Adaptor[C]) Width() int { return a.pf.Width() }

// Height returns the height of the wrapped surface.
func (a *Adaptor[C]) Height() int { return a.pf.Height() }

// Pixel returns the pixel at (x, y) unmasked.
func (a *Adaptor[C]) Pixel(x, y int) C { return a.pf.Pixel(x, y) }

// CopyPixel blends c with the mask value as coverage.
func (a *Adaptor[C]) CopyPixel(x, y int, c C) {
	a.pf.BlendPixel(x, y, c, a.mask.Pixel(x, y))
}

// BlendPixel blends c with cover combined with the mask.
func (a *Adaptor[C]) BlendPixel(x, y int, c C, cover uint8) {
	a.pf.BlendPixel(x, y, c, a.mask.CombinePixel(x, y, cover))
}

// CopyHline blends a row of c using the mask values as coverage.
func (a *Adaptor[C]) CopyHline(x, y, n int, c C) {
	s := a.alloc(n)
	a.mask.FillHspan(x, y, s, n)
	a.pf.BlendSolidHspan(x, y, n, c, s)
}

// CopyVline blends a column of c using the mask values as coverage.
func (a *Adaptor[C]) CopyVline(x, y, n int, c C) {
	s := a.alloc(n)
	a.mask.FillVspan(x, y, s, n)
	a.pf.BlendSolidVspan(x, y, n, c, s)
}

// BlendHline blends a row of c with cover combined with the mask.
func (a *Adaptor[C]) BlendHline(x, y, n int, c C, cover uint8) {
	s := a.fill(n, cover)
	a.mask.CombineHspan(x, y, s, n)
	a.pf.BlendSolidHspan(x, y, n, c, s)
}

// BlendVline blends a column of c with cover combined with the mask.
func (a *Adaptor[C]) BlendVline(x, y, n int, c C, cover uint8) {
	s := a.fill(n, cover)
	a.mask.CombineVspan(x, y, s, n)
	a.pf.BlendSolidVspan(x, y, n, c, s)
}

// BlendSolidHspan blends c along a row with covers combined with the mask.
func (a *Adaptor[C]) BlendSolidHspan(x, y, n int, c C, covers []uint8) {
	s := a.alloc(n)
	copy(s, covers[:n])
	a.mask.CombineHspan(x, y, s, n)
	a.pf.BlendSolidHspan(x, y, n, c, s)
}

// BlendSolidVspan is BlendSolidHspan along a column.
func (a *Adaptor[C]) BlendSolidVspan(x, y, n int, c C, covers []uint8) {
	s := a.alloc(n)
	copy(s, covers[:n])
	a.mask.CombineVspan(x, y, s, n)
	a.pf.BlendSolidVspan(x, y, n, c, s)
}

// CopyColorHspan blends colors along a row using the mask values as coverage.
func (a *Adaptor[C]) CopyColorHspan(x, y, n int, colors []C) {
	s := a.alloc(n)
	a.mask.FillHspan(x, y, s, n)
	a.pf.BlendColorHspan(x, y, n, colors, s, 255)
}

// CopyColorVspan is CopyColorHspan along a column.
func (a *Adaptor[C]) CopyColorVspan(x, y, n int, colors []C) {
	s := a.alloc(n)
	a.mask.FillVspan(x, y, s, n)
	a.pf.BlendColorVspan(x, y, n, colors, s, 255)
}

// BlendColorHspan combines covers, or the shared cover when covers is
// nil, with the mask.
func (a *Adaptor[C]) BlendColorHspan(x, y, n int, colors []C, covers []uint8, cover uint8) {
	var s []uint8
	if covers != nil {
		s = a.alloc(n)
		copy(s, covers[:n])
	} else {
		s = a.fill(n, cover)
	}
	a.mask.CombineHspan(x, y, s, n)
	a.pf.BlendColorHspan(x, y, n, colors, s, cover)
}

// BlendColorVspan is BlendColorHspan along a column.
func (a *Adaptor[C]) BlendColorVspan(x, y, n int, colors []C, covers []uint8, cover uint8) {
	var s []uint8
	if covers != nil {
		s = a.alloc(n)
		copy(s, covers[:n])
	} else {
		s = a.fill(n, cover)
	}
	a.mask.CombineVspan(x, y, s, n)
	a.pf.BlendColorVspan(x, y, n, colors, s, cover)
}
