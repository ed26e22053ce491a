// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pixfmt

// Transposer presents a surface with x and y swapped, so that algorithms
// written for rows can run over columns. It holds the surface exclusively
// for as long as it is used.
type Transposer[C any] struct {
	f PixFmt[C]
}

// NewTransposer wraps f.
func NewTransposer[C any](f PixFmt[C]) *Transposer[C] {
	return &Transposer[C]{f: f}
}

// Width returns the height of the wrapped surface.
func (t *Transposer[C]) Width() int { return t.f.Height() }

// Height returns the width of the wrapped surface.
func (t *Transposer[C]) Height() int { return t.f.Width() }

// Pixel returns the pixel at (y, x) of the wrapped surface.
func (t *Transposer[C]) Pixel(x, y int) C { return t.f.Pixel(y, x) }

// CopyPixel writes c at (y, x) of the wrapped surface.
func (t *Transposer[C]) CopyPixel(x, y int, c C) { t.f.CopyPixel(y, x, c) }

// BlendPixel blends c at (y, x) of the wrapped surface.
func (t *Transposer[C]) BlendPixel(x, y int, c C, cover uint8) { t.f.BlendPixel(y, x, c, cover) }

// CopyHline writes a column of the wrapped surface.
func (t *Transposer[C]) CopyHline(x, y, n int, c C) { t.f.CopyVline(y, x, n, c) }

// CopyVline writes a row of the wrapped surface.
func (t *Transposer[C]) CopyVline(x, y, n int, c C) { t.f.CopyHline(y, x, n, c) }

// BlendHline blends a column of the wrapped surface.
func (t *Transposer[C]) BlendHline(x, y, n int, c C, cover uint8) {
	t.f.BlendVline(y, x, n, c, cover)
}

// BlendVline blends a row of the wrapped surface.
func (t *Transposer[C]) BlendVline(x, y, n int, c C, cover uint8) {
	t.f.BlendHline(y, x, n, c, cover)
}

// BlendSolidHspan blends covers down a column of the wrapped surface.
func (t *Transposer[C]) BlendSolidHspan(x, y, n int, c C, covers []uint8) {
	t.f.BlendSolidVspan(y, x, n, c, covers)
}

// BlendSolidVspan blends covers along a row of the wrapped surface.
func (t *Transposer[C]) BlendSolidVspan(x, y, n int, c C, covers []uint8) {
	t.f.BlendSolidHspan(y, x, n, c, covers)
}

// CopyColorHspan writes colors down a column of the wrapped surface.
func (t *Transposer[C]) CopyColorHspan(x, y, n int, colors []C) {
	t.f.CopyColorVspan(y, x, n, colors)
}

// CopyColorVspan writes colors along a row of the wrapped surface.
func (t *Transposer[C]) CopyColorVspan(x, y, n int, colors []C) {
	t.f.CopyColorHspan(y, x, n, colors)
}

// BlendColorHspan blends colors down a column of the wrapped surface.
func (t *Transposer[C]) BlendColorHspan(x, y, n int, colors []C, covers []uint8, cover uint8) {
	t.f.BlendColorVspan(y, x, n, colors, covers, cover)
}

// BlendColorVspan blends colors along a row of the wrapped surface.
func (t *Transposer[C]) BlendColorVspan(x, y, n int, colors []C, covers []uint8, cover uint8) {
	t.f.BlendColorHspan(y, x, n, colors, covers, cover)
}
