// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"github.com/gogpu/pixcore/color"
	"github.com/gogpu/pixcore/scanline"
	"github.com/gogpu/pixcore/span"
)

// StyleHandler supplies the fill of each style id of a compound shape.
type StyleHandler[C any] interface {
	// IsSolid reports whether style is a single color.
	IsSolid(style int) bool
	// Color returns the color of a solid style.
	Color(style int) C
	// GenerateSpan fills colors for n pixels of a generated style.
	GenerateSpan(colors []C, x, y, n, style int)
}

// Accumulator is a color that can add another color scaled by coverage.
type Accumulator[C any] interface {
	Add(o C, cover uint8) C
}

// Compound renders several overlapping styles row by row. Within a row
// each style's color is added to a shared buffer with coverage limited by
// what earlier styles left unused, and the buffer is blended once. The
// first style to reach a pixel wins the coverage it claims.
//
// A Compound reuses its buffers between calls and must not be shared
// between goroutines.
type Compound[C Accumulator[C]] struct {
	sh   StyleHandler[C]
	mix  span.Allocator[C]
	gen  span.Allocator[C]
	used []uint8
}

// NewCompound returns a compound renderer over sh.
func NewCompound[C Accumulator[C]](sh StyleHandler[C]) *Compound[C] {
	return &Compound[C]{sh: sh}
}

// Render draws every row of src into ren. sl is scratch space for
// replaying a single style.
func (r *Compound[C]) Render(src *scanline.Layers, sl scanline.Container[uint8], ren *Base[C]) {
	if !src.Rewind() {
		return
	}
	minX, maxX := src.MinX(), src.MaxX()
	width := maxX - minX + 1
	sl.Reset(minX, maxX)

	for {
		n := src.SweepStyles()
		if n == 0 {
			return
		}
		y := src.Y()
		if n == 1 {
			if src.SweepScanline(sl, 0) {
				r.renderSingle(sl, ren, src.Style(0))
			}
			continue
		}

		mix := r.mix.Allocate(width)
		if cap(r.used) < width {
			r.used = make([]uint8, width)
		}
		used := r.used[:width]
		lo, hi := width, -1
		for i := range n {
			if !src.SweepScanline(sl, i) {
				continue
			}
			style := src.Style(i)
			for _, sp := range sl.Spans() {
				x, w := int(sp.X), sp.Width()
				off := x - minX
				r.clearTo(mix, used, &lo, &hi, off, off+w-1)
				if r.sh.IsSolid(style) {
					c := r.sh.Color(style)
					for k := range w {
						r.accumulate(mix, used, off+k, c, coverAt(sp, k))
					}
					continue
				}
				colors := r.gen.Allocate(w)
				r.sh.GenerateSpan(colors, x, y, w, style)
				for k := range w {
					r.accumulate(mix, used, off+k, colors[k], coverAt(sp, k))
				}
			}
		}
		r.emit(ren, mix, used, lo, hi, minX, y)
	}
}

// clearTo widens the touched range [lo, hi] to include [a, b], zeroing
// cells that enter it.
func (r *Compound[C]) clearTo(mix []C, used []uint8, lo, hi *int, a, b int) {
	var zero C
	if *hi < *lo {
		for j := a; j <= b; j++ {
			mix[j], used[j] = zero, 0
		}
		*lo, *hi = a, b
		return
	}
	for j := a; j < *lo; j++ {
		mix[j], used[j] = zero, 0
	}
	for j := *hi + 1; j <= b; j++ {
		mix[j], used[j] = zero, 0
	}
	*lo, *hi = min(*lo, a), max(*hi, b)
}

// accumulate adds c at cell i, clamping cover to the unused budget before
// adding it.
func (r *Compound[C]) accumulate(mix []C, used []uint8, i int, c C, cover uint8) {
	cover = min(cover, color.CoverFull-used[i])
	if cover == 0 {
		return
	}
	mix[i] = mix[i].Add(c, cover)
	used[i] += cover
}

// emit blends the runs of touched cells that received any coverage.
func (r *Compound[C]) emit(ren *Base[C], mix []C, used []uint8, lo, hi, minX, y int) {
	for i := lo; i <= hi; {
		if used[i] == 0 {
			i++
			continue
		}
		j := i
		for j <= hi && used[j] != 0 {
			j++
		}
		ren.BlendColorHspan(minX+i, y, j-i, mix[i:j], nil, color.CoverFull)
		i = j
	}
}

func (r *Compound[C]) renderSingle(sl scanline.Scanline[uint8], ren *Base[C], style int) {
	if r.sh.IsSolid(style) {
		RenderScanlineAASolid(sl, ren, r.sh.Color(style))
		return
	}
	y := sl.Y()
	for _, sp := range sl.Spans() {
		x, n := int(sp.X), sp.Width()
		colors := r.gen.Allocate(n)
		r.sh.GenerateSpan(colors, x, y, n, style)
		switch {
		case sp.Covers == nil:
			ren.BlendColorHspan(x, y, n, colors, nil, color.CoverFull)
		case sp.Len < 0:
			ren.BlendColorHspan(x, y, n, colors, nil, sp.Covers[0])
		default:
			ren.BlendColorHspan(x, y, n, colors, sp.Covers, color.CoverFull)
		}
	}
}

func coverAt(sp scanline.Span[uint8], k int) uint8 {
	switch {
	case sp.Covers == nil:
		return color.CoverFull
	case sp.Len < 0:
		return sp.Covers[0]
	}
	return sp.Covers[k]
}
