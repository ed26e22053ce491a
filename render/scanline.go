// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"github.com/gogpu/pixcore/color"
	"github.com/gogpu/pixcore/scanline"
	"github.com/gogpu/pixcore/span"
)

// RenderScanlineAASolid blends one color through the coverage of sl.
// Spans without coverage values (binary scanlines) are drawn at full
// coverage.
func RenderScanlineAASolid[C any](sl scanline.Scanline[uint8], ren *Base[C], c C) {
	y := sl.Y()
	for _, sp := range sl.Spans() {
		x := int(sp.X)
		switch {
		case sp.Covers == nil:
			ren.BlendHline(x, y, sp.Width(), c, color.CoverFull)
		case sp.Len < 0:
			ren.BlendHline(x, y, int(-sp.Len), c, sp.Covers[0])
		default:
			ren.BlendSolidHspan(x, y, int(sp.Len), c, sp.Covers)
		}
	}
}

// RenderScanlineBinSolid draws every span of sl at full coverage.
func RenderScanlineBinSolid[C any](sl scanline.Scanline[uint8], ren *Base[C], c C) {
	y := sl.Y()
	for _, sp := range sl.Spans() {
		ren.BlendHline(int(sp.X), y, sp.Width(), c, color.CoverFull)
	}
}

// RenderScanlineAA blends colors from gen through the coverage of sl.
func RenderScanlineAA[C any](sl scanline.Scanline[uint8], ren *Base[C], alloc *span.Allocator[C], gen span.Generator[C]) {
	y := sl.Y()
	for _, sp := range sl.Spans() {
		x, n := int(sp.X), sp.Width()
		colors := alloc.Allocate(n)
		gen.Generate(colors, x, y, n)
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

// RenderScanlineCopy overwrites the pixels covered by sl with colors from
// gen. Coverage values are ignored.
func RenderScanlineCopy[C any](sl scanline.Scanline[uint8], ren *Base[C], alloc *span.Allocator[C], gen span.Generator[C]) {
	y := sl.Y()
	for _, sp := range sl.Spans() {
		x, n := int(sp.X), sp.Width()
		colors := alloc.Allocate(n)
		gen.Generate(colors, x, y, n)
		ren.CopyColorHspan(x, y, n, colors)
	}
}

// ScanlineRenderer consumes finalized scanlines of one shape.
type ScanlineRenderer interface {
	// Prepare is called once per shape, before the first scanline.
	Prepare()
	Render(sl scanline.Scanline[uint8])
}

// ScanlineAASolid renders anti-aliased scanlines in one color.
type ScanlineAASolid[C any] struct {
	ren   *Base[C]
	color C
}

// NewScanlineAASolid returns a solid renderer drawing c into ren.
func NewScanlineAASolid[C any](ren *Base[C], c C) *ScanlineAASolid[C] {
	return &ScanlineAASolid[C]{ren: ren, color: c}
}

// SetColor changes the color of subsequent scanlines.
func (r *ScanlineAASolid[C]) SetColor(c C) { r.color = c }

// Color returns the current color.
func (r *ScanlineAASolid[C]) Color() C { return r.color }

// Prepare does nothing.
func (r *ScanlineAASolid[C]) Prepare() {}

// Render draws sl.
func (r *ScanlineAASolid[C]) Render(sl scanline.Scanline[uint8]) {
	RenderScanlineAASolid(sl, r.ren, r.color)
}

// ScanlineBinSolid renders scanlines in one color, ignoring coverage.
type ScanlineBinSolid[C any] struct {
	ren   *Base[C]
	color C
}

// NewScanlineBinSolid returns an aliased solid renderer.
func NewScanlineBinSolid[C any](ren *Base[C], c C) *ScanlineBinSolid[C] {
	return &ScanlineBinSolid[C]{ren: ren, color: c}
}

// SetColor changes the color of subsequent scanlines.
func (r *ScanlineBinSolid[C]) SetColor(c C) { r.color = c }

// Prepare does nothing.
func (r *ScanlineBinSolid[C]) Prepare() {}

// Render draws sl.
func (r *ScanlineBinSolid[C]) Render(sl scanline.Scanline[uint8]) {
	RenderScanlineBinSolid(sl, r.ren, r.color)
}

// ScanlineAA renders scanlines with colors from a span generator.
type ScanlineAA[C any] struct {
	ren   *Base[C]
	alloc *span.Allocator[C]
	gen   span.Generator[C]
	copy  bool
}

// NewScanlineAA returns a renderer that blends generated colors.
func NewScanlineAA[C any](ren *Base[C], alloc *span.Allocator[C], gen span.Generator[C]) *ScanlineAA[C] {
	return &ScanlineAA[C]{ren: ren, alloc: alloc, gen: gen}
}

// NewScanlineCopy returns a renderer that overwrites covered pixels with
// generated colors.
func NewScanlineCopy[C any](ren *Base[C], alloc *span.Allocator[C], gen span.Generator[C]) *ScanlineAA[C] {
	return &ScanlineAA[C]{ren: ren, alloc: alloc, gen: gen, copy: true}
}

// Prepare prepares the generator.
func (r *ScanlineAA[C]) Prepare() { r.gen.Prepare() }

// Render draws sl.
func (r *ScanlineAA[C]) Render(sl scanline.Scanline[uint8]) {
	if r.copy {
		RenderScanlineCopy(sl, r.ren, r.alloc, r.gen)
		return
	}
	RenderScanlineAA(sl, r.ren, r.alloc, r.gen)
}

// RenderScanlines replays every row of src through sl into ren.
func RenderScanlines(src scanline.Source[uint8], sl scanline.Container[uint8], ren ScanlineRenderer) {
	if !src.Rewind() {
		return
	}
	sl.Reset(src.MinX(), src.MaxX())
	ren.Prepare()
	for src.Sweep(sl) {
		ren.Render(sl)
	}
}

// RenderSources renders each source with the matching color. colors
// must be at least as long as srcs.
func RenderSources[C any](srcs []scanline.Source[uint8], sl scanline.Container[uint8], ren *ScanlineAASolid[C], colors []C) {
	for i, src := range srcs {
		ren.SetColor(colors[i])
		RenderScanlines(src, sl, ren)
	}
}
