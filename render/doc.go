// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package render turns finalized scanlines into pixels.
//
// Base wraps a pixel format surface and clips every operation to a clip
// box, so callers may pass coordinates that fall partly or wholly outside
// the buffer. The scanline renderers sit on top of Base:
//
//   - RenderScanlineAASolid blends one color through the coverage of a
//     scanline.
//   - RenderScanlineBinSolid ignores coverage.
//   - RenderScanlineAA blends colors produced by a span.Generator.
//   - RenderScanlineCopy overwrites covered pixels with generated colors.
//
// Each has an object form implementing ScanlineRenderer for use with
// RenderScanlines, which replays a scanline.Source row by row.
//
// Compound renders overlapping styles of a scanline.Layers source in a
// single pass per row. Parallel splits a stored shape into bands of rows
// and renders the bands on a worker pool.
//
// # Example
//
//	rb, _ := rowbuf.New[uint8](w, h, w*4)
//	ren := render.NewBase[color.Rgba8](pixfmt.NewRGBA32(rb, blend.NewPre[uint8](order.RGBA)))
//	ren.Clear(color.Rgba8{R: 255, G: 255, B: 255, A: 255})
//	render.RenderScanlines(src, scanline.NewU8(), render.NewScanlineAASolid(ren, color.Rgba8{R: 255, A: 255}))
package render
