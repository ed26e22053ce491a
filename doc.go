// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package pixcore is the pixel-compositing core of a 2D vector graphics
// renderer.
//
// # Overview
//
// pixcore turns sparse per-row coverage data (scanlines) into color values
// inside a framebuffer. It sits between a polygon rasterizer, which produces
// coverage, and the presentation layer, which consumes finished pixels.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/pixcore/blend"
//		"github.com/gogpu/pixcore/color"
//		"github.com/gogpu/pixcore/order"
//		"github.com/gogpu/pixcore/pixfmt"
//		"github.com/gogpu/pixcore/render"
//		"github.com/gogpu/pixcore/rowbuf"
//		"github.com/gogpu/pixcore/scanline"
//	)
//
//	rb, _ := rowbuf.New[uint8](640, 480, 640*4)
//	pf := pixfmt.NewRGBA32(rb, blend.NewPre[uint8](order.RGBA))
//	ren := render.NewBase[color.Rgba8](pf)
//	ren.Clear(color.Rgba8{R: 255, G: 255, B: 255, A: 255})
//
//	sl := scanline.NewU8()
//	render.RenderScanlines(src, sl, render.NewScanlineAASolid(ren, color.Rgba8{R: 255, A: 255}))
//
// # Architecture
//
// The library is organized leaves first:
//   - color, order: color values and channel layouts
//   - rowbuf: row-addressed pixel memory (owned or borrowed, signed stride)
//   - scanline: coverage containers, persistent storage and serialization
//   - blend: per-pixel blend math and the compositing operator table
//   - pixfmt: addressable pixel surfaces binding memory, layout and blender
//   - amask: alpha masks and the masked pixel-format adaptor
//   - span, render: span generators and scanline renderers
//   - raster, glyph: adaptors to the rasterizer and font engine
//   - cache: sharded LRU cache backing the glyph cache
//
// The pixdemo command renders YAML scenes through the whole pipeline.
//
// # Bounds
//
// Pixel format surfaces perform no bounds checking. Clipping is the job of
// render.Base and everything above it.
//
// # Coordinate System
//
//   - Origin (0,0) at the first row of the row buffer
//   - X increases right
//   - Y increases with row index (a negative stride flips storage, not coordinates)
package pixcore

// Version is the current version of the library.
const Version = "0.1.0"
