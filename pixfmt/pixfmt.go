// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package pixfmt binds row memory, a channel order and a blender into an
// addressable pixel surface.
//
// # Bounds
//
// Surfaces perform no bounds checking. Every coordinate and span passed to
// a surface must already be clipped to the buffer; violating this panics
// with an index error or, for spans that stay inside the backing slice,
// silently writes the wrong pixels. Clipping is the job of render.Base.
//
// # Fast paths
//
// blend operations skip a source whose alpha is zero and copy a source
// whose effective alpha (alpha scaled by cover) reaches full intensity.
// Surfaces built on a blend.Custom blender (the compositing operator
// table) never take either path, since most operators read the destination
// even for transparent or opaque sources.
package pixfmt

import "github.com/gogpu/pixcore/color"

// PixFmt is the surface contract consumed by renderers.
type PixFmt[C any] interface {
	Width() int
	Height() int

	Pixel(x, y int) C
	CopyPixel(x, y int, c C)
	BlendPixel(x, y int, c C, cover uint8)

	CopyHline(x, y, n int, c C)
	CopyVline(x, y, n int, c C)
	BlendHline(x, y, n int, c C, cover uint8)
	BlendVline(x, y, n int, c C, cover uint8)

	BlendSolidHspan(x, y, n int, c C, covers []uint8)
	BlendSolidVspan(x, y, n int, c C, covers []uint8)

	CopyColorHspan(x, y, n int, colors []C)
	CopyColorVspan(x, y, n int, colors []C)
	// BlendColorHspan blends n colors. covers holds one coverage value per
	// pixel; when it is nil every pixel uses cover.
	BlendColorHspan(x, y, n int, colors []C, covers []uint8, cover uint8)
	BlendColorVspan(x, y, n int, colors []C, covers []uint8, cover uint8)
}

// Reader is the read side of a surface, used as the source of BlendFrom.
type Reader[C any] interface {
	Width() int
	Height() int
	Pixel(x, y int) C
}

// ValueReader is a single-channel source whose values are used as coverage
// or as palette indices.
type ValueReader interface {
	Width() int
	Height() int
	Value(x, y int) uint8
}

// RGBAColor is satisfied by color structs laid out as {R, G, B, A T}, such
// as color.Rgba8 and color.Rgba16.
type RGBAColor[T color.Int] interface {
	~struct{ R, G, B, A T }
}

// GrayColor is satisfied by color structs laid out as {V, A T}, such as
// color.Gray8 and color.Gray16.
type GrayColor[T color.Int] interface {
	~struct{ V, A T }
}

func split[T color.Int, C RGBAColor[T]](c C) (r, g, b, a T) {
	s := struct{ R, G, B, A T }(c)
	return s.R, s.G, s.B, s.A
}

func join[T color.Int, C RGBAColor[T]](r, g, b, a T) C {
	return C(struct{ R, G, B, A T }{r, g, b, a})
}

func splitGray[T color.Int, C GrayColor[T]](c C) (v, a T) {
	s := struct{ V, A T }(c)
	return s.V, s.A
}

func joinGray[T color.Int, C GrayColor[T]](v, a T) C {
	return C(struct{ V, A T }{v, a})
}

// coverValue scales a source value by an 8-bit coverage value the way the
// blend-from operations do: (v * cover + mask) >> 8.
func coverValue(v, cover uint8) uint8 {
	return uint8((uint32(v)*uint32(cover) + color.CoverMask) >> color.CoverShift)
}
