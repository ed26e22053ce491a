// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package order describes how logical color channels are laid out inside
// a stored pixel.
//
// An Order is fixed when a pixel format is constructed and never changes
// afterwards. Pixel formats copy the channel offsets out of the Order once
// so the per-pixel paths index with plain integers.
package order

// Order identifies a channel layout.
type Order uint8

const (
	// RGB is 3 channels: red, green, blue.
	RGB Order = iota
	// BGR is 3 channels: blue, green, red.
	BGR
	// RGBA is 4 channels: red, green, blue, alpha.
	RGBA
	// ARGB is 4 channels: alpha, red, green, blue.
	ARGB
	// ABGR is 4 channels: alpha, blue, green, red.
	ABGR
	// BGRA is 4 channels: blue, green, red, alpha.
	BGRA
	// RGBX is RGB padded to 4 channels with a trailing unused channel.
	RGBX
	// XRGB is RGB padded to 4 channels with a leading unused channel.
	XRGB
	// BGRX is BGR padded to 4 channels with a trailing unused channel.
	BGRX
	// XBGR is BGR padded to 4 channels with a leading unused channel.
	XBGR

	// Gray is a single gray channel.
	Gray

	orderCount
)

// Layout holds the channel offsets of an Order. A is -1 when the layout
// has no alpha channel.
type Layout struct {
	R, G, B, A int
	// Width is the pixel width in channels.
	Width int
}

var layouts = [orderCount]Layout{
	RGB:  {R: 0, G: 1, B: 2, A: -1, Width: 3},
	BGR:  {R: 2, G: 1, B: 0, A: -1, Width: 3},
	RGBA: {R: 0, G: 1, B: 2, A: 3, Width: 4},
	ARGB: {R: 1, G: 2, B: 3, A: 0, Width: 4},
	ABGR: {R: 3, G: 2, B: 1, A: 0, Width: 4},
	BGRA: {R: 2, G: 1, B: 0, A: 3, Width: 4},
	RGBX: {R: 0, G: 1, B: 2, A: -1, Width: 4},
	XRGB: {R: 1, G: 2, B: 3, A: -1, Width: 4},
	BGRX: {R: 2, G: 1, B: 0, A: -1, Width: 4},
	XBGR: {R: 3, G: 2, B: 1, A: -1, Width: 4},
	Gray: {R: 0, G: 0, B: 0, A: -1, Width: 1},
}

var names = [orderCount]string{
	RGB: "RGB", BGR: "BGR",
	RGBA: "RGBA", ARGB: "ARGB", ABGR: "ABGR", BGRA: "BGRA",
	RGBX: "RGBX", XRGB: "XRGB", BGRX: "BGRX", XBGR: "XBGR",
	Gray: "Gray",
}

// Layout returns the channel offsets. Unknown orders yield the zero Layout.
func (o Order) Layout() Layout {
	if o >= orderCount {
		return Layout{}
	}
	return layouts[o]
}

// Valid reports whether o names a known layout.
func (o Order) Valid() bool {
	return o < orderCount
}

// HasAlpha reports whether the layout stores an alpha channel.
func (o Order) HasAlpha() bool {
	return o.Valid() && layouts[o].A >= 0
}

// Width returns the pixel width in channels.
func (o Order) Width() int {
	return o.Layout().Width
}

// String returns the conventional name of the layout.
func (o Order) String() string {
	if o >= orderCount {
		return "Order(?)"
	}
	return names[o]
}
