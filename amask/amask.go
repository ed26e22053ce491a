// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package amask provides alpha masks: coverage sources independent of the
// rasterizer, used to clip or modulate rendering.
//
// A mask reads one coverage byte per pixel from a row buffer. The byte can
// be one channel of an interleaved image (step and offset) or derived from
// several channels by a Func such as RGBToGray.
//
// Mask clamps every query to its buffer: pixels outside it have coverage
// zero. NoClip skips those checks for callers that clip themselves.
package amask

import (
	"image"

	"github.com/gogpu/pixcore/color"
	"github.com/gogpu/pixcore/rowbuf"
)

// Func computes a coverage value from the channels of one pixel.
type Func func(p []uint8) uint8

// OneComponent uses the first addressed channel as coverage.
func OneComponent(p []uint8) uint8 { return p[0] }

// RGBToGray returns a Func computing luminance from the channels at
// offsets r, g and b: (77r + 150g + 29b) >> 8.
func RGBToGray(r, g, b int) Func {
	return func(p []uint8) uint8 {
		return uint8((uint32(p[r])*77 + uint32(p[g])*150 + uint32(p[b])*29) >> 8)
	}
}

// combine multiplies a coverage value by a mask value:
// (255 + v*m) >> 8.
func combine(v, m uint8) uint8 {
	return uint8((color.CoverMask + uint32(v)*uint32(m)) >> color.CoverShift)
}

// Mask is a clipped alpha mask.
type Mask struct {
	rb     rowbuf.Buffer[uint8]
	step   int
	offset int
	fn     Func
}

// New returns a mask over rb reading pixels step bytes apart, starting at
// offset, through fn.
func New(rb rowbuf.Buffer[uint8], step, offset int, fn Func) *Mask {
	return &Mask{rb: rb, step: step, offset: offset, fn: fn}
}

// NewGray8 returns a mask over a single-channel buffer.
func NewGray8(rb rowbuf.Buffer[uint8]) *Mask { return New(rb, 1, 0, OneComponent) }

// NewRGBAGray returns a mask taking the luminance of an interleaved RGBA
// buffer.
func NewRGBAGray(rb rowbuf.Buffer[uint8]) *Mask { return New(rb, 4, 0, RGBToGray(0, 1, 2)) }

// NewAlpha returns a mask taking the alpha channel of an interleaved RGBA
// buffer.
func NewAlpha(rb rowbuf.Buffer[uint8]) *Mask { return New(rb, 4, 3, OneComponent) }

// FromImage copies the alpha channel of img into a new single-channel
// buffer and returns a mask over it. The mask origin is img.Bounds().Min.
func FromImage(img image.Image) (*Mask, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	rb, err := rowbuf.New[uint8](w, h, w)
	if err != nil {
		return nil, err
	}
	if a, ok := img.(*image.Alpha); ok {
		for y := 0; y < h; y++ {
			copy(rb.Row(y), a.Pix[y*a.Stride:y*a.Stride+w])
		}
		return NewGray8(rb), nil
	}
	for y := 0; y < h; y++ {
		row := rb.Row(y)
		for x := 0; x < w; x++ {
			_, _, _, av := img.At(x+b.Min.X, y+b.Min.Y).RGBA()
			row[x] = uint8(av >> 8)
		}
	}
	return NewGray8(rb), nil
}

// Attach rebinds the mask to rb.
func (m *Mask) Attach(rb rowbuf.Buffer[uint8]) { m.rb = rb }

// RowBuf returns the bound buffer.
func (m *Mask) RowBuf() rowbuf.Buffer[uint8] { return m.rb }

// Width returns the mask width.
func (m *Mask) Width() int { return m.rb.Width() }

// Height returns the mask height.
func (m *Mask) Height() int { return m.rb.Height() }

func (m *Mask) at(x, y int) uint8 {
	return m.fn(m.rb.Row(y)[x*m.step+m.offset:])
}

func (m *Mask) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.rb.Width() && y < m.rb.Height()
}

// Pixel returns the mask value at (x, y), or 0 outside the buffer.
func (m *Mask) Pixel(x, y int) uint8 {
	if !m.inside(x, y) {
		return 0
	}
	return m.at(x, y)
}

// Value is Pixel; it lets a mask serve as a pixfmt.ValueReader.
func (m *Mask) Value(x, y int) uint8 { return m.Pixel(x, y) }

// CombinePixel returns (255 + v*mask(x, y)) >> 8, or 0 outside the buffer.
func (m *Mask) CombinePixel(x, y int, v uint8) uint8 {
	if !m.inside(x, y) {
		return 0
	}
	return combine(v, m.at(x, y))
}

// clipH clips the run [x, x+n) on row y to the buffer. It zeroes the
// covers that fall outside and returns the inside range as offsets into
// covers; ok is false when nothing is inside.
func (m *Mask) clipH(x, y int, covers []uint8, n int) (x0, i0, cnt int, ok bool) {
	covers = covers[:n]
	if y < 0 || y >= m.rb.Height() {
		clear(covers)
		return 0, 0, 0, false
	}
	return clipRun(x, m.rb.Width(), covers)
}

func (m *Mask) clipV(x, y int, covers []uint8, n int) (y0, i0, cnt int, ok bool) {
	covers = covers[:n]
	if x < 0 || x >= m.rb.Width() {
		clear(covers)
		return 0, 0, 0, false
	}
	return clipRun(y, m.rb.Height(), covers)
}

// clipRun clips covers placed at pos against [0, limit).
func clipRun(pos, limit int, covers []uint8) (p0, i0, cnt int, ok bool) {
	n := len(covers)
	if pos < 0 {
		if -pos >= n {
			clear(covers)
			return 0, 0, 0, false
		}
		clear(covers[:-pos])
		i0 = -pos
		pos = 0
	}
	cnt = n - i0
	if pos+cnt > limit {
		rest := pos + cnt - limit
		if rest >= cnt {
			clear(covers)
			return 0, 0, 0, false
		}
		clear(covers[n-rest:])
		cnt -= rest
	}
	return pos, i0, cnt, true
}

// FillHspan writes n mask values of row y starting at x into covers.
func (m *Mask) FillHspan(x, y int, covers []uint8, n int) {
	x0, i0, cnt, ok := m.clipH(x, y, covers, n)
	if !ok {
		return
	}
	for i := 0; i < cnt; i++ {
		covers[i0+i] = m.at(x0+i, y)
	}
}

// CombineHspan multiplies n covers by the mask values of row y in place.
func (m *Mask) CombineHspan(x, y int, covers []uint8, n int) {
	x0, i0, cnt, ok := m.clipH(x, y, covers, n)
	if !ok {
		return
	}
	for i := 0; i < cnt; i++ {
		covers[i0+i] = combine(covers[i0+i], m.at(x0+i, y))
	}
}

// FillVspan writes n mask values of column x starting at y into covers.
func (m *Mask) FillVspan(x, y int, covers []uint8, n int) {
	y0, i0, cnt, ok := m.clipV(x, y, covers, n)
	if !ok {
		return
	}
	for i := 0; i < cnt; i++ {
		covers[i0+i] = m.at(x, y0+i)
	}
}

// CombineVspan multiplies n covers by the mask values of column x.
func (m *Mask) CombineVspan(x, y int, covers []uint8, n int) {
	y0, i0, cnt, ok := m.clipV(x, y, covers, n)
	if !ok {
		return
	}
	for i := 0; i < cnt; i++ {
		covers[i0+i] = combine(covers[i0+i], m.at(x, y0+i))
	}
}

// Invert replaces every value v of a single-channel mask by 255 - v.
func (m *Mask) Invert() {
	for y := 0; y < m.rb.Height(); y++ {
		row := m.rb.Row(y)
		for x := 0; x < m.rb.Width(); x++ {
			p := &row[x*m.step+m.offset]
			*p = 255 - *p
		}
	}
}

// NoClip is a mask without bounds checks. Every query must lie inside the
// buffer.
type NoClip struct {
	m Mask
}

// NewNoClip returns an unchecked mask.
func NewNoClip(rb rowbuf.Buffer[uint8], step, offset int, fn Func) *NoClip {
	return &NoClip{m: Mask{rb: rb, step: step, offset: offset, fn: fn}}
}

// Attach rebinds the mask to rb.
func (m *NoClip) Attach(rb rowbuf.Buffer[uint8]) { m.m.rb = rb }

// Pixel returns the mask value at (x, y).
func (m *NoClip) Pixel(x, y int) uint8 { return m.m.at(x, y) }

// CombinePixel returns (255 + v*mask(x, y)) >> 8.
func (m *NoClip) CombinePixel(x, y int, v uint8) uint8 { return combine(v, m.m.at(x, y)) }

// FillHspan writes n mask values of row y into covers.
func (m *NoClip) FillHspan(x, y int, covers []uint8, n int) {
	for i := range covers[:n] {
		covers[i] = m.m.at(x+i, y)
	}
}

// CombineHspan multiplies n covers by the mask values of row y.
func (m *NoClip) CombineHspan(x, y int, covers []uint8, n int) {
	for i := range covers[:n] {
		covers[i] = combine(covers[i], m.m.at(x+i, y))
	}
}

// FillVspan writes n mask values of column x into covers.
func (m *NoClip) FillVspan(x, y int, covers []uint8, n int) {
	for i := range covers[:n] {
		covers[i] = m.m.at(x, y+i)
	}
}

// CombineVspan multiplies n covers by the mask values of column x.
func (m *NoClip) CombineVspan(x, y int, covers []uint8, n int) {
	for i := range covers[:n] {
		covers[i] = combine(covers[i], m.m.at(x, y+i))
	}
}
