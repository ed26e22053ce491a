// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package raster adapts golang.org/x/image/vector to the scanline
// interfaces. Paths are accumulated in device coordinates, rasterized into
// an 8-bit coverage buffer and replayed row by row as a scanline source.
package raster

import (
	"image"
	"image/draw"

	"golang.org/x/image/vector"

	"github.com/gogpu/pixcore/color"
	"github.com/gogpu/pixcore/scanline"
)

// kappa places cubic control points for a quarter ellipse.
const kappa = 0.5522847498307936

// Rasterizer converts paths to coverage inside a fixed device rectangle.
// It implements scanline.Source[uint8].
type Rasterizer struct {
	z      *vector.Rasterizer
	bounds image.Rectangle
	alpha  *image.Alpha
	lut    *[color.CoverSize]uint8
	dirty  bool

	// coverage extent in device coordinates, valid after rasterize
	minX, minY, maxX, maxY int
	empty                  bool
	y                      int
}

// New returns a rasterizer covering the device rectangle r.
func New(r image.Rectangle) *Rasterizer {
	r = r.Canon()
	return &Rasterizer{
		z:      vector.NewRasterizer(r.Dx(), r.Dy()),
		bounds: r,
		alpha:  image.NewAlpha(image.Rect(0, 0, r.Dx(), r.Dy())),
		empty:  true,
	}
}

// Bounds returns the device rectangle.
func (r *Rasterizer) Bounds() image.Rectangle { return r.bounds }

// Reset discards all paths.
func (r *Rasterizer) Reset() {
	r.z.Reset(r.bounds.Dx(), r.bounds.Dy())
	clear(r.alpha.Pix)
	r.dirty = false
	r.empty = true
}

// SetGamma reshapes coverage through f. A nil f restores linear
// coverage.
func (r *Rasterizer) SetGamma(f color.GammaFunc) {
	if f == nil {
		r.lut = nil
		return
	}
	lut := color.CoverLUT(f)
	r.lut = &lut
}

func (r *Rasterizer) local(x, y float64) (float32, float32) {
	return float32(x - float64(r.bounds.Min.X)), float32(y - float64(r.bounds.Min.Y))
}

// MoveTo starts a new subpath at (x, y).
func (r *Rasterizer) MoveTo(x, y float64) {
	r.z.MoveTo(r.local(x, y))
	r.dirty = true
}

// LineTo adds a line from the pen to (x, y).
func (r *Rasterizer) LineTo(x, y float64) {
	r.z.LineTo(r.local(x, y))
}

// QuadTo adds a quadratic Bézier curve.
func (r *Rasterizer) QuadTo(cx, cy, x, y float64) {
	bx, by := r.local(cx, cy)
	ex, ey := r.local(x, y)
	r.z.QuadTo(bx, by, ex, ey)
}

// CubeTo adds a cubic Bézier curve.
func (r *Rasterizer) CubeTo(c1x, c1y, c2x, c2y, x, y float64) {
	bx, by := r.local(c1x, c1y)
	cx, cy := r.local(c2x, c2y)
	ex, ey := r.local(x, y)
	r.z.CubeTo(bx, by, cx, cy, ex, ey)
}

// ClosePath closes the current subpath.
func (r *Rasterizer) ClosePath() { r.z.ClosePath() }

// Rect adds a closed rectangle.
func (r *Rasterizer) Rect(x0, y0, x1, y1 float64) {
	r.MoveTo(x0, y0)
	r.LineTo(x1, y0)
	r.LineTo(x1, y1)
	r.LineTo(x0, y1)
	r.ClosePath()
}

// Ellipse adds a closed ellipse made of four cubic curves.
func (r *Rasterizer) Ellipse(cx, cy, rx, ry float64) {
	kx, ky := rx*kappa, ry*kappa
	r.MoveTo(cx+rx, cy)
	r.CubeTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	r.CubeTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	r.CubeTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	r.CubeTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	r.ClosePath()
}

// Coverage rasterizes pending paths and returns the coverage buffer. Its
// origin is Bounds().Min. The image is owned by the rasterizer and is
// overwritten by the next Reset.
func (r *Rasterizer) Coverage() *image.Alpha {
	r.rasterize()
	return r.alpha
}

func (r *Rasterizer) rasterize() {
	if !r.dirty {
		return
	}
	r.dirty = false
	r.z.DrawOp = draw.Src
	r.z.Draw(r.alpha, r.alpha.Bounds(), image.Opaque, image.Point{})
	if r.lut != nil {
		for i, v := range r.alpha.Pix {
			r.alpha.Pix[i] = r.lut[v]
		}
	}

	w, h := r.bounds.Dx(), r.bounds.Dy()
	minX, minY, maxX, maxY := w, h, -1, -1
	for y := range h {
		row := r.alpha.Pix[y*r.alpha.Stride : y*r.alpha.Stride+w]
		for x, v := range row {
			if v == 0 {
				continue
			}
			minX, maxX = min(minX, x), max(maxX, x)
			minY, maxY = min(minY, y), max(maxY, y)
		}
	}
	r.empty = maxX < 0
	ox, oy := r.bounds.Min.X, r.bounds.Min.Y
	r.minX, r.minY, r.maxX, r.maxY = minX+ox, minY+oy, maxX+ox, maxY+oy
}

// MinX returns the leftmost covered column.
func (r *Rasterizer) MinX() int { return r.minX }

// MaxX returns the rightmost covered column.
func (r *Rasterizer) MaxX() int { return r.maxX }

// MinY returns the top covered row.
func (r *Rasterizer) MinY() int { return r.minY }

// MaxY returns the bottom covered row.
func (r *Rasterizer) MaxY() int { return r.maxY }

// Rewind rasterizes pending paths and moves to the first covered row.
func (r *Rasterizer) Rewind() bool {
	r.rasterize()
	r.y = r.minY
	return !r.empty
}

// Sweep emits the next row with coverage. Runs of full coverage become
// solid spans; everything else is added cell by cell.
func (r *Rasterizer) Sweep(sl scanline.Writer[uint8]) bool {
	if r.empty {
		return false
	}
	ox, oy := r.bounds.Min.X, r.bounds.Min.Y
	for ; r.y <= r.maxY; r.y++ {
		sl.ResetSpans()
		ly := r.y - oy
		row := r.alpha.Pix[ly*r.alpha.Stride : ly*r.alpha.Stride+r.bounds.Dx()]
		for x := r.minX - ox; x <= r.maxX-ox; {
			v := row[x]
			if v == 0 {
				x++
				continue
			}
			if v == color.CoverFull {
				e := x + 1
				for e <= r.maxX-ox && row[e] == color.CoverFull {
					e++
				}
				sl.AddSpan(x+ox, e-x, v)
				x = e
				continue
			}
			sl.AddCell(x+ox, v)
			x++
		}
		if sl.NumSpans() > 0 {
			sl.Finalize(r.y)
			r.y++
			return true
		}
	}
	return false
}
