// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glyph

import (
	"image"
	"math"
)

// Op is a path segment operation.
type Op uint8

// Segment operations.
const (
	OpMoveTo Op = iota
	OpLineTo
	OpQuadTo
	OpCubeTo
)

func (op Op) String() string {
	switch op {
	case OpMoveTo:
		return "MoveTo"
	case OpLineTo:
		return "LineTo"
	case OpQuadTo:
		return "QuadTo"
	case OpCubeTo:
		return "CubeTo"
	default:
		return "Unknown"
	}
}

// Point is an outline point in pixels.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned box in pixels.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Pixels returns the smallest integer rectangle containing r translated
// by (x, y).
func (r Rect) Pixels(x, y float64) image.Rectangle {
	return image.Rect(
		int(math.Floor(r.MinX+x)), int(math.Floor(r.MinY+y)),
		int(math.Ceil(r.MaxX+x)), int(math.Ceil(r.MaxY+y)),
	)
}

// Segment is one outline segment. MoveTo and LineTo use Args[0], QuadTo
// uses Args[0:2] and CubeTo uses Args[0:3]; the last used point is the
// end point.
type Segment struct {
	Op   Op
	Args [3]Point
}

// Outline is the scaled vector outline of one glyph.
type Outline struct {
	ID       ID
	Segments []Segment
	Bounds   Rect
	Advance  float64
}

// Empty reports whether the outline has no contours.
func (o *Outline) Empty() bool { return len(o.Segments) == 0 }

// PathSink receives outline geometry. *raster.Rasterizer implements it.
type PathSink interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadTo(cx, cy, x, y float64)
	CubeTo(c1x, c1y, c2x, c2y, x, y float64)
	ClosePath()
}

// AddTo replays the outline into p with the pen at (x, y). Every contour
// is closed.
func (o *Outline) AddTo(p PathSink, x, y float64) {
	open := false
	for _, s := range o.Segments {
		a := s.Args
		switch s.Op {
		case OpMoveTo:
			if open {
				p.ClosePath()
			}
			p.MoveTo(a[0].X+x, a[0].Y+y)
			open = true
		case OpLineTo:
			p.LineTo(a[0].X+x, a[0].Y+y)
		case OpQuadTo:
			p.QuadTo(a[0].X+x, a[0].Y+y, a[1].X+x, a[1].Y+y)
		case OpCubeTo:
			p.CubeTo(a[0].X+x, a[0].Y+y, a[1].X+x, a[1].Y+y, a[2].X+x, a[2].Y+y)
		}
	}
	if open {
		p.ClosePath()
	}
}
