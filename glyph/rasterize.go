// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glyph

import (
	"fmt"
	"image"

	"github.com/gogpu/pixcore/color"
	"github.com/gogpu/pixcore/raster"
	"github.com/gogpu/pixcore/render"
	"github.com/gogpu/pixcore/scanline"
)

// Coverage is a rasterized glyph in serialized scanline storage form.
// Coordinates inside Data are relative to the pen position. A Coverage
// is read-only and may be replayed concurrently.
type Coverage struct {
	ID      ID
	Advance float64
	// Bounds is the covered pixel box relative to the pen.
	Bounds image.Rectangle
	Data   []byte
}

// Empty reports whether the glyph produced no coverage.
func (c *Coverage) Empty() bool { return len(c.Data) == 0 }

// Size returns the number of bytes held by the glyph.
func (c *Coverage) Size() int { return len(c.Data) }

// Source returns a scanline source replaying the glyph with the pen at
// (x, y).
func (c *Coverage) Source(x, y int) *scanline.SerializedAA[uint8] {
	return scanline.NewSerializedAA[uint8](c.Data, x, y)
}

// Rasterize renders a glyph at ppem pixels per em. gamma reshapes the
// coverage and may be nil.
func Rasterize(f *Font, id ID, ppem float64, gamma color.GammaFunc) (*Coverage, error) {
	o, err := f.Outline(id, ppem)
	if err != nil {
		return nil, err
	}
	return RasterizeOutline(o, gamma)
}

// RasterizeOutline renders an already loaded outline.
func RasterizeOutline(o *Outline, gamma color.GammaFunc) (*Coverage, error) {
	c := &Coverage{ID: o.ID, Advance: o.Advance}
	if o.Empty() {
		return c, nil
	}
	box := o.Bounds.Pixels(0, 0)
	if box.Empty() {
		return c, nil
	}
	r := raster.New(box)
	r.SetGamma(gamma)
	o.AddTo(r, 0, 0)

	st := scanline.NewStorageAA[uint8]()
	render.RenderScanlines(r, scanline.NewU8(), st)
	if st.Empty() {
		return c, nil
	}
	data, err := st.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("glyph: serialize %d: %w", o.ID, err)
	}
	c.Data = data
	c.Bounds = image.Rect(st.MinX(), st.MinY(), st.MaxX()+1, st.MaxY()+1)
	return c, nil
}
