// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glyph

import (
	"math"

	"github.com/gogpu/pixcore/render"
	"github.com/gogpu/pixcore/scanline"
)

// DrawRun renders a shaped run with its origin at (x, y) on the baseline.
// Glyph positions are rounded to whole pixels. Glyphs come from c, so
// repeated glyphs are rasterized once.
func DrawRun(c *Cache, f *Font, run Run, ppem, x, y float64, sl scanline.Container[uint8], ren render.ScanlineRenderer) error {
	for _, p := range run.Glyphs {
		g, err := c.Glyph(f, p.ID, ppem)
		if err != nil {
			return err
		}
		if g.Empty() {
			continue
		}
		px := int(math.Round(x + p.X))
		py := int(math.Round(y + p.Y))
		render.RenderScanlines(g.Source(px, py), sl, ren)
	}
	return nil
}

// DrawString shapes s and renders it with its origin at (x, y). It returns
// the advance of the run.
func DrawString(sh *Shaper, c *Cache, f *Font, s string, size, x, y float64, sl scanline.Container[uint8], ren render.ScanlineRenderer) (float64, error) {
	run, err := sh.Shape(s, f, size)
	if err != nil {
		return 0, err
	}
	return run.Advance, DrawRun(c, f, run, size, x, y, sl, ren)
}
