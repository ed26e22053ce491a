// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scanline

import "math"

// Layers is a compound coverage source built from stored shapes, one per
// style. For each row it reports which styles have coverage there, and
// replays each style's row on demand. Rows of every storage must be in
// ascending y, as a rasterizer produces them.
type Layers struct {
	layers []layer
	active []int
	y      int
}

type layer struct {
	s     *StorageAA[uint8]
	style int
	cur   int
}

// Add registers s under style. Styles are reported in the order layers
// were added; the first added layer is the bottom one.
func (l *Layers) Add(s *StorageAA[uint8], style int) {
	l.layers = append(l.layers, layer{s: s, style: style})
}

// Len returns the number of layers.
func (l *Layers) Len() int { return len(l.layers) }

// Reset removes all layers.
func (l *Layers) Reset() {
	l.layers = l.layers[:0]
	l.active = l.active[:0]
}

// MinX returns the smallest x over all layers.
func (l *Layers) MinX() int {
	v := math.MaxInt32
	for _, ly := range l.layers {
		if !ly.s.Empty() {
			v = min(v, ly.s.MinX())
		}
	}
	return v
}

// MaxX returns the largest x over all layers.
func (l *Layers) MaxX() int {
	v := math.MinInt32
	for _, ly := range l.layers {
		if !ly.s.Empty() {
			v = max(v, ly.s.MaxX())
		}
	}
	return v
}

// Rewind moves every layer to its first row.
func (l *Layers) Rewind() bool {
	l.active = l.active[:0]
	ok := false
	for i := range l.layers {
		l.layers[i].cur = 0
		ok = ok || !l.layers[i].s.Empty()
	}
	return ok
}

// skipEmpty advances ly past rows without spans.
func (ly *layer) skipEmpty() {
	for ly.cur < len(ly.s.rows) && ly.s.rows[ly.cur].count == 0 {
		ly.cur++
	}
}

// SweepStyles moves to the next row covered by any layer and returns the
// number of styles present on it, or 0 at the end.
func (l *Layers) SweepStyles() int {
	for _, i := range l.active {
		l.layers[i].cur++
	}
	l.active = l.active[:0]

	y := math.MaxInt
	for i := range l.layers {
		ly := &l.layers[i]
		ly.skipEmpty()
		if ly.cur < len(ly.s.rows) {
			y = min(y, int(ly.s.rows[ly.cur].y))
		}
	}
	if y == math.MaxInt {
		return 0
	}
	for i := range l.layers {
		ly := &l.layers[i]
		if ly.cur < len(ly.s.rows) && int(ly.s.rows[ly.cur].y) == y {
			l.active = append(l.active, i)
		}
	}
	l.y = y
	return len(l.active)
}

// Y returns the current row.
func (l *Layers) Y() int { return l.y }

// Style returns the style of the i-th active layer.
func (l *Layers) Style(i int) int { return l.layers[l.active[i]].style }

// SweepScanline replays the current row of the i-th active layer into sl.
func (l *Layers) SweepScanline(sl Writer[uint8], i int) bool {
	ly := &l.layers[l.active[i]]
	sl.ResetSpans()
	row := ly.s.rows[ly.cur]
	for _, sp := range ly.s.spans[row.start : row.start+row.count] {
		if sp.len < 0 {
			sl.AddSpan(int(sp.x), int(-sp.len), ly.s.covers[sp.cover])
		} else {
			sl.AddCells(int(sp.x), int(sp.len), ly.s.covers[sp.cover:])
		}
	}
	sl.Finalize(int(row.y))
	return sl.NumSpans() > 0
}
