// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glyph

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/pixcore"
)

// ID is a glyph index inside a font.
type ID uint16

var fontSeq atomic.Uint64

// Font is a parsed TrueType or OpenType font. It is safe for concurrent
// use; per-call sfnt buffers come from a pool.
type Font struct {
	id   uint64
	data []byte
	sf   *sfnt.Font
	name string
	bufs sync.Pool
}

// ParseFont parses TTF or OTF data. The data must not be modified
// afterwards.
func ParseFont(data []byte) (*Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	sf, err := sfnt.Parse(data)
	if err != nil {
		pixcore.Logger().Warn("glyph: font parse failed", "size", len(data), "err", err)
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedFont, err)
	}
	f := &Font{
		id:   fontSeq.Add(1),
		data: data,
		sf:   sf,
		bufs: sync.Pool{New: func() any { return new(sfnt.Buffer) }},
	}
	b := f.buffer()
	f.name, _ = sf.Name(b, sfnt.NameIDFull)
	f.release(b)
	return f, nil
}

func (f *Font) buffer() *sfnt.Buffer   { return f.bufs.Get().(*sfnt.Buffer) }
func (f *Font) release(b *sfnt.Buffer) { f.bufs.Put(b) }

// ID returns a process-unique identifier of the font.
func (f *Font) ID() uint64 { return f.id }

// Name returns the full font name, or "" if the font has none.
func (f *Font) Name() string { return f.name }

// Data returns the raw font data.
func (f *Font) Data() []byte { return f.data }

// NumGlyphs returns the number of glyphs in the font.
func (f *Font) NumGlyphs() int { return f.sf.NumGlyphs() }

// UnitsPerEm returns the design grid size.
func (f *Font) UnitsPerEm() int { return int(f.sf.UnitsPerEm()) }

// Index maps a rune to a glyph index. Runes missing from the font map to
// glyph 0.
func (f *Font) Index(r rune) ID {
	b := f.buffer()
	defer f.release(b)
	x, err := f.sf.GlyphIndex(b, r)
	if err != nil {
		return 0
	}
	return ID(x)
}

// Advance returns the horizontal advance of a glyph in pixels at ppem.
func (f *Font) Advance(id ID, ppem float64, h font.Hinting) float64 {
	b := f.buffer()
	defer f.release(b)
	adv, err := f.sf.GlyphAdvance(b, sfnt.GlyphIndex(id), toFixed(ppem), h)
	if err != nil {
		return 0
	}
	return fromFixed(adv)
}

// Metrics returns ascent, descent and line height in pixels at ppem.
func (f *Font) Metrics(ppem float64) (ascent, descent, height float64) {
	b := f.buffer()
	defer f.release(b)
	m, err := f.sf.Metrics(b, toFixed(ppem), font.HintingNone)
	if err != nil {
		return 0, 0, 0
	}
	return fromFixed(m.Ascent), fromFixed(m.Descent), fromFixed(m.Height)
}

// Outline loads the outline of a glyph scaled to ppem pixels per em.
// Coordinates are relative to the pen position on the baseline with y
// increasing downwards. Glyphs without contours, like space, return an
// empty outline and no error.
func (f *Font) Outline(id ID, ppem float64) (*Outline, error) {
	b := f.buffer()
	defer f.release(b)
	p := toFixed(ppem)
	segs, err := f.sf.LoadGlyph(b, sfnt.GlyphIndex(id), p, nil)
	if err != nil {
		if errors.Is(err, sfnt.ErrColoredGlyph) {
			return nil, fmt.Errorf("%w: glyph %d", ErrNoOutline, id)
		}
		return nil, fmt.Errorf("glyph: load %d: %w", id, err)
	}
	adv, err := f.sf.GlyphAdvance(b, sfnt.GlyphIndex(id), p, font.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("glyph: advance %d: %w", id, err)
	}
	o := &Outline{ID: id, Advance: fromFixed(adv)}
	if len(segs) == 0 {
		return o, nil
	}
	o.Segments = make([]Segment, len(segs))
	for i, s := range segs {
		seg := Segment{}
		n := 1
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			seg.Op = OpMoveTo
		case sfnt.SegmentOpLineTo:
			seg.Op = OpLineTo
		case sfnt.SegmentOpQuadTo:
			seg.Op, n = OpQuadTo, 2
		case sfnt.SegmentOpCubeTo:
			seg.Op, n = OpCubeTo, 3
		}
		for j := range n {
			seg.Args[j] = Point{X: fromFixed(s.Args[j].X), Y: fromFixed(s.Args[j].Y)}
		}
		o.Segments[i] = seg
	}
	bb := segs.Bounds()
	o.Bounds = Rect{
		MinX: fromFixed(bb.Min.X), MinY: fromFixed(bb.Min.Y),
		MaxX: fromFixed(bb.Max.X), MaxY: fromFixed(bb.Max.Y),
	}
	return o, nil
}

func toFixed(v float64) fixed.Int26_6   { return fixed.Int26_6(v*64 + 0.5) }
func fromFixed(v fixed.Int26_6) float64 { return float64(v) / 64 }
