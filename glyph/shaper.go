// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glyph

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/text/unicode/bidi"

	"github.com/gogpu/pixcore"
)

// Direction is a text direction.
type Direction uint8

// Directions. DirectionAuto takes the paragraph direction from the first
// strong character.
const (
	DirectionAuto Direction = iota
	DirectionLTR
	DirectionRTL
)

func (d Direction) String() string {
	switch d {
	case DirectionLTR:
		return "LTR"
	case DirectionRTL:
		return "RTL"
	default:
		return "Auto"
	}
}

// Positioned is a shaped glyph. X and Y are relative to the start of the
// run on the baseline.
type Positioned struct {
	ID      ID
	Cluster int
	X, Y    float64
	Advance float64
}

// Run is a shaped line of text in visual order.
type Run struct {
	Glyphs  []Positioned
	Advance float64
}

// DirRun is a range of runes [Start, End) sharing one direction.
type DirRun struct {
	Start, End int
	Dir        Direction
}

// Shaper shapes text with HarfBuzz rules. It is safe for concurrent use.
type Shaper struct {
	base Direction
	lang language.Language

	pool  sync.Pool
	mu    sync.RWMutex
	fonts map[uint64]*gtfont.Font
}

// ShaperOption configures a Shaper.
type ShaperOption func(*Shaper)

// WithDirection sets the paragraph direction.
func WithDirection(d Direction) ShaperOption {
	return func(s *Shaper) { s.base = d }
}

// WithLanguage sets the BCP 47 language used for shaping.
func WithLanguage(tag string) ShaperOption {
	return func(s *Shaper) { s.lang = language.NewLanguage(tag) }
}

// NewShaper returns a shaper for left-to-right English text unless
// configured otherwise.
func NewShaper(opts ...ShaperOption) *Shaper {
	s := &Shaper{
		lang:  language.NewLanguage("en"),
		fonts: make(map[uint64]*gtfont.Font),
	}
	s.pool.New = func() any { return &shaping.HarfbuzzShaper{} }
	for _, o := range opts {
		o(s)
	}
	return s
}

// Shape converts text into positioned glyphs at size pixels per em.
func (s *Shaper) Shape(text string, f *Font, size float64) (Run, error) {
	if text == "" {
		return Run{}, nil
	}
	gf, err := s.font(f)
	if err != nil {
		return Run{}, err
	}
	face := gtfont.NewFace(gf)
	runes := []rune(text)
	hb := s.pool.Get().(*shaping.HarfbuzzShaper)
	defer s.pool.Put(hb)

	var run Run
	for _, dr := range Runs(text, s.base) {
		dir := di.DirectionLTR
		if dr.Dir == DirectionRTL {
			dir = di.DirectionRTL
		}
		out := hb.Shape(shaping.Input{
			Text:      runes,
			RunStart:  dr.Start,
			RunEnd:    dr.End,
			Direction: dir,
			Face:      face,
			Size:      toFixed(size),
			Script:    script(runes[dr.Start:dr.End]),
			Language:  s.lang,
		})
		for _, g := range out.Glyphs {
			adv := fromFixed(g.Advance)
			run.Glyphs = append(run.Glyphs, Positioned{
				ID:      ID(uint16(g.GlyphID)),
				Cluster: g.TextIndex(),
				X:       run.Advance + fromFixed(g.XOffset),
				Y:       -fromFixed(g.YOffset),
				Advance: adv,
			})
			run.Advance += adv
		}
	}
	return run, nil
}

func (s *Shaper) font(f *Font) (*gtfont.Font, error) {
	s.mu.RLock()
	gf, ok := s.fonts[f.ID()]
	s.mu.RUnlock()
	if ok {
		return gf, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gf, ok := s.fonts[f.ID()]; ok {
		return gf, nil
	}
	face, err := gtfont.ParseTTF(bytes.NewReader(f.Data()))
	if err != nil {
		pixcore.Logger().Warn("glyph: shaper font load failed", "font", f.Name(), "err", err)
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedFont, err)
	}
	s.fonts[f.ID()] = face.Font
	return face.Font, nil
}

// Forget drops the parsed shaping data of f.
func (s *Shaper) Forget(f *Font) {
	s.mu.Lock()
	delete(s.fonts, f.ID())
	s.mu.Unlock()
}

// Runs splits text into directional runs in visual order.
func Runs(text string, base Direction) []DirRun {
	n := len([]rune(text))
	if n == 0 {
		return nil
	}
	fallback := []DirRun{{Start: 0, End: n, Dir: DirectionLTR}}
	if base == DirectionRTL {
		fallback[0].Dir = DirectionRTL
	}

	def := bidi.Neutral
	switch base {
	case DirectionLTR:
		def = bidi.LeftToRight
	case DirectionRTL:
		def = bidi.RightToLeft
	}
	var p bidi.Paragraph
	if _, err := p.SetString(text, bidi.DefaultDirection(def)); err != nil {
		return fallback
	}
	ord, err := p.Order()
	if err != nil || ord.NumRuns() == 0 {
		return fallback
	}

	runs := make([]DirRun, 0, ord.NumRuns())
	for i := range ord.NumRuns() {
		r := ord.Run(i)
		start, end := r.Pos()
		if end < start || start >= n {
			continue
		}
		d := DirectionLTR
		if r.Direction() == bidi.RightToLeft {
			d = DirectionRTL
		}
		runs = append(runs, DirRun{Start: start, End: min(end+1, n), Dir: d})
	}
	if len(runs) == 0 {
		return fallback
	}
	return runs
}

// script returns the script of the first non-space rune.
func script(runes []rune) language.Script {
	for _, r := range runes {
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
