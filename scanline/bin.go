// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scanline

// Bin is a binary scanline: every added pixel is fully covered and the
// coverage values passed in are ignored. Its spans have Len > 0 and nil
// Covers.
type Bin struct {
	lastX int
	y     int
	spans []Span[uint8]
}

// NewBin returns an empty binary scanline.
func NewBin() *Bin { return &Bin{lastX: lastXSentinel} }

// Reset prepares the scanline for rows spanning [minX, maxX].
func (s *Bin) Reset(minX, maxX int) {
	if n := maxX - minX + 3; n > cap(s.spans) {
		s.spans = make([]Span[uint8], 0, n)
	}
	s.ResetSpans()
}

// ResetSpans discards the spans and keeps the memory.
func (s *Bin) ResetSpans() {
	s.lastX = lastXSentinel
	s.spans = s.spans[:0]
}

// AddCell adds one pixel.
func (s *Bin) AddCell(x int, _ uint8) { s.add(x, 1) }

// AddCells adds n pixels.
func (s *Bin) AddCells(x, n int, _ []uint8) { s.add(x, n) }

// AddSpan adds n pixels.
func (s *Bin) AddSpan(x, n int, _ uint8) { s.add(x, n) }

func (s *Bin) add(x, n int) {
	if x == s.lastX+1 {
		s.spans[len(s.spans)-1].Len += int32(n)
	} else {
		s.spans = append(s.spans, Span[uint8]{X: int32(x), Len: int32(n)})
	}
	s.lastX = x + n - 1
}

// Finalize freezes the row at y.
func (s *Bin) Finalize(y int) { s.y = y }

// Y returns the row of the last Finalize.
func (s *Bin) Y() int { return s.y }

// NumSpans returns the number of spans.
func (s *Bin) NumSpans() int { return len(s.spans) }

// Spans returns the spans.
func (s *Bin) Spans() []Span[uint8] { return s.spans }
