// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scanline

// ScanlineP stores runs of equal coverage as solid spans (Len < 0) holding
// one value, and everything else as per-pixel spans. It suits large shapes
// with long fully covered interiors.
type ScanlineP[T Cover] struct {
	lastX  int
	y      int
	covers []T
	spans  []Span[T]
}

// P8 is the common 8-bit packed scanline.
type P8 = ScanlineP[uint8]

// NewP8 returns an empty 8-bit packed scanline.
func NewP8() *P8 { return &P8{lastX: lastXSentinel} }

// NewP returns an empty packed scanline.
func NewP[T Cover]() *ScanlineP[T] { return &ScanlineP[T]{lastX: lastXSentinel} }

// Reset prepares the scanline for rows spanning [minX, maxX].
func (s *ScanlineP[T]) Reset(minX, maxX int) {
	n := maxX - minX + 3
	if n > cap(s.covers) {
		s.covers = make([]T, 0, n)
		s.spans = make([]Span[T], 0, n)
	}
	s.ResetSpans()
}

// ResetSpans discards the spans and keeps the memory.
func (s *ScanlineP[T]) ResetSpans() {
	s.lastX = lastXSentinel
	s.covers = s.covers[:0]
	s.spans = s.spans[:0]
}

// push appends coverage values and returns their slice. Values are never
// rewritten, so spans stay valid when covers grows.
func (s *ScanlineP[T]) push(v ...T) []T {
	i := len(s.covers)
	s.covers = append(s.covers, v...)
	return s.covers[i:len(s.covers):len(s.covers)]
}

// AddCell adds one pixel, extending the last per-pixel span when x
// follows it.
func (s *ScanlineP[T]) AddCell(x int, cover T) {
	if n := len(s.spans); x == s.lastX+1 && n > 0 && s.spans[n-1].Len > 0 {
		s.covers = append(s.covers, cover)
		sp := &s.spans[n-1]
		sp.Len++
		sp.Covers = s.covers[len(s.covers)-int(sp.Len):]
	} else {
		s.spans = append(s.spans, Span[T]{X: int32(x), Len: 1, Covers: s.push(cover)})
	}
	s.lastX = x
}

// AddCells adds n pixels with individual coverage values.
func (s *ScanlineP[T]) AddCells(x, n int, covers []T) {
	if k := len(s.spans); x == s.lastX+1 && k > 0 && s.spans[k-1].Len > 0 {
		s.covers = append(s.covers, covers[:n]...)
		sp := &s.spans[k-1]
		sp.Len += int32(n)
		sp.Covers = s.covers[len(s.covers)-int(sp.Len):]
	} else {
		s.spans = append(s.spans, Span[T]{X: int32(x), Len: int32(n), Covers: s.push(covers[:n]...)})
	}
	s.lastX = x + n - 1
}

// AddSpan adds a solid run of n pixels. A run that follows a solid run of
// the same coverage is merged into it.
func (s *ScanlineP[T]) AddSpan(x, n int, cover T) {
	if k := len(s.spans); x == s.lastX+1 && k > 0 && s.spans[k-1].Len < 0 && s.spans[k-1].Covers[0] == cover {
		s.spans[k-1].Len -= int32(n)
	} else {
		s.spans = append(s.spans, Span[T]{X: int32(x), Len: -int32(n), Covers: s.push(cover)})
	}
	s.lastX = x + n - 1
}

// Finalize freezes the row at y.
func (s *ScanlineP[T]) Finalize(y int) { s.y = y }

// Y returns the row of the last Finalize.
func (s *ScanlineP[T]) Y() int { return s.y }

// NumSpans returns the number of spans.
func (s *ScanlineP[T]) NumSpans() int { return len(s.spans) }

// Spans returns the spans.
func (s *ScanlineP[T]) Spans() []Span[T] { return s.spans }
