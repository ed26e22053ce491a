// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scanline

// ScanlineU keeps one coverage value per pixel for every span, so spans
// always have Len > 0. It suits rasterizers that emit mostly varying
// coverage and renderers that want a plain coverage array.
type ScanlineU[T Cover] struct {
	minX   int
	lastX  int
	y      int
	covers []T
	spans  []Span[T]
}

// U8 is the common 8-bit unpacked scanline.
type U8 = ScanlineU[uint8]

// NewU8 returns an empty 8-bit unpacked scanline.
func NewU8() *U8 { return &U8{lastX: lastXSentinel} }

// NewU returns an empty unpacked scanline.
func NewU[T Cover]() *ScanlineU[T] { return &ScanlineU[T]{lastX: lastXSentinel} }

// Reset prepares the scanline for rows spanning [minX, maxX]. Memory is
// only reallocated when the extent grows.
func (s *ScanlineU[T]) Reset(minX, maxX int) {
	n := maxX - minX + 2
	if n > len(s.covers) {
		s.covers = make([]T, n)
		s.spans = make([]Span[T], 0, n)
	}
	s.lastX = lastXSentinel
	s.minX = minX
	s.spans = s.spans[:0]
}

// ResetSpans discards the spans and keeps the memory.
func (s *ScanlineU[T]) ResetSpans() {
	s.lastX = lastXSentinel
	s.spans = s.spans[:0]
}

// AddCell adds one pixel. It extends the last span when x follows it.
func (s *ScanlineU[T]) AddCell(x int, cover T) {
	i := x - s.minX
	s.covers[i] = cover
	if x == s.lastX+1 {
		sp := &s.spans[len(s.spans)-1]
		sp.Len++
		sp.Covers = sp.Covers[:sp.Len]
	} else {
		s.spans = append(s.spans, Span[T]{X: int32(x), Len: 1, Covers: s.covers[i : i+1]})
	}
	s.lastX = x
}

// AddCells adds n pixels with individual coverage values.
func (s *ScanlineU[T]) AddCells(x, n int, covers []T) {
	i := x - s.minX
	copy(s.covers[i:i+n], covers[:n])
	s.extend(x, n, i)
}

// AddSpan adds n pixels that share cover.
func (s *ScanlineU[T]) AddSpan(x, n int, cover T) {
	i := x - s.minX
	c := s.covers[i : i+n]
	for k := range c {
		c[k] = cover
	}
	s.extend(x, n, i)
}

func (s *ScanlineU[T]) extend(x, n, i int) {
	if x == s.lastX+1 {
		sp := &s.spans[len(s.spans)-1]
		sp.Len += int32(n)
		sp.Covers = sp.Covers[:sp.Len]
	} else {
		s.spans = append(s.spans, Span[T]{X: int32(x), Len: int32(n), Covers: s.covers[i : i+n]})
	}
	s.lastX = x + n - 1
}

// Finalize freezes the row at y.
func (s *ScanlineU[T]) Finalize(y int) { s.y = y }

// Y returns the row of the last Finalize.
func (s *ScanlineU[T]) Y() int { return s.y }

// NumSpans returns the number of spans.
func (s *ScanlineU[T]) NumSpans() int { return len(s.spans) }

// Spans returns the spans. The slice is reused after ResetSpans.
func (s *ScanlineU[T]) Spans() []Span[T] { return s.spans }
