// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scanline

import "math"

type spanRec struct {
	x, len int32
	cover  int // index into StorageAA.covers
}

type rowRec struct {
	y            int32
	start, count int // range of StorageAA.spans
}

// StorageAA keeps finalized anti-aliased scanlines for later replay. It is
// filled once (Prepare, then Render per row) and is read-only afterwards;
// any number of Readers may then replay it concurrently.
type StorageAA[T Cover] struct {
	covers []T
	spans  []spanRec
	rows   []rowRec

	minX, minY, maxX, maxY int

	r Reader[T]
}

// StorageAA8 is the common 8-bit storage.
type StorageAA8 = StorageAA[uint8]

// NewStorageAA returns an empty storage.
func NewStorageAA[T Cover]() *StorageAA[T] {
	s := &StorageAA[T]{}
	s.Prepare()
	return s
}

// Prepare clears the storage for a new shape and keeps its memory.
func (s *StorageAA[T]) Prepare() {
	s.covers = s.covers[:0]
	s.spans = s.spans[:0]
	s.rows = s.rows[:0]
	s.minX, s.minY = math.MaxInt32, math.MaxInt32
	s.maxX, s.maxY = math.MinInt32, math.MinInt32
	s.r = Reader[T]{s: s}
}

// Render appends a finalized scanline. Spans of binary scanlines are
// stored as fully covered solid runs.
func (s *StorageAA[T]) Render(sl Scanline[T]) {
	y := sl.Y()
	s.minY = min(s.minY, y)
	s.maxY = max(s.maxY, y)

	row := rowRec{y: int32(y), start: len(s.spans)}
	for _, sp := range sl.Spans() {
		rec := spanRec{x: sp.X, len: sp.Len, cover: len(s.covers)}
		switch {
		case sp.Covers == nil:
			rec.len = -int32(sp.Width())
			s.covers = append(s.covers, CoverFull[T]())
		case sp.Len < 0:
			s.covers = append(s.covers, sp.Covers[0])
		default:
			s.covers = append(s.covers, sp.Covers[:sp.Len]...)
		}
		s.spans = append(s.spans, rec)
		s.minX = min(s.minX, int(sp.X))
		s.maxX = max(s.maxX, sp.End()-1)
	}
	row.count = len(s.spans) - row.start
	s.rows = append(s.rows, row)
}

// Empty reports whether no rows were stored.
func (s *StorageAA[T]) Empty() bool { return len(s.rows) == 0 }

// NumRows returns the number of stored rows, empty ones included.
func (s *StorageAA[T]) NumRows() int { return len(s.rows) }

// MinX returns the smallest covered x.
func (s *StorageAA[T]) MinX() int { return s.minX }

// MinY returns the first stored row.
func (s *StorageAA[T]) MinY() int { return s.minY }

// MaxX returns the largest covered x.
func (s *StorageAA[T]) MaxX() int { return s.maxX }

// MaxY returns the last stored row.
func (s *StorageAA[T]) MaxY() int { return s.maxY }

// Rewind resets the storage's own cursor. It returns false if nothing
// was stored.
func (s *StorageAA[T]) Rewind() bool { return s.r.Rewind() }

// Sweep replays the next non-empty row through the storage's own cursor.
func (s *StorageAA[T]) Sweep(sl Writer[T]) bool { return s.r.Sweep(sl) }

// SweepEmbedded is Sweep without copying coverage.
func (s *StorageAA[T]) SweepEmbedded(e *Embedded[T]) bool { return s.r.SweepEmbedded(e) }

// Reader returns an independent cursor over the storage.
func (s *StorageAA[T]) Reader() *Reader[T] { return &Reader[T]{s: s} }

// Reader is a replay cursor over a StorageAA. Readers of the same storage
// do not share state.
type Reader[T Cover] struct {
	s      *StorageAA[T]
	cur    int
	band   bool
	y1, y2 int
}

// SetBand restricts replay to rows y1 <= y < y2.
func (r *Reader[T]) SetBand(y1, y2 int) {
	r.band = true
	r.y1, r.y2 = y1, y2
}

// ClearBand removes the row restriction.
func (r *Reader[T]) ClearBand() { r.band = false }

// MinX returns the storage's smallest x.
func (r *Reader[T]) MinX() int { return r.s.minX }

// MaxX returns the storage's largest x.
func (r *Reader[T]) MaxX() int { return r.s.maxX }

// Rewind moves to the first row.
func (r *Reader[T]) Rewind() bool {
	r.cur = 0
	if r.band && (r.s.maxY < r.y1 || r.s.minY >= r.y2) {
		r.cur = len(r.s.rows)
	}
	return r.cur < len(r.s.rows)
}

// next returns the next row with spans inside the band.
func (r *Reader[T]) next() (rowRec, bool) {
	for r.cur < len(r.s.rows) {
		row := r.s.rows[r.cur]
		r.cur++
		if row.count == 0 {
			continue
		}
		if r.band && (int(row.y) < r.y1 || int(row.y) >= r.y2) {
			continue
		}
		return row, true
	}
	return rowRec{}, false
}

// Sweep replays the next non-empty row into sl and finalizes it.
func (r *Reader[T]) Sweep(sl Writer[T]) bool {
	sl.ResetSpans()
	row, ok := r.next()
	if !ok {
		return false
	}
	for _, sp := range r.s.spans[row.start : row.start+row.count] {
		if sp.len < 0 {
			sl.AddSpan(int(sp.x), int(-sp.len), r.s.covers[sp.cover])
		} else {
			sl.AddCells(int(sp.x), int(sp.len), r.s.covers[sp.cover:])
		}
	}
	sl.Finalize(int(row.y))
	return true
}

// SweepEmbedded points e at the next non-empty row. The spans of e refer
// to the storage's coverage table and must not be modified.
func (r *Reader[T]) SweepEmbedded(e *Embedded[T]) bool {
	row, ok := r.next()
	if !ok {
		return false
	}
	e.y = int(row.y)
	e.spans = e.spans[:0]
	for _, sp := range r.s.spans[row.start : row.start+row.count] {
		n := 1
		if sp.len > 0 {
			n = int(sp.len)
		}
		e.spans = append(e.spans, Span[T]{
			X:      sp.x,
			Len:    sp.len,
			Covers: r.s.covers[sp.cover : sp.cover+n : sp.cover+n],
		})
	}
	return true
}

// Embedded is a read-only scanline view of one stored row.
type Embedded[T Cover] struct {
	y     int
	spans []Span[T]
}

// Y returns the row.
func (e *Embedded[T]) Y() int { return e.y }

// NumSpans returns the number of spans.
func (e *Embedded[T]) NumSpans() int { return len(e.spans) }

// Spans returns the spans.
func (e *Embedded[T]) Spans() []Span[T] { return e.spans }
