// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package scanline holds per-row coverage: live scanlines filled by a
// rasterizer, persistent storage of many rows, and a flat serialized form
// of that storage that can be replayed at any offset.
//
// A scanline goes through a fixed cycle:
//
//	sl.Reset(minX, maxX)
//	sl.AddCell / AddCells / AddSpan   (x ascending, not sorted for you)
//	sl.Finalize(y)
//	renderer consumes sl.Spans()
//	sl.ResetSpans()
//
// Spans are x-ascending and never overlap. A span with Len > 0 has one
// coverage value per pixel in Covers; a span with Len < 0 covers -Len
// pixels that share Covers[0].
//
// Scanlines own their span and coverage memory. A scanline must not be
// shared between goroutines; give every worker its own.
package scanline

import (
	"errors"
	"iter"
)

// Errors reported by serialization.
var (
	// ErrTruncated reports serialized data that ends inside a record or
	// whose counts run past the end of the buffer.
	ErrTruncated = errors.New("scanline: truncated serialized data")

	// ErrMalformed reports serialized data that is complete but holds a
	// span outside the header bounding box, an empty span or spans out of
	// x order.
	ErrMalformed = errors.New("scanline: malformed serialized data")

	// ErrShortBuffer reports an output buffer smaller than ByteSize.
	ErrShortBuffer = errors.New("scanline: output buffer too small")
)

// Cover is the storage type of coverage values.
type Cover interface {
	~uint8 | ~uint16 | ~uint32
}

// CoverFull returns the full coverage value of T.
func CoverFull[T Cover]() T { return ^T(0) }

// coverBytes returns the serialized width of one coverage value.
func coverBytes[T Cover]() int {
	switch m := uint64(^T(0)); {
	case m <= 0xFF:
		return 1
	case m <= 0xFFFF:
		return 2
	default:
		return 4
	}
}

// Span is one run of a scanline.
type Span[T Cover] struct {
	X   int32
	Len int32
	// Covers holds Len values, or a single shared value when Len < 0.
	// Binary scanlines leave it nil.
	Covers []T
}

// Solid reports whether all pixels of the span share one coverage value.
func (s Span[T]) Solid() bool { return s.Len < 0 }

// Width returns the number of pixels in the span.
func (s Span[T]) Width() int {
	if s.Len < 0 {
		return int(-s.Len)
	}
	return int(s.Len)
}

// End returns the x coordinate one past the last pixel.
func (s Span[T]) End() int { return int(s.X) + s.Width() }

// Scanline is the read side consumed by renderers.
type Scanline[T Cover] interface {
	Y() int
	NumSpans() int
	Spans() []Span[T]
}

// Writer is the build side fed by rasterizers and replaying sources.
type Writer[T Cover] interface {
	Reset(minX, maxX int)
	ResetSpans()
	AddCell(x int, cover T)
	AddCells(x, n int, covers []T)
	AddSpan(x, n int, cover T)
	Finalize(y int)
	NumSpans() int
}

// Container is a scanline that can be both built and consumed.
type Container[T Cover] interface {
	Scanline[T]
	Writer[T]
}

// Source produces a sequence of finalized scanlines. Rasterizers, storage
// readers and serialized adaptors all implement it.
type Source[T Cover] interface {
	// Rewind positions the source at its first row and reports whether
	// there is anything to replay.
	Rewind() bool
	MinX() int
	MaxX() int
	// Sweep fills sl with the next non-empty row and finalizes it. It
	// returns false at the end of data.
	Sweep(sl Writer[T]) bool
}

// All returns an iterator over the spans of sl.
func All[T Cover](sl Scanline[T]) iter.Seq[Span[T]] {
	return func(yield func(Span[T]) bool) {
		for _, sp := range sl.Spans() {
			if !yield(sp) {
				return
			}
		}
	}
}

// Cells returns an iterator over every covered pixel of sl as (x, cover).
// Binary spans report full coverage.
func Cells[T Cover](sl Scanline[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for _, sp := range sl.Spans() {
			x := int(sp.X)
			switch {
			case sp.Covers == nil:
				for i := 0; i < sp.Width(); i++ {
					if !yield(x+i, CoverFull[T]()) {
						return
					}
				}
			case sp.Len < 0:
				for i := 0; i < sp.Width(); i++ {
					if !yield(x+i, sp.Covers[0]) {
						return
					}
				}
			default:
				for i, c := range sp.Covers[:sp.Len] {
					if !yield(x+i, c) {
						return
					}
				}
			}
		}
	}
}

// lastXSentinel marks "no previous cell" so that no x can extend it.
const lastXSentinel = 0x7FFFFFF0
