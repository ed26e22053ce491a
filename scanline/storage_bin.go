// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scanline

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gogpu/pixcore"
)

type binSpan struct{ x, len int32 }

// StorageBin keeps binary scanlines: spans without coverage. Replayed
// spans are fully covered.
type StorageBin struct {
	spans []binSpan
	rows  []rowRec

	minX, minY, maxX, maxY int

	r BinReader
}

// NewStorageBin returns an empty binary storage.
func NewStorageBin() *StorageBin {
	s := &StorageBin{}
	s.Prepare()
	return s
}

// Prepare clears the storage and keeps its memory.
func (s *StorageBin) Prepare() {
	s.spans = s.spans[:0]
	s.rows = s.rows[:0]
	s.minX, s.minY = math.MaxInt32, math.MaxInt32
	s.maxX, s.maxY = math.MinInt32, math.MinInt32
	s.r = BinReader{s: s}
}

// Render appends a finalized scanline, keeping only span extents.
func (s *StorageBin) Render(sl Scanline[uint8]) {
	y := sl.Y()
	s.minY = min(s.minY, y)
	s.maxY = max(s.maxY, y)
	row := rowRec{y: int32(y), start: len(s.spans)}
	for _, sp := range sl.Spans() {
		s.spans = append(s.spans, binSpan{x: sp.X, len: int32(sp.Width())})
		s.minX = min(s.minX, int(sp.X))
		s.maxX = max(s.maxX, sp.End()-1)
	}
	row.count = len(s.spans) - row.start
	s.rows = append(s.rows, row)
}

// NumRows returns the number of stored rows.
func (s *StorageBin) NumRows() int { return len(s.rows) }

// MinX returns the smallest covered x.
func (s *StorageBin) MinX() int { return s.minX }

// MinY returns the first row.
func (s *StorageBin) MinY() int { return s.minY }

// MaxX returns the largest covered x.
func (s *StorageBin) MaxX() int { return s.maxX }

// MaxY returns the last row.
func (s *StorageBin) MaxY() int { return s.maxY }

// Rewind resets the storage's own cursor.
func (s *StorageBin) Rewind() bool { return s.r.Rewind() }

// Sweep replays the next non-empty row through the storage's own cursor.
func (s *StorageBin) Sweep(sl Writer[uint8]) bool { return s.r.Sweep(sl) }

// Reader returns an independent cursor over the storage.
func (s *StorageBin) Reader() *BinReader { return &BinReader{s: s} }

// BinReader is a replay cursor over a StorageBin. Readers of the same
// storage do not share state.
type BinReader struct {
	s      *StorageBin
	cur    int
	band   bool
	y1, y2 int
}

// SetBand restricts replay to rows y1 <= y < y2.
func (r *BinReader) SetBand(y1, y2 int) {
	r.band = true
	r.y1, r.y2 = y1, y2
}

// ClearBand removes the row restriction.
func (r *BinReader) ClearBand() { r.band = false }

// MinX returns the storage's smallest x.
func (r *BinReader) MinX() int { return r.s.minX }

// MaxX returns the storage's largest x.
func (r *BinReader) MaxX() int { return r.s.maxX }

// Rewind moves to the first row.
func (r *BinReader) Rewind() bool {
	r.cur = 0
	if r.band && (r.s.maxY < r.y1 || r.s.minY >= r.y2) {
		r.cur = len(r.s.rows)
	}
	return r.cur < len(r.s.rows)
}

// Sweep replays the next non-empty row into sl with full coverage.
func (r *BinReader) Sweep(sl Writer[uint8]) bool {
	sl.ResetSpans()
	for r.cur < len(r.s.rows) {
		row := r.s.rows[r.cur]
		r.cur++
		if r.band && (int(row.y) < r.y1 || int(row.y) >= r.y2) {
			continue
		}
		for _, sp := range r.s.spans[row.start : row.start+row.count] {
			sl.AddSpan(int(sp.x), int(sp.len), CoverFull[uint8]())
		}
		if sl.NumSpans() > 0 {
			sl.Finalize(int(row.y))
			return true
		}
	}
	return false
}

// ByteSize returns the exact length Serialize writes: the 16-byte header,
// then 8 bytes per row (y, numSpans) and 8 per span (x, len).
func (s *StorageBin) ByteSize() int {
	return headerSize + 8*len(s.rows) + 8*len(s.spans)
}

// Serialize writes the storage into dst.
func (s *StorageBin) Serialize(dst []byte) (int, error) {
	size := s.ByteSize()
	if len(dst) < size {
		return 0, fmt.Errorf("%w: need %d bytes, have %d", ErrShortBuffer, size, len(dst))
	}
	return len(s.appendTo(dst[:0])), nil
}

// MarshalBinary returns the serialized storage.
func (s *StorageBin) MarshalBinary() ([]byte, error) {
	return s.appendTo(make([]byte, 0, s.ByteSize())), nil
}

func (s *StorageBin) appendTo(b []byte) []byte {
	le := binary.LittleEndian
	for _, v := range [4]int{s.minX, s.minY, s.maxX, s.maxY} {
		b = le.AppendUint32(b, uint32(int32(v)))
	}
	for _, row := range s.rows {
		b = le.AppendUint32(b, uint32(row.y))
		b = le.AppendUint32(b, uint32(row.count))
		for _, sp := range s.spans[row.start : row.start+row.count] {
			b = le.AppendUint32(b, uint32(sp.x))
			b = le.AppendUint32(b, uint32(sp.len))
		}
	}
	return b
}

// SerializedBin replays serialized StorageBin data translated by (dx, dy).
type SerializedBin struct {
	d      decoder
	dx, dy int

	minX, minY, maxX, maxY int
}

// NewSerializedBin returns an adaptor over data.
func NewSerializedBin(data []byte, dx, dy int) *SerializedBin {
	a := &SerializedBin{}
	a.Init(data, dx, dy)
	return a
}

// Init rebinds the adaptor.
func (a *SerializedBin) Init(data []byte, dx, dy int) {
	a.d = decoder{data: data}
	a.dx, a.dy = dx, dy
	a.minX, a.minY = math.MaxInt32, math.MaxInt32
	a.maxX, a.maxY = math.MinInt32, math.MinInt32
}

// MinX returns the translated bounding box; valid after Rewind.
func (a *SerializedBin) MinX() int { return a.minX }

// MinY returns the translated top row.
func (a *SerializedBin) MinY() int { return a.minY }

// MaxX returns the translated largest x.
func (a *SerializedBin) MaxX() int { return a.maxX }

// MaxY returns the translated bottom row.
func (a *SerializedBin) MaxY() int { return a.maxY }

// Rewind reads the header.
func (a *SerializedBin) Rewind() bool {
	a.d.pos = 0
	if a.d.done() {
		return false
	}
	minX, minY, maxX, maxY, ok := readHeader(&a.d)
	if !ok {
		a.fail("header")
		return false
	}
	a.minX, a.minY = minX+a.dx, minY+a.dy
	a.maxX, a.maxY = maxX+a.dx, maxY+a.dy
	return !a.d.done()
}

func (a *SerializedBin) fail(what string) {
	pixcore.Logger().Debug("scanline: malformed serialized data",
		"record", what, "offset", a.d.pos, "size", len(a.d.data))
	a.d.pos = len(a.d.data)
}

// Sweep replays the next non-empty row into sl. Spans outside the
// bounding box read by Rewind end replay.
func (a *SerializedBin) Sweep(sl Writer[uint8]) bool {
	sl.ResetSpans()
	for !a.d.done() {
		y, ok1 := a.d.readInt()
		n, ok2 := a.d.readInt()
		if !ok1 || !ok2 || n < 0 {
			a.fail("row header")
			return false
		}
		y += a.dy
		if y < a.minY || y > a.maxY {
			a.fail("row y")
			return false
		}
		end := math.MinInt
		for ; n > 0; n-- {
			x, ok1 := a.d.readInt()
			l, ok2 := a.d.readInt()
			if !ok1 || !ok2 {
				a.fail("span header")
				return false
			}
			x += a.dx
			if !spanFits(x, l, end, a.minX, a.maxX) {
				a.fail("span extent")
				return false
			}
			end = x + l
			sl.AddSpan(x, l, CoverFull[uint8]())
		}
		if sl.NumSpans() > 0 {
			sl.Finalize(y)
			return true
		}
	}
	return false
}

// ValidateBin checks the structure of serialized StorageBin data. It
// returns an error wrapping ErrTruncated or ErrMalformed.
func ValidateBin(data []byte) error {
	d := decoder{data: data}
	if len(data) == 0 {
		return nil
	}
	minX, minY, maxX, maxY, ok := readHeader(&d)
	if !ok {
		return fmt.Errorf("%w: header at offset 0", ErrTruncated)
	}
	for !d.done() {
		start := d.pos
		y, ok1 := d.readInt()
		n, ok2 := d.readInt()
		if !ok1 || !ok2 || n < 0 {
			return fmt.Errorf("%w: row header at offset %d", ErrTruncated, start)
		}
		if y < minY || y > maxY {
			return fmt.Errorf("%w: row at offset %d has y %d outside [%d, %d]",
				ErrMalformed, start, y, minY, maxY)
		}
		end := math.MinInt
		for ; n > 0; n-- {
			at := d.pos
			x, ok1 := d.readInt()
			l, ok2 := d.readInt()
			if !ok1 || !ok2 {
				return fmt.Errorf("%w: span at offset %d", ErrTruncated, at)
			}
			if !spanFits(x, l, end, minX, maxX) {
				return fmt.Errorf("%w: span at offset %d covers [%d, %d)",
					ErrMalformed, at, x, x+l)
			}
			end = x + l
		}
	}
	return nil
}
