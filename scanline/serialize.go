// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scanline

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gogpu/pixcore"
)

// Serialized layout of StorageAA, all integers 32-bit little-endian:
//
//	minX minY maxX maxY
//	per row:  byteSize y numSpans
//	per span: x len covers
//
// byteSize counts the whole row record including itself. covers holds one
// value for solid spans (len < 0) and len values otherwise, each encoded
// in the width of the coverage type. There is no version header.

const (
	headerSize  = 16
	rowHeadSize = 12
	spanHead    = 8
)

// ByteSize returns the exact length Serialize writes.
func (s *StorageAA[T]) ByteSize() int {
	cb := coverBytes[T]()
	n := headerSize
	for _, row := range s.rows {
		n += rowHeadSize
		for _, sp := range s.spans[row.start : row.start+row.count] {
			n += spanHead
			if sp.len < 0 {
				n += cb
			} else {
				n += cb * int(sp.len)
			}
		}
	}
	return n
}

// Serialize writes the storage into dst and returns the number of bytes
// written. dst must hold at least ByteSize bytes.
func (s *StorageAA[T]) Serialize(dst []byte) (int, error) {
	size := s.ByteSize()
	if len(dst) < size {
		return 0, fmt.Errorf("%w: need %d bytes, have %d", ErrShortBuffer, size, len(dst))
	}
	out := s.appendTo(dst[:0])
	return len(out), nil
}

// MarshalBinary returns the serialized storage.
func (s *StorageAA[T]) MarshalBinary() ([]byte, error) {
	return s.appendTo(make([]byte, 0, s.ByteSize())), nil
}

// AppendBinary appends the serialized storage to b.
func (s *StorageAA[T]) AppendBinary(b []byte) ([]byte, error) {
	return s.appendTo(b), nil
}

func (s *StorageAA[T]) appendTo(b []byte) []byte {
	le := binary.LittleEndian
	b = le.AppendUint32(b, uint32(int32(s.minX)))
	b = le.AppendUint32(b, uint32(int32(s.minY)))
	b = le.AppendUint32(b, uint32(int32(s.maxX)))
	b = le.AppendUint32(b, uint32(int32(s.maxY)))

	for _, row := range s.rows {
		start := len(b)
		b = le.AppendUint32(b, 0) // patched below
		b = le.AppendUint32(b, uint32(row.y))
		b = le.AppendUint32(b, uint32(row.count))
		for _, sp := range s.spans[row.start : row.start+row.count] {
			b = le.AppendUint32(b, uint32(sp.x))
			b = le.AppendUint32(b, uint32(sp.len))
			n := 1
			if sp.len > 0 {
				n = int(sp.len)
			}
			b = appendCovers(b, s.covers[sp.cover:sp.cover+n])
		}
		le.PutUint32(b[start:], uint32(len(b)-start))
	}
	return b
}

func appendCovers[T Cover](b []byte, covers []T) []byte {
	switch coverBytes[T]() {
	case 1:
		for _, c := range covers {
			b = append(b, byte(c))
		}
	case 2:
		for _, c := range covers {
			b = binary.LittleEndian.AppendUint16(b, uint16(c))
		}
	default:
		for _, c := range covers {
			b = binary.LittleEndian.AppendUint32(b, uint32(c))
		}
	}
	return b
}

func readCovers[T Cover](dst []T, src []byte) {
	switch coverBytes[T]() {
	case 1:
		for i := range dst {
			dst[i] = T(src[i])
		}
	case 2:
		for i := range dst {
			dst[i] = T(binary.LittleEndian.Uint16(src[2*i:]))
		}
	default:
		for i := range dst {
			dst[i] = T(binary.LittleEndian.Uint32(src[4*i:]))
		}
	}
}

// decoder reads 32-bit values with bounds checks.
type decoder struct {
	data []byte
	pos  int
}

func (d *decoder) readInt() (int, bool) {
	if len(d.data)-d.pos < 4 {
		return 0, false
	}
	v := int32(binary.LittleEndian.Uint32(d.data[d.pos:]))
	d.pos += 4
	return int(v), true
}

func (d *decoder) bytes(n int) ([]byte, bool) {
	if n < 0 || len(d.data)-d.pos < n {
		return nil, false
	}
	b := d.data[d.pos : d.pos+n]
	d.pos += n
	return b, true
}

func (d *decoder) done() bool { return d.pos >= len(d.data) }

// SerializedAA replays serialized StorageAA data directly from bytes,
// translated by (dx, dy). Malformed data ends replay early; use Validate
// to find out why.
type SerializedAA[T Cover] struct {
	d      decoder
	dx, dy int

	minX, minY, maxX, maxY int

	scratch []T
}

// SerializedAA8 replays 8-bit coverage.
type SerializedAA8 = SerializedAA[uint8]

// NewSerializedAA returns an adaptor over data.
func NewSerializedAA[T Cover](data []byte, dx, dy int) *SerializedAA[T] {
	a := &SerializedAA[T]{}
	a.Init(data, dx, dy)
	return a
}

// Init rebinds the adaptor to data and an offset. data is not copied.
func (a *SerializedAA[T]) Init(data []byte, dx, dy int) {
	a.d = decoder{data: data}
	a.dx, a.dy = dx, dy
	a.minX, a.minY = math.MaxInt32, math.MaxInt32
	a.maxX, a.maxY = math.MinInt32, math.MinInt32
}

// MinX returns the translated bounding box; valid after Rewind.
func (a *SerializedAA[T]) MinX() int { return a.minX }

// MinY returns the translated top row.
func (a *SerializedAA[T]) MinY() int { return a.minY }

// MaxX returns the translated largest x.
func (a *SerializedAA[T]) MaxX() int { return a.maxX }

// MaxY returns the translated bottom row.
func (a *SerializedAA[T]) MaxY() int { return a.maxY }

// Rewind reads the header and positions the adaptor at the first row.
func (a *SerializedAA[T]) Rewind() bool {
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

func (a *SerializedAA[T]) fail(what string) {
	pixcore.Logger().Debug("scanline: malformed serialized data",
		"record", what, "offset", a.d.pos, "size", len(a.d.data))
	a.d.pos = len(a.d.data)
}

// Sweep replays the next non-empty row into sl, translated by the offset.
// Spans outside the bounding box read by Rewind end replay.
func (a *SerializedAA[T]) Sweep(sl Writer[T]) bool {
	cb := coverBytes[T]()
	sl.ResetSpans()
	for !a.d.done() {
		if _, ok := a.d.readInt(); !ok { // row byte size
			a.fail("row size")
			return false
		}
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
			w := l
			if l < 0 {
				w = -l
			}
			if !spanFits(x, w, end, a.minX, a.maxX) {
				a.fail("span extent")
				return false
			}
			end = x + w
			if l < 0 {
				b, ok := a.d.bytes(cb)
				if !ok {
					a.fail("solid cover")
					return false
				}
				var c [1]T
				readCovers(c[:], b)
				sl.AddSpan(x, w, c[0])
				continue
			}
			b, ok := a.d.bytes(l * cb)
			if !ok {
				a.fail("covers")
				return false
			}
			if cap(a.scratch) < l {
				a.scratch = make([]T, l)
			}
			c := a.scratch[:l]
			readCovers(c, b)
			sl.AddCells(x, l, c)
		}
		if sl.NumSpans() > 0 {
			sl.Finalize(y)
			return true
		}
	}
	return false
}

// spanFits reports whether a run of w pixels at x is non-empty, lies in
// [minX, maxX] and starts at or after end, the end of the previous run.
func spanFits(x, w, end, minX, maxX int) bool {
	return w > 0 && x >= end && x >= minX && x+w-1 <= maxX
}

// readHeader reads the bounding box of serialized data.
func readHeader(d *decoder) (minX, minY, maxX, maxY int, ok bool) {
	var v [4]int
	for i := range v {
		if v[i], ok = d.readInt(); !ok {
			return 0, 0, 0, 0, false
		}
	}
	return v[0], v[1], v[2], v[3], true
}

// Validate checks the structure of serialized StorageAA data with coverage
// type T. It returns an error wrapping ErrTruncated or ErrMalformed that
// names the offset of the first inconsistent record.
func Validate[T Cover](data []byte) error {
	cb := coverBytes[T]()
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
		size, ok1 := d.readInt()
		y, ok2 := d.readInt()
		n, ok3 := d.readInt()
		if !ok1 || !ok2 || !ok3 || n < 0 {
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
			w := l
			if l < 0 {
				w = -l
			}
			if !spanFits(x, w, end, minX, maxX) {
				return fmt.Errorf("%w: span at offset %d covers [%d, %d)",
					ErrMalformed, at, x, x+w)
			}
			end = x + w
			k := 1
			if l > 0 {
				k = l
			}
			if _, ok := d.bytes(k * cb); !ok {
				return fmt.Errorf("%w: covers at offset %d", ErrTruncated, d.pos)
			}
		}
		if d.pos-start != size {
			return fmt.Errorf("%w: row at offset %d declares %d bytes, has %d",
				ErrTruncated, start, size, d.pos-start)
		}
	}
	return nil
}
