// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package rowbuf provides row-addressed pixel memory.
//
// A RowAccessor binds a flat slice of channel elements to a width, a height
// and a signed stride. The stride is measured in elements, not bytes. A
// negative stride stores row 0 at the high end of the slice (bottom-up
// storage); coordinates are unaffected.
//
// The memory is either owned (allocated by New) or borrowed from the
// caller (Attach, SubView). A borrowed accessor never outlives the caller's
// slice in any meaningful way: the caller keeps the slice alive and must not
// resize it while attached.
package rowbuf

import (
	"errors"
	"fmt"
)

// Common errors for buffer attachment.
var (
	// ErrInvalidDimensions is returned when width or height is negative.
	ErrInvalidDimensions = errors.New("rowbuf: invalid dimensions")

	// ErrInvalidStride is returned when |stride| is smaller than the width.
	ErrInvalidStride = errors.New("rowbuf: stride too small for width")

	// ErrDataTooSmall is returned when the slice cannot hold height rows.
	ErrDataTooSmall = errors.New("rowbuf: data buffer too small")

	// ErrOutOfBounds is returned when a sub-view does not fit the parent.
	ErrOutOfBounds = errors.New("rowbuf: region out of bounds")
)

// Elem is the constraint for channel storage elements.
type Elem interface {
	~uint8 | ~uint16 | ~uint32 | ~float32
}

// Buffer is the row access contract consumed by pixel formats and alpha
// masks. Row(y) for 0 <= y < Height() returns the elements of row y.
type Buffer[T Elem] interface {
	Width() int
	Height() int
	Stride() int
	Row(y int) []T
}

// RowAccessor computes row slices from the stride on every access.
type RowAccessor[T Elem] struct {
	buf    []T
	width  int
	height int
	stride int
	start  int
	rowLen int
	owned  bool
}

// New allocates an owned buffer of height rows of |stride| elements.
func New[T Elem](width, height, stride int) (*RowAccessor[T], error) {
	if err := check(width, height, stride); err != nil {
		return nil, err
	}
	r := &RowAccessor[T]{}
	r.bind(make([]T, abs(stride)*height), width, height, stride)
	r.owned = true
	return r, nil
}

// Attach borrows buf as height rows of |stride| elements.
func Attach[T Elem](buf []T, width, height, stride int) (*RowAccessor[T], error) {
	r := &RowAccessor[T]{}
	if err := r.Attach(buf, width, height, stride); err != nil {
		return nil, err
	}
	return r, nil
}

// Attach rebinds r to buf. The previous binding is fully replaced; an owned
// buffer is released to the garbage collector.
func (r *RowAccessor[T]) Attach(buf []T, width, height, stride int) error {
	if err := check(width, height, stride); err != nil {
		return err
	}
	if need := abs(stride) * height; len(buf) < need {
		return fmt.Errorf("%w: have %d elements, need %d", ErrDataTooSmall, len(buf), need)
	}
	r.bind(buf, width, height, stride)
	r.owned = false
	return nil
}

func (r *RowAccessor[T]) bind(buf []T, width, height, stride int) {
	r.buf = buf
	r.width = width
	r.height = height
	r.stride = stride
	r.rowLen = abs(stride)
	r.start = 0
	if stride < 0 && height > 0 {
		r.start = (height - 1) * -stride
	}
}

func check(width, height, stride int) error {
	if width < 0 || height < 0 {
		return ErrInvalidDimensions
	}
	if abs(stride) < width {
		return ErrInvalidStride
	}
	return nil
}

// Width returns the width in pixels.
func (r *RowAccessor[T]) Width() int { return r.width }

// Height returns the number of rows.
func (r *RowAccessor[T]) Height() int { return r.height }

// Stride returns the signed distance between rows in elements.
func (r *RowAccessor[T]) Stride() int { return r.stride }

// StrideAbs returns |Stride()|.
func (r *RowAccessor[T]) StrideAbs() int { return abs(r.stride) }

// Owned reports whether the memory was allocated by New.
func (r *RowAccessor[T]) Owned() bool { return r.owned }

// Buf returns the underlying slice.
func (r *RowAccessor[T]) Buf() []T { return r.buf }

// Row returns the elements of row y. For a buffer created by New or Attach
// the slice has exactly |stride| elements; a SubView row ends where the
// parent row ends. y is not checked.
func (r *RowAccessor[T]) Row(y int) []T {
	off := r.start + y*r.stride
	return r.buf[off : off+r.rowLen : off+r.rowLen]
}

// RowChecked is Row with bounds checking.
func (r *RowAccessor[T]) RowChecked(y int) ([]T, bool) {
	if y < 0 || y >= r.height {
		return nil, false
	}
	return r.Row(y), true
}

// SubView returns a borrowed view of height rows starting at row y, whose
// rows begin x elements into the parent rows. width is the view's width in
// pixels.
func (r *RowAccessor[T]) SubView(x, y, width, height int) (*RowAccessor[T], error) {
	if x < 0 || y < 0 || width < 0 || height < 0 || y+height > r.height || x > r.rowLen || width > r.rowLen-x {
		return nil, ErrOutOfBounds
	}
	v := &RowAccessor[T]{
		buf:    r.buf,
		width:  width,
		height: height,
		stride: r.stride,
		start:  r.start + y*r.stride + x,
		rowLen: r.rowLen - x,
	}
	return v, nil
}

// Clear sets every element of every row to v.
func (r *RowAccessor[T]) Clear(v T) {
	for y := 0; y < r.height; y++ {
		row := r.Row(y)
		for i := range row {
			row[i] = v
		}
	}
}

// CopyFrom copies the overlapping region of src into r: the smaller height
// and the shorter row.
func (r *RowAccessor[T]) CopyFrom(src Buffer[T]) {
	CopyRows(r, src)
}

// CopyRows copies the overlapping region of src into dst row by row.
func CopyRows[T Elem](dst, src Buffer[T]) {
	h := min(dst.Height(), src.Height())
	for y := 0; y < h; y++ {
		copy(dst.Row(y), src.Row(y))
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
