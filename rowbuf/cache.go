// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package rowbuf

import "fmt"

// RowPtrCache precomputes the slice of every row at attach time, trading
// one slice header per row for a stride multiplication per access.
type RowPtrCache[T Elem] struct {
	buf    []T
	rows   [][]T
	width  int
	height int
	stride int
}

// NewRowPtrCache allocates an owned buffer and caches its rows.
func NewRowPtrCache[T Elem](width, height, stride int) (*RowPtrCache[T], error) {
	if err := check(width, height, stride); err != nil {
		return nil, err
	}
	c := &RowPtrCache[T]{}
	if err := c.Attach(make([]T, abs(stride)*height), width, height, stride); err != nil {
		return nil, err
	}
	return c, nil
}

// Attach rebinds the cache to buf, rebuilding the row table.
func (c *RowPtrCache[T]) Attach(buf []T, width, height, stride int) error {
	if err := check(width, height, stride); err != nil {
		return err
	}
	n := abs(stride)
	if need := n * height; len(buf) < need {
		return fmt.Errorf("%w: have %d elements, need %d", ErrDataTooSmall, len(buf), need)
	}
	if cap(c.rows) < height {
		c.rows = make([][]T, height)
	}
	c.rows = c.rows[:height]
	off := 0
	if stride < 0 {
		off = (height - 1) * n
	}
	for y := range c.rows {
		c.rows[y] = buf[off : off+n : off+n]
		off += stride
	}
	c.buf = buf
	c.width = width
	c.height = height
	c.stride = stride
	return nil
}

// Width returns the width in pixels.
func (c *RowPtrCache[T]) Width() int { return c.width }

// Height returns the number of rows.
func (c *RowPtrCache[T]) Height() int { return c.height }

// Stride returns the signed distance between rows in elements.
func (c *RowPtrCache[T]) Stride() int { return c.stride }

// Buf returns the underlying slice.
func (c *RowPtrCache[T]) Buf() []T { return c.buf }

// Row returns the cached slice of row y.
func (c *RowPtrCache[T]) Row(y int) []T { return c.rows[y] }

// Rows returns the whole row table.
func (c *RowPtrCache[T]) Rows() [][]T { return c.rows }

// Clear sets every element to v.
func (c *RowPtrCache[T]) Clear(v T) {
	for _, row := range c.rows {
		for i := range row {
			row[i] = v
		}
	}
}

// CopyFrom copies the overlapping region of src.
func (c *RowPtrCache[T]) CopyFrom(src Buffer[T]) {
	CopyRows(c, src)
}
