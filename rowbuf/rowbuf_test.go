// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package rowbuf

import (
	"errors"
	"testing"
)

func TestNewErrors(t *testing.T) {
	tests := []struct {
		name                  string
		width, height, stride int
		want                  error
	}{
		{"negative width", -1, 4, 4, ErrInvalidDimensions},
		{"negative height", 4, -1, 4, ErrInvalidDimensions},
		{"stride too small", 8, 2, 4, ErrInvalidStride},
		{"negative stride too small", 8, 2, -4, ErrInvalidStride},
		{"zero size is legal", 0, 0, 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New[uint8](tt.width, tt.height, tt.stride)
			if !errors.Is(err, tt.want) {
				t.Errorf("New() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestAttachTooSmall(t *testing.T) {
	_, err := Attach(make([]uint8, 15), 4, 4, 4)
	if !errors.Is(err, ErrDataTooSmall) {
		t.Fatalf("Attach() error = %v, want ErrDataTooSmall", err)
	}
}

func TestRowLength(t *testing.T) {
	for _, stride := range []int{12, -12} {
		r, err := New[uint8](3, 5, stride)
		if err != nil {
			t.Fatal(err)
		}
		for y := 0; y < r.Height(); y++ {
			if got := len(r.Row(y)); got != 12 {
				t.Errorf("stride %d: len(Row(%d)) = %d, want 12", stride, y, got)
			}
		}
		if !r.Owned() {
			t.Errorf("New() buffer should be owned")
		}
	}
}

func TestNegativeStride(t *testing.T) {
	buf := []uint8{
		0, 0, // row 2
		1, 1, // row 1
		2, 2, // row 0
	}
	r, err := Attach(buf, 2, 3, -2)
	if err != nil {
		t.Fatal(err)
	}
	if r.Owned() {
		t.Error("attached buffer should be borrowed")
	}
	for y, want := range []uint8{2, 1, 0} {
		if got := r.Row(y)[0]; got != want {
			t.Errorf("Row(%d)[0] = %d, want %d", y, got, want)
		}
	}
	r.Row(0)[1] = 9
	if buf[5] != 9 {
		t.Errorf("row 0 write landed at wrong address: %v", buf)
	}
}

func TestReattachReplaces(t *testing.T) {
	r, err := New[uint16](2, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	other := make([]uint16, 12)
	if err := r.Attach(other, 3, 3, 4); err != nil {
		t.Fatal(err)
	}
	if r.Width() != 3 || r.Height() != 3 || r.Stride() != 4 || r.Owned() {
		t.Errorf("Attach did not replace state: %d %d %d %v", r.Width(), r.Height(), r.Stride(), r.Owned())
	}
	r.Row(2)[3] = 7
	if other[11] != 7 {
		t.Error("write did not reach the new buffer")
	}
}

func TestSubView(t *testing.T) {
	r, _ := New[uint8](4, 4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			r.Row(y)[x] = uint8(y*4 + x)
		}
	}
	v, err := r.SubView(1, 2, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	if got := v.Row(0)[0]; got != 9 {
		t.Errorf("SubView Row(0)[0] = %d, want 9", got)
	}
	if got := v.Row(1)[2]; got != 15 {
		t.Errorf("SubView Row(1)[2] = %d, want 15", got)
	}
	if got := len(v.Row(1)); got != 3 {
		t.Errorf("SubView row length = %d, want 3", got)
	}
	if _, err := r.SubView(0, 3, 2, 2); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("SubView past the end: err = %v", err)
	}
}

func TestSubViewNegativeStride(t *testing.T) {
	r, _ := New[uint8](2, 3, -2)
	r.Row(2)[1] = 5
	v, err := r.SubView(1, 1, 1, 2)
	if err != nil {
		t.Fatal(err)
	}
	if got := v.Row(1)[0]; got != 5 {
		t.Errorf("view Row(1)[0] = %d, want 5", got)
	}
}

func TestClearAndCopyFrom(t *testing.T) {
	src, _ := New[uint8](3, 3, 3)
	src.Clear(7)
	dst, _ := New[uint8](2, 4, 2)
	dst.CopyFrom(src)
	for y := 0; y < 3; y++ {
		for _, v := range dst.Row(y) {
			if v != 7 {
				t.Fatalf("row %d not copied: %v", y, dst.Row(y))
			}
		}
	}
	for _, v := range dst.Row(3) {
		if v != 0 {
			t.Fatalf("row outside the overlap was modified: %v", dst.Row(3))
		}
	}
}

func TestRowChecked(t *testing.T) {
	r, _ := New[float32](1, 2, 1)
	if _, ok := r.RowChecked(2); ok {
		t.Error("RowChecked(2) should fail")
	}
	if _, ok := r.RowChecked(-1); ok {
		t.Error("RowChecked(-1) should fail")
	}
	if row, ok := r.RowChecked(1); !ok || len(row) != 1 {
		t.Errorf("RowChecked(1) = %v, %v", row, ok)
	}
}

func TestRowPtrCacheMatchesAccessor(t *testing.T) {
	for _, stride := range []int{5, -5} {
		buf := make([]uint32, 20)
		for i := range buf {
			buf[i] = uint32(i)
		}
		a, err := Attach(buf, 4, 4, stride)
		if err != nil {
			t.Fatal(err)
		}
		c := &RowPtrCache[uint32]{}
		if err := c.Attach(buf, 4, 4, stride); err != nil {
			t.Fatal(err)
		}
		for y := 0; y < 4; y++ {
			if a.Row(y)[0] != c.Row(y)[0] || len(a.Row(y)) != len(c.Row(y)) {
				t.Errorf("stride %d row %d differs", stride, y)
			}
		}
	}
}

func TestRowPtrCacheCopy(t *testing.T) {
	src, _ := NewRowPtrCache[uint16](2, 2, 2)
	src.Clear(300)
	dst, _ := New[uint16](2, 2, 2)
	dst.CopyFrom(src)
	if dst.Row(1)[1] != 300 {
		t.Errorf("CopyFrom RowPtrCache = %v", dst.Buf())
	}
}

func BenchmarkRowAccess(b *testing.B) {
	r, _ := New[uint8](1024, 1024, 4096)
	var sink uint8
	for b.Loop() {
		for y := 0; y < 1024; y++ {
			sink += r.Row(y)[0]
		}
	}
	_ = sink
}
