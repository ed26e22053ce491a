// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scanline

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildShape stores three rows, one of them empty, using a packed
// scanline so that both run kinds are present.
func buildShape(t *testing.T) (*StorageAA8, [][]run) {
	t.Helper()
	s := NewStorageAA[uint8]()
	sl := NewP8()
	sl.Reset(-10, 40)

	var want [][]run
	sl.AddCells(-3, 3, []uint8{10, 20, 30})
	sl.AddSpan(0, 8, 255)
	sl.AddCell(20, 64)
	sl.Finalize(5)
	s.Render(sl)
	want = append(want, snapshot[uint8](sl))

	sl.ResetSpans()
	sl.Finalize(6)
	s.Render(sl) // empty row

	sl.ResetSpans()
	sl.AddSpan(2, 4, 99)
	sl.Finalize(7)
	s.Render(sl)
	want = append(want, snapshot[uint8](sl))
	return s, want
}

func replay(t *testing.T, src Source[uint8], sl Container[uint8]) ([][]run, []int) {
	t.Helper()
	var rows [][]run
	var ys []int
	if !src.Rewind() {
		return nil, nil
	}
	sl.Reset(src.MinX(), src.MaxX())
	for src.Sweep(sl) {
		rows = append(rows, snapshot[uint8](sl))
		ys = append(ys, sl.Y())
	}
	return rows, ys
}

func TestStorageBoundingBox(t *testing.T) {
	s, _ := buildShape(t)
	assert.Equal(t, -3, s.MinX())
	assert.Equal(t, 20, s.MaxX())
	assert.Equal(t, 5, s.MinY())
	assert.Equal(t, 7, s.MaxY())
	assert.Equal(t, 3, s.NumRows())
}

func TestStorageReplaySkipsEmptyRows(t *testing.T) {
	s, want := buildShape(t)
	rows, ys := replay(t, s, NewP8())
	assert.Equal(t, want, rows)
	assert.Equal(t, []int{5, 7}, ys)
}

func TestStorageReplayIntoUnpacked(t *testing.T) {
	s, _ := buildShape(t)
	rows, _ := replay(t, s, NewU8())
	require.Len(t, rows, 2)
	assert.Equal(t, []run{
		{X: -3, Len: 11, Covers: []uint8{10, 20, 30, 255, 255, 255, 255, 255, 255, 255, 255}},
		{X: 20, Len: 1, Covers: []uint8{64}},
	}, rows[0])
}

func TestEmptyStorage(t *testing.T) {
	s := NewStorageAA[uint8]()
	assert.True(t, s.Empty())
	assert.False(t, s.Rewind())
	assert.False(t, s.Sweep(NewU8()))
	b, err := s.MarshalBinary()
	require.NoError(t, err)
	assert.Len(t, b, s.ByteSize())
}

func TestReadersAreIndependent(t *testing.T) {
	s, want := buildShape(t)
	a, b := s.Reader(), s.Reader()
	require.True(t, a.Rewind())
	require.True(t, b.Rewind())

	sa, sb := NewP8(), NewP8()
	require.True(t, a.Sweep(sa))
	require.True(t, a.Sweep(sa))
	assert.False(t, a.Sweep(sa))

	require.True(t, b.Sweep(sb))
	assert.Equal(t, want[0], snapshot[uint8](sb))
}

func TestReaderBand(t *testing.T) {
	s, want := buildShape(t)
	r := s.Reader()
	r.SetBand(6, 100)
	rows, ys := replay(t, r, NewP8())
	assert.Equal(t, [][]run{want[1]}, rows)
	assert.Equal(t, []int{7}, ys)

	r.SetBand(100, 200)
	assert.False(t, r.Rewind())

	r.ClearBand()
	rows, _ = replay(t, r, NewP8())
	assert.Len(t, rows, 2)
}

func TestSweepEmbeddedSharesCoverage(t *testing.T) {
	s, want := buildShape(t)
	require.True(t, s.Rewind())
	var e Embedded[uint8]
	require.True(t, s.SweepEmbedded(&e))
	assert.Equal(t, 5, e.Y())
	assert.Equal(t, want[0], snapshot[uint8](&e))
	assert.Same(t, &s.covers[0], &e.Spans()[0].Covers[0])
	require.True(t, s.SweepEmbedded(&e))
	assert.Equal(t, 7, e.Y())
	assert.False(t, s.SweepEmbedded(&e))
}

func TestStorageAcceptsBinaryScanlines(t *testing.T) {
	s := NewStorageAA[uint8]()
	bin := NewBin()
	bin.Reset(0, 10)
	bin.AddSpan(1, 3, 0)
	bin.Finalize(0)
	s.Render(bin)

	rows, _ := replay(t, s, NewP8())
	assert.Equal(t, [][]run{{{X: 1, Len: -3, Covers: []uint8{255}}}}, rows)
}

func TestSerializeRoundTrip(t *testing.T) {
	s, want := buildShape(t)
	data, err := s.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, data, s.ByteSize())
	require.NoError(t, Validate[uint8](data))

	a := NewSerializedAA[uint8](data, 0, 0)
	rows, ys := replay(t, a, NewP8())
	assert.Equal(t, want, rows)
	assert.Equal(t, []int{5, 7}, ys)
	assert.Equal(t, s.MinX(), a.MinX())
	assert.Equal(t, s.MaxY(), a.MaxY())
}

func TestSerializedOffset(t *testing.T) {
	s, _ := buildShape(t)
	data, err := s.MarshalBinary()
	require.NoError(t, err)

	a := NewSerializedAA[uint8](data, 100, -5)
	rows, ys := replay(t, a, NewP8())
	assert.Equal(t, []int{0, 2}, ys)
	assert.Equal(t, 97, rows[0][0].X)
	assert.Equal(t, 97, a.MinX())
	assert.Equal(t, 120, a.MaxX())

	// The same buffer replays again at another position.
	a.Init(data, 0, 0)
	_, ys = replay(t, a, NewP8())
	assert.Equal(t, []int{5, 7}, ys)
}

func TestSerializeLayout(t *testing.T) {
	s := NewStorageAA[uint8]()
	sl := NewP8()
	sl.Reset(0, 10)
	sl.AddSpan(2, 3, 200)
	sl.Finalize(1)
	s.Render(sl)

	data, err := s.MarshalBinary()
	require.NoError(t, err)
	le := binary.LittleEndian
	words := []int32{2, 1, 4, 1, 21, 1, 1, 2, -3}
	for i, w := range words {
		assert.Equal(t, w, int32(le.Uint32(data[4*i:])), "word %d", i)
	}
	assert.Equal(t, []byte{200}, data[36:])
}

func TestSerializeShortBuffer(t *testing.T) {
	s, _ := buildShape(t)
	_, err := s.Serialize(make([]byte, s.ByteSize()-1))
	assert.True(t, errors.Is(err, ErrShortBuffer))

	buf := make([]byte, s.ByteSize()+8)
	n, err := s.Serialize(buf)
	require.NoError(t, err)
	assert.Equal(t, s.ByteSize(), n)

	b, err := s.AppendBinary([]byte{1, 2})
	require.NoError(t, err)
	assert.Equal(t, buf[:n], b[2:])
}

func TestSerialize16BitCoverage(t *testing.T) {
	s := NewStorageAA[uint16]()
	sl := NewU[uint16]()
	sl.Reset(0, 10)
	sl.AddCells(0, 2, []uint16{1000, 65535})
	sl.Finalize(0)
	s.Render(sl)

	data, err := s.MarshalBinary()
	require.NoError(t, err)
	assert.Len(t, data, s.ByteSize())
	assert.Equal(t, 16+12+8+4, len(data))

	a := NewSerializedAA[uint16](data, 0, 0)
	require.True(t, a.Rewind())
	out := NewU[uint16]()
	out.Reset(a.MinX(), a.MaxX())
	require.True(t, a.Sweep(out))
	assert.Equal(t, []uint16{1000, 65535}, out.Spans()[0].Covers)
}

func TestTruncatedDataStopsCleanly(t *testing.T) {
	s, _ := buildShape(t)
	data, err := s.MarshalBinary()
	require.NoError(t, err)

	// Cuts at record boundaries leave a shorter but well-formed buffer.
	bounds := map[int]bool{headerSize: true}
	for off := headerSize; off < len(data); {
		off += int(binary.LittleEndian.Uint32(data[off:]))
		bounds[off] = true
	}

	for cut := 1; cut < len(data); cut++ {
		short := data[:cut]
		a := NewSerializedAA[uint8](short, 0, 0)
		sl := NewU8()
		n := 0
		if a.Rewind() {
			sl.Reset(a.MinX(), a.MaxX())
			for a.Sweep(sl) {
				n++
			}
		}
		assert.LessOrEqual(t, n, 2, "cut at %d", cut)
		if !bounds[cut] {
			assert.ErrorIs(t, Validate[uint8](short), ErrTruncated, "cut at %d", cut)
		}
	}
}

func TestValidateRejectsBadRowSize(t *testing.T) {
	s, _ := buildShape(t)
	data, err := s.MarshalBinary()
	require.NoError(t, err)
	binary.LittleEndian.PutUint32(data[16:], 3)
	assert.ErrorIs(t, Validate[uint8](data), ErrTruncated)
	assert.NoError(t, Validate[uint8](nil))
}

func TestSerializedRejectsBadSpans(t *testing.T) {
	// Offsets into the first row record (y = 5): y at 20, span x at 28,
	// span len at 32, second span x at 39.
	tests := []struct {
		name string
		off  int
		val  int32
	}{
		{"x past box", 28, 100000},
		{"x before box", 28, -100},
		{"zero length", 32, 0},
		{"length past box", 32, 100000},
		{"spans out of order", 39, -3},
		{"row outside box", 20, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := buildShape(t)
			data, err := s.MarshalBinary()
			require.NoError(t, err)
			binary.LittleEndian.PutUint32(data[tt.off:], uint32(tt.val))

			assert.ErrorIs(t, Validate[uint8](data), ErrMalformed)
			a := NewSerializedAA[uint8](data, 0, 0)
			var rows [][]run
			require.NotPanics(t, func() { rows, _ = replay(t, a, NewU8()) })
			assert.Empty(t, rows)
		})
	}
}

func TestStorageBinRoundTrip(t *testing.T) {
	s := NewStorageBin()
	sl := NewU8()
	sl.Reset(0, 50)
	sl.AddCells(3, 2, []uint8{1, 2})
	sl.AddSpan(10, 5, 128)
	sl.Finalize(4)
	s.Render(sl)
	sl.ResetSpans()
	sl.AddCell(40, 9)
	sl.Finalize(9)
	s.Render(sl)

	want := [][]run{
		{{X: 3, Len: 2}, {X: 10, Len: 5}},
		{{X: 40, Len: 1}},
	}
	rows, ys := replay(t, s, NewBin())
	assert.Equal(t, want, rows)
	assert.Equal(t, []int{4, 9}, ys)

	data, err := s.MarshalBinary()
	require.NoError(t, err)
	assert.Len(t, data, s.ByteSize())
	_, err = s.Serialize(make([]byte, 3))
	assert.ErrorIs(t, err, ErrShortBuffer)

	a := NewSerializedBin(data, 1, 1)
	rows, ys = replay(t, a, NewBin())
	assert.Equal(t, []int{5, 10}, ys)
	assert.Equal(t, 4, rows[0][0].X)
	assert.Equal(t, 4, a.MinX())
	assert.Equal(t, 41, a.MaxX())

	a.Init(data[:len(data)-4], 0, 0)
	rows, _ = replay(t, a, NewBin())
	assert.Len(t, rows, 1)
	assert.NoError(t, ValidateBin(data))
	assert.ErrorIs(t, ValidateBin(data[:len(data)-4]), ErrTruncated)
}

func TestSerializedBinRejectsBadSpans(t *testing.T) {
	// Offsets into the first row record: span x at 24, span len at 28.
	tests := []struct {
		name string
		off  int
		val  int32
	}{
		{"x past box", 24, 100000},
		{"zero length", 28, 0},
		{"negative length", 28, -4},
		{"length past box", 28, 100000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStorageBin()
			sl := NewBin()
			sl.Reset(0, 50)
			sl.AddSpan(3, 5, 0)
			sl.Finalize(2)
			s.Render(sl)
			data, err := s.MarshalBinary()
			require.NoError(t, err)
			binary.LittleEndian.PutUint32(data[tt.off:], uint32(tt.val))

			assert.ErrorIs(t, ValidateBin(data), ErrMalformed)
			a := NewSerializedBin(data, 0, 0)
			var rows [][]run
			require.NotPanics(t, func() { rows, _ = replay(t, a, NewU8()) })
			assert.Empty(t, rows)
		})
	}
}

func TestStorageBinReaders(t *testing.T) {
	s := NewStorageBin()
	sl := NewBin()
	sl.Reset(0, 50)
	for y := range 4 {
		sl.ResetSpans()
		sl.AddSpan(y, 2, 0)
		sl.Finalize(y)
		s.Render(sl)
	}

	a, b := s.Reader(), s.Reader()
	out := NewBin()
	out.Reset(0, 50)
	require.True(t, a.Rewind())
	require.True(t, b.Rewind())
	require.True(t, a.Sweep(out))
	require.True(t, a.Sweep(out))
	require.True(t, b.Sweep(out))
	assert.Equal(t, 0, out.Y(), "readers keep separate cursors")

	b.SetBand(1, 3)
	_, ys := replay(t, b, NewBin())
	assert.Equal(t, []int{1, 2}, ys)
	b.SetBand(10, 20)
	assert.False(t, b.Rewind())
	b.ClearBand()
	_, ys = replay(t, b, NewBin())
	assert.Equal(t, []int{0, 1, 2, 3}, ys)
}

func TestLayers(t *testing.T) {
	mk := func(ys ...int) *StorageAA8 {
		s := NewStorageAA[uint8]()
		sl := NewP8()
		sl.Reset(0, 10)
		for _, y := range ys {
			sl.ResetSpans()
			sl.AddSpan(y, 2, uint8(y))
			sl.Finalize(y)
			s.Render(sl)
		}
		return s
	}
	var l Layers
	l.Add(mk(1, 2), 10)
	l.Add(mk(2, 3), 20)
	require.Equal(t, 2, l.Len())
	require.True(t, l.Rewind())
	assert.Equal(t, 1, l.MinX())
	assert.Equal(t, 4, l.MaxX())

	type step struct {
		y      int
		styles []int
	}
	var got []step
	sl := NewP8()
	sl.Reset(l.MinX(), l.MaxX())
	for n := l.SweepStyles(); n > 0; n = l.SweepStyles() {
		st := step{y: l.Y()}
		for i := 0; i < n; i++ {
			st.styles = append(st.styles, l.Style(i))
			require.True(t, l.SweepScanline(sl, i))
			assert.Equal(t, l.Y(), sl.Y())
		}
		got = append(got, st)
	}
	assert.Equal(t, []step{
		{1, []int{10}},
		{2, []int{10, 20}},
		{3, []int{20}},
	}, got)
}
