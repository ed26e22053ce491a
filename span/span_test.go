// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package span

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/pixcore/color"
)

func TestSolidAndProcess(t *testing.T) {
	red := color.Rgba8{R: 255, A: 255}
	halve := ConverterFunc[color.Rgba8](func(c []color.Rgba8, _, _, n int) {
		for i := range c[:n] {
			c[i] = MultiplyAlpha8(c[i], 128)
		}
	})
	p := NewProcess[color.Rgba8](&Solid[color.Rgba8]{Color: red}, halve)
	p.Prepare()

	buf := make([]color.Rgba8, 4)
	p.Generate(buf, 0, 0, 3)
	for _, c := range buf[:3] {
		assert.Equal(t, color.Rgba8{R: 128, A: 128}, c)
	}
	assert.Equal(t, color.Rgba8{}, buf[3], "past n untouched")
}

func TestAllocator(t *testing.T) {
	var a Allocator[color.Rgba8]
	b := a.Allocate(10)
	require.Len(t, b, 10)
	assert.Equal(t, 256, cap(b))
	b[0] = color.Rgba8{R: 1}
	again := a.Allocate(200)
	assert.Equal(t, uint8(1), again[0].R, "buffer reused")
	assert.Equal(t, 512, cap(a.Allocate(257)))
}

func TestShapes(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		x, y  int
		want  int
	}{
		{"x", X, -5, 9, -5},
		{"y", Y, -5, 9, 9},
		{"radial", Radial, 3, 4, 5},
		{"diamond", Diamond, -7, 3, 7},
		{"xy", XY, 4, -6, 2},
		{"sqrtxy", SqrtXY, 4, -9, 6},
		{"conic axis", Conic, 10, 0, 0},
		{"conic up", Conic, 0, 10, 50},
		{"conic back", Conic, -10, 0, 100},
		{"conic mirrored", Conic, 0, -10, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := 100
			if tt.name == "xy" {
				d = 12
			}
			assert.Equal(t, tt.want, tt.shape.Calculate(tt.x, tt.y, d))
		})
	}
}

func TestRepeatReflect(t *testing.T) {
	rep := Repeat(X)
	ref := Reflect(X)
	for _, tt := range []struct{ x, rep, ref int }{
		{0, 0, 0},
		{30, 30, 30},
		{100, 0, 100},
		{130, 30, 70},
		{200, 0, 0},
		{-30, 70, 30},
	} {
		assert.Equal(t, tt.rep, rep.Calculate(tt.x, 0, 100), "repeat x=%d", tt.x)
		assert.Equal(t, tt.ref, ref.Calculate(tt.x, 0, 100), "reflect x=%d", tt.x)
	}
	assert.Zero(t, rep.Calculate(5, 0, 0))
}

func TestBuildLUT(t *testing.T) {
	black := color.Rgba8{A: 255}
	white := color.Rgba8{R: 255, G: 255, B: 255, A: 255}

	lut := BuildLUT([]ColorStop[color.Rgba8]{
		{Offset: 1, Color: white},
		{Offset: 0, Color: black},
	})
	require.Len(t, lut, 256)
	assert.Equal(t, black, lut[0])
	assert.Greater(t, lut[255].R, uint8(250))
	for i := 1; i < len(lut); i++ {
		assert.GreaterOrEqual(t, lut[i].R, lut[i-1].R, "monotonic at %d", i)
	}
	assert.InDelta(t, 128, int(lut[128].R), 2)

	t.Run("clamped ends", func(t *testing.T) {
		lut := BuildLUT([]ColorStop[color.Rgba8]{
			{Offset: 0.25, Color: black},
			{Offset: 0.75, Color: white},
		}, WithSize(100))
		require.Len(t, lut, 100)
		assert.Equal(t, black, lut[0])
		assert.Equal(t, black, lut[24])
		assert.Equal(t, white, lut[99])
		assert.Equal(t, white, lut[75])
	})

	t.Run("duplicate offsets keep first", func(t *testing.T) {
		red := color.Rgba8{R: 255, A: 255}
		lut := BuildLUT([]ColorStop[color.Rgba8]{
			{Offset: 0, Color: red},
			{Offset: 0, Color: white},
		}, WithSize(8))
		for _, c := range lut {
			assert.Equal(t, red, c)
		}
	})

	t.Run("linear light is brighter at midpoint", func(t *testing.T) {
		stops := []ColorStop[color.Rgba8]{{0, black}, {1, white}}
		srgb := BuildLUT(stops)
		lin := BuildLUT(stops, WithLinearRGB())
		assert.Greater(t, lin[128].R, srgb[128].R)
		assert.Equal(t, black, lin[0])
	})

	t.Run("gray", func(t *testing.T) {
		lut := BuildLUT([]ColorStop[color.Gray8]{
			{0, color.Gray8{V: 0, A: 255}},
			{1, color.Gray8{V: 255, A: 255}},
		}, WithSize(16), WithLinearRGB())
		assert.Equal(t, uint8(0), lut[0].V)
		assert.Greater(t, lut[15].V, lut[8].V)
	})

	assert.Len(t, BuildLUT[color.Rgba8](nil), 256)
}

func TestGradientGenerate(t *testing.T) {
	lut := make([]color.Gray8, 10)
	for i := range lut {
		lut[i] = color.Gray8{V: uint8(i), A: 255}
	}
	g := NewGradient(Identity(), X, lut, 0, 10)
	g.Prepare()

	buf := make([]color.Gray8, 14)
	g.Generate(buf, -2, 0, 14)
	want := []uint8{0, 0, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 9, 9}
	for i, c := range buf {
		assert.Equal(t, want[i], c.V, "x=%d", i-2)
	}

	// Shifting the gradient by 5 pixels shifts the ramp.
	g.SetMatrix(Translate(5, 0).Invert())
	g.Generate(buf, 0, 0, 10)
	assert.Equal(t, uint8(0), buf[4].V)
	assert.Equal(t, uint8(0), buf[5].V)
	assert.Equal(t, uint8(4), buf[9].V)
}

func TestGradientRadial(t *testing.T) {
	lut := make([]color.Gray8, 100)
	for i := range lut {
		lut[i] = color.Gray8{V: uint8(i), A: 255}
	}
	g := NewGradient(Translate(-50, -50), Radial, lut, 0, 50)
	buf := make([]color.Gray8, 100)
	g.Generate(buf, 0, 50, 100)
	assert.LessOrEqual(t, buf[50].V, uint8(2))
	assert.Equal(t, uint8(99), buf[0].V)
	assert.InDelta(t, 50, int(buf[75].V), 2)
}

func TestAlphaGradient(t *testing.T) {
	white := color.Rgba8{R: 255, G: 255, B: 255, A: 255}
	alpha := LinearAlpha(255, 0, 11)
	require.Len(t, alpha, 11)
	assert.Equal(t, uint8(255), alpha[0])
	assert.Equal(t, uint8(0), alpha[10])
	assert.Equal(t, uint8(204), alpha[2])

	ag := NewAlphaGradient(Identity(), X, alpha, 0, 11, MultiplyAlpha8)
	p := NewProcess[color.Rgba8](&Solid[color.Rgba8]{Color: white}, ag)
	buf := make([]color.Rgba8, 11)
	p.Generate(buf, 0, 0, 11)
	assert.Equal(t, white, buf[0])
	assert.Equal(t, color.Rgba8{}, buf[10])
	assert.Equal(t, buf[5].R, buf[5].A, "premultiplied stays consistent")
}

func TestMatrix(t *testing.T) {
	m := Translate(10, 20).Multiply(Scale(2, 3))
	x, y := m.Transform(1, 1)
	assert.Equal(t, 12.0, x)
	assert.Equal(t, 23.0, y)

	ix, iy := m.Invert().Transform(x, y)
	assert.InDelta(t, 1, ix, 1e-12)
	assert.InDelta(t, 1, iy, 1e-12)

	x, y = Rotate(math.Pi/2).Transform(1, 0)
	assert.InDelta(t, 0, x, 1e-12)
	assert.InDelta(t, 1, y, 1e-12)

	assert.Equal(t, Identity(), Scale(0, 0).Invert())
}
