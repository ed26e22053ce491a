// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pixfmt

import (
	"bytes"
	"testing"

	"github.com/gogpu/pixcore/blend"
	"github.com/gogpu/pixcore/color"
	"github.com/gogpu/pixcore/order"
	"github.com/gogpu/pixcore/rowbuf"
)

func newRB(t *testing.T, w, h, pw int) *rowbuf.RowAccessor[uint8] {
	t.Helper()
	rb, err := rowbuf.New[uint8](w, h, w*pw)
	if err != nil {
		t.Fatal(err)
	}
	return rb
}

// fillPattern writes a deterministic non-uniform pattern.
func fillPattern(buf []uint8) {
	for i := range buf {
		buf[i] = uint8(i*37 + 11)
	}
}

func rgba8Surfaces(t *testing.T) map[string]*RGBA32 {
	t.Helper()
	return map[string]*RGBA32{
		"straight rgba": NewRGBA32(newRB(t, 8, 2, 4), blend.NewRGBA[uint8](order.RGBA)),
		"pre bgra":      NewRGBA32(newRB(t, 8, 2, 4), blend.NewPre[uint8](order.BGRA)),
		"plain argb":    NewRGBA32(newRB(t, 8, 2, 4), blend.NewStraight[uint8](order.ARGB)),
		"rgb24":         NewRGB24(newRB(t, 8, 2, 3), blend.NewStraight[uint8](order.BGR)),
		"rgbx32":        NewRGBX32(newRB(t, 8, 2, 4), blend.NewStraight[uint8](order.XRGB)),
		"gamma":         NewRGB24(newRB(t, 8, 2, 3), blend.NewGamma(order.RGB, color.NewGammaLUT(2.2))),
	}
}

func bufOf(f *RGBA32) []uint8 {
	return f.RowBuf().(*rowbuf.RowAccessor[uint8]).Buf()
}

func TestCopyBlendEquivalenceAtFullAlpha(t *testing.T) {
	colors := []color.Rgba8{
		{R: 255, G: 0, B: 0, A: 255},
		{R: 1, G: 2, B: 3, A: 255},
		{R: 128, G: 64, B: 250, A: 255},
	}
	for name, f := range rgba8Surfaces(t) {
		t.Run(name, func(t *testing.T) {
			for _, c := range colors {
				fillPattern(bufOf(f))
				f.BlendPixel(3, 1, c, 255)
				blended := append([]uint8(nil), bufOf(f)...)

				fillPattern(bufOf(f))
				f.CopyPixel(3, 1, c)
				if !bytes.Equal(blended, bufOf(f)) {
					t.Errorf("BlendPixel(%v, 255) differs from CopyPixel", c)
				}
			}
		})
	}
}

func TestSkipOnTransparent(t *testing.T) {
	c := color.Rgba8{R: 200, G: 100, B: 50, A: 0}
	colors := []color.Rgba8{c, c, c, c}
	covers := []uint8{255, 128, 1, 0}
	for name, f := range rgba8Surfaces(t) {
		t.Run(name, func(t *testing.T) {
			fillPattern(bufOf(f))
			want := append([]uint8(nil), bufOf(f)...)
			f.BlendPixel(0, 0, c, 255)
			f.BlendHline(1, 0, 4, c, 255)
			f.BlendVline(2, 0, 2, c, 200)
			f.BlendSolidHspan(4, 1, 4, c, covers)
			f.BlendSolidVspan(7, 0, 2, c, covers)
			f.BlendColorHspan(0, 1, 4, colors, nil, 255)
			f.BlendColorVspan(5, 0, 2, colors, covers, 0)
			if !bytes.Equal(want, bufOf(f)) {
				t.Error("transparent source modified the destination")
			}
		})
	}
}

func TestSolidSpanMatchesHline(t *testing.T) {
	c := color.Rgba8{R: 90, G: 180, B: 30, A: 200}
	for name, f := range rgba8Surfaces(t) {
		t.Run(name, func(t *testing.T) {
			for _, v := range []uint8{0, 1, 64, 200, 255} {
				covers := []uint8{v, v, v, v, v}

				fillPattern(bufOf(f))
				f.BlendSolidHspan(2, 1, 5, c, covers)
				span := append([]uint8(nil), bufOf(f)...)

				fillPattern(bufOf(f))
				f.BlendHline(2, 1, 5, c, v)
				if !bytes.Equal(span, bufOf(f)) {
					t.Errorf("cover %d: solid span and hline differ", v)
				}
			}
		})
	}
}

func TestColorSpanMatchesPixels(t *testing.T) {
	f := NewRGBA32(newRB(t, 4, 1, 4), blend.NewPre[uint8](order.RGBA))
	colors := []color.Rgba8{
		{R: 10, G: 20, B: 30, A: 40},
		{R: 100, A: 128},
		{},
		{R: 255, G: 255, B: 255, A: 255},
	}
	covers := []uint8{255, 100, 50, 200}

	fillPattern(bufOf(f))
	f.BlendColorHspan(0, 0, 4, colors, covers, 0)
	span := append([]uint8(nil), bufOf(f)...)

	fillPattern(bufOf(f))
	for i, c := range colors {
		f.BlendPixel(i, 0, c, covers[i])
	}
	if !bytes.Equal(span, bufOf(f)) {
		t.Errorf("BlendColorHspan = %v, per-pixel = %v", span, bufOf(f))
	}
}

func TestChannelOrderPlacement(t *testing.T) {
	tests := []struct {
		o    order.Order
		pw   int
		want []uint8
	}{
		{order.RGBA, 4, []uint8{1, 2, 3, 4}},
		{order.ARGB, 4, []uint8{4, 1, 2, 3}},
		{order.ABGR, 4, []uint8{4, 3, 2, 1}},
		{order.BGRA, 4, []uint8{3, 2, 1, 4}},
		{order.RGB, 3, []uint8{1, 2, 3}},
		{order.BGR, 3, []uint8{3, 2, 1}},
		{order.RGBX, 4, []uint8{1, 2, 3, 0}},
		{order.XBGR, 4, []uint8{0, 3, 2, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.o.String(), func(t *testing.T) {
			rb := newRB(t, 1, 1, tt.pw)
			f := NewRGBA32(rb, blend.NewStraight[uint8](tt.o))
			f.CopyPixel(0, 0, color.Rgba8{R: 1, G: 2, B: 3, A: 4})
			if !bytes.Equal(rb.Buf(), tt.want) {
				t.Errorf("stored %v, want %v", rb.Buf(), tt.want)
			}
			got := f.Pixel(0, 0)
			if got.R != 1 || got.G != 2 || got.B != 3 {
				t.Errorf("Pixel() = %v", got)
			}
			if tt.o.HasAlpha() && got.A != 4 {
				t.Errorf("alpha = %d, want 4", got.A)
			}
			if !tt.o.HasAlpha() && got.A != 255 {
				t.Errorf("alpha of a layout without alpha = %d, want 255", got.A)
			}
		})
	}
}

func TestNegativeStride(t *testing.T) {
	buf := make([]uint8, 2*4)
	rb, err := rowbuf.Attach(buf, 2, 2, -4)
	if err != nil {
		t.Fatal(err)
	}
	f := NewRGBA32(rb, blend.NewPre[uint8](order.RGBA))
	f.CopyPixel(0, 0, color.Rgba8{R: 9, A: 255})
	if buf[4] != 9 {
		t.Errorf("row 0 of a negative stride buffer should be stored last: %v", buf)
	}
}

func TestCompOpSurfaceSrcOver(t *testing.T) {
	rb := newRB(t, 1, 1, 4)
	f := NewCompOpRGBA32(rb, order.RGBA, blend.OpSrcOver)
	f.BlendPixel(0, 0, color.Rgba8{R: 255, A: 255}, 255)
	if want := []uint8{255, 0, 0, 255}; !bytes.Equal(rb.Buf(), want) {
		t.Errorf("src-over onto transparent = %v, want %v", rb.Buf(), want)
	}
}

func TestCompOpSurfaceActsOnTransparentSource(t *testing.T) {
	rb := newRB(t, 1, 1, 4)
	copy(rb.Buf(), []uint8{100, 100, 100, 255})
	f := NewCompOpRGBA32(rb, order.RGBA, blend.OpSrc)
	f.BlendPixel(0, 0, color.Rgba8{}, 255)
	if want := []uint8{0, 0, 0, 0}; !bytes.Equal(rb.Buf(), want) {
		t.Errorf("src with a transparent source = %v, want %v", rb.Buf(), want)
	}

	copy(rb.Buf(), []uint8{100, 100, 100, 255})
	f.SetCompOp(blend.OpDst)
	if f.CompOp() != blend.OpDst {
		t.Fatalf("CompOp() = %v", f.CompOp())
	}
	f.BlendPixel(0, 0, color.Rgba8{R: 255, A: 255}, 255)
	if want := []uint8{100, 100, 100, 255}; !bytes.Equal(rb.Buf(), want) {
		t.Errorf("dst changed the destination: %v", rb.Buf())
	}
}

func TestBlendFromColor(t *testing.T) {
	mask := NewGray8(newRB(t, 3, 1, 1), blend.GrayStraight[uint8]{})
	mask.CopyPixel(0, 0, color.Gray8{V: 0})
	mask.CopyPixel(1, 0, color.Gray8{V: 255})
	mask.CopyPixel(2, 0, color.Gray8{V: 128})

	rb := newRB(t, 3, 1, 4)
	f := NewRGBA32(rb, blend.NewRGBA[uint8](order.RGBA))
	f.BlendFromColor(mask, color.Rgba8{R: 255, A: 255}, 0, 0, 0, 0, 3, 255)

	// (128*255+255)>>8 = 128, Lerp(0, 255, 128) = 128
	want := []uint8{0, 0, 0, 0, 255, 0, 0, 255, 128, 0, 0, 128}
	if !bytes.Equal(rb.Buf(), want) {
		t.Errorf("BlendFromColor = %v, want %v", rb.Buf(), want)
	}
}

func TestBlendFromLUT(t *testing.T) {
	idx := NewGray8(newRB(t, 2, 1, 1), blend.GrayStraight[uint8]{})
	idx.CopyPixel(0, 0, color.Gray8{V: 1})
	idx.CopyPixel(1, 0, color.Gray8{V: 2})

	lut := make([]color.Rgba8, 256)
	lut[1] = color.Rgba8{R: 10, G: 20, B: 30, A: 255}
	lut[2] = color.Rgba8{R: 40, G: 50, B: 60, A: 255}

	rb := newRB(t, 2, 1, 3)
	f := NewRGB24(rb, blend.NewStraight[uint8](order.RGB))
	f.BlendFromLUT(idx, lut, 0, 0, 0, 0, 2, 255)
	if want := []uint8{10, 20, 30, 40, 50, 60}; !bytes.Equal(rb.Buf(), want) {
		t.Errorf("BlendFromLUT = %v, want %v", rb.Buf(), want)
	}
}

func TestBlendFromConvertsOrder(t *testing.T) {
	src := NewRGBA32(newRB(t, 1, 1, 4), blend.NewPre[uint8](order.BGRA))
	src.CopyPixel(0, 0, color.Rgba8{R: 1, G: 2, B: 3, A: 255})

	rb := newRB(t, 1, 1, 4)
	dst := NewRGBA32(rb, blend.NewPre[uint8](order.ARGB))
	dst.BlendFrom(src, 0, 0, 0, 0, 1, 255)
	if want := []uint8{255, 1, 2, 3}; !bytes.Equal(rb.Buf(), want) {
		t.Errorf("BlendFrom = %v, want %v", rb.Buf(), want)
	}
}

func TestCopyFrom(t *testing.T) {
	src := newRB(t, 4, 1, 4)
	fillPattern(src.Buf())
	rb := newRB(t, 4, 1, 4)
	f := NewRGBA32(rb, blend.NewPre[uint8](order.RGBA))
	f.CopyFrom(src, 1, 0, 2, 0, 2)
	if !bytes.Equal(rb.Buf()[4:12], src.Buf()[8:16]) {
		t.Errorf("CopyFrom copied %v, want %v", rb.Buf()[4:12], src.Buf()[8:16])
	}
	if !bytes.Equal(rb.Buf()[:4], []uint8{0, 0, 0, 0}) {
		t.Error("CopyFrom wrote outside the requested pixels")
	}
}

func TestPremultiplyPass(t *testing.T) {
	rb := newRB(t, 3, 1, 4)
	copy(rb.Buf(), []uint8{200, 100, 50, 128, 9, 9, 9, 0, 7, 8, 9, 255})
	f := NewRGBA32(rb, blend.NewRGBA[uint8](order.RGBA))
	f.Premultiply()
	want := []uint8{100, 50, 25, 128, 0, 0, 0, 0, 7, 8, 9, 255}
	if !bytes.Equal(rb.Buf(), want) {
		t.Errorf("Premultiply = %v, want %v", rb.Buf(), want)
	}
	f.Demultiply()
	got := rb.Buf()
	for i, w := range []uint8{200, 100, 50} {
		if d := int(got[i]) - int(w); d < -2 || d > 2 {
			t.Errorf("channel %d after round trip = %d, want %d", i, got[i], w)
		}
	}
}

func TestApplyGammaPass(t *testing.T) {
	rb := newRB(t, 1, 1, 4)
	copy(rb.Buf(), []uint8{0, 128, 255, 77})
	f := NewRGBA32(rb, blend.NewRGBA[uint8](order.RGBA))
	lut := color.NewGammaLUT(1.0)
	f.ApplyGamma(lut.DirU8)
	if want := []uint8{0, 128, 255, 77}; !bytes.Equal(rb.Buf(), want) {
		t.Errorf("identity gamma changed pixels: %v", rb.Buf())
	}
	f.ApplyGamma(func(v uint8) uint8 { return 255 - v })
	if want := []uint8{255, 127, 0, 77}; !bytes.Equal(rb.Buf(), want) {
		t.Errorf("ApplyGamma = %v, want %v (alpha untouched)", rb.Buf(), want)
	}
}

func TestRGBA64(t *testing.T) {
	rb, err := rowbuf.New[uint16](2, 1, 8)
	if err != nil {
		t.Fatal(err)
	}
	f := NewRGBA64(rb, blend.NewPre[uint16](order.RGBA))
	c := color.Rgba16{R: 65535, G: 1, B: 2, A: 65535}
	f.BlendPixel(0, 0, c, 255)
	f.CopyPixel(1, 0, c)
	if f.Pixel(0, 0) != f.Pixel(1, 0) {
		t.Errorf("blend %v != copy %v", f.Pixel(0, 0), f.Pixel(1, 0))
	}
}

func BenchmarkBlendSolidHspan(b *testing.B) {
	rb, _ := rowbuf.New[uint8](1024, 1, 4096)
	f := NewRGBA32(rb, blend.NewPre[uint8](order.RGBA))
	covers := make([]uint8, 1024)
	for i := range covers {
		covers[i] = uint8(i)
	}
	c := color.Rgba8{R: 200, G: 100, B: 50, A: 200}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.BlendSolidHspan(0, 0, 1024, c, covers)
	}
}
