// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package blend

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/pixcore/color"
	"github.com/gogpu/pixcore/order"
)

func TestOpNames(t *testing.T) {
	if NumOps != 28 {
		t.Fatalf("NumOps = %d, want 28", NumOps)
	}
	for op := Op(0); op < NumOps; op++ {
		got, err := ParseOp(op.String())
		if err != nil || got != op {
			t.Errorf("ParseOp(%q) = %v, %v", op.String(), got, err)
		}
		if Table[op] == nil {
			t.Errorf("Table[%v] is nil", op)
		}
	}
	if _, err := ParseOp("hue"); !errors.Is(err, ErrUnknownOp) {
		t.Errorf("ParseOp(hue) error = %v", err)
	}
	if Op(28).Valid() || Op(-1).Valid() {
		t.Error("out-of-range ops reported valid")
	}
	if s := Op(40).String(); s != "Op(40)" {
		t.Errorf("String() = %q", s)
	}
}

func TestSrcOverOpaqueRedOnTransparent(t *testing.T) {
	b := NewCompOp[uint8](order.RGBA, OpSrcOver)
	p := []uint8{0, 0, 0, 0}
	b.BlendPixCover(p, 255, 0, 0, 255, 255)
	if p[0] != 255 || p[1] != 0 || p[2] != 0 || p[3] != 255 {
		t.Errorf("src-over = %v, want [255 0 0 255]", p)
	}
}

func TestSrcOverOnTransparentScalesByCover(t *testing.T) {
	b := NewCompOp[uint8](order.RGBA, OpSrcOver)
	for _, cover := range []uint8{0, 1, 64, 128, 200, 255} {
		p := []uint8{0, 0, 0, 0}
		b.BlendPixCover(p, 200, 100, 50, 200, cover)
		want := []uint8{
			color.MultCover[uint8](200, cover),
			color.MultCover[uint8](100, cover),
			color.MultCover[uint8](50, cover),
			color.MultCover[uint8](200, cover),
		}
		for i := range p {
			if d := int(p[i]) - int(want[i]); d > 1 || d < -1 {
				t.Fatalf("cover %d: got %v, want %v", cover, p, want)
			}
		}
	}
}

func TestClearProportionalToCover(t *testing.T) {
	b := NewCompOp[uint8](order.RGBA, OpClear)
	p := []uint8{200, 100, 50, 255}
	b.BlendPixCover(p, 255, 255, 255, 255, 128)
	want := []uint8{100, 50, 25, 127}
	for i := range p {
		if p[i] != want[i] {
			t.Fatalf("clear at half cover = %v, want %v", p, want)
		}
	}
	b.BlendPix(p, 0, 0, 0, 0)
	for i := range p {
		if p[i] != 0 {
			t.Fatalf("clear at full cover = %v", p)
		}
	}
}

func TestDstIsNoOp(t *testing.T) {
	b := NewCompOp[uint16](order.BGRA, OpDst)
	p := []uint16{1, 2, 3, 4}
	b.BlendPix(p, 65535, 65535, 65535, 65535)
	if p[0] != 1 || p[1] != 2 || p[2] != 3 || p[3] != 4 {
		t.Errorf("dst changed the pixel: %v", p)
	}
}

func TestZeroCoverIsNoOp(t *testing.T) {
	for op := Op(0); op < NumOps; op++ {
		b := NewCompOp[uint8](order.RGBA, op)
		p := []uint8{90, 80, 70, 100}
		b.BlendPixCover(p, 10, 20, 30, 40, 0)
		if p[0] != 90 || p[1] != 80 || p[2] != 70 || p[3] != 100 {
			t.Errorf("%v with zero cover = %v", op, p)
		}
	}
}

func TestOpsStayInRange(t *testing.T) {
	samples := []color.RGBA{
		{},
		{R: 1, G: 1, B: 1, A: 1},
		{R: 0.25, G: 0.5, B: 0, A: 0.5},
		{R: 0.1, G: 0.2, B: 0.3, A: 0.3},
		{R: 0, G: 0, B: 0, A: 1},
	}
	for op := Op(0); op < NumOps; op++ {
		for _, d := range samples {
			for _, s := range samples {
				r := Apply(op, d, s, 200)
				for _, v := range []float64{r.R, r.G, r.B, r.A} {
					if math.IsNaN(v) || v < 0 || v > 1 {
						t.Fatalf("%v(%+v, %+v) = %+v", op, d, s, r)
					}
				}
				if r.R > r.A+1e-12 || r.G > r.A+1e-12 || r.B > r.A+1e-12 {
					t.Fatalf("%v produced color above alpha: %+v", op, r)
				}
			}
		}
	}
}

func TestPorterDuffFormulas(t *testing.T) {
	d := color.RGBA{R: 0.4, G: 0.2, B: 0, A: 0.5}
	s := color.RGBA{R: 0.3, G: 0, B: 0.6, A: 0.6}
	tests := []struct {
		op   Op
		want color.RGBA
	}{
		{OpSrc, s},
		{OpDst, d},
		{OpSrcOver, color.RGBA{R: 0.3 + 0.4*0.4, G: 0.2 * 0.4, B: 0.6, A: 0.6 + 0.5*0.4}},
		{OpDstOver, color.RGBA{R: 0.4 + 0.3*0.5, G: 0.2, B: 0.6 * 0.5, A: 0.5 + 0.6*0.5}},
		{OpSrcIn, color.RGBA{R: 0.15, G: 0, B: 0.3, A: 0.3}},
		{OpDstIn, color.RGBA{R: 0.24, G: 0.12, B: 0, A: 0.3}},
		{OpSrcOut, color.RGBA{R: 0.15, G: 0, B: 0.3, A: 0.3}},
		{OpDstOut, color.RGBA{R: 0.16, G: 0.08, B: 0, A: 0.2}},
		{OpXor, color.RGBA{R: 0.15 + 0.16, G: 0.08, B: 0.3, A: 0.6 + 0.5 - 0.6}},
		{OpScreen, color.RGBA{R: 0.3 + 0.4 - 0.12, G: 0.2, B: 0.6, A: 0.6 + 0.5 - 0.3}},
	}
	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			got := Apply(tt.op, d, s, 255)
			if !near(got, tt.want) {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMultiplyWithOpaqueOperands(t *testing.T) {
	d := color.RGBA{R: 0.5, G: 1, B: 0, A: 1}
	s := color.RGBA{R: 0.5, G: 0.5, B: 1, A: 1}
	got := Apply(OpMultiply, d, s, 255)
	if !near(got, color.RGBA{R: 0.25, G: 0.5, B: 0, A: 1}) {
		t.Errorf("multiply = %+v", got)
	}
}

func TestDodgeBurnEdgeCases(t *testing.T) {
	black := color.RGBA{A: 1}
	white := color.RGBA{R: 1, G: 1, B: 1, A: 1}
	if got := Apply(OpColorDodge, black, white, 255); !near(got, black) {
		t.Errorf("dodge of black = %+v, want black", got)
	}
	if got := Apply(OpColorBurn, white, black, 255); !near(got, white) {
		t.Errorf("burn of white = %+v, want white", got)
	}
	if got := Apply(OpColorBurn, color.RGBA{R: 0.5, A: 1}, black, 255); got.R != 0 {
		t.Errorf("burn by black = %+v, want 0 red", got)
	}
}

func TestInvert(t *testing.T) {
	d := color.RGBA{R: 1, G: 0, B: 0.25, A: 1}
	got := Apply(OpInvert, d, color.RGBA{A: 1}, 255)
	if !near(got, color.RGBA{R: 0, G: 1, B: 0.75, A: 1}) {
		t.Errorf("invert = %+v", got)
	}
	got = Apply(OpInvertRGB, d, color.RGBA{R: 1, A: 1}, 255)
	if !near(got, color.RGBA{R: 0, G: 0, B: 0, A: 1}) {
		t.Errorf("invert-rgb = %+v", got)
	}
}

func TestContrastKeepsAlpha(t *testing.T) {
	d := color.RGBA{R: 0.25, G: 0.5, B: 0.75, A: 1}
	got := Apply(OpContrast, d, color.RGBA{R: 1, G: 1, B: 1, A: 1}, 255)
	if got.A != 1 || got.G != 0.5 || got.R != 0 || got.B != 1 {
		t.Errorf("contrast = %+v", got)
	}
}

func TestCompOpNoAlphaLayout(t *testing.T) {
	b := NewCompOp[uint8](order.RGB, OpMultiply)
	p := []uint8{255, 128, 0}
	b.BlendPix(p, 128, 128, 128, 255)
	if p[0] != 128 || p[1] != 64 || p[2] != 0 {
		t.Errorf("multiply on RGB = %v", p)
	}
}

func TestCompOpFloat(t *testing.T) {
	b := NewCompOpFloat(order.RGBA, OpSrcOver)
	p := []float32{0, 0, 0, 0}
	b.BlendPix(p, 1, 0, 0, 1)
	if p[0] != 1 || p[3] != 1 {
		t.Errorf("float src-over = %v", p)
	}
	b.SetOp(OpClear)
	if b.Op() != OpClear {
		t.Fatal("SetOp did not take effect")
	}
	b.BlendPixCover(p, 0, 0, 0, 0, 255)
	if p[0] != 0 || p[3] != 0 {
		t.Errorf("float clear = %v", p)
	}
}

func near(a, b color.RGBA) bool {
	const eps = 1e-9
	return math.Abs(a.R-b.R) < eps && math.Abs(a.G-b.G) < eps &&
		math.Abs(a.B-b.B) < eps && math.Abs(a.A-b.A) < eps
}

func BenchmarkCompOpSrcOver(b *testing.B) {
	bl := NewCompOp[uint8](order.RGBA, OpSrcOver)
	p := make([]uint8, 4*256)
	for b.Loop() {
		for i := 0; i < 256; i++ {
			bl.BlendPixCover(p[i*4:], 100, 50, 25, 128, uint8(i))
		}
	}
}
