// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package span

import (
	"math"
	"slices"

	"github.com/gogpu/pixcore/color"
)

// Gradient coordinates are fixed point with SubpixelShift fractional bits.
const (
	SubpixelShift = 4
	SubpixelScale = 1 << SubpixelShift
)

// Shape maps a point in gradient space to a distance. x, y and the result
// are in subpixel units; d is the gradient length, also in subpixels.
type Shape interface {
	Calculate(x, y, d int) int
}

// ShapeFunc adapts a function to Shape.
type ShapeFunc func(x, y, d int) int

// Calculate calls f.
func (f ShapeFunc) Calculate(x, y, d int) int { return f(x, y, d) }

func iabs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Predefined shapes.
var (
	// X varies along the x axis.
	X Shape = ShapeFunc(func(x, _, _ int) int { return x })
	// Y varies along the y axis.
	Y Shape = ShapeFunc(func(_, y, _ int) int { return y })
	// Radial is the distance from the origin.
	Radial Shape = ShapeFunc(func(x, y, _ int) int {
		return int(math.Sqrt(float64(x)*float64(x) + float64(y)*float64(y)))
	})
	// Diamond is the larger of |x| and |y|.
	Diamond Shape = ShapeFunc(func(x, y, _ int) int { return max(iabs(x), iabs(y)) })
	// XY is |x|*|y|/d.
	XY Shape = ShapeFunc(func(x, y, d int) int { return iabs(x) * iabs(y) / max(d, 1) })
	// SqrtXY is sqrt(|x|*|y|).
	SqrtXY Shape = ShapeFunc(func(x, y, _ int) int {
		return int(math.Sqrt(float64(iabs(x)) * float64(iabs(y))))
	})
	// Conic is the angle from the x axis, 0 to d over half a turn on
	// either side.
	Conic Shape = ShapeFunc(func(x, y, d int) int {
		return int(math.Round(math.Abs(math.Atan2(float64(y), float64(x))) * float64(d) / math.Pi))
	})
)

// Repeat wraps a shape so that it restarts every d.
func Repeat(s Shape) Shape {
	return ShapeFunc(func(x, y, d int) int {
		if d <= 0 {
			return 0
		}
		r := s.Calculate(x, y, d) % d
		if r < 0 {
			r += d
		}
		return r
	})
}

// Reflect wraps a shape so that it runs back and forth every d.
func Reflect(s Shape) Shape {
	return ShapeFunc(func(x, y, d int) int {
		if d <= 0 {
			return 0
		}
		d2 := d << 1
		r := s.Calculate(x, y, d) % d2
		if r < 0 {
			r += d2
		}
		if r >= d {
			r = d2 - r
		}
		return r
	})
}

// Interpolable is a color that can be linearly interpolated.
type Interpolable[C any] interface {
	Gradient(o C, k float64) C
}

// ColorStop places a color at an offset in [0, 1].
type ColorStop[C any] struct {
	Offset float64
	Color  C
}

type lutConfig struct {
	size   int
	linear bool
}

// GradientOption configures BuildLUT.
type GradientOption func(*lutConfig)

// WithSize sets the number of LUT entries (default 256).
func WithSize(n int) GradientOption {
	return func(c *lutConfig) {
		if n > 0 {
			c.size = n
		}
	}
}

// WithLinearRGB interpolates 8-bit colors in linear light instead of
// sRGB. Other color types ignore it.
func WithLinearRGB() GradientOption {
	return func(c *lutConfig) { c.linear = true }
}

// BuildLUT samples color stops into a lookup table. Stops are sorted by
// offset; stops at equal offsets keep the first. Entries before the first
// stop and after the last one repeat the end colors.
func BuildLUT[C Interpolable[C]](stops []ColorStop[C], opts ...GradientOption) []C {
	cfg := lutConfig{size: 256}
	for _, o := range opts {
		o(&cfg)
	}
	lut := make([]C, cfg.size)
	if len(stops) == 0 {
		return lut
	}

	sorted := slices.Clone(stops)
	slices.SortStableFunc(sorted, func(a, b ColorStop[C]) int {
		switch {
		case a.Offset < b.Offset:
			return -1
		case a.Offset > b.Offset:
			return 1
		}
		return 0
	})
	sorted = slices.CompactFunc(sorted, func(a, b ColorStop[C]) bool { return a.Offset == b.Offset })

	pos := func(off float64) int {
		return min(max(int(math.Round(off*float64(cfg.size))), 0), cfg.size)
	}
	lerp := func(a, b C, k float64) C { return a.Gradient(b, k) }
	if cfg.linear {
		lerp = linearLerp[C]
	}

	start := pos(sorted[0].Offset)
	for i := 0; i < start; i++ {
		lut[i] = sorted[0].Color
	}
	for k := 1; k < len(sorted); k++ {
		end := pos(sorted[k].Offset)
		n := end - start + 1
		for i := 0; start < end; i, start = i+1, start+1 {
			lut[start] = lerp(sorted[k-1].Color, sorted[k].Color, float64(i)/float64(n))
		}
	}
	for i := start; i < cfg.size; i++ {
		lut[i] = sorted[len(sorted)-1].Color
	}
	return lut
}

// linearLerp interpolates Rgba8 in linear light and falls back to the
// color's own Gradient for other types.
func linearLerp[C Interpolable[C]](a, b C, k float64) C {
	ca, ok1 := any(a).(color.Rgba8)
	cb, ok2 := any(b).(color.Rgba8)
	if !ok1 || !ok2 {
		return a.Gradient(b, k)
	}
	la, lb := ca.Linear(), cb.Linear()
	return any(la.Gradient(lb, k).SRGB()).(C)
}

// Gradient generates colors from a shape and a lookup table. Distances
// from d1 to d2 (in pixels) span the whole table.
type Gradient[C any] struct {
	mtx    Matrix
	shape  Shape
	lut    []C
	d1, d2 int
}

// NewGradient returns a gradient generator. mtx maps device space into
// gradient space.
func NewGradient[C any](mtx Matrix, shape Shape, lut []C, d1, d2 float64) *Gradient[C] {
	return &Gradient[C]{
		mtx:   mtx,
		shape: shape,
		lut:   lut,
		d1:    int(math.Round(d1 * SubpixelScale)),
		d2:    int(math.Round(d2 * SubpixelScale)),
	}
}

// SetMatrix replaces the device to gradient transform.
func (g *Gradient[C]) SetMatrix(m Matrix) { g.mtx = m }

// SetLUT replaces the color table.
func (g *Gradient[C]) SetLUT(lut []C) { g.lut = lut }

// Prepare does nothing.
func (g *Gradient[C]) Prepare() {}

// distance returns the table index for pixel (x, y).
func distance(m Matrix, shape Shape, x, y, d1, d2, size int) int {
	gx, gy := m.Transform(float64(x)+0.5, float64(y)+0.5)
	ix := int(math.Round(gx * SubpixelScale))
	iy := int(math.Round(gy * SubpixelScale))
	dd := max(d2-d1, 1)
	d := (shape.Calculate(ix, iy, d2) - d1) * size / dd
	return min(max(d, 0), size-1)
}

// Generate writes n gradient colors.
func (g *Gradient[C]) Generate(colors []C, x, y, n int) {
	if len(g.lut) == 0 {
		return
	}
	for i := range colors[:n] {
		colors[i] = g.lut[distance(g.mtx, g.shape, x+i, y, g.d1, g.d2, len(g.lut))]
	}
}

// AlphaGradient is a converter that modulates generated colors by an alpha
// table sampled along a shape.
type AlphaGradient[C any] struct {
	mtx    Matrix
	shape  Shape
	alpha  []uint8
	d1, d2 int
	apply  func(C, uint8) C
}

// NewAlphaGradient returns a converter. apply combines a color with the
// sampled alpha; MultiplyAlpha8 suits premultiplied 8-bit colors.
func NewAlphaGradient[C any](mtx Matrix, shape Shape, alpha []uint8, d1, d2 float64, apply func(C, uint8) C) *AlphaGradient[C] {
	return &AlphaGradient[C]{
		mtx:   mtx,
		shape: shape,
		alpha: alpha,
		d1:    int(math.Round(d1 * SubpixelScale)),
		d2:    int(math.Round(d2 * SubpixelScale)),
		apply: apply,
	}
}

// Prepare does nothing.
func (g *AlphaGradient[C]) Prepare() {}

// Generate modulates n colors in place.
func (g *AlphaGradient[C]) Generate(colors []C, x, y, n int) {
	if len(g.alpha) == 0 {
		return
	}
	for i := range colors[:n] {
		a := g.alpha[distance(g.mtx, g.shape, x+i, y, g.d1, g.d2, len(g.alpha))]
		colors[i] = g.apply(colors[i], a)
	}
}

// MultiplyAlpha8 scales every channel of a premultiplied color by a.
func MultiplyAlpha8(c color.Rgba8, a uint8) color.Rgba8 {
	return color.Rgba8{
		R: color.Multiply(c.R, a),
		G: color.Multiply(c.G, a),
		B: color.Multiply(c.B, a),
		A: color.Multiply(c.A, a),
	}
}

// LinearAlpha returns an n-entry ramp from a0 to a1.
func LinearAlpha(a0, a1 uint8, n int) []uint8 {
	out := make([]uint8, n)
	for i := range out {
		k := 0.0
		if n > 1 {
			k = float64(i) / float64(n-1)
		}
		out[i] = uint8(math.Round(float64(a0) + (float64(a1)-float64(a0))*k))
	}
	return out
}
