// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package blend

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/pixcore/color"
	"github.com/gogpu/pixcore/order"
)

// ErrUnknownOp is returned by ParseOp for names outside the operator table.
var ErrUnknownOp = errors.New("blend: unknown compositing operator")

// Op identifies a compositing operator. Values index Table.
type Op int

// Porter-Duff and separable operators. Formulas are on premultiplied
// values in [0,1]; S and D are the source and destination, Sa and Da their
// alpha.
const (
	OpClear      Op = iota // 0
	OpSrc                  // S
	OpDst                  // D
	OpSrcOver              // S + D*(1-Sa)
	OpDstOver              // D + S*(1-Da)
	OpSrcIn                // S*Da
	OpDstIn                // D*Sa
	OpSrcOut               // S*(1-Da)
	OpDstOut               // D*(1-Sa)
	OpSrcAtop              // S*Da + D*(1-Sa)
	OpDstAtop              // D*Sa + S*(1-Da)
	OpXor                  // S*(1-Da) + D*(1-Sa)
	OpPlus                 // S + D, clamped
	OpMinus                // D - S, clamped
	OpMultiply             // S*D + S*(1-Da) + D*(1-Sa)
	OpScreen               // S + D - S*D
	OpOverlay              // HardLight with the layers swapped
	OpDarken               // min(S*Da, D*Sa) + S*(1-Da) + D*(1-Sa)
	OpLighten              // max(S*Da, D*Sa) + S*(1-Da) + D*(1-Sa)
	OpColorDodge           // D / (1 - S)
	OpColorBurn            // 1 - (1 - D) / S
	OpHardLight            // Multiply or Screen depending on the source
	OpSoftLight            // soft version of HardLight
	OpDifference           // S + D - 2*min(S*Da, D*Sa)
	OpExclusion            // S + D - 2*S*D
	OpContrast             // destination contrast scaled by the source
	OpInvert               // destination inverted by source alpha
	OpInvertRGB            // destination inverted by source color

	// NumOps is the number of operators in Table.
	NumOps
)

var opNames = [NumOps]string{
	OpClear:      "clear",
	OpSrc:        "src",
	OpDst:        "dst",
	OpSrcOver:    "src-over",
	OpDstOver:    "dst-over",
	OpSrcIn:      "src-in",
	OpDstIn:      "dst-in",
	OpSrcOut:     "src-out",
	OpDstOut:     "dst-out",
	OpSrcAtop:    "src-atop",
	OpDstAtop:    "dst-atop",
	OpXor:        "xor",
	OpPlus:       "plus",
	OpMinus:      "minus",
	OpMultiply:   "multiply",
	OpScreen:     "screen",
	OpOverlay:    "overlay",
	OpDarken:     "darken",
	OpLighten:    "lighten",
	OpColorDodge: "color-dodge",
	OpColorBurn:  "color-burn",
	OpHardLight:  "hard-light",
	OpSoftLight:  "soft-light",
	OpDifference: "difference",
	OpExclusion:  "exclusion",
	OpContrast:   "contrast",
	OpInvert:     "invert",
	OpInvertRGB:  "invert-rgb",
}

// String returns the operator name, e.g. "src-over".
func (o Op) String() string {
	if !o.Valid() {
		return fmt.Sprintf("Op(%d)", int(o))
	}
	return opNames[o]
}

// Valid reports whether o indexes Table.
func (o Op) Valid() bool {
	return o >= 0 && o < NumOps
}

// ParseOp returns the operator with the given name.
func ParseOp(name string) (Op, error) {
	for i, n := range opNames {
		if n == name {
			return Op(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOp, name)
}

// Func composes a premultiplied source over a premultiplied destination
// and returns the new destination. Both colors are in [0,1].
type Func func(d, s color.RGBA) color.RGBA

// Table maps an operator id to its function.
var Table = [NumOps]Func{
	OpClear:      opClear,
	OpSrc:        opSrc,
	OpDst:        opDst,
	OpSrcOver:    opSrcOver,
	OpDstOver:    opDstOver,
	OpSrcIn:      opSrcIn,
	OpDstIn:      opDstIn,
	OpSrcOut:     opSrcOut,
	OpDstOut:     opDstOut,
	OpSrcAtop:    opSrcAtop,
	OpDstAtop:    opDstAtop,
	OpXor:        opXor,
	OpPlus:       opPlus,
	OpMinus:      opMinus,
	OpMultiply:   separable(func(s, d float64) float64 { return s * d }),
	OpScreen:     separable(func(s, d float64) float64 { return s + d - s*d }),
	OpOverlay:    separable(func(s, d float64) float64 { return hardLight(d, s) }),
	OpDarken:     separable(math.Min),
	OpLighten:    separable(math.Max),
	OpColorDodge: separable(colorDodge),
	OpColorBurn:  separable(colorBurn),
	OpHardLight:  separable(hardLight),
	OpSoftLight:  separable(softLight),
	OpDifference: separable(func(s, d float64) float64 { return math.Abs(s - d) }),
	OpExclusion:  separable(func(s, d float64) float64 { return s + d - 2*s*d }),
	OpContrast:   opContrast,
	OpInvert:     opInvert,
	OpInvertRGB:  opInvertRGB,
}

// Apply runs op with the source scaled by cover. The result is
// d + (op(d, s) - d) * cover/255, which equals running op on a
// cover-scaled source for every operator that is linear in the source.
// Cover 0 and OpDst leave d unchanged.
func Apply(op Op, d, s color.RGBA, cover uint8) color.RGBA {
	if cover == 0 || op == OpDst {
		return d
	}
	r := Table[op](d, s)
	if cover != color.CoverFull {
		k := float64(cover) / color.CoverMask
		r = color.RGBA{
			R: d.R + (r.R-d.R)*k,
			G: d.G + (r.G-d.G)*k,
			B: d.B + (r.B-d.B)*k,
			A: d.A + (r.A-d.A)*k,
		}
	}
	return clip(r)
}

// clip clamps alpha to [0,1] and the color channels to [0,alpha].
func clip(c color.RGBA) color.RGBA {
	a := math.Max(0, math.Min(c.A, 1))
	return color.RGBA{
		R: math.Max(0, math.Min(c.R, a)),
		G: math.Max(0, math.Min(c.G, a)),
		B: math.Max(0, math.Min(c.B, a)),
		A: a,
	}
}

func opClear(_, _ color.RGBA) color.RGBA { return color.RGBA{} }

func opSrc(_, s color.RGBA) color.RGBA { return s }

func opDst(d, _ color.RGBA) color.RGBA { return d }

func opSrcOver(d, s color.RGBA) color.RGBA {
	k := 1 - s.A
	return color.RGBA{R: s.R + d.R*k, G: s.G + d.G*k, B: s.B + d.B*k, A: s.A + d.A*k}
}

func opDstOver(d, s color.RGBA) color.RGBA {
	return opSrcOver(s, d)
}

func opSrcIn(d, s color.RGBA) color.RGBA {
	return scale(s, d.A)
}

func opDstIn(d, s color.RGBA) color.RGBA {
	return scale(d, s.A)
}

func opSrcOut(d, s color.RGBA) color.RGBA {
	return scale(s, 1-d.A)
}

func opDstOut(d, s color.RGBA) color.RGBA {
	return scale(d, 1-s.A)
}

func opSrcAtop(d, s color.RGBA) color.RGBA {
	k := 1 - s.A
	return color.RGBA{
		R: s.R*d.A + d.R*k,
		G: s.G*d.A + d.G*k,
		B: s.B*d.A + d.B*k,
		A: d.A,
	}
}

func opDstAtop(d, s color.RGBA) color.RGBA {
	return opSrcAtop(s, d)
}

func opXor(d, s color.RGBA) color.RGBA {
	s1a, d1a := 1-s.A, 1-d.A
	return color.RGBA{
		R: s.R*d1a + d.R*s1a,
		G: s.G*d1a + d.G*s1a,
		B: s.B*d1a + d.B*s1a,
		A: s.A + d.A - 2*s.A*d.A,
	}
}

func opPlus(d, s color.RGBA) color.RGBA {
	return color.RGBA{R: d.R + s.R, G: d.G + s.G, B: d.B + s.B, A: d.A + s.A}
}

func opMinus(d, s color.RGBA) color.RGBA {
	return color.RGBA{R: d.R - s.R, G: d.G - s.G, B: d.B - s.B, A: s.A + d.A - s.A*d.A}
}

func scale(c color.RGBA, k float64) color.RGBA {
	return color.RGBA{R: c.R * k, G: c.G * k, B: c.B * k, A: c.A * k}
}

// separable builds an operator from a blend function B on unpremultiplied
// channels:
//
//	r = S*(1-Da) + D*(1-Sa) + Sa*Da*B(S/Sa, D/Da)
//	a = Sa + Da - Sa*Da
func separable(b func(s, d float64) float64) Func {
	return func(d, s color.RGBA) color.RGBA {
		s1a, d1a := 1-s.A, 1-d.A
		sada := s.A * d.A
		ch := func(sc, dc float64) float64 {
			r := sc*d1a + dc*s1a
			if sada > 0 {
				r += sada * b(sc/s.A, dc/d.A)
			}
			return r
		}
		return color.RGBA{
			R: ch(s.R, d.R),
			G: ch(s.G, d.G),
			B: ch(s.B, d.B),
			A: s.A + d.A - sada,
		}
	}
}

func hardLight(s, d float64) float64 {
	if s <= 0.5 {
		return 2 * s * d
	}
	return 1 - 2*(1-s)*(1-d)
}

// colorDodge special-cases both ends instead of dividing by zero.
func colorDodge(s, d float64) float64 {
	if d <= 0 {
		return 0
	}
	if s >= 1 {
		return 1
	}
	return math.Min(1, d/(1-s))
}

func colorBurn(s, d float64) float64 {
	if d >= 1 {
		return 1
	}
	if s <= 0 {
		return 0
	}
	return 1 - math.Min(1, (1-d)/s)
}

func softLight(s, d float64) float64 {
	if s <= 0.5 {
		return d - (1-2*s)*d*(1-d)
	}
	var g float64
	if d <= 0.25 {
		g = ((16*d-12)*d + 4) * d
	} else {
		g = math.Sqrt(d)
	}
	return d + (2*s-1)*(g-d)
}

// opContrast pushes the destination away from half intensity by the source
// distance from half intensity. Alpha is unchanged.
func opContrast(d, s color.RGBA) color.RGBA {
	d2a, s2a := d.A/2, s.A/2
	ch := func(dc, sc float64) float64 {
		v := (dc-d2a)*((sc-s2a)*2+1) + d2a
		return math.Max(0, math.Min(v, d.A))
	}
	return color.RGBA{R: ch(d.R, s.R), G: ch(d.G, s.G), B: ch(d.B, s.B), A: d.A}
}

// opInvert replaces the destination by its inverse in proportion to the
// source alpha. The source color is ignored.
func opInvert(d, s color.RGBA) color.RGBA {
	s1a := 1 - s.A
	ch := func(dc float64) float64 { return (d.A-dc)*s.A + dc*s1a }
	return color.RGBA{R: ch(d.R), G: ch(d.G), B: ch(d.B), A: s.A + d.A - s.A*d.A}
}

// opInvertRGB is opInvert weighted per channel by the source color.
func opInvertRGB(d, s color.RGBA) color.RGBA {
	s1a := 1 - s.A
	ch := func(dc, sc float64) float64 { return (d.A-dc)*sc + dc*s1a }
	return color.RGBA{R: ch(d.R, s.R), G: ch(d.G, s.G), B: ch(d.B, s.B), A: s.A + d.A - s.A*d.A}
}

// CompOp is a premultiplied blender that dispatches through Table. The
// operator can be changed between calls.
type CompOp[T color.Int] struct {
	l  order.Layout
	op Op
}

// NewCompOp returns a run-time selectable blender.
func NewCompOp[T color.Int](o order.Order, op Op) *CompOp[T] {
	return &CompOp[T]{l: o.Layout(), op: op}
}

// Layout returns the channel offsets.
func (b *CompOp[T]) Layout() order.Layout { return b.l }

// Op returns the current operator.
func (b *CompOp[T]) Op() Op { return b.op }

// SetOp selects the operator. op must be valid.
func (b *CompOp[T]) SetOp(op Op) { b.op = op }

// Custom reports true: most operators differ from a copy at full alpha.
func (b *CompOp[T]) Custom() bool { return true }

// BlendPix composes the source with full cover.
func (b *CompOp[T]) BlendPix(p []T, cr, cg, cb, alpha T) {
	b.BlendPixCover(p, cr, cg, cb, alpha, color.CoverFull)
}

// BlendPixCover composes the source scaled by cover.
func (b *CompOp[T]) BlendPixCover(p []T, cr, cg, cb, alpha T, cover uint8) {
	if cover == 0 || b.op == OpDst {
		return
	}
	m := float64(color.BaseMask[T]())
	d := color.RGBA{R: float64(p[b.l.R]) / m, G: float64(p[b.l.G]) / m, B: float64(p[b.l.B]) / m, A: 1}
	if b.l.A >= 0 {
		d.A = float64(p[b.l.A]) / m
	}
	s := color.RGBA{R: float64(cr) / m, G: float64(cg) / m, B: float64(cb) / m, A: float64(alpha) / m}
	r := Apply(b.op, d, s, cover)
	p[b.l.R] = T(r.R*m + 0.5)
	p[b.l.G] = T(r.G*m + 0.5)
	p[b.l.B] = T(r.B*m + 0.5)
	if b.l.A >= 0 {
		p[b.l.A] = T(r.A*m + 0.5)
	}
}

// CompOpFloat is CompOp for float32 surfaces.
type CompOpFloat struct {
	l  order.Layout
	op Op
}

// NewCompOpFloat returns a run-time selectable float blender.
func NewCompOpFloat(o order.Order, op Op) *CompOpFloat {
	return &CompOpFloat{l: o.Layout(), op: op}
}

// Layout returns the channel offsets.
func (b *CompOpFloat) Layout() order.Layout { return b.l }

// Op returns the current operator.
func (b *CompOpFloat) Op() Op { return b.op }

// SetOp selects the operator.
func (b *CompOpFloat) SetOp(op Op) { b.op = op }

// Custom reports true.
func (b *CompOpFloat) Custom() bool { return true }

// BlendPix composes the source with full cover.
func (b *CompOpFloat) BlendPix(p []float32, cr, cg, cb, alpha float32) {
	b.BlendPixCover(p, cr, cg, cb, alpha, color.CoverFull)
}

// BlendPixCover composes the source scaled by cover.
func (b *CompOpFloat) BlendPixCover(p []float32, cr, cg, cb, alpha float32, cover uint8) {
	if cover == 0 || b.op == OpDst {
		return
	}
	d := color.RGBA{R: float64(p[b.l.R]), G: float64(p[b.l.G]), B: float64(p[b.l.B]), A: 1}
	if b.l.A >= 0 {
		d.A = float64(p[b.l.A])
	}
	s := color.RGBA{R: float64(cr), G: float64(cg), B: float64(cb), A: float64(alpha)}
	r := Apply(b.op, d, s, cover)
	p[b.l.R], p[b.l.G], p[b.l.B] = float32(r.R), float32(r.G), float32(r.B)
	if b.l.A >= 0 {
		p[b.l.A] = float32(r.A)
	}
}
