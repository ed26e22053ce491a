// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pixfmt

import (
	"github.com/gogpu/pixcore/blend"
	"github.com/gogpu/pixcore/color"
	"github.com/gogpu/pixcore/order"
	"github.com/gogpu/pixcore/rowbuf"
)

// CompOp is a premultiplied surface whose compositing operator is chosen
// at run time from blend.Table.
type CompOp[T color.Int, C RGBAColor[T]] struct {
	*AlphaBlend[T, C]
	op *blend.CompOp[T]
}

// CompOpRGBA32 is the 8-bit run-time compositing surface.
type CompOpRGBA32 = CompOp[uint8, color.Rgba8]

// NewCompOp returns a compositing surface using op.
func NewCompOp[T color.Int, C RGBAColor[T]](rb rowbuf.Buffer[T], o order.Order, op blend.Op) *CompOp[T, C] {
	bl := blend.NewCompOp[T](o, op)
	return &CompOp[T, C]{AlphaBlend: NewAlphaBlend[T, C](rb, bl), op: bl}
}

// NewCompOpRGBA32 returns an 8-bit compositing surface.
func NewCompOpRGBA32(rb rowbuf.Buffer[uint8], o order.Order, op blend.Op) *CompOpRGBA32 {
	return NewCompOp[uint8, color.Rgba8](rb, o, op)
}

// CompOp returns the current operator.
func (f *CompOp[T, C]) CompOp() blend.Op { return f.op.Op() }

// SetCompOp selects the operator used by every following blend.
func (f *CompOp[T, C]) SetCompOp(op blend.Op) { f.op.SetOp(op) }
