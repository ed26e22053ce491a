// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package span produces per-pixel colors for scanline rendering.
//
// A Generator fills a color buffer for a run of pixels; Converters then
// modify that buffer in place before the renderer blends it. Process
// chains both into a single Generator:
//
//	gen := span.NewProcess[color.Rgba8](grad, span.NewAlphaGradient(...))
//	render.RenderScanlineAA(sl, ren, alloc, gen)
package span

// Generator produces colors for n pixels starting at (x, y).
type Generator[C any] interface {
	// Prepare is called once before a shape is rendered.
	Prepare()
	// Generate writes n colors into colors.
	Generate(colors []C, x, y, n int)
}

// Converter modifies generated colors in place.
type Converter[C any] interface {
	Prepare()
	Generate(colors []C, x, y, n int)
}

// ConverterFunc adapts a function to a stateless Converter.
type ConverterFunc[C any] func(colors []C, x, y, n int)

// Prepare does nothing.
func (f ConverterFunc[C]) Prepare() {}

// Generate calls f.
func (f ConverterFunc[C]) Generate(colors []C, x, y, n int) { f(colors, x, y, n) }

// Process runs a generator followed by converters.
type Process[C any] struct {
	gen  Generator[C]
	conv []Converter[C]
}

// NewProcess chains gen with conv, applied in order.
func NewProcess[C any](gen Generator[C], conv ...Converter[C]) *Process[C] {
	return &Process[C]{gen: gen, conv: conv}
}

// Prepare prepares the generator and every converter.
func (p *Process[C]) Prepare() {
	p.gen.Prepare()
	for _, c := range p.conv {
		c.Prepare()
	}
}

// Generate fills colors and runs the converters over them.
func (p *Process[C]) Generate(colors []C, x, y, n int) {
	p.gen.Generate(colors, x, y, n)
	for _, c := range p.conv {
		c.Generate(colors, x, y, n)
	}
}

// Solid generates one color.
type Solid[C any] struct {
	Color C
}

// Prepare does nothing.
func (s *Solid[C]) Prepare() {}

// Generate fills colors with s.Color.
func (s *Solid[C]) Generate(colors []C, _, _, n int) {
	c := colors[:n]
	for i := range c {
		c[i] = s.Color
	}
}

// Allocator hands out a reusable color buffer. It is not safe for
// concurrent use; give every worker its own.
type Allocator[C any] struct {
	buf []C
}

// Allocate returns a buffer of n colors. The buffer is reused by the next
// call and grows in steps of 256.
func (a *Allocator[C]) Allocate(n int) []C {
	if n > cap(a.buf) {
		a.buf = make([]C, (n+255)&^255)
	}
	return a.buf[:n]
}
