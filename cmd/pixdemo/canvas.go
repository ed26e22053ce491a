// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/pixcore/amask"
	"github.com/gogpu/pixcore/blend"
	"github.com/gogpu/pixcore/color"
	"github.com/gogpu/pixcore/glyph"
	"github.com/gogpu/pixcore/order"
	"github.com/gogpu/pixcore/pixfmt"
	"github.com/gogpu/pixcore/raster"
	"github.com/gogpu/pixcore/render"
	"github.com/gogpu/pixcore/rowbuf"
	"github.com/gogpu/pixcore/scanline"
	"github.com/gogpu/pixcore/span"
)

type canvas struct {
	rb    *rowbuf.RowAccessor[uint8]
	pf    *pixfmt.RGBA32
	base  *render.Base[color.Rgba8]
	sl    *scanline.ScanlineU[uint8]
	alloc span.Allocator[color.Rgba8]
	gamma color.GammaFunc
	par   *render.Parallel

	font   *glyph.Font
	glyphs *glyph.Cache
	shaper *glyph.Shaper
}

func newCanvas(w, h int, gamma float64, par *render.Parallel, font *glyph.Font) (*canvas, error) {
	rb, err := rowbuf.New[uint8](w, h, w*4)
	if err != nil {
		return nil, err
	}
	pf := pixfmt.NewRGBA32(rb, blend.NewPre[uint8](order.RGBA))
	c := &canvas{
		rb:     rb,
		pf:     pf,
		base:   render.NewBase[color.Rgba8](pf),
		sl:     scanline.NewU8(),
		par:    par,
		font:   font,
		shaper: glyph.NewShaper(),
	}
	var opts []glyph.CacheOption
	if gamma > 0 && gamma != 1 {
		c.gamma = color.GammaPower(gamma)
		opts = append(opts, glyph.WithGamma(c.gamma))
	}
	c.glyphs = glyph.NewCache(opts...)
	return c, nil
}

// Image returns the canvas as a premultiplied RGBA image sharing its
// memory.
func (c *canvas) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    c.rb.Buf(),
		Stride: c.rb.Stride(),
		Rect:   image.Rect(0, 0, c.rb.Width(), c.rb.Height()),
	}
}

func (c *canvas) rasterizer() *raster.Rasterizer {
	r := raster.New(image.Rect(0, 0, c.rb.Width(), c.rb.Height()))
	r.SetGamma(c.gamma)
	return r
}

func (c *canvas) shape(s Shape) (*raster.Rasterizer, error) {
	r := c.rasterizer()
	if err := addShape(r, s); err != nil {
		return nil, err
	}
	return r, nil
}

func addShape(r *raster.Rasterizer, s Shape) error {
	switch {
	case len(s.Rect) == 4:
		r.Rect(s.Rect[0], s.Rect[1], s.Rect[2], s.Rect[3])
	case len(s.Ellipse) == 4:
		r.Ellipse(s.Ellipse[0], s.Ellipse[1], s.Ellipse[2], s.Ellipse[3])
	case len(s.Polygon) >= 6 && len(s.Polygon)%2 == 0:
		p := s.Polygon
		r.MoveTo(p[0], p[1])
		for i := 2; i < len(p); i += 2 {
			r.LineTo(p[i], p[i+1])
		}
		r.ClosePath()
	default:
		return errBadShape
	}
	return nil
}

// store rasterizes s into persistent storage.
func (c *canvas) store(s Shape) (*scanline.StorageAA8, error) {
	r, err := c.shape(s)
	if err != nil {
		return nil, err
	}
	st := scanline.NewStorageAA[uint8]()
	render.RenderScanlines(r, c.sl, st)
	return st, nil
}

// target returns the renderer a layer draws into, honoring its operator
// and mask.
func (c *canvas) target(l Layer) (*render.Base[color.Rgba8], bool, error) {
	var pf pixfmt.PixFmt[color.Rgba8] = c.pf
	plain := true
	if l.Op != "" && l.Op != blend.OpSrcOver.String() {
		op, err := blend.ParseOp(l.Op)
		if err != nil {
			return nil, false, err
		}
		pf = pixfmt.NewCompOpRGBA32(c.rb, order.RGBA, op)
		plain = false
	}
	if l.Mask != nil {
		r, err := c.shape(*l.Mask)
		if err != nil {
			return nil, false, fmt.Errorf("mask: %w", err)
		}
		m, err := amask.FromImage(r.Coverage())
		if err != nil {
			return nil, false, err
		}
		pf = amask.NewAdaptor(pf, m)
		plain = false
	}
	if plain {
		return c.base, true, nil
	}
	return render.NewBase(pf), false, nil
}

func (c *canvas) draw(l Layer) error {
	ren, plain, err := c.target(l)
	if err != nil {
		return err
	}
	switch l.Kind {
	case "solid":
		col, err := parseColor(l.Color)
		if err != nil {
			return err
		}
		if plain && c.par != nil {
			st, err := c.store(l.Shape)
			if err != nil {
				return err
			}
			render.RenderParallelSolid(c.par, st, ren, col)
			return nil
		}
		r, err := c.shape(l.Shape)
		if err != nil {
			return err
		}
		render.RenderScanlines(r, c.sl, render.NewScanlineAASolid(ren, col))
	case "gradient":
		if l.Gradient == nil {
			return fmt.Errorf("%w: gradient layer without gradient", errBadLayer)
		}
		gen, err := newGradient(*l.Gradient)
		if err != nil {
			return err
		}
		r, err := c.shape(l.Shape)
		if err != nil {
			return err
		}
		render.RenderScanlines(r, c.sl, render.NewScanlineAA(ren, &c.alloc, gen))
	case "compound":
		return c.compound(l, ren)
	case "text":
		col, err := parseColor(l.Color)
		if err != nil {
			return err
		}
		if len(l.At) != 2 || l.Size <= 0 {
			return fmt.Errorf("%w: text needs at: [x, y] and size", errBadLayer)
		}
		_, err = glyph.DrawString(c.shaper, c.glyphs, c.font, l.Text, l.Size, l.At[0], l.At[1],
			c.sl, render.NewScanlineAASolid(ren, col))
		return err
	default:
		return fmt.Errorf("%w: unknown kind %q", errBadLayer, l.Kind)
	}
	return nil
}

// styles maps compound style ids to solid colors or generators.
type styles struct {
	solid []color.Rgba8
	gen   []span.Generator[color.Rgba8]
}

func (s *styles) IsSolid(style int) bool      { return s.gen[style] == nil }
func (s *styles) Color(style int) color.Rgba8 { return s.solid[style] }

func (s *styles) GenerateSpan(colors []color.Rgba8, x, y, n, style int) {
	s.gen[style].Generate(colors, x, y, n)
}

func (c *canvas) compound(l Layer, ren *render.Base[color.Rgba8]) error {
	sh := &styles{
		solid: make([]color.Rgba8, len(l.Parts)),
		gen:   make([]span.Generator[color.Rgba8], len(l.Parts)),
	}
	var layers scanline.Layers
	for i, p := range l.Parts {
		switch {
		case p.Gradient != nil:
			g, err := newGradient(*p.Gradient)
			if err != nil {
				return err
			}
			g.Prepare()
			sh.gen[i] = g
		default:
			col, err := parseColor(p.Color)
			if err != nil {
				return err
			}
			sh.solid[i] = col
		}
		st, err := c.store(p.Shape)
		if err != nil {
			return fmt.Errorf("part %d: %w", i, err)
		}
		layers.Add(st, i)
	}
	render.NewCompound[color.Rgba8](sh).Render(&layers, c.sl, ren)
	return nil
}

func newGradient(g Gradient) (span.Generator[color.Rgba8], error) {
	if len(g.Stops) == 0 || len(g.From) != 2 {
		return nil, fmt.Errorf("%w: gradient needs from and stops", errBadLayer)
	}
	stops := make([]span.ColorStop[color.Rgba8], len(g.Stops))
	for i, s := range g.Stops {
		col, err := parseColor(s.Color)
		if err != nil {
			return nil, err
		}
		stops[i] = span.ColorStop[color.Rgba8]{Offset: s.Offset, Color: col}
	}
	lut := span.BuildLUT(stops)

	x0, y0 := g.From[0], g.From[1]
	var (
		shape span.Shape
		mtx   span.Matrix
		d2    float64
	)
	switch g.Kind {
	case "linear", "":
		if len(g.To) != 2 {
			return nil, fmt.Errorf("%w: linear gradient needs to", errBadLayer)
		}
		dx, dy := g.To[0]-x0, g.To[1]-y0
		shape = span.X
		mtx = span.Translate(x0, y0).Multiply(span.Rotate(math.Atan2(dy, dx))).Invert()
		d2 = math.Hypot(dx, dy)
	case "radial", "diamond", "conic":
		shape = map[string]span.Shape{"radial": span.Radial, "diamond": span.Diamond, "conic": span.Conic}[g.Kind]
		mtx = span.Translate(x0, y0).Invert()
		d2 = g.Radius
	default:
		return nil, fmt.Errorf("%w: unknown gradient %q", errBadLayer, g.Kind)
	}
	switch g.Spread {
	case "repeat":
		shape = span.Repeat(shape)
	case "reflect":
		shape = span.Reflect(shape)
	}
	return span.NewGradient(mtx, shape, lut, 0, d2), nil
}
