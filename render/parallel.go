// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"github.com/gogpu/pixcore/internal/parallel"
	"github.com/gogpu/pixcore/scanline"
	"github.com/gogpu/pixcore/span"
)

// DefaultBandHeight is the number of rows handed to a worker at once.
const DefaultBandHeight = 32

type parallelConfig struct {
	workers    int
	bandHeight int
}

// ParallelOption configures a Parallel renderer.
type ParallelOption func(*parallelConfig)

// WithWorkers sets the number of worker goroutines. Zero or less means
// GOMAXPROCS.
func WithWorkers(n int) ParallelOption {
	return func(c *parallelConfig) { c.workers = n }
}

// WithBandHeight sets the number of rows per work item.
func WithBandHeight(h int) ParallelOption {
	return func(c *parallelConfig) {
		if h > 0 {
			c.bandHeight = h
		}
	}
}

// Parallel renders stored shapes in bands of rows on a worker pool.
// Every band gets its own storage reader and scanline, and bands never
// share a row, so the destination surface sees writes to disjoint rows
// only. Surfaces that keep per-call scratch memory, such as the masked
// adaptor, must not be used with Parallel.
type Parallel struct {
	pool       *parallel.WorkerPool
	bandHeight int
}

// NewParallel starts a worker pool. Call Close when done.
func NewParallel(opts ...ParallelOption) *Parallel {
	cfg := parallelConfig{bandHeight: DefaultBandHeight}
	for _, o := range opts {
		o(&cfg)
	}
	return &Parallel{
		pool:       parallel.NewWorkerPool(cfg.workers),
		bandHeight: cfg.bandHeight,
	}
}

// Workers returns the number of worker goroutines.
func (p *Parallel) Workers() int { return p.pool.Workers() }

// Close stops the workers.
func (p *Parallel) Close() { p.pool.Close() }

// Run calls render once per band of s, concurrently. Each call receives a
// source restricted to its band.
func (p *Parallel) Run(s *scanline.StorageAA[uint8], render func(src scanline.Source[uint8])) {
	if s.Empty() {
		return
	}
	bands := parallel.Bands(s.MinY(), s.MaxY(), p.bandHeight)
	work := make([]func(), len(bands))
	for i, b := range bands {
		work[i] = func() {
			r := s.Reader()
			r.SetBand(b.Y0, b.Y1)
			render(r)
		}
	}
	p.pool.ExecuteAll(work)
}

// RenderParallelSolid draws s in color c.
func RenderParallelSolid[C any](p *Parallel, s *scanline.StorageAA[uint8], ren *Base[C], c C) {
	p.Run(s, func(src scanline.Source[uint8]) {
		RenderScanlines(src, scanline.NewU8(), NewScanlineAASolid(ren, c))
	})
}

// RenderParallelAA draws s with colors from generators made by newGen,
// one generator per band.
func RenderParallelAA[C any](p *Parallel, s *scanline.StorageAA[uint8], ren *Base[C], newGen func() span.Generator[C]) {
	p.Run(s, func(src scanline.Source[uint8]) {
		var alloc span.Allocator[C]
		RenderScanlines(src, scanline.NewU8(), NewScanlineAA(ren, &alloc, newGen()))
	})
}
