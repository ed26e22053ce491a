// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package glyph connects a font engine to the scanline core.
//
// Glyph outlines are read with golang.org/x/image/font/sfnt, rasterized
// through package raster and stored as serialized scanline storage. A
// rasterized glyph is immutable and is replayed at any integer pen
// position through a scanline.SerializedAA adaptor, so one cached glyph
// serves every occurrence of that glyph on the page.
//
//	f, _ := glyph.ParseFont(goregular.TTF)
//	c := glyph.NewCache()
//	sh := glyph.NewShaper()
//	run, _ := sh.Shape("Hello", f, 24)
//	_ = glyph.DrawRun(c, f, run, 24, 10, 40, scanline.NewU8(), ren)
//
// Text runs are shaped with github.com/go-text/typesetting. Mixed
// direction text is split into directional runs with
// golang.org/x/text/unicode/bidi before shaping.
package glyph
