// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glyph

import "errors"

var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("glyph: empty font data")

	// ErrUnsupportedFont is returned when font data cannot be parsed.
	ErrUnsupportedFont = errors.New("glyph: unsupported font")

	// ErrNoOutline is returned for glyphs without vector outlines, such as
	// bitmap or color glyphs.
	ErrNoOutline = errors.New("glyph: no outline")
)
