// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package parallel

// Band is the half-open row range Y0 <= y < Y1.
type Band struct {
	Y0, Y1 int
}

// Height returns the number of rows in b.
func (b Band) Height() int { return b.Y1 - b.Y0 }

// Bands splits rows minY..maxY (inclusive) into consecutive bands of at
// most height rows. It returns nil for an empty range.
func Bands(minY, maxY, height int) []Band {
	if maxY < minY {
		return nil
	}
	height = max(height, 1)
	bands := make([]Band, 0, (maxY-minY)/height+1)
	for y := minY; y <= maxY; y += height {
		bands = append(bands, Band{Y0: y, Y1: min(y+height, maxY+1)})
	}
	return bands
}
