// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scanline

// Mask combines coverage with an external clip mask. amask.Mask
// implements it.
type Mask interface {
	// CombineHspan multiplies n coverage values starting at (x, y) by the
	// mask in place.
	CombineHspan(x, y int, covers []uint8, n int)
}

// UAM is an unpacked 8-bit scanline whose coverage is multiplied by an
// alpha mask when the row is finalized.
type UAM struct {
	ScanlineU[uint8]
	mask Mask
}

// NewUAM returns an unpacked scanline bound to mask. A nil mask behaves
// like a plain U8.
func NewUAM(mask Mask) *UAM {
	return &UAM{ScanlineU: ScanlineU[uint8]{lastX: lastXSentinel}, mask: mask}
}

// SetMask replaces the mask.
func (s *UAM) SetMask(mask Mask) { s.mask = mask }

// Finalize freezes the row at y and applies the mask to every span.
func (s *UAM) Finalize(y int) {
	s.ScanlineU.Finalize(y)
	if s.mask == nil {
		return
	}
	for _, sp := range s.spans {
		s.mask.CombineHspan(int(sp.X), y, sp.Covers, int(sp.Len))
	}
}
