// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package parallel

import (
	"reflect"
	"testing"
)

func TestBands(t *testing.T) {
	tests := []struct {
		name          string
		minY, maxY, h int
		want          []Band
	}{
		{"exact", 0, 7, 4, []Band{{0, 4}, {4, 8}}},
		{"remainder", 3, 12, 4, []Band{{3, 7}, {7, 11}, {11, 13}}},
		{"single row", 5, 5, 32, []Band{{5, 6}}},
		{"negative rows", -3, 1, 2, []Band{{-3, -1}, {-1, 1}, {1, 2}}},
		{"zero height", 0, 2, 0, []Band{{0, 1}, {1, 2}, {2, 3}}},
		{"empty", 4, 3, 8, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Bands(tt.minY, tt.maxY, tt.h)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Bands(%d, %d, %d) = %v, want %v", tt.minY, tt.maxY, tt.h, got, tt.want)
			}
			total := 0
			for _, b := range got {
				total += b.Height()
			}
			if tt.want != nil && total != tt.maxY-tt.minY+1 {
				t.Errorf("bands cover %d rows, want %d", total, tt.maxY-tt.minY+1)
			}
		})
	}
}
