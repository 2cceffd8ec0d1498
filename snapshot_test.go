// seehuhn.de/go/cellmap - predict refinement levels for Julia set cell mapping
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package cellmap

import (
	"image"
	"testing"
)

func TestGridImage(t *testing.T) {
	g := testGrid()
	img := gridImage(g)

	b := img.Bounds()
	if b.Dx() != 96 || b.Dy() != 4 {
		t.Fatalf("image size %dx%d, want 96x4", b.Dx(), b.Dy())
	}

	// row y0 = 10 of the grid is the bottom image row
	if v := img.GrayAt(0, 3).Y; v != 0 {
		t.Errorf("gray cell rendered as %d", v)
	}
	// row 11 is unallocated, everything escaped
	if v := img.GrayAt(0, 2).Y; v != 255 {
		t.Errorf("unallocated cell rendered as %d", v)
	}
	// row 12: words allPOTW, allGray, allPOTW
	if v := img.GrayAt(0, 1).Y; v != 255 {
		t.Errorf("escaped cell rendered as %d", v)
	}
	if v := img.GrayAt(32, 1).Y; v != 0 {
		t.Errorf("gray cell rendered as %d", v)
	}
}

func TestScaleImage(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 10, 5))
	dst := ScaleImage(img, 100)
	if b := dst.Bounds(); b.Dx() != 100 || b.Dy() != 50 {
		t.Errorf("scaled to %dx%d, want 100x50", b.Dx(), b.Dy())
	}

	big := image.NewGray(image.Rect(0, 0, 200, 200))
	if ScaleImage(big, 100) != big {
		t.Error("large image was rescaled")
	}
}
