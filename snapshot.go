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

	"golang.org/x/image/draw"
)

// gridImage renders the current enclosure, one pixel per cell.  Gray
// cells are black, potentially white cells (including unallocated
// rows) are white.  The image y axis points down, so row enc.y1 of the
// grid becomes the top image row.
func gridImage(g *cellGrid) *image.Gray {
	w := int(g.enc.x1 - g.enc.x0 + 1)
	h := int(g.enc.y1 - g.enc.y0 + 1)
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := g.enc.y0; y <= g.enc.y1; y++ {
		base := int(g.enc.y1-y) * img.Stride
		for x := g.enc.x0; x <= g.enc.x1; x++ {
			if g.cellColor(x, y) == cellPOTW {
				img.Pix[base+int(x-g.enc.x0)] = 255
			}
		}
	}
	return img
}

// ScaleImage enlarges a snapshot by the largest integer factor that
// keeps its longer side at most size pixels, using nearest neighbour
// interpolation to keep cell boundaries sharp.  Images already at
// least that large are returned unchanged.
func ScaleImage(img *image.Gray, size int) *image.Gray {
	b := img.Bounds()
	long := max(b.Dx(), b.Dy())
	if long >= size || long == 0 {
		return img
	}
	f := size / long
	dst := image.NewGray(image.Rect(0, 0, b.Dx()*f, b.Dy()*f))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
