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

package interval

import (
	"testing"

	"seehuhn.de/go/geom/rect"
)

// TestEvaluatorSoundness checks that the image of every sample point of
// a cell lies inside the bounding box returned for that cell.  Cells
// are grid-aligned, the way the propagator generates them, so they
// never straddle a coordinate axis.
func TestEvaluatorSoundness(t *testing.T) {
	params := PointSeed(complex(-0.7578125, 0.015625), complex(0.125, -0.0625))

	// cell size 2^-7, lower-left corners on the cell grid
	const h = 1.0 / 128
	corners := []struct{ x, y float64 }{
		{0, 0},
		{-h, -h},
		{0.5, 0.25},
		{-1, 0},
		{-0.25, -1.5},
		{1, 1},
		{-2, 2 - h},
	}

	const eps = 1e-12
	for f := Z2C; f < numForms; f++ {
		t.Run(f.String(), func(t *testing.T) {
			eval := New(f, params)
			p := Polynomial(f, params)
			for _, c := range corners {
				a := rect.Rect{
					LLx: c.x, URx: c.x + h,
					LLy: c.y, URy: c.y + h,
				}
				fa := eval(a)
				for i := 0; i <= 4; i++ {
					for k := 0; k <= 4; k++ {
						z := complex(
							a.LLx+float64(i)/4*h,
							a.LLy+float64(k)/4*h,
						)
						w := p.Eval(z)
						if real(w) < fa.LLx-eps || real(w) > fa.URx+eps ||
							imag(w) < fa.LLy-eps || imag(w) > fa.URy+eps {
							t.Errorf("cell (%g,%g): p(%v) = %v outside %v",
								c.x, c.y, z, w, fa)
						}
					}
				}
			}
		})
	}
}

// TestEvaluatorPoint checks that a degenerate cell maps to a rectangle
// containing exactly the image point.
func TestEvaluatorPoint(t *testing.T) {
	params := PointSeed(complex(-1, 0), 0)
	for f := Z2C; f < numForms; f++ {
		eval := New(f, params)
		p := Polynomial(f, params)
		z := complex(0.375, -0.625)
		a := rect.Rect{LLx: real(z), URx: real(z), LLy: imag(z), URy: imag(z)}
		fa := eval(a)
		w := p.Eval(z)
		const eps = 1e-12
		if real(w) < fa.LLx-eps || real(w) > fa.URx+eps ||
			imag(w) < fa.LLy-eps || imag(w) > fa.URy+eps {
			t.Errorf("%v: p(%v) = %v outside %v", f, z, w, fa)
		}
	}
}
