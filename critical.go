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
	"seehuhn.de/go/cellmap/poly"
)

const (
	// maxZeros caps the critical point table.
	maxZeros = 1024

	// seedsPerEdge is the Newton seed resolution along each edge of the
	// seeding square.
	seedsPerEdge = 1024
)

// findCriticalPoints locates the roots of dp (the critical points of
// the iterated polynomial) inside the Lagrange square of radius r.
// Newton seeds are placed on the perimeter of the square [-3r,3r]^2,
// far from the roots, where the Newton dynamics are tame (after
// Hubbard, Schleicher, Sutherland, "How to find all roots of complex
// polynomials", 2001).  The walk stops once deg(dp) distinct roots
// have been found.
func findCriticalPoints(dp, ddp *poly.Polynomial, r float64) ([]complex128, error) {
	lo := -3 * r
	sk := (3*r - lo) / seedsPerEdge

	var roots []complex128

	// try reports whether the walk is complete.
	try := func(x, y int32) (bool, error) {
		seed := complex(float64(x)*sk+lo, float64(y)*sk+lo)
		z, it := poly.Newton(dp, ddp, seed)
		if it <= 0 {
			return false, nil
		}
		for _, w := range roots {
			if poly.ApproxEqual(w, z) {
				return len(roots) >= dp.Degree(), nil
			}
		}
		if len(roots) > maxZeros-8 {
			return true, ErrTooManyRoots
		}
		roots = append(roots, z)
		return len(roots) >= dp.Degree(), nil
	}

	// The four edges of the square, walked left, top, right, bottom.
	edges := [4][4]int32{
		{0, 0, 0, seedsPerEdge - 1},
		{0, seedsPerEdge - 1, seedsPerEdge - 1, seedsPerEdge - 1},
		{seedsPerEdge - 1, seedsPerEdge - 1, seedsPerEdge - 1, 0},
		{seedsPerEdge - 1, 0, 0, 0},
	}
	for _, e := range edges {
		x0, y0, x1, y1 := e[0], e[1], e[2], e[3]
		xd, yd := int32(1), int32(1)
		if x0 > x1 {
			xd = -1
		}
		if y0 > y1 {
			yd = -1
		}
		for y := y0; ; y += yd {
			for x := x0; ; x += xd {
				done, err := try(x, y)
				if err != nil {
					return nil, err
				}
				if done {
					return roots, nil
				}
				if x == x1 {
					break
				}
			}
			if y == y1 {
				break
			}
		}
	}

	if len(roots) == 0 {
		return nil, ErrNoCriticalPoints
	}
	return roots, nil
}
