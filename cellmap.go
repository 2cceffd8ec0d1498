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

// Package cellmap predicts, for polynomials p(z) = z^d + A*z + c, the
// smallest grid refinement level at which the interval-arithmetic cell
// mapping algorithm of Figueiredo et al. ("Images of Julia sets that
// you can trust", 2013) detects interior cells around an attracting
// cycle.  It locates the critical points of p, classifies their forward
// orbits, and runs a bit-packed fixed-point propagation over a local
// grid around each attracting cycle.
package cellmap

import (
	"errors"

	"seehuhn.de/go/geom/rect"
)

// Fatal analysis errors.  Root.InteriorFound == 0 for a cycle is not an
// error; it is the "not detectable" outcome.
var (
	// ErrNoCriticalPoints means Newton iteration located no roots of p'.
	ErrNoCriticalPoints = errors.New("cellmap: no critical points found")

	// ErrNoCriticalOrbits means no critical point produced a bounded
	// periodic orbit.
	ErrNoCriticalOrbits = errors.New("cellmap: no periodic critical orbit found")

	// ErrTooManyRoots means the critical point table overflowed.
	ErrTooManyRoots = errors.New("cellmap: too many roots")

	// ErrArenaExhausted means the grid allocator ran out of block
	// pointers.
	ErrArenaExhausted = errors.New("cellmap: arena exhausted")
)

// PeriodicPoint is one point of an attracting cycle.  The pixel ranges
// are rebuilt for every refinement level.
type PeriodicPoint struct {
	Z complex128

	mem0, mem1 int32 // word range of the padded neighbourhood
	y0, y1     int32 // row range of the padded neighbourhood
}

// Root describes one critical point and the cycle its forward orbit
// falls into.  Cycle is empty for escaping, non-periodic and repelling
// orbits.
type Root struct {
	// Attractor is the critical point itself.
	Attractor complex128

	// Cycle lists the points of the attracting cycle in orbit order.
	Cycle []PeriodicPoint

	// Multiplier is |prod p'(z_k)| over the cycle.
	Multiplier float64

	// CycleNumber is the 1-based number among accepted cycles,
	// 0 for discarded (repelling) ones.
	CycleNumber int

	// Basin is the complex rectangle covered by the local grid at the
	// last analyzed level.
	Basin rect.Rect

	// InteriorFound is the smallest level at which interior cells were
	// detected, 0 if none.
	InteriorFound int
}

// Overlapping reports whether the basin rectangles of two different
// cycles with detected interior overlap.  In that case black cells
// found for one cycle may actually belong to the other.
func Overlapping(roots []*Root) bool {
	for i, ri := range roots {
		if len(ri.Cycle) == 0 || ri.InteriorFound <= 0 {
			continue
		}
		for k, rk := range roots {
			if i == k || len(rk.Cycle) == 0 || rk.InteriorFound <= 0 {
				continue
			}
			if ri.Basin.URx < rk.Basin.LLx || ri.Basin.LLx > rk.Basin.URx ||
				ri.Basin.URy < rk.Basin.LLy || ri.Basin.LLy > rk.Basin.URy {
				continue
			}
			return true
		}
	}
	return false
}
