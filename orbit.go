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
	"math/cmplx"

	"seehuhn.de/go/cellmap/poly"
)

// multiplierSlack tolerates neutral cycles whose computed multiplier
// slightly exceeds 1 due to rounding.
const multiplierSlack = 1.00001

// classifyOrbits iterates p forward from every critical point and
// extracts the periodic cycles the bounded orbits fall into.  Orbits
// that leave the disk of radius r, do not close within
// poly.MaxIterations, or re-enter a cycle already found by an earlier
// critical point are discarded.  Cycles with multiplier magnitude
// above multiplierSlack are repelling: their Root is kept without a
// cycle, so the caller can tell "periodic but repelling" apart from
// "nothing periodic at all".
func classifyOrbits(p, dp *poly.Polynomial, cps []complex128, r float64) ([]*Root, error) {
	escapeQ := r * r
	orbit := make([]complex128, 0, poly.MaxIterations)
	cycleNumber := 1
	found := 0

	var roots []*Root
	for _, cp := range cps {
		root := &Root{Attractor: cp}
		roots = append(roots, root)

		orbit = orbit[:0]
		z := cp
		escaped := false
		for range poly.MaxIterations {
			orbit = append(orbit, z)
			if poly.NormSq(z) > escapeQ {
				escaped = true
				break
			}
			z = p.Eval(z)
		}
		if escaped {
			continue
		}

		// Bounded orbit.  Scan backwards for the first earlier point
		// coinciding with the last one; the cycle is everything in
		// between.
		last := orbit[len(orbit)-1]
		cycleStart := -1
		for i := len(orbit) - 2; i >= 0; i-- {
			if poly.ApproxEqual(orbit[i], last) {
				cycleStart = i
				break
			}
		}
		if cycleStart < 0 {
			continue // orbit never settled into a cycle
		}

		// An earlier critical point may have fallen into the same
		// cycle already.
		duplicate := false
		for _, prev := range roots[:len(roots)-1] {
			for _, pp := range prev.Cycle {
				if poly.ApproxEqual(pp.Z, last) {
					duplicate = true
					break
				}
			}
			if duplicate {
				break
			}
		}
		if duplicate {
			continue
		}

		cycle := orbit[cycleStart+1:]
		root.Cycle = make([]PeriodicPoint, len(cycle))
		multiplier := complex(1, 0)
		for i, w := range cycle {
			root.Cycle[i].Z = w
			multiplier *= dp.Eval(w)
		}
		root.Multiplier = cmplx.Abs(multiplier)
		found++

		if root.Multiplier > multiplierSlack {
			root.Cycle = nil
			continue
		}
		root.CycleNumber = cycleNumber
		cycleNumber++
	}

	if found == 0 {
		return nil, ErrNoCriticalOrbits
	}
	return roots, nil
}
