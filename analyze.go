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
	"fmt"
	"image"
	"io"

	"github.com/pkg/errors"

	"seehuhn.de/go/cellmap/interval"
	"seehuhn.de/go/cellmap/poly"
)

// Default analysis parameters.
const (
	// DefaultEncw is the neighbourhood half-width when none is given.
	DefaultEncw = 128

	// MinEncw is the smallest usable half-width; below this value the
	// padded neighbourhoods are too small for the image of a cell to
	// stay inside them even very close to the attractor.
	MinEncw = 32

	// DefaultLevel0 and DefaultLevel1 bound the refinement search when
	// no range is given.
	DefaultLevel0 = 10
	DefaultLevel1 = 24

	// MinLevel and MaxLevel are the hard bounds on refinement levels.
	// Below 8 the grid is too coarse to separate cycle points; above
	// 31 pixel coordinates overflow int32.
	MinLevel = 8
	MaxLevel = 31
)

// An Analyzer predicts the smallest refinement level at which a cell
// mapping of the filled-in Julia set of one polynomial detects
// interior cells.  The zero value is not usable; at least Form must
// be set.  All other fields default as documented.
type Analyzer struct {
	// Form selects the polynomial family.
	Form interval.Form

	// Params holds the seed c and coefficient A.
	Params interval.Params

	// Encw is the neighbourhood half-width in pixels around each
	// periodic point.  A negative value analyzes the whole enclosing
	// rectangle (all cells start gray) using the absolute value as
	// width.  Zero selects DefaultEncw; magnitudes below MinEncw are
	// raised to MinEncw.
	Encw int

	// Level0 and Level1 bound the refinement level search.  Both zero
	// selects the default range; values are clamped to
	// [MinLevel, MaxLevel].
	Level0, Level1 int

	// Periods, if nonzero, restricts analysis to cycles whose length
	// lies in [Periods[0], Periods[1]].
	Periods [2]int

	// Report receives the human-readable analysis protocol.  A nil
	// writer discards it.
	Report io.Writer

	// Snapshot, if non-nil, is called after propagation at every
	// refinement level with a one-pixel-per-cell image of the local
	// grid.
	Snapshot func(level int, img *image.Gray)
}

// Run performs the full analysis: locate critical points, classify
// their orbits, and search the refinement range for each accepted
// cycle.  The returned roots describe every critical point, with
// Root.InteriorFound holding the per-cycle result.
func (a *Analyzer) Run() ([]*Root, error) {
	w := a.Report
	if w == nil {
		w = io.Discard
	}

	encw := a.Encw
	startWith := allPOTW
	if encw < 0 {
		encw = -encw
		startWith = allGray
	} else if encw == 0 {
		encw = DefaultEncw
	}
	encw = max(encw, MinEncw)

	level0, level1 := a.Level0, a.Level1
	if level0 == 0 && level1 == 0 {
		level0, level1 = DefaultLevel0, DefaultLevel1
	}
	level0 = min(max(level0, MinLevel), MaxLevel)
	level1 = min(max(level1, MinLevel), MaxLevel)

	p := interval.Polynomial(a.Form, a.Params)
	dp := p.Derivative()
	ddp := dp.Derivative()

	r := p.LagrangeBound()

	fmt.Fprintf(w, "%s\n", p)
	fmt.Fprintf(w, "ENCW=%d pixels\n", encw)
	if startWith == allGray {
		fmt.Fprintf(w, "  per cycle: analyzing whole rectangle around all periodic points\n")
	} else {
		fmt.Fprintf(w, "  per cycle: analyzing small neighbourhoods around periodic points\n")
	}
	fmt.Fprintf(w, "filled-in set is contained in %.0f-square\n", r)

	cps, err := findCriticalPoints(dp, ddp, r)
	if err != nil {
		return nil, errors.Wrap(err, "critical points")
	}
	for _, cp := range cps {
		fmt.Fprintf(w, "critical point: %s\n", poly.FormatComplex(cp))
	}

	roots, err := classifyOrbits(p, dp, cps, r)
	if err != nil {
		return roots, errors.Wrap(err, "critical orbits")
	}
	for _, root := range roots {
		if len(root.Cycle) == 0 {
			continue
		}
		fmt.Fprintf(w, "cycle #%d |multiplier|=%.5g len=%d:",
			root.CycleNumber, root.Multiplier, len(root.Cycle))
		for _, pp := range root.Cycle {
			fmt.Fprintf(w, " %s ->", poly.FormatComplex(pp.Z))
		}
		last := root.Cycle[len(root.Cycle)-1].Z
		fmt.Fprintf(w, " (reentering %s)\n", poly.FormatComplex(p.Eval(last)))
	}

	pr := &propagator{
		eval:      interval.New(a.Form, a.Params),
		complete:  r,
		encw:      int32(encw),
		startWith: startWith,
	}

	for _, root := range roots {
		n := len(root.Cycle)
		if n == 0 {
			continue
		}
		if a.Periods[0] > 0 && (n < a.Periods[0] || n > a.Periods[1]) {
			continue
		}

		fmt.Fprintf(w, "\nanalyzing cycle #%d (period %d) ...\n", root.CycleNumber, n)
		found, err := pr.findInteriorLevel(root, level0, level1, a.Snapshot)
		if err != nil {
			return roots, errors.Wrapf(err, "cycle #%d", root.CycleNumber)
		}
		if found > 0 {
			fmt.Fprintf(w, "  black present at refinement level %d\n", found)
		} else {
			fmt.Fprintf(w, "  NO black found in levels %d..%d at current parameters\n",
				level0, level1)
		}
	}

	if Overlapping(roots) {
		fmt.Fprintf(w, "\nCAVE: enclosures of periodic points of different cycles overlap.\n")
		fmt.Fprintf(w, "Black detected for a specific cycle might actually belong to a different one.\n")
	}

	return roots, nil
}
