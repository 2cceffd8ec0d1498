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
	"math"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/cellmap/interval"
)

// propagator runs the cell mapping fixed point for one cycle at a
// time.  The caller sets the public-equivalent configuration once; the
// grid and arena are rebuilt per refinement level and reused across
// cycles.
type propagator struct {
	eval      interval.Evaluator
	complete  float64 // the global square is [-complete,complete]^2
	encw      int32   // neighbourhood half-width in pixels
	startWith uint32  // initial word value for allocated rows

	scalePix float64   // pixels per unit
	scaleRng float64   // units per pixel
	local    rect.Rect // complex extent of the current enclosure

	arena wordArena
	grid  cellGrid
}

// pixel returns the screen coordinate of the pixel containing v.  A
// value on an edge or corner belongs to the pixel above/right of it.
func (pr *propagator) pixel(v float64) int32 {
	return int32(math.Floor((v + pr.complete) * pr.scalePix))
}

// findInteriorLevel searches levels level0..level1 for the smallest
// one at which gray cells survive propagation around root's cycle.
// It returns 0 if none does.  root.Basin is updated for every level
// tried; root.InteriorFound receives the result.
func (pr *propagator) findInteriorLevel(root *Root, level0, level1 int, snapshot func(level int, img *image.Gray)) (int, error) {
	root.InteriorFound = 0
	defer pr.arena.freeAll()

	for level := level0; level <= level1; level++ {
		if err := pr.buildGrid(root, level); err != nil {
			return 0, err
		}
		pr.propagate()
		if snapshot != nil {
			snapshot(level, gridImage(&pr.grid))
		}
		if pr.grid.hasGray() {
			root.InteriorFound = level
			return level, nil
		}
	}
	return 0, nil
}

// buildGrid allocates and primes the local grid for one refinement
// level.  Every periodic point is mapped to its pixel, padded by encw
// in all directions and clamped to the screen; the union of the padded
// rectangles is the enclosure.  Rows intersecting at least one padded
// rectangle are allocated and initialized to startWith, then the
// padded rectangles themselves are stamped all gray so that
// propagation starts from known bounded cells.
func (pr *propagator) buildGrid(root *Root, level int) error {
	size := int32(1) << level
	maxMem := size >> wordShift
	pr.scaleRng = 2 * pr.complete / float64(size)
	pr.scalePix = float64(size) / (2 * pr.complete)

	enc := screenRect{x0: size, x1: 0, y0: size, y1: 0}
	for k := range root.Cycle {
		pp := &root.Cycle[k]
		xx := pr.pixel(real(pp.Z))
		yy := pr.pixel(imag(pp.Z))
		scr := screenRect{
			x0: clampPix(xx-pr.encw, size),
			x1: clampPix(xx+pr.encw, size),
			y0: clampPix(yy-pr.encw, size),
			y1: clampPix(yy+pr.encw, size),
		}

		enc.x0 = min(enc.x0, scr.x0)
		enc.x1 = max(enc.x1, scr.x1)
		enc.y0 = min(enc.y0, scr.y0)
		enc.y1 = max(enc.y1, scr.y1)

		pp.mem0 = scr.x0 >> wordShift
		pp.mem1 = scr.x1 >> wordShift
		if pp.mem1 >= maxMem {
			panic(fmt.Sprintf("cellmap: word index %d beyond screen at level %d", pp.mem1, level))
		}
		pp.y0 = scr.y0
		pp.y1 = scr.y1
	}

	mem0 := enc.x0 >> wordShift
	mem1 := enc.x1 >> wordShift
	if mem1 >= maxMem {
		panic(fmt.Sprintf("cellmap: enclosure word index %d beyond screen at level %d", mem1, level))
	}

	pr.local = rect.Rect{
		LLx: float64(enc.x0)*pr.scaleRng - pr.complete,
		URx: float64(enc.x1+1)*pr.scaleRng - pr.complete,
		LLy: float64(enc.y0)*pr.scaleRng - pr.complete,
		URy: float64(enc.y1+1)*pr.scaleRng - pr.complete,
	}
	root.Basin = pr.local

	numRows := int(enc.y1 - enc.y0 + 1)
	numWords := int(mem1 - mem0 + 1)

	g := &pr.grid
	g.enc = enc
	g.mem0 = mem0
	g.mem1 = mem1
	g.rowHasGray = make([]bool, numRows)
	for k := range root.Cycle {
		pp := &root.Cycle[k]
		for y := pp.y0; y <= pp.y1; y++ {
			g.rowHasGray[y-enc.y0] = true
		}
	}

	// Row slices from the previous level point into freed arena
	// blocks; they must all be rebuilt before any access.
	pr.arena.freeAll()
	g.rows = make([][]uint32, numRows)
	for i := range g.rows {
		if !g.rowHasGray[i] {
			continue
		}
		row, err := pr.arena.alloc(numWords)
		if err != nil {
			return err
		}
		for m := range row {
			row[m] = pr.startWith
		}
		g.rows[i] = row
	}

	for k := range root.Cycle {
		pp := &root.Cycle[k]
		for y := pp.y0; y <= pp.y1; y++ {
			for m := pp.mem0; m <= pp.mem1; m++ {
				g.setWord(m, y, allGray)
			}
		}
	}
	return nil
}

func clampPix(v, size int32) int32 {
	if v < 0 {
		return 0
	}
	if v >= size {
		return size - 1
	}
	return v
}

// propagate runs the fixed point: a gray cell turns potentially white
// when the bounding box of its image escapes the local enclosure or
// the global square, or touches a cell already potentially white.
// Potentially white is absorbing per cell, so the fixed point does not
// depend on the sweep order.  Rows whose words are all potentially
// white at the start of a sweep are dropped from further sweeps.
func (pr *propagator) propagate() {
	g := &pr.grid
	var a rect.Rect

	changed := true
	for changed {
		changed = false
		for y := g.enc.y0; y <= g.enc.y1; y++ {
			if !g.rowHasGray[y-g.enc.y0] {
				continue
			}
			grayThere := false

			a.LLy = float64(y)*pr.scaleRng - pr.complete
			a.URy = a.LLy + pr.scaleRng

			for m := g.mem0; m <= g.mem1; m++ {
				ff := g.word(m, y)
				if ff == allPOTW {
					continue
				}
				fNew := ff
				fChanged := false
				xCoord0 := m << wordShift

				for bit := int32(0); bit < 32; bit++ {
					cur := byte(ff) & 1
					ff >>= 1
					if cur == cellPOTW {
						continue
					}
					grayThere = true

					a.LLx = float64(xCoord0+bit)*pr.scaleRng - pr.complete
					a.URx = a.LLx + pr.scaleRng

					fa := pr.eval(a)

					if fa.LLx < pr.local.LLx || fa.URx > pr.local.URx ||
						fa.LLy < pr.local.LLy || fa.URy > pr.local.URy ||
						fa.LLx < -pr.complete || fa.URx > pr.complete ||
						fa.LLy < -pr.complete || fa.URy > pr.complete {
						fChanged = true
						fNew |= 1 << uint(bit)
						continue
					}

					scr := screenRect{
						x0: pr.pixel(fa.LLx),
						x1: pr.pixel(fa.URx),
						y0: pr.pixel(fa.LLy),
						y1: pr.pixel(fa.URy),
					}
					hits := false
					for by := scr.y0; by <= scr.y1 && !hits; by++ {
						for bx := scr.x0; bx <= scr.x1; bx++ {
							if g.cellColor(bx, by) == cellPOTW {
								hits = true
								break
							}
						}
					}
					if hits {
						fChanged = true
						fNew |= 1 << uint(bit)
					}
				}

				if fChanged {
					changed = true
					g.setWord(m, y, fNew)
				}
			}

			if !grayThere {
				g.rowHasGray[y-g.enc.y0] = false
			}
		}
	}
}

// hasGray reports whether any allocated cell survived as gray.
func (g *cellGrid) hasGray() bool {
	for _, row := range g.rows {
		if row == nil {
			continue
		}
		for _, w := range row {
			if w != allPOTW {
				return true
			}
		}
	}
	return false
}
