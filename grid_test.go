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

import "testing"

// testGrid builds a small grid with two allocated rows covering words
// 2..4 and rows 10..13.
func testGrid() *cellGrid {
	g := &cellGrid{
		enc:        screenRect{x0: 64, x1: 159, y0: 10, y1: 13},
		mem0:       2,
		mem1:       4,
		rows:       make([][]uint32, 4),
		rowHasGray: make([]bool, 4),
	}
	g.rows[0] = []uint32{allGray, allGray, allGray}
	g.rows[2] = []uint32{allPOTW, allGray, allPOTW}
	g.rowHasGray[0] = true
	g.rowHasGray[2] = true
	return g
}

func TestGridWord(t *testing.T) {
	g := testGrid()

	if w := g.word(2, 10); w != allGray {
		t.Errorf("word(2,10) = %#x", w)
	}
	if w := g.word(3, 12); w != allGray {
		t.Errorf("word(3,12) = %#x", w)
	}

	// unallocated rows and positions outside the grid read as escaped
	for _, c := range []struct{ m, y int32 }{
		{2, 11}, // unallocated row
		{2, 9},  // above
		{2, 14}, // below
		{1, 10}, // left of mem0
		{5, 10}, // right of mem1
	} {
		if w := g.word(c.m, c.y); w != allPOTW {
			t.Errorf("word(%d,%d) = %#x, want allPOTW", c.m, c.y, w)
		}
	}
}

func TestGridSetWord(t *testing.T) {
	g := testGrid()
	g.setWord(3, 10, 0x12345678)
	if w := g.word(3, 10); w != 0x12345678 {
		t.Errorf("got %#x", w)
	}

	for _, c := range []struct{ m, y int32 }{
		{1, 10},
		{5, 10},
		{3, 9},
		{2, 11},
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("setWord(%d,%d) did not panic", c.m, c.y)
				}
			}()
			g.setWord(c.m, c.y, 0)
		}()
	}
}

func TestGridCellColor(t *testing.T) {
	g := testGrid()

	// word 3, bit 7 is pixel x = 3*32+7 = 103
	g.setWord(3, 12, 1<<7)
	if c := g.cellColor(103, 12); c != cellPOTW {
		t.Errorf("cellColor(103,12) = %d", c)
	}
	if c := g.cellColor(102, 12); c != cellGray {
		t.Errorf("cellColor(102,12) = %d", c)
	}
	if c := g.cellColor(104, 12); c != cellGray {
		t.Errorf("cellColor(104,12) = %d", c)
	}

	// outside the enclosure everything has escaped
	for _, c := range []struct{ x, y int32 }{
		{63, 12}, {160, 12}, {100, 9}, {100, 14},
	} {
		if got := g.cellColor(c.x, c.y); got != cellPOTW {
			t.Errorf("cellColor(%d,%d) = %d, want escaped", c.x, c.y, got)
		}
	}
}

func TestGridHasGray(t *testing.T) {
	g := testGrid()
	if !g.hasGray() {
		t.Error("grid with gray words reports none")
	}

	for _, row := range g.rows {
		for i := range row {
			row[i] = allPOTW
		}
	}
	if g.hasGray() {
		t.Error("fully escaped grid reports gray")
	}
}
