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

import "fmt"

// wordArena is a bump allocator for grid rows.  Rows are handed out
// from large blocks and only released collectively via freeAll, at the
// start of the next refinement level.  All row slices become invalid
// at that point.
type wordArena struct {
	blocks  [][]uint32
	current []uint32
	free    int
}

const (
	// arenaBlockWords is the number of 32-bit words per block (64 MiB).
	arenaBlockWords = 1 << 24

	// maxArenaBlocks caps the block pointer table.
	maxArenaBlocks = 2048
)

// alloc returns a slice of n zeroed words from the arena.
func (a *wordArena) alloc(n int) ([]uint32, error) {
	if n > arenaBlockWords {
		panic(fmt.Sprintf("cellmap: arena request of %d words exceeds block size", n))
	}
	if a.current == nil || a.free+n > len(a.current) {
		if len(a.blocks) >= maxArenaBlocks-8 {
			return nil, ErrArenaExhausted
		}
		a.current = make([]uint32, arenaBlockWords)
		a.blocks = append(a.blocks, a.current)
		a.free = 0
	}
	row := a.current[a.free : a.free+n : a.free+n]
	a.free += n
	return row, nil
}

// freeAll drops every block.  Previously returned rows must not be
// used afterwards.
func (a *wordArena) freeAll() {
	a.blocks = nil
	a.current = nil
	a.free = 0
}
