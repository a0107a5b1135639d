// Package engine implements the Conquest Arena board rules.
//
// Everything here is pure and deterministic given its inputs: the board
// (claims, bombs, shields), adjacency and fort analysis, scoring and the
// event draw. Nothing in this package is safe for concurrent use; the
// match controller serializes every call behind its own lock.
package engine

import "math/rand/v2"

// Board is the 10×10 grid in row-major order.
type Board struct {
	Cells   [NumCells]Cell
	nextSeq uint32
}

// NewBoard builds an unclaimed board with values drawn uniformly from
// [MinValue, MaxValue].
func NewBoard(rng *rand.Rand) Board {
	var values [NumCells]uint8
	for i := range values {
		values[i] = uint8(MinValue + rng.IntN(MaxValue-MinValue+1))
	}
	return BoardFromValues(values)
}

// BoardFromValues builds an unclaimed board with fixed values.
func BoardFromValues(values [NumCells]uint8) Board {
	var b Board
	for i, v := range values {
		b.Cells[i] = Cell{Value: v, Owner: NoAgent}
	}
	return b
}

// ---------------------------------------------------------------------------
// Geometry
// ---------------------------------------------------------------------------

// Row returns the row of a cell index.
func Row(idx int) int { return idx / BoardSize }

// Col returns the column of a cell index.
func Col(idx int) int { return idx % BoardSize }

// Index returns the cell index for (row, col), or -1 when off the board.
func Index(row, col int) int {
	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		return -1
	}
	return row*BoardSize + col
}

// InBounds reports whether idx names a cell.
func InBounds(idx int) bool { return idx >= 0 && idx < NumCells }

// ---------------------------------------------------------------------------
// Query methods
// ---------------------------------------------------------------------------

// Cell returns a copy of the cell at idx.
func (b *Board) Cell(idx int) Cell { return b.Cells[idx] }

// Unclaimed returns the indices of every unowned cell in board order.
func (b *Board) Unclaimed() []int {
	out := make([]int, 0, NumCells)
	for i := range b.Cells {
		if !b.Cells[i].IsOwned() {
			out = append(out, i)
		}
	}
	return out
}

// OwnedBy returns the indices of agent's cells in board order.
func (b *Board) OwnedBy(agent AgentID) []int {
	var out []int
	for i := range b.Cells {
		if b.Cells[i].Owner == agent {
			out = append(out, i)
		}
	}
	return out
}

// CountOwned returns how many cells agent owns.
func (b *Board) CountOwned(agent AgentID) int {
	n := 0
	for i := range b.Cells {
		if b.Cells[i].Owner == agent {
			n++
		}
	}
	return n
}
