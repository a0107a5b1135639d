package engine

import (
	"fmt"
	"sort"
)

// Neighbors returns the 4-directional neighbors of idx. Left and right
// neighbors never wrap onto another row.
func Neighbors(idx int) []int {
	if !InBounds(idx) {
		return nil
	}
	r, c := Row(idx), Col(idx)
	out := make([]int, 0, 4)
	for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		if n := Index(r+d[0], c+d[1]); n >= 0 {
			out = append(out, n)
		}
	}
	return out
}

// HasAdjacentSameOwner reports whether any neighbor of idx is owned by agent.
func HasAdjacentSameOwner(b *Board, idx int, agent AgentID) bool {
	if agent == NoAgent {
		return false
	}
	for _, n := range Neighbors(idx) {
		if b.Cells[n].Owner == agent {
			return true
		}
	}
	return false
}

// ---------------------------------------------------------------------------
// Forts
// ---------------------------------------------------------------------------

// FortID is the sorted 4-cell tuple of a 2×2 block.
type FortID [4]int

func (f FortID) String() string {
	return fmt.Sprintf("%d-%d-%d-%d", f[0], f[1], f[2], f[3])
}

// fortAt returns the fort whose top-left corner is (row, col).
func fortAt(row, col int) (FortID, bool) {
	if row < 0 || col < 0 || row+1 >= BoardSize || col+1 >= BoardSize {
		return FortID{}, false
	}
	tl := Index(row, col)
	return FortID{tl, tl + 1, tl + BoardSize, tl + BoardSize + 1}, true
}

// FortSet is the set of forts recorded during a match.
type FortSet map[FortID]struct{}

// Add records a fort.
func (s FortSet) Add(f FortID) { s[f] = struct{}{} }

// Contains reports whether f has been recorded.
func (s FortSet) Contains(f FortID) bool {
	_, ok := s[f]
	return ok
}

// Len returns the number of forts.
func (s FortSet) Len() int { return len(s) }

// Sorted returns the forts ordered by their cell tuples.
func (s FortSet) Sorted() []FortID {
	out := make([]FortID, 0, len(s))
	for f := range s {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool {
		for k := 0; k < 4; k++ {
			if out[i][k] != out[j][k] {
				return out[i][k] < out[j][k]
			}
		}
		return false
	})
	return out
}

// DetectNewForts checks the four 2×2 quadrants that contain idx and returns
// those fully owned by agent and not already in known. known is not
// modified.
func DetectNewForts(b *Board, idx int, agent AgentID, known FortSet) []FortID {
	if !InBounds(idx) || agent == NoAgent {
		return nil
	}
	r, c := Row(idx), Col(idx)
	var found []FortID
	for _, d := range [4][2]int{{-1, -1}, {-1, 0}, {0, -1}, {0, 0}} {
		f, ok := fortAt(r+d[0], c+d[1])
		if !ok || known.Contains(f) {
			continue
		}
		owned := true
		for _, cell := range f {
			if b.Cells[cell].Owner != agent {
				owned = false
				break
			}
		}
		if owned {
			found = append(found, f)
		}
	}
	return found
}
