package engine

import "math/rand/v2"

// ChooseNumberTarget picks the cell an AI agent claims for a called number.
// Among unclaimed cells holding value it prefers the first (in board order)
// that touches one of agent's cells, else the first match.
func ChooseNumberTarget(b *Board, agent AgentID, value int) (int, bool) {
	first := -1
	for i := range b.Cells {
		c := b.Cells[i]
		if c.IsOwned() || int(c.Value) != value {
			continue
		}
		if HasAdjacentSameOwner(b, i, agent) {
			return i, true
		}
		if first < 0 {
			first = i
		}
	}
	return first, first >= 0
}

// ChooseBombTarget picks uniformly among cells owned by any agent other than
// agent. Shielded cells are candidates too; the bomb itself checks the live
// shield flag.
func ChooseBombTarget(b *Board, agent AgentID, rng *rand.Rand) (int, bool) {
	var candidates []int
	for i := range b.Cells {
		owner := b.Cells[i].Owner
		if owner != NoAgent && owner != agent {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return -1, false
	}
	return candidates[rng.IntN(len(candidates))], true
}

// ChooseShieldTarget returns agent's most recently claimed unshielded cell.
func ChooseShieldTarget(b *Board, agent AgentID) (int, bool) {
	best, bestSeq := -1, uint32(0)
	for _, i := range b.OwnedBy(agent) {
		c := b.Cells[i]
		if c.Shielded {
			continue
		}
		if best < 0 || c.Seq > bestSeq {
			best, bestSeq = i, c.Seq
		}
	}
	return best, best >= 0
}

// NoJackpot marks a board with no unclaimed cell left to hold the jackpot.
const NoJackpot = -1

// PickJackpot returns a uniformly random unclaimed cell, or NoJackpot if the
// board is full.
func PickJackpot(b *Board, rng *rand.Rand) int {
	free := b.Unclaimed()
	if len(free) == 0 {
		return NoJackpot
	}
	return free[rng.IntN(len(free))]
}
