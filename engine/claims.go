package engine

// AnyValue skips the value check in TryClaim.
const AnyValue = 0

// ClaimReason explains a TryClaim outcome.
type ClaimReason uint8

const (
	ClaimOK            ClaimReason = iota // 0
	ClaimOutOfRange                       // 1
	ClaimTaken                            // 2
	ClaimValueMismatch                    // 3
)

func (r ClaimReason) String() string {
	switch r {
	case ClaimOK:
		return "ok"
	case ClaimOutOfRange:
		return "out_of_range"
	case ClaimTaken:
		return "taken"
	case ClaimValueMismatch:
		return "value_mismatch"
	}
	return "unknown"
}

// ClaimResult is the outcome of a single TryClaim.
type ClaimResult struct {
	Accepted   bool
	PointsBase int
	Reason     ClaimReason
}

// TryClaim assigns the cell at idx to agent if it is unowned and its value
// equals expected (AnyValue skips the check). Once a claim commits, every
// later call for the same cell reports Accepted=false until a bomb clears it.
func (b *Board) TryClaim(idx int, agent AgentID, expected int, basePoints int) ClaimResult {
	if !InBounds(idx) {
		return ClaimResult{Reason: ClaimOutOfRange}
	}
	c := &b.Cells[idx]
	if c.IsOwned() {
		return ClaimResult{Reason: ClaimTaken}
	}
	if expected != AnyValue && int(c.Value) != expected {
		return ClaimResult{Reason: ClaimValueMismatch}
	}

	b.nextSeq++
	c.Owner = agent
	c.Shielded = false
	c.Seq = b.nextSeq
	return ClaimResult{Accepted: true, PointsBase: basePoints, Reason: ClaimOK}
}

// ApplyBomb clears the owner of an owned, unshielded cell.
// The shield flag is read from the live board at call time.
func (b *Board) ApplyBomb(idx int) bool {
	if !InBounds(idx) {
		return false
	}
	c := &b.Cells[idx]
	if !c.IsOwned() || c.Shielded {
		return false
	}
	c.Owner = NoAgent
	c.Seq = 0
	return true
}

// ApplyShield protects a cell owned by agent that is not already shielded.
func (b *Board) ApplyShield(idx int, agent AgentID) bool {
	if !InBounds(idx) {
		return false
	}
	c := &b.Cells[idx]
	if c.Owner != agent || agent == NoAgent || c.Shielded {
		return false
	}
	c.Shielded = true
	return true
}
