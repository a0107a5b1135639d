package engine

import (
	"math/rand/v2"
	"sync"
	"testing"
)

// helper: a board whose cell i holds value (i % 90) + 1.
func newTestBoard() Board {
	var values [NumCells]uint8
	for i := range values {
		values[i] = uint8(i%MaxValue) + 1
	}
	return BoardFromValues(values)
}

// TestNewBoardValuesInRange verifies every generated value lies in [1, 90].
func TestNewBoardValuesInRange(t *testing.T) {
	b := NewBoard(rand.New(rand.NewPCG(1, 2)))
	for i, c := range b.Cells {
		if c.Value < MinValue || c.Value > MaxValue {
			t.Fatalf("cell %d value %d out of range", i, c.Value)
		}
		if c.IsOwned() {
			t.Fatalf("cell %d owned on a fresh board", i)
		}
	}
}

// TestTryClaimScenario: cell 23 holds 7, claim with expected 7 is accepted.
func TestTryClaimScenario(t *testing.T) {
	b := newTestBoard()
	b.Cells[23].Value = 7

	res := b.TryClaim(23, 0, 7, 10)
	if !res.Accepted {
		t.Fatalf("claim rejected: %v", res.Reason)
	}
	if res.PointsBase != 10 {
		t.Errorf("PointsBase = %d, want 10", res.PointsBase)
	}
	if b.Cells[23].Owner != 0 {
		t.Errorf("owner = %d, want 0", b.Cells[23].Owner)
	}
}

func TestTryClaimRejections(t *testing.T) {
	b := newTestBoard()
	if res := b.TryClaim(-1, 0, AnyValue, 10); res.Accepted || res.Reason != ClaimOutOfRange {
		t.Errorf("negative index: %+v", res)
	}
	if res := b.TryClaim(NumCells, 0, AnyValue, 10); res.Accepted || res.Reason != ClaimOutOfRange {
		t.Errorf("index past end: %+v", res)
	}
	// Cell 5 holds 6.
	if res := b.TryClaim(5, 0, 7, 10); res.Accepted || res.Reason != ClaimValueMismatch {
		t.Errorf("value mismatch: %+v", res)
	}
	if b.Cells[5].IsOwned() {
		t.Error("rejected claim changed ownership")
	}
}

// TestTryClaimSecondCallRejected: a committed cell never accepts again.
func TestTryClaimSecondCallRejected(t *testing.T) {
	b := newTestBoard()
	if !b.TryClaim(0, 1, AnyValue, 10).Accepted {
		t.Fatal("first claim should succeed")
	}
	for _, agent := range []AgentID{1, 2} {
		res := b.TryClaim(0, agent, AnyValue, 10)
		if res.Accepted || res.Reason != ClaimTaken {
			t.Errorf("second claim by %d: %+v", agent, res)
		}
	}
	if b.Cells[0].Owner != 1 {
		t.Errorf("owner changed to %d", b.Cells[0].Owner)
	}
}

// TestTryClaimSerializedRace races many goroutines over one cell behind a
// mutex, the way the match controller calls the board.
func TestTryClaimSerializedRace(t *testing.T) {
	for round := 0; round < 50; round++ {
		b := newTestBoard()
		var mu sync.Mutex
		var wg sync.WaitGroup
		accepted := make(chan AgentID, 64)
		for i := 0; i < 64; i++ {
			wg.Add(1)
			go func(agent AgentID) {
				defer wg.Done()
				mu.Lock()
				res := b.TryClaim(42, agent, AnyValue, 10)
				mu.Unlock()
				if res.Accepted {
					accepted <- agent
				}
			}(AgentID(i % MaxAgents))
		}
		wg.Wait()
		close(accepted)
		if n := len(accepted); n != 1 {
			t.Fatalf("round %d: %d claims accepted, want exactly 1", round, n)
		}
	}
}

func TestClaimSeqIncreases(t *testing.T) {
	b := newTestBoard()
	b.TryClaim(3, 0, AnyValue, 10)
	b.TryClaim(9, 0, AnyValue, 10)
	if b.Cells[9].Seq <= b.Cells[3].Seq {
		t.Errorf("Seq not increasing: %d then %d", b.Cells[3].Seq, b.Cells[9].Seq)
	}
}

// TestApplyBomb: clears an owned cell once, then reports nothing to bomb.
func TestApplyBomb(t *testing.T) {
	b := newTestBoard()
	b.TryClaim(12, 0, AnyValue, 10)

	if !b.ApplyBomb(12) {
		t.Fatal("bomb on owned cell should succeed")
	}
	if b.Cells[12].IsOwned() || b.Cells[12].Seq != 0 {
		t.Errorf("cell not cleared: %+v", b.Cells[12])
	}
	if b.ApplyBomb(12) {
		t.Error("repeat bomb on cleared cell should fail")
	}
	if b.ApplyBomb(13) {
		t.Error("bomb on never-owned cell should fail")
	}
	if b.ApplyBomb(NumCells) {
		t.Error("bomb out of range should fail")
	}
}

func TestApplyBombShielded(t *testing.T) {
	b := newTestBoard()
	b.TryClaim(12, 2, AnyValue, 10)
	if !b.ApplyShield(12, 2) {
		t.Fatal("shield should succeed")
	}
	if b.ApplyBomb(12) {
		t.Error("bomb on shielded cell should fail")
	}
	if b.Cells[12].Owner != 2 {
		t.Errorf("owner = %d, want 2", b.Cells[12].Owner)
	}
}

func TestApplyShield(t *testing.T) {
	b := newTestBoard()
	b.TryClaim(7, 1, AnyValue, 10)

	if b.ApplyShield(7, 2) {
		t.Error("shielding another agent's cell should fail")
	}
	if b.ApplyShield(8, 1) {
		t.Error("shielding an unowned cell should fail")
	}
	if b.ApplyShield(7, NoAgent) {
		t.Error("NoAgent cannot shield")
	}
	if !b.ApplyShield(7, 1) {
		t.Fatal("owner shielding own cell should succeed")
	}
	if b.ApplyShield(7, 1) {
		t.Error("shielding twice should fail")
	}
}

func TestOwnedBy(t *testing.T) {
	b := newTestBoard()
	b.TryClaim(40, 2, AnyValue, 10)
	b.TryClaim(7, 2, AnyValue, 10)
	b.TryClaim(8, 1, AnyValue, 10)
	if got := b.OwnedBy(2); len(got) != 2 || got[0] != 7 || got[1] != 40 {
		t.Errorf("OwnedBy(2) = %v, want [7 40]", got)
	}
	if b.CountOwned(1) != 1 || len(b.Unclaimed()) != NumCells-3 {
		t.Error("CountOwned/Unclaimed disagree with claims")
	}
}

func TestGeometry(t *testing.T) {
	if Row(23) != 2 || Col(23) != 3 {
		t.Errorf("Row/Col(23) = %d/%d", Row(23), Col(23))
	}
	if Index(2, 3) != 23 {
		t.Errorf("Index(2,3) = %d", Index(2, 3))
	}
	if Index(-1, 0) != -1 || Index(0, BoardSize) != -1 {
		t.Error("Index should reject off-board coordinates")
	}
}
