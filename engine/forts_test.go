package engine

import (
	"reflect"
	"sort"
	"testing"
)

// own assigns cells to agent directly, bypassing value checks.
func own(b *Board, agent AgentID, cells ...int) {
	for _, c := range cells {
		b.TryClaim(c, agent, AnyValue, 10)
	}
}

func TestNeighborsRowBounded(t *testing.T) {
	tests := []struct {
		idx  int
		want []int
	}{
		{0, []int{1, 10}},
		{9, []int{8, 19}},
		{10, []int{0, 11, 20}},
		{19, []int{9, 18, 29}},
		{55, []int{45, 54, 56, 65}},
		{99, []int{89, 98}},
	}
	for _, tt := range tests {
		got := Neighbors(tt.idx)
		sort.Ints(got)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Neighbors(%d) = %v, want %v", tt.idx, got, tt.want)
		}
	}
}

// TestAdjacencyDoesNotWrapRows: cell 9 (end of row 0) is not adjacent to 10.
func TestAdjacencyDoesNotWrapRows(t *testing.T) {
	b := newTestBoard()
	own(&b, 0, 9)
	if HasAdjacentSameOwner(&b, 10, 0) {
		t.Error("cell 10 should not see cell 9 as a neighbor")
	}
	own(&b, 0, 20)
	if !HasAdjacentSameOwner(&b, 10, 0) {
		t.Error("cell 10 should see cell 20 below it")
	}
	if HasAdjacentSameOwner(&b, 10, 1) {
		t.Error("another agent's cells do not count")
	}
}

// TestDetectNewFortsScenario: owning 0, 1, 10 and then 11 builds fort 0-1-10-11.
func TestDetectNewFortsScenario(t *testing.T) {
	b := newTestBoard()
	known := FortSet{}
	own(&b, 0, 0, 1, 10)
	if got := DetectNewForts(&b, 10, 0, known); len(got) != 0 {
		t.Fatalf("no fort expected yet, got %v", got)
	}

	own(&b, 0, 11)
	got := DetectNewForts(&b, 11, 0, known)
	want := []FortID{{0, 1, 10, 11}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("DetectNewForts = %v, want %v", got, want)
	}
	if got[0].String() != "0-1-10-11" {
		t.Errorf("String() = %q", got[0].String())
	}
	if known.Len() != 0 {
		t.Error("DetectNewForts must not modify known")
	}
}

// TestDetectNewFortsNoDoubleAward: a recorded fort is never returned again.
func TestDetectNewFortsNoDoubleAward(t *testing.T) {
	b := newTestBoard()
	known := FortSet{}
	own(&b, 1, 0, 1, 10, 11)
	for _, f := range DetectNewForts(&b, 11, 1, known) {
		known.Add(f)
	}
	for _, idx := range []int{0, 1, 10, 11} {
		if got := DetectNewForts(&b, idx, 1, known); len(got) != 0 {
			t.Errorf("fort re-detected from cell %d: %v", idx, got)
		}
	}

	// Bomb a member and reclaim it: still the same fort, still not new.
	b.ApplyBomb(0)
	own(&b, 1, 0)
	if got := DetectNewForts(&b, 0, 1, known); len(got) != 0 {
		t.Errorf("rebuilt fort re-awarded: %v", got)
	}
}

// TestDetectNewFortsMultiple: the centre of a 3x3 block completes four forts.
func TestDetectNewFortsMultiple(t *testing.T) {
	b := newTestBoard()
	own(&b, 2, 0, 1, 2, 10, 12, 20, 21, 22)
	own(&b, 2, 11)
	got := DetectNewForts(&b, 11, 2, FortSet{})
	if len(got) != 4 {
		t.Fatalf("got %d forts, want 4: %v", len(got), got)
	}
}

func TestDetectNewFortsEdges(t *testing.T) {
	b := newTestBoard()
	own(&b, 0, 88, 89, 98, 99)
	got := DetectNewForts(&b, 99, 0, FortSet{})
	if len(got) != 1 || got[0] != (FortID{88, 89, 98, 99}) {
		t.Errorf("corner fort = %v", got)
	}

	// Cells 9, 10 straddle a row break and never form a block with 19/20.
	b = newTestBoard()
	own(&b, 0, 9, 10, 19, 20)
	if got := DetectNewForts(&b, 10, 0, FortSet{}); len(got) != 0 {
		t.Errorf("wrapped block detected as fort: %v", got)
	}
}

func TestDetectNewFortsMixedOwners(t *testing.T) {
	b := newTestBoard()
	own(&b, 0, 0, 1, 10)
	own(&b, 1, 11)
	if got := DetectNewForts(&b, 11, 1, FortSet{}); len(got) != 0 {
		t.Errorf("mixed-owner block detected: %v", got)
	}
	if got := DetectNewForts(&b, 10, 0, FortSet{}); len(got) != 0 {
		t.Errorf("mixed-owner block detected: %v", got)
	}
}

func TestFortSetSorted(t *testing.T) {
	s := FortSet{}
	s.Add(FortID{44, 45, 54, 55})
	s.Add(FortID{0, 1, 10, 11})
	s.Add(FortID{1, 2, 11, 12})
	got := s.Sorted()
	want := []FortID{{0, 1, 10, 11}, {1, 2, 11, 12}, {44, 45, 54, 55}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Sorted = %v, want %v", got, want)
	}
}
