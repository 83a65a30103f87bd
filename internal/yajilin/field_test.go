package yajilin

import (
	"testing"

	"penciloid/internal/gridcore"
)

// TestClueZeroBlanksNoBlocked checks a clue of 0 along an otherwise empty
// line forces the whole line to Line (never Blocked).
func TestClueZeroBlanksNoBlocked(t *testing.T) {
	f := New(1, 4)
	f.AddClue(gridcore.P{Y: 0, X: 0}, gridcore.DRight, 0)

	if f.Loop.Inconsistent() {
		t.Fatalf("field unexpectedly inconsistent")
	}
	for x := 1; x < 4; x++ {
		if got := f.State(gridcore.P{Y: 0, X: x}); got != Line {
			t.Errorf("cell (0,%d) = %v, want Line", x, got)
		}
	}
}

// TestClueEqualsLineLengthBlocksAll checks a clue equal to the full line
// length forces every cell in the line Blocked -- except that this would
// violate "no two adjacent Blocked" for a line longer than 1, so it should
// instead latch inconsistent for a line of length > 1.
func TestClueEqualsLineLengthBlocksAll(t *testing.T) {
	f := New(1, 3)
	f.AddClue(gridcore.P{Y: 0, X: 0}, gridcore.DRight, 2)

	if !f.Loop.Inconsistent() {
		t.Errorf("expected inconsistency: two adjacent Blocked cells can never satisfy a no-touch constraint")
	}
}

// TestBlockedForcesNeighborsLine checks that deciding a cell Blocked forces
// its orthogonal neighbors Line.
func TestBlockedForcesNeighborsLine(t *testing.T) {
	f := New(3, 3)
	center := gridcore.P{Y: 1, X: 1}
	f.DecideCell(center, Blocked)

	if f.Loop.Inconsistent() {
		t.Fatalf("field unexpectedly inconsistent")
	}
	for _, d := range gridcore.Dirs4 {
		np := center.Add(d)
		if got := f.State(np); got != Line {
			t.Errorf("neighbor %v = %v, want Line", np, got)
		}
	}
}

// TestLineCanReachAdjacencyConstraint exercises the exhaustive line-DP
// helper directly against the no-two-adjacent-Blocked constraint.
func TestLineCanReachAdjacencyConstraint(t *testing.T) {
	states := make([]CellState, 4)
	if !lineCanReach(states, 2) {
		t.Errorf("expected a length-4 line to be able to fit 2 non-adjacent Blocked cells")
	}
	if lineCanReach(states, 3) {
		t.Errorf("a length-4 line cannot fit 3 mutually non-adjacent Blocked cells")
	}
}

// TestRightClueOnFiveByFiveReachesFullySolved is a single Right(2) clue on an
// otherwise empty 5x5 grid: the clue's own line-of-sight DP has only one
// valid assignment ((2,2) and (2,4) Blocked, (2,3) Line, since the other two
// ways to place 2 Blocked cells among 3 put them orthogonally adjacent), and
// that, combined with the Loop Engine's degree/parity/connectivity passes
// (CheckAll), is enough to fully resolve the rest of the board, including
// the cell at (2,0) -- which lies outside the clue's own line of sight
// entirely and so is pinned only by the generic passes, not the clue DP.
func TestRightClueOnFiveByFiveReachesFullySolved(t *testing.T) {
	f := New(5, 5)
	f.AddClue(gridcore.P{Y: 2, X: 1}, gridcore.DRight, 2)
	f.CheckAll()

	if f.Loop.Inconsistent() {
		t.Fatalf("field unexpectedly inconsistent")
	}
	for _, want := range []struct {
		p gridcore.P
		s CellState
	}{
		{gridcore.P{Y: 2, X: 2}, Blocked},
		{gridcore.P{Y: 2, X: 4}, Blocked},
		{gridcore.P{Y: 2, X: 3}, Line},
		{gridcore.P{Y: 2, X: 0}, Line},
	} {
		if got := f.State(want.p); got != want.s {
			t.Errorf("cell %v = %v, want %v", want.p, got, want.s)
		}
	}
	if !f.Loop.FullySolved() {
		t.Errorf("expected the board to be fully solved")
	}
}
