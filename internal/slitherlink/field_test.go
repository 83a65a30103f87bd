package slitherlink

import (
	"testing"

	"penciloid/internal/gridcore"
)

// TestParseCluesRejectsRaggedRows checks the loader validates row width.
func TestParseCluesRejectsRaggedRows(t *testing.T) {
	_, err := ParseClues("12\n1\n")
	if err == nil {
		t.Fatalf("expected an error for a ragged puzzle body, got nil")
	}
}

// TestClueZeroBlanksNeighborhood checks that a clue-0 cell immediately
// forces all four of its edges to Blank.
func TestClueZeroBlanksNeighborhood(t *testing.T) {
	f := New(3, 3)
	f.AddClue(gridcore.P{Y: 1, X: 1}, 0)

	if f.Loop.Inconsistent() {
		t.Fatalf("field unexpectedly inconsistent after a clue-0 add")
	}
	for _, e := range f.cellEdges(gridcore.P{Y: 1, X: 1}) {
		if got := f.Loop.GetEdge(e); got != gridcore.Blank {
			t.Errorf("edge %v = %v, want Blank", e, got)
		}
	}
}

// TestClueThreeForcesLineOnLastUndecided checks that once three of a
// clue-3 cell's four edges are Blank, the last is forced Line.
func TestClueThreeForcesLineOnLastUndecided(t *testing.T) {
	f := New(3, 3)
	p := gridcore.P{Y: 1, X: 1}
	f.AddClue(p, 3)

	edges := f.cellEdges(p)
	f.Loop.DecideEdge(edges[0], gridcore.Blank)
	f.Loop.DecideEdge(edges[1], gridcore.Blank)
	f.Loop.DecideEdge(edges[2], gridcore.Blank)

	if f.Loop.Inconsistent() {
		t.Fatalf("field unexpectedly inconsistent")
	}
	if got := f.Loop.GetEdge(edges[3]); got != gridcore.Line {
		t.Errorf("last undecided edge = %v, want Line", got)
	}
}

// TestClueOverflowIsInconsistent checks that exceeding a clue's count
// latches inconsistent.
func TestClueOverflowIsInconsistent(t *testing.T) {
	f := New(3, 3)
	p := gridcore.P{Y: 1, X: 1}
	f.AddClue(p, 1)

	edges := f.cellEdges(p)
	f.Loop.DecideEdge(edges[0], gridcore.Line)
	f.Loop.DecideEdge(edges[1], gridcore.Line)

	if !f.Loop.Inconsistent() {
		t.Errorf("expected inconsistency once Line count exceeds the clue")
	}
}

// TestAdjacentThreesForceDividingLine checks the documented horizontal 3-3
// heuristic forces the shared edge to Line.
func TestAdjacentThreesForceDividingLine(t *testing.T) {
	f := New(2, 2)
	f.AddClue(gridcore.P{Y: 0, X: 0}, 3)
	f.AddClue(gridcore.P{Y: 0, X: 1}, 3)
	f.checkAdjacentThrees()

	if f.Loop.Inconsistent() {
		t.Fatalf("field unexpectedly inconsistent")
	}
	dividing := gridcore.OfCell(gridcore.P{Y: 0, X: 0}).Add(gridcore.DRight)
	if got := f.Loop.GetEdge(dividing); got != gridcore.Line {
		t.Errorf("dividing edge = %v, want Line", got)
	}
}
