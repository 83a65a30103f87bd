package kakuro

import (
	"testing"

	"penciloid/internal/gridcore"
)

func TestFieldSolvesBoundaryThreeByThree(t *testing.T) {
	clues := make([]Clue, 9)
	at := func(y, x int) int { return y*3 + x }
	clues[at(0, 0)] = Clue{HasClue: true, Horizontal: -1, Vertical: -1}
	clues[at(0, 1)] = Clue{HasClue: true, Horizontal: -1, Vertical: 3}
	clues[at(0, 2)] = Clue{HasClue: true, Horizontal: -1, Vertical: 8}
	clues[at(1, 0)] = Clue{HasClue: true, Horizontal: 4, Vertical: -1}
	clues[at(2, 0)] = Clue{HasClue: true, Horizontal: 7, Vertical: -1}

	f := NewField(3, 3, clues, NewDictionary())
	f.CheckAll()

	if f.Inconsistent() {
		t.Fatalf("expected consistent field")
	}
	if !f.Solved() {
		t.Fatalf("expected solved field")
	}
	if got := f.Val(gridcore.P{Y: 1, X: 1}); got != 1 {
		t.Errorf("(1,1) = %d, want 1", got)
	}
	if got := f.Val(gridcore.P{Y: 1, X: 2}); got != 3 {
		t.Errorf("(1,2) = %d, want 3", got)
	}
	if got := f.Val(gridcore.P{Y: 2, X: 1}); got != 2 {
		t.Errorf("(2,1) = %d, want 2", got)
	}
	if got := f.Val(gridcore.P{Y: 2, X: 2}); got != 5 {
		t.Errorf("(2,2) = %d, want 5", got)
	}
	if f.UndecidedCells() != 0 {
		t.Errorf("undecided cells = %d, want 0", f.UndecidedCells())
	}
	if f.TotalCandidates() != 4 {
		t.Errorf("total candidates = %d, want 4", f.TotalCandidates())
	}
}

func TestFieldDetectsInconsistentGroup(t *testing.T) {
	clues := make([]Clue, 9)
	at := func(y, x int) int { return y*3 + x }
	clues[at(0, 0)] = Clue{HasClue: true, Horizontal: -1, Vertical: -1}
	clues[at(0, 1)] = Clue{HasClue: true, Horizontal: -1, Vertical: 3}
	clues[at(0, 2)] = Clue{HasClue: true, Horizontal: -1, Vertical: 6}
	clues[at(1, 0)] = Clue{HasClue: true, Horizontal: 4, Vertical: -1}
	clues[at(2, 0)] = Clue{HasClue: true, Horizontal: 5, Vertical: -1}

	f := NewField(3, 3, clues, NewDictionary())
	f.CheckAll()

	if !f.Inconsistent() {
		t.Fatalf("expected inconsistency: horizontal sum 4 and vertical sum 3 over the same cell (1,1) cannot both start at digit 1 while sum 6/5 hold for the rest")
	}
}

func TestDictionaryTwoCellPairs(t *testing.T) {
	d := NewDictionary()
	imp, allowed, ok := d.At(2, 3, gridcore.AllCandidates(MaxVal))
	if !ok {
		t.Fatalf("sum 3 over 2 cells should be possible (1+2)")
	}
	want := gridcore.Candidates(0).Set(1).Set(2)
	if imp != want || allowed != want {
		t.Errorf("imperative/allowed = %v/%v, want %v", imp, allowed, want)
	}

	if _, _, ok := d.At(2, 2, gridcore.AllCandidates(MaxVal)); ok {
		t.Errorf("sum 2 over 2 distinct digits should be impossible")
	}
}
