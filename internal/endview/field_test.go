package endview

import (
	"testing"

	"penciloid/internal/gridcore"
)

func TestSymbolExcludesRowAndColumn(t *testing.T) {
	f := NewField(5, 3)
	if f.Candidates(gridcore.P{Y: 0, X: 0}) != 7 {
		t.Fatalf("initial candidates = %b, want 0b111", f.Candidates(gridcore.P{Y: 0, X: 0}))
	}

	f.Decide(gridcore.P{Y: 0, X: 0}, 0)

	if f.Inconsistent() {
		t.Fatalf("expected consistent field")
	}
	if f.Candidates(gridcore.P{Y: 0, X: 0}) != 1 {
		t.Errorf("(0,0) candidates = %b, want 1", f.Candidates(gridcore.P{Y: 0, X: 0}))
	}
	if f.Candidates(gridcore.P{Y: 0, X: 1}) != 6 {
		t.Errorf("(0,1) candidates = %b, want 110", f.Candidates(gridcore.P{Y: 0, X: 1}))
	}
	if f.Candidates(gridcore.P{Y: 1, X: 0}) != 6 {
		t.Errorf("(1,0) candidates = %b, want 110", f.Candidates(gridcore.P{Y: 1, X: 0}))
	}
	if f.Candidates(gridcore.P{Y: 1, X: 1}) != 7 {
		t.Errorf("(1,1) candidates = %b, want 111", f.Candidates(gridcore.P{Y: 1, X: 1}))
	}
}

func TestRowFilledWithSymbolsForcesRestEmpty(t *testing.T) {
	f := NewField(5, 3)
	f.Decide(gridcore.P{Y: 1, X: 0}, Some)
	f.Decide(gridcore.P{Y: 1, X: 1}, Some)
	f.Decide(gridcore.P{Y: 1, X: 2}, Some)

	if f.Inconsistent() {
		t.Fatalf("expected consistent field")
	}
	if got := f.Value(gridcore.P{Y: 1, X: 3}); got != Empty {
		t.Errorf("(1,3) = %v, want Empty", got)
	}
}

func TestEnoughEmptyForcesRestSome(t *testing.T) {
	f := NewField(5, 3)
	f.Decide(gridcore.P{Y: 3, X: 2}, Empty)
	f.Decide(gridcore.P{Y: 4, X: 2}, Empty)

	if f.Inconsistent() {
		t.Fatalf("expected consistent field")
	}
	if got := f.Value(gridcore.P{Y: 1, X: 2}); got != Some {
		t.Errorf("(1,2) = %v, want Some", got)
	}
}

func TestHiddenSingleInColumn(t *testing.T) {
	f := NewField(5, 3)
	f.limitCand(f.index(gridcore.P{Y: 0, X: 2}), 5)
	f.limitCand(f.index(gridcore.P{Y: 2, X: 2}), 5)
	f.limitCand(f.index(gridcore.P{Y: 3, X: 2}), 5)
	f.limitCand(f.index(gridcore.P{Y: 4, X: 2}), 5)

	if f.Inconsistent() {
		t.Fatalf("expected consistent field")
	}
	if got := f.Value(gridcore.P{Y: 1, X: 2}); got != 1 {
		t.Errorf("(1,2) = %v, want symbol 1", got)
	}
	if got := f.Candidates(gridcore.P{Y: 1, X: 3}); got != 5 {
		t.Errorf("(1,3) candidates = %b, want 101", got)
	}
}

func TestLeftClueFixesFirstNonEmptyCell(t *testing.T) {
	f := NewField(5, 3)
	f.SetClue(Left, 0, 0)

	if f.Candidates(gridcore.P{Y: 0, X: 0}) != 1 {
		t.Errorf("(0,0) candidates = %b, want 1", f.Candidates(gridcore.P{Y: 0, X: 0}))
	}
	if f.Candidates(gridcore.P{Y: 0, X: 3}) != 6 {
		t.Errorf("(0,3) candidates = %b, want 110", f.Candidates(gridcore.P{Y: 0, X: 3}))
	}
	if f.Candidates(gridcore.P{Y: 0, X: 4}) != 6 {
		t.Errorf("(0,4) candidates = %b, want 110", f.Candidates(gridcore.P{Y: 0, X: 4}))
	}
}
