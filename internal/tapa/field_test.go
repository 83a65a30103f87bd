package tapa

import (
	"testing"

	"penciloid/internal/gridcore"
)

func clue(pattern ...int) Clue { return Clue{HasClue: true, Pattern: pattern} }

func TestFieldAddClue(t *testing.T) {
	dic := NewDictionary()

	f := NewField(5, 6, dic)
	f.AddClue(gridcore.P{Y: 2, X: 1}, clue())
	f.AddClue(gridcore.P{Y: 2, X: 3}, clue(4))

	if got := f.Cell(gridcore.P{Y: 2, X: 0}); got != White {
		t.Errorf("(2,0) = %v, want White", got)
	}
	if got := f.Cell(gridcore.P{Y: 1, X: 4}); got != Black {
		t.Errorf("(1,4) = %v, want Black", got)
	}
	if got := f.Cell(gridcore.P{Y: 2, X: 4}); got != Black {
		t.Errorf("(2,4) = %v, want Black", got)
	}
	if got := f.Cell(gridcore.P{Y: 3, X: 4}); got != Black {
		t.Errorf("(3,4) = %v, want Black", got)
	}
	if f.Inconsistent() {
		t.Fatalf("expected consistent field")
	}

	f2 := NewField(5, 6, dic)
	f2.AddClue(gridcore.P{Y: 1, X: 1}, clue())
	f2.AddClue(gridcore.P{Y: 2, X: 2}, clue(8))
	if !f2.Inconsistent() {
		t.Fatalf("expected inconsistent field (clue of 8 cannot fit 8 neighbors as one run without wrapping the clue cell itself)")
	}
}

func TestFieldAvoidCluster(t *testing.T) {
	dic := NewDictionary()
	f := NewField(5, 6, dic)
	f.Decide(gridcore.P{Y: 1, X: 1}, Black)
	f.Decide(gridcore.P{Y: 1, X: 2}, Black)
	f.Decide(gridcore.P{Y: 2, X: 2}, Black)

	if got := f.Cell(gridcore.P{Y: 2, X: 1}); got != White {
		t.Errorf("(2,1) = %v, want White", got)
	}
	if f.Inconsistent() {
		t.Fatalf("expected consistent field")
	}
}

func TestFieldInspectConnectivity(t *testing.T) {
	dic := NewDictionary()
	f := NewField(5, 6, dic)
	f.Decide(gridcore.P{Y: 0, X: 0}, Black)
	f.Decide(gridcore.P{Y: 4, X: 5}, Black)
	f.Decide(gridcore.P{Y: 1, X: 0}, White)
	f.Decide(gridcore.P{Y: 2, X: 1}, White)
	f.Decide(gridcore.P{Y: 0, X: 3}, White)
	f.Decide(gridcore.P{Y: 0, X: 2}, Undecided)
	f.Decide(gridcore.P{Y: 1, X: 1}, Undecided)

	f.InspectConnectivity()

	if got := f.Cell(gridcore.P{Y: 0, X: 1}); got != Black {
		t.Errorf("(0,1) = %v, want Black", got)
	}
	if got := f.Cell(gridcore.P{Y: 1, X: 2}); got != Black {
		t.Errorf("(1,2) = %v, want Black", got)
	}
	if f.Inconsistent() {
		t.Fatalf("expected consistent field")
	}
}

func TestFieldProblem(t *testing.T) {
	dic := NewDictionary()
	f := NewField(6, 5, dic)
	f.AddClue(gridcore.P{Y: 1, X: 0}, clue(1, 3))
	f.AddClue(gridcore.P{Y: 1, X: 2}, clue(2, 4))
	f.AddClue(gridcore.P{Y: 3, X: 1}, clue(3, 3))
	f.AddClue(gridcore.P{Y: 4, X: 3}, clue(4))

	f.InspectConnectivity()
	f.InspectConnectivity()
	f.InspectConnectivity()

	expected := [6][5]int{
		{1, 1, 1, 1, 1},
		{0, 1, 0, 0, 1},
		{1, 0, 1, 1, 1},
		{1, 0, 1, 0, 0},
		{1, 0, 1, 0, 0},
		{1, 1, 1, 1, 0},
	}
	for y := 0; y < 6; y++ {
		for x := 0; x < 5; x++ {
			want := White
			if expected[y][x] == 1 {
				want = Black
			}
			if got := f.Cell(gridcore.P{Y: y, X: x}); got != want {
				t.Errorf("(%d,%d) = %v, want %v", y, x, got, want)
			}
		}
	}
	if f.Inconsistent() {
		t.Fatalf("expected consistent field")
	}
	if f.DecidedCells() != 30 {
		t.Errorf("decidedCells = %d, want 30", f.DecidedCells())
	}
	if !f.FullySolved() {
		t.Errorf("expected fully solved field")
	}
}
