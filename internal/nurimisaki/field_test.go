package nurimisaki

import (
	"testing"

	"penciloid/internal/gridcore"
)

func TestFieldSolvesFourByFourProblem(t *testing.T) {
	clues := map[gridcore.P]int{
		{Y: 0, X: 0}: 4,
		{Y: 1, X: 1}: 2,
		{Y: 0, X: 3}: 3,
	}
	f := NewField(4, 4, clues)
	f.Solve()

	if f.Inconsistent() {
		t.Fatalf("expected consistent field")
	}
	if !f.FullySolved() {
		t.Fatalf("expected fully solved field")
	}
	if got := f.Cell(gridcore.P{Y: 3, X: 2}); got.Kind != White {
		t.Errorf("(3,2) = %+v, want White", got)
	}
}

func TestAvoid2x2ClusterForcesOppositeColor(t *testing.T) {
	f := NewField(3, 3, nil)
	f.Decide(gridcore.P{Y: 0, X: 0}, BlackCell())
	f.Decide(gridcore.P{Y: 0, X: 1}, BlackCell())
	f.Decide(gridcore.P{Y: 1, X: 0}, BlackCell())

	if got := f.Cell(gridcore.P{Y: 1, X: 1}); got.Kind != White {
		t.Errorf("(1,1) = %+v, want White", got)
	}
	if f.Inconsistent() {
		t.Fatalf("expected consistent field")
	}
}

func TestCapeDirectionDecidedWhenOneNeighborWhite(t *testing.T) {
	clues := map[gridcore.P]int{{Y: 2, X: 2}: 3}
	f := NewField(5, 5, clues)
	f.Decide(gridcore.P{Y: 2, X: 1}, WhiteCell())
	f.inspect(gridcore.P{Y: 2, X: 2})

	if f.Inconsistent() {
		t.Fatalf("expected consistent field")
	}
	if got := f.Cell(gridcore.P{Y: 2, X: 0}); got.Kind != White {
		t.Errorf("(2,0) = %+v, want White", got)
	}
	if got := f.Cell(gridcore.P{Y: 1, X: 2}); got.Kind != Black {
		t.Errorf("(1,2) = %+v, want Black", got)
	}
	if got := f.Cell(gridcore.P{Y: 3, X: 2}); got.Kind != Black {
		t.Errorf("(3,2) = %+v, want Black", got)
	}
}
