// Package slitherlink drives penciloid/internal/looplib's GridLoop with
// clue-aware rules: every cell optionally carries a clue in {0,1,2,3} naming
// exactly how many of its four edges must be Line.
package slitherlink

import (
	"penciloid/internal/gridcore"
	"penciloid/internal/looplib"
)

// NoClue marks a cell with no number.
const NoClue int8 = -1

// Field is a looplib.Field that layers Slitherlink clue deduction on top of
// the generic Loop Engine.
type Field struct {
	Height, Width int
	clues         *gridcore.Grid[int8]
	Loop          *looplib.GridLoop
}

// New allocates a clue-free Slitherlink field over an H x W cell grid.
func New(height, width int) *Field {
	f := &Field{
		Height: height,
		Width:  width,
		clues:  gridcore.NewGridFilled[int8](height, width, NoClue),
	}
	f.Loop = looplib.New(height, width, f)
	return f
}

// AddClue fixes cell p's clue. Clues are immutable once set, matching the
// Loop Engine's own state-machine discipline.
func (f *Field) AddClue(p gridcore.P, clue int8) {
	f.clues.Set(p, clue)
	f.checkClue(p)
}

// Clue returns the clue at p, or NoClue.
func (f *Field) Clue(p gridcore.P) int8 { return f.clues.At(p) }

// CheckNeighborhood re-examines every clue adjacent to the freshly decided
// edge at lp.
func (f *Field) CheckNeighborhood(lp gridcore.LP) {
	c1, c2 := gridcore.CellNeighbors2(lp)
	for _, c := range [2]gridcore.LP{c1, c2} {
		p := c.ToCell()
		if f.clues.InBounds(p) {
			f.checkClue(p)
		}
	}
}

// Inspect has nothing extra to do at vertices beyond what the Loop Engine's
// own vertex rule already performs; Slitherlink's clue logic is entirely
// edge-driven via CheckNeighborhood.
func (f *Field) Inspect(gridcore.LP) {}

func (f *Field) cellEdges(p gridcore.P) [4]gridcore.LP {
	c := gridcore.OfCell(p)
	return [4]gridcore.LP{c.Add(gridcore.DUp), c.Add(gridcore.DRight), c.Add(gridcore.DDown), c.Add(gridcore.DLeft)}
}

// checkClue applies the basic counting rule at p: if p has no clue, nothing
// to do. Otherwise count decided Line/Undecided edges among p's four edges
// and force the remaining ones when the clue's count is already pinned down.
func (f *Field) checkClue(p gridcore.P) {
	if f.Loop.Inconsistent() {
		return
	}
	clue := f.clues.At(p)
	if clue == NoClue {
		return
	}
	edges := f.cellEdges(p)
	lines, undecided := 0, 0
	var pending []gridcore.LP
	for _, e := range edges {
		switch f.Loop.GetEdgeSafe(e) {
		case gridcore.Line:
			lines++
		case gridcore.Undecided:
			undecided++
			pending = append(pending, e)
		}
	}
	if lines > int(clue) {
		f.Loop.Contradict()
		return
	}
	if lines == int(clue) {
		for _, e := range pending {
			f.Loop.DecideEdge(e, gridcore.Blank)
		}
		return
	}
	if lines+undecided == int(clue) {
		for _, e := range pending {
			f.Loop.DecideEdge(e, gridcore.Line)
		}
	}
}

// CheckAll runs checkClue over every clued cell, then the two documented
// clue-3 neighbor special cases, then the Loop Engine's global passes. This
// is the entry point callers (solver / generator) use to drive the field to
// quiescence after a batch of clues is added.
func (f *Field) CheckAll() {
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			f.checkClue(gridcore.P{Y: y, X: x})
			if f.Loop.Inconsistent() {
				return
			}
		}
	}
	f.checkAdjacentThrees()
	if f.Loop.Inconsistent() {
		return
	}
	f.Loop.ApplyInOutRule()
	if f.Loop.Inconsistent() {
		return
	}
	f.Loop.CheckConnectability()
}

// checkAdjacentThrees applies the two documented clue-3 corner heuristics:
// orthogonally adjacent 3-3 pairs and diagonally adjacent 3-3 pairs.
func (f *Field) checkAdjacentThrees() {
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			p := gridcore.P{Y: y, X: x}
			if f.clues.At(p) != 3 {
				continue
			}
			if right := (gridcore.P{Y: y, X: x + 1}); f.clues.InBounds(right) && f.clues.At(right) == 3 {
				f.forceHorizontalThrees(p, right)
				if f.Loop.Inconsistent() {
					return
				}
			}
			if down := (gridcore.P{Y: y + 1, X: x}); f.clues.InBounds(down) && f.clues.At(down) == 3 {
				f.forceVerticalThrees(p, down)
				if f.Loop.Inconsistent() {
					return
				}
			}
			if dr := (gridcore.P{Y: y + 1, X: x + 1}); f.clues.InBounds(dr) && f.clues.At(dr) == 3 {
				f.forceDiagonalThrees(p, dr, gridcore.DDown.Add(gridcore.DRight))
				if f.Loop.Inconsistent() {
					return
				}
			}
			if dl := (gridcore.P{Y: y + 1, X: x - 1}); f.clues.InBounds(dl) && f.clues.At(dl) == 3 {
				f.forceDiagonalThrees(p, dl, gridcore.DDown.Add(gridcore.DLeft))
				if f.Loop.Inconsistent() {
					return
				}
			}
		}
	}
}

// forceHorizontalThrees handles left,right = two horizontally adjacent
// clue-3 cells: the dividing edge and the two parallel outer edges are Line;
// the four perpendicular edges at the shared edge's two ends are Blank.
func (f *Field) forceHorizontalThrees(left, right gridcore.P) {
	lc, rc := gridcore.OfCell(left), gridcore.OfCell(right)
	f.Loop.DecideEdge(lc.Add(gridcore.DRight), gridcore.Line) // == rc.Add(DLeft), the dividing edge
	f.Loop.DecideEdge(lc.Add(gridcore.DLeft), gridcore.Line)
	f.Loop.DecideEdge(rc.Add(gridcore.DRight), gridcore.Line)
	f.Loop.DecideEdge(lc.Add(gridcore.DUp), gridcore.Blank)
	f.Loop.DecideEdge(rc.Add(gridcore.DUp), gridcore.Blank)
	f.Loop.DecideEdge(lc.Add(gridcore.DDown), gridcore.Blank)
	f.Loop.DecideEdge(rc.Add(gridcore.DDown), gridcore.Blank)
}

// forceVerticalThrees is forceHorizontalThrees' 90-degree twin for a
// vertically adjacent clue-3 pair.
func (f *Field) forceVerticalThrees(top, bottom gridcore.P) {
	tc, bc := gridcore.OfCell(top), gridcore.OfCell(bottom)
	f.Loop.DecideEdge(tc.Add(gridcore.DDown), gridcore.Line) // == bc.Add(DUp), the dividing edge
	f.Loop.DecideEdge(tc.Add(gridcore.DUp), gridcore.Line)
	f.Loop.DecideEdge(bc.Add(gridcore.DDown), gridcore.Line)
	f.Loop.DecideEdge(tc.Add(gridcore.DLeft), gridcore.Blank)
	f.Loop.DecideEdge(bc.Add(gridcore.DLeft), gridcore.Blank)
	f.Loop.DecideEdge(tc.Add(gridcore.DRight), gridcore.Blank)
	f.Loop.DecideEdge(bc.Add(gridcore.DRight), gridcore.Blank)
}

// forceDiagonalThrees handles p and its diagonal clue-3 partner q = p+diag:
// the two far (non-cluster-facing) edges of each of p and q become Line.
func (f *Field) forceDiagonalThrees(p, q gridcore.P, diag gridcore.D) {
	pc, qc := gridcore.OfCell(p), gridcore.OfCell(q)
	if diag.Y > 0 {
		f.Loop.DecideEdge(pc.Add(gridcore.DUp), gridcore.Line)
		f.Loop.DecideEdge(qc.Add(gridcore.DDown), gridcore.Line)
	} else {
		f.Loop.DecideEdge(pc.Add(gridcore.DDown), gridcore.Line)
		f.Loop.DecideEdge(qc.Add(gridcore.DUp), gridcore.Line)
	}
	if diag.X > 0 {
		f.Loop.DecideEdge(pc.Add(gridcore.DLeft), gridcore.Line)
		f.Loop.DecideEdge(qc.Add(gridcore.DRight), gridcore.Line)
	} else {
		f.Loop.DecideEdge(pc.Add(gridcore.DRight), gridcore.Line)
		f.Loop.DecideEdge(qc.Add(gridcore.DLeft), gridcore.Line)
	}
}
