package numberlink

import "penciloid/internal/gridcore"

const noClue = -1

// SolverField enumerates canonical Line placements consistent with a fixed
// clue grid: each clue cell must end with exactly one incident Line edge,
// and the two cells carrying the same label must be connected end to end.
type SolverField struct {
	Height, Width int

	clue  []int // noClue, or a label >= 0
	edges *gridcore.LoopGrid[gridcore.EdgeStatus]

	// anotherEnd[i] is meaningful only while cell i still has spare degree
	// capacity: >= 0 is the plain cell index at the opposite open frontier
	// of i's chain; <= -2 encodes -(label+1), meaning the chain's other end
	// is already the closed clue cell with that label; -1 (closedEnd) means
	// i's own degree target has been reached.
	anotherEnd []int

	inconsistent bool
	touched      int // cells with at least one incident Line edge
}

const closedEnd = -1

// NewSolverField allocates a solver for an H x W grid where clue[y][x] is
// noClue or a non-negative label; both endpoints of a label must appear
// exactly twice.
func NewSolverField(height, width int, clueGrid [][]int) *SolverField {
	n := height * width
	f := &SolverField{
		Height:     height,
		Width:      width,
		clue:       make([]int, n),
		edges:      gridcore.NewLoopGrid[gridcore.EdgeStatus](height, width),
		anotherEnd: make([]int, n),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := y*width + x
			label := noClue
			if clueGrid != nil {
				label = clueGrid[y][x]
			}
			f.clue[i] = label
			if label == noClue {
				f.anotherEnd[i] = i
			} else {
				f.anotherEnd[i] = -(label + 1)
			}
		}
	}
	return f
}

func (f *SolverField) index(p gridcore.P) int { return p.Y*f.Width + p.X }

func (f *SolverField) target(i int) int {
	if f.clue[i] == noClue {
		return 2
	}
	return 1
}

func (f *SolverField) degree(p gridcore.P) int {
	n := 0
	for _, e := range cellEdges(f.Height, f.Width, p) {
		if f.edges.At(e) == gridcore.Line {
			n++
		}
	}
	return n
}

// Inconsistent reports whether the placement under construction has
// violated a structural invariant.
func (f *SolverField) Inconsistent() bool { return f.inconsistent }

// GetEdge returns the current status of the edge between two orthogonally
// adjacent cells.
func (f *SolverField) GetEdge(e gridcore.LP) gridcore.EdgeStatus {
	return f.edges.Safe(e, gridcore.Blank)
}

// DecideEdge commits status to e, updating anotherEnd per the four-case
// table over (end1 clue-attached?, end2 clue-attached?) and latching
// inconsistent on a degree overflow, a self-closing loop with no attached
// clue, or a join between two different clue labels.
func (f *SolverField) DecideEdge(e gridcore.LP, status gridcore.EdgeStatus) {
	if f.inconsistent {
		return
	}
	c1, c2 := gridcore.CellNeighbors2(e)
	p1, p2 := c1.ToCell(), c2.ToCell()
	if !f.inBounds(p1) || !f.inBounds(p2) {
		if status == gridcore.Line {
			f.inconsistent = true
		}
		return
	}
	cur := f.edges.At(e)
	if cur == status {
		return
	}
	if cur != gridcore.Undecided {
		f.inconsistent = true
		return
	}
	f.edges.Set(e, status)
	if status != gridcore.Line {
		return
	}

	i1, i2 := f.index(p1), f.index(p2)
	d1, d2 := f.degree(p1), f.degree(p2)
	if d1 > f.target(i1) || d2 > f.target(i2) {
		f.inconsistent = true
		return
	}

	ea, eb := f.anotherEnd[i1], f.anotherEnd[i2]
	aAttached := ea <= -2
	bAttached := eb <= -2
	switch {
	case !aAttached && !bAttached:
		if ea == i2 {
			f.inconsistent = true
			return
		}
		f.anotherEnd[ea] = eb
		f.anotherEnd[eb] = ea
	case aAttached && !bAttached:
		f.anotherEnd[eb] = ea
	case !aAttached && bAttached:
		f.anotherEnd[ea] = eb
	default:
		if ea != eb {
			f.inconsistent = true
			return
		}
	}

	for _, i := range [2]int{i1, i2} {
		p := gridcore.P{Y: i / f.Width, X: i % f.Width}
		if f.degree(p) >= f.target(i) {
			f.anotherEnd[i] = closedEnd
		}
	}

	f.canonicalizeAfterLine(e)
}

// canonicalizeAfterLine enforces the forbidden-2x2 rule: an empty 2x2 block
// of cells admits two path routes through it -- a straight pass-through and
// an L-shaped detour around one corner -- that are indistinguishable once
// the endpoints outside the block are fixed, so only one is canonical.
// Whenever e commits Line, this checks whether e's neighborhood has formed
// one arm of such a detour (a Line edge continuing straight past e, or a
// Line edge turning at right angles one cell over) and forces the
// non-canonical sibling edges Blank. When the 2x2 block the detour turns
// through carries no clue (so nothing distinguishes straight-through from
// detour at that block either), it also forces the matching pair of edges
// on the detour's far side Line, completing the canonical L rather than
// leaving a second equivalent choice open.
func (f *SolverField) canonicalizeAfterLine(e gridcore.LP) {
	y := e.Y - 1
	x := e.X - 1

	edge := func(dy, dx int) gridcore.EdgeStatus {
		return f.GetEdge(gridcore.LP{Y: e.Y + dy, X: e.X + dx})
	}
	decide := func(dy, dx int, status gridcore.EdgeStatus) bool {
		f.DecideEdge(gridcore.LP{Y: e.Y + dy, X: e.X + dx}, status)
		return f.inconsistent
	}
	hasClue := func(cy, cx int) bool {
		if cy < 0 || cy >= f.Height || cx < 0 || cx >= f.Width {
			return false
		}
		return f.clue[f.index(gridcore.P{Y: cy, X: cx})] != noClue
	}

	if y%2 == 0 {
		switch {
		case edge(-2, 0) == gridcore.Line:
			if decide(-1, -1, gridcore.Blank) {
				return
			}
			if decide(-1, 1, gridcore.Blank) {
				return
			}
		case edge(-1, -1) == gridcore.Line:
			if decide(-2, 0, gridcore.Blank) {
				return
			}
			if decide(-1, 1, gridcore.Blank) {
				return
			}
		case edge(-1, 1) == gridcore.Line:
			if decide(-2, 0, gridcore.Blank) {
				return
			}
			if decide(-1, -1, gridcore.Blank) {
				return
			}
		}

		switch {
		case edge(2, 0) == gridcore.Line:
			if decide(1, -1, gridcore.Blank) {
				return
			}
			if decide(1, 1, gridcore.Blank) {
				return
			}
		case edge(1, -1) == gridcore.Line:
			if decide(2, 0, gridcore.Blank) {
				return
			}
			if decide(1, 1, gridcore.Blank) {
				return
			}
			if !hasClue(y/2+1, x/2+1) {
				if decide(2, 2, gridcore.Line) {
					return
				}
				if decide(3, 1, gridcore.Line) {
					return
				}
			}
		case edge(1, 1) == gridcore.Line:
			if decide(2, 0, gridcore.Blank) {
				return
			}
			if decide(1, -1, gridcore.Blank) {
				return
			}
			if !hasClue(y/2+1, x/2) {
				if decide(2, -2, gridcore.Line) {
					return
				}
				if decide(3, -1, gridcore.Line) {
					return
				}
			}
		}
	} else {
		switch {
		case edge(0, -2) == gridcore.Line:
			if decide(-1, -1, gridcore.Blank) {
				return
			}
			if decide(1, -1, gridcore.Blank) {
				return
			}
		case edge(-1, -1) == gridcore.Line:
			if decide(0, -2, gridcore.Blank) {
				return
			}
			if decide(1, -1, gridcore.Blank) {
				return
			}
			if !hasClue(y/2+1, x/2-1) {
				if decide(1, -3, gridcore.Line) {
					return
				}
				if decide(2, -2, gridcore.Line) {
					return
				}
			}
		case edge(1, -1) == gridcore.Line:
			if decide(0, -2, gridcore.Blank) {
				return
			}
			if decide(-1, -1, gridcore.Blank) {
				return
			}
		}

		switch {
		case edge(0, 2) == gridcore.Line:
			if decide(-1, 1, gridcore.Blank) {
				return
			}
			if decide(1, 1, gridcore.Blank) {
				return
			}
		case edge(-1, 1) == gridcore.Line:
			if decide(0, 2, gridcore.Blank) {
				return
			}
			if decide(1, 1, gridcore.Blank) {
				return
			}
			if !hasClue(y/2+1, x/2+1) {
				if decide(1, 3, gridcore.Line) {
					return
				}
				if decide(2, 2, gridcore.Line) {
					return
				}
			}
		case edge(1, 1) == gridcore.Line:
			if decide(0, 2, gridcore.Blank) {
				return
			}
			if decide(-1, 1, gridcore.Blank) {
				return
			}
		}
	}
}

func (f *SolverField) inBounds(p gridcore.P) bool {
	return p.Y >= 0 && p.Y < f.Height && p.X >= 0 && p.X < f.Width
}

// Clone deep-copies the field for trial-and-error branches.
func (f *SolverField) Clone() *SolverField {
	return &SolverField{
		Height:       f.Height,
		Width:        f.Width,
		clue:         append([]int(nil), f.clue...),
		edges:        f.edges.Clone(),
		anotherEnd:   append([]int(nil), f.anotherEnd...),
		inconsistent: f.inconsistent,
		touched:      f.touched,
	}
}

// combo is one of the four subsets of {right edge, down edge} a cell can
// commit to during the row-major scan.
type combo struct{ right, down gridcore.EdgeStatus }

var combos = [4]combo{
	{gridcore.Blank, gridcore.Blank},
	{gridcore.Line, gridcore.Blank},
	{gridcore.Blank, gridcore.Line},
	{gridcore.Line, gridcore.Line},
}

// Solve enumerates up to maxAnswers canonical placements by a left-to-right,
// top-to-bottom scan, cloning the field at each branch point (in place of a
// literal history/checkpoint stack -- see DESIGN.md) instead of mutating and
// rolling back in place.
func (f *SolverField) Solve(maxAnswers int) []*SolverField {
	var answers []*SolverField
	f.solveFrom(0, maxAnswers, &answers)
	return answers
}

func (f *SolverField) solveFrom(idx int, maxAnswers int, answers *[]*SolverField) {
	if len(*answers) >= maxAnswers || f.inconsistent {
		return
	}
	n := f.Height * f.Width
	if idx == n {
		if f.isComplete() {
			*answers = append(*answers, f.Clone())
		}
		return
	}
	p := gridcore.P{Y: idx / f.Width, X: idx % f.Width}
	hasRight := p.X+1 < f.Width
	hasDown := p.Y+1 < f.Height
	rightLP := gridcore.OfCell(p).Add(gridcore.DRight)
	downLP := gridcore.OfCell(p).Add(gridcore.DDown)

	for _, c := range combos {
		if !hasRight && c.right == gridcore.Line {
			continue
		}
		if !hasDown && c.down == gridcore.Line {
			continue
		}
		branch := f.Clone()
		if hasRight {
			branch.DecideEdge(rightLP, c.right)
		}
		if !branch.inconsistent && hasDown {
			branch.DecideEdge(downLP, c.down)
		}
		if branch.inconsistent {
			continue
		}
		if branch.degree(p) > branch.target(f.index(p)) {
			continue
		}
		branch.solveFrom(idx+1, maxAnswers, answers)
		if len(*answers) >= maxAnswers {
			return
		}
	}
}

// isComplete reports every cell reached its target degree (no cell is left
// untouched by any path).
func (f *SolverField) isComplete() bool {
	for i := range f.anotherEnd {
		p := gridcore.P{Y: i / f.Width, X: i % f.Width}
		if f.degree(p) != f.target(i) {
			return false
		}
	}
	return true
}
