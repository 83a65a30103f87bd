// Package yajilin drives penciloid/internal/looplib's GridLoop with a cell
// layer on top: cells are {Clue, Undecided, Line, Blocked}, directional
// clues bound how many Blocked cells lie along a line of sight, Blocked
// cells never touch orthogonally, and the loop visits every non-Blocked,
// non-Clue cell.
package yajilin

import (
	"penciloid/internal/gridcore"
	"penciloid/internal/looplib"
)

// CellState is the state of one Yajilin cell.
type CellState int

const (
	Undecided CellState = iota
	Line
	Blocked
	Clue
)

func (s CellState) String() string {
	switch s {
	case Line:
		return "Line"
	case Blocked:
		return "Blocked"
	case Clue:
		return "Clue"
	default:
		return "Undecided"
	}
}

// clueInfo is the direction/count pair a Clue cell carries.
type clueInfo struct {
	dir gridcore.D
	n   int
}

// Field is a looplib.Field that layers Yajilin's cell-state and clue-DP
// rules on top of the generic Loop Engine.
type Field struct {
	Height, Width int
	cells         *gridcore.Grid[CellState]
	clues         *gridcore.Grid[clueInfo]
	Loop          *looplib.GridLoop
}

// New allocates a clue-free Yajilin field over an H x W cell grid.
func New(height, width int) *Field {
	f := &Field{
		Height: height,
		Width:  width,
		cells:  gridcore.NewGridFilled[CellState](height, width, Undecided),
		clues:  gridcore.NewGrid[clueInfo](height, width),
	}
	f.Loop = looplib.New(height, width, f)
	return f
}

// AddClue fixes cell p as a directional clue. Clue cells are immutable and
// are excluded from the loop (the loop only ever visits non-Blocked,
// non-Clue cells).
func (f *Field) AddClue(p gridcore.P, dir gridcore.D, n int) {
	f.cells.Set(p, Clue)
	f.clues.Set(p, clueInfo{dir: dir, n: n})
	cellLP := gridcore.OfCell(p)
	for _, d := range gridcore.Dirs4 {
		f.Loop.DecideEdge(cellLP.Add(d), gridcore.Blank)
	}
	f.runClueDP(p)
}

// State returns p's current cell state.
func (f *Field) State(p gridcore.P) CellState { return f.cells.At(p) }

// DecideCell commits state to cell p, idempotently, cascading the "Blocked
// cells never touch orthogonally" rule and re-running every clue DP whose
// line of sight includes p.
func (f *Field) DecideCell(p gridcore.P, state CellState) {
	if f.Loop.Inconsistent() {
		return
	}
	cur := f.cells.At(p)
	if cur == state {
		return
	}
	if cur != Undecided {
		f.Loop.Contradict()
		return
	}
	f.cells.Set(p, state)

	if state == Blocked {
		cellLP := gridcore.OfCell(p)
		for _, d := range gridcore.Dirs4 {
			f.Loop.DecideEdge(cellLP.Add(d), gridcore.Blank)
		}
		for _, d := range gridcore.Dirs4 {
			np := p.Add(d)
			if f.cells.InBounds(np) && f.cells.At(np) != Clue {
				f.DecideCell(np, Line)
				if f.Loop.Inconsistent() {
					return
				}
			}
		}
	}

	f.rerunAffectedClues(p)
}

// CheckNeighborhood reacts to a freshly decided edge at both of its flanking
// cells: first inferCellFromEdges, in case the edge alone now pins the
// cell's state, then the clue DP for whichever clue governs it.
func (f *Field) CheckNeighborhood(lp gridcore.LP) {
	c1, c2 := gridcore.CellNeighbors2(lp)
	for _, c := range [2]gridcore.LP{c1, c2} {
		p := c.ToCell()
		if !f.cells.InBounds(p) {
			continue
		}
		f.inferCellFromEdges(p)
		if f.Loop.Inconsistent() {
			return
		}
		f.rerunAffectedClues(p)
		if f.Loop.Inconsistent() {
			return
		}
	}
}

// inferCellFromEdges decides p from its incident edges alone, once they
// already pin it down: a Blocked cell blanks every incident edge, so any
// incident Line edge rules Blocked out, leaving Line; a Line cell needs
// exactly two incident Line edges, so once every incident edge is decided
// and none of them is Line, Blocked is the only state left.
func (f *Field) inferCellFromEdges(p gridcore.P) {
	if f.cells.At(p) != Undecided {
		return
	}
	cellLP := gridcore.OfCell(p)
	sawLine, sawUndecided := false, false
	for _, d := range gridcore.Dirs4 {
		switch f.Loop.GetEdgeSafe(cellLP.Add(d)) {
		case gridcore.Line:
			sawLine = true
		case gridcore.Undecided:
			sawUndecided = true
		}
	}
	switch {
	case sawLine:
		f.DecideCell(p, Line)
	case !sawUndecided:
		f.DecideCell(p, Blocked)
	}
}

// Inspect has no vertex-specific Yajilin behavior beyond the Loop Engine's
// own vertex rule.
func (f *Field) Inspect(gridcore.LP) {}

// CheckAll drives the Loop Engine's generic global passes -- in/out parity
// and connectivity -- to quiescence on top of the clue DP and Blocked-forces-
// neighbors propagation AddClue/DecideCell already run inline (the same
// passes slitherlink's own CheckAll runs; see that package). Each pass can
// feed the other through CheckNeighborhood (a parity-forced edge can pin a
// cell, which can re-run a clue DP, which can force another cell Blocked and
// open up a new parity deduction), so this loops until a round leaves the
// decided-edge count unchanged or the field goes inconsistent.
func (f *Field) CheckAll() {
	for {
		if f.Loop.Inconsistent() {
			return
		}
		before := f.Loop.NumDecidedEdges()
		f.Loop.ApplyInOutRule()
		if f.Loop.Inconsistent() {
			return
		}
		f.Loop.CheckConnectability()
		if f.Loop.Inconsistent() || f.Loop.NumDecidedEdges() == before {
			return
		}
	}
}

// rerunAffectedClues re-runs every clue whose line of sight passes through
// p (there are at most 4: one per direction, found by walking away from p
// until a clue or the border).
func (f *Field) rerunAffectedClues(p gridcore.P) {
	for _, d := range gridcore.Dirs4 {
		cur := p
		for {
			cur = cur.Add(d)
			if !f.cells.InBounds(cur) {
				break
			}
			if f.cells.At(cur) == Clue {
				f.runClueDP(cur)
				break
			}
		}
		if f.Loop.Inconsistent() {
			return
		}
	}
}

// lineOfSight collects the cells strictly between clue p (exclusive) and
// the next clue or the border (exclusive of the border), in order moving
// away from p.
func (f *Field) lineOfSight(p gridcore.P, dir gridcore.D) []gridcore.P {
	var line []gridcore.P
	cur := p
	for {
		cur = cur.Add(dir)
		if !f.cells.InBounds(cur) {
			break
		}
		if f.cells.At(cur) == Clue {
			break
		}
		line = append(line, cur)
	}
	return line
}

// runClueDP applies the one-dimensional clue arithmetic at clue cell p: a
// cell along the line of sight is forced Blocked if no valid completion
// consistent with the clue's exact count leaves it Line, and forced Line if
// no valid completion leaves it Blocked. Infeasibility of every completion
// latches inconsistent.
func (f *Field) runClueDP(p gridcore.P) {
	if f.Loop.Inconsistent() {
		return
	}
	info := f.clues.At(p)
	line := f.lineOfSight(p, info.dir)
	states := make([]CellState, len(line))
	for i, c := range line {
		states[i] = f.cells.At(c)
	}

	if !lineCanReach(states, info.n) {
		f.Loop.Contradict()
		return
	}

	for i, c := range line {
		if states[i] != Undecided {
			continue
		}
		canBlocked := tryFix(states, i, Blocked, info.n)
		canLine := tryFix(states, i, Line, info.n)
		switch {
		case !canBlocked && !canLine:
			f.Loop.Contradict()
			return
		case !canBlocked:
			f.DecideCell(c, Line)
		case !canLine:
			f.DecideCell(c, Blocked)
		}
		if f.Loop.Inconsistent() {
			return
		}
	}
}

func tryFix(states []CellState, i int, v CellState, n int) bool {
	orig := states[i]
	states[i] = v
	ok := lineCanReach(states, n)
	states[i] = orig
	return ok
}

// lineCanReach reports whether some assignment of the Undecided cells in
// states (to Line or Blocked, honoring "no two adjacent Blocked") makes the
// total Blocked count exactly n. Exhaustive with memoization; line lengths
// are bounded by the grid's max dimension so this stays cheap.
func lineCanReach(states []CellState, n int) bool {
	if n < 0 || n > len(states) {
		return false
	}
	memo := make([][2][]int8, len(states)+1)
	for i := range memo {
		memo[i][0] = make([]int8, n+1)
		memo[i][1] = make([]int8, n+1)
		for j := range memo[i][0] {
			memo[i][0][j] = -1
			memo[i][1][j] = -1
		}
	}
	return canComplete(states, 0, false, n, memo)
}

func canComplete(states []CellState, pos int, lastBlocked bool, remaining int, memo [][2][]int8) bool {
	if remaining < 0 {
		return false
	}
	if pos == len(states) {
		return remaining == 0
	}
	li := 0
	if lastBlocked {
		li = 1
	}
	if memo[pos][li][remaining] != -1 {
		return memo[pos][li][remaining] == 1
	}
	ok := false
	if states[pos] != Blocked {
		if canComplete(states, pos+1, false, remaining, memo) {
			ok = true
		}
	}
	if !ok && !lastBlocked && states[pos] != Line {
		if canComplete(states, pos+1, true, remaining-1, memo) {
			ok = true
		}
	}
	if ok {
		memo[pos][li][remaining] = 1
	} else {
		memo[pos][li][remaining] = 0
	}
	return ok
}
