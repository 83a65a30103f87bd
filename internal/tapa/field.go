package tapa

import (
	"penciloid/internal/gridcore"
	"penciloid/internal/graphsep"
)

// NoClue marks a cell that carries no clue.
var NoClue = Clue{}

// Field is the deductive solver over a height x width shading board.
type Field struct {
	height, width int
	cell          []Cell
	clue          []Clue
	dic           *Dictionary

	inconsistent bool
	decidedCells int
}

// NewField allocates an all-Undecided, all-clueless board.
func NewField(height, width int, dic *Dictionary) *Field {
	f := &Field{
		height: height,
		width:  width,
		cell:   make([]Cell, height*width),
		clue:   make([]Clue, height*width),
		dic:    dic,
	}
	return f
}

func (f *Field) Height() int { return f.height }
func (f *Field) Width() int  { return f.width }

func (f *Field) Inconsistent() bool { return f.inconsistent }
func (f *Field) DecidedCells() int  { return f.decidedCells }
func (f *Field) FullySolved() bool  { return f.decidedCells == f.height*f.width }

func (f *Field) inBounds(p gridcore.P) bool {
	return p.Y >= 0 && p.Y < f.height && p.X >= 0 && p.X < f.width
}

func (f *Field) index(p gridcore.P) int { return p.Y*f.width + p.X }

func (f *Field) Clue(p gridcore.P) Clue { return f.clue[f.index(p)] }

// Cell reports the shading of an in-bounds cell.
func (f *Field) Cell(p gridcore.P) Cell { return f.cell[f.index(p)] }

// cellChecked treats every out-of-bounds cell as White, since a clue's
// neighbor ring never extends the Black region past the board edge.
func (f *Field) cellChecked(p gridcore.P) Cell {
	if f.inBounds(p) {
		return f.cell[f.index(p)]
	}
	return White
}

// AddClue attaches clue to loc, idempotently; a clue cell is always White.
func (f *Field) AddClue(loc gridcore.P, clue Clue) {
	cur := f.clue[f.index(loc)]
	if cur.HasClue {
		if !clueEqual(cur, clue) {
			f.inconsistent = true
		}
		return
	}
	f.clue[f.index(loc)] = clue
	f.Decide(loc, White)
	f.inspect(loc)
}

func clueEqual(a, b Clue) bool {
	if a.HasClue != b.HasClue || len(a.Pattern) != len(b.Pattern) {
		return false
	}
	for i := range a.Pattern {
		if a.Pattern[i] != b.Pattern[i] {
			return false
		}
	}
	return true
}

// Decide commits v at loc, idempotently, then fans out the 2x2-cluster
// avoidance and re-inspects every clue whose neighborhood includes loc.
func (f *Field) Decide(loc gridcore.P, v Cell) {
	if !f.inBounds(loc) {
		return
	}
	i := f.index(loc)
	cur := f.cell[i]
	if cur != Undecided {
		if cur != v {
			f.inconsistent = true
		}
		return
	}
	f.cell[i] = v
	f.decidedCells++

	if v == Black {
		f.avoidCluster(addD(loc, -1, -1), addD(loc, -1, 0), addD(loc, 0, -1))
		f.avoidCluster(addD(loc, -1, 1), addD(loc, -1, 0), addD(loc, 0, 1))
		f.avoidCluster(addD(loc, 1, -1), addD(loc, 1, 0), addD(loc, 0, -1))
		f.avoidCluster(addD(loc, 1, 1), addD(loc, 1, 0), addD(loc, 0, 1))
	}

	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			f.inspect(addD(loc, dy, dx))
		}
	}
}

func addD(p gridcore.P, dy, dx int) gridcore.P { return gridcore.P{Y: p.Y + dy, X: p.X + dx} }

// avoidCluster forbids the 2x2 square {loc1, loc2, loc3, corner-shared-cell}
// from being entirely Black: if loc1 is already Black, a Black loc2 forces
// loc3 White and vice versa; if loc1 is not Black, loc2 and loc3 both Black
// force loc1 White.
func (f *Field) avoidCluster(loc1, loc2, loc3 gridcore.P) {
	if f.cellChecked(loc1) == Black {
		if f.cellChecked(loc2) == Black {
			f.Decide(loc3, White)
		}
		if f.cellChecked(loc3) == Black {
			f.Decide(loc2, White)
		}
	} else if f.cellChecked(loc2) == Black && f.cellChecked(loc3) == Black {
		f.Decide(loc1, White)
	}
}

// inspect re-runs the clue dictionary at loc, if loc carries a clue, against
// the current state of its 8 neighbors.
func (f *Field) inspect(loc gridcore.P) {
	if !f.inBounds(loc) {
		return
	}
	clue := f.clue[f.index(loc)]
	if !clue.HasClue {
		return
	}

	var pattern [8]Cell
	for i, d := range neighborOffsets {
		pattern[i] = f.cellChecked(addD(loc, d.Y, d.X))
	}
	forced, inconsistent := f.dic.Neighbors(clue, pattern)
	if inconsistent {
		f.inconsistent = true
		return
	}
	for i, d := range neighborOffsets {
		if forced[i] != Undecided && pattern[i] == Undecided {
			f.Decide(addD(loc, d.Y, d.X), forced[i])
		}
	}
}

// InspectConnectivity builds a graph over every cell that is not known
// White (edges to a non-White right/down neighbor, vertex weight 1 for
// Black), then forces Undecided cells whose removal would separate two or
// more nonzero-weight pieces of the graph to Black — an undetermined cell
// that could only ever split the Black region cannot be White.
func (f *Field) InspectConnectivity() {
	if f.inconsistent {
		return
	}
	n := f.height * f.width
	weight := make([]int, n)
	for i, c := range f.cell {
		if c == Black {
			weight[i] = 1
		}
	}
	g := graphsep.New(n, weight)
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			pos := gridcore.P{Y: y, X: x}
			i := f.index(pos)
			if f.cell[i] == White {
				continue
			}
			if down := addD(pos, 1, 0); f.inBounds(down) && f.cellChecked(down) != White {
				g.AddEdge(i, f.index(down))
			}
			if right := addD(pos, 0, 1); f.inBounds(right) && f.cellChecked(right) != White {
				g.AddEdge(i, f.index(right))
			}
		}
	}
	g.Build()

	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			pos := gridcore.P{Y: y, X: x}
			i := f.index(pos)
			if f.cell[i] != Undecided {
				continue
			}
			nonzero := 0
			for _, sep := range g.Separate(i) {
				if sep.SubtreeWeight > 0 {
					nonzero++
				}
			}
			if nonzero >= 2 {
				f.Decide(pos, Black)
			}
		}
	}
}

// Solve repeats InspectConnectivity to quiescence.
func (f *Field) Solve() {
	for !f.inconsistent {
		before := f.decidedCells
		f.InspectConnectivity()
		if f.decidedCells == before {
			break
		}
	}
}
