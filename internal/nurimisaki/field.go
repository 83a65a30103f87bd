// Package nurimisaki implements the cape-clue shading puzzle: numbered
// clue cells are always White and mark the tip ("cape") of a straight
// run of White cells of the given length running in exactly one of the
// four directions; the rest of the board is Black, a 2x2 all-Black or
// all-White-like block is forbidden, and the White cells form one
// connected region.
package nurimisaki

import (
	"penciloid/internal/graphsep"
	"penciloid/internal/gridcore"
)

// Cell is a board cell's state: Undecided/White/Black, or a cape clue
// carrying its run length (0 means a clue of unknown length).
type Cell struct {
	Kind CellKind
	N    int
}

type CellKind int

const (
	Undecided CellKind = iota
	White
	Black
	Cape
)

func UndecidedCell() Cell { return Cell{Kind: Undecided} }
func WhiteCell() Cell     { return Cell{Kind: White} }
func BlackCell() Cell     { return Cell{Kind: Black} }
func CapeCell(n int) Cell { return Cell{Kind: Cape, N: n} }

// isWhiteLike reports whether c belongs to the White connected region
// (White itself, or a cape clue, which is always White).
func (c Cell) isWhiteLike() bool { return c.Kind == White || c.Kind == Cape }

// Field is the deductive solver over the board.
type Field struct {
	height, width int
	cell          []Cell
	decidedCells  int
	inconsistent  bool
}

// NewField builds a field from a clue grid: clues[p] >= 0 places a cape
// clue of that length at p (0 meaning an unknown-length clue); a nil
// entry means no clue at p.
func NewField(height, width int, clues map[gridcore.P]int) *Field {
	f := &Field{
		height: height,
		width:  width,
		cell:   make([]Cell, height*width),
	}
	for i := range f.cell {
		f.cell[i] = UndecidedCell()
	}
	for p, n := range clues {
		f.cell[f.index(p)] = CapeCell(n)
		f.decidedCells++
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

// Cell reports the state of an in-bounds cell.
func (f *Field) Cell(p gridcore.P) Cell { return f.cell[f.index(p)] }

// Decide commits val at pos, idempotently: a previously Cape'd cell
// accepts a redundant White decision (its clue already implies White)
// without flagging inconsistency.
func (f *Field) Decide(pos gridcore.P, val Cell) {
	i := f.index(pos)
	cur := f.cell[i]
	if cur.Kind != Undecided {
		switch {
		case cur.Kind == Black && val.Kind == Black:
		case cur.Kind == White && val.Kind == White:
		case cur.Kind == Cape && val.Kind == White:
		default:
			f.inconsistent = true
		}
		return
	}

	f.cell[i] = val
	f.decidedCells++

	f.avoid2x2Cluster(pos)
	f.avoid2x2Cluster(addD(pos, -1, -1))
	f.avoid2x2Cluster(addD(pos, -1, 0))
	f.avoid2x2Cluster(addD(pos, 0, -1))
}

func addD(p gridcore.P, dy, dx int) gridcore.P { return gridcore.P{Y: p.Y + dy, X: p.X + dx} }
func scale(d gridcore.D, n int) gridcore.D     { return gridcore.D{Y: d.Y * n, X: d.X * n} }

// InspectAllCells runs the per-cell deduction over every cell once.
func (f *Field) InspectAllCells() {
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			f.inspect(gridcore.P{Y: y, X: x})
		}
	}
}

// Solve alternates per-cell inspection and connectivity enforcement to
// quiescence.
func (f *Field) Solve() {
	for {
		before := f.decidedCells
		f.InspectAllCells()
		f.ensureConnectivity()
		if f.decidedCells == before {
			return
		}
	}
}

// avoid2x2Cluster forbids the 2x2 block with top-left corner top from
// being all-Black or all-White-like: three decided cells of one color
// force the fourth (if still Undecided) to the opposite color.
func (f *Field) avoid2x2Cluster(top gridcore.P) {
	if !(top.Y >= 0 && top.Y < f.height-1 && top.X >= 0 && top.X < f.width-1) {
		return
	}
	related := [4]gridcore.D{{Y: 0, X: 0}, {Y: 0, X: 1}, {Y: 1, X: 0}, {Y: 1, X: 1}}
	nBlack, nWhite := 0, 0
	for _, d := range related {
		switch c := f.Cell(addD(top, d.Y, d.X)); {
		case c.isWhiteLike():
			nWhite++
		case c.Kind == Black:
			nBlack++
		}
	}
	switch {
	case nBlack == 3 && nWhite == 0:
		for _, d := range related {
			p := addD(top, d.Y, d.X)
			if f.Cell(p).Kind == Undecided {
				f.Decide(p, WhiteCell())
			}
		}
	case nBlack == 0 && nWhite == 3:
		for _, d := range related {
			p := addD(top, d.Y, d.X)
			if f.Cell(p).Kind == Undecided {
				f.Decide(p, BlackCell())
			}
		}
	}
}

// isBadCapeDirection reports whether dir cannot be the cape's pointing
// direction from pos. See DESIGN.md for the preserved n<=0 asymmetry.
func (f *Field) isBadCapeDirection(pos gridcore.P, n int, dir gridcore.D) bool {
	if n <= 0 {
		next := addD(pos, dir.Y, dir.X)
		if !f.inBounds(next) || f.Cell(next).Kind == Black {
			return true
		}
		return false
	}
	end := addD(pos, scale(dir, n-1).Y, scale(dir, n-1).X)
	if !f.inBounds(end) {
		return true
	}
	if past := addD(end, dir.Y, dir.X); f.inBounds(past) && f.Cell(past).isWhiteLike() {
		return true
	}
	for i := 1; i < n; i++ {
		c := f.Cell(addD(pos, scale(dir, i).Y, scale(dir, i).X))
		switch c.Kind {
		case Black:
			return true
		case Cape:
			if i != n-1 || n != c.N {
				return true
			}
		}
	}
	return false
}

// decideCapeDirection commits the consequences of dir being the cape's
// pointing direction from pos: every other orthogonal neighbor is Black,
// the n-1 cells along dir are White, and the cell just past the run end
// (if any) is Black.
func (f *Field) decideCapeDirection(pos gridcore.P, n int, dir gridcore.D) {
	for _, d := range gridcore.Dirs4 {
		if d != dir {
			if p := addD(pos, d.Y, d.X); f.inBounds(p) {
				f.Decide(p, BlackCell())
			}
		}
	}
	if n > 1 {
		end := addD(pos, scale(dir, n-1).Y, scale(dir, n-1).X)
		if !f.inBounds(end) {
			f.inconsistent = true
			return
		}
		for i := 1; i < n; i++ {
			f.Decide(addD(pos, scale(dir, i).Y, scale(dir, i).X), WhiteCell())
		}
		if past := addD(pos, scale(dir, n).Y, scale(dir, n).X); f.inBounds(past) {
			f.Decide(past, BlackCell())
		}
	}
}

func (f *Field) inspectClue(pos gridcore.P) {
	c := f.Cell(pos)
	if c.Kind != Cape {
		return
	}
	n := c.N

	for _, d := range gridcore.Dirs4 {
		if p := addD(pos, d.Y, d.X); f.inBounds(p) && f.Cell(p).Kind == White {
			f.decideCapeDirection(pos, n, d)
			return
		}
	}

	var goodDir gridcore.D
	nGoodDirs := 0
	for _, d := range gridcore.Dirs4 {
		if !f.isBadCapeDirection(pos, n, d) {
			goodDir = d
			nGoodDirs++
		} else if p := addD(pos, d.Y, d.X); f.inBounds(p) {
			f.Decide(p, BlackCell())
		}
	}

	switch nGoodDirs {
	case 1:
		f.decideCapeDirection(pos, n, goodDir)
	case 0:
		f.inconsistent = true
	}
}

func (f *Field) inspect(pos gridcore.P) {
	if f.Cell(pos).Kind == Cape {
		f.inspectClue(pos)
		return
	}

	nAdjacentWhite, nAdjacentUndecided := 0, 0
	for _, d := range gridcore.Dirs4 {
		p := addD(pos, d.Y, d.X)
		if !f.inBounds(p) {
			continue
		}
		switch c := f.Cell(p); {
		case c.Kind == Undecided:
			nAdjacentUndecided++
		case c.isWhiteLike():
			nAdjacentWhite++
		}
	}

	switch {
	case (nAdjacentWhite == 0 && nAdjacentUndecided == 0) ||
		(nAdjacentWhite == 0 && nAdjacentUndecided == 1) ||
		(nAdjacentWhite == 1 && nAdjacentUndecided == 0):
		f.Decide(pos, BlackCell())
	case (nAdjacentWhite == 0 && nAdjacentUndecided == 2) ||
		(nAdjacentWhite == 1 && nAdjacentUndecided == 1):
		if f.Cell(pos).Kind == White {
			for _, d := range gridcore.Dirs4 {
				p := addD(pos, d.Y, d.X)
				if f.inBounds(p) && f.Cell(p).Kind == Undecided {
					f.Decide(p, WhiteCell())
				}
			}
		}
	}
}

// ensureConnectivity builds a graph over every non-Black cell (edges to a
// non-Black orthogonal neighbor, vertex weight 1 for White-like cells),
// forces an Undecided cell White if removing it would separate the graph
// into two or more nonzero-weight pieces (it could then never safely be
// Black without splitting the single required White region), and flags
// inconsistency if two already-White-like cells land in different
// components.
func (f *Field) ensureConnectivity() {
	if f.inconsistent {
		return
	}
	n := f.height * f.width
	weight := make([]int, n)
	var edges [][2]int
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			pos := gridcore.P{Y: y, X: x}
			i := f.index(pos)
			if f.cell[i].isWhiteLike() {
				weight[i] = 1
			}
			if f.cell[i].Kind == Black {
				continue
			}
			if down := addD(pos, 1, 0); y < f.height-1 && f.Cell(down).Kind != Black {
				edges = append(edges, [2]int{i, f.index(down)})
			}
			if right := addD(pos, 0, 1); x < f.width-1 && f.Cell(right).Kind != Black {
				edges = append(edges, [2]int{i, f.index(right)})
			}
		}
	}

	g := graphsep.New(n, weight)
	for _, e := range edges {
		g.AddEdge(e[0], e[1])
	}
	g.Build()
	component := componentsOf(n, edges)

	var globalRoot = -1
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			pos := gridcore.P{Y: y, X: x}
			i := f.index(pos)
			c := f.cell[i]
			switch {
			case c.Kind == Undecided:
				nonzero := 0
				for _, sep := range g.Separate(i) {
					if sep.SubtreeWeight > 0 {
						nonzero++
					}
				}
				if nonzero >= 2 {
					f.Decide(pos, WhiteCell())
				}
			case c.isWhiteLike():
				if globalRoot == -1 {
					globalRoot = component[i]
				} else if globalRoot != component[i] {
					f.inconsistent = true
					return
				}
			}
		}
	}
}

// componentsOf labels each vertex with its connected-component id via a
// plain BFS over edges. graphsep's DFS spine only answers articulation
// queries (Separate), not component membership, so connectivity-equality
// checks are done locally instead of through it.
func componentsOf(n int, edges [][2]int) []int {
	adj := make([][]int, n)
	for _, e := range edges {
		adj[e[0]] = append(adj[e[0]], e[1])
		adj[e[1]] = append(adj[e[1]], e[0])
	}
	comp := make([]int, n)
	for i := range comp {
		comp[i] = -1
	}
	next := 0
	queue := make([]int, 0, n)
	for start := 0; start < n; start++ {
		if comp[start] != -1 {
			continue
		}
		comp[start] = next
		queue = queue[:0]
		queue = append(queue, start)
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			for _, w := range adj[v] {
				if comp[w] == -1 {
					comp[w] = next
					queue = append(queue, w)
				}
			}
		}
		next++
	}
	return comp
}
